package main

import (
	"encoding/json"
	"fmt"
	"os"

	"worldgene/internal/schema"
)

// biasConfig is the on-disk shape of a bias file: qualified trait names to
// additive prevalence/intensity deltas, applied before threshold evaluation.
//
//	{"bias": {"magical.prevalence": {"prevalence": 3, "intensity": 1}}}
type biasConfig struct {
	Bias map[string]biasEntry `json:"bias"`
}

type biasEntry struct {
	Prevalence int `json:"prevalence"`
	Intensity  int `json:"intensity"`
}

func loadBiasConfig(path string) (map[string]schema.Bias, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg biasConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse bias config %s: %w", path, err)
	}

	bias := make(map[string]schema.Bias, len(cfg.Bias))
	for trait, entry := range cfg.Bias {
		bias[trait] = schema.Bias{Prevalence: entry.Prevalence, Intensity: entry.Intensity}
	}
	return bias, nil
}
