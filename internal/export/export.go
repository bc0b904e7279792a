// Package export writes stored records to disk as JSON payloads and
// flat CSV trait tables for downstream tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

const manifestFile = "manifest.json"

// Manifest describes one export directory.
type Manifest struct {
	Worlds     int `json:"worlds"`
	Characters int `json:"characters"`
	Advanced   int `json:"advanced"`
}

// WriteWorlds writes worlds.json plus worlds.csv with one column per
// schema component, in schema order.
func WriteWorlds(dir string, records []model.WorldRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "worlds.json"), records); err != nil {
		return err
	}

	s := schema.World()
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, 2+s.Len())
		row = append(row, record.ID, record.DNA)
		for _, pair := range s.Ordered(record.Traits) {
			row = append(row, pair.Value)
		}
		rows = append(rows, row)
	}
	return writeCSV(filepath.Join(dir, "worlds.csv"), vectorHeader(s), rows)
}

// WriteCharacters writes characters.json plus characters.csv.
func WriteCharacters(dir string, records []model.CharacterRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "characters.json"), records); err != nil {
		return err
	}

	s := schema.Character()
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, 2+s.Len())
		row = append(row, record.ID, record.DNA)
		for _, pair := range s.Ordered(record.Traits) {
			row = append(row, pair.Value)
		}
		rows = append(rows, row)
	}
	return writeCSV(filepath.Join(dir, "characters.csv"), vectorHeader(s), rows)
}

// WriteAdvanced writes advanced.json plus advanced.csv with a
// prevalence and an intensity column per trait.
func WriteAdvanced(dir string, records []model.AdvancedRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "advanced.json"), records); err != nil {
		return err
	}

	keys := schema.TraitKeys()
	header := make([]string, 0, 2+2*len(keys))
	header = append(header, "id", "dna")
	for _, key := range keys {
		header = append(header, key+".prevalence", key+".intensity")
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, 0, len(header))
		row = append(row, record.ID, record.DNA)
		for _, key := range keys {
			value := record.Traits[key]
			row = append(row, strconv.Itoa(value.Prevalence), strconv.Itoa(value.Intensity))
		}
		rows = append(rows, row)
	}
	return writeCSV(filepath.Join(dir, "advanced.csv"), header, rows)
}

// WriteManifest records the export counts alongside the data files.
func WriteManifest(dir string, manifest Manifest) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, manifestFile), manifest)
}

// ReadManifest loads a previously written manifest. The bool reports
// whether one exists.
func ReadManifest(dir string) (Manifest, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, false, nil
		}
		return Manifest{}, false, err
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Manifest{}, false, err
	}
	return manifest, true, nil
}

func vectorHeader(s *schema.Schema) []string {
	header := make([]string, 0, 2+s.Len())
	header = append(header, "id", "dna")
	for _, comp := range s.Components {
		header = append(header, comp.Name)
	}
	return header
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row has %d columns, header has %d", len(row), len(header))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
