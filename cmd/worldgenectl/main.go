package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"worldgene/internal/export"
	"worldgene/internal/model"
	"worldgene/internal/storage"
	"worldgene/pkg/worldgene"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "generate":
		return runGenerate(ctx, args[1:])
	case "character":
		return runCharacter(ctx, args[1:])
	case "advanced":
		return runAdvanced(ctx, args[1:])
	case "decode":
		return runDecode(ctx, args[1:])
	case "parse":
		return runParse(ctx, args[1:])
	case "mutate":
		return runMutate(ctx, args[1:])
	case "crossover":
		return runCrossover(ctx, args[1:])
	case "evolve":
		return runEvolve(ctx, args[1:])
	case "simplify":
		return runSimplify(ctx, args[1:])
	case "show":
		return runShow(ctx, args[1:])
	case "list":
		return runList(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

type commonFlags struct {
	storeKind string
	dbPath    string
	seed      int64
	verbose   bool
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.storeKind, "store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	fs.StringVar(&c.dbPath, "db-path", "worldgene.db", "sqlite database path")
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 = time-based)")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging to stderr")
	return c
}

func (c *commonFlags) client(ctx context.Context) (*worldgene.Client, error) {
	var logger *slog.Logger
	if c.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return worldgene.New(ctx, worldgene.Options{
		StoreKind: c.storeKind,
		DBPath:    c.dbPath,
		Seed:      c.seed,
		Logger:    logger,
	})
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	common := registerCommon(fs)
	save := fs.Bool("save", false, "persist the generated record")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	record := client.GenerateWorld()
	if *save {
		if err := client.SaveWorld(ctx, record); err != nil {
			return err
		}
	}
	return printWorld(client, record, *jsonOut)
}

func runCharacter(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("character", flag.ContinueOnError)
	common := registerCommon(fs)
	save := fs.Bool("save", false, "persist the generated record")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	record := client.GenerateCharacter()
	if *save {
		if err := client.SaveCharacter(ctx, record); err != nil {
			return err
		}
	}
	return printCharacter(client, record, *jsonOut)
}

func runAdvanced(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("advanced", flag.ContinueOnError)
	common := registerCommon(fs)
	configPath := fs.String("config", "", "JSON bias config path")
	save := fs.Bool("save", false, "persist the generated record")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bias, err := loadBiasConfig(*configPath)
	if err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	record := client.GenerateAdvanced(bias)
	if *save {
		if err := client.SaveAdvanced(ctx, record); err != nil {
			return err
		}
	}
	fmt.Printf("id: %s\n", record.ID)
	fmt.Printf("dna: %s\n", record.DNA)
	return nil
}

func runDecode(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	common := registerCommon(fs)
	dna := fs.String("dna", "", "categorical DNA string")
	kind := fs.String("schema", "world", "schema: world|character")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	switch *kind {
	case "world":
		return printWorld(client, client.DecodeWorld(*dna), *jsonOut)
	case "character":
		return printCharacter(client, client.DecodeCharacter(*dna), *jsonOut)
	default:
		return fmt.Errorf("unknown schema: %s", *kind)
	}
}

func runParse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	common := registerCommon(fs)
	dna := fs.String("dna", "", "advanced DNA string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dna == "" {
		return errors.New("dna is required")
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	doc := client.ParseAdvanced(*dna)
	fmt.Printf("version: %s\n", doc.Version)
	fmt.Printf("traits: %s\n", humanize.Comma(int64(len(doc.Traits))))
	for _, entry := range doc.Traits {
		fmt.Printf("  %-12s prevalence=%d intensity=%d\n", entry.Name, entry.Value.Prevalence, entry.Value.Intensity)
	}
	if len(doc.Thresholds) > 0 {
		fmt.Printf("thresholds:\n")
		for _, name := range doc.Thresholds {
			fmt.Printf("  %s\n", name)
		}
	}
	for _, entry := range doc.Evolution {
		fmt.Printf("evolution: %s (%s)\n", entry.Trait, entry.Pattern)
	}
	return nil
}

func runMutate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mutate", flag.ContinueOnError)
	common := registerCommon(fs)
	dna := fs.String("dna", "", "categorical DNA string")
	kind := fs.String("schema", "world", "schema: world|character")
	rate := fs.Float64("rate", 0.2, "per-component mutation probability")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *rate < 0 || *rate > 1 {
		return errors.New("rate must be in [0,1]")
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	switch *kind {
	case "world":
		record := client.MutateWorld(client.DecodeWorld(*dna), *rate)
		return printWorld(client, record, *jsonOut)
	case "character":
		record := client.MutateCharacter(client.DecodeCharacter(*dna), *rate)
		return printCharacter(client, record, *jsonOut)
	default:
		return fmt.Errorf("unknown schema: %s", *kind)
	}
}

func runCrossover(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("crossover", flag.ContinueOnError)
	common := registerCommon(fs)
	dnaA := fs.String("a", "", "first parent DNA string")
	dnaB := fs.String("b", "", "second parent DNA string")
	kind := fs.String("schema", "world", "schema: world|character")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	switch *kind {
	case "world":
		child := client.CrossoverWorlds(client.DecodeWorld(*dnaA), client.DecodeWorld(*dnaB))
		return printWorld(client, child, *jsonOut)
	case "character":
		child := client.CrossoverCharacters(client.DecodeCharacter(*dnaA), client.DecodeCharacter(*dnaB))
		return printCharacter(client, child, *jsonOut)
	default:
		return fmt.Errorf("unknown schema: %s", *kind)
	}
}

func runEvolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ContinueOnError)
	common := registerCommon(fs)
	dna := fs.String("dna", "", "advanced DNA string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dna == "" {
		return errors.New("dna is required")
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	doc := client.ParseAdvanced(*dna)
	if len(doc.Evolution) == 0 {
		fmt.Println("no evolving traits")
		return nil
	}
	periods := model.TimePeriods()
	for _, entry := range doc.Evolution {
		fmt.Printf("%s (%s)\n", entry.Trait, entry.Pattern)
		for i, value := range entry.Series {
			label := "beyond"
			if i < len(periods) {
				label = string(periods[i])
			}
			fmt.Printf("  %-8s prevalence=%d intensity=%d\n", label, value.Prevalence, value.Intensity)
		}
	}
	return nil
}

func runSimplify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simplify", flag.ContinueOnError)
	common := registerCommon(fs)
	dna := fs.String("dna", "", "advanced DNA string")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dna == "" {
		return errors.New("dna is required")
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return printWorld(client, client.SimplifyAdvanced(*dna), *jsonOut)
}

func runShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	common := registerCommon(fs)
	id := fs.String("id", "", "record id")
	kind := fs.String("kind", "world", "record kind: world|character|advanced")
	jsonOut := fs.Bool("json", false, "emit record as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("id is required")
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	switch *kind {
	case "world":
		record, err := client.GetWorld(ctx, *id)
		if err != nil {
			return err
		}
		return printWorld(client, record, *jsonOut)
	case "character":
		record, err := client.GetCharacter(ctx, *id)
		if err != nil {
			return err
		}
		return printCharacter(client, record, *jsonOut)
	case "advanced":
		record, err := client.GetAdvanced(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("id: %s\n", record.ID)
		fmt.Printf("dna: %s\n", record.DNA)
		return nil
	default:
		return fmt.Errorf("unknown kind: %s", *kind)
	}
}

func runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	common := registerCommon(fs)
	kind := fs.String("kind", "world", "record kind: world|character|advanced")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	switch *kind {
	case "world":
		records, err := client.ListWorlds(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s  %s\n", record.ID, record.DNA)
		}
		fmt.Printf("%s world records\n", humanize.Comma(int64(len(records))))
	case "character":
		records, err := client.ListCharacters(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s  %s\n", record.ID, record.DNA)
		}
		fmt.Printf("%s character records\n", humanize.Comma(int64(len(records))))
	case "advanced":
		records, err := client.ListAdvanced(ctx)
		if err != nil {
			return err
		}
		for _, record := range records {
			fmt.Printf("%s  %s\n", record.ID, record.DNA)
		}
		fmt.Printf("%s advanced records\n", humanize.Comma(int64(len(records))))
	default:
		return fmt.Errorf("unknown kind: %s", *kind)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	common := registerCommon(fs)
	outDir := fs.String("out", "worldgene_export", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := common.client(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	worlds, err := client.ListWorlds(ctx)
	if err != nil {
		return err
	}
	characters, err := client.ListCharacters(ctx)
	if err != nil {
		return err
	}
	advancedRecords, err := client.ListAdvanced(ctx)
	if err != nil {
		return err
	}

	if err := export.WriteWorlds(*outDir, worlds); err != nil {
		return err
	}
	if err := export.WriteCharacters(*outDir, characters); err != nil {
		return err
	}
	if err := export.WriteAdvanced(*outDir, advancedRecords); err != nil {
		return err
	}
	manifest := export.Manifest{
		Worlds:     len(worlds),
		Characters: len(characters),
		Advanced:   len(advancedRecords),
	}
	if err := export.WriteManifest(*outDir, manifest); err != nil {
		return err
	}

	total := int64(manifest.Worlds + manifest.Characters + manifest.Advanced)
	fmt.Printf("exported %s records to %s\n", humanize.Comma(total), *outDir)
	return nil
}

func printWorld(client *worldgene.Client, record model.WorldRecord, jsonOut bool) error {
	if jsonOut {
		return printJSON(record)
	}
	fmt.Printf("id: %s\n", record.ID)
	fmt.Printf("dna: %s\n", record.DNA)
	for _, pair := range client.WorldTraits(record) {
		fmt.Printf("  %-18s %s\n", pair.Name, pair.Value)
	}
	return nil
}

func printCharacter(client *worldgene.Client, record model.CharacterRecord, jsonOut bool) error {
	if jsonOut {
		return printJSON(record)
	}
	fmt.Printf("id: %s\n", record.ID)
	fmt.Printf("dna: %s\n", record.DNA)
	for _, pair := range client.CharacterTraits(record) {
		fmt.Printf("  %-22s %s\n", pair.Name, pair.Value)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: worldgenectl <generate|character|advanced|decode|parse|mutate|crossover|evolve|simplify|show|list|export> [flags]", msg)
}
