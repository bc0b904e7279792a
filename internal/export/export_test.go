package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"worldgene/internal/model"
	"worldgene/internal/schema"
)

func TestWriteWorldsCSVShape(t *testing.T) {
	dir := t.TempDir()
	s := schema.World()

	traits := make(model.Vector)
	for _, comp := range s.Components {
		traits[comp.Name] = comp.Domain[0]
	}
	records := []model.WorldRecord{{ID: "w-1", DNA: "00", Traits: traits}}
	if err := WriteWorlds(dir, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "worlds.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	wantCols := 2 + s.Len()
	if len(rows[0]) != wantCols {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), wantCols)
	}
	if rows[0][0] != "id" || rows[0][1] != "dna" || rows[0][2] != s.Components[0].Name {
		t.Fatalf("unexpected header start: %v", rows[0][:3])
	}
	if rows[1][0] != "w-1" || rows[1][2] != s.Components[0].Domain[0] {
		t.Fatalf("unexpected data row start: %v", rows[1][:3])
	}
}

func TestWriteWorldsJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	records := []model.WorldRecord{{ID: "w-1", DNA: "0a", Traits: model.Vector{"terrain": "desert"}}}
	if err := WriteWorlds(dir, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "worlds.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var back []model.WorldRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 1 || back[0].ID != "w-1" || back[0].Traits["terrain"] != "desert" {
		t.Fatalf("unexpected payload: %+v", back)
	}
}

func TestWriteAdvancedCSVColumns(t *testing.T) {
	dir := t.TempDir()

	traits := make(model.ScoredVector)
	for _, key := range schema.TraitKeys() {
		traits[key] = model.ScoredValue{Prevalence: 7, Intensity: 3}
	}
	records := []model.AdvancedRecord{{ID: "a-1", DNA: "V1.6 TRAITS{magic:73}", Traits: traits}}
	if err := WriteAdvanced(dir, records); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "advanced.csv"))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	wantCols := 2 + 2*len(schema.TraitKeys())
	if len(rows[0]) != wantCols {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), wantCols)
	}
	if rows[1][2] != "7" || rows[1][3] != "3" {
		t.Fatalf("unexpected first trait pair: %v", rows[1][2:4])
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := Manifest{Worlds: 2, Characters: 1, Advanced: 3}
	if err := WriteManifest(dir, want); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestReadManifestMissing(t *testing.T) {
	_, ok, err := ReadManifest(t.TempDir())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok {
		t.Fatal("missing manifest reported as found")
	}
}
