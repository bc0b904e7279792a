// Package worldgene is the facade over the trait-DNA engine: generation,
// codec round trips, genetic transforms and persistence behind one client.
package worldgene

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"worldgene/internal/advanced"
	"worldgene/internal/codec"
	"worldgene/internal/genetic"
	"worldgene/internal/grammar"
	"worldgene/internal/model"
	"worldgene/internal/schema"
	"worldgene/internal/storage"
)

const defaultDBPath = "worldgene.db"

var ErrNotFound = errors.New("record not found")

// Options configures a Client. Zero values select the memory store, a
// time-seeded random source and a discarding logger.
type Options struct {
	StoreKind string
	DBPath    string
	Seed      int64
	Logger    *slog.Logger
}

// Client wires the engine's pieces together. It is safe for sequential use;
// callers that need concurrency should create one client per goroutine so
// each has its own random stream.
type Client struct {
	store storage.Store
	rng   *rand.Rand
	gen   *advanced.Generator
	log   *slog.Logger

	world     *schema.Schema
	character *schema.Schema
}

func New(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		store:     store,
		rng:       rng,
		gen:       advanced.New(rng, log),
		log:       log,
		world:     schema.World(),
		character: schema.Character(),
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// GenerateWorld draws a random categorical world vector and encodes it.
func (c *Client) GenerateWorld() model.WorldRecord {
	traits := codec.GenerateRandom(c.world, c.rng)
	return c.worldRecord(traits)
}

// DecodeWorld decodes any string into a world record. Decoding is total:
// malformed input resolves to in-schema traits, never an error.
func (c *Client) DecodeWorld(dna string) model.WorldRecord {
	return c.worldRecord(codec.Decode(c.world, dna))
}

// MutateWorld resamples each component with probability rate and returns a
// new record; the input record is untouched.
func (c *Client) MutateWorld(record model.WorldRecord, rate float64) model.WorldRecord {
	return c.worldRecord(genetic.Mutate(c.world, record.Traits, rate, c.rng))
}

// CrossoverWorlds mixes two parents component-wise into a child record.
func (c *Client) CrossoverWorlds(a, b model.WorldRecord) model.WorldRecord {
	return c.worldRecord(genetic.Crossover(c.world, a.Traits, b.Traits, c.rng))
}

// WorldTraits returns a record's traits in schema order for templating
// consumers.
func (c *Client) WorldTraits(record model.WorldRecord) []model.TraitPair {
	return c.world.Ordered(record.Traits)
}

func (c *Client) worldRecord(traits model.Vector) model.WorldRecord {
	return model.WorldRecord{
		VersionedRecord: storage.Stamp(),
		ID:              uuid.NewString(),
		DNA:             codec.Encode(c.world, traits),
		Traits:          traits,
	}
}

// GenerateCharacter draws a random character personality vector and encodes
// it. The motivation invariant is already applied.
func (c *Client) GenerateCharacter() model.CharacterRecord {
	return c.characterRecord(codec.GenerateRandom(c.character, c.rng))
}

// DecodeCharacter decodes any string into a character record.
func (c *Client) DecodeCharacter(dna string) model.CharacterRecord {
	return c.characterRecord(codec.Decode(c.character, dna))
}

// MutateCharacter resamples each component with probability rate.
func (c *Client) MutateCharacter(record model.CharacterRecord, rate float64) model.CharacterRecord {
	return c.characterRecord(genetic.Mutate(c.character, record.Traits, rate, c.rng))
}

// CrossoverCharacters mixes two parents component-wise into a child record.
func (c *Client) CrossoverCharacters(a, b model.CharacterRecord) model.CharacterRecord {
	return c.characterRecord(genetic.Crossover(c.character, a.Traits, b.Traits, c.rng))
}

// CharacterTraits returns a record's traits in schema order.
func (c *Client) CharacterTraits(record model.CharacterRecord) []model.TraitPair {
	return c.character.Ordered(record.Traits)
}

func (c *Client) characterRecord(traits model.Vector) model.CharacterRecord {
	return model.CharacterRecord{
		VersionedRecord: storage.Stamp(),
		ID:              uuid.NewString(),
		DNA:             codec.Encode(c.character, traits),
		Traits:          traits,
	}
}

// GenerateAdvanced produces an advanced world DNA with optional bias applied
// before threshold evaluation.
func (c *Client) GenerateAdvanced(bias map[string]schema.Bias) model.AdvancedRecord {
	dna, traits := c.gen.Generate(bias)
	return model.AdvancedRecord{
		VersionedRecord: storage.Stamp(),
		ID:              uuid.NewString(),
		DNA:             dna,
		Traits:          traits,
	}
}

// ParseAdvanced parses an advanced DNA string. It never fails; absent
// sections come back empty.
func (c *Client) ParseAdvanced(dna string) grammar.Document {
	return grammar.Decode(dna)
}

// SimplifyAdvanced buckets an advanced DNA string into a categorical world
// record. The conversion is lossy and one-way.
func (c *Client) SimplifyAdvanced(dna string) model.WorldRecord {
	return c.worldRecord(advanced.Simplify(dna))
}

func (c *Client) SaveWorld(ctx context.Context, record model.WorldRecord) error {
	return c.store.SaveWorld(ctx, record)
}

func (c *Client) GetWorld(ctx context.Context, id string) (model.WorldRecord, error) {
	record, ok, err := c.store.GetWorld(ctx, id)
	if err != nil {
		return model.WorldRecord{}, err
	}
	if !ok {
		return model.WorldRecord{}, ErrNotFound
	}
	return record, nil
}

func (c *Client) ListWorlds(ctx context.Context) ([]model.WorldRecord, error) {
	return c.store.ListWorlds(ctx)
}

func (c *Client) SaveCharacter(ctx context.Context, record model.CharacterRecord) error {
	return c.store.SaveCharacter(ctx, record)
}

func (c *Client) GetCharacter(ctx context.Context, id string) (model.CharacterRecord, error) {
	record, ok, err := c.store.GetCharacter(ctx, id)
	if err != nil {
		return model.CharacterRecord{}, err
	}
	if !ok {
		return model.CharacterRecord{}, ErrNotFound
	}
	return record, nil
}

func (c *Client) ListCharacters(ctx context.Context) ([]model.CharacterRecord, error) {
	return c.store.ListCharacters(ctx)
}

func (c *Client) SaveAdvanced(ctx context.Context, record model.AdvancedRecord) error {
	return c.store.SaveAdvanced(ctx, record)
}

func (c *Client) GetAdvanced(ctx context.Context, id string) (model.AdvancedRecord, error) {
	record, ok, err := c.store.GetAdvanced(ctx, id)
	if err != nil {
		return model.AdvancedRecord{}, err
	}
	if !ok {
		return model.AdvancedRecord{}, ErrNotFound
	}
	return record, nil
}

func (c *Client) ListAdvanced(ctx context.Context) ([]model.AdvancedRecord, error) {
	return c.store.ListAdvanced(ctx)
}
