//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"worldgene/internal/model"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS worlds (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS characters (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS advanced (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveWorld(ctx context.Context, record model.WorldRecord) error {
	payload, err := EncodeWorld(record)
	if err != nil {
		return err
	}
	return s.upsert(ctx, "worlds", record.ID, record.VersionedRecord, payload)
}

func (s *SQLiteStore) GetWorld(ctx context.Context, id string) (model.WorldRecord, bool, error) {
	payload, ok, err := s.fetch(ctx, "worlds", id)
	if err != nil || !ok {
		return model.WorldRecord{}, ok, err
	}
	record, err := DecodeWorld(payload)
	if err != nil {
		return model.WorldRecord{}, false, fmt.Errorf("decode world %s: %w", id, err)
	}
	return record, true, nil
}

func (s *SQLiteStore) ListWorlds(ctx context.Context) ([]model.WorldRecord, error) {
	payloads, err := s.fetchAll(ctx, "worlds")
	if err != nil {
		return nil, err
	}
	out := make([]model.WorldRecord, 0, len(payloads))
	for _, payload := range payloads {
		record, err := DecodeWorld(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *SQLiteStore) SaveCharacter(ctx context.Context, record model.CharacterRecord) error {
	payload, err := EncodeCharacter(record)
	if err != nil {
		return err
	}
	return s.upsert(ctx, "characters", record.ID, record.VersionedRecord, payload)
}

func (s *SQLiteStore) GetCharacter(ctx context.Context, id string) (model.CharacterRecord, bool, error) {
	payload, ok, err := s.fetch(ctx, "characters", id)
	if err != nil || !ok {
		return model.CharacterRecord{}, ok, err
	}
	record, err := DecodeCharacter(payload)
	if err != nil {
		return model.CharacterRecord{}, false, fmt.Errorf("decode character %s: %w", id, err)
	}
	return record, true, nil
}

func (s *SQLiteStore) ListCharacters(ctx context.Context) ([]model.CharacterRecord, error) {
	payloads, err := s.fetchAll(ctx, "characters")
	if err != nil {
		return nil, err
	}
	out := make([]model.CharacterRecord, 0, len(payloads))
	for _, payload := range payloads {
		record, err := DecodeCharacter(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *SQLiteStore) SaveAdvanced(ctx context.Context, record model.AdvancedRecord) error {
	payload, err := EncodeAdvanced(record)
	if err != nil {
		return err
	}
	return s.upsert(ctx, "advanced", record.ID, record.VersionedRecord, payload)
}

func (s *SQLiteStore) GetAdvanced(ctx context.Context, id string) (model.AdvancedRecord, bool, error) {
	payload, ok, err := s.fetch(ctx, "advanced", id)
	if err != nil || !ok {
		return model.AdvancedRecord{}, ok, err
	}
	record, err := DecodeAdvanced(payload)
	if err != nil {
		return model.AdvancedRecord{}, false, fmt.Errorf("decode advanced %s: %w", id, err)
	}
	return record, true, nil
}

func (s *SQLiteStore) ListAdvanced(ctx context.Context) ([]model.AdvancedRecord, error) {
	payloads, err := s.fetchAll(ctx, "advanced")
	if err != nil {
		return nil, err
	}
	out := make([]model.AdvancedRecord, 0, len(payloads))
	for _, payload := range payloads {
		record, err := DecodeAdvanced(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *SQLiteStore) upsert(ctx context.Context, table, id string, v model.VersionedRecord, payload []byte) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, table), id, v.SchemaVersion, v.CodecVersion, payload)
	return err
}

func (s *SQLiteStore) fetch(ctx context.Context, table, id string) ([]byte, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, fmt.Sprintf(`SELECT payload FROM %s WHERE id = ?`, table), id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (s *SQLiteStore) fetchAll(ctx context.Context, table string) ([][]byte, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT payload FROM %s ORDER BY id`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payloads [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	return payloads, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store not initialized")
	}
	return s.db, nil
}

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}
