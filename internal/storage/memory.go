package storage

import (
	"context"
	"sort"
	"sync"

	"worldgene/internal/model"
)

type MemoryStore struct {
	mu         sync.RWMutex
	worlds     map[string]model.WorldRecord
	characters map[string]model.CharacterRecord
	advanced   map[string]model.AdvancedRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.worlds = make(map[string]model.WorldRecord)
	s.characters = make(map[string]model.CharacterRecord)
	s.advanced = make(map[string]model.AdvancedRecord)
	return nil
}

func (s *MemoryStore) SaveWorld(_ context.Context, record model.WorldRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.worlds[record.ID] = record
	return nil
}

func (s *MemoryStore) GetWorld(_ context.Context, id string) (model.WorldRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.worlds[id]
	return record, ok, nil
}

func (s *MemoryStore) ListWorlds(_ context.Context) ([]model.WorldRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.WorldRecord, 0, len(s.worlds))
	for _, record := range s.worlds {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) SaveCharacter(_ context.Context, record model.CharacterRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.characters[record.ID] = record
	return nil
}

func (s *MemoryStore) GetCharacter(_ context.Context, id string) (model.CharacterRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.characters[id]
	return record, ok, nil
}

func (s *MemoryStore) ListCharacters(_ context.Context) ([]model.CharacterRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CharacterRecord, 0, len(s.characters))
	for _, record := range s.characters {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) SaveAdvanced(_ context.Context, record model.AdvancedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.advanced[record.ID] = record
	return nil
}

func (s *MemoryStore) GetAdvanced(_ context.Context, id string) (model.AdvancedRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.advanced[id]
	return record, ok, nil
}

func (s *MemoryStore) ListAdvanced(_ context.Context) ([]model.AdvancedRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.AdvancedRecord, 0, len(s.advanced))
	for _, record := range s.advanced {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
