package storage

import (
	"context"

	"worldgene/internal/model"
)

// Store defines persistence operations for generated DNA records. The engine
// itself performs no I/O; stores are the external persistence collaborator.
type Store interface {
	Init(ctx context.Context) error
	SaveWorld(ctx context.Context, record model.WorldRecord) error
	GetWorld(ctx context.Context, id string) (model.WorldRecord, bool, error)
	ListWorlds(ctx context.Context) ([]model.WorldRecord, error)
	SaveCharacter(ctx context.Context, record model.CharacterRecord) error
	GetCharacter(ctx context.Context, id string) (model.CharacterRecord, bool, error)
	ListCharacters(ctx context.Context) ([]model.CharacterRecord, error)
	SaveAdvanced(ctx context.Context, record model.AdvancedRecord) error
	GetAdvanced(ctx context.Context, id string) (model.AdvancedRecord, bool, error)
	ListAdvanced(ctx context.Context) ([]model.AdvancedRecord, error)
}
