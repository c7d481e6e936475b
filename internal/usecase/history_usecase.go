package usecase

import (
	"context"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
)

// EntityRef identifies one historized object.
type EntityRef struct {
	EntityName string
	EntityID   int64
}

// HistoryUsecase writes and reads the change history of entities.
type HistoryUsecase interface {
	// Save stamps the master with the acting user (or "anon") and the current
	// time and stores it with its attributes. With a nil repos it opens its own
	// transaction. Returns the master id.
	Save(ctx context.Context, repos repository.RepositoryFactory, master *entity.HistoryMaster, attrs []entity.HistoryAttr) (int64, error)

	// SaveChanges stores one master per changed entity of a copy run.
	SaveChanges(ctx context.Context, repos repository.RepositoryFactory, opType entity.EntityOpType, changes []candh.EntityChange) ([]*entity.HistoryMaster, error)

	// Publish announces committed masters to other processes.
	Publish(ctx context.Context, masters ...*entity.HistoryMaster)

	// LoadHistory returns the masters of an entity and its owned children,
	// newest first, with folded diff entries.
	LoadHistory(ctx context.Context, ref EntityRef, children ...EntityRef) ([]*entity.HistoryMaster, error)

	// DisplayEntries flattens masters into rows with the modifying user's name.
	DisplayEntries(ctx context.Context, masters []*entity.HistoryMaster) ([]entity.DisplayHistoryEntry, error)

	// Export renders display rows as a spreadsheet.
	Export(ctx context.Context, entries []entity.DisplayHistoryEntry) ([]byte, error)

	// FindEntityIDs returns ids of entities whose history matches the filter.
	FindEntityIDs(ctx context.Context, filter query.HistoryFilter) ([]int64, error)
}
