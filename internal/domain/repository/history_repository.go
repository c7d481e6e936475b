package repository

import (
	"context"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/query"
)

// HistoryRepository persists history masters and their attributes.
type HistoryRepository interface {
	// CreateMaster inserts the master row and sets its id.
	CreateMaster(ctx context.Context, master *entity.HistoryMaster) error

	// CreateAttrs inserts attribute rows linked to masterID.
	CreateAttrs(ctx context.Context, masterID int64, attrs []entity.HistoryAttr) error

	// FindMasters loads masters with attributes of the given entities, newest first.
	// entityNames lists the current and all legacy names of one entity type.
	FindMasters(ctx context.Context, entityNames []string, entityIDs []int64) ([]*entity.HistoryMaster, error)

	// FindEntityIDs returns the distinct ids of entities whose history matches.
	FindEntityIDs(ctx context.Context, entityNames []string, filter query.HistoryFilter) ([]int64, error)
}

// SearchIndexRepository maintains the denormalized search text of entities.
type SearchIndexRepository interface {
	// CountEntities counts all rows of an entity type.
	CountEntities(ctx context.Context, entityName string) (int64, error)

	// RebuildSearchText recomputes the search text of rows [offset, offset+limit)
	// ordered by id and returns the number of rows processed.
	RebuildSearchText(ctx context.Context, entityName string, offset, limit int) (int, error)
}
