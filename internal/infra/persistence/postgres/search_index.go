package postgres

import (
	"context"
	"strconv"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gorm"
)

func userSearchText(m *model.UserModel) string {
	return searchText(m.Username, deref(m.Firstname), deref(m.Lastname), deref(m.Email), deref(m.Description))
}

func groupSearchText(m *model.GroupModel) string {
	return searchText(m.Name, deref(m.Description))
}

func customerSearchText(m *model.CustomerModel) string {
	return searchText(m.Name, deref(m.Identifier), m.Status)
}

func orderSearchText(m *model.OrderModel) string {
	parts := []string{strconv.Itoa(m.Number), m.Title, m.Status, deref(m.Remark)}
	for _, p := range m.Positions {
		parts = append(parts, p.Title)
	}

	return searchText(parts...)
}

func invoiceSearchText(m *model.InvoiceModel) string {
	parts := []string{m.Subject, m.Status, deref(m.Remark)}
	if m.Number != nil {
		parts = append(parts, strconv.Itoa(*m.Number))
	}
	for _, p := range m.Positions {
		parts = append(parts, p.Text)
	}

	return searchText(parts...)
}

// indexer recomputes the search text of one table.
type indexer struct {
	model   func() any
	rebuild func(ctx context.Context, db *gorm.DB, offset, limit int) (int, error)
}

var indexers = map[string]indexer{
	entity.EntityUser: {
		model:   func() any { return &model.UserModel{} },
		rebuild: rebuildRows(func(m *model.UserModel) (int64, string) { return m.ID, userSearchText(m) }),
	},
	entity.EntityGroup: {
		model:   func() any { return &model.GroupModel{} },
		rebuild: rebuildRows(func(m *model.GroupModel) (int64, string) { return m.ID, groupSearchText(m) }),
	},
	entity.EntityCustomer: {
		model:   func() any { return &model.CustomerModel{} },
		rebuild: rebuildRows(func(m *model.CustomerModel) (int64, string) { return m.ID, customerSearchText(m) }),
	},
	entity.EntityOrder: {
		model:   func() any { return &model.OrderModel{} },
		rebuild: rebuildRows(func(m *model.OrderModel) (int64, string) { return m.ID, orderSearchText(m) }, "Positions"),
	},
	entity.EntityInvoice: {
		model:   func() any { return &model.InvoiceModel{} },
		rebuild: rebuildRows(func(m *model.InvoiceModel) (int64, string) { return m.ID, invoiceSearchText(m) }, "Positions"),
	},
}

// IndexedEntities lists the entity names that carry a search text.
func IndexedEntities() []string {
	return []string{entity.EntityUser, entity.EntityGroup, entity.EntityCustomer, entity.EntityOrder, entity.EntityInvoice}
}

func rebuildRows[M any](text func(*M) (int64, string), preloads ...string) func(context.Context, *gorm.DB, int, int) (int, error) {
	return func(ctx context.Context, db *gorm.DB, offset, limit int) (int, error) {
		tx := db.WithContext(ctx)
		for _, p := range preloads {
			tx = tx.Preload(p)
		}
		var rows []M
		if err := tx.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to load rows for reindexing")
		}
		for i := range rows {
			id, st := text(&rows[i])
			err := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).UpdateColumn("search_text", st).Error
			if err != nil {
				return i, domainerrors.NewDatabaseExecuteError(err, "failed to write search text")
			}
		}

		return len(rows), nil
	}
}

type searchIndexRepository struct {
	db *gorm.DB
}

// NewSearchIndexRepository is the constructor for searchIndexRepository.
func NewSearchIndexRepository(db *gorm.DB) repository.SearchIndexRepository {
	return &searchIndexRepository{db: db}
}

func (repo *searchIndexRepository) lookup(entityName string) (indexer, error) {
	idx, ok := indexers[entityName]
	if !ok {
		return indexer{}, domainerrors.NewUserError("reindex.error.unknownEntity", entityName)
	}

	return idx, nil
}

func (repo *searchIndexRepository) CountEntities(ctx context.Context, entityName string) (int64, error) {
	idx, err := repo.lookup(entityName)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := repo.db.WithContext(ctx).Model(idx.model()).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count rows")
	}

	return count, nil
}

func (repo *searchIndexRepository) RebuildSearchText(ctx context.Context, entityName string, offset, limit int) (int, error) {
	idx, err := repo.lookup(entityName)
	if err != nil {
		return 0, err
	}

	return idx.rebuild(ctx, repo.db, offset, limit)
}
