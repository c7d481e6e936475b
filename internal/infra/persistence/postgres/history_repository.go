package postgres

import (
	"context"
	"strconv"
	"strings"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// historyAttrBatchSize bounds the number of attribute rows per INSERT.
const historyAttrBatchSize = 100

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{db: db}
}

func (repo *historyRepository) CreateMaster(ctx context.Context, master *entity.HistoryMaster) error {
	masterM := &model.HistoryMasterModel{
		EntityName:   master.EntityName,
		EntityID:     master.EntityID,
		EntityOpType: string(master.EntityOpType),
		ModifiedBy:   master.ModifiedBy,
		ModifiedAt:   master.ModifiedAt,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(masterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create history master")
	}
	master.ID = masterM.ID

	return nil
}

func (repo *historyRepository) CreateAttrs(ctx context.Context, masterID int64, attrs []entity.HistoryAttr) error {
	if len(attrs) == 0 {
		return nil
	}
	rows := make([]model.HistoryAttrModel, 0, len(attrs))
	for _, a := range attrs {
		rows = append(rows, model.HistoryAttrModel{
			MasterID:          masterID,
			PropertyName:      a.PropertyName,
			PropertyTypeClass: a.PropertyTypeClass,
			Value:             a.Value,
			OldValue:          a.OldValue,
			OpType:            string(a.OpType),
		})
	}
	if err := repo.db.WithContext(ctx).CreateInBatches(&rows, historyAttrBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create history attributes")
	}

	return nil
}

// FindMasters returns masters newest first. Attributes keep insertion order.
func (repo *historyRepository) FindMasters(ctx context.Context, entityNames []string, entityIDs []int64) ([]*entity.HistoryMaster, error) {
	if len(entityNames) == 0 || len(entityIDs) == 0 {
		return nil, nil
	}
	var rows []model.HistoryMasterModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Preload("Attributes", func(db *gorm.DB) *gorm.DB { return db.Order("pk") }).
		Where("entity_name IN ? AND entity_id IN ?", entityNames, entityIDs).
		Order("modifiedat DESC, pk DESC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load history")
	}

	masters := make([]*entity.HistoryMaster, 0, len(rows))
	for i := range rows {
		masters = append(masters, toHistoryMasterDomain(&rows[i]))
	}

	return masters, nil
}

// FindEntityIDs selects the distinct ids of entities with matching history.
// The search text is matched against new and old values.
func (repo *historyRepository) FindEntityIDs(ctx context.Context, entityNames []string, filter query.HistoryFilter) ([]int64, error) {
	tx := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Model(&model.HistoryMasterModel{}).
		Where("entity_name IN ?", entityNames)
	if filter.ModifiedByUserID != nil {
		tx = tx.Where("modifiedby = ?", strconv.FormatInt(*filter.ModifiedByUserID, 10))
	}
	if filter.ModifiedFrom != nil {
		tx = tx.Where("modifiedat >= ?", *filter.ModifiedFrom)
	}
	if filter.ModifiedTo != nil {
		tx = tx.Where("modifiedat <= ?", *filter.ModifiedTo)
	}
	if pattern := query.LikePattern(filter.SearchText); pattern != "" {
		pattern = strings.ToLower(pattern)
		tx = tx.Where("EXISTS (?)", repo.db.Model(&model.HistoryAttrModel{}).Select("1").
			Where("t_pf_history_attr.master_fk = t_pf_history.pk").
			Where("(LOWER(value) LIKE ? ESCAPE '\\' OR LOWER(old_value) LIKE ? ESCAPE '\\')", pattern, pattern))
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var ids []int64
	if err := tx.Distinct().Pluck("entity_id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search history")
	}

	return ids, nil
}

func toHistoryMasterDomain(data *model.HistoryMasterModel) *entity.HistoryMaster {
	attrs := make([]entity.HistoryAttr, 0, len(data.Attributes))
	for _, a := range data.Attributes {
		attrs = append(attrs, entity.HistoryAttr{
			ID:                a.ID,
			MasterID:          a.MasterID,
			PropertyName:      a.PropertyName,
			PropertyTypeClass: a.PropertyTypeClass,
			Value:             a.Value,
			OldValue:          a.OldValue,
			OpType:            entity.PropertyOpType(a.OpType),
		})
	}

	return &entity.HistoryMaster{
		ID:           data.ID,
		EntityName:   data.EntityName,
		EntityID:     data.EntityID,
		EntityOpType: entity.EntityOpType(data.EntityOpType),
		ModifiedBy:   data.ModifiedBy,
		ModifiedAt:   data.ModifiedAt,
		Attributes:   attrs,
	}
}
