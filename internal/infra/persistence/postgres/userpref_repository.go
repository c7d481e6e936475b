package postgres

import (
	"context"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userPrefRepository struct {
	db *gorm.DB
}

// NewUserPrefRepository is the constructor for userPrefRepository.
func NewUserPrefRepository(db *gorm.DB) repository.UserPrefRepository {
	return &userPrefRepository{db: db}
}

func (repo *userPrefRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.UserPref, error) {
	var rows []model.UserPrefModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("area, name").Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user preferences")
	}
	prefs := make([]*entity.UserPref, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, &entity.UserPref{
			ID:         row.ID,
			UserID:     row.UserID,
			Area:       row.Area,
			Name:       row.Name,
			Value:      row.Value,
			LastUpdate: row.LastUpdate,
		})
	}

	return prefs, nil
}

// Upsert replaces value and timestamp of the row with the same (user, area, name).
func (repo *userPrefRepository) Upsert(ctx context.Context, pref *entity.UserPref) error {
	prefM := &model.UserPrefModel{
		UserID:     pref.UserID,
		Area:       pref.Area,
		Name:       pref.Name,
		Value:      pref.Value,
		LastUpdate: pref.LastUpdate,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "area"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "last_update"}),
	}).Create(prefM).Error
	if err != nil {
		return translateWriteError(err, "failed to save user preference")
	}
	if prefM.ID != 0 {
		pref.ID = prefM.ID
	}

	return nil
}

func (repo *userPrefRepository) Delete(ctx context.Context, userID int64, area, name string) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND area = ? AND name = ?", userID, area, name).
		Delete(&model.UserPrefModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user preference")
	}

	return nil
}
