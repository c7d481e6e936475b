package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// searchSeparator joins the parts of a search text so that a LIKE pattern
// does not match across two fields.
const searchSeparator = " | "

// fetchBlock loads one block of rows of model M honouring the deleted flag and
// the search string of the filter. Rows are ordered by id so that blocks never
// overlap. Associations are preloaded by scopes.
func fetchBlock[M any](ctx context.Context, db *gorm.DB, filter *query.Filter, offset, limit int, scopes ...func(*gorm.DB) *gorm.DB) ([]M, error) {
	tx := db.WithContext(ctx).Clauses(dbresolver.Read).Model(new(M))
	tx = applyDeleted(tx, filter)
	tx = applySearch(tx, filter)
	tx = tx.Scopes(scopes...)

	var rows []M
	if err := tx.Order("id").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch block")
	}

	return rows, nil
}

func applyDeleted(tx *gorm.DB, filter *query.Filter) *gorm.DB {
	if filter == nil {
		return tx.Where("deleted = ?", false)
	}
	switch filter.Deleted {
	case query.DeletedOnly:
		return tx.Where("deleted = ?", true)
	case query.DeletedInclude:
		return tx
	default:
		return tx.Where("deleted = ?", false)
	}
}

func applySearch(tx *gorm.DB, filter *query.Filter) *gorm.DB {
	if filter == nil {
		return tx
	}
	pattern := query.LikePattern(filter.SearchString)
	if pattern == "" {
		return tx
	}

	return tx.Where("LOWER(search_text) LIKE ? ESCAPE '\\'", strings.ToLower(pattern))
}

// findByID loads one row of model M including soft-deleted ones.
func findByID[M any](ctx context.Context, db *gorm.DB, id int64, preloads ...string) (*M, error) {
	tx := db.WithContext(ctx)
	for _, p := range preloads {
		tx = tx.Preload(p)
	}

	var row M
	if err := tx.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find by id")
	}

	return &row, nil
}

// setDeleted flips the soft-delete flag of one row of model M.
func setDeleted[M any](ctx context.Context, db *gorm.DB, id int64, deleted bool, lastUpdate time.Time) error {
	result := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).
		Updates(map[string]any{"deleted": deleted, "last_update": lastUpdate})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set deleted flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntityNotFound
	}

	return nil
}

// translateWriteError maps constraint violations to repository errors.
func translateWriteError(err error, details string) error {
	if err == nil {
		return nil
	}
	if isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrDuplicateKey, details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrConflict.WithDetails("invalid reference: " + details)
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrConflict.WithDetails("missing required value: " + details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// searchText lower-cases and joins all non-empty parts.
func searchText(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, strings.ToLower(p))
		}
	}

	return strings.Join(kept, searchSeparator)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func livePositions(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false).Order("number")
}

// withLivePositions preloads the positions that were not removed.
func withLivePositions(db *gorm.DB) *gorm.DB {
	return db.Preload("Positions", livePositions)
}

// reconcileOwned checks that every non-zero id in ids is a live member of the
// parent and marks the live members missing from ids as deleted.
func reconcileOwned[M any](ctx context.Context, db *gorm.DB, fk string, parentID int64, ids []int64, now time.Time) error {
	var live []int64
	err := db.WithContext(ctx).Model(new(M)).
		Where(fk+" = ? AND deleted = ?", parentID, false).Pluck("id", &live).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to load positions")
	}

	owned := make(map[int64]bool, len(live))
	for _, id := range live {
		owned[id] = false
	}
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := owned[id]; !ok {
			return domainerrors.ErrConflict.WithDetails(fmt.Sprintf("position %d is not owned by %s %d", id, fk, parentID))
		}
		owned[id] = true
	}

	removed := make([]int64, 0, len(owned))
	for id, kept := range owned {
		if !kept {
			removed = append(removed, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	err = db.WithContext(ctx).Model(new(M)).Where("id IN ?", removed).
		Updates(map[string]any{"deleted": true, "last_update": now}).Error
	if err != nil {
		return translateWriteError(err, "failed to remove positions")
	}

	return nil
}

// positionIDs lists all member ids of the parent, removed ones included.
func positionIDs[M any](ctx context.Context, db *gorm.DB, fk string, parentID int64) ([]int64, error) {
	var ids []int64
	err := db.WithContext(ctx).Clauses(dbresolver.Read).Model(new(M)).
		Where(fk+" = ?", parentID).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list positions")
	}

	return ids, nil
}

// stamp fills missing bookkeeping timestamps of owned children.
func stamp(created, lastUpdate *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if lastUpdate.IsZero() {
		*lastUpdate = now
	}
}
