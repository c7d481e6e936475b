package postgres

import (
	"context"
	"time"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) FindByID(ctx context.Context, id int64) (*entity.Group, error) {
	groupM, err := findByID[model.GroupModel](ctx, repo.db, id, "AssignedUsers")
	if err != nil {
		return nil, err
	}

	return toGroupDomain(groupM), nil
}

func withAssignedUsers(db *gorm.DB) *gorm.DB {
	return db.Preload("AssignedUsers")
}

func (repo *groupRepository) FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*entity.Group, error) {
	rows, err := fetchBlock[model.GroupModel](ctx, repo.db, filter, offset, limit, withAssignedUsers)
	if err != nil {
		return nil, err
	}

	return toGroupsDomain(rows), nil
}

func (repo *groupRepository) FindAll(ctx context.Context) ([]*entity.Group, error) {
	var rows []model.GroupModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Preload("AssignedUsers").
		Where("deleted = ?", false).Order("id").Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load groups")
	}

	return toGroupsDomain(rows), nil
}

// Create inserts the group and its user assignments.
func (repo *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(groupM).Error; err != nil {
		return translateWriteError(err, "failed to create group")
	}
	group.ID = groupM.ID

	return repo.insertAssignments(ctx, group.ID, group.AssignedUserIDs)
}

// Update writes the group row and replaces its user assignments.
func (repo *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	groupM := fromGroupDomain(group)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(groupM).Error; err != nil {
		return translateWriteError(err, "failed to update group")
	}
	err := repo.db.WithContext(ctx).Where("group_id = ?", group.ID).Delete(&model.GroupUserModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear group assignments")
	}

	return repo.insertAssignments(ctx, group.ID, group.AssignedUserIDs)
}

func (repo *groupRepository) SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error {
	return setDeleted[model.GroupModel](ctx, repo.db, id, deleted, lastUpdate)
}

func (repo *groupRepository) insertAssignments(ctx context.Context, groupID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]model.GroupUserModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, model.GroupUserModel{GroupID: groupID, UserID: userID})
	}
	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return translateWriteError(err, "failed to assign users to group")
	}

	return nil
}

func toGroupDomain(data *model.GroupModel) *entity.Group {
	if data == nil {
		return nil
	}
	var userIDs []int64
	for _, gu := range data.AssignedUsers {
		userIDs = append(userIDs, gu.UserID)
	}

	return &entity.Group{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		Name:            data.Name,
		Description:     data.Description,
		AssignedUserIDs: userIDs,
	}
}

func toGroupsDomain(rows []model.GroupModel) []*entity.Group {
	groups := make([]*entity.Group, 0, len(rows))
	for i := range rows {
		groups = append(groups, toGroupDomain(&rows[i]))
	}

	return groups
}

func fromGroupDomain(data *entity.Group) *model.GroupModel {
	groupM := &model.GroupModel{
		ID:          data.ID,
		Deleted:     data.Deleted,
		Created:     data.Created,
		LastUpdate:  data.LastUpdate,
		Name:        data.Name,
		Description: data.Description,
	}
	groupM.SearchText = groupSearchText(groupM)

	return groupM
}
