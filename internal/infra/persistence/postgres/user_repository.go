// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by id, including deleted users.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	userM, err := findByID[model.UserModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(userM), nil
}

// FindByUsername retrieves a single user by login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*entity.User, error) {
	rows, err := fetchBlock[model.UserModel](ctx, repo.db, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	return toUsersDomain(rows), nil
}

// FindAll loads every user. Used to fill caches.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var rows []model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load users")
	}

	return toUsersDomain(rows), nil
}

func (repo *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []model.UserModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load users by id")
	}

	return toUsersDomain(rows), nil
}

// Create persists a new user and sets the generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WithDetails(user.Username)
		}

		return translateWriteError(err, "failed to create user")
	}
	user.ID = userM.ID

	return nil
}

// Update writes all columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WithDetails(user.Username)
		}

		return translateWriteError(err, "failed to update user")
	}

	return nil
}

func (repo *userRepository) SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error {
	return setDeleted[model.UserModel](ctx, repo.db, id, deleted, lastUpdate)
}

// UpdateLastLogin only touches the login column.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).UpdateColumn("last_login", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntityNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		Username:           data.Username,
		Firstname:          data.Firstname,
		Lastname:           data.Lastname,
		Email:              data.Email,
		Locale:             data.Locale,
		TimeZone:           data.TimeZone,
		Description:        data.Description,
		Deactivated:        data.Deactivated,
		PasswordHash:       data.PasswordHash,
		LastLogin:          data.LastLogin,
		LastPasswordChange: data.LastPasswordChange,
		Restricted:         data.Restricted,
		Demo:               data.Demo,
	}
}

func toUsersDomain(rows []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserDomain(&rows[i]))
	}

	return users
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}
	userM := &model.UserModel{
		ID:                 data.ID,
		Deleted:            data.Deleted,
		Created:            data.Created,
		LastUpdate:         data.LastUpdate,
		Username:           data.Username,
		Firstname:          data.Firstname,
		Lastname:           data.Lastname,
		Email:              data.Email,
		Locale:             data.Locale,
		TimeZone:           data.TimeZone,
		Description:        data.Description,
		Deactivated:        data.Deactivated,
		PasswordHash:       data.PasswordHash,
		LastLogin:          data.LastLogin,
		LastPasswordChange: data.LastPasswordChange,
		Restricted:         data.Restricted,
		Demo:               data.Demo,
	}
	userM.SearchText = userSearchText(userM)

	return userM
}
