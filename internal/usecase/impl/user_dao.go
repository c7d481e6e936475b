package impl

import (
	"context"
	"strings"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

var _ entity.Object = (*entity.User)(nil)

type userDao struct {
	*baseDao[entity.User]

	users  repository.UserRepository
	hasher service.PasswordHasher
}

// UserDaoParams holds dependencies for UserDao, injected by Fx.
type UserDaoParams struct {
	fx.In

	Deps   DaoParams
	Users  repository.UserRepository
	Hasher service.PasswordHasher
	Cache  usecase.CacheExpirer `name:"userGroupCache" optional:"true"`
}

// NewUserDao is the constructor for userDao.
func NewUserDao(params UserDaoParams) usecase.UserDao {
	d := &userDao{
		baseDao: newBaseDao(params.Deps, entity.UserDescriptor, params.Users,
			func(f repository.RepositoryFactory) repository.EntityRepository[entity.User] {
				return f.NewUserRepository()
			},
			query.Accessors[entity.User]{
				"username":  func(u *entity.User) any { return u.Username },
				"firstname": func(u *entity.User) any { return u.Firstname },
				"lastname":  func(u *entity.User) any { return u.Lastname },
				"email":     func(u *entity.User) any { return u.Email },
				"lastLogin": func(u *entity.User) any { return u.LastLogin },
			},
			[]query.SortProperty{{Property: "username"}},
		),
		users:  params.Users,
		hasher: params.Hasher,
	}
	d.validate = d.validateUser
	// Secrets and login bookkeeping are never taken from submitted objects.
	d.beforeCopy = func(src, dbObj *entity.User) {
		src.PasswordHash = dbObj.PasswordHash
		src.LastLogin = dbObj.LastLogin
		src.LastPasswordChange = dbObj.LastPasswordChange
	}
	if params.Cache != nil {
		d.AddListener(func(context.Context, *entity.User, entity.EntityOpType) {
			params.Cache.SetExpired()
		})
	}

	return d
}

func (d *userDao) validateUser(ctx context.Context, user *entity.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "username").ForField("username")
	}
	if user.Email != nil && *user.Email != "" && !strings.Contains(*user.Email, "@") {
		return domainerrors.NewUserError("validation.error.email").ForField("email")
	}

	existing, err := d.users.FindByUsername(ctx, user.Username)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check username")
	}
	if existing.ID != user.ID {
		return domainerrors.NewUserError("user.error.usernameAlreadyExists", user.Username).ForField("username")
	}

	return nil
}

// CreateUser validates and hashes password, then saves the user.
func (d *userDao) CreateUser(ctx context.Context, user *entity.User, password string) (int64, error) {
	if err := d.Access.CheckWriteAccess(ctx, entity.EntityUser, domainerrors.OpInsert); err != nil {
		return 0, err
	}
	if err := d.hasher.ValidatePasswordStrength(password); err != nil {
		return 0, err
	}
	hash, err := d.hasher.Hash(password)
	if err != nil {
		return 0, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}
	user.PasswordHash = hash
	now := d.Clock.Now()
	user.LastPasswordChange = &now

	return d.Save(ctx, user)
}

// ChangePassword lets users change their own password. Admins may reset the
// password of other users without knowing the old one.
func (d *userDao) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	p, ok := principal.From(ctx)
	if !ok {
		return domainerrors.NewAccessError(domainerrors.OpUpdate, entity.EntityUser)
	}
	self := p.UserID == userID
	if !self {
		if err := d.Access.CheckAdmin(ctx); err != nil {
			return err
		}
	}
	if err := d.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	hash, err := d.hasher.Hash(newPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	var wrongPassword bool
	_, _, err = d.update(ctx, userID, func(dbObj *entity.User) *entity.User {
		src := *dbObj
		if self && !d.hasher.Check(oldPassword, dbObj.PasswordHash) {
			wrongPassword = true

			return &src
		}
		now := d.Clock.Now()
		src.PasswordHash = hash
		src.LastPasswordChange = &now

		return &src
	})
	if err != nil {
		return domainerrors.LogInternal(ctx, d.Logger, err, "Failed to change password", userID)
	}
	if wrongPassword {
		return domainerrors.NewUserError("user.changePassword.error.oldPasswordDoesNotMatch").ForField("oldPassword")
	}

	return nil
}
