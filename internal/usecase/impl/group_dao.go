package impl

import (
	"context"
	"slices"
	"strings"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

var _ entity.Object = (*entity.Group)(nil)

type groupDao struct {
	*baseDao[entity.Group]
}

// GroupDaoParams holds dependencies for GroupDao, injected by Fx.
type GroupDaoParams struct {
	fx.In

	Deps   DaoParams
	Groups repository.GroupRepository
	Cache  usecase.CacheExpirer `name:"userGroupCache" optional:"true"`
}

// NewGroupDao is the constructor for groupDao.
func NewGroupDao(params GroupDaoParams) usecase.GroupDao {
	d := &groupDao{
		baseDao: newBaseDao(params.Deps, entity.GroupDescriptor, params.Groups,
			func(f repository.RepositoryFactory) repository.EntityRepository[entity.Group] {
				return f.NewGroupRepository()
			},
			query.Accessors[entity.Group]{
				"name":        func(g *entity.Group) any { return g.Name },
				"description": func(g *entity.Group) any { return g.Description },
			},
			[]query.SortProperty{{Property: "name"}},
		),
	}
	d.validate = validateGroup
	if params.Cache != nil {
		d.AddListener(func(context.Context, *entity.Group, entity.EntityOpType) {
			params.Cache.SetExpired()
		})
	}

	return d
}

func validateGroup(_ context.Context, group *entity.Group) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "name").ForField("name")
	}
	// Assignments are a set.
	slices.Sort(group.AssignedUserIDs)
	group.AssignedUserIDs = slices.Compact(group.AssignedUserIDs)

	return nil
}
