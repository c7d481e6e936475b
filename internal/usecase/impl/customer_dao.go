package impl

import (
	"context"
	"strings"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

var _ entity.Object = (*entity.Customer)(nil)

type customerDao struct {
	*baseDao[entity.Customer]
}

// CustomerDaoParams holds dependencies for CustomerDao, injected by Fx.
type CustomerDaoParams struct {
	fx.In

	Deps      DaoParams
	Customers repository.CustomerRepository
}

// NewCustomerDao is the constructor for customerDao.
func NewCustomerDao(params CustomerDaoParams) usecase.CustomerDao {
	d := &customerDao{
		baseDao: newBaseDao(params.Deps, entity.CustomerDescriptor, params.Customers,
			func(f repository.RepositoryFactory) repository.EntityRepository[entity.Customer] {
				return f.NewCustomerRepository()
			},
			query.Accessors[entity.Customer]{
				"name":       func(c *entity.Customer) any { return c.Name },
				"identifier": func(c *entity.Customer) any { return c.Identifier },
				"status":     func(c *entity.Customer) any { return string(c.Status) },
			},
			[]query.SortProperty{{Property: "name"}},
		),
	}
	d.validate = validateCustomer

	return d
}

func validateCustomer(_ context.Context, customer *entity.Customer) error {
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "name").ForField("name")
	}
	if customer.Status == "" {
		customer.Status = entity.CustomerStatusActive
	}
	if !customer.Status.IsValid() {
		return domainerrors.NewUserError("validation.error.invalidValue", string(customer.Status)).ForField("status")
	}

	return nil
}
