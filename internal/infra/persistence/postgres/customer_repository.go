package postgres

import (
	"context"
	"time"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	customerM, err := findByID[model.CustomerModel](ctx, repo.db, id)
	if err != nil {
		return nil, err
	}

	return toCustomerDomain(customerM), nil
}

func (repo *customerRepository) FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*entity.Customer, error) {
	rows, err := fetchBlock[model.CustomerModel](ctx, repo.db, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, nil
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return translateWriteError(err, "failed to create customer")
	}
	customer.ID = customerM.ID

	return nil
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	if err := repo.db.WithContext(ctx).Save(fromCustomerDomain(customer)).Error; err != nil {
		return translateWriteError(err, "failed to update customer")
	}

	return nil
}

func (repo *customerRepository) SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error {
	return setDeleted[model.CustomerModel](ctx, repo.db, id, deleted, lastUpdate)
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		Name:       data.Name,
		Identifier: data.Identifier,
		Status:     entity.CustomerStatus(data.Status),
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	customerM := &model.CustomerModel{
		ID:         data.ID,
		Deleted:    data.Deleted,
		Created:    data.Created,
		LastUpdate: data.LastUpdate,
		Name:       data.Name,
		Identifier: data.Identifier,
		Status:     string(data.Status),
	}
	customerM.SearchText = customerSearchText(customerM)

	return customerM
}
