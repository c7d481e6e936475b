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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Scopes(withLivePositions).First(&orderM, id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrEntityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*entity.Order, error) {
	rows, err := fetchBlock[model.OrderModel](ctx, repo.db, filter, offset, limit, withLivePositions)
	if err != nil {
		return nil, err
	}

	return toOrdersDomain(rows), nil
}

// FindAll loads all orders not marked as deleted.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Scopes(withLivePositions).
		Where("deleted = ?", false).Order("id").Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) FindOrderIDsByPositionIDs(ctx context.Context, positionIDs []int64) ([]int64, error) {
	if len(positionIDs) == 0 {
		return nil, nil
	}
	var orderIDs []int64
	err := repo.db.WithContext(ctx).Model(&model.OrderPositionModel{}).
		Where("id IN ?", positionIDs).Distinct().Pluck("auftrag_fk", &orderIDs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve order positions")
	}

	return orderIDs, nil
}

func (repo *orderRepository) FindPositionIDs(ctx context.Context, id int64) ([]int64, error) {
	return positionIDs[model.OrderPositionModel](ctx, repo.db, "auftrag_fk", id)
}

// Create inserts the order and then its positions.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(orderM).Error; err != nil {
		return translateWriteError(err, "failed to create order")
	}
	order.ID = orderM.ID

	return repo.savePositions(ctx, order)
}

// Update writes the order row and reconciles the positions. Positions missing
// from the order are marked as deleted first so that their numbers are free
// for new positions.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(orderM).Error; err != nil {
		return translateWriteError(err, "failed to update order")
	}

	return repo.savePositions(ctx, order)
}

func (repo *orderRepository) SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error {
	return setDeleted[model.OrderModel](ctx, repo.db, id, deleted, lastUpdate)
}

func (repo *orderRepository) savePositions(ctx context.Context, order *entity.Order) error {
	ids := make([]int64, 0, len(order.Positions))
	for _, p := range order.Positions {
		ids = append(ids, p.ID)
	}
	err := reconcileOwned[model.OrderPositionModel](ctx, repo.db, "auftrag_fk", order.ID, ids, order.LastUpdate)
	if err != nil {
		return err
	}

	for _, p := range order.Positions {
		p.OrderID = order.ID
		stamp(&p.Created, &p.LastUpdate, order.LastUpdate)
		posM := fromOrderPositionDomain(p)
		if p.ID == 0 {
			if err := repo.db.WithContext(ctx).Create(posM).Error; err != nil {
				return translateWriteError(err, "failed to create order position")
			}
			p.ID = posM.ID

			continue
		}
		if err := repo.db.WithContext(ctx).Save(posM).Error; err != nil {
			return translateWriteError(err, "failed to update order position")
		}
	}

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	positions := make([]*entity.OrderPosition, 0, len(data.Positions))
	for i := range data.Positions {
		positions = append(positions, toOrderPositionDomain(&data.Positions[i]))
	}

	return &entity.Order{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		Number:                   data.Number,
		Title:                    data.Title,
		Status:                   entity.OrderStatus(data.Status),
		OrderDate:                data.OrderDate,
		PeriodOfPerformanceBegin: data.PeriodOfPerformanceBegin,
		PeriodOfPerformanceEnd:   data.PeriodOfPerformanceEnd,
		ContactPersonID:          data.ContactPersonID,
		CustomerID:               data.CustomerID,
		Remark:                   data.Remark,
		Positions:                positions,
	}
}

func toOrdersDomain(rows []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders
}

// fromOrderDomain maps the order row. Positions are mapped for the search text
// only and written separately.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                       data.ID,
		Deleted:                  data.Deleted,
		Created:                  data.Created,
		LastUpdate:               data.LastUpdate,
		Number:                   data.Number,
		Title:                    data.Title,
		Status:                   string(data.Status),
		OrderDate:                data.OrderDate,
		PeriodOfPerformanceBegin: data.PeriodOfPerformanceBegin,
		PeriodOfPerformanceEnd:   data.PeriodOfPerformanceEnd,
		ContactPersonID:          data.ContactPersonID,
		CustomerID:               data.CustomerID,
		Remark:                   data.Remark,
	}
	for _, p := range data.Positions {
		orderM.Positions = append(orderM.Positions, *fromOrderPositionDomain(p))
	}
	orderM.SearchText = orderSearchText(orderM)
	orderM.Positions = nil

	return orderM
}

func toOrderPositionDomain(data *model.OrderPositionModel) *entity.OrderPosition {
	return &entity.OrderPosition{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		OrderID:     data.OrderID,
		Number:      data.Number,
		Title:       data.Title,
		Status:      entity.OrderPositionStatus(data.Status),
		NetSum:      data.NetSum,
		PersonDays:  data.PersonDays,
		PaymentType: entity.PaymentType(data.PaymentType),
	}
}

func fromOrderPositionDomain(data *entity.OrderPosition) *model.OrderPositionModel {
	return &model.OrderPositionModel{
		ID:          data.ID,
		Deleted:     data.Deleted,
		Created:     data.Created,
		LastUpdate:  data.LastUpdate,
		OrderID:     data.OrderID,
		Number:      data.Number,
		Title:       data.Title,
		Status:      string(data.Status),
		NetSum:      data.NetSum,
		PersonDays:  data.PersonDays,
		PaymentType: string(data.PaymentType),
	}
}
