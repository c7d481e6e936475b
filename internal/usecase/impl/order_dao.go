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

var _ entity.Object = (*entity.Order)(nil)

type orderDao struct {
	*baseDao[entity.Order]
}

// OrderDaoParams holds dependencies for OrderDao, injected by Fx.
type OrderDaoParams struct {
	fx.In

	Deps   DaoParams
	Orders repository.OrderRepository
	Cache  usecase.OrderCacheExpirer `optional:"true"`
}

// NewOrderDao is the constructor for orderDao.
func NewOrderDao(params OrderDaoParams) usecase.OrderDao {
	d := &orderDao{
		baseDao: newBaseDao(params.Deps, entity.OrderDescriptor, params.Orders,
			func(f repository.RepositoryFactory) repository.EntityRepository[entity.Order] {
				return f.NewOrderRepository()
			},
			query.Accessors[entity.Order]{
				"nummer":         func(o *entity.Order) any { return o.Number },
				"titel":          func(o *entity.Order) any { return o.Title },
				"auftragsStatus": func(o *entity.Order) any { return string(o.Status) },
				"angebotsDatum":  func(o *entity.Order) any { return o.OrderDate },
				"netSum":         func(o *entity.Order) any { return o.NetSum() },
			},
			[]query.SortProperty{{Property: "nummer", Descending: true}},
		),
	}
	d.validate = validateOrder
	d.children = func(o *entity.Order) []usecase.EntityRef {
		return childRefs(entity.EntityOrderPosition, o.Positions)
	}
	d.allChildren = func(ctx context.Context, id int64) ([]usecase.EntityRef, error) {
		ids, err := params.Orders.FindPositionIDs(ctx, id)
		if err != nil {
			return nil, err
		}

		return idRefs(entity.EntityOrderPosition, ids), nil
	}
	if params.Cache != nil {
		d.AddListener(func(ctx context.Context, o *entity.Order, _ entity.EntityOpType) {
			params.Cache.SetExpiredOrders(ctx, o.ID)
		})
	}

	return d
}

func validateOrder(_ context.Context, order *entity.Order) error {
	order.Title = strings.TrimSpace(order.Title)
	if order.Title == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "titel").ForField("titel")
	}
	if order.Status == "" {
		order.Status = entity.OrderStatusPotential
	}
	if !order.Status.IsValid() {
		return domainerrors.NewUserError("validation.error.invalidValue", string(order.Status)).ForField("auftragsStatus")
	}
	if len(order.Positions) == 0 {
		return domainerrors.NewUserError("fibu.auftrag.error.auftragHatKeinePositionen").ForField("positionen")
	}
	if order.PeriodOfPerformanceBegin != nil && order.PeriodOfPerformanceEnd != nil &&
		order.PeriodOfPerformanceEnd.Before(*order.PeriodOfPerformanceBegin) {
		return domainerrors.NewUserError("error.endDateBeforeBeginDate").ForField("periodOfPerformanceEnd")
	}

	next := 1
	for _, p := range order.Positions {
		next = max(next, p.Number+1)
	}
	seen := make(map[int]bool, len(order.Positions))
	for _, p := range order.Positions {
		if p.Number <= 0 {
			p.Number = next
			next++
		}
		if seen[p.Number] {
			return domainerrors.NewUserError("fibu.auftrag.error.duplicatePosition", p.Number).ForField("positionen")
		}
		seen[p.Number] = true
		if p.Status == "" {
			p.Status = entity.OrderPositionStatusOpen
		}
		if !p.Status.IsValid() {
			return domainerrors.NewUserError("validation.error.invalidValue", string(p.Status)).ForField("positionen")
		}
		if p.PaymentType == "" {
			p.PaymentType = entity.PaymentTypeFixedPrice
		}
		if p.NetSum.IsNegative() {
			return domainerrors.NewUserError("fibu.auftrag.error.negativeNetSum", p.Number).ForField("positionen")
		}
	}

	return nil
}
