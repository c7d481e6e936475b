package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

var _ entity.Object = (*entity.Invoice)(nil)

type invoiceDao struct {
	*baseDao[entity.Invoice]

	orders repository.OrderRepository
	cache  usecase.OrderCacheExpirer
}

// InvoiceDaoParams holds dependencies for InvoiceDao, injected by Fx.
type InvoiceDaoParams struct {
	fx.In

	Deps     DaoParams
	Invoices repository.InvoiceRepository
	Orders   repository.OrderRepository
	Cache    usecase.OrderCacheExpirer `optional:"true"`
}

// NewInvoiceDao is the constructor for invoiceDao.
func NewInvoiceDao(params InvoiceDaoParams) usecase.InvoiceDao {
	d := &invoiceDao{
		baseDao: newBaseDao(params.Deps, entity.InvoiceDescriptor, params.Invoices,
			func(f repository.RepositoryFactory) repository.EntityRepository[entity.Invoice] {
				return f.NewInvoiceRepository()
			},
			query.Accessors[entity.Invoice]{
				"nummer":   func(i *entity.Invoice) any { return i.Number },
				"betreff":  func(i *entity.Invoice) any { return i.Subject },
				"status":   func(i *entity.Invoice) any { return string(i.Status) },
				"datum":    func(i *entity.Invoice) any { return i.Date },
				"netSum":   func(i *entity.Invoice) any { return i.NetSum() },
				"grossSum": func(i *entity.Invoice) any { return i.GrossSum() },
			},
			[]query.SortProperty{{Property: "datum", Descending: true}, {Property: "nummer", Descending: true}},
		),
		orders: params.Orders,
		cache:  params.Cache,
	}
	d.validate = validateInvoice
	d.children = func(i *entity.Invoice) []usecase.EntityRef {
		return childRefs(entity.EntityInvoicePosition, i.Positions)
	}
	d.allChildren = func(ctx context.Context, id int64) ([]usecase.EntityRef, error) {
		ids, err := params.Invoices.FindPositionIDs(ctx, id)
		if err != nil {
			return nil, err
		}

		return idRefs(entity.EntityInvoicePosition, ids), nil
	}
	d.AddListener(func(ctx context.Context, i *entity.Invoice, _ entity.EntityOpType) {
		d.expireOrders(ctx, orderPositionIDs(i))
	})

	return d
}

// Update also expires the orders the invoice billed before the change, as
// positions may have been moved to other orders.
func (d *invoiceDao) Update(ctx context.Context, invoice *entity.Invoice) (candh.Status, error) {
	var before []int64
	if prev, err := d.reader.FindByID(ctx, invoice.ID); err == nil {
		before = orderPositionIDs(prev)
	}
	status, err := d.baseDao.Update(ctx, invoice)
	if err != nil {
		return status, err
	}
	if status != candh.StatusNone {
		d.expireOrders(ctx, before)
	}

	return status, nil
}

func (d *invoiceDao) expireOrders(ctx context.Context, positionIDs []int64) {
	if d.cache == nil || len(positionIDs) == 0 {
		return
	}
	orderIDs, err := d.orders.FindOrderIDsByPositionIDs(ctx, positionIDs)
	if err != nil {
		d.Logger.WarnContext(ctx, "Failed to resolve orders of invoice positions", slog.Any("error", err))

		return
	}
	d.cache.SetExpiredOrders(ctx, orderIDs...)
}

func orderPositionIDs(invoice *entity.Invoice) []int64 {
	var ids []int64
	for _, p := range invoice.Positions {
		if p.OrderPositionID != nil && !slices.Contains(ids, *p.OrderPositionID) {
			ids = append(ids, *p.OrderPositionID)
		}
	}

	return ids
}

func validateInvoice(_ context.Context, invoice *entity.Invoice) error {
	invoice.Subject = strings.TrimSpace(invoice.Subject)
	if invoice.Subject == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "betreff").ForField("betreff")
	}
	if invoice.Date.IsZero() {
		return domainerrors.NewUserError("validation.error.fieldRequired", "datum").ForField("datum")
	}
	if invoice.Status == "" {
		invoice.Status = entity.InvoiceStatusGestellt
	}
	if !invoice.Status.IsValid() {
		return domainerrors.NewUserError("validation.error.invalidValue", string(invoice.Status)).ForField("status")
	}
	if invoice.DueDate != nil && invoice.DueDate.Before(invoice.Date) {
		return domainerrors.NewUserError("fibu.rechnung.error.faelligkeitVorDatum").ForField("faelligkeit")
	}
	if len(invoice.Positions) == 0 {
		return domainerrors.NewUserError("fibu.rechnung.error.rechnungHatKeinePositionen").ForField("positionen")
	}

	next := 1
	for _, p := range invoice.Positions {
		next = max(next, p.Number+1)
	}
	for _, p := range invoice.Positions {
		if p.Number <= 0 {
			p.Number = next
			next++
		}
	}

	return nil
}
