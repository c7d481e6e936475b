package postgres

import (
	"context"
	"time"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (repo *invoiceRepository) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel
	err := repo.db.WithContext(ctx).Scopes(withLivePositions).First(&invoiceM, id).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrEntityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find invoice")
	}

	return toInvoiceDomain(&invoiceM), nil
}

func (repo *invoiceRepository) FetchBlock(ctx context.Context, filter *query.Filter, offset, limit int) ([]*entity.Invoice, error) {
	rows, err := fetchBlock[model.InvoiceModel](ctx, repo.db, filter, offset, limit, withLivePositions)
	if err != nil {
		return nil, err
	}
	invoices := make([]*entity.Invoice, 0, len(rows))
	for i := range rows {
		invoices = append(invoices, toInvoiceDomain(&rows[i]))
	}

	return invoices, nil
}

func (repo *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceM := fromInvoiceDomain(invoice)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(invoiceM).Error; err != nil {
		return translateWriteError(err, "failed to create invoice")
	}
	invoice.ID = invoiceM.ID

	return repo.savePositions(ctx, invoice)
}

// Update writes the invoice row and reconciles the positions the same way
// orders do.
func (repo *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(fromInvoiceDomain(invoice)).Error; err != nil {
		return translateWriteError(err, "failed to update invoice")
	}

	return repo.savePositions(ctx, invoice)
}

func (repo *invoiceRepository) FindPositionIDs(ctx context.Context, id int64) ([]int64, error) {
	return positionIDs[model.InvoicePositionModel](ctx, repo.db, "rechnung_fk", id)
}

func (repo *invoiceRepository) SetDeleted(ctx context.Context, id int64, deleted bool, lastUpdate time.Time) error {
	return setDeleted[model.InvoiceModel](ctx, repo.db, id, deleted, lastUpdate)
}

type invoicedRow struct {
	OrderPositionID int64
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
}

// SumNetByOrderPosition adds up quantity times unit price per order position.
// The products are summed here to keep decimal precision on every backend.
func (repo *invoiceRepository) SumNetByOrderPosition(ctx context.Context, orderIDs ...int64) (map[int64]decimal.Decimal, error) {
	tx := repo.db.WithContext(ctx).Clauses(dbresolver.Read).
		Table("t_fibu_rechnung_position AS p").
		Select("p.auftrags_position_fk AS order_position_id, p.menge AS quantity, p.einzel_netto AS unit_price").
		Joins("JOIN t_fibu_rechnung AS r ON r.id = p.rechnung_fk").
		Where("r.deleted = ? AND p.deleted = ? AND p.auftrags_position_fk IS NOT NULL", false, false)
	if len(orderIDs) > 0 {
		tx = tx.Where("p.auftrags_position_fk IN (?)",
			repo.db.Model(&model.OrderPositionModel{}).Select("id").Where("auftrag_fk IN ?", orderIDs))
	}

	var rows []invoicedRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to sum invoiced amounts")
	}
	sums := make(map[int64]decimal.Decimal)
	for _, row := range rows {
		sums[row.OrderPositionID] = sums[row.OrderPositionID].Add(row.Quantity.Mul(row.UnitPrice))
	}

	return sums, nil
}

func (repo *invoiceRepository) savePositions(ctx context.Context, invoice *entity.Invoice) error {
	ids := make([]int64, 0, len(invoice.Positions))
	for _, p := range invoice.Positions {
		ids = append(ids, p.ID)
	}
	err := reconcileOwned[model.InvoicePositionModel](ctx, repo.db, "rechnung_fk", invoice.ID, ids, invoice.LastUpdate)
	if err != nil {
		return err
	}

	for _, p := range invoice.Positions {
		p.InvoiceID = invoice.ID
		stamp(&p.Created, &p.LastUpdate, invoice.LastUpdate)
		posM := fromInvoicePositionDomain(p)
		if p.ID == 0 {
			if err := repo.db.WithContext(ctx).Create(posM).Error; err != nil {
				return translateWriteError(err, "failed to create invoice position")
			}
			p.ID = posM.ID

			continue
		}
		if err := repo.db.WithContext(ctx).Save(posM).Error; err != nil {
			return translateWriteError(err, "failed to update invoice position")
		}
	}

	return nil
}

func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	positions := make([]*entity.InvoicePosition, 0, len(data.Positions))
	for _, p := range data.Positions {
		positions = append(positions, &entity.InvoicePosition{
			Base: entity.Base{
				ID:         p.ID,
				Deleted:    p.Deleted,
				Created:    p.Created,
				LastUpdate: p.LastUpdate,
			},
			InvoiceID:       p.InvoiceID,
			Number:          p.Number,
			Text:            p.Text,
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			VAT:             p.VAT,
			OrderPositionID: p.OrderPositionID,
		})
	}

	return &entity.Invoice{
		Base: entity.Base{
			ID:         data.ID,
			Deleted:    data.Deleted,
			Created:    data.Created,
			LastUpdate: data.LastUpdate,
		},
		Number:      data.Number,
		Subject:     data.Subject,
		Status:      entity.InvoiceStatus(data.Status),
		Date:        data.Date,
		DueDate:     data.DueDate,
		PaymentDate: data.PaymentDate,
		PaidAmount:  data.PaidAmount,
		CustomerID:  data.CustomerID,
		Remark:      data.Remark,
		Positions:   positions,
	}
}

func fromInvoiceDomain(data *entity.Invoice) *model.InvoiceModel {
	invoiceM := &model.InvoiceModel{
		ID:          data.ID,
		Deleted:     data.Deleted,
		Created:     data.Created,
		LastUpdate:  data.LastUpdate,
		Number:      data.Number,
		Subject:     data.Subject,
		Status:      string(data.Status),
		Date:        data.Date,
		DueDate:     data.DueDate,
		PaymentDate: data.PaymentDate,
		PaidAmount:  data.PaidAmount,
		CustomerID:  data.CustomerID,
		Remark:      data.Remark,
	}
	for _, p := range data.Positions {
		invoiceM.Positions = append(invoiceM.Positions, *fromInvoicePositionDomain(p))
	}
	invoiceM.SearchText = invoiceSearchText(invoiceM)
	invoiceM.Positions = nil

	return invoiceM
}

func fromInvoicePositionDomain(data *entity.InvoicePosition) *model.InvoicePositionModel {
	return &model.InvoicePositionModel{
		ID:              data.ID,
		Deleted:         data.Deleted,
		Created:         data.Created,
		LastUpdate:      data.LastUpdate,
		InvoiceID:       data.InvoiceID,
		Number:          data.Number,
		Text:            data.Text,
		Quantity:        data.Quantity,
		UnitPrice:       data.UnitPrice,
		VAT:             data.VAT,
		OrderPositionID: data.OrderPositionID,
	}
}
