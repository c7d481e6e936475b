// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"

	"projectforge/config"
	deliverycontext "projectforge/internal/delivery/context"
	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/history"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/infra/export"
	"projectforge/internal/infra/loader"
	"projectforge/internal/infra/metrics"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	txManager     repository.TransactionManager
	users         repository.UserRepository
	publisher     service.EventPublisher
	clock         service.Clock
	publish       bool
	maxResultSize int
	logger        *slog.Logger
}

// HistoryServiceParams holds dependencies for HistoryService, injected by Fx.
type HistoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Users     repository.UserRepository
	Publisher service.EventPublisher
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(params HistoryServiceParams) usecase.HistoryUsecase {
	maxResultSize := query.DefaultMaxResultSize
	publish := false
	if params.Config != nil {
		if params.Config.Query.MaxResultSize > 0 {
			maxResultSize = params.Config.Query.MaxResultSize
		}
		publish = params.Config.History.PublishEvents
	}

	return &historyService{
		txManager:     params.TxManager,
		users:         params.Users,
		publisher:     params.Publisher,
		clock:         params.Clock,
		publish:       publish,
		maxResultSize: maxResultSize,
		logger:        params.Logger,
	}
}

func modifiedBy(ctx context.Context) string {
	if p, ok := principal.From(ctx); ok {
		return p.IDString()
	}

	return constants.AnonUser
}

// Save stores the master and its attributes.
func (srv *historyService) Save(ctx context.Context, repos repository.RepositoryFactory, master *entity.HistoryMaster, attrs []entity.HistoryAttr) (int64, error) {
	if repos == nil {
		var id int64
		err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
			var err error
			id, err = srv.Save(ctx, txRepos, master, attrs)

			return err
		})

		return id, err
	}

	master.ModifiedBy = modifiedBy(ctx)
	master.ModifiedAt = srv.clock.Now()

	historyRepo := repos.NewHistoryRepository()
	if err := historyRepo.CreateMaster(ctx, master); err != nil {
		return 0, domainerrors.LogInternal(ctx, srv.logger, err, "Failed to save history master", master)
	}
	if len(attrs) > 0 {
		if err := historyRepo.CreateAttrs(ctx, master.ID, attrs); err != nil {
			return 0, domainerrors.LogInternal(ctx, srv.logger, err, "Failed to save history attributes", attrs)
		}
	}
	master.Attributes = attrs
	metrics.HistoryMastersTotal.WithLabelValues(master.EntityName, string(master.EntityOpType)).Inc()

	return master.ID, nil
}

// SaveChanges writes one master per entity of a copy run.
func (srv *historyService) SaveChanges(ctx context.Context, repos repository.RepositoryFactory, opType entity.EntityOpType, changes []candh.EntityChange) ([]*entity.HistoryMaster, error) {
	masters := make([]*entity.HistoryMaster, 0, len(changes))
	for _, change := range changes {
		if len(change.Diffs) == 0 {
			continue
		}
		attrs := make([]entity.HistoryAttr, len(change.Diffs))
		for i, d := range change.Diffs {
			attrs[i] = entity.AttrFromDiff(d)
		}
		master := &entity.HistoryMaster{
			EntityName:   change.EntityName,
			EntityID:     change.EntityID,
			EntityOpType: opType,
		}
		if _, err := srv.Save(ctx, repos, master, attrs); err != nil {
			return nil, err
		}
		masters = append(masters, master)
	}

	return masters, nil
}

// Publish sends a HistoryEvent per master. Failures are logged only, the
// write itself is already committed.
func (srv *historyService) Publish(ctx context.Context, masters ...*entity.HistoryMaster) {
	if !srv.publish || srv.publisher == nil {
		return
	}
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for _, m := range masters {
		event := &service.HistoryEvent{
			RequestID:  requestID,
			MasterID:   m.ID,
			EntityName: m.EntityName,
			EntityID:   m.EntityID,
			OpType:     string(m.EntityOpType),
			ModifiedBy: m.ModifiedBy,
			ModifiedAt: m.ModifiedAt,
		}
		if err := srv.publisher.PublishHistoryEvent(ctx, event); err != nil {
			srv.logger.WarnContext(ctx, "Failed to publish history event",
				slog.String("entity", m.EntityName),
				slog.Int64("entityID", m.EntityID),
				slog.Any("error", err))
		}
	}
}

// LoadHistory reads the masters of ref and its children, newest first.
func (srv *historyService) LoadHistory(ctx context.Context, ref usecase.EntityRef, children ...usecase.EntityRef) ([]*entity.HistoryMaster, error) {
	idsByName := map[string][]int64{}
	var names []string
	for _, r := range append([]usecase.EntityRef{ref}, children...) {
		if history.IsRemoved(r.EntityName) {
			srv.logger.WarnContext(ctx, "History requested for removed class",
				slog.String("entity", r.EntityName),
				slog.Int64("entityID", r.EntityID))

			continue
		}
		name := history.CurrentName(r.EntityName)
		if _, ok := idsByName[name]; !ok {
			names = append(names, name)
		}
		idsByName[name] = append(idsByName[name], r.EntityID)
	}
	if len(names) == 0 {
		return []*entity.HistoryMaster{}, nil
	}

	var masters []*entity.HistoryMaster
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		historyRepo := repos.NewHistoryRepository()
		for _, name := range names {
			found, err := historyRepo.FindMasters(ctx, history.StoredNames(name), idsByName[name])
			if err != nil {
				return errors.Wrapf(err, "failed to load history of %s", name)
			}
			for _, m := range found {
				m.EntityName = name
			}
			masters = append(masters, found...)
		}

		return nil
	})
	if err != nil {
		return nil, domainerrors.LogInternal(ctx, srv.logger, err, "Failed to load history", ref)
	}

	for _, m := range masters {
		m.DiffEntries = history.FoldLegacy(m.Attributes)
	}
	slices.SortStableFunc(masters, func(a, b *entity.HistoryMaster) int {
		if c := b.ModifiedAt.Compare(a.ModifiedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return masters, nil
}

// DisplayEntries resolves modifying users through the request's batched
// loader, or a fresh one outside of requests.
func (srv *historyService) DisplayEntries(ctx context.Context, masters []*entity.HistoryMaster) ([]entity.DisplayHistoryEntry, error) {
	userIDs := make([]int64, 0, len(masters))
	seen := map[int64]struct{}{}
	for _, m := range masters {
		id, err := strconv.ParseInt(m.ModifiedBy, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			userIDs = append(userIDs, id)
		}
	}

	names := map[int64]string{}
	if len(userIDs) > 0 {
		l, ok := loader.UserLoaderFrom(ctx)
		if !ok {
			l = loader.NewUserLoader(srv.users)
		}
		var err error
		names, err = l.DisplayNames(ctx, userIDs)
		if err != nil {
			srv.logger.WarnContext(ctx, "Failed to resolve user names of history", slog.Any("error", err))
		}
	}

	entries := make([]entity.DisplayHistoryEntry, 0, len(masters))
	for _, m := range masters {
		row := entity.DisplayHistoryEntry{
			MasterID:     m.ID,
			EntityName:   m.EntityName,
			EntityID:     m.EntityID,
			EntityOpType: m.EntityOpType,
			ModifiedAt:   m.ModifiedAt,
			ModifiedBy:   m.ModifiedBy,
		}
		if id, err := strconv.ParseInt(m.ModifiedBy, 10, 64); err == nil {
			row.ModifiedByName = names[id]
		}
		if len(m.DiffEntries) == 0 {
			entries = append(entries, row)

			continue
		}
		for _, d := range m.DiffEntries {
			r := row
			r.PropertyName = d.PropertyName
			r.PropertyType = d.PropertyType
			r.OldValue = deref(d.OldValue)
			r.NewValue = deref(d.NewValue)
			r.OpType = d.OpType
			entries = append(entries, r)
		}
	}

	return entries, nil
}

// Export renders the rows as an xlsx workbook.
func (srv *historyService) Export(ctx context.Context, entries []entity.DisplayHistoryEntry) ([]byte, error) {
	data, err := export.HistoryWorkbook(entries)
	if err != nil {
		return nil, domainerrors.LogInternal(ctx, srv.logger, err, "Failed to export history", len(entries))
	}

	return data, nil
}

// FindEntityIDs queries the history under all stored names of the type.
func (srv *historyService) FindEntityIDs(ctx context.Context, filter query.HistoryFilter) ([]int64, error) {
	if filter.Limit <= 0 || filter.Limit > srv.maxResultSize {
		filter.Limit = srv.maxResultSize
	}
	name := history.CurrentName(filter.EntityName)
	filter.EntityName = name

	var ids []int64
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		ids, err = repos.NewHistoryRepository().FindEntityIDs(ctx, history.StoredNames(name), filter)

		return errors.Wrap(err, "failed to search history")
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
