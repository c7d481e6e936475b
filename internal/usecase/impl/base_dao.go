package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"projectforge/config"
	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// DaoParams are the collaborators every DAO needs, injected by Fx.
type DaoParams struct {
	fx.In

	TxManager repository.TransactionManager
	History   usecase.HistoryUsecase
	Access    service.AccessChecker
	Clock     service.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// baseDao implements the common lifecycle of historized entities:
// insert, update by copy and diff, soft delete, undelete and history access.
type baseDao[T any] struct {
	DaoParams

	entityName string
	desc       *candh.Descriptor
	reader     repository.EntityRepository[T]
	txRepo     func(repository.RepositoryFactory) repository.EntityRepository[T]
	engine     *query.Engine[T]

	// validate runs before every insert and update.
	validate func(ctx context.Context, obj *T) error
	// beforeCopy prepares the submitted object before it is copied onto the
	// persisted one, e.g. to keep fields clients never send.
	beforeCopy func(src, dbObj *T)
	// children lists the live owned objects with their own history.
	children func(obj *T) []usecase.EntityRef
	// allChildren lists every owned object stored for the id, removed ones
	// included, so that their history stays visible.
	allChildren func(ctx context.Context, id int64) ([]usecase.EntityRef, error)
	listeners   []usecase.Listener[T]
}

func newBaseDao[T any](
	deps DaoParams,
	desc *candh.Descriptor,
	reader repository.EntityRepository[T],
	txRepo func(repository.RepositoryFactory) repository.EntityRepository[T],
	accessors query.Accessors[T],
	defaultSort []query.SortProperty,
) *baseDao[T] {
	opts := query.Options{}
	if deps.Config != nil {
		opts = query.Options{
			BlockSize:          deps.Config.Query.BlockSize,
			MaxResultSize:      deps.Config.Query.MaxResultSize,
			SlowQueryThreshold: deps.Config.Query.SlowQueryThreshold,
		}
		if tag, err := language.Parse(deps.Config.Query.Locale); err == nil {
			opts.Locale = tag
		}
	}

	engine := query.NewEngine(desc.EntityName, reader, baseID[T], opts, deps.Logger, deps.Clock.Now)
	engine.History = deps.History
	engine.Access = deps.Access
	engine.Accessors = accessors
	engine.DefaultSort = defaultSort

	return &baseDao[T]{
		DaoParams:  deps,
		entityName: desc.EntityName,
		desc:       desc,
		reader:     reader,
		txRepo:     txRepo,
		engine:     engine,
	}
}

// baseOf returns the bookkeeping fields. Every historized entity embeds entity.Base.
func baseOf[T any](obj *T) *entity.Base {
	return any(obj).(entity.Object).GetBase()
}

func baseID[T any](obj *T) int64 {
	return baseOf(obj).ID
}

func (d *baseDao[T]) AddListener(l usecase.Listener[T]) {
	d.listeners = append(d.listeners, l)
}

func (d *baseDao[T]) notify(ctx context.Context, obj *T, op entity.EntityOpType) {
	for _, l := range d.listeners {
		l(ctx, obj, op)
	}
}

func (d *baseDao[T]) notFound(id int64) error {
	return domainerrors.ErrEntityNotFound.WithDetails(d.entityName + "#" + formatID(id))
}

func (d *baseDao[T]) load(ctx context.Context, repo repository.EntityRepository[T], id int64) (*T, error) {
	obj, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, d.notFound(id)
		}

		return nil, errors.Wrapf(err, "failed to load %s", d.entityName)
	}

	return obj, nil
}

// GetByID loads one object the acting user may see.
func (d *baseDao[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if err := d.Access.CheckSelectAccess(ctx, d.entityName); err != nil {
		return nil, err
	}
	obj, err := d.load(ctx, d.reader, id)
	if err != nil {
		return nil, err
	}
	if !d.Access.HasItemSelectAccess(ctx, d.entityName, obj) {
		return nil, domainerrors.NewAccessError(domainerrors.OpSelect, d.entityName)
	}
	if d.engine.AfterLoad != nil {
		d.engine.AfterLoad(ctx, obj)
	}

	return obj, nil
}

// GetList runs the block-wise list query.
func (d *baseDao[T]) GetList(ctx context.Context, filter query.Filter, preds ...query.Predicate[T]) ([]*T, error) {
	return d.engine.GetList(ctx, filter, preds...)
}

func (d *baseDao[T]) runValidate(ctx context.Context, obj *T) error {
	if d.validate == nil {
		return nil
	}

	return d.validate(ctx, obj)
}

// Save inserts obj and its owned children as new rows. The Insert master
// carries no attributes.
func (d *baseDao[T]) Save(ctx context.Context, obj *T) (int64, error) {
	if err := d.Access.CheckWriteAccess(ctx, d.entityName, domainerrors.OpInsert); err != nil {
		return 0, err
	}
	if err := d.runValidate(ctx, obj); err != nil {
		return 0, err
	}

	base := baseOf(obj)
	base.ID = 0
	d.desc.DetachMembers(obj)
	now := d.Clock.Now()
	base.Created = now
	base.LastUpdate = now
	base.Deleted = false

	var master *entity.HistoryMaster
	err := d.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := d.txRepo(repos).Create(ctx, obj); err != nil {
			return d.writeError(err)
		}
		master = &entity.HistoryMaster{
			EntityName:   d.entityName,
			EntityID:     base.ID,
			EntityOpType: entity.EntityOpInsert,
		}
		_, err := d.History.Save(ctx, repos, master, nil)

		return err
	})
	if err != nil {
		return 0, domainerrors.LogInternal(ctx, d.Logger, err, "Failed to insert "+d.entityName, obj)
	}

	d.Logger.InfoContext(ctx, "Object inserted",
		slog.String("entity", d.entityName),
		slog.Int64("id", base.ID))
	d.History.Publish(ctx, master)
	d.notify(ctx, obj, entity.EntityOpInsert)

	return base.ID, nil
}

// Update copies obj onto the persisted row and writes history for major
// changes. On success obj holds the persisted state.
func (d *baseDao[T]) Update(ctx context.Context, obj *T) (candh.Status, error) {
	if err := d.Access.CheckWriteAccess(ctx, d.entityName, domainerrors.OpUpdate); err != nil {
		return candh.StatusNone, err
	}
	if err := d.runValidate(ctx, obj); err != nil {
		return candh.StatusNone, err
	}

	saved, status, err := d.update(ctx, baseOf(obj).ID, func(dbObj *T) *T {
		if d.beforeCopy != nil {
			d.beforeCopy(obj, dbObj)
		}

		return obj
	})
	if err != nil {
		return candh.StatusNone, domainerrors.LogInternal(ctx, d.Logger, err, "Failed to update "+d.entityName, obj)
	}
	*obj = *saved

	return status, nil
}

// update loads the row inside a transaction, copies the object returned by
// source onto it and writes row and history as the status demands.
func (d *baseDao[T]) update(ctx context.Context, id int64, source func(dbObj *T) *T) (*T, candh.Status, error) {
	status := candh.StatusNone
	var masters []*entity.HistoryMaster
	var saved *T
	err := d.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := d.txRepo(repos)
		dbObj, err := d.load(ctx, repo, id)
		if err != nil {
			return err
		}

		before := d.childRefs(dbObj)
		run := candh.NewContext(d.Logger)
		status = candh.Copy(run, d.desc, source(dbObj), dbObj)
		saved = dbObj
		if status == candh.StatusNone {
			return nil
		}

		baseOf(dbObj).LastUpdate = d.Clock.Now()
		if err := repo.Update(ctx, dbObj); err != nil {
			return d.writeError(err)
		}
		removed, err := d.saveRemovedChildren(ctx, repos, before, d.childRefs(dbObj))
		if err != nil {
			return err
		}
		masters = removed
		if status != candh.StatusMajor {
			return nil
		}
		changed, err := d.History.SaveChanges(ctx, repos, entity.EntityOpUpdate, run.Changes())
		masters = append(masters, changed...)

		return err
	})
	if err != nil {
		return nil, candh.StatusNone, err
	}
	if saved == nil {
		return nil, candh.StatusNone, d.notFound(id)
	}
	if status == candh.StatusNone {
		d.Logger.DebugContext(ctx, "Object unmodified", slog.String("entity", d.entityName), slog.Int64("id", id))

		return saved, status, nil
	}

	d.Logger.InfoContext(ctx, "Object updated",
		slog.String("entity", d.entityName),
		slog.Int64("id", id),
		slog.String("status", status.String()))
	d.History.Publish(ctx, masters...)
	d.notify(ctx, saved, entity.EntityOpUpdate)

	return saved, status, nil
}

func (d *baseDao[T]) childRefs(obj *T) []usecase.EntityRef {
	if d.children == nil {
		return nil
	}

	return d.children(obj)
}

// saveRemovedChildren writes a MarkAsDeleted master for every owned child in
// before that is missing from after. The repository keeps those rows as deleted.
func (d *baseDao[T]) saveRemovedChildren(ctx context.Context, repos repository.RepositoryFactory, before, after []usecase.EntityRef) ([]*entity.HistoryMaster, error) {
	var masters []*entity.HistoryMaster
	for _, ref := range before {
		if slices.Contains(after, ref) {
			continue
		}
		master := &entity.HistoryMaster{
			EntityName:   ref.EntityName,
			EntityID:     ref.EntityID,
			EntityOpType: entity.EntityOpMarkAsDeleted,
		}
		if _, err := d.History.Save(ctx, repos, master, nil); err != nil {
			return nil, err
		}
		masters = append(masters, master)
	}

	return masters, nil
}

// MarkAsDeleted soft-deletes the object.
func (d *baseDao[T]) MarkAsDeleted(ctx context.Context, id int64) error {
	if err := d.Access.CheckWriteAccess(ctx, d.entityName, domainerrors.OpDelete); err != nil {
		return err
	}

	return d.setDeleted(ctx, id, true, entity.EntityOpMarkAsDeleted)
}

// Undelete restores a soft-deleted object.
func (d *baseDao[T]) Undelete(ctx context.Context, id int64) error {
	if err := d.Access.CheckWriteAccess(ctx, d.entityName, domainerrors.OpInsert); err != nil {
		return err
	}

	return d.setDeleted(ctx, id, false, entity.EntityOpUndelete)
}

func (d *baseDao[T]) setDeleted(ctx context.Context, id int64, deleted bool, op entity.EntityOpType) error {
	var master *entity.HistoryMaster
	var obj *T
	err := d.TxManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := d.txRepo(repos)
		var err error
		obj, err = d.load(ctx, repo, id)
		if err != nil {
			return err
		}
		base := baseOf(obj)
		if base.Deleted == deleted {
			if deleted {
				return domainerrors.ErrEntityDeleted.WithDetails(d.entityName + "#" + formatID(id))
			}

			return nil
		}

		now := d.Clock.Now()
		if err := repo.SetDeleted(ctx, id, deleted, now); err != nil {
			return d.writeError(err)
		}
		base.Deleted = deleted
		base.LastUpdate = now
		master = &entity.HistoryMaster{EntityName: d.entityName, EntityID: id, EntityOpType: op}
		_, err = d.History.Save(ctx, repos, master, nil)

		return err
	})
	if err != nil {
		return domainerrors.LogInternal(ctx, d.Logger, err, "Failed to change deleted flag of "+d.entityName, id)
	}
	if master == nil {
		return nil
	}

	d.Logger.InfoContext(ctx, "Deleted flag changed",
		slog.String("entity", d.entityName),
		slog.Int64("id", id),
		slog.Bool("deleted", deleted))
	d.History.Publish(ctx, master)
	d.notify(ctx, obj, op)

	return nil
}

// ForceDelete is never allowed for historized objects.
func (d *baseDao[T]) ForceDelete(ctx context.Context, id int64) error {
	if err := d.Access.CheckWriteAccess(ctx, d.entityName, domainerrors.OpDelete); err != nil {
		return err
	}

	return domainerrors.ErrForceDeleteNotSupported.WithDetails(d.entityName + "#" + formatID(id))
}

// GetHistory returns the display rows of the object and its owned children.
func (d *baseDao[T]) GetHistory(ctx context.Context, id int64) ([]entity.DisplayHistoryEntry, error) {
	obj, err := d.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	children := d.childRefs(obj)
	if d.allChildren != nil {
		if children, err = d.allChildren(ctx, id); err != nil {
			return nil, err
		}
	}
	masters, err := d.History.LoadHistory(ctx, usecase.EntityRef{EntityName: d.entityName, EntityID: id}, children...)
	if err != nil {
		return nil, err
	}

	return d.History.DisplayEntries(ctx, masters)
}

// ExportHistory renders GetHistory as a workbook.
func (d *baseDao[T]) ExportHistory(ctx context.Context, id int64) ([]byte, error) {
	entries, err := d.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	return d.History.Export(ctx, entries)
}

// writeError maps constraint violations to a user error.
func (d *baseDao[T]) writeError(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return domainerrors.NewUserError("error.duplicateEntry", d.entityName)
	}

	return errors.Wrapf(err, "failed to write %s", d.entityName)
}

// childRefs lists the ids of owned children for history lookups.
func childRefs[E any](entityName string, children []*E) []usecase.EntityRef {
	refs := make([]usecase.EntityRef, 0, len(children))
	for _, c := range children {
		if id := baseOf(c).ID; id != 0 {
			refs = append(refs, usecase.EntityRef{EntityName: entityName, EntityID: id})
		}
	}

	return refs
}

func idRefs(entityName string, ids []int64) []usecase.EntityRef {
	refs := make([]usecase.EntityRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, usecase.EntityRef{EntityName: entityName, EntityID: id})
	}

	return refs
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
