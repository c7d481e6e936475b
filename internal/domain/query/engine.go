package query

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// Backend fetches one block of rows matching the SQL expressible part of the
// filter, ordered by id.
type Backend[T any] interface {
	FetchBlock(ctx context.Context, filter *Filter, offset, limit int) ([]*T, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc[T any] func(ctx context.Context, filter *Filter, offset, limit int) ([]*T, error)

// FetchBlock calls f.
func (f BackendFunc[T]) FetchBlock(ctx context.Context, filter *Filter, offset, limit int) ([]*T, error) {
	return f(ctx, filter, offset, limit)
}

// HistoryIDFinder returns the ids of entities with matching history entries.
type HistoryIDFinder interface {
	FindEntityIDs(ctx context.Context, filter HistoryFilter) ([]int64, error)
}

// AccessChecker decides whether the acting user may list an entity type and
// see a single row.
type AccessChecker interface {
	IsRestricted(ctx context.Context) bool
	HasSelectAccess(ctx context.Context, entityName string) bool
	HasItemSelectAccess(ctx context.Context, entityName string, item any) bool
}

// Options tune an Engine. Zero values fall back to the defaults.
type Options struct {
	BlockSize          int
	MaxResultSize      int
	SlowQueryThreshold time.Duration
	Locale             language.Tag
}

const (
	DefaultBlockSize          = 100
	DefaultMaxResultSize      = 100000
	DefaultSlowQueryThreshold = 2 * time.Second
)

// Engine runs list queries for one entity type.
type Engine[T any] struct {
	EntityName    string
	Backend       Backend[T]
	History       HistoryIDFinder
	Access        AccessChecker
	ID            func(*T) int64
	Accessors     Accessors[T]
	DefaultSort   []SortProperty
	AfterLoad     func(ctx context.Context, item *T)
	ResultFilters []ResultFilter[T]

	opts   Options
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine creates an engine. now may be nil.
func NewEngine[T any](entityName string, backend Backend[T], id func(*T) int64, opts Options, logger *slog.Logger, now func() time.Time) *Engine[T] {
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.MaxResultSize <= 0 {
		opts.MaxResultSize = DefaultMaxResultSize
	}
	if opts.SlowQueryThreshold <= 0 {
		opts.SlowQueryThreshold = DefaultSlowQueryThreshold
	}
	if opts.Locale == language.Und {
		opts.Locale = language.German
	}
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	return &Engine[T]{
		EntityName: entityName,
		Backend:    backend,
		ID:         id,
		opts:       opts,
		logger:     logger,
		now:        now,
	}
}

// GetList loads all rows matching filter and preds. Restricted users get an
// empty list. A failing backend is logged with the filter and also yields an
// empty list; only a cancelled context is returned as error.
func (e *Engine[T]) GetList(ctx context.Context, filter Filter, preds ...Predicate[T]) ([]*T, error) {
	if e.Access != nil {
		if e.Access.IsRestricted(ctx) || !e.Access.HasSelectAccess(ctx, e.EntityName) {
			return []*T{}, nil
		}
	}
	if len(filter.SortProperties) == 0 {
		filter.SortProperties = e.DefaultSort
	}
	maxRows := filter.MaxRows
	if maxRows <= 0 || maxRows > e.opts.MaxResultSize {
		maxRows = e.opts.MaxResultSize
	}

	begin := e.now()
	list, err := e.collect(ctx, &filter, maxRows, preds)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.logger.Error("Error while querying",
			slog.String("entity", e.EntityName),
			slog.String("filter", filterJSON(&filter)),
			slog.Any("error", err))

		return []*T{}, nil
	}
	Sort(list, filter.SortProperties, e.Accessors, e.opts.Locale, e.logger)

	if elapsed := e.now().Sub(begin); elapsed > e.opts.SlowQueryThreshold {
		e.logger.Info("Slow list query",
			slog.String("entity", e.EntityName),
			slog.Duration("elapsed", elapsed),
			slog.Int("results", len(list)))
	}

	return list, nil
}

func (e *Engine[T]) collect(ctx context.Context, filter *Filter, maxRows int, preds []Predicate[T]) ([]*T, error) {
	var idSet map[int64]struct{}
	if filter.HasHistoryParams() && e.History != nil {
		ids, err := e.History.FindEntityIDs(ctx, filter.HistoryFilter(e.EntityName, e.opts.MaxResultSize))
		if err != nil {
			return nil, err
		}
		idSet = make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			idSet[id] = struct{}{}
		}
	}

	list := make([]*T, 0)
	seen := make(map[int64]struct{})
	it := newBlockIterator(e.Backend, filter, e.opts.BlockSize)
	for {
		item, err := it.next(ctx)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return list, nil
		}
		id := e.ID(item)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if !e.accept(ctx, list, item, id, idSet, preds) {
			continue
		}
		if e.AfterLoad != nil {
			e.AfterLoad(ctx, item)
		}
		list = append(list, item)
		if len(list) >= maxRows {
			return list, nil
		}
	}
}

func (e *Engine[T]) accept(ctx context.Context, list []*T, item *T, id int64, idSet map[int64]struct{}, preds []Predicate[T]) bool {
	if e.Access != nil && !e.Access.HasItemSelectAccess(ctx, e.EntityName, item) {
		return false
	}
	if idSet != nil {
		if _, ok := idSet[id]; !ok {
			return false
		}
	}
	for _, f := range e.ResultFilters {
		if !f(list, item) {
			return false
		}
	}
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}

	return true
}

func filterJSON(f *Filter) string {
	b, err := json.Marshal(f)
	if err != nil {
		return err.Error()
	}

	return string(b)
}
