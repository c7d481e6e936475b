// Package loader batches id lookups issued while rendering one request.
package loader

import (
	"context"
	"strconv"
	"time"

	"projectforge/internal/domain/repository"
	"projectforge/internal/errors"

	"github.com/graph-gophers/dataloader"
)

const batchWait = 5 * time.Millisecond

type ctxKey struct{}

// UserLoader resolves user ids to display names in batches.
type UserLoader struct {
	Loader *dataloader.Loader
}

// NewUserLoader creates a loader backed by one FindByIDs query per batch.
// A loader caches its results, so create one per request.
func NewUserLoader(users repository.UserRepository) *UserLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		ids := make([]int64, len(keys))
		results := make([]*dataloader.Result, len(keys))
		for i, k := range keys {
			id, err := strconv.ParseInt(k.String(), 10, 64)
			if err != nil {
				results[i] = &dataloader.Result{Error: errors.Wrapf(err, "invalid user id %q", k.String())}

				continue
			}
			ids[i] = id
		}

		found, err := users.FindByIDs(ctx, ids)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result{Error: err}
			}

			return results
		}
		names := make(map[int64]string, len(found))
		for _, u := range found {
			names[u.ID] = u.DisplayName()
		}
		for i, id := range ids {
			if results[i] != nil {
				continue
			}
			// Unknown users resolve to an empty name.
			results[i] = &dataloader.Result{Data: names[id]}
		}

		return results
	}

	return &UserLoader{Loader: dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(batchWait))}
}

// Key is the loader key of a user id.
func Key(userID int64) dataloader.Key {
	return dataloader.StringKey(strconv.FormatInt(userID, 10))
}

// DisplayName resolves one user.
func (l *UserLoader) DisplayName(ctx context.Context, userID int64) (string, error) {
	v, err := l.Loader.Load(ctx, Key(userID))()
	if err != nil {
		return "", err
	}
	name, _ := v.(string)

	return name, nil
}

// DisplayNames resolves many users with as few queries as possible.
// Failed lookups are left out of the map.
func (l *UserLoader) DisplayNames(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	keys := make(dataloader.Keys, len(userIDs))
	for i, id := range userIDs {
		keys[i] = Key(id)
	}
	values, errs := l.Loader.LoadMany(ctx, keys)()

	names := make(map[int64]string, len(userIDs))
	var firstErr error
	for i, v := range values {
		if i < len(errs) && errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}

			continue
		}
		if name, ok := v.(string); ok {
			names[userIDs[i]] = name
		}
	}

	return names, firstErr
}

// WithUserLoader stores a loader in ctx.
func WithUserLoader(ctx context.Context, l *UserLoader) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// UserLoaderFrom returns the loader stored in ctx, if any.
func UserLoaderFrom(ctx context.Context) (*UserLoader, bool) {
	l, ok := ctx.Value(ctxKey{}).(*UserLoader)

	return l, ok && l != nil
}
