package cache

import (
	"context"
	"log/slog"

	"projectforge/config"
	"projectforge/internal/domain/lifecycle"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Clock    service.Clock
	Users    repository.UserRepository
	Groups   repository.GroupRepository
	Orders   repository.OrderRepository
	Invoices repository.InvoiceRepository
}

// Caches groups the caches built by New.
type Caches struct {
	fx.Out

	Orders     *OrderCache
	UserGroups *UserGroupCache
}

// New builds the read caches and warms them up on start.
func New(params Params) Caches {
	orders := NewOrderCache(params.Orders, params.Invoices, params.Config.Cache.OrderTTL, params.Clock, params.Logger)
	userGroups := NewUserGroupCache(params.Users, params.Groups, params.Config.Cache.UserGroupTTL, params.Clock, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()
			// A failed warm-up is retried on first access.
			if err := userGroups.ForceRefresh(ctx); err != nil {
				params.Logger.Warn("User group cache warm-up failed", slog.Any("error", err))
			}

			return nil
		},
	})

	return Caches{Orders: orders, UserGroups: userGroups}
}

// UserPrefParams defines the required parameters of the user preference cache.
type UserPrefParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
	Store  PrefStore
	Demo   *UserGroupCache
}

// NewUserPrefs builds the write-back cache and flushes it on stop.
func NewUserPrefs(params UserPrefParams) *UserPrefCache {
	prefs := NewUserPrefCache(params.Store, params.Demo, params.Config.Cache.UserPrefTTL, params.Clock, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.FlushTimeout)
			defer cancel()

			return prefs.FlushAll(ctx)
		},
	})

	return prefs
}

// Module provides all caches.
var Module = fx.Module("cache",
	fx.Provide(New, NewUserPrefs),
)
