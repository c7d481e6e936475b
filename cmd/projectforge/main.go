package main

import (
	"context"
	"log/slog"
	"os"

	"projectforge/config"
	"projectforge/internal/delivery"
	"projectforge/internal/delivery/api"
	apimiddleware "projectforge/internal/delivery/api/middleware"
	"projectforge/internal/delivery/api/router/handler"
	"projectforge/internal/domain/service"
	"projectforge/internal/infra/access"
	"projectforge/internal/infra/auth"
	"projectforge/internal/infra/cache"
	"projectforge/internal/infra/jobs"
	logs "projectforge/internal/infra/log"
	"projectforge/internal/infra/persistence/postgres"
	"projectforge/internal/infra/pubsub"
	"projectforge/internal/usecase"
	"projectforge/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		cache.Module,
		jobs.Module,
		pubsub.Module,
		injectBindings(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newClock,
	)
}

func newClock() service.Clock {
	return service.SystemClock{}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewGroupRepository,
			postgres.NewCustomerRepository,
			postgres.NewOrderRepository,
			postgres.NewInvoiceRepository,
			postgres.NewUserPrefRepository,
			postgres.NewHistoryRepository,
			postgres.NewSearchIndexRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			access.NewChecker,
		),
	)
}

// injectBindings exposes the concrete caches, jobs and stores through the
// interfaces their consumers declare.
func injectBindings() fx.Option {
	return fx.Provide(
		func(c *cache.UserGroupCache) access.Directory { return c },
		func(c *cache.UserGroupCache) apimiddleware.Directory { return c },
		fx.Annotate(
			func(c *cache.UserGroupCache) usecase.CacheExpirer { return c },
			fx.ResultTags(`name:"userGroupCache"`),
		),
		func(c *cache.OrderCache) usecase.OrderCacheExpirer { return c },
		func(c *cache.OrderCache) handler.OrderInfoProvider { return c },
		func(c *cache.UserPrefCache) usecase.PrefCache { return c },
		fx.Annotate(
			func(c *cache.UserPrefCache) jobs.Flusher { return c },
			fx.ResultTags(`name:"userPrefs"`),
		),
		func(d *impl.UserPrefDao) cache.PrefStore { return d },
		func(h *jobs.Handler) handler.JobRegistry { return h },
		func(s *jobs.ReindexService) handler.Reindexer { return s },
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHistoryService,
			impl.NewAuthService,
			impl.NewUserDao,
			impl.NewGroupDao,
			impl.NewCustomerDao,
			impl.NewOrderDao,
			impl.NewInvoiceDao,
			impl.NewUserPrefDao,
			impl.NewUserPrefService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEntityHandlers,
			handler.NewUserPrefHandler,
			handler.NewJobHandler,
			handler.NewOrderInfoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
