package jobs

import (
	"context"
	"log/slog"

	"projectforge/config"
	"projectforge/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
}

// New creates the job handler, starts its tickers and cancels all jobs on stop.
func New(params Params) *Handler {
	cfg := params.Config.Jobs
	handler := NewHandler(HandlerConfig{
		Workers:        cfg.Workers,
		KeepTerminated: cfg.KeepTerminated,
		DefaultTimeout: cfg.DefaultTimeout,
	}, params.Clock, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			handler.Start(cfg.TidyUpInterval)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return handler.Shutdown(ctx)
		},
	})

	return handler
}

// Module provides the job handler and the jobs built on it.
var Module = fx.Module("jobs",
	fx.Provide(New, NewReindexService),
	fx.Invoke(ScheduleUserPrefFlush),
)
