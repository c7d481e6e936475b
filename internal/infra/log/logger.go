// Package logs builds the process logger.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"projectforge/config"
	deliverycontext "projectforge/internal/delivery/context"
	"projectforge/internal/domain/principal"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return NewWithWriter(params.Config, os.Stdout)
}

// NewWithWriter creates the logger writing to w. Pretty selects the text
// format, JSON otherwise.
func NewWithWriter(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(&contextHandler{Handler: handler})
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}

	return logger, nil
}

// contextHandler adds the request id and the acting user to records logged
// with a context.
type contextHandler struct {
	slog.Handler
	// boundRequestID is set once a request id was bound with Logger.With.
	boundRequestID bool
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" && !h.boundRequestID && !hasAttr(r, "request_id") {
			r.AddAttrs(slog.String("request_id", id))
		}
		if p, ok := principal.From(ctx); ok {
			r.AddAttrs(slog.Int64("user_id", p.UserID))
		}
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.boundRequestID
	for _, a := range attrs {
		bound = bound || a.Key == "request_id"
	}

	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), boundRequestID: bound}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), boundRequestID: h.boundRequestID}
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		found = a.Key == key

		return !found
	})

	return found
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
