package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"projectforge/config"
	deliverycontext "projectforge/internal/delivery/context"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/errors"
	"projectforge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware records every request in the HTTP metrics and logs it.
// Successful requests are only logged in debug mode or when slower than the
// configured threshold.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	slow   time.Duration
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		slow:   config.Query.SlowQueryThreshold,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		latency := time.Since(start)

		// The error handler has not run yet, so an error without a committed
		// response is counted with its HTTP code.
		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = errorStatus(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route).Observe(latency.Seconds())

		if m.debug || status >= 400 || (m.slow > 0 && latency > m.slow) {
			m.logRequest(c, route, status, latency, err)
		}

		return err
	}
}

func errorStatus(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) logRequest(c echo.Context, route string, status int, latency time.Duration, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400, m.slow > 0 && latency > m.slow:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
