package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"projectforge/config"
	deliverycontext "projectforge/internal/delivery/context"
	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/history"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/infra/metrics"
	"projectforge/internal/infra/pubsub"
	"projectforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderCache is the part of the order cache the worker expires.
type OrderCache interface {
	SetExpired()
	SetExpiredOrders(ctx context.Context, orderIDs ...int64)
}

// PushHandler handles Pub/Sub push messages carrying history events and
// expires the caches affected by the change.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	logger         *slog.Logger
	orderCache     OrderCache
	userGroupCache usecase.CacheExpirer
	orderRepo      repository.OrderRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	OrderCache     OrderCache
	UserGroupCache usecase.CacheExpirer `name:"userGroupCache"`
	OrderRepo      repository.OrderRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.Worker.Audience != "" ||
		(params.Config.PubSub != nil &&
			params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop)

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       params.Config.Worker.Audience,
		logger:         params.Logger,
		orderCache:     params.OrderCache,
		userGroupCache: params.UserGroupCache,
		orderRepo:      params.OrderRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), h.audience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.Event()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode history event", slog.Any("error", err))
		metrics.WorkerEventsTotal.WithLabelValues("unknown", "invalid").Inc()

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	entityName := history.CurrentName(event.EntityName)
	reqLogger.Debug("[Worker] Processing history event",
		slog.String("entity", entityName),
		slog.Int64("entity_id", event.EntityID),
		slog.Int64("master_id", event.MasterID),
		slog.String("op", event.OpType),
	)

	if err := h.expire(ctx, entityName, event.EntityID); err != nil {
		reqLogger.Error("[Worker] Failed to process history event",
			slog.Int64("master_id", event.MasterID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			metrics.WorkerEventsTotal.WithLabelValues(entityName, "retry").Inc()

			return c.NoContent(http.StatusServiceUnavailable)
		}
		metrics.WorkerEventsTotal.WithLabelValues(entityName, "failed").Inc()

		return c.NoContent(http.StatusOK)
	}
	metrics.WorkerEventsTotal.WithLabelValues(entityName, "ok").Inc()

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.HistoryEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes[pubsub.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// expire invalidates the cache entries depending on the changed entity.
// Invoices expire the whole order cache because the event does not tell
// which orders the invoice billed before the change.
func (h *PushHandler) expire(ctx context.Context, entityName string, entityID int64) error {
	switch entityName {
	case entity.EntityUser, entity.EntityGroup:
		h.userGroupCache.SetExpired()
	case entity.EntityOrder:
		h.orderCache.SetExpiredOrders(ctx, entityID)
	case entity.EntityOrderPosition:
		orderIDs, err := h.orderRepo.FindOrderIDsByPositionIDs(ctx, []int64{entityID})
		if err != nil {
			return newRetryableError(errors.Wrap(err, "resolve order of position "+strconv.FormatInt(entityID, 10)))
		}
		h.orderCache.SetExpiredOrders(ctx, orderIDs...)
	case entity.EntityInvoice, entity.EntityInvoicePosition:
		h.orderCache.SetExpired()
	default:
		if history.IsRemoved(entityName) {
			return errors.Errorf("event for removed entity type %s", entityName)
		}
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token from Google Pub/Sub push requests
func verifyPubSubToken(req *http.Request, audience string) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http" // For local development
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
