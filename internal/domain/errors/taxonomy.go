package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"projectforge/internal/errors"
)

// Operation names an access-checked action.
type Operation string

const (
	OpSelect Operation = "select"
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// AccessError is raised before any mutation when the acting user lacks a right.
type AccessError struct {
	Operation  Operation
	EntityName string
	I18nKey    string
	Params     []any
}

// NewAccessError creates an access error for the operation on an entity type.
func NewAccessError(op Operation, entityName string) *AccessError {
	return &AccessError{
		Operation:  op,
		EntityName: entityName,
		I18nKey:    "access.exception.userHasNotRight",
		Params:     []any{entityName, string(op)},
	}
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access denied: %s on %s", e.Operation, e.EntityName)
}

func (e *AccessError) HTTPCode() int     { return http.StatusForbidden }
func (e *AccessError) ErrorCode() string { return "ACCESS_DENIED" }
func (e *AccessError) Message() string   { return "Access denied" }
func (e *AccessError) Details() string   { return e.I18nKey }

// IsAccessError reports whether err is an access violation.
func IsAccessError(err error) bool {
	_, ok := errors.AsType[*AccessError](err)

	return ok
}

// UserError is a business rule violation shown to the user through an i18n key.
type UserError struct {
	I18nKey string
	Params  []any
	Field   string
}

// NewUserError creates a validation error.
func NewUserError(i18nKey string, params ...any) *UserError {
	return &UserError{I18nKey: i18nKey, Params: params}
}

// ForField attaches the offending field name.
func (e *UserError) ForField(field string) *UserError {
	return &UserError{I18nKey: e.I18nKey, Params: e.Params, Field: field}
}

func (e *UserError) Error() string {
	if len(e.Params) == 0 {
		return e.I18nKey
	}
	parts := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		parts = append(parts, fmt.Sprint(p))
	}

	return e.I18nKey + " [" + strings.Join(parts, ", ") + "]"
}

func (e *UserError) HTTPCode() int     { return http.StatusBadRequest }
func (e *UserError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *UserError) Message() string   { return e.I18nKey }
func (e *UserError) Details() string   { return e.Field }

// IsUserError reports whether err is a validation error.
func IsUserError(err error) bool {
	_, ok := errors.AsType[*UserError](err)

	return ok
}

// InternalError wraps unexpected failures; the cause is never shown to clients.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string     { return "internal error: " + e.cause.Error() }
func (e *InternalError) Unwrap() error     { return e.cause }
func (e *InternalError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *InternalError) ErrorCode() string { return "INTERNAL_ERROR" }
func (e *InternalError) Message() string   { return "Internal error" }
func (e *InternalError) Details() string   { return "" }

// LogInternal logs err together with a JSON dump of obj and returns it wrapped
// as an InternalError. AppErrors are returned unchanged.
func LogInternal(ctx context.Context, logger *slog.Logger, err error, msg string, obj any) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsType[AppError](err); ok {
		return err
	}
	logger.ErrorContext(ctx, msg,
		slog.Any("error", err),
		slog.String("object", ToJSON(obj)),
	)

	return &InternalError{cause: errors.WithStack(err)}
}

// ToJSON renders obj for log output and never fails.
func ToJSON(obj any) string {
	if obj == nil {
		return "null"
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf("%+v", obj)
	}

	return string(data)
}
