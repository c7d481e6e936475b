package middleware

import (
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/loader"

	"github.com/labstack/echo/v4"
)

// UserLoader attaches a fresh batching user loader to every request so that
// display names resolved while rendering history are fetched once.
func UserLoader(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := loader.WithUserLoader(c.Request().Context(), loader.NewUserLoader(users))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
