package middleware

import (
	"context"
	"strings"

	"projectforge/internal/delivery/api/response"
	deliverycontext "projectforge/internal/delivery/context"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Directory resolves the current state of a user. *cache.UserGroupCache implements it.
type Directory interface {
	GetUser(ctx context.Context, userID int64) (*entity.User, bool)
	GroupNames(ctx context.Context, userID int64) []string
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Directory    Directory
}

// AuthMiddleware turns a Bearer access token into the request principal.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	directory Directory
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService, directory: params.Directory}
}

// Authenticate validates the access token and stores the principal in the
// request context. Users that were deleted or deactivated after the token was
// issued are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		ctx := c.Request().Context()
		user, ok := m.directory.GetUser(ctx, claims.UserID)
		if !ok || user.Deleted || user.Deactivated {
			return response.Unauthorized(c, "INVALID_TOKEN", "User is no longer active")
		}

		p := &principal.Principal{
			UserID:     user.ID,
			Username:   user.Username,
			Groups:     m.directory.GroupNames(ctx, user.ID),
			Restricted: user.Restricted,
			Demo:       user.Demo,
		}
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUser(principal.With(ctx, p), p.UserID)))

		return next(c)
	}
}

// RequireGroup rejects principals that belong to none of the groups.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireGroup(groups ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := principal.From(c.Request().Context())
			if !ok || !p.IsMemberOf(groups...) {
				return response.Forbidden(c, "ACCESS_DENIED", "Permission denied: require group "+strings.Join(groups, " or "))
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the principal set by Authenticate.
func GetPrincipal(c echo.Context) (*principal.Principal, bool) {
	return principal.From(c.Request().Context())
}
