package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/service"
	mockSvc "projectforge/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directory map[int64]*entity.User

func (d directory) GetUser(_ context.Context, userID int64) (*entity.User, bool) {
	u, ok := d[userID]

	return u, ok
}

func (d directory) GroupNames(_ context.Context, userID int64) []string {
	if userID == 1 {
		return []string{constants.GroupAdmin}
	}

	return nil
}

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockSvc.MockTokenService) {
	tokenService := mockSvc.NewMockTokenService(t)
	dir := directory{
		1: {Base: entity.Base{ID: 1}, Username: "admin"},
		2: {Base: entity.Base{ID: 2}, Username: "kai", Restricted: true},
		3: {Base: entity.Base{ID: 3}, Username: "gone", Deactivated: true},
	}

	return NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenService, Directory: dir}), tokenService
}

func serve(m echo.MiddlewareFunc, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = m(next)(c)

	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, tokenService := newAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 1, Type: service.TokenTypeAccess}, nil)

	var got *principal.Principal
	rec := serve(m.Authenticate, "Bearer good", func(c echo.Context) error {
		got, _ = GetPrincipal(c)

		return okHandler(c)
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "admin", got.Username)
	assert.True(t, got.IsMemberOf(constants.GroupAdmin))
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(ts *mockSvc.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
			},
		},
		{
			name:   "deactivated user",
			header: "Bearer old",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().ValidateToken("old").Return(&service.Claims{UserID: 3}, nil)
			},
		},
		{
			name:   "unknown user",
			header: "Bearer ghost",
			setup: func(ts *mockSvc.MockTokenService) {
				ts.EXPECT().ValidateToken("ghost").Return(&service.Claims{UserID: 99}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, tokenService := newAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(tokenService)
			}

			rec := serve(m.Authenticate, tt.header, okHandler)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireGroup(t *testing.T) {
	m, tokenService := newAuthMiddleware(t)
	tokenService.EXPECT().ValidateToken("user").Return(&service.Claims{UserID: 2}, nil)
	tokenService.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: 1}, nil)
	chain := func(next echo.HandlerFunc) echo.HandlerFunc {
		return m.Authenticate(m.RequireGroup(constants.GroupAdmin)(next))
	}

	assert.Equal(t, http.StatusForbidden, serve(chain, "Bearer user", okHandler).Code)
	assert.Equal(t, http.StatusOK, serve(chain, "Bearer admin", okHandler).Code)
}
