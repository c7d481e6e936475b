package impl

import (
	"context"
	"testing"
	"time"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	mockRepo "projectforge/internal/mocks/repository"
	mockSvc "projectforge/internal/mocks/service"
	"projectforge/internal/testutil"
	"projectforge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	users        *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	clock        *testutil.StubClock
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	clock := testutil.FixedClock()

	service := NewAuthService(AuthServiceParams{
		Users:        users,
		Hasher:       hasher,
		TokenService: tokenService,
		Clock:        clock,
		Logger:       testutil.DiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		clock:        clock,
	}
}

func activeUser() *entity.User {
	return &entity.User{
		Base:         entity.Base{ID: 42},
		Username:     "kai",
		Firstname:    strPtr("Kai"),
		Lastname:     strPtr("Reinhard"),
		PasswordHash: "hashed",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.users.EXPECT().FindByUsername(ctx, "kai").Return(activeUser(), nil)
	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.users.EXPECT().UpdateLastLogin(ctx, int64(42), fx.clock.Now()).Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(int64(42), "kai").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "kai", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "Kai Reinhard", out.DisplayName)
	assert.Equal(t, fx.clock.Now().Add(24*time.Hour), out.RefreshExpiresAt)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx authServiceFixtures)
	}{
		{
			name: "unknown user",
			setup: func(fx authServiceFixtures) {
				fx.users.EXPECT().FindByUsername(mock.Anything, "kai").Return(nil, repository.ErrEntityNotFound)
			},
		},
		{
			name: "deactivated user",
			setup: func(fx authServiceFixtures) {
				u := activeUser()
				u.Deactivated = true
				fx.users.EXPECT().FindByUsername(mock.Anything, "kai").Return(u, nil)
			},
		},
		{
			name: "deleted user",
			setup: func(fx authServiceFixtures) {
				u := activeUser()
				u.Deleted = true
				fx.users.EXPECT().FindByUsername(mock.Anything, "kai").Return(u, nil)
			},
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.users.EXPECT().FindByUsername(mock.Anything, "kai").Return(activeUser(), nil)
				fx.hasher.EXPECT().Check("secret", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "kai", Password: "secret"})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	fx := createTestAuthService(t)
	fx.users.EXPECT().FindByUsername(mock.Anything, "kai").Return(nil, errors.New("connection refused"))

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "kai", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: 42, Type: service.TokenTypeRefresh}, nil)
	fx.users.EXPECT().FindByID(ctx, int64(42)).Return(activeUser(), nil)
	fx.tokenService.EXPECT().GenerateTokens(int64(42), "kai").Return("access2", "refresh2", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	out, err := fx.service.RefreshToken(ctx, "refresh")

	require.NoError(t, err)
	assert.Equal(t, "access2", out.AccessToken)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestAuthService(t)
	fx.tokenService.EXPECT().ValidateRefreshToken("bogus").Return(nil, errors.New("malformed"))

	_, err := fx.service.RefreshToken(context.Background(), "bogus")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
