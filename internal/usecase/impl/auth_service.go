package impl

import (
	"context"
	"log/slog"

	deliverycontext "projectforge/internal/delivery/context"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Users        repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		users:        params.Users,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the password and issues a token pair. Unknown, deactivated
// and deleted users all fail with the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.loginUser(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// bcrypt is CPU-bound, check outside of any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.users.UpdateLastLogin(ctx, user.ID, srv.clock.Now()); err != nil {
		srv.log(ctx).Warn("Failed to update last login", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	out, err := srv.issue(user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return out, nil
}

func (srv *authService) loginUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Deleted || user.Deactivated {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// RefreshToken issues a new pair for a valid refresh token of an active user.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid refresh token")
	}

	user, err := srv.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrEntityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Deleted || user.Deactivated {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh failed")
	}

	return srv.issue(user)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: srv.clock.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		UserID:           user.ID,
		Username:         user.Username,
		DisplayName:      user.DisplayName(),
	}, nil
}
