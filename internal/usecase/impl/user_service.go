// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bluecarbon/internal/delivery/context"
	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/domain/service"
	"bluecarbon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	authRepo         repository.AuthRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account together with its password credential in one
// transaction. Username uniqueness is enforced by the storage constraint, so a
// concurrent duplicate registration still fails cleanly.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	role, ok := entity.RoleFromString(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	srv.log(ctx).Info("Starting registration",
		slog.String("username", input.Username),
		slog.Any("role", role),
	)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		Role:         role,
		Organization: input.Organization,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:       newUser.ID,
			Provider:     entity.ProviderTypePassword,
			PasswordHash: hashedPassword,
		}
		if err := repoFactory.AuthRepo().Create(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create credential during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login checks the password credential and opens a new session.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same failure as a wrong password so login probes can not
			// distinguish unknown usernames.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	auth, err := srv.authRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load credential for login")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded",
		slog.Any("userID", user.ID),
		slog.Any("role", user.Role),
	)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh rotates a valid refresh token: the presented session is revoked and
// a fresh token pair takes its place.
func (srv *userService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WithDetails(err.Error())
	}

	tokenHash := srv.tokenService.HashRefreshToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load session for refresh")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil &&
		!errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.Wrap(err, "failed to revoke session during refresh")
	}

	// Refresh traffic doubles as cleanup for expired session rows. Failures
	// here never block the rotation itself.
	if purged, err := srv.refreshTokenRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Warn("Failed to purge expired sessions", slog.Any("error", err))
	} else if purged > 0 {
		srv.log(ctx).Debug("Purged expired sessions", slog.Int64("count", purged))
	}

	accessToken, refreshToken, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the presented session. An already-revoked token is not an
// error; logout is idempotent.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	tokenHash := srv.tokenService.HashRefreshToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke session during logout")
	}

	srv.log(ctx).Info("Session revoked")

	return nil
}

// openSession generates a token pair and stores the refresh token's hash.
func (srv *userService) openSession(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, session); err != nil {
		return "", "", errors.Wrap(err, "failed to store session")
	}

	return accessToken, refreshToken, nil
}
