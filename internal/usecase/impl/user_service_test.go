package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bluecarbon/internal/domain/entity"
	domainerrors "bluecarbon/internal/domain/errors"
	"bluecarbon/internal/domain/repository"
	"bluecarbon/internal/domain/service"
	mockRepo "bluecarbon/internal/mocks/repository"
	mockService "bluecarbon/internal/mocks/service"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username:     "mangrove-ngo",
		Email:        "ngo@example.com",
		Password:     "strong-password",
		Role:         "NGO",
		Organization: "Coastal Trust",
	}

	fx.hasher.EXPECT().Hash("strong-password").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypePassword, auth.Provider)
					assert.Equal(t, "hashed", auth.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "mangrove-ngo", out.User.Username)
	assert.Equal(t, entity.RoleNGO, out.User.Role)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username: "someone",
		Email:    "someone@example.com",
		Password: "password123",
		Role:     "SUPERUSER",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrUsernameTaken)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "taken",
		Email:    "taken@example.com",
		Password: "password123",
		Role:     "COMMUNITY",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "mangrove-ngo", Role: entity.RoleNGO}

	fx.userRepo.EXPECT().FindByUsername(ctx, "mangrove-ngo").Return(user, nil)
	fx.authRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("strong-password", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID, entity.RoleNGO).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashRefreshToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "mangrove-ngo", Password: "strong-password"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, "mangrove-ngo").
		Return(&entity.User{ID: userID, Username: "mangrove-ngo", Role: entity.RoleNGO}, nil)
	fx.authRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "mangrove-ngo", Password: "wrong"})

	require.Error(t, err)
	// Must match the unknown-username failure exactly.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleCommunity}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Role: entity.RoleCommunity, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashRefreshToken("old-refresh").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(3), nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, entity.RoleCommunity).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashRefreshToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	out, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_ExpiredPurgeFailureIgnored(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleNGO}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Role: entity.RoleNGO, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashRefreshToken("old-refresh").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "old-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "old-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(0), errors.New("deadlock detected"))
	fx.tokenService.EXPECT().GenerateTokens(userID, entity.RoleNGO).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashRefreshToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	out, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
}

func TestUserService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("revoked").
		Return(&service.Claims{UserID: userID, Role: entity.RoleNGO, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashRefreshToken("revoked").Return("revoked-hash")
	fx.refreshTokenRepo.EXPECT().FindByHash(ctx, "revoked-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "revoked"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Refresh_MalformedToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "garbage"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().HashRefreshToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestUserService_Logout_AlreadyRevoked(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.tokenService.EXPECT().HashRefreshToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}
