package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) GetRefreshToken(ctx context.Context, token string) (*RefreshTokenRecord, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RefreshTokenRecord), args.Error(1)
}

func (m *MockRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func setupAuthServiceTest() (*ServiceImpl, *MockRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockRepository)
	service := NewServiceImpl(mockRepo, logger)
	return service, mockRepo
}

func TestServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, never the password", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u types.User) bool {
			return u.Email == "sam@example.com" &&
				u.Role == "user" &&
				u.PasswordHash != "hunter2harder" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2harder")) == nil
		})).Return(nil).Once()

		user, err := service.Register(ctx, types.RegisterRequest{
			Username: "Sam",
			Email:    "Sam@Example.com",
			Password: "hunter2harder",
		})
		require.NoError(t, err)
		assert.Equal(t, "sam@example.com", user.Email, "email is normalized to lower case")
		mockRepo.AssertExpectations(t)
	})

	t.Run("short password is rejected before storage", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()

		_, err := service.Register(ctx, types.RegisterRequest{
			Username: "Sam", Email: "sam@example.com", Password: "short",
		})
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email surfaces ErrEmailTaken", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(ErrEmailTaken).Once()

		_, err := service.Register(ctx, types.RegisterRequest{
			Username: "Sam", Email: "sam@example.com", Password: "hunter2harder",
		})
		assert.True(t, errors.Is(err, ErrEmailTaken))
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2harder"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &types.User{
		ID: uuid.New(), Username: "Sam", Email: "sam@example.com",
		PasswordHash: string(hash), Role: "user",
	}

	t.Run("issues a verifiable access token and stores the refresh token", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByEmail", mock.Anything, "sam@example.com").Return(user, nil).Once()
		mockRepo.On("StoreRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(nil).Once()

		pair, err := service.Login(ctx, "sam@example.com", "hunter2harder")
		require.NoError(t, err)
		require.NotEmpty(t, pair.RefreshToken)

		claims := &appMiddleware.Claims{}
		token, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return appMiddleware.JwtSecretKey, nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "user", claims.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByEmail", mock.Anything, "sam@example.com").Return(user, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()

		_, wrongPass := service.Login(ctx, "sam@example.com", "nope")
		_, unknown := service.Login(ctx, "ghost@example.com", "whatever")
		assert.True(t, errors.Is(wrongPass, ErrInvalidCredentials))
		assert.True(t, errors.Is(unknown, ErrInvalidCredentials))
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_Refresh(t *testing.T) {
	ctx := context.Background()
	user := &types.User{ID: uuid.New(), Email: "sam@example.com", Role: "user"}

	t.Run("valid token is rotated", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		rec := &RefreshTokenRecord{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
		mockRepo.On("GetRefreshToken", mock.Anything, "old-token").Return(rec, nil).Once()
		mockRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()
		mockRepo.On("InvalidateRefreshToken", mock.Anything, "old-token").Return(nil).Once()
		mockRepo.On("StoreRefreshToken", mock.Anything, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(nil).Once()

		pair, err := service.Refresh(ctx, "old-token")
		require.NoError(t, err)
		assert.NotEqual(t, "old-token", pair.RefreshToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		rec := &RefreshTokenRecord{UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}
		mockRepo.On("GetRefreshToken", mock.Anything, "stale").Return(rec, nil).Once()

		_, err := service.Refresh(ctx, "stale")
		assert.True(t, errors.Is(err, ErrInvalidToken))
		mockRepo.AssertExpectations(t)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		revoked := time.Now().Add(-time.Hour)
		rec := &RefreshTokenRecord{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour), RevokedAt: &revoked}
		mockRepo.On("GetRefreshToken", mock.Anything, "revoked").Return(rec, nil).Once()

		_, err := service.Refresh(ctx, "revoked")
		assert.True(t, errors.Is(err, ErrInvalidToken))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetRefreshToken", mock.Anything, "nope").Return(nil, nil).Once()

		_, err := service.Refresh(ctx, "nope")
		assert.True(t, errors.Is(err, ErrInvalidToken))
		mockRepo.AssertExpectations(t)
	})
}
