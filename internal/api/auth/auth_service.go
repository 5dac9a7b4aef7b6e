package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	appMiddleware "github.com/emergencytradesmen/tradesmen-api/app/middleware"
	"github.com/emergencytradesmen/tradesmen-api/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors the handler maps to response codes.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for accounts and sessions.
type Service interface {
	Register(ctx context.Context, req types.RegisterRequest) (*types.User, error)
	Login(ctx context.Context, email, password string) (*types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutEverywhere(ctx context.Context, userID uuid.UUID) error
}

type ServiceImpl struct {
	logger     *slog.Logger
	repository Repository
	now        func() time.Time
}

func NewServiceImpl(repository Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		repository: repository,
		now:        time.Now,
	}
}

// Register creates an account with a bcrypt-hashed password. Every new
// account gets the "user" role; business-owner roles are assigned out of
// band.
func (s *ServiceImpl) Register(ctx context.Context, req types.RegisterRequest) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Register")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(strings.TrimSpace(req.Username)) < 2 {
		return nil, fmt.Errorf("username must be at least 2 characters")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := types.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			span.SetStatus(codes.Ok, "Email taken")
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Repository failed to create user", slog.Any("error", err))
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "User registered", slog.String("user_id", user.ID.String()))
	span.SetAttributes(attribute.String("user.id", user.ID.String()))
	span.SetStatus(codes.Ok, "User registered")
	return &user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password are deliberately the same error.
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*types.TokenPair, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login", trace.WithAttributes(
		attribute.String("email", email),
	))
	defer span.End()

	user, err := s.repository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		span.SetStatus(codes.Ok, "Unknown email")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		span.SetStatus(codes.Ok, "Wrong password")
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetStatus(codes.Ok, "Logged in")
	return pair, nil
}

// Refresh rotates a refresh token: the old token is revoked and a fresh
// pair issued. Expired, revoked and unknown tokens all fail the same way.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Refresh")
	defer span.End()

	rec, err := s.repository.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if rec == nil || rec.RevokedAt != nil || s.now().After(rec.ExpiresAt) {
		span.SetStatus(codes.Ok, "Refresh token rejected")
		return nil, ErrInvalidToken
	}

	user, err := s.repository.GetUserByID(ctx, rec.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if err := s.repository.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		span.RecordError(err)
		return nil, err
	}
	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetStatus(codes.Ok, "Tokens refreshed")
	return pair, nil
}

func (s *ServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.repository.InvalidateRefreshToken(ctx, refreshToken)
}

func (s *ServiceImpl) LogoutEverywhere(ctx context.Context, userID uuid.UUID) error {
	return s.repository.InvalidateAllUserRefreshTokens(ctx, userID)
}

func (s *ServiceImpl) issueTokens(ctx context.Context, user *types.User) (*types.TokenPair, error) {
	now := s.now()
	claims := appMiddleware.Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(appMiddleware.JwtSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken := generateRefreshToken()
	if err := s.repository.StoreRefreshToken(ctx, user.ID, refreshToken, now.Add(refreshTokenTTL)); err != nil {
		return nil, err
	}
	return &types.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func generateRefreshToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
