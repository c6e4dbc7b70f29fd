package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nominalabs/nomina-backend-go/internal/domain/auth"
	"github.com/nominalabs/nomina-backend-go/internal/domain/user"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	tokenRepo  auth.RefreshTokenRepository
	jwtService jwt.Service
}

func NewAuthService(
	userRepo user.Repository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// hashToken reduces a refresh token to the digest stored server side.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.TokenResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Each registration opens a fresh company scope; the registering
	// user administers it.
	companyID := uuid.New().String()
	u := &user.User{
		ID:           uuid.New().String(),
		CompanyID:    &companyID,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*auth.TokenResponse, error) {
	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, auth.ErrInvalidRefreshToken
	}

	known, err := s.tokenRepo.Exists(ctx, userID, hashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, auth.ErrTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Rotate: the presented token dies with this exchange.
	if err := s.tokenRepo.Revoke(ctx, userID, hashToken(refreshToken)); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return nil
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil
	}
	return s.tokenRepo.Revoke(ctx, userID, hashToken(refreshToken))
}

func (s *AuthServiceImpl) Profile(ctx context.Context) (*auth.ProfileResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, user.ErrUserNotFound
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &auth.ProfileResponse{
		ID:        u.ID,
		Email:     u.Email,
		CompanyID: u.CompanyID,
		IsAdmin:   u.IsAdmin,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u *user.User) (*auth.TokenResponse, error) {
	access, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.CompanyID, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Store(ctx, u.ID, hashToken(refresh), time.Unix(refreshExp, 0)); err != nil {
		return nil, err
	}

	return &auth.TokenResponse{
		AccessToken:  access,
		TokenType:    "Bearer",
		ExpiresAt:    accessExp,
		RefreshToken: refresh,
		RefreshExp:   refreshExp,
	}, nil
}
