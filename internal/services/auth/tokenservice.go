// filepath: internal/services/auth/token_service.go
package auth

import (
	"errors"
	"fmt"
	"riseup/internal/config"
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/services"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const issuer = "riseup"

// accessClaims defines the custom claims for our short-lived access token.
type accessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// refreshClaims defines the claims for our long-lived, stateful refresh token.
type refreshClaims struct {
	jwt.RegisteredClaims
}

// Compile-time check to ensure tokenService implements the TokenService interface.
var _ TokenService = (*tokenService)(nil)

// tokenService implements the TokenService interface.
type tokenService struct {
	cfg     *config.Config
	userSvc services.UserService
	repo    *repository.Repository
	now     func() time.Time
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config, userSvc services.UserService, repo *repository.Repository) TokenService {
	return &tokenService{cfg: cfg, userSvc: userSvc, repo: repo, now: time.Now}
}

func (s *tokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(s.cfg.JWTSecret), nil
}

// GenerateTokens creates, signs, and stores a new token pair.
func (s *tokenService) GenerateTokens(user *models.User) (string, string, error) {
	now := s.now()
	subject := strconv.FormatInt(user.ID, 10)

	// Access token: short-lived, stateless
	accessExpiry := now.Add(s.cfg.AccessDuration)
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, &accessClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	})
	signedAccess, err := access.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	// Refresh token: long-lived, stateful. The ULID jti keeps two tokens
	// issued in the same second distinct.
	refreshExpiry := now.Add(s.cfg.RefreshDuration)
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
			ID:        ulid.Make().String(),
		},
	})
	signedRefresh, err := refresh.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.repo.StoreRefreshToken(user.ID, hashToken(signedRefresh), refreshExpiry); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return signedAccess, signedRefresh, nil
}

// ValidateAccessToken verifies the signature and expiry of an access token and
// returns the associated user.
func (s *tokenService) ValidateAccessToken(tokenString string) (*models.User, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err // Handles expired tokens as well
	}
	if !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid access token")
	}

	user, err := s.userSvc.GetUserByUsername(claims.Username)
	if err != nil {
		return nil, errors.New("user not found for token")
	}
	// A re-created account with the same name must not inherit old tokens.
	if strconv.FormatInt(user.ID, 10) != claims.Subject {
		return nil, errors.New("token subject does not match user")
	}
	return user, nil
}

// ValidateRefreshToken verifies the signature and checks the database to
// ensure the token hasn't been revoked.
func (s *tokenService) ValidateRefreshToken(tokenString string) (*models.User, error) {
	claims := &refreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid refresh token signature or claims")
	}

	userID, err := s.repo.ValidateRefreshToken(hashToken(tokenString))
	if err != nil {
		return nil, fmt.Errorf("token not found in database (revoked or expired): %w", err)
	}

	user, err := s.userSvc.GetUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found for valid token")
	}
	return user, nil
}

// Refresh rotates a refresh token: the old one is revoked before a new pair is issued.
func (s *tokenService) Refresh(refreshToken string) (string, string, error) {
	user, err := s.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if err := s.repo.DeleteRefreshToken(hashToken(refreshToken)); err != nil {
		return "", "", fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return s.GenerateTokens(user)
}

// Logout invalidates a refresh token by deleting its hash from the database.
func (s *tokenService) Logout(refreshToken string) error {
	return s.repo.DeleteRefreshToken(hashToken(refreshToken))
}
