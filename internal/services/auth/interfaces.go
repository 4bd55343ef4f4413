// filepath: internal/services/auth/interfaces.go
package auth

import "riseup/internal/models"

// TokenService defines the contract for JWT operations.
type TokenService interface {
	GenerateTokens(user *models.User) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*models.User, error)
	ValidateRefreshToken(tokenString string) (*models.User, error)
	// Refresh exchanges a valid refresh token for a new pair and revokes the old one.
	Refresh(refreshToken string) (accessToken string, newRefreshToken string, err error)
	Logout(refreshToken string) error
}
