// filepath: internal/services/mocks/token_mock.go
package mocks

import (
	"riseup/internal/models"
	"riseup/internal/services/auth"

	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateTokens(user *models.User) (string, string, error) {
	args := m.Called(user)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*models.User, error) {
	return userResult(m.Called(tokenString))
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*models.User, error) {
	return userResult(m.Called(tokenString))
}

func (m *MockTokenService) Refresh(refreshToken string) (string, string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) Logout(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}
