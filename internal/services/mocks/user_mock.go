// filepath: internal/services/mocks/user_mock.go
package mocks

import (
	"riseup/internal/models"
	"riseup/internal/repository"
	"riseup/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

// userResult unpacks a (*models.User, error) return that may carry a nil user.
func userResult(args mock.Arguments) (*models.User, error) {
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserService) GetUserByUsername(username string) (*models.User, error) {
	return userResult(m.Called(username))
}

func (m *MockUserService) GetUserByID(id int64) (*models.User, error) {
	return userResult(m.Called(id))
}

func (m *MockUserService) Register(cArgs repository.UserCreateArgs) (*models.User, error) {
	return userResult(m.Called(cArgs))
}

func (m *MockUserService) VerifyCredentials(username, password string) (*models.User, error) {
	return userResult(m.Called(username, password))
}

func (m *MockUserService) UpdateUserPassword(username, password string) error {
	return m.Called(username, password).Error(0)
}

func (m *MockUserService) DeleteUser(id int64) error {
	return m.Called(id).Error(0)
}
