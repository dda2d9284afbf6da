package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/Acr0no/fcg-users-app/models"
)

// UserAPIMock is a testify/mock for clients.UserAPI.
// We use this to unit-test the controllers without a running backend.
type UserAPIMock struct{ mock.Mock }

func (m *UserAPIMock) ListUsers(q models.ListQuery) (*models.Page, error) {
	args := m.Called(q)
	if v := args.Get(0); v != nil {
		return v.(*models.Page), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserAPIMock) GetUser(id int64) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserAPIMock) CreateUser(form models.UserForm) (*models.User, error) {
	args := m.Called(form)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserAPIMock) UpdateUser(id int64, form models.UserForm) (*models.User, error) {
	args := m.Called(id, form)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserAPIMock) DeleteUser(id int64) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserAPIMock) UploadUsersCSV(filename string, file io.Reader) error {
	return m.Called(filename, file).Error(0)
}
