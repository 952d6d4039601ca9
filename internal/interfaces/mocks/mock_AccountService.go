// Package mocks provides testify mocks of the service interfaces used by the API layer.
package mocks

import (
	context "context"

	model "imagevault/internal/model"

	mock "github.com/stretchr/testify/mock"

	service "imagevault/internal/service"
)

// MockAccountService is a mock type for the AccountService type
type MockAccountService struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, apiKey
func (_m *MockAccountService) Authenticate(ctx context.Context, apiKey string) (*model.User, error) {
	ret := _m.Called(ctx, apiKey)

	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

// Login provides a mock function with given fields: ctx, req
func (_m *MockAccountService) Login(ctx context.Context, req *service.LoginRequest) (*model.User, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

// RefreshKey provides a mock function with given fields: ctx, user
func (_m *MockAccountService) RefreshKey(ctx context.Context, user *model.User) (string, error) {
	ret := _m.Called(ctx, user)
	return ret.String(0), ret.Error(1)
}

// Register provides a mock function with given fields: ctx, req
func (_m *MockAccountService) Register(ctx context.Context, req *service.RegisterRequest) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

// NewMockAccountService creates a new instance of MockAccountService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountService {
	m := &MockAccountService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
