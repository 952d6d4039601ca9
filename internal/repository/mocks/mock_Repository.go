// Package mocks provides a testify mock of the repository.
package mocks

import (
	context "context"

	model "imagevault/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// MockRepository is a mock type for the Repository type
type MockRepository struct {
	mock.Mock
}

func (_m *MockRepository) userResult(ret mock.Arguments) (*model.User, error) {
	var r0 *model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) folderResult(ret mock.Arguments) (*model.Folder, error) {
	var r0 *model.Folder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Folder)
	}
	return r0, ret.Error(1)
}

func (_m *MockRepository) filesResult(ret mock.Arguments) ([]*model.File, error) {
	var r0 []*model.File
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*model.File)
	}
	return r0, ret.Error(1)
}

// AddActivity provides a mock function with given fields: ctx, entry
func (_m *MockRepository) AddActivity(ctx context.Context, entry *model.ActivityLog) error {
	ret := _m.Called(ctx, entry)
	return ret.Error(0)
}

// CreateFile provides a mock function with given fields: ctx, file
func (_m *MockRepository) CreateFile(ctx context.Context, file *model.File) error {
	ret := _m.Called(ctx, file)
	return ret.Error(0)
}

// CreateFolder provides a mock function with given fields: ctx, folder
func (_m *MockRepository) CreateFolder(ctx context.Context, folder *model.Folder) error {
	ret := _m.Called(ctx, folder)
	return ret.Error(0)
}

// CreateUser provides a mock function with given fields: ctx, user
func (_m *MockRepository) CreateUser(ctx context.Context, user *model.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// DeleteFile provides a mock function with given fields: ctx, fileID
func (_m *MockRepository) DeleteFile(ctx context.Context, fileID int64) error {
	ret := _m.Called(ctx, fileID)
	return ret.Error(0)
}

// DeleteFolder provides a mock function with given fields: ctx, folderID
func (_m *MockRepository) DeleteFolder(ctx context.Context, folderID int64) error {
	ret := _m.Called(ctx, folderID)
	return ret.Error(0)
}

// GetFile provides a mock function with given fields: ctx, fileID
func (_m *MockRepository) GetFile(ctx context.Context, fileID int64) (*model.File, error) {
	ret := _m.Called(ctx, fileID)
	var r0 *model.File
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.File)
	}
	return r0, ret.Error(1)
}

// GetFolder provides a mock function with given fields: ctx, folderID
func (_m *MockRepository) GetFolder(ctx context.Context, folderID int64) (*model.Folder, error) {
	return _m.folderResult(_m.Called(ctx, folderID))
}

// GetUserByAPIKey provides a mock function with given fields: ctx, apiKey
func (_m *MockRepository) GetUserByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return _m.userResult(_m.Called(ctx, apiKey))
}

// GetUserByEmail provides a mock function with given fields: ctx, email
func (_m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return _m.userResult(_m.Called(ctx, email))
}

// GetUserByUsername provides a mock function with given fields: ctx, username
func (_m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return _m.userResult(_m.Called(ctx, username))
}

// ListFiles provides a mock function with given fields: ctx, folderID
func (_m *MockRepository) ListFiles(ctx context.Context, folderID int64) ([]*model.File, error) {
	return _m.filesResult(_m.Called(ctx, folderID))
}

// ListFolders provides a mock function with given fields: ctx, userID
func (_m *MockRepository) ListFolders(ctx context.Context, userID int64) ([]*model.Folder, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*model.Folder
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*model.Folder)
	}
	return r0, ret.Error(1)
}

// SearchFiles provides a mock function with given fields: ctx, userID, query
func (_m *MockRepository) SearchFiles(ctx context.Context, userID int64, query string) ([]*model.File, error) {
	return _m.filesResult(_m.Called(ctx, userID, query))
}

// UpdateAPIKey provides a mock function with given fields: ctx, userID, apiKey
func (_m *MockRepository) UpdateAPIKey(ctx context.Context, userID int64, apiKey string) error {
	ret := _m.Called(ctx, userID, apiKey)
	return ret.Error(0)
}

// NewMockRepository creates a new instance of MockRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	m := &MockRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
