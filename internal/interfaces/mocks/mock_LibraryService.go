package mocks

import (
	context "context"

	model "imagevault/internal/model"

	mock "github.com/stretchr/testify/mock"

	service "imagevault/internal/service"
)

// MockLibraryService is a mock type for the LibraryService type
type MockLibraryService struct {
	mock.Mock
}

func (_m *MockLibraryService) item(ret mock.Arguments) (*model.FileItem, error) {
	var r0 *model.FileItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FileItem)
	}
	return r0, ret.Error(1)
}

func (_m *MockLibraryService) items(ret mock.Arguments) ([]model.FileItem, error) {
	var r0 []model.FileItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FileItem)
	}
	return r0, ret.Error(1)
}

// CreateFolder provides a mock function with given fields: ctx, user, req
func (_m *MockLibraryService) CreateFolder(ctx context.Context, user *model.User, req *service.CreateFolderRequest) (*model.FolderSummary, error) {
	ret := _m.Called(ctx, user, req)

	var r0 *model.FolderSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FolderSummary)
	}
	return r0, ret.Error(1)
}

// DeleteFile provides a mock function with given fields: ctx, user, fileID
func (_m *MockLibraryService) DeleteFile(ctx context.Context, user *model.User, fileID int64) error {
	ret := _m.Called(ctx, user, fileID)
	return ret.Error(0)
}

// DeleteFolder provides a mock function with given fields: ctx, user, folderID
func (_m *MockLibraryService) DeleteFolder(ctx context.Context, user *model.User, folderID int64) error {
	ret := _m.Called(ctx, user, folderID)
	return ret.Error(0)
}

// FolderFiles provides a mock function with given fields: ctx, user, folderID, kind
func (_m *MockLibraryService) FolderFiles(ctx context.Context, user *model.User, folderID int64, kind service.FileKind) ([]model.FileItem, error) {
	return _m.items(_m.Called(ctx, user, folderID, kind))
}

// GetFile provides a mock function with given fields: ctx, user, fileID
func (_m *MockLibraryService) GetFile(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error) {
	return _m.item(_m.Called(ctx, user, fileID))
}

// GetFolder provides a mock function with given fields: ctx, user, folderID
func (_m *MockLibraryService) GetFolder(ctx context.Context, user *model.User, folderID int64) (*model.FolderDetail, error) {
	ret := _m.Called(ctx, user, folderID)

	var r0 *model.FolderDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FolderDetail)
	}
	return r0, ret.Error(1)
}

// ListFolders provides a mock function with given fields: ctx, user
func (_m *MockLibraryService) ListFolders(ctx context.Context, user *model.User) ([]model.FolderSummary, error) {
	ret := _m.Called(ctx, user)

	var r0 []model.FolderSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FolderSummary)
	}
	return r0, ret.Error(1)
}

// PDFText provides a mock function with given fields: ctx, user, fileID
func (_m *MockLibraryService) PDFText(ctx context.Context, user *model.User, fileID int64) (*model.FileItem, error) {
	return _m.item(_m.Called(ctx, user, fileID))
}

// Search provides a mock function with given fields: ctx, user, query
func (_m *MockLibraryService) Search(ctx context.Context, user *model.User, query string) ([]model.FileItem, error) {
	return _m.items(_m.Called(ctx, user, query))
}

// Upload provides a mock function with given fields: ctx, user, folderID, in
func (_m *MockLibraryService) Upload(ctx context.Context, user *model.User, folderID int64, in service.UploadInput) (*model.FileItem, error) {
	return _m.item(_m.Called(ctx, user, folderID, in))
}

// NewMockLibraryService creates a new instance of MockLibraryService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLibraryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLibraryService {
	m := &MockLibraryService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
