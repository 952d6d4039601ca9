// Package mocks provides testify mocks of the contentapi interfaces.
package mocks

import (
	context "context"

	model "imagevault/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client type
type MockClient struct {
	mock.Mock
}

func (_m *MockClient) items(ret mock.Arguments) []model.FileItem {
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]model.FileItem)
}

// AllImages provides a mock function with given fields: ctx, apiKey
func (_m *MockClient) AllImages(ctx context.Context, apiKey string) []model.FileItem {
	return _m.items(_m.Called(ctx, apiKey))
}

// AllPDFs provides a mock function with given fields: ctx, apiKey
func (_m *MockClient) AllPDFs(ctx context.Context, apiKey string) []model.FileItem {
	return _m.items(_m.Called(ctx, apiKey))
}

// FolderImages provides a mock function with given fields: ctx, apiKey, folderID
func (_m *MockClient) FolderImages(ctx context.Context, apiKey string, folderID int64) []model.FileItem {
	return _m.items(_m.Called(ctx, apiKey, folderID))
}

// FolderPDFs provides a mock function with given fields: ctx, apiKey, folderID
func (_m *MockClient) FolderPDFs(ctx context.Context, apiKey string, folderID int64) []model.FileItem {
	return _m.items(_m.Called(ctx, apiKey, folderID))
}

// GetFile provides a mock function with given fields: ctx, apiKey, fileID
func (_m *MockClient) GetFile(ctx context.Context, apiKey string, fileID int64) (*model.FileItem, bool) {
	ret := _m.Called(ctx, apiKey, fileID)

	var r0 *model.FileItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FileItem)
	}
	return r0, ret.Bool(1)
}

// GetFolder provides a mock function with given fields: ctx, apiKey, folderID
func (_m *MockClient) GetFolder(ctx context.Context, apiKey string, folderID int64) (*model.FolderDetail, bool) {
	ret := _m.Called(ctx, apiKey, folderID)

	var r0 *model.FolderDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.FolderDetail)
	}
	return r0, ret.Bool(1)
}

// ListFolders provides a mock function with given fields: ctx, apiKey
func (_m *MockClient) ListFolders(ctx context.Context, apiKey string) []model.FolderSummary {
	ret := _m.Called(ctx, apiKey)

	var r0 []model.FolderSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.FolderSummary)
	}
	return r0
}

// PDFText provides a mock function with given fields: ctx, apiKey, fileID
func (_m *MockClient) PDFText(ctx context.Context, apiKey string, fileID int64) (string, bool) {
	ret := _m.Called(ctx, apiKey, fileID)
	return ret.String(0), ret.Bool(1)
}

// Search provides a mock function with given fields: ctx, apiKey, query
func (_m *MockClient) Search(ctx context.Context, apiKey string, query string) []model.FileItem {
	return _m.items(_m.Called(ctx, apiKey, query))
}

// VerifyKey provides a mock function with given fields: ctx, apiKey
func (_m *MockClient) VerifyKey(ctx context.Context, apiKey string) (bool, error) {
	ret := _m.Called(ctx, apiKey)
	return ret.Bool(0), ret.Error(1)
}

// NewMockClient creates a new instance of MockClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
