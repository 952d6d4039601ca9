package mocks

import (
	context "context"

	model "imagevault/internal/model"

	mock "github.com/stretchr/testify/mock"
)

// MockChatbotService is a mock type for the ChatbotService type
type MockChatbotService struct {
	mock.Mock
}

// HandleMessage provides a mock function with given fields: ctx, apiKey, message
func (_m *MockChatbotService) HandleMessage(ctx context.Context, apiKey string, message string) model.Reply {
	ret := _m.Called(ctx, apiKey, message)
	return ret.Get(0).(model.Reply)
}

// VerifyKey provides a mock function with given fields: ctx, apiKey
func (_m *MockChatbotService) VerifyKey(ctx context.Context, apiKey string) (bool, error) {
	ret := _m.Called(ctx, apiKey)
	return ret.Bool(0), ret.Error(1)
}

// NewMockChatbotService creates a new instance of MockChatbotService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockChatbotService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatbotService {
	m := &MockChatbotService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
