package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imagevault/internal/api"
	app_errors "imagevault/internal/errors"
	"imagevault/internal/interfaces/mocks"
	"imagevault/internal/model"
	"imagevault/internal/service"
)

// envelope mirrors the Content Service response body for decoding in tests.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func setupAccountHandler(t *testing.T) (*api.AccountHandler, *mocks.MockAccountService) {
	mockSvc := mocks.NewMockAccountService(t)
	return api.NewAccountHandler(mockSvc), mockSvc
}

func TestAccountHandler_HandleRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupAccountHandler(t)
		body := `{"username":"alice","email":"alice@example.com","password":"s3cret-pass"}`
		mockSvc.On("Register", mock.Anything, &service.RegisterRequest{
			Username: "alice", Email: "alice@example.com", Password: "s3cret-pass",
		}).Return("new-key", nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleRegister(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "User registered successfully", env.Message)
		assert.JSONEq(t, `{"api_key":"new-key"}`, string(env.Data))
	})

	t.Run("Failure - Missing fields", func(t *testing.T) {
		handler, _ := setupAccountHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"alice"}`))
		rr := httptest.NewRecorder()
		handler.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "error", env.Status)
		assert.Contains(t, env.Message, "email")
	})

	t.Run("Failure - Rule violation names the JSON field", func(t *testing.T) {
		handler, _ := setupAccountHandler(t)
		body := `{"username":"al","email":"alice@example.com","password":"s3cret-pass"}`

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Field 'username' failed on the 'min' tag", decodeEnvelope(t, rr).Message)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupAccountHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":`))
		rr := httptest.NewRecorder()
		handler.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request payload", decodeEnvelope(t, rr).Message)
	})

	t.Run("Failure - Username taken", func(t *testing.T) {
		handler, mockSvc := setupAccountHandler(t)
		body := `{"username":"alice","email":"alice@example.com","password":"s3cret-pass"}`
		mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*service.RegisterRequest")).
			Return("", fmt.Errorf("%w: username already exists", app_errors.ErrConflict)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleRegister(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Username already exists", decodeEnvelope(t, rr).Message)
	})
}

func TestAccountHandler_HandleLogin(t *testing.T) {
	body := `{"email":"alice@example.com","password":"s3cret-pass"}`

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupAccountHandler(t)
		mockSvc.On("Login", mock.Anything, mock.AnythingOfType("*service.LoginRequest")).
			Return(&model.User{ID: 1, Username: "alice", APIKey: "the-key"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"api_key":"the-key","username":"alice"}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Failure - Bad credentials", func(t *testing.T) {
		handler, mockSvc := setupAccountHandler(t)
		mockSvc.On("Login", mock.Anything, mock.AnythingOfType("*service.LoginRequest")).
			Return(nil, fmt.Errorf("%w: invalid credentials", app_errors.ErrUnauthorized)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Invalid credentials", decodeEnvelope(t, rr).Message)
	})
}

func TestAccountHandler_HandleRefreshKey(t *testing.T) {
	user := &model.User{ID: 7}

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupAccountHandler(t)
		mockSvc.On("RefreshKey", mock.Anything, user).Return("rotated", nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/refresh-key", nil)
		req = req.WithContext(api.WithUser(req.Context(), user))
		rr := httptest.NewRecorder()
		handler.HandleRefreshKey(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"api_key":"rotated"}`, string(decodeEnvelope(t, rr).Data))
	})

	t.Run("Failure", func(t *testing.T) {
		handler, mockSvc := setupAccountHandler(t)
		mockSvc.On("RefreshKey", mock.Anything, user).Return("", context.DeadlineExceeded).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/refresh-key", nil)
		req = req.WithContext(api.WithUser(req.Context(), user))
		rr := httptest.NewRecorder()
		handler.HandleRefreshKey(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal Server Error", decodeEnvelope(t, rr).Message)
	})
}
