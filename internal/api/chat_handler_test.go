package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"imagevault/internal/api"
	"imagevault/internal/interfaces/mocks"
	"imagevault/internal/model"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatbotService) {
	mockSvc := mocks.NewMockChatbotService(t)
	return api.NewChatHandler(mockSvc), mockSvc
}

func postChat(handler *api.ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.HandleChat(rr, req)
	return rr
}

func TestChatHandler_HandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupChatHandler(t)
		items := []model.FileItem{{ID: 1, Filename: "a.png"}}
		mockSvc.On("HandleMessage", mock.Anything, "k", "show all images").
			Return(model.ImagesReply("🖼️ I found 1 images in your collection:", items)).Once()

		// ACT
		rr := postChat(handler, `{"message":"show all images","api_key":"k"}`)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"type":"images","message":"🖼️ I found 1 images in your collection:","data":[{"id":1,"filename":"a.png","description":""}]}`, rr.Body.String())
	})

	t.Run("Credential alias", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("HandleMessage", mock.Anything, "k", "hello").Return(model.TextReply("hi")).Once()

		rr := postChat(handler, `{"message":"hello","credential":"k"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing credential is rejected regardless of message", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		for _, body := range []string{
			`{"message":"show all images"}`,
			`{"message":"show all images","api_key":""}`,
			`{"message":""}`,
			`{}`,
			`not json`,
		} {
			rr := postChat(handler, body)
			assert.Equal(t, http.StatusUnauthorized, rr.Code, body)
			assert.JSONEq(t, `{"error":"API key required"}`, rr.Body.String(), body)
		}
	})

	t.Run("Message is passed through untrimmed", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("HandleMessage", mock.Anything, "k", "  Xyzzy nonsense query ").
			Return(model.TextReply("no match")).Once()

		rr := postChat(handler, `{"message":"  Xyzzy nonsense query ","api_key":"k"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing message", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		rr := postChat(handler, `{"message":"   ","api_key":"k"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"No message provided"}`, rr.Body.String())
	})
}

func TestChatHandler_HandleVerifyKey(t *testing.T) {
	verify := func(handler *api.ChatHandler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/verify-api-key", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleVerifyKey(rr, req)
		return rr
	}

	t.Run("Valid", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("VerifyKey", mock.Anything, "k").Return(true, nil).Once()

		rr := verify(handler, `{"api_key":"k"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"valid":true,"message":"API key is valid"}`, rr.Body.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("VerifyKey", mock.Anything, "k").Return(false, nil).Once()

		rr := verify(handler, `{"api_key":"k"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"valid":false,"message":"Invalid API key"}`, rr.Body.String())
	})

	t.Run("Missing", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		rr := verify(handler, `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"valid":false,"message":"API key is required"}`, rr.Body.String())
	})

	t.Run("Content Service unreachable", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("VerifyKey", mock.Anything, "k").Return(false, errors.New("connection refused")).Once()

		rr := verify(handler, `{"api_key":"k"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"valid":false,"message":"Error verifying API key"}`, rr.Body.String())
	})
}
