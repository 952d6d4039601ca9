package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"imagevault/internal/api"
	app_errors "imagevault/internal/errors"
	"imagevault/internal/interfaces/mocks"
	"imagevault/internal/model"
)

type routerFixture struct {
	router   http.Handler
	accounts *mocks.MockAccountService
	library  *mocks.MockLibraryService
	uploads  afero.Fs
}

func setupRouter(t *testing.T) routerFixture {
	return setupRouterWithLimit(t, 100)
}

func setupRouterWithLimit(t *testing.T, perHour int) routerFixture {
	accounts := mocks.NewMockAccountService(t)
	library := mocks.NewMockLibraryService(t)
	uploads := afero.NewMemMapFs()
	router := api.NewRouter(api.ContentRoutes{
		Accounts:         api.NewAccountHandler(accounts),
		Library:          api.NewLibraryHandler(library, 1024),
		AccountService:   accounts,
		Uploads:          uploads,
		RateLimitPerHour: perHour,
	})
	return routerFixture{router: router, accounts: accounts, library: library, uploads: uploads}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Healthz(t *testing.T) {
	f := setupRouter(t)

	rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_APIKeyRequired(t *testing.T) {
	t.Run("Missing key", func(t *testing.T) {
		f := setupRouter(t)
		f.accounts.On("Authenticate", mock.Anything, "").
			Return(nil, fmt.Errorf("%w: API key is missing", app_errors.ErrUnauthorized)).Once()

		rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/api/folders", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"status":"error","message":"API key is missing"}`, rr.Body.String())
	})

	t.Run("Valid key reaches the handler", func(t *testing.T) {
		f := setupRouter(t)
		user := &model.User{ID: 1}
		f.accounts.On("Authenticate", mock.Anything, "good").Return(user, nil).Once()
		f.library.On("GetFolder", mock.Anything, user, int64(12)).Return(&model.FolderDetail{ID: 12, Name: "Vacation"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/folder/12", nil)
		req.Header.Set("X-API-Key", "good")
		rr := serve(f.router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Vacation"`)
	})

	t.Run("Public routes skip the key check", func(t *testing.T) {
		f := setupRouter(t)

		rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/api", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Image API"`)
	})
}

func TestRouter_StaticUploads(t *testing.T) {
	f := setupRouter(t)
	// http.FileServer opens rooted names.
	require.NoError(t, afero.WriteFile(f.uploads, "/1/abc_cat.png", []byte("png-bytes"), 0o644))

	t.Run("Serves stored file", func(t *testing.T) {
		rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/static/uploads/1/abc_cat.png", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "png-bytes", rr.Body.String())
	})

	t.Run("Refuses directory listing", func(t *testing.T) {
		rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/static/uploads/1/", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRouter_RegisterRateLimit(t *testing.T) {
	f := setupRouter(t)

	// Malformed bodies never reach the service but still count against the limit.
	for i := 0; i < 5; i++ {
		rr := serve(f.router, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{`)))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	}

	rr := serve(f.router, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "Rate limit exceeded")
}

func TestRouter_RateLimitPerRoute(t *testing.T) {
	user := &model.User{ID: 1}
	get := func(h http.Handler, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-API-Key", "good")
		return serve(h, req)
	}

	t.Run("Routes have separate budgets", func(t *testing.T) {
		// ARRANGE
		f := setupRouterWithLimit(t, 2)
		f.accounts.On("Authenticate", mock.Anything, "good").Return(user, nil)
		f.library.On("ListFolders", mock.Anything, user).Return([]model.FolderSummary{}, nil).Times(2)
		f.library.On("Search", mock.Anything, user, "x").Return([]model.FileItem{}, nil).Times(2)

		// ACT: use up the folder listing budget.
		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusOK, get(f.router, "/api/folders").Code)
		}
		exhausted := get(f.router, "/api/folders")

		// ASSERT
		assert.Equal(t, http.StatusTooManyRequests, exhausted.Code)
		assert.JSONEq(t, `{"status":"error","message":"Rate limit exceeded. Try again later."}`, exhausted.Body.String())

		// Search still has its whole budget.
		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusOK, get(f.router, "/api/search?q=x").Code)
		}
		assert.Equal(t, http.StatusTooManyRequests, get(f.router, "/api/search?q=x").Code)

		// So does the public info route.
		assert.Equal(t, http.StatusOK, get(f.router, "/api").Code)
	})

	t.Run("Path parameters share the route budget", func(t *testing.T) {
		f := setupRouterWithLimit(t, 2)
		f.accounts.On("Authenticate", mock.Anything, "good").Return(user, nil)
		f.library.On("GetFolder", mock.Anything, user, mock.AnythingOfType("int64")).
			Return(&model.FolderDetail{ID: 1, Name: "Vacation"}, nil).Times(2)

		assert.Equal(t, http.StatusOK, get(f.router, "/api/folder/1").Code)
		assert.Equal(t, http.StatusOK, get(f.router, "/api/folder/2").Code)
		assert.Equal(t, http.StatusTooManyRequests, get(f.router, "/api/folder/3").Code)
	})
}

func TestRouter_SwaggerDoc(t *testing.T) {
	t.Run("Content Service", func(t *testing.T) {
		f := setupRouter(t)

		rr := serve(f.router, httptest.NewRequest(http.MethodGet, "/api/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"/folders"`)
		assert.Contains(t, rr.Body.String(), "Image API")
	})

	t.Run("Chat front-end", func(t *testing.T) {
		router := api.NewChatRouter(api.NewChatHandler(mocks.NewMockChatbotService(t)), []string{"*"})

		rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Image API Chatbot")
		assert.Contains(t, rr.Body.String(), `"/chat"`)
	})
}

func TestChatRouter(t *testing.T) {
	chatbot := mocks.NewMockChatbotService(t)
	router := api.NewChatRouter(api.NewChatHandler(chatbot), []string{"*"})

	t.Run("Healthz", func(t *testing.T) {
		rr := serve(router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Chat", func(t *testing.T) {
		chatbot.On("HandleMessage", mock.Anything, "k", "hello").Return(model.TextReply("hi there")).Once()

		rr := serve(router, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello","api_key":"k"}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"type":"text","message":"hi there"}`, rr.Body.String())
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
		req.Header.Set("Origin", "http://frontend.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := serve(router, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
