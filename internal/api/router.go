package api

import (
	"net/http"
	"strings"
	"time"

	// This blank import registers both Swagger instances with swag.
	_ "imagevault/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/spf13/afero"
	httpSwagger "github.com/swaggo/http-swagger"

	"imagevault/internal/interfaces"
)

// Per-IP hourly limits on the account endpoints.
const (
	registerPerHour   = 5
	loginPerHour      = 10
	refreshKeyPerHour = 3
)

// ContentRoutes bundles what NewRouter needs.
type ContentRoutes struct {
	Accounts       *AccountHandler
	Library        *LibraryHandler
	AccountService interfaces.AccountService
	Uploads        afero.Fs
	// RateLimitPerHour is the per-IP budget of each library route. Every
	// route counts separately.
	RateLimitPerHour int
}

// NewRouter creates the Content Service router with all of its routes.
func NewRouter(c ContentRoutes) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Rate limits key on the client address, so take it from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---
	r.Get("/healthz", healthz)

	// Serves the Swagger UI for the Content Service API.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Stored files are addressed by an unguessable path; directory listings are refused.
	files := http.StripPrefix("/static/uploads/", http.FileServer(afero.NewHttpFs(c.Uploads)))
	r.Get("/static/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})

	// --- API Routes ---
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.With(limitPerHour(c.RateLimitPerHour)).Get("/", c.Library.HandleInfo)
		r.With(limitPerHour(registerPerHour)).Post("/register", c.Accounts.HandleRegister)
		r.With(limitPerHour(loginPerHour)).Post("/login", c.Accounts.HandleLogin)

		// Everything below needs a valid X-API-Key.
		r.Group(func(r chi.Router) {
			r.Use(RequireAPIKey(c.AccountService))

			// limited gives a route its own bucket. Requests to one route never
			// spend the budget of another.
			limited := func() chi.Router { return r.With(limitPerHour(c.RateLimitPerHour)) }

			r.With(limitPerHour(refreshKeyPerHour)).Post("/refresh-key", c.Accounts.HandleRefreshKey)

			// --- Folders ---
			limited().Get("/folders", c.Library.HandleListFolders)
			limited().Post("/folders", c.Library.HandleCreateFolder)
			limited().Get("/folder/{id}", c.Library.HandleGetFolder)
			limited().Delete("/folder/{id}", c.Library.HandleDeleteFolder)
			limited().Get("/folder/{id}/images", c.Library.HandleFolderImages)
			limited().Get("/folder/{id}/pdfs", c.Library.HandleFolderPDFs)
			limited().Post("/folder/{id}/upload", c.Library.HandleUpload)

			// --- Files ---
			limited().Get("/image/{id}", c.Library.HandleGetFile)
			limited().Get("/pdf/{id}", c.Library.HandleGetFile)
			limited().Get("/pdf/{id}/text", c.Library.HandlePDFText)
			limited().Delete("/file/{id}", c.Library.HandleDeleteFile)
			limited().Get("/search", c.Library.HandleSearch)
		})
	})

	return r
}

// NewChatRouter creates the chat front-end router.
func NewChatRouter(chat *ChatHandler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// The browser page may be served from another origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", APIKeyHeader},
		MaxAge:         300, // Seconds a preflight answer may be cached.
	}))

	r.Get("/healthz", healthz)
	r.Get("/api/swagger/*", httpSwagger.Handler(httpSwagger.InstanceName("chat")))

	// One chat turn may fan out to many Content Service calls, bounded by this timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Post("/chat", chat.HandleChat)
		r.Post("/verify-api-key", chat.HandleVerifyKey)
	})

	return r
}

// limitPerHour returns a fresh per-IP limiter with its own counters, so each
// call site is a separate bucket. A non-positive n disables the limit.
func limitPerHour(n int) func(http.Handler) http.Handler {
	if n <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(n, time.Hour,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			respondWithJSON(w, http.StatusTooManyRequests, ErrorResponse{Status: "error", Message: "Rate limit exceeded. Try again later."})
		}),
	)
}

// healthz answers liveness checks. The chat front-end polls it at startup.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
