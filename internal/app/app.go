package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"imagevault/internal/api"
	"imagevault/internal/config"
	"imagevault/internal/contentapi"
	"imagevault/internal/database"
	"imagevault/internal/repository"
	"imagevault/internal/service"
	"imagevault/internal/storage"
)

const (
	shutdownTimeout      = 30 * time.Second
	contentWaitAttempts  = 10
	contentWaitInterval  = 3 * time.Second
	contentProbeDeadline = 2 * time.Second
)

// App is the wired Content Service.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp opens the database, prepares upload storage and builds the HTTP server.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	store, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	repo := repository.NewSQLiteRepository(db)
	accountService := service.NewAccountService(repo)
	libraryService := service.NewLibraryService(repo, store, cfg.PublicBaseURL, cfg.MaxUploadBytes)

	router := api.NewRouter(api.ContentRoutes{
		Accounts:         api.NewAccountHandler(accountService),
		Library:          api.NewLibraryHandler(libraryService, cfg.MaxUploadBytes),
		AccountService:   accountService,
		Uploads:          store.Fs(),
		RateLimitPerHour: cfg.RateLimitPerHour,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// ChatbotApp is the wired chat front-end.
type ChatbotApp struct {
	Server *http.Server
}

// NewChatbotApp builds the chat server around a Content Service client.
func NewChatbotApp(cfg *config.Config) *ChatbotApp {
	client := contentapi.NewClient(cfg.ContentAPIURL, cfg.ContentTimeout, cfg.ContentFanout)
	chatbotService := service.NewChatbotService(client)
	router := api.NewChatRouter(api.NewChatHandler(chatbotService), cfg.CORSOrigins)

	return &ChatbotApp{Server: &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ChatPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}}
}

// Run starts the Content Service and blocks until it is stopped. The return
// value is the process exit code.
func Run() int {
	cfg, ok := bootstrap()
	if !ok {
		return 1
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	return serve(app.Server)
}

// RunChatbot starts the chat front-end and blocks until it is stopped.
func RunChatbot() int {
	cfg, ok := bootstrap()
	if !ok {
		return 1
	}

	waitForContentService(cfg.ContentAPIURL, contentWaitAttempts, contentWaitInterval)

	return serve(NewChatbotApp(cfg).Server)
}

func bootstrap() (*config.Config, bool) {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return nil, false
	}

	setupLogger(cfg.LogLevel)
	logConfigSource()
	return cfg, true
}

// serve runs server until SIGINT or SIGTERM, then drains open connections.
func serve(server *http.Server) int {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, failed := <-errCh:
		if failed {
			slog.Error("Server failed", "error", err)
			return 1
		}
		return 0
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return 1
	}

	slog.Info("Server exited gracefully")
	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// waitForContentService polls the Content Service health endpoint up to
// attempts times and reports whether it answered. Callers start regardless.
func waitForContentService(baseURL string, attempts int, interval time.Duration) bool {
	healthURL := strings.TrimRight(baseURL, "/") + "/healthz"
	slog.Info("Waiting for Content Service to be ready...", "url", healthURL)
	client := &http.Client{Timeout: contentProbeDeadline}

	for i := 1; i <= attempts; i++ {
		resp, err := client.Get(healthURL)
		if err == nil {
			if bErr := resp.Body.Close(); bErr != nil {
				slog.Warn("Failed to close response body in content service health check", "error", bErr)
			}
			if resp.StatusCode == http.StatusOK {
				slog.Info("Content Service is ready.")
				return true
			}
		}
		slog.Debug("Content Service not ready yet", "attempt", i, "error", err)
		if i < attempts {
			time.Sleep(interval)
		}
	}

	slog.Warn("Content Service did not become ready, starting anyway", "attempts", attempts)
	return false
}
