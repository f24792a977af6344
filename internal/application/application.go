package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/avelsher/armory/internal/api"
	"github.com/avelsher/armory/internal/armory"
	"github.com/avelsher/armory/internal/catalog"
	"github.com/avelsher/armory/internal/config"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage catalog.Storage
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := catalog.NewMemoryStorage()

	if cfg.CatalogPath != "" {
		items, err := catalog.LoadFile(cfg.CatalogPath, logger)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		if err := store.Replace(items); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", cfg.CatalogPath, err)
		}
		logger.Info("catalog loaded",
			zap.String("path", cfg.CatalogPath),
			zap.Int("items", len(items)),
		)
	}

	handler := api.NewHandler(
		armory.NewGreedy(),
		armory.NewExhaustive(),
		store,
		api.WithExhaustiveLimit(cfg.MaxExhaustiveItems),
	)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		storage: store,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  NewServer(cfg, router),
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
