package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tripmates/userd/internal/httpapi"
	"github.com/tripmates/userd/internal/service"
	"github.com/tripmates/userd/internal/store"
	"github.com/tripmates/userd/internal/store/drivers/mongo"
	"github.com/tripmates/userd/pkg/jwtx"
	"github.com/tripmates/userd/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the user service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.Signer
	verifier *jwtx.Verifier

	authService    *service.AuthService
	profileService *service.ProfileService
	adminService   *service.AdminService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "userd",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewSigner(cfg.JWTSecret, cfg.Issuer, jwtx.DefaultSessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	verifier, err := jwtx.NewVerifier(cfg.JWTSecret, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("user service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down user service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(ctx); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("user service stopped")
	return nil
}

// initStore connects to MongoDB and creates the indexes the service relies on.
func (app *Application) initStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongo.NewStore(ctx, app.cfg.MongoURI, app.cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	app.db = db

	if err := db.EnsureIndexes(ctx); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("failed to ensure store indexes: %w", err)
	}

	app.logger.Info("store connected", "database", app.cfg.MongoDatabase)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
	}
	app.profileService = &service.ProfileService{
		Store:  app.db,
		Signer: app.signer,
	}
	app.adminService = &service.AdminService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.AdminService = app.adminService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
