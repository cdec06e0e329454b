package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/projecthub/internal/projecthub/http"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/service"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store"
	"github.com/aussiebroadwan/projecthub/internal/projecthub/store/drivers/sqlite"
	"github.com/aussiebroadwan/projecthub/pkg/cryptox"
	"github.com/aussiebroadwan/projecthub/pkg/jwtx"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
	"github.com/aussiebroadwan/projecthub/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// ErrMissingSecret is returned outside dev when AUTH_JWT_SECRET is unset.
var ErrMissingSecret = errors.New("AUTH_JWT_SECRET is required outside dev")

// Application owns the process: storage, services, the housekeeping worker
// and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.HS256
	mail   mailx.Sender

	authService         *service.AuthService
	projectService      *service.ProjectService
	ticketService       *service.TicketService
	invitationService   *service.InvitationService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "projecthub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Load the pepper now so a bad path fails at startup, not at first login
	cryptox.SetPepperPath(app.cfg.PepperFile)
	if err := cryptox.LoadPepper(); err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	sender, err := mailx.New(context.Background(), app.cfg.Mail, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	app.mail = sender
	app.logger.Info("mail sender ready", "driver", app.cfg.Mail.Driver)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("projecthub starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains the server, stops the worker and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down projecthub...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("projecthub stopped")
	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore("file:" + app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

// initTokens builds the HS256 signer. Dev runs without a configured secret
// get a random one, which invalidates sessions on restart.
func (app *Application) initTokens() error {
	secret := app.cfg.Auth.Secret
	if secret == "" {
		if app.cfg.Env != "dev" {
			return ErrMissingSecret
		}

		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = generated
		app.logger.Warn("AUTH_JWT_SECRET not set, using a random secret for this run")
	}

	tokens, err := jwtx.NewHS256([]byte(secret), app.cfg.Auth.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize session tokens: %w", err)
	}
	app.tokens = tokens
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.tokens,
		Issuer:   app.cfg.Auth.Issuer,
		TokenTTL: app.cfg.Auth.TokenTTL,
	}
	app.projectService = &service.ProjectService{Store: app.db}
	app.ticketService = &service.TicketService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store: app.db,
		Mailer: &service.InvitationMailer{
			Sender:      app.mail,
			FrontendURL: app.cfg.FrontendURL,
			ProductName: app.cfg.Mail.FromName,
		},
		TTL: app.cfg.InviteTTL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.invitationService,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.mail,
		app.cfg.CORSOrigins,
		app.logger,
	)

	router.AuthService = app.authService
	router.ProjectService = app.projectService
	router.TicketService = app.ticketService
	router.InvitationService = app.invitationService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
