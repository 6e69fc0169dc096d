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

	"github.com/akshat7606/QuickC/internal/cab/catalog"
	httpapi "github.com/akshat7606/QuickC/internal/cab/http"
	"github.com/akshat7606/QuickC/internal/cab/service"
	"github.com/akshat7606/QuickC/internal/cab/store"
	"github.com/akshat7606/QuickC/internal/cab/store/drivers/sqlite"
	"github.com/akshat7606/QuickC/pkg/faillog"
	"github.com/akshat7606/QuickC/pkg/httpx"
	"github.com/akshat7606/QuickC/pkg/mapmyindia"
	"github.com/akshat7606/QuickC/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the cab service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	drivers  *catalog.Catalog
	failures *faillog.Sink
	resolver *mapmyindia.Resolver

	// Services
	searchService       *service.SearchService
	bookingService      *service.BookingService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	return newApplication(cfg, slogx.New(slogx.Config{
		Service: "cab-aggregator",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	}))
}

func newApplication(cfg Config, logger *slog.Logger) (*Application, error) {
	app := &Application{cfg: cfg, logger: logger}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initCatalog(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initGeocoding()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("cab service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down cab service...")

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

	app.logger.Info("cab service stopped")
	return nil
}

// initDatabase opens the bookings database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
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

func (app *Application) initCatalog() error {
	drivers, err := catalog.Load(app.cfg.DriversFile)
	if err != nil {
		return fmt.Errorf("failed to load driver catalog: %w", err)
	}
	app.drivers = drivers

	app.logger.Info("driver catalog loaded", "drivers", drivers.Len(), "file", app.cfg.DriversFile)
	return nil
}

// initGeocoding wires the failure log and the MapMyIndia resolver. Missing
// credentials are not fatal; geocoding requests fail with 500 instead.
func (app *Application) initGeocoding() {
	creds := app.cfg.Credentials()
	redactor := faillog.NewRedactor(app.cfg.Secrets()...)

	app.failures = faillog.NewSink(faillog.Config{
		Path:       app.cfg.MapMyIndiaLogFile,
		AdminToken: app.cfg.MapMyIndiaAdminToken,
		Debug:      app.cfg.MapMyIndiaDebug,
	}, redactor)

	app.resolver = mapmyindia.New(mapmyindia.Config{
		Credentials:  creds,
		RestBaseURL:  app.cfg.MapMyIndiaRestBaseURL,
		AtlasBaseURL: app.cfg.MapMyIndiaAtlasBaseURL,
		TokenURL:     app.cfg.MapMyIndiaTokenURL,
		Debug:        app.cfg.MapMyIndiaDebug,
	}, app.failures, redactor)

	switch {
	case !creds.Usable():
		app.logger.Warn("no MapMyIndia credentials configured, geocoding is disabled")
	case !creds.HasStaticKey():
		app.logger.Warn("MAPMYINDIA_STATIC_KEY not set, geocoding will use OAuth only")
	}
	if app.cfg.MapMyIndiaDebug {
		app.logger.Warn("MapMyIndia debug mode is on, error responses include sanitized upstream details")
	}
	if err := app.failures.Writable(); err != nil {
		app.logger.Warn("failure log is not writable", "path", app.cfg.MapMyIndiaLogFile, "error", err)
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	pricer := service.NewRandomPricer()

	app.searchService = &service.SearchService{
		Catalog: app.drivers,
		Pricer:  pricer,
	}
	app.bookingService = &service.BookingService{
		Store:   app.db,
		Catalog: app.drivers,
		Pricer:  pricer,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.failures,
		app.cfg.MapMyIndiaLogMax,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		httpx.CORSConfig{AllowedOrigins: httpx.SplitOrigins(app.cfg.FrontendOrigins)},
		app.logger,
	)

	router.Catalog = app.drivers
	router.SearchService = app.searchService
	router.BookingService = app.bookingService
	router.Resolver = app.resolver
	router.Failures = app.failures
	router.GeocodeDebug = app.cfg.MapMyIndiaDebug
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
