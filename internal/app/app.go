package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/metinatakli/movies-api/internal/middleware"
	"github.com/metinatakli/movies-api/internal/repository"
	appvalidator "github.com/metinatakli/movies-api/internal/validator"
	"github.com/metinatakli/movies-api/internal/vcs"
	"github.com/riandyrn/otelchi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	serviceName = "movies-api"

	// DefaultMaxBodySize caps movie form bodies, independent of the poster limit.
	DefaultMaxBodySize int64 = 30 << 20
)

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	posters   domain.PosterPolicy
	metrics   *posterMetrics

	movieRepo domain.MovieRepository
	genreRepo domain.GenreRepository
}

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Poster           PosterConfig
	MaxBodySize      int64
	OtelCollectorUrl string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
	Migrate      bool
}

type PosterConfig struct {
	MaxSize    int64
	Extensions string
}

// Policy builds the poster upload rules, falling back to the defaults for unset values.
func (c PosterConfig) Policy() domain.PosterPolicy {
	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = domain.DefaultMaxPosterSize
	}

	extensions := strings.Split(c.Extensions, ",")
	policy := domain.NewPosterPolicy(maxSize, extensions...)
	if len(policy.Extensions()) == 0 {
		policy = domain.NewPosterPolicy(maxSize, domain.DefaultPosterExtensions...)
	}

	return policy
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	movieRepo domain.MovieRepository,
	genreRepo domain.GenreRepository) *Application {

	metrics, err := newPosterMetrics(otel.Meter(serviceName))
	if err != nil {
		logger.Warn("failed to create poster metrics, falling back to no-op", "error", err)
		metrics, _ = newPosterMetrics(noop.NewMeterProvider().Meter(serviceName))
	}

	return &Application{
		config:    cfg,
		logger:    logger,
		validator: validator,
		posters:   cfg.Poster.Policy(),
		metrics:   metrics,
		movieRepo: movieRepo,
		genreRepo: genreRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN (empty runs on the in-memory store)")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.Migrate, "db-migrate", true, "Apply pending migrations on startup")

	flag.Int64Var(&cfg.Poster.MaxSize, "poster-max-size", domain.DefaultMaxPosterSize, "Max poster size in bytes")
	flag.StringVar(&cfg.Poster.Extensions, "poster-extensions", strings.Join(domain.DefaultPosterExtensions, ","), "Comma separated list of allowed poster extensions")

	flag.Int64Var(&cfg.MaxBodySize, "max-body-size", DefaultMaxBodySize, "Max request body size in bytes for movie forms")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize telemetry", "error", err)
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	var (
		movieRepo domain.MovieRepository
		genreRepo domain.GenreRepository
	)

	if cfg.DB.DSN == "" {
		logger.Warn("no database DSN configured, using the in-memory store")

		store := repository.NewMemoryStore(repository.SeedGenres...)
		movieRepo = store.Movies()
		genreRepo = store.Genres()
	} else {
		if cfg.DB.Migrate {
			err = repository.Migrate(cfg.DB.DSN)
			if err != nil {
				logger.Error("failed to migrate database", "error", err)
				return err
			}
		}

		db, err := NewDatabasePool(cfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			return err
		}
		defer db.Close()

		movieRepo = repository.NewPostgresMovieRepository(db)
		genreRepo = repository.NewPostgresGenreRepository(db)
	}

	app := NewApp(cfg, logger, appvalidator.NewValidator(), movieRepo, genreRepo)

	return app.run()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(middleware.NotFoundHandler)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.RecoverPanic(app.logger))
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	r.Get("/openapi.json", app.GetOpenAPI)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
