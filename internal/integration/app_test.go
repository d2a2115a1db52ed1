package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/app"
	"github.com/metinatakli/movies-api/internal/repository"
	appvalidator "github.com/metinatakli/movies-api/internal/validator"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	MovieRepo *repository.PostgresMovieRepository
	GenreRepo *repository.PostgresGenreRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)
	genreRepo := repository.NewPostgresGenreRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		validator,
		movieRepo,
		genreRepo,
	)

	return &TestApp{
		App:       application,
		DB:        db,
		MovieRepo: movieRepo,
		GenreRepo: genreRepo,
	}, nil
}
