package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/domain"
)

var sortColumns = map[string]string{
	"id":    "m.id",
	"title": "m.title",
	"year":  "m.year",
	"rate":  "m.rate",
}

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	column, ok := sortColumns[filters.SortColumn()]
	if !ok {
		column = sortColumns["rate"]
	}

	query := fmt.Sprintf(`SELECT m.id, m.title, m.story_line, m.year, m.rate, m.genre_id, g.id, g.name, m.poster
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE ($1::smallint IS NULL OR m.genre_id = $1)
		ORDER BY %s %s, m.id ASC`, column, filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.GenreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.StoryLine,
			&movie.Year,
			&movie.Rate,
			&movie.GenreID,
			&movie.Genre.ID,
			&movie.Genre.Name,
			&movie.Poster,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT m.id, m.title, m.story_line, m.year, m.rate, m.genre_id, g.id, g.name, m.poster
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE m.id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.StoryLine,
		&movie.Year,
		&movie.Rate,
		&movie.GenreID,
		&movie.Genre.ID,
		&movie.Genre.Name,
		&movie.Poster,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `WITH inserted AS (
			INSERT INTO movies (title, story_line, year, rate, genre_id, poster)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, genre_id
		)
		SELECT i.id, g.id, g.name
		FROM inserted i
		JOIN genres g ON g.id = i.genre_id`

	err := p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.StoryLine,
		movie.Year,
		movie.Rate,
		movie.GenreID,
		movie.Poster).Scan(&movie.ID, &movie.Genre.ID, &movie.Genre.Name)

	if err != nil {
		return translateWriteError(err)
	}

	return nil
}

// Update overwrites every column of the movie. A nil Poster keeps the stored bytes,
// which are read back into movie.Poster.
func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `WITH updated AS (
			UPDATE movies
			SET title = $1, story_line = $2, year = $3, rate = $4, genre_id = $5, poster = COALESCE($6, poster)
			WHERE id = $7
			RETURNING genre_id, poster
		)
		SELECT g.id, g.name, u.poster
		FROM updated u
		JOIN genres g ON g.id = u.genre_id`

	err := p.db.QueryRow(ctx,
		query,
		movie.Title,
		movie.StoryLine,
		movie.Year,
		movie.Rate,
		movie.GenreID,
		movie.Poster,
		movie.ID).Scan(&movie.Genre.ID, &movie.Genre.Name, &movie.Poster)

	if err != nil {
		return translateWriteError(err)
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) (*domain.Movie, error) {
	query := `WITH deleted AS (
			DELETE FROM movies
			WHERE id = $1
			RETURNING id, title, story_line, year, rate, genre_id, poster
		)
		SELECT d.id, d.title, d.story_line, d.year, d.rate, d.genre_id, g.id, g.name, d.poster
		FROM deleted d
		JOIN genres g ON g.id = d.genre_id`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.StoryLine,
		&movie.Year,
		&movie.Rate,
		&movie.GenreID,
		&movie.Genre.ID,
		&movie.Genre.Name,
		&movie.Poster,
	)
	if err != nil {
		return nil, translateWriteError(err)
	}

	return &movie, nil
}

func translateWriteError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrInvalidGenre
	}

	return err
}
