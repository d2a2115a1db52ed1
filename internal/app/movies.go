package app

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/domain"
)

const (
	DefaultSort = "-rate"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context(), domain.MovieFilters{Sort: DefaultSort})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMoviesByGenreId does not check that the genre exists, an unknown genre
// simply has no movies.
func (app *Application) GetMoviesByGenreId(w http.ResponseWriter, r *http.Request, params api.GetMoviesByGenreIdParams) {
	// genre ids are smallints, anything outside that range cannot match
	if params.Id < 0 || params.Id > math.MaxInt16 {
		err := app.writeJSON(w, http.StatusOK, []api.Movie{}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	filters := domain.MovieFilters{
		GenreID: &params.Id,
		Sort:    DefaultSort,
	}

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiMovies(movies), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	input, ok := app.readValidMovieForm(w, r)
	if !ok {
		return
	}

	if input.Poster == nil {
		app.posterRejectedResponse(w, r, domain.ErrPosterRequired)
		return
	}

	err := app.posters.Validate(input.Poster.Filename(), input.Poster.FileSize())
	if err != nil {
		app.posterRejectedResponse(w, r, err)
		return
	}

	if !app.requireGenre(w, r, input.GenreId) {
		return
	}

	poster, err := input.Poster.Bytes()
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("poster couldn't be read: %w", err))
		return
	}

	movie := domain.Movie{
		Title:     input.Title,
		StoryLine: input.StoryLine,
		Year:      input.Year,
		Rate:      input.Rate,
		GenreID:   input.GenreId,
		Poster:    poster,
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidGenre):
			logger.Warn("genre disappeared before the movie was stored", "genre_id", movie.GenreID)
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.metrics.recordAccepted(r.Context(), int64(len(poster)))
	logger.Info("movie created", "movie_id", movie.ID, "poster_bytes", len(poster))

	err = app.writeJSON(w, http.StatusOK, toApiMovie(&movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, movieNotFoundError(id))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	input, ok := app.readValidMovieForm(w, r)
	if !ok {
		return
	}

	if !app.requireGenre(w, r, input.GenreId) {
		return
	}

	// a nil poster keeps the stored one
	var poster []byte

	if input.Poster != nil {
		err = app.posters.Validate(input.Poster.Filename(), input.Poster.FileSize())
		if err != nil {
			app.posterRejectedResponse(w, r, err)
			return
		}

		poster, err = input.Poster.Bytes()
		if err != nil {
			app.serverErrorResponse(w, r, fmt.Errorf("poster couldn't be read: %w", err))
			return
		}
	}

	updated := domain.Movie{
		ID:        movie.ID,
		Title:     input.Title,
		StoryLine: input.StoryLine,
		Year:      input.Year,
		Rate:      input.Rate,
		GenreID:   input.GenreId,
		Poster:    poster,
	}

	err = app.movieRepo.Update(r.Context(), &updated)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie deleted while being updated", "movie_id", id)
			app.notFoundResponseWithErr(w, r, movieNotFoundError(id))
		case errors.Is(err, domain.ErrInvalidGenre):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if poster != nil {
		app.metrics.recordAccepted(r.Context(), int64(len(poster)))
	}

	logger.Info("movie updated", "movie_id", id, "poster_replaced", poster != nil)

	err = app.writeJSON(w, http.StatusOK, toApiMovie(&updated), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, movieNotFoundError(id))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("movie deleted", "movie_id", id)

	err = app.writeJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readValidMovieForm writes the error response itself and reports whether the
// handler may continue.
func (app *Application) readValidMovieForm(w http.ResponseWriter, r *http.Request) (*api.MovieForm, bool) {
	input, err := app.readMovieForm(w, r)
	if err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			app.contentTooLargeResponse(w, r)
		default:
			app.badRequestResponse(w, r, err)
		}

		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	return input, true
}

func (app *Application) requireGenre(w http.ResponseWriter, r *http.Request, genreID int) bool {
	exists, err := app.genreRepo.Exists(r.Context(), genreID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return false
	}

	if !exists {
		app.contextGetLogger(r).Warn("movie rejected for unknown genre", "genre_id", genreID)
		app.badRequestResponse(w, r, domain.ErrInvalidGenre)
		return false
	}

	return true
}

func (app *Application) posterRejectedResponse(w http.ResponseWriter, r *http.Request, err error) {
	reason := "missing"

	switch {
	case errors.Is(err, domain.ErrUnsupportedPoster):
		reason = "type"
	case errors.Is(err, domain.ErrPosterTooLarge):
		reason = "size"
	}

	app.metrics.recordRejected(r.Context(), reason)
	app.contextGetLogger(r).Warn("poster rejected", "reason", reason)

	app.badRequestResponse(w, r, err)
}

func movieNotFoundError(id int) error {
	return fmt.Errorf("no movie was found with ID %d", id)
}

func toApiMovies(movies []*domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	apiMovie := api.Movie{
		Id:        movie.ID,
		Title:     movie.Title,
		StoryLine: movie.StoryLine,
		Year:      movie.Year,
		Rate:      movie.Rate,
		GenreId:   movie.GenreID,
		Poster:    movie.Poster,
	}

	if movie.Genre.ID != 0 {
		apiMovie.Genre = &api.Genre{
			Id:   movie.Genre.ID,
			Name: movie.Genre.Name,
		}
	}

	return apiMovie
}
