package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/jsonutil"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.opentelemetry.io/otel/trace"
)

const multipartMemory = 8 << 20

var errBodyTooLarge = errors.New("request body too large")

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger := app.logger.With("request_id", middleware.GetReqID(r.Context()))

	if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
		logger = logger.With("trace_id", sc.TraceID().String())
	}

	return logger
}

// readMovieForm parses the multipart movie form. Empty numeric fields are left
// at zero for the validator to report; a file part without a name counts as no poster.
func (app *Application) readMovieForm(w http.ResponseWriter, r *http.Request) (*api.MovieForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, app.maxBodySize())

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &maxBytesError):
			return nil, errBodyTooLarge
		case errors.Is(err, http.ErrNotMultipart):
			return nil, errors.New("body must be a multipart form")
		default:
			return nil, errors.New("body contains a malformed multipart form")
		}
	}

	form := api.MovieForm{
		Title:     r.PostFormValue("title"),
		StoryLine: r.PostFormValue("storyLine"),
	}

	form.Year, err = formInt(r, "year")
	if err != nil {
		return nil, err
	}

	form.GenreId, err = formInt(r, "genreId")
	if err != nil {
		return nil, err
	}

	if v := r.PostFormValue("rate"); v != "" {
		form.Rate, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("rate must be a number")
		}
	}

	if files := r.MultipartForm.File["poster"]; len(files) > 0 && files[0].Filename != "" {
		var poster openapi_types.File
		poster.InitFromMultipart(files[0])
		form.Poster = &poster
	}

	return &form, nil
}

func (app *Application) maxBodySize() int64 {
	if app.config.MaxBodySize <= 0 {
		return DefaultMaxBodySize
	}

	return app.config.MaxBodySize
}

func formInt(r *http.Request, key string) (int, error) {
	v := r.PostFormValue(key)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}

	return n, nil
}
