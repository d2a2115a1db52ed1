package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanValue(actual)

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch v := v.(type) {
	case map[string]any:
		for k := range v {
			if _, ok := keysToIgnore[k]; ok {
				delete(v, k)
				continue
			}
			cleanValue(v[k])
		}
	case []any:
		for _, item := range v {
			cleanValue(item)
		}
	}
}

// movieForm builds a multipart movie form and the headers to send it with.
func movieForm(t testing.TB, fields map[string]string, posterName string, poster []byte) (io.Reader, map[string]string) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if posterName != "" {
		part, err := mw.CreateFormFile("poster", posterName)
		require.NoError(t, err)

		_, err = part.Write(poster)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

func defaultMovieFields() map[string]string {
	return map[string]string{
		"title":     TestMovieTitle,
		"storyLine": TestMovieStoryLine,
		"year":      "2010",
		"rate":      "8.8",
		"genreId":   "1",
	}
}

func defaultTestMovie() domain.Movie {
	return domain.Movie{
		Title:     TestMovieTitle,
		StoryLine: TestMovieStoryLine,
		Year:      TestMovieYear,
		Rate:      TestMovieRate,
		GenreID:   TestGenreId,
		Poster:    TestPoster,
	}
}

func insertTestMovie(t testing.TB, app *TestApp, movie domain.Movie) *domain.Movie {
	require.NoError(t, app.MovieRepo.Create(context.Background(), &movie))
	return &movie
}

func storedPoster(t testing.TB, db *pgxpool.Pool, id int) []byte {
	var poster []byte
	err := db.QueryRow(context.Background(), "SELECT poster FROM movies WHERE id = $1", id).Scan(&poster)
	require.NoError(t, err)

	return poster
}

func truncateMovies(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), "TRUNCATE movies RESTART IDENTITY")
	require.NoError(t, err)
}
