package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/domain"
	"github.com/metinatakli/movies-api/internal/mocks"
	"github.com/metinatakli/movies-api/internal/validator"
	"go.opentelemetry.io/otel/metric/noop"
)

func newTestApplication(opts ...func(*Application)) *Application {
	metrics, _ := newPosterMetrics(noop.NewMeterProvider().Meter(serviceName))

	app := &Application{
		config:    Config{Env: "test"},
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		posters:   domain.DefaultPosterPolicy(),
		metrics:   metrics,
		movieRepo: &mocks.MockMovieRepo{},
		genreRepo: &mocks.MockGenreRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

type testPoster struct {
	filename string
	content  []byte
}

func posterOfSize(filename string, size int) *testPoster {
	return &testPoster{filename: filename, content: bytes.Repeat([]byte{0xff}, size)}
}

// validMovieFields is a form that passes validation for genre 1.
func validMovieFields() map[string]string {
	return map[string]string{
		"title":     "Inception",
		"storyLine": "A thief who steals corporate secrets through dream-sharing technology.",
		"year":      "2010",
		"rate":      "8.8",
		"genreId":   "1",
	}
}

func withField(fields map[string]string, key, value string) map[string]string {
	fields[key] = value
	return fields
}

func withoutField(fields map[string]string, key string) map[string]string {
	delete(fields, key)
	return fields
}

func executeMultipartRequest(
	t *testing.T,
	method, url string,
	fields map[string]string,
	poster *testPoster) (*httptest.ResponseRecorder, *http.Request) {

	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}

	if poster != nil {
		part, err := mw.CreateFormFile("poster", poster.filename)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := part.Write(poster.content); err != nil {
			t.Fatal(err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Field+" "+vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error '%s' not found in response %+v", tt.wantErrMessage, validationResp.ValidationErrors)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}
