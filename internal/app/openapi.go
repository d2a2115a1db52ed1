package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/movies-api/api"
)

// GetOpenAPI serves the embedded API document as JSON.
func (app *Application) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("failed to load openapi document: %w", err))
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
