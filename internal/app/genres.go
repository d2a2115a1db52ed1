package app

import (
	"net/http"

	"github.com/metinatakli/movies-api/api"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.Genre, len(genres))
	for i, genre := range genres {
		resp[i] = api.Genre{
			Id:   genre.ID,
			Name: genre.Name,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
