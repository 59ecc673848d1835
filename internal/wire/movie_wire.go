package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Post("/", movieHandler.CreateMovie)              // POST /movies
		r.Get("/", movieHandler.GetMovies)                 // GET /movies
		r.Get("/{id}", movieHandler.GetMovieByID)          // GET /movies/{id}
		r.Get("/{id}/rating", movieHandler.GetMovieRating) // GET /movies/{id}/rating
		r.Patch("/{id}", movieHandler.UpdateMovie)         // PATCH /movies/{id}
		r.Delete("/{id}", movieHandler.DeleteMovie)        // DELETE /movies/{id}
	})
}
