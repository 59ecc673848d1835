package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", reviewHandler.CreateReview)                  // POST /reviews
		r.Get("/", reviewHandler.GetReviews)                     // GET /reviews
		r.Get("/movie/{movieId}", reviewHandler.GetMovieReviews) // GET /reviews/movie/{movieId}
		r.Delete("/{id}", reviewHandler.DeleteReview)            // DELETE /reviews/{id}
	})
}
