package response

import (
	"time"

	"movie-review/internal/data/entity"
	"movie-review/pkg/utils"
)

type MovieResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Genre         string           `json:"genre"`
	ReleaseYear   int              `json:"releaseYear"`
	CreatedAt     time.Time        `json:"createdAt"`
	AverageRating float64          `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type MovieRatingResponse struct {
	MovieID       int64   `json:"movieId"`
	AverageRating float64 `json:"averageRating"`
}

// MovieToResponse converts a movie and its loaded reviews. The average is
// computed here so clients never have to derive it.
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		Genre:         movie.Genre,
		ReleaseYear:   movie.ReleaseYear,
		CreatedAt:     movie.CreatedAt,
		AverageRating: utils.AverageRating(movie.Ratings()),
		Reviews:       ReviewsToResponse(movie.Reviews),
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
