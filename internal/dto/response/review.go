package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movieId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		MovieID:   review.MovieID,
		UserName:  review.UserName,
		Comment:   review.Comment,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

// ReviewsToResponse never returns nil so empty lists encode as [].
func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}
