package usecase

import (
	"time"

	"movie-review/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(repo, log),
	}
}

// now is the creation timestamp source. Postgres keeps microseconds, so the
// value handed back to callers matches what a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
