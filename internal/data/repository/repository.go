package repository

import (
	"errors"

	"movie-review/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a primary key matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrMovieReference is returned when a review points at a movie that does not exist.
	ErrMovieReference = errors.New("referenced movie does not exist")
)

type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
