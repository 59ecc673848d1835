package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	GetAverageRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	ids := make([]int64, len(movies))
	for i, movie := range movies {
		ids[i] = movie.ID
	}

	// Eager load all reviews with a single query
	reviews, err := s.repo.Review.FindByMovieIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load reviews for movies",
			zap.Error(err),
			zap.Int("movie_count", len(movies)),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	for _, movie := range movies {
		movie.Reviews = reviews[movie.ID]
	}

	s.log.Info("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.loadMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie retrieved",
		zap.Int64("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Int("review_count", len(movie.Reviews)),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// GetAverageRating does not check that the movie exists, an unknown id has
// no reviews and therefore averages to 0.
func (s *movieService) GetAverageRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to load reviews for rating",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	ratings := make([]int, len(reviews))
	for i, review := range reviews {
		ratings[i] = review.Rating
	}
	avg := utils.AverageRating(ratings)

	s.log.Debug("Average rating computed",
		zap.Int64("movie_id", movieID),
		zap.Int("review_count", len(reviews)),
		zap.Float64("avg_rating", avg),
	)

	return &response.MovieRatingResponse{
		MovieID:       movieID,
		AverageRating: avg,
	}, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Base: entity.Base{
			CreatedAt: now(),
		},
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.loadMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	// Apply partial updates only for provided fields
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != movie.Description {
		movie.Description = *req.Description
		updated = true
	}

	if req.Genre != nil && *req.Genre != movie.Genre {
		movie.Genre = *req.Genre
		updated = true
	}

	if req.ReleaseYear != nil && *req.ReleaseYear != movie.ReleaseYear {
		movie.ReleaseYear = *req.ReleaseYear
		updated = true
	}

	if updated {
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("movie %d %w", movieID, ErrNotFound)
			}
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.Int64("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("movie %d %w", movieID, ErrNotFound)
		}
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", movieID))

	return nil
}

// loadMovie fetches one movie with its reviews attached.
func (s *movieService) loadMovie(ctx context.Context, movieID int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie %d %w", movieID, ErrNotFound)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get reviews for movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}
	movie.Reviews = reviews

	return movie, nil
}
