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

// ReviewService has no update: reviews are immutable once posted.
type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context) ([]response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	review := &entity.Review{
		Base: entity.Base{
			CreatedAt: now(),
		},
		MovieID:  req.MovieID,
		UserName: req.UserName,
		Comment:  req.Comment,
		Rating:   req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrMovieReference) {
			return nil, fmt.Errorf("%w: movie %d does not exist", ErrValidation, req.MovieID)
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	reviewResp := response.ReviewToResponse(review)
	return &reviewResp, nil
}

func (s *reviewService) GetReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	s.log.Info("Reviews retrieved", zap.Int("count", len(reviews)))

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	s.log.Info("Movie reviews retrieved",
		zap.Int64("movie_id", movieID),
		zap.Int("count", len(reviews)),
	)

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("review %d %w", reviewID, ErrNotFound)
		}
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", reviewID))

	return nil
}
