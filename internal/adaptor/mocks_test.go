package adaptor

import (
	"context"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.MovieResponse), args.Error(1)
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MockMovieService) GetAverageRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieRatingResponse), args.Error(1)
}

func (m *MockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, movieID int64) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID int64) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}
