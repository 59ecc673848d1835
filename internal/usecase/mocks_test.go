package usecase

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Review, error) {
	args := m.Called(ctx, movieIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (*Service, *MockMovieRepository, *MockReviewRepository) {
	movies := new(MockMovieRepository)
	reviews := new(MockReviewRepository)
	repo := &repository.Repository{Movie: movies, Review: reviews}
	return NewService(repo, zap.NewNop()), movies, reviews
}

func reviewWithRating(id, movieID int64, rating int) *entity.Review {
	return &entity.Review{
		Base:     entity.Base{ID: id},
		MovieID:  movieID,
		UserName: "user",
		Comment:  "comment",
		Rating:   rating,
	}
}
