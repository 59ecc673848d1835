package client

import (
	"context"
	"sync"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
)

// fakeAPI serves canned data and records what the UI asked for. Fields set
// to a non-nil error make the matching call fail.
type fakeAPI struct {
	mu sync.Mutex

	movies  []response.MovieResponse
	reviews map[int64][]response.ReviewResponse
	ratings map[int64]float64

	listErr    error
	getErr     error
	ratingErr  error
	reviewsErr error
	createErrs []error

	calls        map[string]int
	created      []request.MovieRequest
	reviewReqs   []request.CreateReviewRequest
	deleted      []int64
	deletedRevs  []int64
	detailCtxs   []context.Context
	nextMovieID  int64
	nextReviewID int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		reviews:      map[int64][]response.ReviewResponse{},
		ratings:      map[int64]float64{},
		calls:        map[string]int{},
		nextMovieID:  100,
		nextReviewID: 500,
	}
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) hit(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	f.hit("ListMovies")
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]response.MovieResponse(nil), f.movies...), nil
}

func (f *fakeAPI) GetMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	f.hit("GetMovie")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCtxs = append(f.detailCtxs, ctx)
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, m := range f.movies {
		if m.ID == movieID {
			m.Reviews = f.reviews[movieID]
			return &m, nil
		}
	}
	return nil, &APIError{StatusCode: 404, Message: "movie not found"}
}

func (f *fakeAPI) GetMovieRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error) {
	f.hit("GetMovieRating")
	if f.ratingErr != nil {
		return nil, f.ratingErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return &response.MovieRatingResponse{MovieID: movieID, AverageRating: f.ratings[movieID]}, nil
}

func (f *fakeAPI) CreateMovie(ctx context.Context, req request.MovieRequest) (*response.MovieResponse, error) {
	f.hit("CreateMovie")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.nextMovieID++
	movie := response.MovieResponse{
		ID:          f.nextMovieID,
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Reviews:     []response.ReviewResponse{},
	}
	f.movies = append(f.movies, movie)
	return &movie, nil
}

func (f *fakeAPI) UpdateMovie(ctx context.Context, movieID int64, req request.MovieUpdateRequest) (*response.MovieResponse, error) {
	f.hit("UpdateMovie")
	return nil, &APIError{StatusCode: 404, Message: "movie not found"}
}

func (f *fakeAPI) DeleteMovie(ctx context.Context, movieID int64) error {
	f.hit("DeleteMovie")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, movieID)
	kept := f.movies[:0]
	for _, m := range f.movies {
		if m.ID != movieID {
			kept = append(kept, m)
		}
	}
	f.movies = kept
	return nil
}

func (f *fakeAPI) ListReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	f.hit("ListReviews")
	return nil, nil
}

func (f *fakeAPI) ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	f.hit("ListMovieReviews")
	if f.reviewsErr != nil {
		return nil, f.reviewsErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reviews[movieID], nil
}

func (f *fakeAPI) CreateReview(ctx context.Context, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	f.hit("CreateReview")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviewReqs = append(f.reviewReqs, req)
	f.nextReviewID++
	review := response.ReviewResponse{
		ID:       f.nextReviewID,
		MovieID:  req.MovieID,
		UserName: req.UserName,
		Comment:  req.Comment,
		Rating:   req.Rating,
	}
	f.reviews[req.MovieID] = append([]response.ReviewResponse{review}, f.reviews[req.MovieID]...)
	return &review, nil
}

func (f *fakeAPI) DeleteReview(ctx context.Context, reviewID int64) error {
	f.hit("DeleteReview")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedRevs = append(f.deletedRevs, reviewID)
	return nil
}
