package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"
)

// API is the set of calls the terminal UI makes against the server.
type API interface {
	ListMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	GetMovieRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error)
	CreateMovie(ctx context.Context, req request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error

	ListReviews(ctx context.Context) ([]response.ReviewResponse, error)
	ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	CreateReview(ctx context.Context, req request.CreateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d): %s", e.Message, e.StatusCode, utils.FormatValidationErrors(e.Fields))
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) ListMovies(ctx context.Context) ([]response.MovieResponse, error) {
	var movies []response.MovieResponse
	if err := c.do(ctx, http.MethodGet, "/movies", nil, &movies); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (c *HTTPClient) GetMovie(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil, &movie); err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	return &movie, nil
}

func (c *HTTPClient) GetMovieRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error) {
	var rating response.MovieRatingResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d/rating", movieID), nil, &rating); err != nil {
		return nil, fmt.Errorf("get rating for movie %d: %w", movieID, err)
	}
	return &rating, nil
}

func (c *HTTPClient) CreateMovie(ctx context.Context, req request.MovieRequest) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := c.do(ctx, http.MethodPost, "/movies", req, &movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}
	return &movie, nil
}

func (c *HTTPClient) UpdateMovie(ctx context.Context, movieID int64, req request.MovieUpdateRequest) (*response.MovieResponse, error) {
	var movie response.MovieResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/movies/%d", movieID), req, &movie); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", movieID, err)
	}
	return &movie, nil
}

func (c *HTTPClient) DeleteMovie(ctx context.Context, movieID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", movieID), nil, nil); err != nil {
		return fmt.Errorf("delete movie %d: %w", movieID, err)
	}
	return nil
}

func (c *HTTPClient) ListReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	var reviews []response.ReviewResponse
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, &reviews); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (c *HTTPClient) ListMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	var reviews []response.ReviewResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/movie/%d", movieID), nil, &reviews); err != nil {
		return nil, fmt.Errorf("list reviews for movie %d: %w", movieID, err)
	}
	return reviews, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, req request.CreateReviewRequest) (*response.ReviewResponse, error) {
	var review response.ReviewResponse
	if err := c.do(ctx, http.MethodPost, "/reviews", req, &review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", reviewID), nil, nil); err != nil {
		return fmt.Errorf("delete review %d: %w", reviewID, err)
	}
	return nil
}

// do sends body as JSON and decodes a 2xx answer into out when out is not nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&envelope); err != nil || envelope.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = envelope.Message
	apiErr.Fields = envelope.Errors
	return apiErr
}
