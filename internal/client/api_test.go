package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_CreateMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/movies", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request.MovieRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Inception", req.Title)

		utils.ResponseCreated(w, response.MovieResponse{ID: 1, Title: req.Title, Reviews: []response.ReviewResponse{}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", 5*time.Second)
	movie, err := c.CreateMovie(context.Background(), request.MovieRequest{
		Title: "Inception", Description: "Dreams", Genre: "Sci-Fi", ReleaseYear: 2010,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), movie.ID)
}

func TestHTTPClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reviews":
			utils.ResponseBadRequest(w, "Validation failed", map[string]string{"rating": "Maximum value is 5"})
		case "/movies/99999":
			utils.ResponseNotFound(w, "movie 99999 not found")
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	_, err := c.CreateReview(ctx, request.CreateReviewRequest{MovieID: 1, UserName: "a", Comment: "b", Rating: 6})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Maximum value is 5", apiErr.Fields["rating"])

	err = c.DeleteMovie(ctx, 99999)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "movie 99999 not found")

	_, err = c.ListMovies(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestHTTPClient_Paths(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch {
		case r.Method == http.MethodDelete:
			utils.ResponseMessage(w, "deleted")
		case r.URL.Path == "/movies/3/rating":
			utils.ResponseSuccess(w, response.MovieRatingResponse{MovieID: 3, AverageRating: 4.5})
		case r.URL.Path == "/movies/3":
			utils.ResponseSuccess(w, response.MovieResponse{ID: 3})
		default:
			utils.ResponseSuccess(w, []response.ReviewResponse{})
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 5*time.Second)
	ctx := context.Background()

	rating, err := c.GetMovieRating(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 4.5, rating.AverageRating)

	genre := "Drama"
	_, err = c.UpdateMovie(ctx, 3, request.MovieUpdateRequest{Genre: &genre})
	require.NoError(t, err)

	_, err = c.ListMovieReviews(ctx, 3)
	require.NoError(t, err)
	_, err = c.ListReviews(ctx)
	require.NoError(t, err)
	require.NoError(t, c.DeleteReview(ctx, 8))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /movies/3/rating",
		"PATCH /movies/3",
		"GET /reviews/movie/3",
		"GET /reviews",
		"DELETE /reviews/8",
	}, seen)
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient(srv.URL, 5*time.Second).ListMovies(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
