package command

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

// fakeServer answers every call with a canned body and records it.
func fakeServer(t *testing.T, reply func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []recordedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		reply(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), seen...)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMovieCreate_ValidatesBeforeSending(t *testing.T) {
	srv, seen := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseCreated(w, response.MovieResponse{ID: 1})
	})

	_, err := execute(t, "", "--api", srv.URL, "movie", "create",
		"--title", "Inception", "--description", "Dreams", "--genre", "Sci-Fi", "--year", "1700")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "releaseYear: Minimum value is 1888")
	assert.Empty(t, seen())
}

func TestMovieUpdate_SendsOnlyChangedFields(t *testing.T) {
	srv, seen := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, response.MovieResponse{ID: 4, Title: "Heat", Genre: "Drama", ReleaseYear: 1995})
	})

	out, err := execute(t, "", "--api", srv.URL, "movie", "update", "4", "--genre", "Drama")

	require.NoError(t, err)
	assert.Contains(t, out, "Genre: Drama")

	requests := seen()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].method)
	assert.Equal(t, "/movies/4", requests[0].path)
	assert.JSONEq(t, `{"genre":"Drama"}`, requests[0].body)
}

func TestMovieDelete_DeclinedConfirmation(t *testing.T) {
	srv, seen := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMessage(w, "Movie deleted successfully")
	})

	out, err := execute(t, "n\n", "--api", srv.URL, "movie", "delete", "9")

	require.NoError(t, err)
	assert.Contains(t, out, "Delete movie 9 and all its reviews?")
	assert.Empty(t, seen())
}

func TestReviewList_ByMovie(t *testing.T) {
	srv, seen := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, []response.ReviewResponse{{ID: 2, MovieID: 3, UserName: "ana", Rating: 5, Comment: "Great"}})
	})

	out, err := execute(t, "", "--api", srv.URL, "review", "list", "--movie", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "Great")
	require.Len(t, seen(), 1)
	assert.Equal(t, "/reviews/movie/3", seen()[0].path)
}

func TestReviewCreate_ServerError(t *testing.T) {
	srv, _ := fakeServer(t, func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseBadRequest(w, "validation failed: movie 77 does not exist", nil)
	})

	_, err := execute(t, "", "--api", srv.URL, "review", "create", "77",
		"--user", "ana", "--comment", "Great", "--rating", "4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie 77 does not exist")
}

func TestParseID(t *testing.T) {
	id, err := parseID("12", "movie")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = parseID("twelve", "movie")
	assert.EqualError(t, err, `invalid movie ID "twelve": must be an integer`)
}
