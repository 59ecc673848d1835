package repository

import (
	"context"
	"testing"
	"time"

	"movie-review/internal/data/entity"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var reviewColumnNames = []string{"id", "movie_id", "user_name", "comment", "rating", "created_at"}

func TestReviewRepository_CreateAssignsID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())

	review := &entity.Review{
		Base:     entity.Base{CreatedAt: time.Now()},
		MovieID:  1,
		UserName: "A",
		Comment:  "great",
		Rating:   5,
	}

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(1), "A", "great", 5, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	require.NoError(t, repo.Create(context.Background(), review))
	assert.Equal(t, int64(10), review.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_CreateOrphanIsReferenceError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(int64(404), "A", "great", 5, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.Create(context.Background(), &entity.Review{
		MovieID:  404,
		UserName: "A",
		Comment:  "great",
		Rating:   5,
	})
	assert.ErrorIs(t, err, ErrMovieReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByMovieIDNewestFirst(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`WHERE movie_id = \$1\s+ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(reviewColumnNames).
			AddRow(int64(3), int64(1), "C", "ok", 3, now).
			AddRow(int64(2), int64(1), "B", "good", 4, now.Add(-time.Minute)))

	reviews, err := repo.FindByMovieID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.False(t, reviews[0].CreatedAt.Before(reviews[1].CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindAllNewestFirst(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`FROM reviews\s+ORDER BY created_at DESC, id DESC`).
		WillReturnRows(pgxmock.NewRows(reviewColumnNames).
			AddRow(int64(7), int64(2), "D", "fine", 3, now).
			AddRow(int64(6), int64(1), "C", "ok", 3, now).
			AddRow(int64(4), int64(1), "B", "good", 4, now.Add(-time.Minute)).
			AddRow(int64(1), int64(2), "A", "great", 5, now.Add(-time.Hour)))

	reviews, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 4)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i-1].CreatedAt.Before(reviews[i].CreatedAt),
			"review %d is older than review %d", reviews[i-1].ID, reviews[i].ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByMovieIDsGroups(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(`movie_id = ANY\(\$1\)`).
		WithArgs([]int64{1, 2}).
		WillReturnRows(pgxmock.NewRows(reviewColumnNames).
			AddRow(int64(5), int64(2), "E", "meh", 2, now).
			AddRow(int64(4), int64(1), "D", "wow", 5, now.Add(-time.Second)).
			AddRow(int64(3), int64(1), "C", "ok", 3, now.Add(-time.Minute)))

	grouped, err := repo.FindByMovieIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, grouped[1], 2)
	require.Len(t, grouped[2], 1)
	assert.Equal(t, int64(4), grouped[1][0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_FindByMovieIDsEmptySkipsQuery(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())

	grouped, err := repo.FindByMovieIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_DeleteMissingIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewReviewRepository(mock, zap.NewNop())

	mock.ExpectExec("DELETE FROM reviews WHERE id").
		WithArgs(int64(99999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
