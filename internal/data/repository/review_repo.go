package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	FindByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Review, error)
	Delete(ctx context.Context, id int64) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, movie_id, user_name, comment, rating, created_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, user_name, comment, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserName,
		review.Comment,
		review.Rating,
		review.CreatedAt,
	).Scan(&review.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		r.log.Warn("Review references missing movie", zap.Int64("movie_id", review.MovieID))
		return fmt.Errorf("movie %d: %w", review.MovieID, ErrMovieReference)
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d: %w", review.MovieID, err)
	}

	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all reviews", zap.Error(err))
		return nil, fmt.Errorf("find all reviews: %w", err)
	}

	return r.collect(rows)
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE movie_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}

	return r.collect(rows)
}

// FindByMovieIDs loads the reviews of several movies in one query, keyed by
// movie id. Each slice keeps the newest-first order.
func (r *reviewRepository) FindByMovieIDs(ctx context.Context, movieIDs []int64) (map[int64][]*entity.Review, error) {
	grouped := make(map[int64][]*entity.Review, len(movieIDs))
	if len(movieIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE movie_id = ANY($1)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, movieIDs)
	if err != nil {
		r.log.Error("Failed to find reviews by movie IDs",
			zap.Error(err),
			zap.Int("movie_count", len(movieIDs)),
		)
		return nil, fmt.Errorf("find reviews by movie IDs: %w", err)
	}

	reviews, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		grouped[review.MovieID] = append(grouped[review.MovieID], review)
	}

	return grouped, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (r *reviewRepository) collect(rows pgx.Rows) ([]*entity.Review, error) {
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.UserName,
			&review.Comment,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
