package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, description, genre, release_year, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.ReleaseYear,
		movie.CreatedAt,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

// FindByID returns nil, nil when no movie has the id.
func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre, release_year, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.ReleaseYear,
		&movie.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre, release_year, created_at
		FROM movies
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genre,
			&movie.ReleaseYear,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, genre = $4, release_year = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Genre,
		movie.ReleaseYear,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", movie.ID, ErrNotFound)
	}

	return nil
}

// Delete removes the movie and its reviews in one transaction.
func (r *movieRepository) Delete(ctx context.Context, id int64) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("Failed to rollback delete transaction",
				zap.Error(rbErr),
				zap.Int64("movie_id", id),
			)
		}
	}()

	reviews, err := tx.Exec(ctx, `DELETE FROM reviews WHERE movie_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie reviews",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete reviews of movie %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete transaction",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to commit movie delete: %w", err)
	}

	r.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.Int64("reviews_deleted", reviews.RowsAffected()),
	)
	return nil
}
