package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/directly-app/directly/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// EnsureSchema creates the videos table if it does not exist yet. Called once
// at startup.
func (r *VideoRepo) EnsureSchema(ctx context.Context) error {
	ddl := `
		CREATE TABLE IF NOT EXISTS videos (
			id         UUID PRIMARY KEY,
			title      TEXT NOT NULL,
			youtube_id VARCHAR(16) NOT NULL,
			url        TEXT NOT NULL,
			category   VARCHAR(64) NOT NULL DEFAULT '',
			views      BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	_, err := r.pool.Exec(ctx, ddl)
	return err
}

// List returns all video records, newest first.
func (r *VideoRepo) List(ctx context.Context) ([]model.Video, error) {
	query := `
		SELECT id, title, youtube_id, url, category, views, created_at
		FROM videos
		ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		err := rows.Scan(&v.ID, &v.Title, &v.YouTubeID, &v.URL, &v.Category, &v.Views, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Create assigns an id and creation timestamp, persists the record and returns
// the stored row. Negative view counts are coerced to zero.
func (r *VideoRepo) Create(ctx context.Context, in model.VideoInput) (*model.Video, error) {
	v := model.Video{
		ID:        uuid.NewString(),
		Title:     in.Title,
		YouTubeID: in.YouTubeID,
		URL:       in.URL,
		Category:  in.Category,
		Views:     max(in.Views, 0),
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO videos (id, title, youtube_id, url, category, views, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Title, v.YouTubeID, v.URL, v.Category, v.Views, v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteByID removes a record by id. Deleting an id that does not exist is
// treated as success.
func (r *VideoRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	return err
}

// Stats returns the record count and the sum of all view counts.
func (r *VideoRepo) Stats(ctx context.Context) (int, int64, error) {
	var count int
	var totalViews int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*), coalesce(sum(views), 0) FROM videos`,
	).Scan(&count, &totalViews)
	return count, totalViews, err
}

// TopByViews returns up to limit records ranked by view count descending.
func (r *VideoRepo) TopByViews(ctx context.Context, limit int) ([]model.Video, error) {
	query := `
		SELECT id, title, youtube_id, url, category, views, created_at
		FROM videos
		ORDER BY views DESC, created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		err := rows.Scan(&v.ID, &v.Title, &v.YouTubeID, &v.URL, &v.Category, &v.Views, &v.CreatedAt)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
