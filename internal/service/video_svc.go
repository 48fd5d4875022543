package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/model"
)

// VideoStore is the persistence contract for video records.
type VideoStore interface {
	List(ctx context.Context) ([]model.Video, error)
	Create(ctx context.Context, in model.VideoInput) (*model.Video, error)
	DeleteByID(ctx context.Context, id string) error
	Stats(ctx context.Context) (int, int64, error)
	TopByViews(ctx context.Context, limit int) ([]model.Video, error)
}

// topPerformingCount is how many entries the stats response highlights.
const topPerformingCount = 3

type VideoService struct {
	store VideoStore
	cache *CacheService
}

func NewVideoService(store VideoStore, cache *CacheService) *VideoService {
	return &VideoService{store: store, cache: cache}
}

// List returns all records, newest first, through the cache-aside layer.
func (s *VideoService) List(ctx context.Context) ([]model.Video, error) {
	if data, err := s.cache.GetList(ctx); err == nil && data != nil {
		var videos []model.Video
		if err := json.Unmarshal(data, &videos); err == nil {
			middleware.Metrics.CacheHits.Inc()
			return videos, nil
		}
	}
	middleware.Metrics.CacheMisses.Inc()

	videos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}

	if err := s.cache.SetList(ctx, videos); err != nil {
		middleware.Logger.Warn().Err(err).Msg("cache: set video list failed")
	}
	return videos, nil
}

// Create persists one record and returns the stored row.
func (s *VideoService) Create(ctx context.Context, in model.VideoInput) (*model.Video, error) {
	video, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return video, nil
}

// Delete removes a record by id. Unknown ids are a no-op success.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Stats returns the dashboard aggregates: record count, total views with a
// display label, and the top performing records.
func (s *VideoService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	if data, err := s.cache.GetStats(ctx); err == nil && data != nil {
		var stats model.StatsResponse
		if err := json.Unmarshal(data, &stats); err == nil {
			middleware.Metrics.CacheHits.Inc()
			return &stats, nil
		}
	}
	middleware.Metrics.CacheMisses.Inc()

	count, totalViews, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.store.TopByViews(ctx, topPerformingCount)
	if err != nil {
		return nil, err
	}

	topVideos := make([]model.TopVideo, 0, len(top))
	for _, v := range top {
		topVideos = append(topVideos, model.TopVideo{
			ID:    v.ID,
			Title: v.Title,
			Views: v.Views,
		})
	}

	stats := &model.StatsResponse{
		TotalVideos:     count,
		TotalViews:      totalViews,
		TotalViewsLabel: FormatViews(totalViews),
		TopVideos:       topVideos,
	}

	if err := s.cache.SetStats(ctx, stats); err != nil {
		middleware.Logger.Warn().Err(err).Msg("cache: set stats failed")
	}
	return stats, nil
}

func (s *VideoService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		middleware.Logger.Warn().Err(err).Msg("cache: invalidate failed")
	}
}

// FormatViews renders a view count as a compact display label, e.g. 1234567
// becomes "1.2M" and 4321 becomes "4.3K".
func FormatViews(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	case n <= 0:
		return "0"
	default:
		return fmt.Sprintf("%d", n)
	}
}
