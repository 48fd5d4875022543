package service

import (
	"context"
	"sort"

	"github.com/directly-app/directly/internal/middleware"
	"github.com/directly-app/directly/internal/model"
)

// ChannelResolver resolves a channel URL to a ranked list of candidate
// records.
type ChannelResolver interface {
	Resolve(ctx context.Context, channelURL string) ([]model.VideoInput, error)
}

// SyncService replaces the persisted record set with a freshly resolved top-N
// set from the channel.
type SyncService struct {
	store    VideoStore
	resolver ChannelResolver
	cache    *CacheService
}

func NewSyncService(store VideoStore, resolver ChannelResolver, cache *CacheService) *SyncService {
	return &SyncService{store: store, resolver: resolver, cache: cache}
}

// Sync resolves the channel's top videos and swaps them in for the current
// record set. A resolution failure aborts before any mutation. The
// delete-then-insert sweep is best-effort and not transactional: a failed
// deletion or insertion is logged and the sweep continues, so an interrupted
// sync can leave a partially replaced set. The returned slice is a fresh read
// of whatever the store holds after the swap, ranked by views descending. The
// store lists newest-first for the record feed, so the post-swap read is
// re-sorted here.
func (s *SyncService) Sync(ctx context.Context, channelURL string) ([]model.Video, error) {
	current, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := s.resolver.Resolve(ctx, channelURL)
	if err != nil {
		return nil, err
	}

	for _, v := range current {
		if err := s.store.DeleteByID(ctx, v.ID); err != nil {
			middleware.Logger.Warn().
				Str("id", v.ID).
				Err(err).
				Msg("sync: delete failed, continuing sweep")
		}
	}

	inserted := 0
	for _, in := range candidates {
		if _, err := s.store.Create(ctx, in); err != nil {
			middleware.Logger.Warn().
				Str("youtubeId", in.YouTubeID).
				Err(err).
				Msg("sync: insert failed, continuing sweep")
			continue
		}
		inserted++
	}

	middleware.Metrics.VideosSynced.Add(float64(inserted))

	if err := s.cache.Invalidate(ctx); err != nil {
		middleware.Logger.Warn().Err(err).Msg("cache: invalidate after sync failed")
	}

	videos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []model.Video{}
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Views > videos[j].Views
	})
	return videos, nil
}
