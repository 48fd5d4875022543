package service

import (
	"context"
	"testing"

	"github.com/directly-app/directly/internal/model"
)

func TestList_EmptyStoreReturnsEmptySlice(t *testing.T) {
	svc := NewVideoService(newFakeStore(), nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil {
		t.Fatal("List() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}

func TestCreateThenListRoundTrip(t *testing.T) {
	svc := NewVideoService(newFakeStore(), nil)

	in := model.VideoInput{
		Title:     "Desert Timelapse",
		YouTubeID: "dQw4w9WgXcQ",
		URL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Category:  "YouTube Sync",
		Views:     1234,
	}

	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created record has no id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("created record has no createdAt")
	}

	videos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("got %d records, want 1", len(videos))
	}

	got := videos[0]
	if got.Title != in.Title || got.YouTubeID != in.YouTubeID || got.URL != in.URL ||
		got.Category != in.Category || got.Views != in.Views {
		t.Errorf("round-trip mismatch: got %+v, want fields of %+v", got, in)
	}
}

func TestList_NewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := NewVideoService(store, nil)

	svc.Create(context.Background(), candidate("first", 1))
	svc.Create(context.Background(), candidate("second", 2))

	videos, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if videos[0].YouTubeID != "second" {
		t.Errorf("first listed = %q, want the newest record", videos[0].YouTubeID)
	}
}

func TestDelete_NonExistentIDIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.Create(context.Background(), candidate("vid-a", 100))
	svc := NewVideoService(store, nil)

	for i := 0; i < 2; i++ {
		if err := svc.Delete(context.Background(), "no-such-id"); err != nil {
			t.Fatalf("Delete() attempt %d error = %v, want success", i+1, err)
		}
	}
	if len(store.videos) != 1 {
		t.Errorf("store has %d records, want 1 (unchanged)", len(store.videos))
	}
}

func TestStats_Aggregates(t *testing.T) {
	store := newFakeStore()
	store.Create(context.Background(), candidate("vid-a", 1_000_000))
	store.Create(context.Background(), candidate("vid-b", 200_000))
	store.Create(context.Background(), candidate("vid-c", 30_000))
	store.Create(context.Background(), candidate("vid-d", 4_000))
	svc := NewVideoService(store, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TotalVideos != 4 {
		t.Errorf("TotalVideos = %d, want 4", stats.TotalVideos)
	}
	if stats.TotalViews != 1_234_000 {
		t.Errorf("TotalViews = %d, want 1234000", stats.TotalViews)
	}
	if stats.TotalViewsLabel != "1.2M" {
		t.Errorf("TotalViewsLabel = %q, want 1.2M", stats.TotalViewsLabel)
	}
	if len(stats.TopVideos) != 3 {
		t.Fatalf("got %d top videos, want 3", len(stats.TopVideos))
	}
	if stats.TopVideos[0].Views != 1_000_000 {
		t.Errorf("top video views = %d, want 1000000", stats.TopVideos[0].Views)
	}
}

func TestFormatViews(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.0K"},
		{4_321, "4.3K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{1_234_567, "1.2M"},
		{25_500_000, "25.5M"},
	}

	for _, tt := range tests {
		if got := FormatViews(tt.n); got != tt.want {
			t.Errorf("FormatViews(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
