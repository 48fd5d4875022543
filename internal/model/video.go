package model

import "time"

// Video represents a synced portfolio video in the database.
type Video struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	YouTubeID string    `json:"youtubeId"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
}

// VideoInput is the payload for creating a video record. The store assigns
// the id and createdAt on insertion.
type VideoInput struct {
	Title     string `json:"title"`
	YouTubeID string `json:"youtubeId"`
	URL       string `json:"url"`
	Category  string `json:"category"`
	Views     int64  `json:"views"`
}

// SyncRequest is the body of POST /youtube.
type SyncRequest struct {
	ChannelURL string `json:"channelUrl"`
}

// BioRequest is the body of POST /bio. Titles may be empty, in which case the
// stored video titles are used.
type BioRequest struct {
	Titles []string `json:"titles,omitempty"`
}

// BioResponse is the API response for bio generation.
type BioResponse struct {
	Bio string `json:"bio"`
}

// TopVideo is a single entry in the stats top-performing list.
type TopVideo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// StatsResponse is the API response for dashboard statistics.
type StatsResponse struct {
	TotalVideos     int        `json:"totalVideos"`
	TotalViews      int64      `json:"totalViews"`
	TotalViewsLabel string     `json:"totalViewsLabel"`
	TopVideos       []TopVideo `json:"topVideos"`
}
