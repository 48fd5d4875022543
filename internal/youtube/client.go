package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/directly-app/directly/internal/model"
)

const (
	// DefaultBaseURL is the YouTube Data API v3 endpoint.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultCategory is the category label applied to synced records.
	DefaultCategory = "YouTube Sync"

	watchURLPrefix = "https://www.youtube.com/watch?v="
)

// Sentinel errors for channel resolution.
var (
	// ErrMissingAPIKey indicates no API credential is configured. Returned
	// before any outbound call is attempted.
	ErrMissingAPIKey = errors.New("youtube: api key not configured")

	// ErrInvalidChannelURL indicates the channel URL contains no @handle.
	ErrInvalidChannelURL = errors.New("youtube: channel url must contain an @handle")

	// ErrChannelNotFound indicates the handle matched no channel.
	ErrChannelNotFound = errors.New("youtube: channel not found")

	// ErrUpstream indicates a network or decode failure talking to the API.
	ErrUpstream = errors.New("youtube: upstream request failed")
)

// handleRe matches a channel handle: @ followed by word or hyphen characters.
var handleRe = regexp.MustCompile(`@([\w-]+)`)

// ExtractHandle pulls the @handle out of a channel URL or raw handle string.
func ExtractHandle(channelURL string) (string, error) {
	m := handleRe.FindStringSubmatch(channelURL)
	if m == nil {
		return "", ErrInvalidChannelURL
	}
	return m[1], nil
}

// Config holds the Client settings.
type Config struct {
	APIKey     string
	BaseURL    string       // defaults to DefaultBaseURL
	SampleSize int          // recent uploads fetched per sync, defaults to 50
	TopCount   int          // records kept after ranking, defaults to 6
	HTTPClient *http.Client // defaults to a client with a 15s timeout
}

// Client resolves a channel URL to its top videos via the YouTube Data API.
// It keeps no state between calls.
type Client struct {
	apiKey     string
	baseURL    string
	sampleSize int
	topCount   int
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 50
	}
	if cfg.TopCount <= 0 {
		cfg.TopCount = 6
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		sampleSize: cfg.SampleSize,
		topCount:   cfg.TopCount,
		httpClient: cfg.HTTPClient,
	}
}

// TopCount returns the configured ranking cutoff.
func (c *Client) TopCount() int {
	return c.topCount
}

type channelListResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Resolve turns a channel URL into its top videos ranked by view count.
//
// The pipeline is: extract the @handle, look up the channel's uploads playlist,
// sample its most recent uploads, fetch statistics for those videos in one
// batched call, then rank by views descending and truncate. The sample is
// recency-biased, not the full catalog. No partial results: any upstream
// failure aborts the whole resolution.
func (c *Client) Resolve(ctx context.Context, channelURL string) ([]model.VideoInput, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	handle, err := ExtractHandle(channelURL)
	if err != nil {
		return nil, err
	}

	var channels channelListResponse
	err = c.getJSON(ctx, "/channels", url.Values{
		"part":      {"contentDetails"},
		"forHandle": {handle},
	}, &channels)
	if err != nil {
		return nil, err
	}
	if len(channels.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	uploadsID := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploadsID == "" {
		return nil, fmt.Errorf("%w: channel has no uploads playlist", ErrUpstream)
	}

	var playlist playlistItemsResponse
	err = c.getJSON(ctx, "/playlistItems", url.Values{
		"part":       {"snippet"},
		"maxResults": {strconv.Itoa(c.sampleSize)},
		"playlistId": {uploadsID},
	}, &playlist)
	if err != nil {
		return nil, err
	}

	videoIDs := make([]string, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		if id := item.Snippet.ResourceID.VideoID; id != "" {
			videoIDs = append(videoIDs, id)
		}
	}
	if len(videoIDs) == 0 {
		return []model.VideoInput{}, nil
	}

	var videos videoListResponse
	err = c.getJSON(ctx, "/videos", url.Values{
		"part": {"snippet,statistics"},
		"id":   {strings.Join(videoIDs, ",")},
	}, &videos)
	if err != nil {
		return nil, err
	}

	inputs := make([]model.VideoInput, 0, len(videos.Items))
	for _, item := range videos.Items {
		// Malformed or missing view counts are coerced to zero rather
		// than failing the sync.
		views, parseErr := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		if parseErr != nil || views < 0 {
			views = 0
		}
		inputs = append(inputs, model.VideoInput{
			Title:     item.Snippet.Title,
			YouTubeID: item.ID,
			URL:       watchURLPrefix + item.ID,
			Category:  DefaultCategory,
			Views:     views,
		})
	}

	// Rank by views descending; ties keep the API response order.
	sort.SliceStable(inputs, func(i, j int) bool {
		return inputs[i].Views > inputs[j].Views
	})
	if len(inputs) > c.topCount {
		inputs = inputs[:c.topCount]
	}
	return inputs, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrUpstream, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrUpstream, path, err)
	}
	return nil
}
