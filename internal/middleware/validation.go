package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/directly-app/directly/internal/model"
)

// Field length limits matching database schema constraints.
const (
	MaxYouTubeIDLen = 16  // videos.youtube_id VARCHAR(16)
	MaxCategoryLen  = 64  // videos.category VARCHAR(64)
	MaxTitleLen     = 512
)

// youtubeIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
var youtubeIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateRecordID checks that a record id is a well-formed UUID.
func ValidateRecordID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "id is required"
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "id must be a valid UUID"
	}
	return id, ""
}

// ValidateVideoInput checks a create payload against schema limits and fills
// in the derivable url field. Returns an error message, or "" when valid.
func ValidateVideoInput(in *model.VideoInput) string {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return "title is required"
	}
	if len(in.Title) > MaxTitleLen {
		return "title is too long"
	}

	in.YouTubeID = strings.TrimSpace(in.YouTubeID)
	if in.YouTubeID == "" {
		return "youtubeId is required"
	}
	if len(in.YouTubeID) > MaxYouTubeIDLen {
		return "youtubeId must be at most 16 characters"
	}
	if !youtubeIDRe.MatchString(in.YouTubeID) {
		return "youtubeId contains invalid characters"
	}

	if in.Views < 0 {
		return "views must be non-negative"
	}

	if len(in.Category) > MaxCategoryLen {
		return "category is too long"
	}

	// The url is derivable from the video id.
	if strings.TrimSpace(in.URL) == "" {
		in.URL = "https://www.youtube.com/watch?v=" + in.YouTubeID
	}
	return ""
}
