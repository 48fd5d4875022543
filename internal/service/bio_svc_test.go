package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/directly-app/directly/internal/gemini"
)

func fakeGeminiServer(t *testing.T, reply string, capture *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if capture != nil && len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			*capture = req.Contents[0].Parts[0].Text
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": reply}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestBioGenerate_MissingKeyIsSoftFailure(t *testing.T) {
	client := gemini.NewClient(gemini.Config{APIKey: ""})
	svc := NewBioService(newFakeStore(), client)

	bio, err := svc.Generate(context.Background(), []string{"Desert Timelapse"})
	require.NoError(t, err)
	require.Contains(t, bio, "Gemini API key")
}

func TestBioGenerate_PromptEmbedsJoinedTitles(t *testing.T) {
	var prompt string
	srv := fakeGeminiServer(t, "A cinematic desert storyteller.", &prompt)
	defer srv.Close()

	client := gemini.NewClient(gemini.Config{APIKey: "test-key", BaseURL: srv.URL})
	svc := NewBioService(newFakeStore(), client)

	bio, err := svc.Generate(context.Background(), []string{"Dunes at Dawn", "Canyon Run"})
	require.NoError(t, err)
	require.Equal(t, "A cinematic desert storyteller.", bio)
	require.Contains(t, prompt, "Dunes at Dawn | Canyon Run")
	require.True(t, strings.Contains(prompt, "creative director"), "prompt should carry the fixed instruction")
}

func TestBioGenerate_FallsBackToStoredTitles(t *testing.T) {
	var prompt string
	srv := fakeGeminiServer(t, "bio", &prompt)
	defer srv.Close()

	store := newFakeStore()
	store.Create(context.Background(), candidate("vid-a", 10))

	client := gemini.NewClient(gemini.Config{APIKey: "test-key", BaseURL: srv.URL})
	svc := NewBioService(store, client)

	_, err := svc.Generate(context.Background(), nil)
	require.NoError(t, err)
	require.Contains(t, prompt, "Video vid-a")
}

func TestBioGenerate_NoTitlesAnywhere(t *testing.T) {
	client := gemini.NewClient(gemini.Config{APIKey: "test-key", BaseURL: "http://unreachable.invalid"})
	svc := NewBioService(newFakeStore(), client)

	bio, err := svc.Generate(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, bio)
}

func TestBioGenerate_UpstreamFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := gemini.NewClient(gemini.Config{APIKey: "test-key", BaseURL: srv.URL})
	svc := NewBioService(newFakeStore(), client)

	_, err := svc.Generate(context.Background(), []string{"Title"})
	require.ErrorIs(t, err, gemini.ErrUpstream)
}
