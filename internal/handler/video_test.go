package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/directly-app/directly/internal/model"
	"github.com/directly-app/directly/internal/service"
)

func newVideoApp(store service.VideoStore) *fiber.App {
	app := fiber.New()
	h := NewVideoHandler(service.NewVideoService(store, nil))
	app.Get("/videos", h.List)
	app.Post("/videos", h.Create)
	app.Delete("/videos", h.Delete)
	return app
}

func TestVideoEndpoint_ListEmpty(t *testing.T) {
	app := newVideoApp(&stubStore{})

	resp, err := app.Test(httptest.NewRequest("GET", "/videos", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	var videos []model.Video
	if err := json.Unmarshal(body, &videos); err != nil {
		t.Fatalf("unmarshal response: %v (%s)", err, body)
	}
	if videos == nil || len(videos) != 0 {
		t.Errorf("body = %s, want empty JSON array", body)
	}
}

func TestVideoEndpoint_CreateAndList(t *testing.T) {
	store := &stubStore{}
	app := newVideoApp(store)

	status, body, err := postJSON(app, "/videos",
		`{"title":"Desert Timelapse","youtubeId":"dQw4w9WgXcQ","views":1234}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", status, body)
	}

	var created model.Video
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if created.ID == "" {
		t.Error("created record has no id")
	}
	if created.URL != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("url = %q, want derived watch url", created.URL)
	}
	if len(store.videos) != 1 {
		t.Errorf("store has %d records, want 1", len(store.videos))
	}
}

func TestVideoEndpoint_CreateInvalidBody(t *testing.T) {
	app := newVideoApp(&stubStore{})

	status, body, err := postJSON(app, "/videos", `{"youtubeId":"dQw4w9WgXcQ"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if code := errorCode(t, body); code != "INVALID_FIELD" {
		t.Errorf("code = %q, want INVALID_FIELD", code)
	}
}

func TestVideoEndpoint_DeleteUnknownIDSucceeds(t *testing.T) {
	app := newVideoApp(&stubStore{})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("DELETE",
			"/videos?id=b3d6a6a0-9f1a-4f7e-8f9e-0c2d8f3a1b2c", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("attempt %d status = %d, want 200", i+1, resp.StatusCode)
		}
		var payload struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(body, &payload); err != nil || !payload.Success {
			t.Errorf("attempt %d body = %s, want {\"success\":true}", i+1, body)
		}
	}
}

func TestVideoEndpoint_DeleteMalformedID(t *testing.T) {
	app := newVideoApp(&stubStore{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/videos?id=not-a-uuid", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
