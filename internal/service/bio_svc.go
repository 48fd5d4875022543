package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/directly-app/directly/internal/gemini"
)

// bioPromptTemplate is the fixed instruction wrapped around the title list.
const bioPromptTemplate = "You are a creative director. Based ONLY on these video titles: [%s], " +
	"write a 2-sentence creative bio summarizing my specific niche and cinematic style."

// missingKeyBio is returned when no Gemini credential is configured. A soft
// failure, not an error.
const missingKeyBio = "Add a Gemini API key to enable bio generation."

// BioService writes a short channel bio from video titles via the
// generative-text API.
type BioService struct {
	store  VideoStore
	client *gemini.Client
}

func NewBioService(store VideoStore, client *gemini.Client) *BioService {
	return &BioService{store: store, client: client}
}

// Generate builds the prompt from the given titles (falling back to the
// stored record titles when none are given) and returns the generated bio.
// With no credential configured it returns an explanatory string and no
// error; upstream failures are returned as errors so callers can tell the
// outcomes apart.
func (s *BioService) Generate(ctx context.Context, titles []string) (string, error) {
	if !s.client.Configured() {
		return missingKeyBio, nil
	}

	if len(titles) == 0 {
		videos, err := s.store.List(ctx)
		if err != nil {
			return "", err
		}
		for _, v := range videos {
			titles = append(titles, v.Title)
		}
	}
	if len(titles) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf(bioPromptTemplate, strings.Join(titles, " | "))
	return s.client.GenerateContent(ctx, prompt)
}
