package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/studyquiz-api/internal/config"
	"google.golang.org/genai"
)

// Provider performs one generative model call and returns the raw text of
// the top candidate.
type Provider interface {
	SendPrompt(ctx context.Context, model, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, model, prompt string) (string, error) {
	log := config.WithContext(ctx).WithField("model", model)

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", mapGeminiError(err)
	}

	raw := result.Text()
	log.Debugf("[AIQUIZ] Raw Gemini response:\n%s", raw)
	return raw, nil
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return &ErrUpstreamCall{StatusCode: apiErr.Code, Err: err}
	}
	return &ErrUpstreamCall{Err: err}
}
