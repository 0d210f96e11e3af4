package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-trip-planner/internal/config"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/utils"
)

const (
	generateContentPath = "/v1beta/models/{model}:generateContent"
	apiKeyHeader        = "x-goog-api-key"
	jsonMimeType        = "application/json"
)

type generateContentRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type geminiContentGenerator struct {
	client *utils.HTTPClient
	model  string
	logger *logger.Logger
}

// NewGeminiContentGenerator constructs a [ContentGenerator] for the Gemini
// generateContent REST endpoint described by cfg.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute URL.
func NewGeminiContentGenerator(cfg config.GenAI, logger *logger.Logger) (ContentGenerator, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid genai base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.APIKey != "" {
		client.SetHeader(apiKeyHeader, cfg.APIKey)
	}

	logger.Debug().Str("model", cfg.Model).Str("base_url", baseURL).Msg("creating gemini content generator")

	return &geminiContentGenerator{client: client, model: cfg.Model, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GenerateContent implements [ContentGenerator]. The prompt is sent as a
// single user turn and JSON output is requested.
func (g *geminiContentGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	body := generateContentRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: jsonMimeType},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonMimeType).
		SetPathParam("model", g.model).
		SetBody(body).
		Post(generateContentPath)
	if err != nil {
		return "", fmt.Errorf("generate content request: %w", err)
	}

	log.Debug().
		Str("func", "geminiContentGenerator.GenerateContent").
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("genai responded")

	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var decoded generateContentResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return "", fmt.Errorf("decode generate content response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
