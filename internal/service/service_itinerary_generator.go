package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-trip-planner/internal/adapter"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/models"
)

const promptTemplate = `You are a travel assistant. Based on the user input below, generate a JSON itinerary.

User input:
%s

Respond ONLY with a valid JSON object like:
{"itinerary":[{"day":1,"activities":["Visit the Eiffel Tower","Lunch at a bistro","Evening Seine river cruise"]}]}`

var (
	errMalformedCompletion = errors.New("completion is not valid json")
	errMissingItinerary    = errors.New("completion has no itinerary key")
)

// promptInput is the user input embedded into the prompt. The field order
// is kept stable so prompts are reproducible.
type promptInput struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Interests   []string `json:"interests"`
}

type completion struct {
	Itinerary *[]models.DayPlan `json:"itinerary"`
}

type itineraryGenerator struct {
	contentGenerator adapter.ContentGenerator
	logger           *logger.Logger
}

func NewItineraryGenerator(contentGenerator adapter.ContentGenerator, logger *logger.Logger) ItineraryGenerator {
	return &itineraryGenerator{
		contentGenerator: contentGenerator,
		logger:           logger,
	}
}

// Generate asks the model for a plan of trip. Every failure is reported as
// ErrGenerationUpstream and the cause is logged.
func (g *itineraryGenerator) Generate(ctx context.Context, trip models.Trip) ([]models.DayPlan, error) {
	log := logger.FromContext(ctx)

	prompt, err := buildPrompt(trip)
	if err != nil {
		log.Err(err).Str("func", "itineraryGenerator.Generate").Msg("failed to build prompt")
		return nil, ErrGenerationUpstream
	}

	text, err := g.contentGenerator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Err(err).Str("func", "itineraryGenerator.Generate").Msg("content generation failed")
		return nil, ErrGenerationUpstream
	}

	days, err := parseCompletion(text)
	if err != nil {
		log.Err(err).
			Str("func", "itineraryGenerator.Generate").
			Int("completion_length", len(text)).
			Msg("completion cannot be parsed")
		return nil, ErrGenerationUpstream
	}

	if len(days) != trip.DaysCount {
		log.Warn().
			Int("days_count", trip.DaysCount).
			Int("generated_days", len(days)).
			Msg("generated itinerary length differs from days_count")
	}

	return days, nil
}

func buildPrompt(trip models.Trip) (string, error) {
	interests := trip.Interests
	if interests == nil {
		interests = []string{}
	}

	input, err := json.Marshal(promptInput{
		Destination: trip.Destination,
		StartDate:   trip.StartDate.String(),
		EndDate:     trip.EndDate.String(),
		Interests:   interests,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(promptTemplate, input), nil
}

// stripCodeFence removes a surrounding ```json or ``` markdown fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func parseCompletion(text string) ([]models.DayPlan, error) {
	var c completion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &c); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedCompletion, err)
	}
	if c.Itinerary == nil {
		return nil, errMissingItinerary
	}
	return *c.Itinerary, nil
}
