package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-trip-planner/internal/adapter"
	"github.com/MKhiriev/go-trip-planner/internal/logger"
	"github.com/MKhiriev/go-trip-planner/internal/mock"
	"github.com/MKhiriev/go-trip-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func cairoTrip() models.Trip {
	return models.Trip{
		Destination: "Cairo",
		StartDate:   models.NewDate(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:     models.NewDate(time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)),
		DaysCount:   3,
		Interests:   []string{"history", "food"},
	}
}

const threeDays = `{"itinerary":[{"day":1,"activities":["Pyramids"]},{"day":2,"activities":["Museum"]},{"day":3,"activities":["Bazaar"]}]}`

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(cairoTrip())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "You are a travel assistant. Based on the user input below, generate a JSON itinerary.\n\nUser input:\n"))
	assert.Contains(t, prompt, `{"destination":"Cairo","start_date":"2025-08-01","end_date":"2025-08-03","interests":["history","food"]}`)
	assert.True(t, strings.HasSuffix(prompt,
		"Respond ONLY with a valid JSON object like:\n"+
			`{"itinerary":[{"day":1,"activities":["Visit the Eiffel Tower","Lunch at a bistro","Evening Seine river cruise"]}]}`))
}

func TestBuildPrompt_NilInterestsRenderAsEmptyList(t *testing.T) {
	trip := cairoTrip()
	trip.Interests = nil

	prompt, err := buildPrompt(trip)

	require.NoError(t, err)
	assert.Contains(t, prompt, `"interests":[]`)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json {\"a\":1} ```\n\t", want: `{"a":1}`},
		{name: "only trailing fence", in: "{\"a\":1}```", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestItineraryGenerator_Generate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	contentGenerator := mock.NewMockContentGenerator(ctrl)
	generator := NewItineraryGenerator(contentGenerator, logger.Nop())
	ctx := context.Background()

	contentGenerator.EXPECT().
		GenerateContent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, `"destination":"Cairo"`)
			return "```json\n" + threeDays + "\n```", nil
		})

	days, err := generator.Generate(ctx, cairoTrip())

	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, models.DayPlan{Day: 1, Activities: []string{"Pyramids"}}, days[0])
	assert.Equal(t, 3, days[2].Day)
}

func TestItineraryGenerator_Generate_DayCountMismatchIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	contentGenerator := mock.NewMockContentGenerator(ctrl)
	generator := NewItineraryGenerator(contentGenerator, logger.Nop())

	contentGenerator.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).
		Return(`{"itinerary":[{"day":1,"activities":["Pyramids"]}]}`, nil)

	days, err := generator.Generate(context.Background(), cairoTrip())

	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestItineraryGenerator_Generate_EmptyItineraryIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	contentGenerator := mock.NewMockContentGenerator(ctrl)
	generator := NewItineraryGenerator(contentGenerator, logger.Nop())

	contentGenerator.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(`{"itinerary":[]}`, nil)

	days, err := generator.Generate(context.Background(), cairoTrip())

	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestItineraryGenerator_Generate_Failures(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		err        error
	}{
		{name: "upstream error", err: adapter.ErrTooManyRequests},
		{name: "timeout", err: context.DeadlineExceeded},
		{name: "malformed json", completion: "Sure! Here is your trip: day one..."},
		{name: "missing itinerary key", completion: `{"plan":[]}`},
		{name: "null itinerary", completion: `{"itinerary":null}`},
		{name: "wrong shape", completion: `{"itinerary":"three days"}`},
		{name: "empty completion", completion: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			contentGenerator := mock.NewMockContentGenerator(ctrl)
			generator := NewItineraryGenerator(contentGenerator, logger.Nop())

			contentGenerator.EXPECT().GenerateContent(gomock.Any(), gomock.Any()).Return(tt.completion, tt.err)

			days, err := generator.Generate(context.Background(), cairoTrip())

			assert.Nil(t, days)
			assert.ErrorIs(t, err, ErrGenerationUpstream)
			if tt.err != nil {
				assert.False(t, errors.Is(err, tt.err), "upstream details must not leak")
			}
		})
	}
}
