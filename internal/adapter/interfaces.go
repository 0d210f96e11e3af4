// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the outbound integrations of the trip
// planner.
//
// The primary abstraction is [ContentGenerator], which decouples the service
// layer from the generative-AI provider. The package ships a Gemini REST
// implementation ([NewGeminiContentGenerator]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrTooManyRequests]
// for 429, [ErrUnauthorized] for 401).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/content_generator_mock.go -package=mock

// ContentGenerator sends a single prompt to a text-generation model.
type ContentGenerator interface {
	// GenerateContent returns the raw text of the first candidate. The call
	// is bounded by ctx and the client timeout and is never retried.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
