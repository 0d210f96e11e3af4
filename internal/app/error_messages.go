// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages of the trip planner API.
//
// All Msg* constants are written into the "detail" field of HTTP responses.
// Clients match on some of them, so the wording is part of the API.
package app

const (
	// MsgNotAuthenticated is returned when a protected route is called
	// without a usable bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpired is returned when the bearer token is authentic but
	// its exp claim has passed.
	MsgTokenIsExpired = "Token has expired"

	// MsgCouldNotValidateCredentials is returned for a forged or malformed
	// token, and for a token whose subject no longer exists.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgInvalidLoginPassword is returned by POST /api/token for an unknown
	// email and for a wrong password alike.
	MsgInvalidLoginPassword = "Incorrect email or password"

	MsgEmailAlreadyRegistered = "Email already registered"
	MsgUserRegistered         = "User registered successfully"

	// MsgMalformedJSON is returned when the request body is not valid JSON
	// for the target shape.
	MsgMalformedJSON = "Malformed JSON body"
	MsgMalformedForm = "Malformed form body"

	MsgUnsupportedGrantType = "Unsupported grant_type"

	MsgItineraryNotFound = "Itinerary not found"

	// MsgItineraryDeleted is a format string taking the itinerary id.
	MsgItineraryDeleted = "Itinerary %d deleted successfully"

	// MsgInvalidID is the violation message for a non-integer path id.
	MsgInvalidID = "id must be an integer"

	// MsgGenerationFailed is returned with a trace id when the AI call or
	// its output could not be used.
	MsgGenerationFailed = "itinerary generation failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
