// Package http implements the REST transport of the trip planner.
//
// It wires the chi router, the request-scoped middleware (trace id, access
// log, panic recovery, request timeout and the bearer auth guard) and the
// handlers for registration, token issuing and itinerary CRUD under /api.
// Handlers decode input, delegate to the service layer and translate its
// errors into {"detail": ...} responses.
package http
