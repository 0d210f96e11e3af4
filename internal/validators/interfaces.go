// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the API: the trip date
// calculator, whole-record parsing of itinerary requests and credential checks.
//
// Every rule reports through [ValidationErrors], a list of field-scoped
// violations, so transport code can render all problems of a request at once.
package validators

import "context"

// Validator validates an input value, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
