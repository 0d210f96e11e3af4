// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-trip-planner/models"
)

const day = 24 * time.Hour

// ParseDate parses s as a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// CalculateDays returns the inclusive number of days between start and end.
//
// end must be strictly after start, so the smallest valid trip spans two
// days. Returns [ErrInvalidDateFormat] or [ErrInvalidDateRange] otherwise.
func CalculateDays(start, end string) (int, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return 0, err
	}

	endDate, err := ParseDate(end)
	if err != nil {
		return 0, err
	}

	if !endDate.After(startDate) {
		return 0, fmt.Errorf("%w: %s is not after %s", ErrInvalidDateRange, end, start)
	}

	return int(endDate.Sub(startDate)/day) + 1, nil
}
