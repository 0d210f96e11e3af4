// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// accessRecorder wraps the response writer handed to itinerary and auth
// handlers so withLogging can report what was sent back.
type accessRecorder struct {
	http.ResponseWriter

	status int
	size   int
}

func (w *accessRecorder) WriteHeader(statusCode int) {
	// the first status wins, later calls are dropped like net/http does
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *accessRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *accessRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode reports 200 for handlers that returned without writing anything.
func (w *accessRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
