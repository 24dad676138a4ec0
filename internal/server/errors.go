package server

import (
	"context"
	"errors"
	"net/http"
)

// ErrNotReady is returned when the PDF is requested before the encoder is confirmed usable
var ErrNotReady = errors.New("pdf generation is not available yet")

// HTTPStatus returns the appropriate HTTP status code for an error.
// Encoder and page count failures are internal errors.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
