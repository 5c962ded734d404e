// Real-time Recommendation Engine - Search-aware Content Ranking
// Copyright 2026 sid2001sing
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sid2001sing/Real-time-recommendation-engine

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sid2001sing/Real-time-recommendation-engine/internal/recommend"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeStoreUnavailable   = "STORE_UNAVAILABLE"
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// errorStatus maps an engine error to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrInvalidInput), errors.Is(err, recommend.ErrMalformedInput):
		return http.StatusBadRequest, ErrCodeValidation
	case errors.Is(err, recommend.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrCodeStoreUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeRequestTimeout
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
