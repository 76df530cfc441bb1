// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransportError_IsMatchesStatusSentinel(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var err error = &TransportError{Status: tt.status}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransportError_UnknownStatus(t *testing.T) {
	err := &TransportError{Status: http.StatusTeapot}

	assert.Equal(t, "http 418: I'm a teapot", err.Error())
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestTransportError_MessageUsesBody(t *testing.T) {
	err := &TransportError{Status: http.StatusNotFound, Body: "agent 3 not found"}
	assert.Equal(t, "http 404: agent 3 not found", err.Error())
}

func TestNetworkError_Unwraps(t *testing.T) {
	err := &NetworkError{Op: "GET /agents", Err: context.DeadlineExceeded}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "GET /agents")
}

func TestDecodeError_Unwraps(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "decode response: unexpected end of JSON input", err.Error())
}

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{Op: "channel connect", After: 5 * time.Second}

	assert.Equal(t, "channel connect timed out after 5s", err.Error())
	assert.True(t, err.Timeout())

	var target *TimeoutError
	assert.ErrorAs(t, error(err), &target)
}
