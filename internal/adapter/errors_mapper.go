// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an *app.TransportError
// carrying the status and trimmed body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &app.TransportError{
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
	}
}
