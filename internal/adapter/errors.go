// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/MKhiriev/go-log-monitor/internal/app"

// Re-exported status sentinels so callers of this package can match
// transport errors without importing package app.
var (
	ErrBadRequest          = app.ErrBadRequest
	ErrUnauthorized        = app.ErrUnauthorized
	ErrForbidden           = app.ErrForbidden
	ErrNotFound            = app.ErrNotFound
	ErrConflict            = app.ErrConflict
	ErrInternalServerError = app.ErrInternalServerError
	ErrBadGateway          = app.ErrBadGateway
)
