// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid REST client settings
	// (for example, an unparsable address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidChannelConfigs indicates invalid push channel settings
	// (for example, a non-websocket scheme or negative reconnect attempts).
	ErrInvalidChannelConfigs = errors.New("invalid channel configuration")
)
