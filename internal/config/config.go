// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-log-monitor client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Adapter holds the REST backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Channel holds the push-channel endpoint and its reconnect policy.
	Channel Channel `envPrefix:"CHANNEL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path log output is appended to. Empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the REST client.
type Adapter struct {
	// HTTPAddress is the backend origin, e.g. "http://localhost:8081".
	// The "/api" prefix is appended by the client.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single REST call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Channel holds settings of the push-channel client.
type Channel struct {
	// WSAddress is the push endpoint origin, e.g. "ws://localhost:8081".
	// The "/ws" path is appended by the client. Empty means derived from
	// Adapter.HTTPAddress.
	// Env: CHANNEL_ADDRESS
	WSAddress string `env:"ADDRESS"`

	// ConnectTimeout bounds the connection handshake.
	// Env: CHANNEL_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// ReconnectDelay is the base delay of the exponential reconnect backoff.
	// Env: CHANNEL_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// MaxReconnectAttempts caps automatic reconnects after a drop.
	// Env: CHANNEL_MAX_RECONNECT_ATTEMPTS
	MaxReconnectAttempts int `env:"MAX_RECONNECT_ATTEMPTS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (flagCfg, as filled by BindFlags)
//  3. JSON file (path resolved from sources 1 and 2)
//
// flagCfg may be nil when the caller has no flags.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
