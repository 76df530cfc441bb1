// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by [NewClientConfig] to unset fields.
const (
	DefaultHTTPAddress          = "http://localhost:8081"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultConnectTimeout       = 5 * time.Second
	DefaultReconnectDelay       = time.Second
	DefaultMaxReconnectAttempts = 5
	DefaultLogLevel             = "info"

	apiPrefix   = "/api"
	channelPath = "/ws"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientAdapter holds the resolved REST client settings.
type ClientAdapter struct {
	// BaseURL is the backend origin with the "/api" prefix,
	// e.g. "http://localhost:8081/api".
	BaseURL string
	// RequestTimeout is the timeout of a single REST call.
	RequestTimeout time.Duration
}

// ClientChannel holds the resolved push channel settings.
type ClientChannel struct {
	// URL is the full push endpoint, e.g. "ws://localhost:8081/ws".
	URL                  string
	ConnectTimeout       time.Duration
	ReconnectDelay       time.Duration
	MaxReconnectAttempts int
}

// ClientConfig is the resolved client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Channel ClientChannel
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and resolves it with [NewClientConfig].
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig applies defaults to cfg, resolves the REST base URL and the
// push endpoint URL, and validates the result.
//
// The push endpoint origin defaults to the backend origin with its scheme
// switched to ws (or wss for https).
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	httpOrigin, err := normalizeOrigin(cfg.Adapter.HTTPAddress, DefaultHTTPAddress, "http")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	wsOrigin := cfg.Channel.WSAddress
	if strings.TrimSpace(wsOrigin) == "" {
		wsOrigin = channelOriginFor(httpOrigin)
	}
	wsOrigin, err = normalizeOrigin(wsOrigin, "", "ws")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChannelConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: withDefault(cfg.App.LogLevel, DefaultLogLevel),
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        httpOrigin + apiPrefix,
			RequestTimeout: withDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Channel: ClientChannel{
			URL:                  wsOrigin + channelPath,
			ConnectTimeout:       withDefault(cfg.Channel.ConnectTimeout, DefaultConnectTimeout),
			ReconnectDelay:       withDefault(cfg.Channel.ReconnectDelay, DefaultReconnectDelay),
			MaxReconnectAttempts: withDefault(cfg.Channel.MaxReconnectAttempts, DefaultMaxReconnectAttempts),
		},
	}

	return clientCfg, clientCfg.validate()
}

func withDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// normalizeOrigin trims raw, falls back to def, adds defaultScheme when raw
// has none, and strips any trailing slash.
func normalizeOrigin(raw, def, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = def
	}
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func channelOriginFor(httpOrigin string) string {
	switch {
	case strings.HasPrefix(httpOrigin, "https://"):
		return "wss://" + strings.TrimPrefix(httpOrigin, "https://")
	case strings.HasPrefix(httpOrigin, "http://"):
		return "ws://" + strings.TrimPrefix(httpOrigin, "http://")
	default:
		return httpOrigin
	}
}
