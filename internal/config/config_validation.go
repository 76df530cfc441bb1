// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before defaults are applied.
// Only values that no default can repair are rejected here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Channel.ConnectTimeout < 0 || cfg.Channel.ReconnectDelay < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidChannelConfigs)
	}
	if cfg.Channel.MaxReconnectAttempts < 0 {
		return fmt.Errorf("%w: negative reconnect attempts", ErrInvalidChannelConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !strings.HasPrefix(cfg.Adapter.BaseURL, "http://") && !strings.HasPrefix(cfg.Adapter.BaseURL, "https://") {
		return fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Channel.URL, "ws://") && !strings.HasPrefix(cfg.Channel.URL, "wss://") {
		return fmt.Errorf("%w: unsupported scheme in %q", ErrInvalidChannelConfigs, cfg.Channel.URL)
	}
	if cfg.Channel.ConnectTimeout <= 0 || cfg.Channel.ReconnectDelay <= 0 || cfg.Channel.MaxReconnectAttempts < 0 {
		return ErrInvalidChannelConfigs
	}

	return nil
}
