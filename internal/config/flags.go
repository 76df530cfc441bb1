// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers all configuration flags on fs and returns the
// [StructuredConfig] they are written into once fs has been parsed.
//
// Flags:
//
//	-a/--address              backend origin (e.g. http://localhost:8081)
//	--ws-address              push channel origin (e.g. ws://localhost:8081)
//	--request-timeout         REST request timeout (e.g. "15s")
//	--connect-timeout         push channel handshake timeout (e.g. "5s")
//	--reconnect-delay         base reconnect backoff delay (e.g. "1s")
//	--max-reconnect-attempts  automatic reconnect attempts after a drop
//	--log-level               log level (debug, info, warn, error)
//	--log-file                log file path (stderr when empty)
//	-c/--config               json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "Backend origin, e.g. http://localhost:8081")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "REST request timeout (e.g., 15s)")

	fs.StringVar(&cfg.Channel.WSAddress, "ws-address", "", "Push channel origin, e.g. ws://localhost:8081")
	fs.DurationVar(&cfg.Channel.ConnectTimeout, "connect-timeout", 0, "Push channel handshake timeout (e.g., 5s)")
	fs.DurationVar(&cfg.Channel.ReconnectDelay, "reconnect-delay", 0, "Base reconnect backoff delay (e.g., 1s)")
	fs.IntVar(&cfg.Channel.MaxReconnectAttempts, "max-reconnect-attempts", 0, "Automatic reconnect attempts after a drop")

	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path (stderr when empty)")

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
