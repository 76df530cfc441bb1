// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Option customises a [Client] beyond its config.ClientChannel settings.
type Option func(*options)

type options struct {
	connectTimeout       time.Duration
	reconnectDelay       time.Duration
	maxReconnectAttempts int

	dialer *websocket.Dialer
	header http.Header
	hooks  []func(*Client)

	afterFunc func(time.Duration, func()) *time.Timer
}

// WithConnectTimeout overrides the handshake deadline of every dial.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.connectTimeout = d
		}
	}
}

// WithReconnectDelay overrides the base delay of the reconnect backoff.
func WithReconnectDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.reconnectDelay = d
		}
	}
}

// WithMaxReconnectAttempts overrides how many reconnects are scheduled in a
// row before the client gives up. Zero disables reconnecting.
func WithMaxReconnectAttempts(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxReconnectAttempts = n
		}
	}
}

// WithDialer replaces the gorilla dialer, e.g. to configure TLS or a proxy.
func WithDialer(d *websocket.Dialer) Option {
	return func(o *options) {
		if d != nil {
			o.dialer = d
		}
	}
}

// WithHeader sets extra handshake headers.
func WithHeader(h http.Header) Option {
	return func(o *options) {
		o.header = h.Clone()
	}
}

// WithConnectHook registers fn to run after every successful connect,
// including reconnects. Hooks run in registration order on the goroutine that
// completed the handshake.
func WithConnectHook(fn func(*Client)) Option {
	return func(o *options) {
		if fn != nil {
			o.hooks = append(o.hooks, fn)
		}
	}
}

func withAfterFunc(fn func(time.Duration, func()) *time.Timer) Option {
	return func(o *options) {
		o.afterFunc = fn
	}
}
