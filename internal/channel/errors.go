// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import "errors"

var (
	// ErrNotConnected is returned by Send while no connection is open.
	ErrNotConnected = errors.New("channel is not connected")

	// ErrSuperseded is returned by a Connect whose dial was aborted by a
	// later Connect, Disconnect or Close.
	ErrSuperseded = errors.New("connect superseded")

	// ErrClosed is returned by Connect after Close.
	ErrClosed = errors.New("channel client is closed")
)
