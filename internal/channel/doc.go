// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package channel implements the push side of the client connectivity layer:
// a WebSocket client that keeps one connection to the backend's /ws
// endpoint and fans incoming {type, data} messages out to listeners
// registered per message type.
//
// # Lifecycle
//
// A [Client] starts Disconnected. [Client.Connect] moves it to Connecting and
// arms the connect timeout; a finished handshake moves it to Connected and
// resets the reconnect backoff. When the connection closes with any code other
// than 1000 (normal closure), or the dial fails, a reconnect is scheduled after
// base*2^(n-1) for attempt n, up to the configured maximum. [Client.Disconnect]
// closes with 1000 and therefore never triggers a reconnect.
//
// # Dispatch
//
// Messages of one connection are delivered in arrival order on a single read
// goroutine. Listeners receive the decoded "data" value when the key is
// present, otherwise the whole message. Known message types are decoded into
// their models type; unknown ones are handed over as json.RawMessage. A
// panicking listener is recovered and logged, the remaining listeners still
// run.
//
// Listeners must not call [Client.Close]: it waits for the read goroutine the
// listener runs on.
package channel
