// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil provides an in-process fake of the log-monitor backend:
// a chi router for the REST API under /api and a gorilla upgrader on /ws.
package testutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// WaitTimeout bounds every blocking helper of [Backend].
const WaitTimeout = 3 * time.Second

// CloseEvent is how a server-side connection ended.
type CloseEvent struct {
	Code int
	Text string
}

// Backend is a fake backend bound to an httptest.Server.
type Backend struct {
	Server *httptest.Server

	upgrader websocket.Upgrader
	accepted atomic.Int32

	conns    chan *websocket.Conn
	received chan []byte
	closes   chan CloseEvent

	writeMu sync.Mutex
}

// NewBackend starts a Backend. routes, when non-nil, registers REST handlers
// on the /api sub-router. The server is shut down on test cleanup.
func NewBackend(t *testing.T, routes func(r chi.Router)) *Backend {
	t.Helper()

	b := &Backend{
		conns:    make(chan *websocket.Conn, 16),
		received: make(chan []byte, 64),
		closes:   make(chan CloseEvent, 16),
	}

	r := chi.NewRouter()
	r.Get("/ws", b.serveWS)
	if routes != nil {
		r.Route("/api", routes)
	}

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the http origin of the backend.
func (b *Backend) URL() string {
	return b.Server.URL
}

// WSURL returns the push endpoint URL.
func (b *Backend) WSURL() string {
	return "ws" + strings.TrimPrefix(b.Server.URL, "http") + "/ws"
}

// Accepted returns how many push connections were upgraded so far.
func (b *Backend) Accepted() int {
	return int(b.accepted.Load())
}

func (b *Backend) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	b.accepted.Add(1)
	b.conns <- conn

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			event := CloseEvent{Code: websocket.CloseAbnormalClosure, Text: err.Error()}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				event = CloseEvent{Code: closeErr.Code, Text: closeErr.Text}
			}
			b.closes <- event
			_ = conn.Close()
			return
		}
		b.received <- data
	}
}

// NextConn waits for the next upgraded connection.
func (b *Backend) NextConn(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-b.conns:
		return conn
	case <-time.After(WaitTimeout):
		require.FailNow(t, "no push connection accepted")
		return nil
	}
}

// NextMessage waits for the next frame sent by a client.
func (b *Backend) NextMessage(t *testing.T) []byte {
	t.Helper()
	select {
	case data := <-b.received:
		return data
	case <-time.After(WaitTimeout):
		require.FailNow(t, "no message received")
		return nil
	}
}

// NextClose waits for a server-side connection to end.
func (b *Backend) NextClose(t *testing.T) CloseEvent {
	t.Helper()
	select {
	case event := <-b.closes:
		return event
	case <-time.After(WaitTimeout):
		require.FailNow(t, "no connection closed")
		return CloseEvent{}
	}
}

// Push writes v to conn as JSON, or as-is when v is a string or []byte.
func (b *Backend) Push(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()

	var data []byte
	switch p := v.(type) {
	case string:
		data = []byte(p)
	case []byte:
		data = p
	default:
		var err error
		data, err = json.Marshal(v)
		require.NoError(t, err)
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

// CloseConn closes conn from the server side with code and text.
func (b *Backend) CloseConn(t *testing.T, conn *websocket.Conn, code int, text string) {
	t.Helper()
	msg := websocket.FormatCloseMessage(code, text)
	require.NoError(t, conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)))
}

// DropConn closes the TCP connection without a close frame.
func (b *Backend) DropConn(conn *websocket.Conn) {
	_ = conn.Close()
}

// WriteEnvelope writes a success envelope; a nil data omits the key.
func WriteEnvelope(w http.ResponseWriter, status int, data any) {
	env := map[string]any{"success": true, "message": "ok", "timestamp": time.Now().UnixMilli()}
	if data != nil {
		env["data"] = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
