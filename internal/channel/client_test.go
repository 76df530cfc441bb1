// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/MKhiriev/go-log-monitor/internal/config"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/internal/testutil"
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eventually = 3 * time.Second
	tick       = 10 * time.Millisecond
)

func newTestClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()
	c := NewClient(config.ClientChannel{URL: url}, logger.Nop(), opts...)
	t.Cleanup(c.Close)
	return c
}

// refusedURL returns a ws URL nothing listens on.
func refusedURL(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return "ws://" + addr + "/ws"
}

// silentURL returns a ws URL whose server accepts TCP but never answers the
// handshake. The channel receives once per held connection the client closed.
func silentURL(t *testing.T) (string, <-chan struct{}) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var mu sync.Mutex
	var held []net.Conn
	closed := make(chan struct{}, 16)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			held = append(held, conn)
			mu.Unlock()

			go func() {
				_, _ = io.Copy(io.Discard, conn)
				closed <- struct{}{}
			}()
		}
	}()

	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range held {
			_ = conn.Close()
		}
	})
	return "ws://" + ln.Addr().String() + "/ws", closed
}

// ── Connect ──────────────────────────────────────────────────────────────────

func TestConnect_Success(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	hooked := make(chan struct{}, 1)
	c := newTestClient(t, b.WSURL(), WithConnectHook(func(*Client) { hooked <- struct{}{} }))

	assert.Equal(t, StateDisconnected, c.State())
	require.NoError(t, c.Connect(context.Background()))

	b.NextConn(t)
	assert.True(t, c.IsConnected())
	assert.Equal(t, "connected", c.State().String())
	assert.Equal(t, 0, c.ReconnectAttempts())

	select {
	case <-hooked:
	case <-time.After(eventually):
		t.Fatal("connect hook did not run")
	}
}

func TestConnect_Timeout(t *testing.T) {
	url, transportClosed := silentURL(t)
	c := newTestClient(t, url,
		WithConnectTimeout(100*time.Millisecond),
		WithReconnectDelay(time.Hour),
	)

	start := time.Now()
	err := c.Connect(context.Background())

	var timeoutErr *app.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 100*time.Millisecond, timeoutErr.After)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, StateDisconnected, c.State())
	assert.True(t, c.ReconnectScheduled(), "a timed out dial counts as abnormal closure")

	select {
	case <-transportClosed:
	case <-time.After(eventually):
		t.Fatal("half-open transport was not closed after the timeout")
	}
}

func TestConnect_CallerCancelDoesNotReconnect(t *testing.T) {
	url, _ := silentURL(t)
	c := newTestClient(t, url,
		WithConnectTimeout(300*time.Millisecond),
		WithReconnectDelay(time.Hour),
	)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := c.Connect(ctx)

	var netErr *app.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, c.ReconnectScheduled())
	assert.Equal(t, StateDisconnected, c.State())
}

func TestConnect_Refused(t *testing.T) {
	c := newTestClient(t, refusedURL(t), WithReconnectDelay(time.Hour))

	err := c.Connect(context.Background())

	var netErr *app.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "connect", netErr.Op)
	assert.True(t, c.ReconnectScheduled())
	assert.Equal(t, 1, c.ReconnectAttempts())
}

func TestConnect_ReentrantRestarts(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL(), WithReconnectDelay(10*time.Millisecond))
	ctx := context.Background()

	require.NoError(t, c.Connect(ctx))
	b.NextConn(t)

	require.NoError(t, c.Connect(ctx))
	b.NextConn(t)

	closed := b.NextClose(t)
	assert.Equal(t, websocket.CloseNormalClosure, closed.Code)
	assert.Equal(t, closeReasonReconnect, closed.Text)

	assert.True(t, c.IsConnected())
	assert.Never(t, func() bool { return b.Accepted() > 2 }, 200*time.Millisecond, tick)
	assert.False(t, c.ReconnectScheduled())
}

// ── Close handling and backoff ───────────────────────────────────────────────

func TestNormalClosure_DoesNotReconnect(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL(), WithReconnectDelay(10*time.Millisecond))

	require.NoError(t, c.Connect(context.Background()))
	conn := b.NextConn(t)

	b.CloseConn(t, conn, websocket.CloseNormalClosure, "bye")

	require.Eventually(t, func() bool { return c.State() == StateDisconnected }, eventually, tick)
	assert.Never(t, func() bool { return b.Accepted() > 1 }, 200*time.Millisecond, tick)
	assert.False(t, c.ReconnectScheduled())
}

func TestAbnormalClosure_Reconnects(t *testing.T) {
	tests := []struct {
		name  string
		close func(t *testing.T, b *testutil.Backend, conn *websocket.Conn)
	}{
		{
			name:  "dropped without close frame",
			close: func(_ *testing.T, b *testutil.Backend, conn *websocket.Conn) { b.DropConn(conn) },
		},
		{
			name: "going away",
			close: func(t *testing.T, b *testutil.Backend, conn *websocket.Conn) {
				b.CloseConn(t, conn, websocket.CloseGoingAway, "restart")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.NewBackend(t, nil)
			var hooks atomic.Int32
			c := newTestClient(t, b.WSURL(),
				WithReconnectDelay(10*time.Millisecond),
				WithConnectHook(func(*Client) { hooks.Add(1) }),
			)

			require.NoError(t, c.Connect(context.Background()))
			tt.close(t, b, b.NextConn(t))

			b.NextConn(t)
			require.Eventually(t, func() bool {
				return c.IsConnected() && c.ReconnectAttempts() == 0 && hooks.Load() == 2
			}, eventually, tick)
		})
	}
}

func TestReconnect_BackoffSequence(t *testing.T) {
	var mu sync.Mutex
	var delays []time.Duration
	immediate := func(d time.Duration, f func()) *time.Timer {
		mu.Lock()
		delays = append(delays, d)
		mu.Unlock()
		return time.AfterFunc(0, f)
	}
	recorded := func() []time.Duration {
		mu.Lock()
		defer mu.Unlock()
		return append([]time.Duration(nil), delays...)
	}

	c := newTestClient(t, refusedURL(t),
		WithReconnectDelay(time.Second),
		WithMaxReconnectAttempts(5),
		withAfterFunc(immediate),
	)

	require.Error(t, c.Connect(context.Background()))

	require.Eventually(t, func() bool { return len(recorded()) == 5 }, eventually, tick)
	assert.Never(t, func() bool { return len(recorded()) > 5 }, 200*time.Millisecond, tick)

	assert.Equal(t, []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		4000 * time.Millisecond,
		8000 * time.Millisecond,
		16000 * time.Millisecond,
	}, recorded())
	assert.Equal(t, 5, c.ReconnectAttempts())
	assert.Equal(t, StateDisconnected, c.State())
}

func TestNewBackoff(t *testing.T) {
	b := newBackoff(time.Second, 5)
	for _, want := range []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second} {
		got, stop := b.Next()
		require.False(t, stop)
		assert.Equal(t, want, got)
	}
	_, stop := b.Next()
	assert.True(t, stop)

	_, stop = newBackoff(time.Second, 0).Next()
	assert.True(t, stop)
}

func TestClose_StopsPendingReconnect(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(config.ClientChannel{URL: "ws" + srv.URL[len("http"):] + "/ws"}, logger.Nop(),
		WithReconnectDelay(100*time.Millisecond),
	)

	err := c.Connect(context.Background())
	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.True(t, c.ReconnectScheduled())

	c.Close()

	assert.False(t, c.ReconnectScheduled())
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), hits.Load())
	assert.ErrorIs(t, c.Connect(context.Background()), ErrClosed)
}

func TestDisconnect_SendsNormalClosure(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL(), WithReconnectDelay(10*time.Millisecond))

	require.NoError(t, c.Connect(context.Background()))
	b.NextConn(t)

	c.Disconnect()

	closed := b.NextClose(t)
	assert.Equal(t, websocket.CloseNormalClosure, closed.Code)
	assert.Equal(t, "Client disconnect", closed.Text)
	assert.Equal(t, StateDisconnected, c.State())
	assert.Never(t, func() bool { return b.Accepted() > 1 }, 200*time.Millisecond, tick)
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestSend_NotConnected(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	assert.ErrorIs(t, c.Send(models.MessageTypeSubscribeAgent, nil), ErrNotConnected)
	assert.ErrorIs(t, c.SubscribeToAgent(1, ""), ErrNotConnected)
}

func TestSend_AgentSubscriptions(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL())

	require.NoError(t, c.Connect(context.Background()))
	b.NextConn(t)

	require.NoError(t, c.SubscribeToAgent(7, "app.log"))
	assert.JSONEq(t, `{"type":"SUBSCRIBE_AGENT","data":{"agentId":7,"logFileAlias":"app.log"}}`, string(b.NextMessage(t)))

	require.NoError(t, c.UnsubscribeFromAgent(7, ""))
	assert.JSONEq(t, `{"type":"UNSUBSCRIBE_AGENT","data":{"agentId":7}}`, string(b.NextMessage(t)))

	require.NoError(t, c.Send("PING", nil))
	assert.JSONEq(t, `{"type":"PING"}`, string(b.NextMessage(t)))
}

func TestConnectHook_ResubscribesAfterConnect(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL(), WithConnectHook(func(c *Client) {
		_ = c.SubscribeToAgent(3, "")
	}))

	require.NoError(t, c.Connect(context.Background()))
	b.NextConn(t)

	assert.JSONEq(t, `{"type":"SUBSCRIBE_AGENT","data":{"agentId":3}}`, string(b.NextMessage(t)))
}

// ── Dispatch ─────────────────────────────────────────────────────────────────

func TestDispatch_OverTheWire(t *testing.T) {
	b := testutil.NewBackend(t, nil)
	c := newTestClient(t, b.WSURL())

	logs := make(chan any, 2)
	custom := make(chan any, 2)
	c.Subscribe(models.MessageTypeLog, func(p any) { logs <- p })
	c.Subscribe("CUSTOM", func(p any) { custom <- p })

	require.NoError(t, c.Connect(context.Background()))
	conn := b.NextConn(t)

	b.Push(t, conn, `{"type":"LOG_MESSAGE","data":{"id":1,"agentId":2,"content":"boot","level":"INFO"}}`)
	b.Push(t, conn, `{"type":"LOG_MESSAGE","data":null}`)
	b.Push(t, conn, `{"type":"CUSTOM","value":1}`)
	b.Push(t, conn, `{"type":"CUSTOM","data":0}`)

	select {
	case p := <-logs:
		assert.Equal(t, models.LogMessage{ID: 1, AgentID: 2, Content: "boot", Level: "INFO"}, p)
	case <-time.After(eventually):
		t.Fatal("log message not delivered")
	}

	select {
	case p := <-logs:
		assert.Nil(t, p, "null data is handed over as nil, not as a zero LogMessage")
	case <-time.After(eventually):
		t.Fatal("null log message not delivered")
	}

	for _, want := range []string{`{"type":"CUSTOM","value":1}`, `0`} {
		select {
		case p := <-custom:
			raw, ok := p.(json.RawMessage)
			require.True(t, ok, "unknown types are delivered as json.RawMessage")
			assert.JSONEq(t, want, string(raw))
		case <-time.After(eventually):
			t.Fatal("custom message not delivered")
		}
	}
}

func TestDispatch_InOrderAndDropsMalformed(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	var got []int64
	On(c, models.MessageTypeAgentStatus, func(s models.AgentStatus) { got = append(got, s.AgentID) })

	c.dispatch([]byte(`not json`))
	c.dispatch([]byte(`{"data":{"agentId":99}}`))
	for i := int64(1); i <= 5; i++ {
		c.dispatch([]byte(`{"type":"AGENT_STATUS","data":{"agentId":` + strconv.FormatInt(i, 10) + `,"isConnected":true}}`))
	}

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got)
}

func TestDispatch_ListenerPanicIsIsolated(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	var calls []string
	c.Subscribe(models.MessageTypeError, func(any) { calls = append(calls, "first"); panic("boom") })
	c.Subscribe(models.MessageTypeError, func(p any) {
		calls = append(calls, p.(models.ChannelError).Message)
	})

	require.NotPanics(t, func() {
		c.dispatch([]byte(`{"type":"ERROR","data":{"message":"agent offline"}}`))
	})
	assert.Equal(t, []string{"first", "agent offline"}, calls)
}

func TestDispatch_NoListeners(t *testing.T) {
	c := newTestClient(t, refusedURL(t))
	assert.NotPanics(t, func() { c.dispatch([]byte(`{"type":"SYSTEM_STATUS","data":{}}`)) })
}

func TestUnsubscribe_RemovesOneRegistration(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	var calls int
	listener := func(any) { calls++ }
	first := c.Subscribe(models.MessageTypeLogFileStatus, listener)
	c.Subscribe(models.MessageTypeLogFileStatus, listener)
	require.Equal(t, 2, c.ListenerCount(models.MessageTypeLogFileStatus))

	assert.True(t, c.Unsubscribe(models.MessageTypeLogFileStatus, first))
	assert.False(t, c.Unsubscribe(models.MessageTypeLogFileStatus, first))
	assert.False(t, c.Unsubscribe(models.MessageTypeLogFileStatus, nil))
	assert.Equal(t, 1, c.ListenerCount(models.MessageTypeLogFileStatus))

	c.dispatch([]byte(`{"type":"LOG_FILE_STATUS","data":{"agentId":1,"alias":"a","monitoring":true}}`))
	assert.Equal(t, 1, calls)
}

func TestUnsubscribe_DuringDispatch(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	var calls int
	var sub *Subscription
	sub = c.Subscribe("TICK", func(any) {
		calls++
		c.Unsubscribe("TICK", sub)
	})

	c.dispatch([]byte(`{"type":"TICK"}`))
	c.dispatch([]byte(`{"type":"TICK"}`))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, c.ListenerCount("TICK"))
}

func TestOn_DecodesOpaquePayloads(t *testing.T) {
	c := newTestClient(t, refusedURL(t))

	type deploy struct {
		Version string `json:"version"`
	}

	var got []deploy
	On(c, "DEPLOY", func(d deploy) { got = append(got, d) })

	c.dispatch([]byte(`{"type":"DEPLOY","data":{"version":"1.4.0"}}`))
	c.dispatch([]byte(`{"type":"DEPLOY","data":"not an object"}`))
	c.dispatch([]byte(`{"type":"DEPLOY","version":"1.5.0"}`))
	c.dispatch([]byte(`{"type":"DEPLOY","data":null}`))

	var statuses []models.AgentStatus
	On(c, models.MessageTypeAgentStatus, func(s models.AgentStatus) { statuses = append(statuses, s) })
	c.dispatch([]byte(`{"type":"AGENT_STATUS","data":null}`))

	assert.Equal(t, []deploy{{Version: "1.4.0"}, {Version: "1.5.0"}}, got)
	assert.Empty(t, statuses)
}
