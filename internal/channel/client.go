// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/MKhiriev/go-log-monitor/internal/config"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"
)

const (
	writeWait        = 10 * time.Second
	closeGracePeriod = time.Second

	closeReasonDisconnect = "Client disconnect"
	closeReasonReconnect  = "Client reconnect"
)

// Client is the push channel client. Create one per process with [NewClient]
// and share it; all methods are safe for concurrent use.
type Client struct {
	url    string
	opts   options
	logger *logger.Logger

	registry *registry

	mu         sync.Mutex
	state      State
	conn       *websocket.Conn
	generation uint64
	cancelDial context.CancelFunc
	closed     bool

	attempts int
	backoff  retry.Backoff
	timer    *time.Timer
	timerSeq uint64

	writeMu sync.Mutex

	// wg tracks read loops and pending reconnect timers.
	wg sync.WaitGroup
}

// NewClient constructs a Client for cfg.URL. Zero durations or attempts in
// cfg fall back to the config package defaults; opts override both.
func NewClient(cfg config.ClientChannel, log *logger.Logger, opts ...Option) *Client {
	o := options{
		connectTimeout:       cfg.ConnectTimeout,
		reconnectDelay:       cfg.ReconnectDelay,
		maxReconnectAttempts: cfg.MaxReconnectAttempts,
		afterFunc:            time.AfterFunc,
	}
	if o.connectTimeout <= 0 {
		o.connectTimeout = config.DefaultConnectTimeout
	}
	if o.reconnectDelay <= 0 {
		o.reconnectDelay = config.DefaultReconnectDelay
	}
	if o.maxReconnectAttempts <= 0 {
		o.maxReconnectAttempts = config.DefaultMaxReconnectAttempts
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dialer == nil {
		d := *websocket.DefaultDialer
		d.HandshakeTimeout = 0 // bounded by the connect context
		o.dialer = &d
	}

	return &Client{
		url:      cfg.URL,
		opts:     o,
		logger:   &logger.Logger{Logger: log.With().Str("component", "channel").Str("url", cfg.URL).Logger()},
		registry: newRegistry(),
		backoff:  newBackoff(o.reconnectDelay, o.maxReconnectAttempts),
	}
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsConnected reports whether the client is in [StateConnected].
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// ReconnectAttempts returns how many reconnects were scheduled since the last
// successful connect.
func (c *Client) ReconnectAttempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

// ReconnectScheduled reports whether a reconnect timer is pending.
func (c *Client) ReconnectScheduled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Connect opens the connection, tearing down any open connection or
// in-flight dial first. It stops a pending reconnect.
//
// The handshake must finish within the connect timeout or an
// *app.TimeoutError is returned; other dial failures come back as
// *app.NetworkError. Both schedule a reconnect. Cancelling ctx aborts the
// dial without scheduling one.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimerLocked()
	c.mu.Unlock()

	return c.start(ctx)
}

func (c *Client) start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	old := c.teardownLocked()
	gen := c.generation
	c.state = StateConnecting
	dialCtx, cancel := context.WithTimeout(ctx, c.opts.connectTimeout)
	c.cancelDial = cancel
	c.mu.Unlock()

	c.closeConn(old, closeReasonReconnect)

	c.logger.Debug().Dur("timeout", c.opts.connectTimeout).Msg("connecting")
	conn, resp, err := c.opts.dialer.DialContext(dialCtx, c.url, c.opts.header)
	timedOut := ctx.Err() == nil && (errors.Is(dialCtx.Err(), context.DeadlineExceeded) || isTimeout(err))
	cancel()

	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return c.dialFailed(ctx, gen, err, status, timedOut)
	}

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.closeConn(conn, closeReasonReconnect)
		return ErrSuperseded
	}
	c.conn = conn
	c.state = StateConnected
	c.cancelDial = nil
	c.attempts = 0
	c.backoff = newBackoff(c.opts.reconnectDelay, c.opts.maxReconnectAttempts)
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Info().Msg("connected")
	go c.readLoop(conn, gen)

	for _, hook := range c.opts.hooks {
		hook(c)
	}
	return nil
}

// dialFailed settles a failed dial of generation gen and returns the error
// reported to the caller.
func (c *Client) dialFailed(ctx context.Context, gen uint64, err error, status int, timedOut bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return ErrSuperseded
	}
	c.cancelDial = nil
	c.state = StateDisconnected

	if ctx.Err() != nil {
		c.logger.Info().Err(ctx.Err()).Msg("connect cancelled")
		return &app.NetworkError{Op: "connect", Err: ctx.Err()}
	}

	var result error = &app.NetworkError{Op: "connect", Err: err}
	if timedOut {
		result = &app.TimeoutError{Op: "connect", After: c.opts.connectTimeout}
	}
	c.logger.Error().Err(err).Int("status", status).Bool("timeout", timedOut).Msg("connect failed")

	c.scheduleReconnectLocked(websocket.CloseAbnormalClosure)
	return result
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) readLoop(conn *websocket.Conn, gen uint64) {
	defer c.wg.Done()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.connectionLost(conn, gen, err)
			return
		}
		c.dispatch(data)
	}
}

// connectionLost handles the end of a read loop. Connections torn down by the
// client itself are already settled and are ignored here.
func (c *Client) connectionLost(conn *websocket.Conn, gen uint64, err error) {
	code, reason := websocket.CloseAbnormalClosure, err.Error()
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		code, reason = closeErr.Code, closeErr.Text
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	_ = conn.Close()
	c.conn = nil
	c.state = StateDisconnected
	c.generation++

	if code == websocket.CloseNormalClosure {
		c.logger.Info().Int("code", code).Str("reason", reason).Msg("connection closed")
		return
	}

	c.logger.Warn().Int("code", code).Str("reason", reason).Msg("connection lost")
	c.scheduleReconnectLocked(code)
}

func (c *Client) scheduleReconnectLocked(code int) {
	if c.closed || c.timer != nil {
		return
	}

	delay, stop := c.backoff.Next()
	if stop {
		c.logger.Error().Int("attempts", c.attempts).Int("code", code).Msg("max reconnect attempts reached")
		return
	}

	c.attempts++
	c.timerSeq++
	attempt, seq := c.attempts, c.timerSeq

	c.logger.Info().
		Int("attempt", attempt).
		Int("max_attempts", c.opts.maxReconnectAttempts).
		Dur("delay", delay).
		Msg("reconnect scheduled")

	c.wg.Add(1)
	c.timer = c.opts.afterFunc(delay, func() {
		defer c.wg.Done()
		c.reconnect(seq, attempt)
	})
}

func (c *Client) reconnect(seq uint64, attempt int) {
	c.mu.Lock()
	if seq != c.timerSeq || c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	c.logger.Info().Int("attempt", attempt).Msg("reconnecting")
	err := c.start(context.Background())
	if err != nil && !errors.Is(err, ErrSuperseded) && !errors.Is(err, ErrClosed) {
		c.logger.Warn().Err(err).Int("attempt", attempt).Msg("reconnect failed")
	}
}

func (c *Client) stopTimerLocked() {
	c.timerSeq++
	if c.timer == nil {
		return
	}
	if c.timer.Stop() {
		c.wg.Done()
	}
	c.timer = nil
}

// teardownLocked invalidates the current connection and any in-flight dial.
// The returned connection must be closed by the caller after unlocking.
func (c *Client) teardownLocked() *websocket.Conn {
	c.generation++
	if c.cancelDial != nil {
		c.cancelDial()
		c.cancelDial = nil
	}

	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	return conn
}

// closeConn sends a normal closure frame and closes conn.
func (c *Client) closeConn(conn *websocket.Conn, reason string) {
	if conn == nil {
		return
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod)); err != nil {
		c.logger.Debug().Err(err).Msg("write close frame")
	}
	_ = conn.Close()
}

// Disconnect closes the connection with code 1000. No reconnect follows from
// this closure; a reconnect that was already scheduled still runs.
func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.teardownLocked()
	c.mu.Unlock()

	if conn != nil {
		c.logger.Info().Msg("disconnecting")
	}
	c.closeConn(conn, closeReasonDisconnect)
}

// Close stops any pending reconnect, disconnects and waits for background
// goroutines. The client cannot be reconnected afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		c.stopTimerLocked()
	}
	conn := c.teardownLocked()
	c.mu.Unlock()

	c.closeConn(conn, closeReasonDisconnect)
	c.wg.Wait()
}

// Send writes a {type, data} message. A nil data omits the key. While
// disconnected nothing is sent and ErrNotConnected is returned.
func (c *Client) Send(msgType models.MessageType, data any) error {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.Unlock()

	if !connected || conn == nil {
		c.logger.Warn().Str("type", string(msgType)).Msg("send while not connected, message dropped")
		return ErrNotConnected
	}

	payload, err := json.Marshal(models.OutboundMessage{Type: msgType, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s message: %w", msgType, err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.logger.Error().Err(err).Str("type", string(msgType)).Msg("send failed")
		return &app.NetworkError{Op: "send " + string(msgType), Err: err}
	}
	return nil
}

// SubscribeToAgent asks the backend to push messages of agentID. An empty
// alias subscribes to every log file of the agent.
func (c *Client) SubscribeToAgent(agentID int64, alias string) error {
	return c.Send(models.MessageTypeSubscribeAgent, models.AgentSubscription{AgentID: agentID, LogFileAlias: alias})
}

// UnsubscribeFromAgent reverts SubscribeToAgent.
func (c *Client) UnsubscribeFromAgent(agentID int64, alias string) error {
	return c.Send(models.MessageTypeUnsubscribeAgent, models.AgentSubscription{AgentID: agentID, LogFileAlias: alias})
}

// Subscribe registers listener for msgType. The same function may be
// registered several times; every registration gets its own handle.
// Registrations survive reconnects.
func (c *Client) Subscribe(msgType models.MessageType, listener Listener) *Subscription {
	return c.registry.add(msgType, listener)
}

// Unsubscribe removes the registration sub of msgType. It reports whether the
// registration was found.
func (c *Client) Unsubscribe(msgType models.MessageType, sub *Subscription) bool {
	if sub == nil {
		return false
	}
	return c.registry.remove(msgType, sub)
}

// ListenerCount returns the number of registrations for msgType.
func (c *Client) ListenerCount(msgType models.MessageType) int {
	return c.registry.count(msgType)
}

func (c *Client) dispatch(raw []byte) {
	msg, err := models.ParseChannelMessage(raw)
	if err != nil {
		c.logger.Warn().Err(err).Msg("dropping malformed message")
		return
	}

	subs := c.registry.snapshot(msg.Type)
	if len(subs) == 0 {
		c.logger.Debug().Str("type", string(msg.Type)).Msg("no listeners")
		return
	}

	if !models.IsKnownMessageType(msg.Type) {
		c.logger.Debug().Str("type", string(msg.Type)).Msg("delivering opaque payload")
	}
	payload, err := msg.Payload()
	if err != nil {
		c.logger.Warn().Err(err).Str("type", string(msg.Type)).Msg("delivering undecoded payload")
	}

	for _, sub := range subs {
		c.invoke(sub, payload)
	}
}

func (c *Client) invoke(sub *Subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Str("type", string(sub.msgType)).Interface("panic", r).Msg("listener panicked")
		}
	}()
	sub.listener(payload)
}

// On registers a typed listener. Payloads of known message types are passed
// through when they are a T; opaque payloads are decoded into T. Null
// payloads and payloads that fit neither are logged and skipped.
func On[T any](c *Client, msgType models.MessageType, fn func(T)) *Subscription {
	return c.Subscribe(msgType, func(payload any) {
		if payload == nil {
			c.logger.Debug().Str("type", string(msgType)).Msg("null payload skipped")
			return
		}
		if v, ok := payload.(T); ok {
			fn(v)
			return
		}

		raw, ok := payload.(json.RawMessage)
		if !ok {
			c.logger.Warn().Str("type", string(msgType)).Msgf("payload %T does not fit listener", payload)
			return
		}

		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			c.logger.Warn().Err(err).Str("type", string(msgType)).Msg("payload does not fit listener")
			return
		}
		fn(v)
	})
}
