// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-log-monitor/internal/adapter"
	"github.com/MKhiriev/go-log-monitor/internal/channel"
	"github.com/MKhiriev/go-log-monitor/internal/config"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/internal/service"
	"github.com/MKhiriev/go-log-monitor/models"
)

// WatchedTypes are the push events printed by [App.Watch].
var WatchedTypes = []models.MessageType{
	models.MessageTypeLog,
	models.MessageTypeAgentStatus,
	models.MessageTypeLogFileStatus,
	models.MessageTypeError,
}

// App owns the REST services and the single push channel of the process.
type App struct {
	Services *service.ClientServices
	Channel  PushChannel

	mu      sync.Mutex
	watched []models.AgentSubscription

	logger *logger.Logger
}

// NewApp builds the REST adapter and services from cfg and creates the push
// channel client. Nothing is connected yet.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	a := &App{
		Services: service.NewClientServices(serverAdapter, buildInfo, log),
		logger:   log,
	}
	a.Channel = channel.NewClient(cfg.Channel, log, channel.WithConnectHook(a.resubscribe))

	return a, nil
}

// Watch subscribes to agentID (all files when alias is empty), connects the
// push channel and hands every event of [WatchedTypes] to emit until ctx is
// done. Subscriptions are re-sent after every reconnect.
func (a *App) Watch(ctx context.Context, agentID int64, alias string, emit func(models.MessageType, any)) error {
	for _, msgType := range WatchedTypes {
		a.Channel.Subscribe(msgType, func(payload any) {
			emit(msgType, payload)
		})
	}

	a.mu.Lock()
	sub := models.AgentSubscription{AgentID: agentID, LogFileAlias: alias}
	if !slices.Contains(a.watched, sub) {
		a.watched = append(a.watched, sub)
	}
	a.mu.Unlock()

	if err := a.Channel.Connect(ctx); err != nil {
		return fmt.Errorf("connect push channel: %w", err)
	}

	a.logger.Info().Int64("agent_id", agentID).Str("alias", alias).Msg("watching")
	<-ctx.Done()
	return nil
}

// resubscribe runs after every successful connect.
func (a *App) resubscribe(c *channel.Client) {
	a.mu.Lock()
	watched := slices.Clone(a.watched)
	a.mu.Unlock()

	for _, sub := range watched {
		if err := c.SubscribeToAgent(sub.AgentID, sub.LogFileAlias); err != nil {
			a.logger.Warn().Err(err).Int64("agent_id", sub.AgentID).Msg("resubscribe failed")
		}
	}
}

// Close releases the push channel.
func (a *App) Close() {
	a.Channel.Close()
}
