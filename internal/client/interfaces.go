// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/internal/channel"
	"github.com/MKhiriev/go-log-monitor/models"
)

// PushChannel is the part of [channel.Client] the application depends on.
type PushChannel interface {
	// Connect opens the push connection.
	Connect(ctx context.Context) error

	// Subscribe registers a listener for one message type.
	Subscribe(msgType models.MessageType, listener channel.Listener) *channel.Subscription

	// SubscribeToAgent asks the backend to push events of one agent.
	SubscribeToAgent(agentID int64, alias string) error

	// Close tears the channel down and waits for its goroutines.
	Close()
}

var _ PushChannel = (*channel.Client)(nil)
