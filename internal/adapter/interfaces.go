// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the REST side of the client connectivity layer:
// one call primitive that talks to the log-monitor backend and a typed method
// per endpoint.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Failures are reported with the taxonomy of package app: [app.NetworkError]
// when the server cannot be reached, [app.TransportError] for non-2xx
// statuses (matching app.ErrNotFound etc. through errors.Is) and
// [app.DecodeError] for malformed bodies. Every failure is logged before it
// is returned.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the log-monitor backend. Every
// method returns the envelope's data as-is: a nil pointer (or nil slice) when
// the backend sent no data, and an error only when the call itself failed.
type ServerAdapter interface {
	// ListAgents fetches GET /agents.
	ListAgents(ctx context.Context) ([]models.AgentDetailView, error)

	// GetAgent fetches GET /agents/{id}.
	GetAgent(ctx context.Context, id int64) (*models.AgentDetailView, error)

	// CreateAgent sends POST /agents.
	CreateAgent(ctx context.Context, req models.AddAgentRequest) (*models.Agent, error)

	// UpdateAgent sends PUT /agents/{id}.
	UpdateAgent(ctx context.Context, id int64, req models.UpdateAgentRequest) (*models.Agent, error)

	// DeleteAgent sends DELETE /agents/{id}.
	DeleteAgent(ctx context.Context, id int64) error

	// ConnectAgent sends POST /agents/{id}/connect.
	ConnectAgent(ctx context.Context, id int64) error

	// DisconnectAgent sends POST /agents/{id}/disconnect.
	DisconnectAgent(ctx context.Context, id int64) error

	// ListLogFiles fetches GET /agents/{id}/logfiles.
	ListLogFiles(ctx context.Context, agentID int64) ([]models.LogFile, error)

	// AddLogFile sends POST /agents/{id}/logfiles.
	AddLogFile(ctx context.Context, agentID int64, req models.AddLogFileRequest) (*models.LogFile, error)

	// UpdateLogFile sends PUT /agents/{id}/logfiles/{alias} where alias is
	// the current (old) alias of the file.
	UpdateLogFile(ctx context.Context, agentID int64, oldAlias string, req models.AddLogFileRequest) (*models.LogFile, error)

	// DeleteLogFile sends DELETE /agents/{id}/logfiles/{alias}.
	DeleteLogFile(ctx context.Context, agentID int64, alias string) error

	// StartLogFileMonitoring sends POST /agents/{id}/logfiles/{alias}/start.
	StartLogFileMonitoring(ctx context.Context, agentID int64, alias string) error

	// StopLogFileMonitoring sends POST /agents/{id}/logfiles/{alias}/stop.
	StopLogFileMonitoring(ctx context.Context, agentID int64, alias string) error

	// ListLogMessages fetches GET /agents/{id}/logs?alias=&limit=.
	ListLogMessages(ctx context.Context, agentID int64, query models.LogQuery) ([]models.LogMessage, error)

	// TailLogFile fetches GET /agents/{id}/logs/{alias}?tail=. A
	// non-positive tail falls back to models.DefaultLogTailSize.
	TailLogFile(ctx context.Context, agentID int64, alias string, tail int) ([]models.LogMessage, error)

	// GetSystemStatus fetches GET /status.
	GetSystemStatus(ctx context.Context) (*models.SystemOverview, error)
}
