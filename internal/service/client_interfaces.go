// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/models"
)

// AgentService manages agents registered on the backend.
type AgentService interface {
	// List returns every agent with its log files and connection flag.
	List(ctx context.Context) Result[[]models.AgentDetailView]

	// Get returns one agent. Value is nil when the backend sent no data.
	Get(ctx context.Context, id int64) Result[*models.AgentDetailView]

	Create(ctx context.Context, req models.AddAgentRequest) Result[*models.Agent]
	Update(ctx context.Context, id int64, req models.UpdateAgentRequest) Result[*models.Agent]

	// Delete, Connect and Disconnect report true once the backend accepted
	// the command.
	Delete(ctx context.Context, id int64) Result[bool]
	Connect(ctx context.Context, id int64) Result[bool]
	Disconnect(ctx context.Context, id int64) Result[bool]
}

// LogFileService manages the monitored files of an agent. Files are
// addressed by alias, which may contain any character.
type LogFileService interface {
	List(ctx context.Context, agentID int64) Result[[]models.LogFile]
	Add(ctx context.Context, agentID int64, req models.AddLogFileRequest) Result[*models.LogFile]

	// Update modifies the file currently known as oldAlias.
	Update(ctx context.Context, agentID int64, oldAlias string, req models.AddLogFileRequest) Result[*models.LogFile]

	Delete(ctx context.Context, agentID int64, alias string) Result[bool]
	StartMonitoring(ctx context.Context, agentID int64, alias string) Result[bool]
	StopMonitoring(ctx context.Context, agentID int64, alias string) Result[bool]
}

// LogMessageService reads collected log lines.
type LogMessageService interface {
	// List returns messages of an agent, optionally filtered by alias.
	List(ctx context.Context, agentID int64, query models.LogQuery) Result[[]models.LogMessage]

	// Tail returns the last tail messages of one file. tail <= 0 means
	// models.DefaultLogTailSize.
	Tail(ctx context.Context, agentID int64, alias string, tail int) Result[[]models.LogMessage]
}

// StatusService reads the backend dashboard summary.
type StatusService interface {
	Overview(ctx context.Context) Result[*models.SystemOverview]
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
}
