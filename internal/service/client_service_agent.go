// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/internal/adapter"
	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/rs/zerolog"
)

type agentService struct {
	tracer
	adapter adapter.ServerAdapter
}

func NewAgentService(serverAdapter adapter.ServerAdapter, log *logger.Logger) AgentService {
	return &agentService{tracer: newTracer(log), adapter: serverAdapter}
}

func withAgent(log *logger.Logger, id int64) zerolog.Logger {
	return log.With().Int64("agent_id", id).Logger()
}

func (s *agentService) List(ctx context.Context) Result[[]models.AgentDetailView] {
	ctx, log := s.start(ctx)
	agents, err := s.adapter.ListAgents(ctx)
	return listResult(log.Logger, app.MsgFailedToListAgents, agents, err)
}

func (s *agentService) Get(ctx context.Context, id int64) Result[*models.AgentDetailView] {
	ctx, log := s.start(ctx)
	agent, err := s.adapter.GetAgent(ctx, id)
	return entityResult(withAgent(log, id), app.MsgFailedToGetAgent, agent, err)
}

func (s *agentService) Create(ctx context.Context, req models.AddAgentRequest) Result[*models.Agent] {
	ctx, log := s.start(ctx)
	agent, err := s.adapter.CreateAgent(ctx, req)
	return entityResult(log.With().Str("agent_name", req.Name).Logger(), app.MsgFailedToCreateAgent, agent, err)
}

func (s *agentService) Update(ctx context.Context, id int64, req models.UpdateAgentRequest) Result[*models.Agent] {
	ctx, log := s.start(ctx)
	agent, err := s.adapter.UpdateAgent(ctx, id, req)
	return entityResult(withAgent(log, id), app.MsgFailedToUpdateAgent, agent, err)
}

func (s *agentService) Delete(ctx context.Context, id int64) Result[bool] {
	ctx, log := s.start(ctx)
	return commandResult(withAgent(log, id), app.MsgFailedToDeleteAgent, s.adapter.DeleteAgent(ctx, id))
}

func (s *agentService) Connect(ctx context.Context, id int64) Result[bool] {
	ctx, log := s.start(ctx)
	return commandResult(withAgent(log, id), app.MsgFailedToConnectAgent, s.adapter.ConnectAgent(ctx, id))
}

func (s *agentService) Disconnect(ctx context.Context, id int64) Result[bool] {
	ctx, log := s.start(ctx)
	return commandResult(withAgent(log, id), app.MsgFailedToDisconnectAgent, s.adapter.DisconnectAgent(ctx, id))
}
