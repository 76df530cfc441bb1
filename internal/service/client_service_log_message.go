// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/internal/adapter"
	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/models"
)

type logMessageService struct {
	tracer
	adapter adapter.ServerAdapter
}

func NewLogMessageService(serverAdapter adapter.ServerAdapter, log *logger.Logger) LogMessageService {
	return &logMessageService{tracer: newTracer(log), adapter: serverAdapter}
}

func (s *logMessageService) List(ctx context.Context, agentID int64, query models.LogQuery) Result[[]models.LogMessage] {
	ctx, log := s.start(ctx)
	messages, err := s.adapter.ListLogMessages(ctx, agentID, query)
	fields := log.With().
		Int64("agent_id", agentID).
		Str("alias", query.Alias).
		Int("limit", query.EffectiveLimit()).
		Logger()
	return listResult(fields, app.MsgFailedToListLogs, messages, err)
}

func (s *logMessageService) Tail(ctx context.Context, agentID int64, alias string, tail int) Result[[]models.LogMessage] {
	ctx, log := s.start(ctx)
	messages, err := s.adapter.TailLogFile(ctx, agentID, alias, tail)
	fields := log.With().Int64("agent_id", agentID).Str("alias", alias).Int("tail", tail).Logger()
	return listResult(fields, app.MsgFailedToTailLogFile, messages, err)
}
