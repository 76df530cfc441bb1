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

type logFileService struct {
	tracer
	adapter adapter.ServerAdapter
}

func NewLogFileService(serverAdapter adapter.ServerAdapter, log *logger.Logger) LogFileService {
	return &logFileService{tracer: newTracer(log), adapter: serverAdapter}
}

func withFile(log *logger.Logger, agentID int64, alias string) zerolog.Logger {
	return log.With().Int64("agent_id", agentID).Str("alias", alias).Logger()
}

func (s *logFileService) List(ctx context.Context, agentID int64) Result[[]models.LogFile] {
	ctx, log := s.start(ctx)
	files, err := s.adapter.ListLogFiles(ctx, agentID)
	return listResult(withAgent(log, agentID), app.MsgFailedToListLogFiles, files, err)
}

func (s *logFileService) Add(ctx context.Context, agentID int64, req models.AddLogFileRequest) Result[*models.LogFile] {
	ctx, log := s.start(ctx)
	file, err := s.adapter.AddLogFile(ctx, agentID, req)
	return entityResult(withFile(log, agentID, req.Alias), app.MsgFailedToAddLogFile, file, err)
}

func (s *logFileService) Update(ctx context.Context, agentID int64, oldAlias string, req models.AddLogFileRequest) Result[*models.LogFile] {
	ctx, log := s.start(ctx)
	file, err := s.adapter.UpdateLogFile(ctx, agentID, oldAlias, req)
	return entityResult(withFile(log, agentID, oldAlias), app.MsgFailedToUpdateLogFile, file, err)
}

func (s *logFileService) Delete(ctx context.Context, agentID int64, alias string) Result[bool] {
	ctx, log := s.start(ctx)
	err := s.adapter.DeleteLogFile(ctx, agentID, alias)
	return commandResult(withFile(log, agentID, alias), app.MsgFailedToDeleteLogFile, err)
}

func (s *logFileService) StartMonitoring(ctx context.Context, agentID int64, alias string) Result[bool] {
	ctx, log := s.start(ctx)
	err := s.adapter.StartLogFileMonitoring(ctx, agentID, alias)
	return commandResult(withFile(log, agentID, alias), app.MsgFailedToStartLogFile, err)
}

func (s *logFileService) StopMonitoring(ctx context.Context, agentID int64, alias string) Result[bool] {
	ctx, log := s.start(ctx)
	err := s.adapter.StopLogFileMonitoring(ctx, agentID, alias)
	return commandResult(withFile(log, agentID, alias), app.MsgFailedToStopLogFile, err)
}
