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

type statusService struct {
	tracer
	adapter adapter.ServerAdapter
}

func NewStatusService(serverAdapter adapter.ServerAdapter, log *logger.Logger) StatusService {
	return &statusService{tracer: newTracer(log), adapter: serverAdapter}
}

func (s *statusService) Overview(ctx context.Context) Result[*models.SystemOverview] {
	ctx, log := s.start(ctx)
	overview, err := s.adapter.GetSystemStatus(ctx)
	return entityResult(log.Logger, app.MsgFailedToGetSystemState, overview, err)
}
