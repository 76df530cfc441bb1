// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-log-monitor/internal/adapter"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/models"
)

// ClientServices groups every REST-backed service of the client.
type ClientServices struct {
	AgentService      AgentService
	LogFileService    LogFileService
	LogMessageService LogMessageService
	StatusService     StatusService
	AppInfoService    AppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AgentService:      NewAgentService(serverAdapter, log),
		LogFileService:    NewLogFileService(serverAdapter, log),
		LogMessageService: NewLogMessageService(serverAdapter, log),
		StatusService:     NewStatusService(serverAdapter, log),
		AppInfoService:    NewAppInfoService(buildInfo),
	}
}
