// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"

	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/go-resty/resty/v2"
)

// restyLogger routes resty's internal diagnostics into zerolog.
type restyLogger struct {
	logger *logger.Logger
}

var _ resty.Logger = (*restyLogger)(nil)

func newRestyLogger(log *logger.Logger) *restyLogger {
	return &restyLogger{logger: log}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
