// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/internal/utils"
	"github.com/rs/zerolog"
)

type tracer struct {
	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func newTracer(log *logger.Logger) tracer {
	return tracer{traceIDs: utils.NewUUIDGenerator(), logger: log}
}

// start tags ctx with a trace id (keeping one already present) and attaches a
// child logger carrying it. The adapter sends the same id as X-Trace-ID.
func (t tracer) start(ctx context.Context) (context.Context, *logger.Logger) {
	traceID := t.traceIDs.TraceID(ctx)

	child := t.logger.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = child.WithContext(utils.WithTraceID(ctx, traceID))
	return ctx, logger.FromContext(ctx)
}
