// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/internal/mock"
	"github.com/MKhiriev/go-log-monitor/internal/utils"
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf).Level(zerolog.DebugLevel)}
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestTracer_FailureLogCarriesAdapterTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	var buf bytes.Buffer
	svc := NewAgentService(mockAdapter, bufferLogger(&buf))

	var seen string
	mockAdapter.EXPECT().GetAgent(gomock.Any(), int64(5)).
		DoAndReturn(func(ctx context.Context, _ int64) (*models.AgentDetailView, error) {
			id, ok := utils.GetTraceIDFromContext(ctx)
			require.True(t, ok, "adapter must receive a trace id")
			seen = id
			assert.Equal(t, id, lastTraceID(ctx))
			return nil, errUnreachable
		})

	res := svc.Get(context.Background(), 5)
	require.True(t, res.Failed())

	entry := lastEntry(t, &buf)
	assert.Equal(t, seen, entry["trace_id"])
	assert.EqualValues(t, 5, entry["agent_id"])
	assert.Equal(t, "error", entry["level"])
}

func TestTracer_KeepsCallerTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	var buf bytes.Buffer
	svc := NewStatusService(mockAdapter, bufferLogger(&buf))

	mockAdapter.EXPECT().GetSystemStatus(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*models.SystemOverview, error) {
			id, _ := utils.GetTraceIDFromContext(ctx)
			assert.Equal(t, "trace-42", id)
			return nil, errUnreachable
		})

	svc.Overview(utils.WithTraceID(context.Background(), "trace-42"))
	assert.Equal(t, "trace-42", lastEntry(t, &buf)["trace_id"])
}

func TestTracer_StartAttachesLoggerToContext(t *testing.T) {
	var buf bytes.Buffer
	base := bufferLogger(&buf)

	ctx, log := newTracer(base).start(context.Background())
	logger.FromContext(ctx).Info().Msg("from ctx")
	log.Info().Msg("returned")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	id, ok := utils.GetTraceIDFromContext(ctx)
	require.True(t, ok)
	for _, line := range lines {
		assert.Contains(t, string(line), `"trace_id":"`+id+`"`)
	}

	// the base logger stays untagged
	buf.Reset()
	base.Info().Msg("base")
	assert.NotContains(t, buf.String(), "trace_id")
}

// lastTraceID reads the trace id back through the logger stored in ctx.
func lastTraceID(ctx context.Context) string {
	var buf bytes.Buffer
	l := logger.FromContext(ctx).Output(&buf)
	l.Info().Msg("")

	var entry map[string]any
	_ = json.Unmarshal(buf.Bytes(), &entry)
	id, _ := entry["trace_id"].(string)
	return id
}
