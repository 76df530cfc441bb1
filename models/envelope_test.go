// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_DataPresence(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		hasData bool
	}{
		{name: "missing", body: `{"success":true,"message":"ok","timestamp":1}`},
		{name: "null", body: `{"success":true,"message":"ok","data":null,"timestamp":1}`},
		{name: "empty list", body: `{"success":true,"message":"ok","data":[],"timestamp":1}`, hasData: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope[[]LogFile]
			require.NoError(t, json.Unmarshal([]byte(tt.body), &env))
			assert.Equal(t, tt.hasData, env.HasData())
			assert.True(t, env.Success)
			assert.Equal(t, int64(1), env.Timestamp)
		})
	}
}

func TestLogQuery_EffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultLogMessagesLimit, LogQuery{}.EffectiveLimit())
	assert.Equal(t, DefaultLogMessagesLimit, LogQuery{Limit: -3}.EffectiveLimit())
	assert.Equal(t, 10, LogQuery{Limit: 10}.EffectiveLimit())
}
