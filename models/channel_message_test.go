// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannelMessage(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantType    MessageType
		wantHasData bool
		wantErr     bool
	}{
		{name: "enveloped", raw: `{"type":"LOG","data":{"line":"x"}}`, wantType: "LOG", wantHasData: true},
		{name: "flat", raw: `{"type":"STATUS"}`, wantType: "STATUS"},
		{name: "zero data is present", raw: `{"type":"COUNT","data":0}`, wantType: "COUNT", wantHasData: true},
		{name: "false data is present", raw: `{"type":"FLAG","data":false}`, wantType: "FLAG", wantHasData: true},
		{name: "empty string data is present", raw: `{"type":"TEXT","data":""}`, wantType: "TEXT", wantHasData: true},
		{name: "null data is present", raw: `{"type":"NIL","data":null}`, wantType: "NIL", wantHasData: true},
		{name: "malformed json", raw: `{"type":`, wantErr: true},
		{name: "not an object", raw: `[1,2]`, wantErr: true},
		{name: "missing type", raw: `{"data":1}`, wantErr: true},
		{name: "non-string type", raw: `{"type":5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseChannelMessage([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, msg.Type)
			assert.Equal(t, tt.wantHasData, msg.HasData)
			assert.JSONEq(t, tt.raw, string(msg.Raw))
		})
	}
}

func TestParseChannelMessage_MissingTypeIsSentinel(t *testing.T) {
	_, err := ParseChannelMessage([]byte(`{"type":""}`))
	assert.ErrorIs(t, err, ErrEmptyMessageType)
}

func TestChannelMessage_Delivered(t *testing.T) {
	enveloped, err := ParseChannelMessage([]byte(`{"type":"LOG","data":{"line":"x"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"line":"x"}`, string(enveloped.Delivered()))

	flat, err := ParseChannelMessage([]byte(`{"type":"STATUS","agentId":3}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"STATUS","agentId":3}`, string(flat.Delivered()))
}

func TestChannelMessage_Payload_KnownTypes(t *testing.T) {
	msg, err := ParseChannelMessage([]byte(`{"type":"LOG_MESSAGE","data":{"id":7,"agentId":1,"logFileAlias":"app.log","content":"boom","level":"ERROR"}}`))
	require.NoError(t, err)

	payload, err := msg.Payload()
	require.NoError(t, err)
	assert.Equal(t, LogMessage{ID: 7, AgentID: 1, LogFileAlias: "app.log", Content: "boom", Level: "ERROR"}, payload)

	// flat log frames carry the fields next to the type
	flat, err := ParseChannelMessage([]byte(`{"type":"LOG_MESSAGE","id":8,"agentId":2,"content":"flat"}`))
	require.NoError(t, err)

	payload, err = flat.Payload()
	require.NoError(t, err)
	assert.Equal(t, LogMessage{ID: 8, AgentID: 2, Content: "flat"}, payload)

	status, err := ParseChannelMessage([]byte(`{"type":"AGENT_STATUS","data":{"agentId":4,"isConnected":true}}`))
	require.NoError(t, err)

	payload, err = status.Payload()
	require.NoError(t, err)
	assert.Equal(t, AgentStatus{AgentID: 4, IsConnected: true}, payload)
}

func TestChannelMessage_Payload_UnknownTypeIsOpaque(t *testing.T) {
	msg, err := ParseChannelMessage([]byte(`{"type":"CUSTOM","data":[1,2,3]}`))
	require.NoError(t, err)

	payload, err := msg.Payload()
	require.NoError(t, err)

	raw, ok := payload.(json.RawMessage)
	require.True(t, ok, "unknown types must be delivered as json.RawMessage, got %T", payload)
	assert.JSONEq(t, `[1,2,3]`, string(raw))
}

func TestChannelMessage_Payload_NullDataIsNil(t *testing.T) {
	for _, raw := range []string{
		`{"type":"LOG_MESSAGE","data":null}`,
		`{"type":"AGENT_STATUS","data": null }`,
		`{"type":"CUSTOM","data":null}`,
	} {
		msg, err := ParseChannelMessage([]byte(raw))
		require.NoError(t, err, raw)
		assert.True(t, msg.IsNull(), raw)

		payload, err := msg.Payload()
		require.NoError(t, err, raw)
		assert.Nil(t, payload, raw)
	}

	// only an explicit null counts, other falsy values are delivered
	zero, err := ParseChannelMessage([]byte(`{"type":"CUSTOM","data":0}`))
	require.NoError(t, err)
	assert.False(t, zero.IsNull())

	flat, err := ParseChannelMessage([]byte(`{"type":"LOG_MESSAGE","content":"x"}`))
	require.NoError(t, err)
	assert.False(t, flat.IsNull())
}

func TestChannelMessage_Payload_DecodeFailure(t *testing.T) {
	msg, err := ParseChannelMessage([]byte(`{"type":"AGENT_STATUS","data":"not an object"}`))
	require.NoError(t, err)

	payload, err := msg.Payload()
	require.Error(t, err)
	assert.IsType(t, json.RawMessage{}, payload)
}

func TestOutboundMessage_OmitsAbsentAlias(t *testing.T) {
	b, err := json.Marshal(OutboundMessage{
		Type: MessageTypeSubscribeAgent,
		Data: AgentSubscription{AgentID: 3},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"SUBSCRIBE_AGENT","data":{"agentId":3}}`, string(b))
}

func TestIsKnownMessageType(t *testing.T) {
	assert.True(t, IsKnownMessageType(MessageTypeLog))
	assert.False(t, IsKnownMessageType(MessageTypeSubscribeAgent))
	assert.False(t, IsKnownMessageType("SOMETHING_ELSE"))
}
