// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MessageType is the routing discriminator of a push-channel message.
type MessageType string

// Inbound message types with a known payload shape.
const (
	MessageTypeLog           MessageType = "LOG_MESSAGE"
	MessageTypeAgentStatus   MessageType = "AGENT_STATUS"
	MessageTypeLogFileStatus MessageType = "LOG_FILE_STATUS"
	MessageTypeSystemStatus  MessageType = "SYSTEM_STATUS"
	MessageTypeError         MessageType = "ERROR"
)

// Outbound control message types.
const (
	MessageTypeSubscribeAgent   MessageType = "SUBSCRIBE_AGENT"
	MessageTypeUnsubscribeAgent MessageType = "UNSUBSCRIBE_AGENT"
)

// ErrEmptyMessageType is returned by ParseChannelMessage for payloads
// without a usable "type" discriminator.
var ErrEmptyMessageType = errors.New("channel message has no type")

// ChannelMessage is an inbound {type, data} frame.
//
// HasData is true whenever the "data" key is present, including values such
// as 0, false, "" and null. Raw keeps the whole frame for flat message shapes
// that carry their fields next to "type" instead of inside "data".
type ChannelMessage struct {
	Type    MessageType
	Data    json.RawMessage
	HasData bool
	Raw     json.RawMessage
}

// OutboundMessage is a {type, data} frame sent by the client.
type OutboundMessage struct {
	Type MessageType `json:"type"`
	Data any         `json:"data,omitempty"`
}

// AgentSubscription is the data of SUBSCRIBE_AGENT / UNSUBSCRIBE_AGENT.
// An empty LogFileAlias means every log file of the agent.
type AgentSubscription struct {
	AgentID      int64  `json:"agentId"`
	LogFileAlias string `json:"logFileAlias,omitempty"`
}

// AgentStatus is the payload of AGENT_STATUS.
type AgentStatus struct {
	AgentID     int64 `json:"agentId"`
	IsConnected bool  `json:"isConnected"`
}

// LogFileStatus is the payload of LOG_FILE_STATUS.
type LogFileStatus struct {
	AgentID    int64  `json:"agentId"`
	Alias      string `json:"alias"`
	Monitoring bool   `json:"monitoring"`
}

// ChannelError is the payload of ERROR.
type ChannelError struct {
	Message string `json:"message"`
}

var payloadDecoders = map[MessageType]func(json.RawMessage) (any, error){
	MessageTypeLog:           decodeAs[LogMessage],
	MessageTypeAgentStatus:   decodeAs[AgentStatus],
	MessageTypeLogFileStatus: decodeAs[LogFileStatus],
	MessageTypeSystemStatus:  decodeAs[SystemOverview],
	MessageTypeError:         decodeAs[ChannelError],
}

func decodeAs[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseChannelMessage decodes a raw frame. It fails on malformed JSON, on
// non-object frames and on a missing or empty type.
func ParseChannelMessage(raw []byte) (ChannelMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ChannelMessage{}, fmt.Errorf("decode channel message: %w", err)
	}

	var msgType string
	if rawType, ok := fields["type"]; ok {
		if err := json.Unmarshal(rawType, &msgType); err != nil {
			return ChannelMessage{}, fmt.Errorf("decode channel message type: %w", err)
		}
	}
	if msgType == "" {
		return ChannelMessage{}, ErrEmptyMessageType
	}

	data, hasData := fields["data"]

	return ChannelMessage{
		Type:    MessageType(msgType),
		Data:    data,
		HasData: hasData,
		Raw:     append(json.RawMessage(nil), raw...),
	}, nil
}

// Delivered returns the JSON value handed to listeners: data when present,
// otherwise the whole frame.
func (m ChannelMessage) Delivered() json.RawMessage {
	if !m.HasData {
		return m.Raw
	}
	if len(m.Data) == 0 {
		return json.RawMessage("null")
	}
	return m.Data
}

// IsNull reports whether the frame carries an explicit null data.
func (m ChannelMessage) IsNull() bool {
	return m.HasData && (len(m.Data) == 0 || bytes.Equal(bytes.TrimSpace(m.Data), []byte("null")))
}

// Payload decodes Delivered into the Go type registered for m.Type. Unknown
// types yield the opaque json.RawMessage. An explicit null data yields a nil
// payload for every type. When a known payload cannot be decoded the opaque
// value is returned together with the error.
func (m ChannelMessage) Payload() (any, error) {
	if m.IsNull() {
		return nil, nil
	}
	delivered := m.Delivered()

	decode, ok := payloadDecoders[m.Type]
	if !ok {
		return delivered, nil
	}

	v, err := decode(delivered)
	if err != nil {
		return delivered, fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return v, nil
}

// IsKnownMessageType reports whether t has a registered payload shape.
func IsKnownMessageType(t MessageType) bool {
	_, ok := payloadDecoders[t]
	return ok
}
