// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default page sizes used when the caller passes a non-positive value.
const (
	DefaultLogMessagesLimit = 100
	DefaultLogTailSize      = 50
)

// LogMessage is a single log line collected from an agent.
type LogMessage struct {
	ID           int64  `json:"id"`
	AgentID      int64  `json:"agentId"`
	LogFileAlias string `json:"logFileAlias"`
	Content      string `json:"content"`
	Level        string `json:"level"`
	Timestamp    string `json:"timestamp"`
	CreatedAt    string `json:"createdAt"`
}

// LogQuery filters GET /agents/{id}/logs.
type LogQuery struct {
	// Alias restricts results to one log file. Empty means all files.
	Alias string

	// Limit caps the number of returned messages. Values <= 0 fall back to
	// DefaultLogMessagesLimit.
	Limit int
}

// EffectiveLimit returns Limit or DefaultLogMessagesLimit when Limit is unset.
func (q LogQuery) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLogMessagesLimit
	}
	return q.Limit
}
