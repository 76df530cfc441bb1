// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Agent is a remote log source registered on the monitoring backend.
type Agent struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Host        string   `json:"host"`
	Port        int      `json:"port"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	UseTLS      bool     `json:"useTls"`
	APIKey      string   `json:"apiKey,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`

	// WebSocketURL is the agent-side push endpoint the backend dials.
	WebSocketURL string `json:"webSocketUrl"`
}

// AgentDetailView is the list/detail projection of an agent returned by
// GET /agents and GET /agents/{id}.
type AgentDetailView struct {
	Agent           Agent     `json:"agent"`
	LogFiles        []LogFile `json:"logFiles"`
	MonitoringCount int       `json:"monitoringCount"`
	IsConnected     bool      `json:"isConnected"`
}

// AddAgentRequest is the body of POST /agents.
type AddAgentRequest struct {
	Name        string   `json:"name"`
	Host        string   `json:"host"`
	Port        int      `json:"port"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags"`
	Description string   `json:"description,omitempty"`
	UseTLS      bool     `json:"useTls"`
	APIKey      string   `json:"apiKey,omitempty"`
}

// UpdateAgentRequest is the body of PUT /agents/{id}. It carries the full
// agent definition, same as AddAgentRequest.
type UpdateAgentRequest AddAgentRequest
