// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LogFile is a monitorable file on an agent. Alias is chosen by the user and
// is the identifier used in URL paths, so it may contain any character.
type LogFile struct {
	ID        int64  `json:"id"`
	AgentID   int64  `json:"agentId"`
	Alias     string `json:"alias"`
	FilePath  string `json:"filePath"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AddLogFileRequest is the body of POST /agents/{id}/logfiles and
// PUT /agents/{id}/logfiles/{alias}.
type AddLogFileRequest struct {
	FilePath string `json:"filePath"`
	Alias    string `json:"alias"`
}
