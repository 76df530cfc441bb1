// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SystemOverview is the dashboard summary returned by GET /status.
type SystemOverview struct {
	TotalAgents        int            `json:"totalAgents"`
	ConnectedAgents    int            `json:"connectedAgents"`
	TotalLogFiles      int            `json:"totalLogFiles"`
	MonitoringLogFiles int            `json:"monitoringLogFiles"`
	TotalMessages      int64          `json:"totalMessages"`
	RecentMessages     int64          `json:"recentMessages"`
	LogLevelStats      []LogLevelStat `json:"logLevelStats"`
}

// LogLevelStat is the message count for one log level.
type LogLevelStat struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}
