// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the shared error taxonomy of the client connectivity
// layer and the messages used when an operation fails.
//
// All Msg* constants are human-readable strings written into log entries
// when a REST operation degrades. Keeping them in one place ensures
// consistent wording between the service layer and the CLI.
package app

const (
	MsgAPICallFailed = "api call failed"

	MsgFailedToListAgents      = "failed to get agents"
	MsgFailedToGetAgent        = "failed to get agent"
	MsgFailedToCreateAgent     = "failed to create agent"
	MsgFailedToUpdateAgent     = "failed to update agent"
	MsgFailedToDeleteAgent     = "failed to delete agent"
	MsgFailedToConnectAgent    = "failed to connect agent"
	MsgFailedToDisconnectAgent = "failed to disconnect agent"

	MsgFailedToListLogFiles   = "failed to get log files"
	MsgFailedToAddLogFile     = "failed to add log file"
	MsgFailedToUpdateLogFile  = "failed to update log file"
	MsgFailedToDeleteLogFile  = "failed to delete log file"
	MsgFailedToStartLogFile   = "failed to start log file monitoring"
	MsgFailedToStopLogFile    = "failed to stop log file monitoring"
	MsgFailedToListLogs       = "failed to get log messages"
	MsgFailedToTailLogFile    = "failed to get log file tail"
	MsgFailedToGetSystemState = "failed to get system status"
)
