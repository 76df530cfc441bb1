// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/spf13/cobra"
)

func (c *cli) logFilesCommand() *cobra.Command {
	logFiles := &cobra.Command{
		Use:   "logfiles",
		Short: "Manage the monitored log files of an agent",
	}

	logFiles.AddCommand(
		c.agentCommand("list", "List log files of an agent", func(cmd *cobra.Command, agentID int64) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.List(cmd.Context(), agentID))
		}),
		c.logFileAddCommand(),
		c.logFileUpdateCommand(),
		c.logFileCommand("delete", "Remove a log file", func(cmd *cobra.Command, agentID int64, alias string) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.Delete(cmd.Context(), agentID, alias))
		}),
		c.logFileCommand("start", "Start monitoring a log file", func(cmd *cobra.Command, agentID int64, alias string) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.StartMonitoring(cmd.Context(), agentID, alias))
		}),
		c.logFileCommand("stop", "Stop monitoring a log file", func(cmd *cobra.Command, agentID int64, alias string) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.StopMonitoring(cmd.Context(), agentID, alias))
		}),
	)
	return logFiles
}

// logFileCommand builds a "<name> AGENT_ID ALIAS" command.
func (c *cli) logFileCommand(name, short string, run func(cmd *cobra.Command, agentID int64, alias string) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " AGENT_ID ALIAS",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := parseID(args[0], "agent")
			if err != nil {
				return err
			}
			return run(cmd, agentID, args[1])
		},
	}
}

func bindLogFileFlags(cmd *cobra.Command, req *models.AddLogFileRequest) {
	cmd.Flags().StringVar(&req.Alias, "alias", "", "Log file alias")
	cmd.Flags().StringVar(&req.FilePath, "path", "", "Log file path on the agent host")
}

func (c *cli) logFileAddCommand() *cobra.Command {
	var req models.AddLogFileRequest

	cmd := c.agentCommand("add", "Add a log file to an agent", func(cmd *cobra.Command, agentID int64) error {
		return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.Add(cmd.Context(), agentID, req))
	})
	bindLogFileFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("alias")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (c *cli) logFileUpdateCommand() *cobra.Command {
	var req models.AddLogFileRequest

	cmd := c.logFileCommand("update", "Change the alias or path of a log file", func(cmd *cobra.Command, agentID int64, alias string) error {
		if req.Alias == "" {
			req.Alias = alias
		}
		return writeResult(cmd.OutOrStdout(), c.app.Services.LogFileService.Update(cmd.Context(), agentID, alias, req))
	})
	bindLogFileFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (c *cli) logsCommand() *cobra.Command {
	logs := &cobra.Command{
		Use:   "logs",
		Short: "Read collected log messages",
	}

	var query models.LogQuery
	list := c.agentCommand("list", "List log messages of an agent", func(cmd *cobra.Command, agentID int64) error {
		return writeResult(cmd.OutOrStdout(), c.app.Services.LogMessageService.List(cmd.Context(), agentID, query))
	})
	list.Flags().StringVar(&query.Alias, "alias", "", "Only messages of this log file")
	list.Flags().IntVar(&query.Limit, "limit", models.DefaultLogMessagesLimit, "Maximum number of messages")

	var tail int
	tailCmd := c.logFileCommand("tail", "Show the last messages of a log file", func(cmd *cobra.Command, agentID int64, alias string) error {
		return writeResult(cmd.OutOrStdout(), c.app.Services.LogMessageService.Tail(cmd.Context(), agentID, alias, tail))
	})
	tailCmd.Flags().IntVar(&tail, "tail", models.DefaultLogTailSize, "Number of messages")

	logs.AddCommand(list, tailCmd)
	return logs
}
