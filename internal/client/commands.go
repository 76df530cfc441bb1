// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"sync"

	"github.com/MKhiriev/go-log-monitor/internal/config"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/spf13/cobra"
)

type cli struct {
	buildInfo models.AppBuildInfo
	flagCfg   *config.StructuredConfig

	app *App
}

// NewRootCommand builds the logmon command tree. The [App] is created once
// flags are parsed.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:   "logmon",
		Short: "logmon - client for the log-monitor backend",
		Long: `logmon talks to a log-monitor backend: it manages agents and their
monitored log files over REST and streams live events over the push channel.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	c.flagCfg = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.statusCommand(),
		c.agentsCommand(),
		c.logFilesCommand(),
		c.logsCommand(),
		c.watchCommand(),
		c.versionCommand(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("logmon", cfg.App.LogFile, cfg.App.LogLevel)
	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("api", cfg.Adapter.BaseURL).
		Str("ws", cfg.Channel.URL).
		Msg("config resolved")

	c.app, err = NewApp(cfg, c.buildInfo, log)
	return err
}

func (c *cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the system overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.StatusService.Overview(cmd.Context()))
		},
	}
}

func (c *cli) watchCommand() *cobra.Command {
	var alias string

	cmd := &cobra.Command{
		Use:   "watch AGENT_ID",
		Short: "Stream live events of an agent until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := parseID(args[0], "agent")
			if err != nil {
				return err
			}
			defer c.app.Close()

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), agentID, alias, func(msgType models.MessageType, payload any) {
				mu.Lock()
				defer mu.Unlock()
				_ = writeJSON(out, struct {
					Type models.MessageType `json:"type"`
					Data any                `json:"data"`
				}{msgType, payload})
			})
		},
	}
	cmd.Flags().StringVar(&alias, "alias", "", "Only events of this log file")
	return cmd
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// No backend is needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := c.buildInfo.WithFallback(models.BuildInfoNotAvailable)
			if c.app != nil {
				info = c.app.Services.AppInfoService.BuildInfo()
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}
