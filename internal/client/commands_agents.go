// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-log-monitor/models"
	"github.com/spf13/cobra"
)

func (c *cli) agentsCommand() *cobra.Command {
	agents := &cobra.Command{
		Use:   "agents",
		Short: "Manage agents",
	}

	agents.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List agents with their log files",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.List(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "get AGENT_ID",
			Short: "Show one agent",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "agent")
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Get(cmd.Context(), id))
			},
		},
		c.agentAddCommand(),
		c.agentUpdateCommand(),
		c.agentCommand("delete", "Delete an agent", func(cmd *cobra.Command, id int64) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Delete(cmd.Context(), id))
		}),
		c.agentCommand("connect", "Ask the backend to connect to an agent", func(cmd *cobra.Command, id int64) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Connect(cmd.Context(), id))
		}),
		c.agentCommand("disconnect", "Ask the backend to disconnect from an agent", func(cmd *cobra.Command, id int64) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Disconnect(cmd.Context(), id))
		}),
	)
	return agents
}

// agentCommand builds a "<name> AGENT_ID" command.
func (c *cli) agentCommand(name, short string, run func(cmd *cobra.Command, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " AGENT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "agent")
			if err != nil {
				return err
			}
			return run(cmd, id)
		},
	}
}

func bindAgentFlags(cmd *cobra.Command, req *models.AddAgentRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Agent name")
	cmd.Flags().StringVar(&req.Host, "host", "", "Agent host")
	cmd.Flags().IntVar(&req.Port, "port", 0, "Agent port")
	cmd.Flags().BoolVar(&req.Enabled, "enabled", true, "Whether the agent is enabled")
	cmd.Flags().StringSliceVar(&req.Tags, "tags", nil, "Comma separated tags")
	cmd.Flags().StringVar(&req.Description, "description", "", "Free-form description")
	cmd.Flags().BoolVar(&req.UseTLS, "tls", false, "Connect to the agent over TLS")
	cmd.Flags().StringVar(&req.APIKey, "api-key", "", "Agent API key")
}

func (c *cli) agentAddCommand() *cobra.Command {
	var req models.AddAgentRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Create(cmd.Context(), req))
		},
	}
	bindAgentFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("host")
	_ = cmd.MarkFlagRequired("port")
	return cmd
}

func (c *cli) agentUpdateCommand() *cobra.Command {
	var req models.AddAgentRequest

	cmd := c.agentCommand("update", "Replace an agent definition", func(cmd *cobra.Command, id int64) error {
		return writeResult(cmd.OutOrStdout(), c.app.Services.AgentService.Update(cmd.Context(), id, models.UpdateAgentRequest(req)))
	})
	bindAgentFlags(cmd, &req)
	return cmd
}
