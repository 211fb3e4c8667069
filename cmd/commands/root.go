// Copyright (C) 2025 MoltBridge
//
// This file is part of moltbridge-go.
//
// moltbridge-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moltbridge-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with moltbridge-go.  If not, see <https://www.gnu.org/licenses/>.

// Package commands implements the moltbridge CLI.
package commands

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moltbridge/moltbridge-go/pkg/client"
	"github.com/moltbridge/moltbridge-go/pkg/config"
)

// Context represents root command context shared with its children.
type Context struct {
	Context context.Context

	config *config.Config
}

// Client builds an API client from the loaded configuration. Identity fields
// left empty fall back to the MOLTBRIDGE_* environment variables.
func (c *Context) Client() (*client.Client, error) {
	var opts []client.Option
	if c.config.Client.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(c.config.Client.BaseURL))
	}
	if c.config.Client.AgentID != "" {
		opts = append(opts, client.WithAgentID(c.config.Client.AgentID))
	}
	if c.config.Client.SigningKey != "" {
		opts = append(opts, client.WithSigningKeyHex(c.config.Client.SigningKey))
	}
	if c.config.Client.MaxRetries > 0 {
		opts = append(opts, client.WithMaxRetries(c.config.Client.MaxRetries))
	}
	if c.config.Client.TimeoutSec > 0 {
		opts = append(opts, client.WithTimeout(c.config.Client.Timeout()))
	}
	return client.New(opts...)
}

// NewRootCommand returns new root command
func NewRootCommand(c *Context, name string) *cobra.Command {
	var (
		level      string
		configFile string
		baseURL    string
		agentID    string
		jsonLog    bool
	)

	rootCmd := cobra.Command{
		Use:   name,
		Short: "MoltBridge agent identity and trust-graph client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Use == "version" {
				return nil
			}

			conf := config.Default()
			if configFile != "" {
				if err := conf.Read(configFile); err != nil {
					return err
				}
			}

			// Flags take priority over the config file.
			if baseURL != "" {
				conf.Client.BaseURL = baseURL
			}
			if agentID != "" {
				conf.Client.AgentID = agentID
			}
			if level != "" {
				conf.LogLevel = level
			}

			validate := config.Validator()
			if err := validate.Struct(conf); err != nil {
				return err
			}

			if jsonLog {
				log.SetFormatter(&log.JSONFormatter{})
			}

			lv, err := log.ParseLevel(conf.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lv)

			c.config = conf
			return nil
		},
	}

	f := rootCmd.PersistentFlags()

	f.StringVarP(&configFile, "config", "c", "", "Config file path")
	f.StringVar(&level, "log", "", "Log level: [error, warning, info, debug, trace]")
	f.StringVar(&baseURL, "base-url", "", "API base URL. Takes priority over one specified in config")
	f.StringVar(&agentID, "agent-id", "", "Agent identifier. Takes priority over one specified in config")
	f.BoolVar(&jsonLog, "json-log", false, "Use JSON structured logs")

	return &rootCmd
}
