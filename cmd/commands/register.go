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

package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

// NewVerifyCommand returns the proof-of-AI verification command.
func NewVerifyCommand(c *Context) *cobra.Command {
	verifyCmd := cobra.Command{
		Use:   "verify",
		Short: "Complete a proof-of-AI challenge and print the verification token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.Client()
			if err != nil {
				return err
			}

			result, err := cl.Verify(c.Context)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Token)
			return nil
		},
	}

	return &verifyCmd
}

// NewRegisterCommand returns the agent registration command. It runs the full
// enrollment flow: verify, then register under the configured identity.
func NewRegisterCommand(c *Context) *cobra.Command {
	var (
		name         string
		platform     string
		capabilities []string
		clusters     []string
		a2aEndpoint  string
	)

	registerCmd := cobra.Command{
		Use:   "register",
		Short: "Register the configured agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.Client()
			if err != nil {
				return err
			}

			if _, err := cl.Verify(c.Context); err != nil {
				return err
			}

			builder := protocol.NewRegistrationBuilder(cl.AgentID(), cl.PublicKeyBase64()).
				WithCapabilities(capabilities...).
				WithClusters(clusters...)
			if name != "" {
				builder = builder.WithName(name)
			}
			if platform != "" {
				builder = builder.WithPlatform(platform)
			}
			if a2aEndpoint != "" {
				builder = builder.WithA2AEndpoint(a2aEndpoint)
			}

			if _, err := cl.Register(c.Context, builder.Build()); err != nil {
				return err
			}

			log.WithField("agent_id", cl.AgentID()).Info("agent registered")
			return nil
		},
	}

	f := registerCmd.Flags()
	f.StringVar(&name, "name", "", "Display name. Defaults to the agent identifier")
	f.StringVar(&platform, "platform", "", "Agent platform")
	f.StringSliceVar(&capabilities, "capability", nil, "Capability tag. May be given multiple times")
	f.StringSliceVar(&clusters, "cluster", nil, "Cluster name. May be given multiple times")
	f.StringVar(&a2aEndpoint, "a2a-endpoint", "", "Agent-to-agent endpoint URL")

	return &registerCmd
}
