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
	"encoding/json"

	"github.com/spf13/cobra"
)

// NewHealthCommand returns the API health check command.
func NewHealthCommand(c *Context) *cobra.Command {
	healthCmd := cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := c.Client()
			if err != nil {
				return err
			}

			health, err := cl.Health(c.Context)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(health)
		},
	}

	return &healthCmd
}
