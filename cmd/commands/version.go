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

	"github.com/spf13/cobra"

	moltbridge "github.com/moltbridge/moltbridge-go"
)

// NewVersionCommand returns the version command.
func NewVersionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show moltbridge version (short alias 'v')",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := moltbridge.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "SDK Version: %s\nAuth Scheme: %s\nAPI Version: %s\n",
				info.SDKVersion, info.AuthScheme, info.APIVersion)
			return nil
		},
	}

	return versionCmd
}
