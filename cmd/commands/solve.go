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
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moltbridge/moltbridge-go/pkg/pow"
)

// NewSolveCommand returns the standalone proof-of-work solver command. Useful
// for inspecting challenge cost at a given difficulty.
func NewSolveCommand(c *Context) *cobra.Command {
	var (
		difficulty    int
		maxIterations int
	)

	solveCmd := cobra.Command{
		Use:   "solve <nonce>",
		Short: "Solve a proof-of-AI challenge nonce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce := args[0]

			start := time.Now()
			counter, err := pow.Solve(c.Context, nonce, difficulty, maxIterations)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"difficulty": difficulty,
				"duration":   time.Since(start),
			}).Debug("challenge solved")

			fmt.Fprintln(cmd.OutOrStdout(), counter)
			return nil
		},
	}

	f := solveCmd.Flags()
	f.IntVarP(&difficulty, "difficulty", "d", 4, "Required number of leading zero hex characters")
	f.IntVar(&maxIterations, "max-iterations", pow.DefaultMaxIterations, "Counter ceiling before giving up")

	return &solveCmd
}
