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
	"context"
	"crypto/rand"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/moltbridge/moltbridge-go/pkg/server"
)

// NewServeCommand returns the verification server command.
func NewServeCommand(c *Context) *cobra.Command {
	serveCmd := cobra.Command{
		Use:   "serve",
		Short: "Run a verification server",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := []byte(c.config.Server.TokenSecret)
			if len(secret) == 0 {
				// Tokens from an ephemeral secret do not survive a
				// restart.
				secret = make([]byte, 32)
				if _, err := rand.Read(secret); err != nil {
					return err
				}
				log.Warn("no token_secret configured, using an ephemeral secret")
			}

			challenges, err := server.NewChallengeService(secret, c.config.Server.ChallengeDifficulty)
			if err != nil {
				return err
			}

			srvConf := server.Server{
				Registry:        server.NewRegistry(),
				Challenges:      challenges,
				Address:         c.config.Server.Address,
				FreshnessWindow: c.config.Server.FreshnessWindow(),
			}
			srv, err := srvConf.New()
			if err != nil {
				return err
			}

			srvErrCh := make(chan error)
			go func() {
				log.Printf("HTTP server is listening for connections on %s", srv.Addr)
				srvErrCh <- srv.ListenAndServe()
			}()

			select {
			case <-c.Context.Done():
			case err := <-srvErrCh:
				return err
			}

			log.Println("Shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()

			srv.Shutdown(ctx)
			if err := <-srvErrCh; err != nil && err != context.Canceled && err != http.ErrServerClosed {
				return err
			}

			return nil
		},
	}

	return &serveCmd
}
