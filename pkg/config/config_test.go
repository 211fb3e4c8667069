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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moltbridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig_Read(t *testing.T) {
	path := writeConfig(t, `
client:
  base_url: https://api.example.com
  agent_id: translator-01
  signing_key: `+strings.Repeat("ab", 32)+`
  max_retries: 5
  timeout: 10
server:
  address: ":9000"
  token_secret: hunter2
  challenge_difficulty: 3
  freshness_window: 120
log_level: debug
`)

	c := Default()
	require.NoError(t, c.Read(path))
	require.NoError(t, Validator().Struct(c))

	assert.Equal(t, "https://api.example.com", c.Client.BaseURL)
	assert.Equal(t, "translator-01", c.Client.AgentID)
	assert.Equal(t, 5, c.Client.MaxRetries)
	assert.Equal(t, 10*time.Second, c.Client.Timeout())
	assert.Equal(t, ":9000", c.Server.Address)
	assert.Equal(t, 3, c.Server.ChallengeDifficulty)
	assert.Equal(t, 2*time.Minute, c.Server.FreshnessWindow())
	assert.Equal(t, "debug", c.LogLevel)
}

func TestConfig_Defaults(t *testing.T) {
	c := Default()
	require.NoError(t, Validator().Struct(c))

	assert.Equal(t, 3, c.Client.MaxRetries)
	assert.Equal(t, 30*time.Second, c.Client.Timeout())
	assert.Equal(t, ":8090", c.Server.Address)
	assert.Equal(t, "info", c.LogLevel)
	assert.Zero(t, c.Server.FreshnessWindow())
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
client:
  agent_id: translator-01
`)

	c := Default()
	require.NoError(t, c.Read(path))

	assert.Equal(t, "translator-01", c.Client.AgentID)
	assert.Equal(t, 3, c.Client.MaxRetries)
	assert.Equal(t, ":8090", c.Server.Address)
}

func TestConfig_ValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad url", "client:\n  base_url: not-a-url\n"},
		{"short signing key", "client:\n  signing_key: abcd\n"},
		{"non-hex signing key", "client:\n  signing_key: " + strings.Repeat("zz", 32) + "\n"},
		{"bad address", "server:\n  address: no-port\n"},
		{"difficulty too high", "server:\n  challenge_difficulty: 64\n"},
		{"unknown log level", "log_level: verbose\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.Read(writeConfig(t, tc.yaml)))
			assert.Error(t, Validator().Struct(c))
		})
	}
}

func TestConfig_ReadMissingFile(t *testing.T) {
	c := Default()
	assert.Error(t, c.Read(filepath.Join(t.TempDir(), "absent.yaml")))
}
