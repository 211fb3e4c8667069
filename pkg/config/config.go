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

// Package config loads and validates YAML configuration for the moltbridge
// CLI and server.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

// ClientConfig configures the SDK side: the API endpoint and the agent
// identity used to sign requests.
type ClientConfig struct {
	BaseURL    string `yaml:"base_url" validate:"omitempty,url"`
	AgentID    string `yaml:"agent_id"`
	SigningKey string `yaml:"signing_key" validate:"omitempty,hexadecimal,len=64"`
	MaxRetries int    `yaml:"max_retries" validate:"omitempty,min=1"`
	TimeoutSec int    `yaml:"timeout" validate:"omitempty,min=1"`
}

// ServerConfig configures the verification server.
type ServerConfig struct {
	Address             string `yaml:"address" validate:"omitempty,hostname_port"`
	TokenSecret         string `yaml:"token_secret"`
	ChallengeDifficulty int    `yaml:"challenge_difficulty" validate:"omitempty,min=1,max=16"`
	FreshnessWindowSec  int    `yaml:"freshness_window" validate:"omitempty,min=1"`
}

// Config contains all the configuration necessary to run the moltbridge CLI.
type Config struct {
	Client   ClientConfig `yaml:"client"`
	Server   ServerConfig `yaml:"server"`
	LogLevel string       `yaml:"log_level" validate:"omitempty,oneof=trace debug info warning error fatal panic"`
}

var defaultConfig = Config{
	Client: ClientConfig{
		MaxRetries: 3,
		TimeoutSec: 30,
	},
	Server: ServerConfig{
		Address: ":8090",
	},
	LogLevel: "info",
}

// Read reads the config from a file.
func (c *Config) Read(file string) error {
	yamlFile, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(yamlFile, c)
}

// FreshnessWindow returns the configured window as a duration, zero when
// unset.
func (s *ServerConfig) FreshnessWindow() time.Duration {
	return time.Duration(s.FreshnessWindowSec) * time.Second
}

// Timeout returns the configured per-attempt timeout, zero when unset.
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// Default returns a config populated with defaults.
func Default() *Config {
	c := defaultConfig
	return &c
}

func Validator() *validator.Validate {
	return validator.New()
}
