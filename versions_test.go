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

package moltbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

func TestVersionConstants(t *testing.T) {
	// Verify version constants are not empty
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, AuthScheme, "AuthScheme should not be empty")
	assert.NotEmpty(t, APIVersion, "APIVersion should not be empty")

	// Verify expected values
	assert.Equal(t, "1.0.0-dev", Version)
	assert.Equal(t, "MoltBridge-Ed25519", AuthScheme)
	assert.Equal(t, protocol.Scheme, AuthScheme)
	assert.Equal(t, "1", APIVersion)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.SDKVersion)
	assert.Equal(t, AuthScheme, info.AuthScheme)
	assert.Equal(t, APIVersion, info.APIVersion)
}
