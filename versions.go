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

// Package moltbridge provides version information for moltbridge-go.
package moltbridge

import "github.com/moltbridge/moltbridge-go/pkg/protocol"

const (
	// Version is the current version of moltbridge-go
	Version = "1.0.0-dev"

	// AuthScheme is the Authorization scheme tag produced and accepted by this
	// library. It must match the scheme used by the Python and TypeScript SDKs.
	AuthScheme = protocol.Scheme

	// APIVersion is the MoltBridge REST API version this library targets
	APIVersion = "1"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion string
	AuthScheme string
	APIVersion string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion: Version,
		AuthScheme: AuthScheme,
		APIVersion: APIVersion,
	}
}
