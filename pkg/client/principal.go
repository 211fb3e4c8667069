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

package client

import (
	"context"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
)

// PrincipalProject describes one project in a principal's profile.
type PrincipalProject struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// PrincipalProfile holds a human principal's professional profile. Zero
// fields are omitted from requests.
type PrincipalProfile struct {
	Industry     string
	Role         string
	Organization string
	Expertise    []string
	Interests    []string
	Projects     []PrincipalProject
	Location     string
	Bio          string
	LookingFor   []string
	CanOffer     []string
}

func (p PrincipalProfile) body() map[string]interface{} {
	body := map[string]interface{}{}
	if p.Industry != "" {
		body["industry"] = p.Industry
	}
	if p.Role != "" {
		body["role"] = p.Role
	}
	if p.Organization != "" {
		body["organization"] = p.Organization
	}
	if p.Expertise != nil {
		body["expertise"] = p.Expertise
	}
	if p.Interests != nil {
		body["interests"] = p.Interests
	}
	if p.Projects != nil {
		body["projects"] = p.Projects
	}
	if p.Location != "" {
		body["location"] = p.Location
	}
	if p.Bio != "" {
		body["bio"] = p.Bio
	}
	if p.LookingFor != nil {
		body["looking_for"] = p.LookingFor
	}
	if p.CanOffer != nil {
		body["can_offer"] = p.CanOffer
	}
	return body
}

// OnboardPrincipal submits the principal's professional profile so the trust
// graph can find better introductions. At least one of industry, role or
// expertise is required.
func (c *Client) OnboardPrincipal(ctx context.Context, profile PrincipalProfile) (map[string]interface{}, error) {
	if profile.Industry == "" && profile.Role == "" && len(profile.Expertise) == 0 {
		return nil, errors.New(errors.CodeValidation,
			"at least one of industry, role or expertise is required")
	}
	return c.getJSON(ctx, transport.Call{
		Method:       "POST",
		Path:         "/principal/onboard",
		Body:         profile.body(),
		RequiresAuth: true,
	})
}

// UpdatePrincipal updates the principal's profile. Additive by default;
// replace overwrites array fields instead of appending.
func (c *Client) UpdatePrincipal(ctx context.Context, profile PrincipalProfile, replace bool) (map[string]interface{}, error) {
	body := profile.body()
	if replace {
		body["replace"] = true
	}
	return c.getJSON(ctx, transport.Call{
		Method:       "PUT",
		Path:         "/principal/profile",
		Body:         body,
		RequiresAuth: true,
	})
}

// GetPrincipal returns the principal's full profile.
func (c *Client) GetPrincipal(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{
		Method:       "GET",
		Path:         "/principal/profile",
		RequiresAuth: true,
	})
}

// GetPrincipalVisibility returns the public-facing view of the principal's
// profile.
func (c *Client) GetPrincipalVisibility(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{
		Method:       "GET",
		Path:         "/principal/visibility",
		RequiresAuth: true,
	})
}
