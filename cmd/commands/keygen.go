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
	"text/template"

	"github.com/spf13/cobra"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
)

const keygenTemplateSrc = `{{range . -}}
Signing Key: {{.SigningKey}}
Public Key:  {{.PublicKey}}

{{end}}
`

var keygenTpl = template.Must(template.New("keygen").Parse(keygenTemplateSrc))

type keygenTplData struct {
	SigningKey string
	PublicKey  string
}

// NewKeygenCommand returns the key generation command.
func NewKeygenCommand(c *Context) *cobra.Command {
	var num int

	keygenCmd := cobra.Command{
		Use:   "keygen",
		Short: "Generate Ed25519 signing keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]*keygenTplData, 0, num)
			for i := 0; i < num; i++ {
				keyPair, err := crypt.Generate()
				if err != nil {
					return err
				}
				data = append(data, &keygenTplData{
					SigningKey: keyPair.SeedHex(),
					PublicKey:  keyPair.PublicKeyBase64(),
				})
			}
			return keygenTpl.Execute(cmd.OutOrStdout(), data)
		},
	}

	keygenCmd.Flags().IntVarP(&num, "num", "n", 1, "Keys number")

	return &keygenCmd
}
