// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/cipha/cmd/cipha/opts"
	"github.com/walteh/cipha/pkg/cipher"
	"github.com/walteh/cipha/pkg/dispatch"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates the list command
func NewListCmd(o *opts.RootOpts) *cobra.Command {
	var morse bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available ciphers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := cipherTable()
			if morse {
				data = morseTable()
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering table: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&morse, "morse", false, "print the Morse code table instead")

	return cmd
}

func cipherTable() pterm.TableData {
	data := pterm.TableData{{"Cipher", "Parameters", "Self-inverse", "Description"}}
	for _, e := range dispatch.Entries() {
		params := "-"
		if len(e.Params) > 0 {
			params = strings.Join(e.Params, ", ")
		}
		inverse := "no"
		if e.SelfInverse {
			inverse = "yes"
		}
		data = append(data, []string{e.Name, params, inverse, e.Summary})
	}
	return data
}

func morseTable() pterm.TableData {
	data := pterm.TableData{{"Symbol", "Code"}}
	for _, s := range cipher.MorseTable() {
		symbol := string(s.Symbol)
		if s.Symbol == ' ' {
			symbol = "space"
		}
		data = append(data, []string{symbol, s.Code})
	}
	return data
}
