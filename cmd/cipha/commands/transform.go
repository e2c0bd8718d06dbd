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
	"github.com/spf13/cobra"
	"github.com/walteh/cipha/cmd/cipha/opts"
	"github.com/walteh/cipha/pkg/dispatch"
	"github.com/walteh/cipha/pkg/message"
	"gitlab.com/tozd/go/errors"
)

var ErrMissingCipher = errors.Base("--cipher is required unless the config sets a default cipher")

// cipherFlags are the flags shared by every command that runs a cipher
type cipherFlags struct {
	cipher string
	shift  int
	key    string
	rails  int
}

func (f *cipherFlags) register(cmd *cobra.Command) {
	defaults := dispatch.DefaultParams()
	cmd.Flags().StringVarP(&f.cipher, "cipher", "c", "", "cipher to use, see cipha list")
	cmd.Flags().IntVarP(&f.shift, "shift", "s", defaults.Shift, "shift for caesar")
	cmd.Flags().StringVarP(&f.key, "key", "k", defaults.Key, "key for vigenere")
	cmd.Flags().IntVarP(&f.rails, "rails", "r", defaults.Rails, "rails for railfence")
}

// resolve picks the cipher name and parameters. Flags that were set win over
// the config, which wins over the built in defaults.
func (f *cipherFlags) resolve(cmd *cobra.Command, o *opts.RootOpts) (string, dispatch.Params, error) {
	name := f.cipher
	if !cmd.Flags().Changed("cipher") {
		name = o.Config.Cipher
	}
	if name == "" {
		return "", dispatch.Params{}, errors.WithStack(ErrMissingCipher)
	}

	params := o.Config.Params()
	if cmd.Flags().Changed("shift") {
		params.Shift = f.shift
	}
	if cmd.Flags().Changed("key") {
		params.Key = f.key
	}
	if cmd.Flags().Changed("rails") {
		params.Rails = f.rails
	}
	return name, params, nil
}

// NewEncodeCmd creates the encode command
func NewEncodeCmd(o *opts.RootOpts) *cobra.Command {
	return newTransformCmd(o, dispatch.ModeEncode,
		"Encode a message",
		`Encode runs a message through a cipher.

The message is given with --message, or read from --file when --message is
absent. The result is printed, or written to --output-file.`)
}

// NewDecodeCmd creates the decode command
func NewDecodeCmd(o *opts.RootOpts) *cobra.Command {
	return newTransformCmd(o, dispatch.ModeDecode,
		"Decode a message",
		`Decode reverses a cipher.

The message is given with --message, or read from --file when --message is
absent. The result is printed, or written to --output-file.`)
}

func newTransformCmd(o *opts.RootOpts, mode dispatch.Mode, short, long string) *cobra.Command {
	var (
		cf   cipherFlags
		text string
		file string
	)

	cmd := &cobra.Command{
		Use:   string(mode),
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name, params, err := cf.resolve(cmd, o)
			if err != nil {
				return err
			}

			msg, err := message.Read(ctx, message.Source{
				Literal:    text,
				HasLiteral: cmd.Flags().Changed("message"),
				File:       file,
			})
			if err != nil {
				return err
			}

			result, err := o.Dispatcher.Run(ctx, name, mode, msg, params)
			if err != nil {
				return errors.Errorf("%s with %s: %w", mode, name, err)
			}

			return message.Write(ctx, cmd.OutOrStdout(), o.OutputFile, result)
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVarP(&text, "message", "m", "", "message to "+string(mode))
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to read the message from")

	return cmd
}
