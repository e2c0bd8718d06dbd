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

package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cipha/cmd/cipha/commands"
	"github.com/walteh/cipha/cmd/cipha/opts"
	"github.com/walteh/cipha/pkg/config"
	"github.com/walteh/cipha/pkg/dispatch"
	"github.com/walteh/cipha/pkg/log"
	"gitlab.com/tozd/go/errors"
)

type rootFlags struct {
	configFile string
	debug      bool
	strict     bool
	outputFile string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "cipha",
		Short: "Encode and decode text with classical ciphers",
		Long: `cipha runs messages through classical ciphers: rot13, caesar, vigenere,
atbash, morse, gematria, railfence and reverse.

Defaults for the cipher and its parameters can come from a config file
(.cipha.yaml, .cipha.json or .cipha.hcl) and CIPHA_* environment variables.
Flags always win.`,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)

			cfg, err := loadConfig(ctx, flags.configFile)
			if err != nil {
				return err
			}
			if flags.strict && !cfg.Strict {
				cfg.Strict = true
				if err := cfg.Validate(); err != nil {
					return errors.Errorf("validating config: %w", err)
				}
			}

			rootOpts.Config = cfg
			rootOpts.Dispatcher = dispatch.New(dispatch.WithStrict(cfg.Strict))
			rootOpts.Console = log.New(ctx, cmd.ErrOrStderr())
			rootOpts.OutputFile = flags.outputFile

			zerolog.Ctx(ctx).Debug().
				Str("config", cfg.Location()).
				Stringer("settings", cfg).
				Msg("configuration loaded")

			cmd.SetContext(log.NewContext(ctx, rootOpts.Console))
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, "print the version")

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file path, defaults to .cipha.{yaml,yml,json,hcl} when present")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "fail on unknown ciphers instead of printing \""+dispatch.UnsupportedCipher+"\"")
	cmd.PersistentFlags().StringVarP(&flags.outputFile, "output-file", "o", "", "write the result to this file instead of stdout")

	cmd.AddCommand(
		commands.NewEncodeCmd(rootOpts),
		commands.NewDecodeCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		commands.NewBatchCmd(rootOpts),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig loads the named file, or the default file when none is named
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefault(ctx, ".")
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// setupLogging attaches a zerolog console logger writing to w. Info records
// repeat what the console already shows, so they only appear with --debug.
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger.WithContext(ctx)
}
