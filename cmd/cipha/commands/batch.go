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
	"github.com/walteh/cipha/pkg/batch"
	"github.com/walteh/cipha/pkg/dispatch"
	"gitlab.com/tozd/go/errors"
)

var ErrBatchFailures = errors.Base("some files could not be transformed")

// NewBatchCmd creates the batch command
func NewBatchCmd(o *opts.RootOpts) *cobra.Command {
	var (
		cf          cipherFlags
		mode        string
		pattern     string
		root        string
		outDir      string
		suffix      string
		ignore      []string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Encode or decode every file matching a pattern",
		Long: `Batch runs a cipher over every file under --root matching --pattern.
It will:
1. Match files with a doublestar pattern, e.g. "**/*.txt"
2. Skip files matching any --ignore pattern
3. Write each result next to its input, or under --out-dir
4. Report which outputs are new, modified, unchanged or failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name, params, err := cf.resolve(cmd, o)
			if err != nil {
				return err
			}

			m, err := dispatch.ParseMode(mode)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("suffix") {
				suffix = o.Config.Batch.Suffix
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = o.Config.Batch.Concurrency
			}

			runner, err := batch.New(batch.Options{
				Root:        root,
				Pattern:     pattern,
				Ignore:      append(append([]string{}, o.Config.Batch.Ignore...), ignore...),
				OutDir:      outDir,
				Suffix:      suffix,
				Cipher:      name,
				Mode:        m,
				Params:      params,
				Concurrency: concurrency,
				Dispatcher:  o.Dispatcher,
			})
			if err != nil {
				return errors.Errorf("creating batch: %w", err)
			}

			results, err := runner.Run(ctx)
			if err != nil {
				return errors.Errorf("running batch: %w", err)
			}

			if len(results) == 0 {
				o.Console.Infof("no files under %s match %s", root, pattern)
				return nil
			}

			for _, r := range results {
				if r.Err != nil {
					o.Console.Errorf("%s: %v", r.Path, r.Err)
				}
			}

			counts := batch.Counts(results)
			o.Console.Successf("%d files: %d new, %d modified, %d unchanged, %d failed",
				len(results),
				counts[batch.StatusNew],
				counts[batch.StatusModified],
				counts[batch.StatusUnchanged],
				counts[batch.StatusFailed])

			if n := counts[batch.StatusFailed]; n > 0 {
				return errors.Errorf("%w: %d failed", ErrBatchFailures, n)
			}
			return nil
		},
	}

	cf.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", string(dispatch.ModeEncode), "encode or decode")
	cmd.Flags().StringVar(&pattern, "pattern", "", "doublestar pattern of files to transform")
	cmd.Flags().StringVar(&root, "root", ".", "directory the pattern is matched in")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory outputs are written to, defaults to --root")
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix added to output names, defaults to .<cipher> on encode")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "doublestar pattern of files to skip, repeatable")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 0, "files transformed at once, 0 for one per CPU")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
