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

package batch

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/cipha/pkg/dispatch"
	"github.com/walteh/cipha/pkg/log"
	"github.com/walteh/cipha/pkg/message"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DecodedSuffix is appended on decode when the input does not end in the
// cipher's own suffix.
const DecodedSuffix = ".decoded"

var (
	ErrNoPattern  = errors.Base("pattern is required")
	ErrBadPattern = errors.Base("invalid pattern")
)

// 📊 Status is the outcome for one file
type Status string

const (
	StatusNew       Status = "new"
	StatusModified  Status = "modified"
	StatusUnchanged Status = "unchanged"
	StatusFailed    Status = "failed"
)

// 📄 FileResult describes what happened to one matched file
type FileResult struct {
	Path   string // Input path relative to the root, slash separated
	Output string // Output file path
	Status Status
	Err    error // Set when Status is StatusFailed
}

// 🔧 Options configures a batch run
type Options struct {
	Root        string   // Directory the pattern is matched against, defaults to "."
	Pattern     string   // doublestar pattern, e.g. "**/*.txt"
	Ignore      []string // doublestar patterns of matches to skip
	OutDir      string   // Defaults to Root
	Suffix      string   // Appended to every output name when set
	Cipher      string
	Mode        dispatch.Mode
	Params      dispatch.Params
	Concurrency int // Files transformed at once, GOMAXPROCS when <= 0

	Dispatcher *dispatch.Dispatcher // Defaults to dispatch.New()
}

// 🏃 Runner transforms every file matching a pattern
type Runner struct {
	opts Options

	// earlier outputs under the root, skipped by Match
	outPrefix string
	outSuffix string
}

// 🏗️ New checks opts and creates a runner. The cipher must be known even
// when the dispatcher is lenient, since a batch never writes placeholder
// output.
func New(opts Options) (*Runner, error) {
	if opts.Pattern == "" {
		return nil, errors.WithStack(ErrNoPattern)
	}
	if !doublestar.ValidatePattern(opts.Pattern) {
		return nil, errors.Errorf("%w: %q", ErrBadPattern, opts.Pattern)
	}
	for _, p := range opts.Ignore {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Errorf("%w: ignore %q", ErrBadPattern, p)
		}
	}
	if _, err := dispatch.ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	if opts.Dispatcher == nil {
		opts.Dispatcher = dispatch.New()
	}
	if _, err := opts.Dispatcher.Cipher(opts.Cipher, opts.Params); err != nil {
		return nil, err
	}

	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.OutDir == "" {
		opts.OutDir = opts.Root
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}

	r := &Runner{opts: opts}
	r.outPrefix, r.outSuffix = r.outputMarkers()
	return r, nil
}

// outputMarkers returns how earlier outputs are recognized when they land
// under the root: by their directory when OutDir is below the root, or by
// their suffix when OutDir is the root. Patterns that ask for the suffix
// explicitly still match it.
func (r *Runner) outputMarkers() (prefix, suffix string) {
	root, err := filepath.Abs(r.opts.Root)
	if err != nil {
		return "", ""
	}
	out, err := filepath.Abs(r.opts.OutDir)
	if err != nil {
		return "", ""
	}
	rel, err := filepath.Rel(root, out)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ""
	}
	if rel != "." {
		return filepath.ToSlash(rel) + "/", ""
	}

	switch {
	case r.opts.Suffix != "":
		suffix = r.opts.Suffix
	case r.opts.Mode == dispatch.ModeEncode:
		suffix = "." + r.opts.Cipher
	default:
		suffix = DecodedSuffix
	}
	if strings.HasSuffix(r.opts.Pattern, suffix) {
		return "", ""
	}
	return "", suffix
}

// 🏃 Run transforms the matched files and returns one result per file,
// sorted by path. Files that cannot be read as text are reported as failed
// and do not stop the run; any other error cancels the remaining files.
func (r *Runner) Run(ctx context.Context) ([]FileResult, error) {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)

	files, err := r.Match(ctx)
	if err != nil {
		return nil, err
	}

	console.StartBatchOperation(ctx, log.BatchOperation{
		Cipher:  r.opts.Cipher,
		Mode:    string(r.opts.Mode),
		Root:    r.opts.Root,
		Pattern: r.opts.Pattern,
	})
	defer console.EndBatchOperation(ctx)

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := r.transformFile(gctx, rel)
			if err != nil {
				return errors.Errorf("transforming %s: %w", rel, err)
			}
			results[i] = res

			if res.Err != nil {
				logger.Warn().Err(res.Err).Str("file", rel).Msg("skipping file")
			}
			console.LogFileOperation(gctx, log.FileOperation{
				Path:       res.Path,
				Output:     res.Output,
				Cipher:     r.opts.Cipher,
				Status:     string(res.Status),
				IsNew:      res.Status == StatusNew,
				IsModified: res.Status == StatusModified,
				IsFailed:   res.Status == StatusFailed,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// 🔍 Match returns the files under the root matching the pattern and none of
// the ignore patterns, sorted
func (r *Runner) Match(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	matches, err := doublestar.Glob(os.DirFS(r.opts.Root), r.opts.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("matching %q in %s: %w", r.opts.Pattern, r.opts.Root, err)
	}

	files := make([]string, 0, len(matches))
	skipped := 0
	for _, m := range matches {
		if r.isOutput(m) {
			logger.Debug().Str("file", m).Msg("file is an earlier output")
			skipped++
			continue
		}
		if r.shouldIgnore(m) {
			logger.Debug().Str("file", m).Msg("file ignored by pattern")
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if skipped > 0 {
		log.FromContext(ctx).Warningf("skipped %d earlier %s outputs matching %s", skipped, r.opts.Cipher, r.opts.Pattern)
	}

	logger.Debug().Int("matched", len(matches)).Int("selected", len(files)).Msg("matched files")
	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func (r *Runner) shouldIgnore(file string) bool {
	for _, pattern := range r.opts.Ignore {
		if matched, _ := doublestar.Match(pattern, file); matched {
			return true
		}
	}
	return false
}

func (r *Runner) isOutput(file string) bool {
	if r.outPrefix != "" && strings.HasPrefix(file, r.outPrefix) {
		return true
	}
	return r.outSuffix != "" && strings.HasSuffix(file, r.outSuffix)
}

// OutputPath returns where the result for rel is written.
func (r *Runner) OutputPath(rel string) string {
	name := rel
	own := "." + r.opts.Cipher

	switch {
	case r.opts.Suffix != "":
		name += r.opts.Suffix
	case r.opts.Mode == dispatch.ModeEncode:
		name += own
	case strings.HasSuffix(name, own) && path.Base(name) != own:
		name = strings.TrimSuffix(name, own)
	default:
		name += DecodedSuffix
	}

	return filepath.Join(r.opts.OutDir, filepath.FromSlash(name))
}

// 📄 transformFile transforms one file. Unreadable input is returned as a
// failed result; the error is reserved for problems that stop the run.
func (r *Runner) transformFile(ctx context.Context, rel string) (FileResult, error) {
	in := filepath.Join(r.opts.Root, filepath.FromSlash(rel))
	res := FileResult{
		Path:   rel,
		Output: r.OutputPath(rel),
	}

	content, err := message.ReadFile(ctx, in)
	if err != nil {
		if errors.Is(err, message.ErrFileUnreadable) {
			res.Status = StatusFailed
			res.Err = err
			return res, nil
		}
		return res, err
	}

	out, err := r.opts.Dispatcher.Run(ctx, r.opts.Cipher, r.opts.Mode, content, r.opts.Params)
	if err != nil {
		return res, err
	}

	current, err := os.ReadFile(res.Output)
	switch {
	case err == nil && bytes.Equal(current, []byte(out)):
		res.Status = StatusUnchanged
		return res, nil
	case err == nil:
		res.Status = StatusModified
	case errors.Is(err, os.ErrNotExist):
		res.Status = StatusNew
	default:
		return res, errors.Errorf("reading existing output: %w", err)
	}

	if err := message.WriteFile(ctx, res.Output, out); err != nil {
		return res, err
	}
	return res, nil
}

// 📊 Counts tallies results by status
func Counts(results []FileResult) map[Status]int {
	counts := map[Status]int{}
	for _, res := range results {
		counts[res.Status]++
	}
	return counts
}
