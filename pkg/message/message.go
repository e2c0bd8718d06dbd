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

// Package message reads the text to transform and writes the result back out.
package message

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrMissingInput   = errors.Base("either --message or --file must be provided")
	ErrFileUnreadable = errors.Base("file unreadable")

	errInvalidUTF8 = errors.Base("content is not valid UTF-8")
)

// FileError reports a message file that could not be used. It matches
// ErrFileUnreadable with errors.Is.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == ErrFileUnreadable
}

// 📝 Source says where the message comes from
type Source struct {
	Literal    string // Message given inline
	HasLiteral bool   // Whether Literal was given, even if empty
	File       string // Path to read when no literal was given
}

// 📖 Read returns the message described by src. An inline literal wins over a
// file.
func Read(ctx context.Context, src Source) (string, error) {
	if src.HasLiteral {
		zerolog.Ctx(ctx).Debug().Int("length", len(src.Literal)).Msg("using inline message")
		return src.Literal, nil
	}
	if src.File == "" {
		return "", errors.WithStack(ErrMissingInput)
	}
	return ReadFile(ctx, src.File)
}

// 📖 ReadFile reads the whole file at path as UTF-8 text
func ReadFile(ctx context.Context, path string) (string, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading message file")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(&FileError{Path: path, Err: err})
	}
	if !utf8.Valid(data) {
		return "", errors.WithStack(&FileError{Path: path, Err: errInvalidUTF8})
	}
	return string(data), nil
}

// 📤 Write writes result and a trailing newline to the file at path, or to w
// when path is empty.
func Write(ctx context.Context, w io.Writer, path string, result string) error {
	if path == "" {
		if _, err := io.WriteString(w, result+"\n"); err != nil {
			return errors.Errorf("writing output: %w", err)
		}
		return nil
	}
	return WriteFile(ctx, path, result+"\n")
}

// 📤 WriteFile writes content to path as is, creating parent directories.
func WriteFile(ctx context.Context, path string, content string) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("length", len(content)).Msg("writing output file")

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Errorf("writing output file: %w", err)
	}
	return nil
}
