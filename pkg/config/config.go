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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/cipha/pkg/dispatch"
	"gitlab.com/tozd/go/errors"
)

var (
	ErrUnsupportedFormat = errors.Base("unsupported config format")
	ErrInvalidConfig     = errors.Base("invalid config")
)

// DefaultFiles are looked up, in order, in the working directory when no
// config file is named.
var DefaultFiles = []string{
	".cipha.yaml",
	".cipha.yml",
	".cipha.json",
	".cipha.hcl",
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data on top of cfg
	Parse(ctx context.Context, data []byte, cfg *Config) error

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 BatchArgs holds the defaults for `cipha batch`
type BatchArgs struct {
	Suffix      string   `json:"suffix,omitempty" yaml:"suffix,omitempty" env:"SUFFIX"`
	Concurrency int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty" env:"CONCURRENCY"`
	Ignore      []string `json:"ignore,omitempty" yaml:"ignore,omitempty" env:"IGNORE"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Cipher string    `json:"cipher,omitempty" yaml:"cipher,omitempty" env:"CIPHER"`
	Shift  int       `json:"shift,omitempty" yaml:"shift,omitempty" env:"SHIFT"`
	Key    string    `json:"key,omitempty" yaml:"key,omitempty" env:"KEY"`
	Rails  int       `json:"rails,omitempty" yaml:"rails,omitempty" env:"RAILS"`
	Strict bool      `json:"strict,omitempty" yaml:"strict,omitempty" env:"STRICT"`
	Batch  BatchArgs `json:"batch,omitempty" yaml:"batch,omitempty" envPrefix:"BATCH_"`

	location string
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	p := dispatch.DefaultParams()
	return &Config{
		Shift: p.Shift,
		Key:   p.Key,
		Rails: p.Rails,
	}
}

// 🎯 Load loads the configuration from the file at path, then applies the
// environment on top of it
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	if err := loadDotEnv(".", filepath.Dir(path)); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}

	cfg := Default()
	if err := p.Parse(ctx, data, cfg); err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 LoadDefault loads the first of DefaultFiles found in dir. Finding none
// is not an error: the defaults and the environment are used.
func LoadDefault(ctx context.Context, dir string) (*Config, error) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(ctx, path)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found, using defaults")

	if err := loadDotEnv(".", dir); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Rails < 0 {
		return errors.Errorf("%w: rails must not be negative, got %d", ErrInvalidConfig, cfg.Rails)
	}
	if cfg.Batch.Concurrency < 0 {
		return errors.Errorf("%w: batch.concurrency must not be negative, got %d", ErrInvalidConfig, cfg.Batch.Concurrency)
	}
	if cfg.Strict && cfg.Cipher != "" {
		if _, ok := dispatch.Lookup(cfg.Cipher); !ok {
			return errors.Errorf("%w: unknown default cipher %q", ErrInvalidConfig, cfg.Cipher)
		}
	}
	return nil
}

// Params returns the cipher parameters the configuration sets.
func (cfg *Config) Params() dispatch.Params {
	return dispatch.Params{
		Shift: cfg.Shift,
		Key:   cfg.Key,
		Rails: cfg.Rails,
	}
}

// Location is the file the configuration was read from, empty when none was.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	cipher := cfg.Cipher
	if cipher == "" {
		cipher = "-"
	}
	return fmt.Sprintf("cipher=%s shift=%d rails=%d strict=%t", cipher, cfg.Shift, cfg.Rails, cfg.Strict)
}
