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
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gitlab.com/tozd/go/errors"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "CIPHA_"

// dotenvLoaded holds one *sync.Once per directory whose .env was read
var dotenvLoaded sync.Map

// loadDotEnv loads the .env file in each dir once per process. Variables
// already set are kept, so earlier dirs win over later ones.
func loadDotEnv(dirs ...string) error {
	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return errors.Errorf("resolving %s: %w", dir, err)
		}

		once, _ := dotenvLoaded.LoadOrStore(abs, &sync.Once{})
		once.(*sync.Once).Do(func() {
			err = godotenv.Load(filepath.Join(abs, ".env"))
		})
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Errorf("loading %s: %w", filepath.Join(abs, ".env"), err)
		}
	}
	return nil
}

// applyEnv overlays CIPHA_* variables on cfg. Unset variables leave the
// current values alone.
func applyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Errorf("reading environment: %w", err)
	}
	return nil
}
