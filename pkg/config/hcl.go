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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL. Expressions may read the process
// environment through the env object, e.g. key = env.CIPHER_KEY.
func (p *HCLParser) Parse(ctx context.Context, data []byte, cfg *Config) error {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environObject(),
		},
	}

	// Pointers tell unset attributes apart from zero values
	type hclConfig struct {
		Cipher *string `hcl:"cipher,optional"`
		Shift  *int    `hcl:"shift,optional"`
		Key    *string `hcl:"key,optional"`
		Rails  *int    `hcl:"rails,optional"`
		Strict *bool   `hcl:"strict,optional"`
		Batch  *struct {
			Suffix      *string  `hcl:"suffix,optional"`
			Concurrency *int     `hcl:"concurrency,optional"`
			Ignore      []string `hcl:"ignore,optional"`
		} `hcl:"batch,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if hclCfg.Cipher != nil {
		cfg.Cipher = *hclCfg.Cipher
	}
	if hclCfg.Shift != nil {
		cfg.Shift = *hclCfg.Shift
	}
	if hclCfg.Key != nil {
		cfg.Key = *hclCfg.Key
	}
	if hclCfg.Rails != nil {
		cfg.Rails = *hclCfg.Rails
	}
	if hclCfg.Strict != nil {
		cfg.Strict = *hclCfg.Strict
	}

	if b := hclCfg.Batch; b != nil {
		if b.Suffix != nil {
			cfg.Batch.Suffix = *b.Suffix
		}
		if b.Concurrency != nil {
			cfg.Batch.Concurrency = *b.Concurrency
		}
		if b.Ignore != nil {
			cfg.Batch.Ignore = b.Ignore
		}
	}

	return nil
}

// environObject exposes the process environment as a cty object
func environObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
