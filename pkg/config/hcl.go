// Copyright 2025 yl-teng
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
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL. Fields absent from the document keep
// their default values.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		Directory          *string  `hcl:"directory,optional"`
		ImageExtensions    []string `hcl:"image_extensions,optional"`
		ClipExtension      *string  `hcl:"clip_extension,optional"`
		LiveImageExtension *string  `hcl:"live_image_extension,optional"`
		Prefixes           []string `hcl:"prefixes,optional"`
		CanonicalPrefix    *string  `hcl:"canonical_prefix,optional"`
		IgnorePatterns     []string `hcl:"ignore_patterns,optional"`
		DryRun             *bool    `hcl:"dry_run,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model, keeping defaults where the document is silent
	cfg := DefaultConfig()
	if hclCfg.Directory != nil {
		cfg.Directory = *hclCfg.Directory
	}
	if hclCfg.ImageExtensions != nil {
		cfg.ImageExtensions = hclCfg.ImageExtensions
	}
	if hclCfg.ClipExtension != nil {
		cfg.ClipExtension = *hclCfg.ClipExtension
	}
	if hclCfg.LiveImageExtension != nil {
		cfg.LiveImageExtension = *hclCfg.LiveImageExtension
	}
	if hclCfg.Prefixes != nil {
		cfg.Prefixes = hclCfg.Prefixes
	}
	if hclCfg.CanonicalPrefix != nil {
		cfg.CanonicalPrefix = *hclCfg.CanonicalPrefix
	}
	if hclCfg.IgnorePatterns != nil {
		cfg.IgnorePatterns = hclCfg.IgnorePatterns
	}
	if hclCfg.DryRun != nil {
		cfg.DryRun = *hclCfg.DryRun
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
