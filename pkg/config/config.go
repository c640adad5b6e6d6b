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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

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

// 📚 Config represents the complete run configuration
type Config struct {
	// Directory is the folder whose photos get renamed
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
	// ImageExtensions are the still-image extensions accepted for renaming
	ImageExtensions []string `json:"image_extensions,omitempty" yaml:"image_extensions,omitempty"`
	// ClipExtension is the motion-clip extension of a live photo
	ClipExtension string `json:"clip_extension,omitempty" yaml:"clip_extension,omitempty"`
	// LiveImageExtension is the still-image extension used for pairing
	LiveImageExtension string `json:"live_image_extension,omitempty" yaml:"live_image_extension,omitempty"`
	// Prefixes are the name prefixes recognized as already canonical
	Prefixes []string `json:"prefixes,omitempty" yaml:"prefixes,omitempty"`
	// CanonicalPrefix is the prefix new names are built with
	CanonicalPrefix string `json:"canonical_prefix,omitempty" yaml:"canonical_prefix,omitempty"`
	// IgnorePatterns are glob patterns for file names to leave alone
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
	// DryRun reports what would be renamed without touching the disk
	DryRun bool `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}

// 🏭 DefaultConfig returns the configuration used when no file overrides it.
// The extension and prefix defaults follow what phone imports produce.
func DefaultConfig() *Config {
	return &Config{
		Directory:          ".",
		ImageExtensions:    []string{".jpg", ".jpeg", ".tif", ".tiff"},
		ClipExtension:      ".mov",
		LiveImageExtension: ".jpg",
		Prefixes:           []string{"IMG_", "img_", "Img_"},
		CanonicalPrefix:    "IMG_",
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// A .ptrnrc file carries no format extension; try YAML, then HCL
	if filepath.Base(path) == ".ptrnrc" {
		cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
		if yamlErr == nil {
			return cfg, nil
		}
		cfg, hclErr := (&HCLParser{}).Parse(ctx, data)
		if hclErr == nil {
			return cfg, nil
		}
		return nil, errors.Errorf("parsing %s as YAML or HCL: %w", path, hclErr)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Directory == "" {
		return errors.Errorf("directory is required")
	}
	if len(cfg.ImageExtensions) == 0 {
		return errors.Errorf("at least one image extension is required")
	}
	if cfg.ClipExtension == "" {
		return errors.Errorf("clip_extension is required")
	}
	if cfg.LiveImageExtension == "" {
		return errors.Errorf("live_image_extension is required")
	}
	if len(cfg.Prefixes) == 0 {
		return errors.Errorf("at least one recognized prefix is required")
	}
	if cfg.CanonicalPrefix == "" {
		return errors.Errorf("canonical_prefix is required")
	}

	// Extensions must carry their dot
	for _, ext := range cfg.ImageExtensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("image extension %q must start with a dot", ext)
		}
	}
	if !strings.HasPrefix(cfg.ClipExtension, ".") {
		return errors.Errorf("clip extension %q must start with a dot", cfg.ClipExtension)
	}
	if !strings.HasPrefix(cfg.LiveImageExtension, ".") {
		return errors.Errorf("live image extension %q must start with a dot", cfg.LiveImageExtension)
	}

	// Clean up paths
	cfg.Directory = filepath.Clean(cfg.Directory)

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (stills %s, clips %s)",
		cfg.Directory, strings.Join(cfg.ImageExtensions, "/"), cfg.ClipExtension)
}
