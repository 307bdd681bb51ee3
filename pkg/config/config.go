// Copyright 2025 the translaterc authors
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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docsmith/translaterc/pkg/manifest"
	"github.com/docsmith/translaterc/pkg/translate"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📦 ProviderArgs selects and configures the source of documentation files
type ProviderArgs struct {
	Name string `json:"name" yaml:"name" hcl:"name,optional"`                   // Provider name (local or github)
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty" hcl:"repo,optional"` // Full repo URL for github (e.g. github.com/org/repo)
	Ref  string `json:"ref,omitempty" yaml:"ref,omitempty" hcl:"ref,optional"`    // Branch or tag for github
	Path string `json:"path,omitempty" yaml:"path,omitempty" hcl:"path,optional"` // Docs path within the repo for github
}

// 📚 Config represents the complete configuration
type Config struct {
	Source         string            `json:"source" yaml:"source" hcl:"source,optional"`
	Language       string            `json:"language,omitempty" yaml:"language,omitempty" hcl:"language,optional"`
	Destination    string            `json:"destination,omitempty" yaml:"destination,omitempty" hcl:"destination,optional"`
	Marker         string            `json:"marker,omitempty" yaml:"marker,omitempty" hcl:"marker,optional"`
	Files          manifest.Manifest `json:"files,omitempty" yaml:"files,omitempty" hcl:"files,optional"`
	IgnorePatterns []string          `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Provider       *ProviderArgs     `json:"provider,omitempty" yaml:"provider,omitempty" hcl:"provider,block"`
	Clean          bool              `json:"clean,omitempty" yaml:"clean,omitempty" hcl:"clean,optional"`
	Async          bool              `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
}

// 🗺️ languageNames maps language codes to the name used in the default marker
var languageNames = map[string]string{
	"en": "ENGLISH",
	"fr": "FRENCH",
	"de": "GERMAN",
	"es": "SPANISH",
	"ja": "JAPANESE",
	"zh": "CHINESE",
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	// Set defaults
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Provider == nil {
		cfg.Provider = &ProviderArgs{Name: "local"}
	}
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = "local"
	}
	if len(cfg.Files) == 0 {
		cfg.Files = manifest.Default()
	}
	if cfg.Marker == "" {
		cfg.Marker = defaultMarker(cfg.Language)
	}

	// Check required fields per provider
	switch cfg.Provider.Name {
	case "local":
		if cfg.Source == "" {
			return errors.New("source is required")
		}
		cfg.Source = filepath.Clean(cfg.Source)
		if cfg.Destination == "" {
			cfg.Destination = filepath.Join(cfg.Source, cfg.Language)
		}
	case "github":
		if cfg.Provider.Repo == "" {
			return errors.New("provider.repo is required")
		}
		if cfg.Provider.Path == "" {
			return errors.New("provider.path is required")
		}
		if cfg.Provider.Ref == "" {
			cfg.Provider.Ref = "main"
		}
		if cfg.Destination == "" {
			return errors.New("destination is required for the github provider")
		}
	default:
		return errors.Errorf("unknown provider: %s", cfg.Provider.Name)
	}

	cfg.Destination = filepath.Clean(cfg.Destination)

	if err := cfg.Files.Validate(); err != nil {
		return errors.Errorf("validating files: %w", err)
	}

	return nil
}

// 🔑 Hash returns a stable hash of the configuration, used to detect drift
// between the lock file and the current config.
func (cfg *Config) Hash() string {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.Source
	if cfg.Provider != nil && cfg.Provider.Name == "github" {
		src = fmt.Sprintf("%s@%s:%s", cfg.Provider.Repo, cfg.Provider.Ref, cfg.Provider.Path)
	}
	return fmt.Sprintf("%s -> %s (%s)", src, cfg.Destination, cfg.Language)
}

// defaultMarker builds the marker line for a language code
func defaultMarker(language string) string {
	if language == "en" {
		return translate.DefaultMarker
	}
	name, ok := languageNames[language]
	if !ok {
		name = strings.ToUpper(language)
	}
	return fmt.Sprintf("<!-- TRANSLATED TO %s (replace with real translation) -->", name)
}
