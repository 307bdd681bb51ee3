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

// Package provider abstracts where documentation source files come from.
package provider

import (
	"context"
	"io"

	"github.com/docsmith/translaterc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Provider is the interface for documentation sources
type Provider interface {
	// Exists reports whether the named file exists in the source
	Exists(ctx context.Context, name string) (bool, error)

	// GetFile retrieves a single file's contents
	GetFile(ctx context.Context, name string) (io.ReadCloser, error)

	// GetSourceInfo returns a string describing the source, recorded in the lock file
	GetSourceInfo(ctx context.Context) (string, error)
}

// 🏭 Factory creates a provider from its config
type Factory func(ctx context.Context, cfg *config.Config) (Provider, error)

var factories = make(map[string]Factory)

// 📝 Register registers a provider factory under a name
func Register(name string, factory Factory) {
	factories[name] = factory
}

// 🎯 New creates the provider selected by the config
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	if cfg.Provider == nil {
		return nil, errors.New("provider config is required")
	}

	factory, ok := factories[cfg.Provider.Name]
	if !ok {
		return nil, errors.Errorf("unknown provider: %s", cfg.Provider.Name)
	}

	p, err := factory(ctx, cfg)
	if err != nil {
		return nil, errors.Errorf("creating %s provider: %w", cfg.Provider.Name, err)
	}

	return p, nil
}
