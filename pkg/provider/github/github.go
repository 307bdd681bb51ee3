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

// Package github reads documentation files from a path in a GitHub repository,
// for translating docs without a local checkout.
package github

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	gogithub "github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/provider"
)

func init() {
	provider.Register("github", New)
}

// 🎯 Provider reads files from a GitHub repository path at a ref
type Provider struct {
	client *gogithub.Client
	owner  string
	name   string
	ref    string
	path   string
	logger zerolog.Logger
}

// 🏭 New creates a new GitHub provider
func New(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	logger := zerolog.Ctx(ctx)

	// Get token from environment
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable not set")
	}

	owner, name, err := parseRepo(cfg.Provider.Repo)
	if err != nil {
		return nil, errors.Errorf("parsing repo: %w", err)
	}

	// Create OAuth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Provider{
		client: gogithub.NewClient(tc),
		owner:  owner,
		name:   name,
		ref:    cfg.Provider.Ref,
		path:   cfg.Provider.Path,
		logger: *logger,
	}, nil
}

// 🔍 parseRepo parses a GitHub repository URL
func parseRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) < 2 {
		return "", "", errors.Errorf("invalid repository format: %s", repo)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// 🔍 Exists reports whether the named file exists under the docs path
func (p *Provider) Exists(ctx context.Context, name string) (bool, error) {
	_, _, resp, err := p.client.Repositories.GetContents(ctx, p.owner, p.name, path.Join(p.path, name), &gogithub.RepositoryContentGetOptions{
		Ref: p.ref,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return false, nil
		}
		return false, errors.Errorf("checking file existence: %w", err)
	}
	return true, nil
}

// 📥 GetFile retrieves a single file's contents
func (p *Provider) GetFile(ctx context.Context, name string) (io.ReadCloser, error) {
	content, _, _, err := p.client.Repositories.GetContents(ctx, p.owner, p.name, path.Join(p.path, name), &gogithub.RepositoryContentGetOptions{
		Ref: p.ref,
	})
	if err != nil {
		return nil, errors.Errorf("getting file content: %w", err)
	}

	data, err := content.GetContent()
	if err != nil {
		return nil, errors.Errorf("decoding content: %w", err)
	}

	return io.NopCloser(strings.NewReader(data)), nil
}

// 📝 GetSourceInfo returns repo@shortsha for the configured ref
func (p *Provider) GetSourceInfo(ctx context.Context) (string, error) {
	ref, _, err := p.client.Git.GetRef(ctx, p.owner, p.name, "refs/heads/"+p.ref)
	if err != nil {
		return "", errors.Errorf("getting reference: %w", err)
	}

	sha := ref.Object.GetSHA()
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return fmt.Sprintf("%s/%s@%s", p.owner, p.name, sha), nil
}
