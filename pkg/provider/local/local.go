// Package local reads documentation files from a directory on disk.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/provider"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

func init() {
	provider.Register("local", New)
}

// 📁 Provider reads files from the configured source directory
type Provider struct {
	dir string
}

// 🏭 New creates a new local provider rooted at the config's source directory
func New(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	if cfg.Source == "" {
		return nil, errors.New("source directory is required")
	}

	info, err := os.Stat(cfg.Source)
	if err != nil {
		return nil, errors.Errorf("checking source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("source is not a directory: %s", cfg.Source)
	}

	zerolog.Ctx(ctx).Debug().Str("dir", cfg.Source).Msg("using local source directory")

	return &Provider{dir: cfg.Source}, nil
}

// 🔍 Exists reports whether the named file exists in the source directory
func (p *Provider) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(filepath.Join(p.dir, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// 📥 GetFile opens the named file for reading
func (p *Provider) GetFile(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(p.dir, name))
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	return f, nil
}

// 📝 GetSourceInfo returns the absolute source directory path
func (p *Provider) GetSourceInfo(ctx context.Context) (string, error) {
	abs, err := filepath.Abs(p.dir)
	if err != nil {
		return "", errors.Errorf("resolving source directory: %w", err)
	}
	return abs, nil
}
