package local_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/provider"
	_ "github.com/docsmith/translaterc/pkg/provider/local"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 newTestProvider creates a local provider over a temp source directory
func newTestProvider(t *testing.T) (context.Context, string, provider.Provider) {
	dir := t.TempDir()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	cfg := &config.Config{
		Source:   dir,
		Provider: &config.ProviderArgs{Name: "local"},
	}

	p, err := provider.New(ctx, cfg)
	require.NoError(t, err)

	return ctx, dir, p
}

// 🧪 TestExists tests file existence checks
func TestExists(t *testing.T) {
	ctx, dir, p := newTestProvider(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "FAQ.md"), []byte("# FAQ\n"), 0644))

	ok, err := p.Exists(ctx, "FAQ.md")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Exists(ctx, "MISSING.md")
	require.NoError(t, err)
	assert.False(t, ok)
}

// 🧪 TestGetFile tests reading file content
func TestGetFile(t *testing.T) {
	ctx, dir, p := newTestProvider(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "FAQ.md"), []byte("# FAQ\n"), 0644))

	r, err := p.GetFile(ctx, "FAQ.md")
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "# FAQ\n", string(content))
}

// 🧪 TestGetFileMissing tests reading a missing file
func TestGetFileMissing(t *testing.T) {
	ctx, _, p := newTestProvider(t)

	_, err := p.GetFile(ctx, "MISSING.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}

// 🧪 TestGetSourceInfo tests source info reporting
func TestGetSourceInfo(t *testing.T) {
	ctx, dir, p := newTestProvider(t)

	info, err := p.GetSourceInfo(ctx)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(info))
	assert.Contains(t, info, filepath.Base(dir))
}

// 🧪 TestNewRejectsMissingDir tests constructor validation
func TestNewRejectsMissingDir(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	cfg := &config.Config{
		Source:   filepath.Join(t.TempDir(), "does-not-exist"),
		Provider: &config.ProviderArgs{Name: "local"},
	}

	_, err := provider.New(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking source directory")
}

// 🧪 TestNewRejectsFileSource tests that a plain file is not a valid source
func TestNewRejectsFileSource(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	path := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	cfg := &config.Config{
		Source:   path,
		Provider: &config.ProviderArgs{Name: "local"},
	}

	_, err := provider.New(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}
