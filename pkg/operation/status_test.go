package operation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/manifest"
	"github.com/docsmith/translaterc/pkg/operation"
)

// 🧪 TestStatusCheckNeverSynced tests a destination without a lock file
func TestStatusCheckNeverSynced(t *testing.T) {
	ctx, _, opts := createTestEnv(t, manifest.Manifest{"FAQ.md"})

	op, err := operation.NewStatusOperation(opts)
	require.NoError(t, err)

	stale, reason, err := op.Check(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, "no previous run recorded", reason)
}

// 🧪 TestStatusCheckUpToDate tests a freshly synced destination
func TestStatusCheckUpToDate(t *testing.T) {
	ctx, cfg, opts := createTestEnv(t, manifest.Manifest{"FAQ.md", "MISSING.md"})
	writeSource(t, cfg, "FAQ.md", "# FAQ\n")

	translateOp, err := operation.NewTranslateOperation(opts)
	require.NoError(t, err)
	require.NoError(t, translateOp.Execute(ctx))

	op, err := operation.NewStatusOperation(opts)
	require.NoError(t, err)

	stale, _, err := op.Check(ctx)
	require.NoError(t, err)
	assert.False(t, stale)
}

// 🧪 TestStatusCheckStaleness tests the individual staleness triggers
func TestStatusCheckStaleness(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, cfg *config.Config)
		reason string
	}{
		{
			name: "source_changed",
			mutate: func(t *testing.T, cfg *config.Config) {
				require.NoError(t, os.WriteFile(filepath.Join(cfg.Source, "FAQ.md"), []byte("# FAQ v2\n"), 0644))
			},
			reason: "source changed: FAQ.md",
		},
		{
			name: "destination_removed",
			mutate: func(t *testing.T, cfg *config.Config) {
				require.NoError(t, os.Remove(filepath.Join(cfg.Destination, "FAQ.md")))
			},
			reason: "destination file missing: FAQ.md",
		},
		{
			name: "destination_drifted",
			mutate: func(t *testing.T, cfg *config.Config) {
				require.NoError(t, os.WriteFile(filepath.Join(cfg.Destination, "FAQ.md"), []byte("tampered"), 0644))
			},
			reason: "destination file drifted: FAQ.md",
		},
		{
			name: "missing_source_appeared",
			mutate: func(t *testing.T, cfg *config.Config) {
				require.NoError(t, os.WriteFile(filepath.Join(cfg.Source, "MISSING.md"), []byte("# New\n"), 0644))
			},
			reason: "source appeared: MISSING.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cfg, opts := createTestEnv(t, manifest.Manifest{"FAQ.md", "MISSING.md"})
			writeSource(t, cfg, "FAQ.md", "# FAQ\n")

			translateOp, err := operation.NewTranslateOperation(opts)
			require.NoError(t, err)
			require.NoError(t, translateOp.Execute(ctx))

			tt.mutate(t, cfg)

			op, err := operation.NewStatusOperation(opts)
			require.NoError(t, err)

			stale, reason, err := op.Check(ctx)
			require.NoError(t, err)
			assert.True(t, stale)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

// 🧪 TestStatusCheckConfigDrift tests that a config change marks the run stale
func TestStatusCheckConfigDrift(t *testing.T) {
	ctx, cfg, opts := createTestEnv(t, manifest.Manifest{"FAQ.md"})
	writeSource(t, cfg, "FAQ.md", "# FAQ\n")

	translateOp, err := operation.NewTranslateOperation(opts)
	require.NoError(t, err)
	require.NoError(t, translateOp.Execute(ctx))

	cfg.Marker = "<!-- different marker -->"

	op, err := operation.NewStatusOperation(opts)
	require.NoError(t, err)

	stale, reason, err := op.Check(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
	assert.Equal(t, "config has changed", reason)
}

// 🧪 TestStatusExecute tests the user-facing execute path
func TestStatusExecute(t *testing.T) {
	ctx, _, opts := createTestEnv(t, manifest.Manifest{"FAQ.md"})

	op, err := operation.NewStatusOperation(opts)
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))
}
