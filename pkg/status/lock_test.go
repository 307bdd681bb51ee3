package status_test

import (
	"context"
	"testing"

	"github.com/docsmith/translaterc/pkg/status"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestLockFileRoundTrip tests writing and reading the lock file
func TestLockFileRoundTrip(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	mgr := status.NewManager(t.TempDir(), status.NewDefaultFileFormatter())

	lock := status.NewLockFile("cfg-hash", "/src/docs", "<!-- marker -->")
	lock.Files["FAQ.md"] = status.LockEntry{
		Status:   status.StatusNew.String(),
		Checksum: status.Checksum([]byte("content")),
	}
	lock.Files["OVERVIEW.md"] = status.LockEntry{
		Status: status.StatusMissingSource.String(),
	}

	require.NotEmpty(t, lock.RunID)
	require.NoError(t, mgr.WriteLockFile(ctx, lock))

	read, err := mgr.ReadLockFile(ctx)
	require.NoError(t, err)
	require.NotNil(t, read)

	assert.Equal(t, lock.RunID, read.RunID)
	assert.Equal(t, "cfg-hash", read.ConfigHash)
	assert.Equal(t, "/src/docs", read.SourceInfo)
	assert.Equal(t, "<!-- marker -->", read.Marker)
	assert.Equal(t, lock.Files, read.Files)
}

// 🧪 TestReadLockFileMissing tests that a missing lock file is not an error
func TestReadLockFileMissing(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	mgr := status.NewManager(t.TempDir(), status.NewDefaultFileFormatter())

	lock, err := mgr.ReadLockFile(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock)
}

// 🧪 TestNewLockFileRunIDs tests that each run gets a distinct id
func TestNewLockFileRunIDs(t *testing.T) {
	a := status.NewLockFile("h", "s", "m")
	b := status.NewLockFile("h", "s", "m")
	assert.NotEqual(t, a.RunID, b.RunID)
}
