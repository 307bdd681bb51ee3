package status

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LockFileName is the bookkeeping file written into the destination directory
const LockFileName = ".translaterc.lock"

// 🔒 LockFile records what the last run produced, so a later status check can
// detect drift without re-reading the sources.
type LockFile struct {
	RunID      string               `json:"run_id"`
	RanAt      time.Time            `json:"ran_at"`
	ConfigHash string               `json:"config_hash"`
	SourceInfo string               `json:"source_info"`
	Marker     string               `json:"marker"`
	Files      map[string]LockEntry `json:"files"`
}

// 📄 LockEntry records the outcome for a single manifest file
type LockEntry struct {
	Status       string `json:"status"`
	Checksum     string `json:"checksum,omitempty"`
	Replacements int    `json:"replacements,omitempty"`
}

// 🏭 NewLockFile creates a lock file for a fresh run
func NewLockFile(configHash, sourceInfo, marker string) *LockFile {
	return &LockFile{
		RunID:      uuid.NewString(),
		RanAt:      time.Now().UTC(),
		ConfigHash: configHash,
		SourceInfo: sourceInfo,
		Marker:     marker,
		Files:      make(map[string]LockEntry),
	}
}

// 📝 WriteLockFile atomically writes the lock file into the destination
func (m *Manager) WriteLockFile(ctx context.Context, lock *LockFile) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return errors.Errorf("marshaling lock file: %w", err)
	}
	data = append(data, '\n')

	if err := m.WriteFileAtomic(ctx, LockFileName, data); err != nil {
		return errors.Errorf("writing lock file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("run_id", lock.RunID).
		Int("files", len(lock.Files)).
		Msg("wrote lock file")

	return nil
}

// 📖 ReadLockFile reads the lock file from the destination. A missing lock
// file is not an error: it returns (nil, nil) so callers can treat the
// destination as never-synced.
func (m *Manager) ReadLockFile(ctx context.Context) (*LockFile, error) {
	data, err := os.ReadFile(m.absPath(LockFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Errorf("reading lock file: %w", err)
	}

	var lock LockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Errorf("parsing lock file: %w", err)
	}

	return &lock, nil
}
