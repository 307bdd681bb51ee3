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

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the current state of a destination file
type FileStatus int

const (
	StatusUnknown       FileStatus = iota
	StatusNew                      // File doesn't exist in destination
	StatusModified                 // File exists but content differs
	StatusUnchanged                // File exists and content matches
	StatusMissingSource            // Source file is absent, nothing written
	StatusSkipped                  // File ignored by pattern
	StatusDeleted                  // File was removed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusMissingSource:
		return "missing-source"
	case StatusSkipped:
		return "skipped"
	case StatusDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains metadata about a processed file
type FileInfo struct {
	Path         string     // Filename relative to the destination
	Status       FileStatus // Current status
	Size         int64      // Written size in bytes
	Checksum     string     // Content hash of the written file
	Replacements int        // Number of link replacements that changed content
	Error        error      // Any error associated with this file
}

// 💾 FileManager handles destination file system operations
type FileManager interface {
	WriteFileAtomic(ctx context.Context, name string, content []byte) error
	ReadFile(ctx context.Context, name string) ([]byte, error)
	DeleteFile(ctx context.Context, name string) error
	FileExists(ctx context.Context, name string) (bool, error)
	EnsureDestination(ctx context.Context) error
}

// 📈 StatusReporter tracks per-file status and run progress
type StatusReporter interface {
	TrackFile(ctx context.Context, name string, info FileInfo)
	GetFileInfo(ctx context.Context, name string) (FileInfo, error)
	ListFiles(ctx context.Context) ([]FileInfo, error)

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements both FileManager and StatusReporter over the
// destination directory.
type Manager struct {
	baseDir   string        // Destination directory
	formatter FileFormatter // Formatter for status messages

	// Status tracking
	mu    sync.RWMutex
	files map[string]FileInfo
	order []string

	// Progress tracking
	total     int
	processed int
}

// 🏭 NewManager creates a new status manager for the destination directory
func NewManager(baseDir string, formatter FileFormatter) *Manager {
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: formatter,
		files:     make(map[string]FileInfo),
	}
}

// BaseDir returns the destination directory
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 absPath returns the absolute path for a destination filename
func (m *Manager) absPath(name string) string {
	return filepath.Join(m.baseDir, name)
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// FileManager interface implementation

// EnsureDestination creates the destination directory if absent
func (m *Manager) EnsureDestination(ctx context.Context) error {
	if err := os.MkdirAll(m.baseDir, 0755); err != nil {
		return errors.Errorf("creating destination directory: %w", err)
	}
	return nil
}

// WriteFileAtomic writes content to a temp file and renames it into place
func (m *Manager) WriteFileAtomic(ctx context.Context, name string, content []byte) error {
	absPath := m.absPath(name)
	tempPath := absPath + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) ReadFile(ctx context.Context, name string) ([]byte, error) {
	content, err := os.ReadFile(m.absPath(name))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) DeleteFile(ctx context.Context, name string) error {
	if err := os.Remove(m.absPath(name)); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}
	return nil
}

func (m *Manager) FileExists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(m.absPath(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, name string, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[name]; !ok {
		m.order = append(m.order, name)
	}
	m.files[name] = info

	msg := m.formatter.FormatFileOperation(name, info.Status)
	if info.Error != nil {
		msg = m.formatter.FormatError(info.Error)
	}
	zerolog.Ctx(ctx).Info().
		Str("file", name).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg(msg)
}

func (m *Manager) GetFileInfo(ctx context.Context, name string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[name]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", name)
	}
	return info, nil
}

// ListFiles returns tracked files in the order they were first tracked
func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.order))
	for _, name := range m.order {
		files = append(files, m.files[name])
	}
	return files, nil
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Info().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Info().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.total, m.total))
}
