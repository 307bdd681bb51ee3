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

package operation

import (
	"bytes"
	"context"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/pkg/status"
)

// 📦 NewTranslateOperation creates the main translate operation
func NewTranslateOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &translateOperation{BaseOperation: base}, nil
}

// 🌐 translateOperation copies each manifest file from the source into the
// destination, translated and with sibling links passed through the replacer.
type translateOperation struct {
	BaseOperation
}

// 🏃 Execute runs the translate operation
func (op *translateOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if err := op.StatusMgr.EnsureDestination(ctx); err != nil {
		return errors.Errorf("ensuring destination: %w", err)
	}

	sourceInfo, err := op.Provider.GetSourceInfo(ctx)
	if err != nil {
		return errors.Errorf("getting source info: %w", err)
	}
	logger.Debug().Str("source", sourceInfo).Str("destination", op.StatusMgr.BaseDir()).Msg("starting translation run")

	lock := status.NewLockFile(op.Config.Hash(), sourceInfo, op.Config.Marker)

	op.StatusMgr.StartOperation(ctx, len(op.Config.Files))
	defer op.StatusMgr.FinishOperation(ctx)

	// Manifest order is the processing order
	for i, name := range op.Config.Files {
		entry, err := op.processFile(ctx, name)
		if err != nil {
			return errors.Errorf("processing file %s: %w", name, err)
		}
		lock.Files[name] = entry
		op.StatusMgr.UpdateProgress(ctx, i+1)
	}

	if err := op.StatusMgr.WriteLockFile(ctx, lock); err != nil {
		return errors.Errorf("updating lock file: %w", err)
	}

	return nil
}

// 📄 processFile translates a single manifest file
func (op *translateOperation) processFile(ctx context.Context, name string) (status.LockEntry, error) {
	if op.shouldIgnore(ctx, name) {
		op.track(ctx, status.FileInfo{Path: name, Status: status.StatusSkipped})
		return status.LockEntry{Status: status.StatusSkipped.String()}, nil
	}

	// Missing sources are a notice, not an error: the run continues and no
	// destination file is written.
	exists, err := op.Provider.Exists(ctx, name)
	if err != nil {
		return status.LockEntry{}, errors.Errorf("checking source: %w", err)
	}
	if !exists {
		op.track(ctx, status.FileInfo{Path: name, Status: status.StatusMissingSource})
		return status.LockEntry{Status: status.StatusMissingSource.String()}, nil
	}

	content, err := op.readSource(ctx, name)
	if err != nil {
		return status.LockEntry{}, err
	}

	translated, err := op.Translator.Translate(ctx, name, content)
	if err != nil {
		return status.LockEntry{}, errors.Errorf("translating: %w", err)
	}

	// Translated siblings sit next to each other, so the link rules map every
	// ./NAME.md onto itself and the content passes through unchanged.
	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(translated), op.Config.Files.LinkRules(name))
	if err != nil {
		return status.LockEntry{}, errors.Errorf("rewriting links: %w", err)
	}
	final := result.ModifiedContent

	fileStatus := status.StatusNew
	if current, err := op.StatusMgr.ReadFile(ctx, name); err == nil {
		if bytes.Equal(current, final) {
			fileStatus = status.StatusUnchanged
		} else {
			fileStatus = status.StatusModified
		}
	}

	if err := op.StatusMgr.WriteFileAtomic(ctx, name, final); err != nil {
		return status.LockEntry{}, errors.Errorf("writing file: %w", err)
	}

	op.track(ctx, status.FileInfo{
		Path:         name,
		Status:       fileStatus,
		Size:         int64(len(final)),
		Checksum:     status.Checksum(final),
		Replacements: result.ReplacementCount,
	})

	return status.LockEntry{
		Status:       fileStatus.String(),
		Checksum:     status.Checksum(final),
		Replacements: result.ReplacementCount,
	}, nil
}

// 📥 readSource reads the full source content for a manifest file
func (op *translateOperation) readSource(ctx context.Context, name string) ([]byte, error) {
	reader, err := op.Provider.GetFile(ctx, name)
	if err != nil {
		return nil, errors.Errorf("getting file: %w", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	return content, nil
}

// 🔍 shouldIgnore checks if a file matches an ignore pattern
func (op *translateOperation) shouldIgnore(ctx context.Context, name string) bool {
	for _, pattern := range op.Config.IgnorePatterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

// 📝 track records the file status and prints the user-facing line
func (op *translateOperation) track(ctx context.Context, info status.FileInfo) {
	op.StatusMgr.TrackFile(ctx, info.Path, info)
	op.UserLogger.LogFileChange(info.Path, info.Status, info.Replacements)
}
