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
	"context"

	"github.com/docsmith/translaterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🧹 NewCleanOperation creates a new clean operation
func NewCleanOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &cleanOperation{BaseOperation: base}, nil
}

// 🧹 cleanOperation removes translated files and the lock file from the
// destination directory.
type cleanOperation struct {
	BaseOperation
}

// 🏃 Execute runs the clean operation
func (op *cleanOperation) Execute(ctx context.Context) error {
	op.StatusMgr.StartOperation(ctx, len(op.Config.Files))
	defer op.StatusMgr.FinishOperation(ctx)

	for i, name := range op.Config.Files {
		if err := op.cleanFile(ctx, name); err != nil {
			return errors.Errorf("cleaning file %s: %w", name, err)
		}
		op.StatusMgr.UpdateProgress(ctx, i+1)
	}

	exists, err := op.StatusMgr.FileExists(ctx, status.LockFileName)
	if err != nil {
		return errors.Errorf("checking lock file: %w", err)
	}
	if exists {
		if err := op.StatusMgr.DeleteFile(ctx, status.LockFileName); err != nil {
			return errors.Errorf("removing lock file: %w", err)
		}
	}

	return nil
}

// 🗑️ cleanFile removes one translated file if present
func (op *cleanOperation) cleanFile(ctx context.Context, name string) error {
	exists, err := op.StatusMgr.FileExists(ctx, name)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}
	if !exists {
		return nil
	}

	if err := op.StatusMgr.DeleteFile(ctx, name); err != nil {
		return errors.Errorf("deleting file: %w", err)
	}

	op.StatusMgr.TrackFile(ctx, name, status.FileInfo{Path: name, Status: status.StatusDeleted})
	op.UserLogger.LogFileChange(name, status.StatusDeleted, 0)

	return nil
}
