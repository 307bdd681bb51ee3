package operation

import (
	"bytes"
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/pkg/status"
)

// 🔍 NewStatusOperation creates a new status operation
func NewStatusOperation(opts Options) (*StatusOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &StatusOperation{BaseOperation: base}, nil
}

// 🔍 StatusOperation reports whether a translation run is needed, without
// writing anything.
type StatusOperation struct {
	BaseOperation
}

// 🏃 Execute checks staleness and reports the result
func (op *StatusOperation) Execute(ctx context.Context) error {
	stale, reason, err := op.Check(ctx)
	if err != nil {
		return errors.Errorf("checking status: %w", err)
	}

	if stale {
		op.UserLogger.Warning("translation needed: " + reason)
	} else {
		op.UserLogger.Success("destination is up to date")
	}

	return nil
}

// Check returns whether a run is needed and why. The check is local except
// for source existence probes; file content is compared against lock file
// checksums.
func (op *StatusOperation) Check(ctx context.Context) (bool, string, error) {
	logger := zerolog.Ctx(ctx)

	lock, err := op.StatusMgr.ReadLockFile(ctx)
	if err != nil {
		return false, "", errors.Errorf("reading lock file: %w", err)
	}
	if lock == nil {
		return true, "no previous run recorded", nil
	}

	if lock.ConfigHash != op.Config.Hash() {
		logger.Debug().
			Str("lock_hash", lock.ConfigHash).
			Str("config_hash", op.Config.Hash()).
			Msg("config has changed")
		return true, "config has changed", nil
	}

	for _, name := range op.Config.Files {
		entry, ok := lock.Files[name]
		if !ok {
			return true, "file not in lock file: " + name, nil
		}

		switch entry.Status {
		case status.StatusSkipped.String():
			continue
		case status.StatusMissingSource.String():
			// A source that has since appeared needs a run
			exists, err := op.Provider.Exists(ctx, name)
			if err != nil {
				return false, "", errors.Errorf("checking source %s: %w", name, err)
			}
			if exists {
				return true, "source appeared: " + name, nil
			}
		default:
			content, err := op.StatusMgr.ReadFile(ctx, name)
			if err != nil {
				return true, "destination file missing: " + name, nil
			}
			if status.Checksum(content) != entry.Checksum {
				return true, "destination file drifted: " + name, nil
			}
			// Destination matches; check the source still produces it
			stale, err := op.sourceChanged(ctx, name, content)
			if err != nil {
				return false, "", err
			}
			if stale {
				return true, "source changed: " + name, nil
			}
		}
	}

	return false, "", nil
}

// sourceChanged reports whether re-translating name would produce different
// content than what is on disk.
func (op *StatusOperation) sourceChanged(ctx context.Context, name string, current []byte) (bool, error) {
	exists, err := op.Provider.Exists(ctx, name)
	if err != nil {
		return false, errors.Errorf("checking source %s: %w", name, err)
	}
	if !exists {
		return true, nil
	}

	content, err := op.readSource(ctx, name)
	if err != nil {
		return false, errors.Errorf("reading source %s: %w", name, err)
	}

	translated, err := op.Translator.Translate(ctx, name, content)
	if err != nil {
		return false, errors.Errorf("translating %s: %w", name, err)
	}

	result, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(translated), op.Config.Files.LinkRules(name))
	if err != nil {
		return false, errors.Errorf("rewriting links for %s: %w", name, err)
	}

	return !bytes.Equal(result.ModifiedContent, current), nil
}

// 📥 readSource reads the full source content for a manifest file
func (op *StatusOperation) readSource(ctx context.Context, name string) ([]byte, error) {
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
