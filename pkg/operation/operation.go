// Package operation provides the core translate, clean, and status operations
package operation

import (
	"context"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/log"
	"github.com/docsmith/translaterc/pkg/provider"
	"github.com/docsmith/translaterc/pkg/status"
	"github.com/docsmith/translaterc/pkg/text"
	"github.com/docsmith/translaterc/pkg/translate"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single unit of work executed by the runner
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains the dependencies shared by all operations
type Options struct {
	// Config is the translaterc configuration
	Config *config.Config
	// Provider is the documentation source
	Provider provider.Provider
	// StatusMgr manages the destination directory and per-file status
	StatusMgr *status.Manager
	// UserLogger prints user-facing output
	UserLogger *log.UserLogger
	// Translator produces translated file content
	Translator translate.Translator
	// Replacer applies link replacement rules
	Replacer text.Replacer
}

// 🔍 validate checks that the required dependencies are present
func (opts Options) validate() error {
	if opts.Config == nil {
		return errors.New("config is required")
	}
	if opts.Provider == nil {
		return errors.New("provider is required")
	}
	if opts.StatusMgr == nil {
		return errors.New("status manager is required")
	}
	if opts.UserLogger == nil {
		return errors.New("user logger is required")
	}
	return nil
}

// 📦 BaseOperation carries the shared dependencies
type BaseOperation struct {
	Config     *config.Config
	Provider   provider.Provider
	StatusMgr  *status.Manager
	UserLogger *log.UserLogger
	Translator translate.Translator
	Replacer   text.Replacer
}

// 🏭 NewBaseOperation creates a BaseOperation, filling in default translator
// and replacer implementations.
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, err
	}

	if opts.Translator == nil {
		tr, err := translate.NewMarkerTranslator(opts.Config.Marker)
		if err != nil {
			return BaseOperation{}, errors.Errorf("creating translator: %w", err)
		}
		opts.Translator = tr
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleReplacer()
	}

	return BaseOperation{
		Config:     opts.Config,
		Provider:   opts.Provider,
		StatusMgr:  opts.StatusMgr,
		UserLogger: opts.UserLogger,
		Translator: opts.Translator,
		Replacer:   opts.Replacer,
	}, nil
}
