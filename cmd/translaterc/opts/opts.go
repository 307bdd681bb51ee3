// Package opts wires the shared dependencies used by every command.
package opts

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/pkg/config"
	"github.com/docsmith/translaterc/pkg/log"
	"github.com/docsmith/translaterc/pkg/operation"
	"github.com/docsmith/translaterc/pkg/provider"
	"github.com/docsmith/translaterc/pkg/status"

	// Register the built-in providers
	_ "github.com/docsmith/translaterc/pkg/provider/github"
	_ "github.com/docsmith/translaterc/pkg/provider/local"
)

// 🔧 RootOpts holds the dependencies shared by all commands
type RootOpts struct {
	Config     *config.Config
	Provider   provider.Provider
	StatusMgr  *status.Manager
	UserLogger *log.UserLogger
	Runner     *operation.Runner
}

// 🏭 Build loads the config and constructs the shared dependencies
func Build(ctx context.Context, configFile string) (*RootOpts, error) {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	p, err := provider.New(ctx, cfg)
	if err != nil {
		return nil, errors.Errorf("creating provider: %w", err)
	}

	return &RootOpts{
		Config:     cfg,
		Provider:   p,
		StatusMgr:  status.NewManager(cfg.Destination, status.NewDefaultFileFormatter()),
		UserLogger: log.NewUserLogger(ctx),
		Runner:     operation.NewRunner(cfg.Async),
	}, nil
}

// Options converts the root options into operation options
func (ro *RootOpts) Options() operation.Options {
	return operation.Options{
		Config:     ro.Config,
		Provider:   ro.Provider,
		StatusMgr:  ro.StatusMgr,
		UserLogger: ro.UserLogger,
	}
}
