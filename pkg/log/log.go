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

// Package log provides user-facing console output mirrored to zerolog.
package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/docsmith/translaterc/pkg/status"
)

// 📢 UserLogger prints human-friendly file change lines while mirroring every
// message to the structured logger for debugging.
type UserLogger struct {
	zlog zerolog.Logger
	mu   sync.Mutex
}

// 🏭 NewUserLogger creates a new user logger from the context logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		zlog: *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileChange prints a file status line with the matching pterm printer
func (u *UserLogger) LogFileChange(name string, st status.FileStatus, replacements int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var printer *pterm.PrefixPrinter
	var action string
	switch st {
	case status.StatusNew:
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
		action = "Translated"
	case status.StatusModified:
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "🔄"})
		action = "Updated"
	case status.StatusUnchanged:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "👍"})
		action = "Unchanged"
	case status.StatusSkipped:
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
		action = "Skipped"
	case status.StatusDeleted:
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🗑️"})
		action = "Removed"
	case status.StatusMissingSource:
		// Matches the notice format users grep for in CI logs
		msg := fmt.Sprintf("Source file missing: %s", name)
		pterm.Warning.Println(msg)
		u.zlog.Warn().Str("file", name).Msg(msg)
		return
	default:
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
		action = "Failed"
	}

	msg := fmt.Sprintf("%s %s", action, name)
	if replacements > 0 {
		msg += fmt.Sprintf(" (%d replacements)", replacements)
	}

	printer.Println(msg)
	u.zlog.Info().Str("file", name).Str("status", st.String()).Msg(msg)
}

// 📝 Header prints a run header
func (u *UserLogger) Header(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	title := color.New(color.Bold, color.FgCyan).Sprint("translaterc")
	fmt.Printf("\n%s %s\n\n", title, color.New(color.Faint).Sprint("• "+msg))
	u.zlog.Info().Msg(msg)
}

// 📝 Success prints a success message
func (u *UserLogger) Success(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Success.Println(msg)
	u.zlog.Info().Msg(msg)
}

// 📝 Warning prints a warning message
func (u *UserLogger) Warning(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Warning.Println(msg)
	u.zlog.Warn().Msg(msg)
}

// 📝 Error prints an error message
func (u *UserLogger) Error(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Error.Println(msg)
	u.zlog.Error().Msg(msg)
}

// 📝 Infof prints a formatted info message
func (u *UserLogger) Infof(format string, args ...interface{}) {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	pterm.Info.Println(msg)
	u.zlog.Info().Msg(msg)
}
