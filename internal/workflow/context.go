// Package workflow implements the branch synchronization ("start") and
// status reconciliation ("status") workflows over the git gateway.
package workflow

import (
	"devctl.dev/devctl/internal/config"
	"devctl.dev/devctl/internal/git"
	"devctl.dev/devctl/internal/output"
	"devctl.dev/devctl/internal/state"
)

// Context carries the collaborators a workflow run needs. Tests swap in
// mock runners and state writers; the CLI wires the real ones.
type Context struct {
	Config *config.Config
	Splog  *output.Splog

	// NewRunner builds a gateway bound to one repository path
	NewRunner func(dir string) git.Runner

	// WriteState persists the sync record on a fully successful start
	WriteState func(rec state.Record) error

	// Progress receives per-repo updates during start; nil disables it
	Progress output.SyncProgressUI
}

// NewContext creates a workflow context with the real git gateway
func NewContext(cfg *config.Config, splog *output.Splog) *Context {
	return &Context{
		Config: cfg,
		Splog:  splog,
		NewRunner: func(dir string) git.Runner {
			return git.NewRunner(dir)
		},
	}
}
