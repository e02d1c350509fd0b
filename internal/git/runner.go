// Package git provides a wrapper around git commands and go-git for
// repository operations against an explicit repository path.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	devctlerrors "devctl.dev/devctl/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// Runner defines the git operations the workflows drive against a single
// repository. This allows the workflows to be used with both real git and
// mock implementations.
type Runner interface {
	// Read-only queries
	CurrentBranch(ctx context.Context) (string, error)
	LocalBranchExists(ctx context.Context, branch string) (bool, error)
	RemoteBranchExists(ctx context.Context, branch string) (bool, error)
	DefaultBranch(ctx context.Context) string
	IsWorkingTreeClean(ctx context.Context) (bool, error)

	// Mutating operations
	FetchOrigin(ctx context.Context) error
	Checkout(ctx context.Context, branch string) error
	PullFastForward(ctx context.Context) error
	CreateBranch(ctx context.Context, branch string) error
	PushWithUpstream(ctx context.Context, branch string) error

	// Dir returns the repository path this runner is bound to
	Dir() string
}

// CommandRunner implements Runner by shelling out to git in a fixed
// repository directory. The process working directory is never changed.
type CommandRunner struct {
	dir string
}

// NewRunner creates a Runner bound to the given repository path
func NewRunner(dir string) *CommandRunner {
	return &CommandRunner{dir: dir}
}

// Dir returns the repository path this runner is bound to
func (r *CommandRunner) Dir() string {
	return r.dir
}

// run executes a git command in the runner's directory and returns the
// trimmed stdout. A non-zero exit becomes a *errors.GitCommandError.
func (r *CommandRunner) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", devctlerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", devctlerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// runUnchecked executes a git command and reports whether it succeeded;
// on failure the output is empty and no error surfaces. Used for probes
// where "not found" is a valid outcome.
func (r *CommandRunner) runUnchecked(ctx context.Context, args ...string) (string, bool) {
	out, err := r.run(ctx, args...)
	return out, err == nil
}
