package git

import (
	"context"
	"strings"
)

// RemoteBranchExists returns true if the branch exists on the "origin"
// remote. Uses git ls-remote so it does not require a prior fetch; a
// transport-level failure is an error, an empty listing is just "false".
func (r *CommandRunner) RemoteBranchExists(ctx context.Context, branch string) (bool, error) {
	out, err := r.run(ctx, "ls-remote", "--heads", "origin", branch)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// DefaultBranch returns the default branch for the repository. Tries the
// origin/HEAD symbolic ref first (set when you clone), falls back to the
// currently checked-out branch, then to "main". Never fails.
func (r *CommandRunner) DefaultBranch(ctx context.Context) string {
	if ref, ok := r.runUnchecked(ctx, "symbolic-ref", "refs/remotes/origin/HEAD", "--short"); ok {
		// "origin/main" -> "main"
		if i := strings.IndexByte(ref, '/'); i >= 0 {
			return ref[i+1:]
		}
		return ref
	}
	if branch, err := r.CurrentBranch(ctx); err == nil {
		return branch
	}
	return "main"
}

// IsWorkingTreeClean returns true when there are no staged or unstaged
// changes. Untracked files count as dirty.
func (r *CommandRunner) IsWorkingTreeClean(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}
