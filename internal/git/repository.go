package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	devctlerrors "devctl.dev/devctl/internal/errors"
)

// openRepository opens the runner's repository through go-git. Local ref
// lookups go through the object store directly; no subprocess is needed.
func (r *CommandRunner) openRepository() (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(r.dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", r.dir, err)
	}
	return repo, nil
}

// CurrentBranch returns the name of the currently checked-out branch.
// A detached HEAD is an error, distinguishable from a branch named "HEAD".
func (r *CommandRunner) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.openRepository()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", devctlerrors.ErrDetachedHead
	}
	return head.Name().Short(), nil
}

// LocalBranchExists returns true if the branch exists in the local ref
// store. A missing branch is not an error.
func (r *CommandRunner) LocalBranchExists(_ context.Context, branch string) (bool, error) {
	repo, err := r.openRepository()
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to resolve refs/heads/%s: %w", branch, err)
	}
	return true, nil
}

// IsRepository reports whether path opens as a git repository. Used by the
// config loader and init scan to validate candidate directories.
func IsRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}
