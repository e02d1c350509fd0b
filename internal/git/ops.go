package git

import (
	"context"
	"fmt"
)

// FetchOrigin fetches all refs from origin (updates remote-tracking branches)
func (r *CommandRunner) FetchOrigin(ctx context.Context) error {
	_, err := r.run(ctx, "fetch", "origin")
	if err != nil {
		return fmt.Errorf("failed to fetch origin: %w", err)
	}
	return nil
}

// Checkout switches to an existing local branch
func (r *CommandRunner) Checkout(ctx context.Context, branch string) error {
	_, err := r.run(ctx, "checkout", branch)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branch, err)
	}
	return nil
}

// PullFastForward advances the current branch to match its upstream.
// Uses --ff-only to refuse merges and surface divergence explicitly.
func (r *CommandRunner) PullFastForward(ctx context.Context) error {
	_, err := r.run(ctx, "pull", "--ff-only")
	if err != nil {
		return fmt.Errorf("failed to fast-forward pull: %w", err)
	}
	return nil
}

// CreateBranch creates a new branch at the current HEAD and checks it out
func (r *CommandRunner) CreateBranch(ctx context.Context, branch string) error {
	_, err := r.run(ctx, "checkout", "-b", branch)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branch, err)
	}
	return nil
}

// PushWithUpstream pushes the branch to origin and configures upstream
// tracking. Never force-pushes; a non-fast-forward rejection is an error.
func (r *CommandRunner) PushWithUpstream(ctx context.Context, branch string) error {
	_, err := r.run(ctx, "push", "--set-upstream", "origin", branch)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branch, err)
	}
	return nil
}
