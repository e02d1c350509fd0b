package workflow

import (
	"context"
	"errors"
	"fmt"

	devctlerrors "devctl.dev/devctl/internal/errors"
	"devctl.dev/devctl/internal/output"
	"devctl.dev/devctl/internal/state"
)

// StartOptions holds options for the start workflow
type StartOptions struct {
	// Ticket identifier, used verbatim as the branch name
	Ticket string
	// BaseOverride overrides every repo's configured base branch
	BaseOverride string
	// Force re-uses a branch that already exists locally instead of failing
	Force bool
	// Repos restricts the run to a subset of configured repos; nil means all
	Repos []string
}

// Start creates and pushes the ticket branch across the selected repos.
// Repos are processed sequentially and independently; any repo's failure is
// recorded and the next repo still runs. State is persisted if and only if
// every selected repo succeeded. An unknown name in opts.Repos aborts
// before any repo is touched.
func Start(ctx context.Context, wctx *Context, opts StartOptions) (*Report, error) {
	branch := opts.Ticket

	names, err := wctx.Config.Select(opts.Repos)
	if err != nil {
		return nil, err
	}

	progress := wctx.Progress
	if progress == nil {
		progress = output.NewSimpleSyncProgress(wctx.Splog)
	}

	items := make([]output.SyncItem, len(names))
	for i, name := range names {
		items[i] = output.SyncItem{Repo: name, Branch: branch, Status: "pending"}
	}
	progress.Start(items)

	report := &Report{}
	for i, name := range names {
		progress.UpdateItem(i, "syncing", "", nil)

		outcome := startRepo(ctx, wctx, i, name, branch, opts, progress)
		report.add(outcome)

		switch outcome.Kind {
		case OutcomeFailed:
			progress.UpdateItem(i, "error", outcome.Detail, outcome.Err)
		default:
			progress.UpdateItem(i, "done", outcome.Detail, nil)
		}
	}
	progress.Complete()

	if !report.Failed() && wctx.WriteState != nil {
		rec := state.Record{Ticket: opts.Ticket, Branch: branch}
		if opts.BaseOverride != "" {
			override := opts.BaseOverride
			rec.BaseOverride = &override
		}
		if err := wctx.WriteState(rec); err != nil {
			return report, fmt.Errorf("failed to persist sync state: %w", err)
		}
	}

	return report, nil
}

// startRepo runs the per-repo procedure and returns exactly one outcome.
func startRepo(ctx context.Context, wctx *Context, idx int, name, branch string, opts StartOptions, progress output.SyncProgressUI) RepoOutcome {
	repo := wctx.Config.Repos[name]
	runner := wctx.NewRunner(repo.ResolvedPath)

	fail := func(err error) RepoOutcome {
		return RepoOutcome{Repo: name, Kind: OutcomeFailed, Detail: failureDetail(err), Err: err}
	}

	// Always sync remote state first so the remote existence probe is accurate
	if err := runner.FetchOrigin(ctx); err != nil {
		return fail(err)
	}

	base := repo.Base
	if opts.BaseOverride != "" {
		base = opts.BaseOverride
	}

	exists, err := runner.LocalBranchExists(ctx, branch)
	if err != nil {
		return fail(err)
	}
	if exists {
		if !opts.Force {
			return fail(devctlerrors.NewBranchExistsError(name, branch))
		}

		// --force: check out and push whatever is there. The push still
		// sets the upstream so a re-run stays idempotent, and it never
		// forces, so a diverged branch is rejected by the remote.
		if err := runner.Checkout(ctx, branch); err != nil {
			return fail(err)
		}
		if err := runner.PushWithUpstream(ctx, branch); err != nil {
			return fail(err)
		}
		return RepoOutcome{Repo: name, Kind: OutcomeReused, Detail: "existing branch re-pushed"}
	}

	// A branch already on the remote is an advisory, not a skip: the push
	// at the end performs the real fast-forward check and surfaces any
	// genuine conflict.
	remoteExists, err := runner.RemoteBranchExists(ctx, branch)
	if err != nil {
		return fail(err)
	}
	if remoteExists {
		progress.Note(idx, fmt.Sprintf("remote branch '%s' already exists, will create local branch and push", branch))
	}

	if err := runner.Checkout(ctx, base); err != nil {
		return fail(err)
	}
	if err := runner.PullFastForward(ctx); err != nil {
		return fail(err)
	}
	if err := runner.CreateBranch(ctx, branch); err != nil {
		return fail(err)
	}
	if err := runner.PushWithUpstream(ctx, branch); err != nil {
		return fail(err)
	}

	return RepoOutcome{Repo: name, Kind: OutcomeCreated, Detail: "created & pushed"}
}

// failureDetail extracts the single-line message a report row carries
func failureDetail(err error) string {
	var gitErr *devctlerrors.GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.Diagnostic()
	}
	return err.Error()
}
