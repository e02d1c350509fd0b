package workflow

import (
	"context"
)

// StatusRow is one repo's reconciliation result. Err is set when a gateway
// call failed outright, in which case the other fields are meaningless.
type StatusRow struct {
	Repo         string
	Branch       string
	RemoteExists bool
	Clean        bool
	Matches      bool
	Err          error
}

// OK reports whether this repo needs no attention: on the expected branch,
// branch present on the remote, working tree clean.
func (r StatusRow) OK() bool {
	return r.Err == nil && r.Matches && r.RemoteExists && r.Clean
}

// StatusReport collects per-repo status rows in selection order
type StatusReport struct {
	Rows []StatusRow
}

// HasIssues reports whether any repo is not OK. This is the single
// run-level signal the caller should use for its exit code.
func (r *StatusReport) HasIssues() bool {
	for _, row := range r.Rows {
		if !row.OK() {
			return true
		}
	}
	return false
}

// StatusOptions holds options for the status workflow
type StatusOptions struct {
	// ExpectedBranch is the branch the persisted sync state says every
	// repo should be on
	ExpectedBranch string
	// Repos restricts the run to a subset of configured repos; nil means all
	Repos []string
}

// Status checks every selected repo read-only and reports divergence from
// the expected branch. A failure in one repo's checks becomes an error row
// and never prevents checking the rest.
func Status(ctx context.Context, wctx *Context, opts StatusOptions) (*StatusReport, error) {
	names, err := wctx.Config.Select(opts.Repos)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{}
	for _, name := range names {
		report.Rows = append(report.Rows, statusRepo(ctx, wctx, name, opts.ExpectedBranch))
	}
	return report, nil
}

func statusRepo(ctx context.Context, wctx *Context, name, expected string) StatusRow {
	repo := wctx.Config.Repos[name]
	runner := wctx.NewRunner(repo.ResolvedPath)

	row := StatusRow{Repo: name}

	branch, err := runner.CurrentBranch(ctx)
	if err != nil {
		row.Err = err
		return row
	}
	row.Branch = branch

	remoteExists, err := runner.RemoteBranchExists(ctx, branch)
	if err != nil {
		row.Err = err
		return row
	}
	row.RemoteExists = remoteExists

	clean, err := runner.IsWorkingTreeClean(ctx)
	if err != nil {
		row.Err = err
		return row
	}
	row.Clean = clean

	row.Matches = branch == expected
	return row
}
