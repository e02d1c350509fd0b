package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	devctlerrors "devctl.dev/devctl/internal/errors"
	"devctl.dev/devctl/internal/workflow"
	"devctl.dev/devctl/testhelpers"
)

func rowByRepo(report *workflow.StatusReport) map[string]workflow.StatusRow {
	m := make(map[string]workflow.StatusRow)
	for _, row := range report.Rows {
		m[row.Repo] = row
	}
	return m
}

func TestStatusAllOKAfterStart(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha", "beta")
	wctx, _ := newWorkflowContext(t, scene)

	_, err := workflow.Start(context.Background(), wctx, workflow.StartOptions{Ticket: "ABC-9"})
	require.NoError(t, err)

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{ExpectedBranch: "ABC-9"})
	require.NoError(t, err)
	require.False(t, report.HasIssues())
	require.Len(t, report.Rows, 2)

	for _, row := range report.Rows {
		require.NoError(t, row.Err)
		require.Equal(t, "ABC-9", row.Branch)
		require.True(t, row.RemoteExists)
		require.True(t, row.Clean)
		require.True(t, row.Matches)
		require.True(t, row.OK())
	}
}

func TestStatusBranchMismatch(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha", "beta")
	wctx, _ := newWorkflowContext(t, scene)

	_, err := workflow.Start(context.Background(), wctx, workflow.StartOptions{Ticket: "ABC-9"})
	require.NoError(t, err)

	// alpha wanders off to another branch
	require.NoError(t, scene.Repos["alpha"].CheckoutBranch("main"))

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{ExpectedBranch: "ABC-9"})
	require.NoError(t, err)
	require.True(t, report.HasIssues())

	rows := rowByRepo(report)
	require.Equal(t, "main", rows["alpha"].Branch)
	require.False(t, rows["alpha"].Matches)
	require.True(t, rows["alpha"].Clean)
	require.True(t, rows["beta"].OK())
}

func TestStatusDirtyWorkingTree(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha")
	wctx, _ := newWorkflowContext(t, scene)

	_, err := workflow.Start(context.Background(), wctx, workflow.StartOptions{Ticket: "ABC-9"})
	require.NoError(t, err)

	require.NoError(t, scene.Repos["alpha"].CreateChange("uncommitted", "wip", true))

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{ExpectedBranch: "ABC-9"})
	require.NoError(t, err)
	require.True(t, report.HasIssues())

	row := report.Rows[0]
	require.False(t, row.Clean)
	// Dirtiness does not bleed into the other columns
	require.True(t, row.Matches)
	require.True(t, row.RemoteExists)
}

func TestStatusDetachedHead(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha", "beta")
	wctx, _ := newWorkflowContext(t, scene)

	require.NoError(t, scene.Repos["alpha"].CheckoutDetached("HEAD"))

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{ExpectedBranch: "ABC-9"})
	require.NoError(t, err)
	require.True(t, report.HasIssues())

	rows := rowByRepo(report)
	require.ErrorIs(t, rows["alpha"].Err, devctlerrors.ErrDetachedHead)
	// The healthy repo is still fully checked
	require.NoError(t, rows["beta"].Err)
	require.Equal(t, "main", rows["beta"].Branch)
}

func TestStatusMissingRemoteBranch(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha")
	repo := scene.Repos["alpha"]
	wctx, _ := newWorkflowContext(t, scene)

	// Local-only branch, never pushed
	require.NoError(t, repo.CreateAndCheckoutBranch("ABC-9"))

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{ExpectedBranch: "ABC-9"})
	require.NoError(t, err)
	require.True(t, report.HasIssues())

	row := report.Rows[0]
	require.Equal(t, "ABC-9", row.Branch)
	require.True(t, row.Matches)
	require.False(t, row.RemoteExists)
	require.True(t, row.Clean)
}

func TestStatusUnknownRepoFilter(t *testing.T) {
	scene := testhelpers.NewFleetScene(t, "alpha")
	wctx, _ := newWorkflowContext(t, scene)

	report, err := workflow.Status(context.Background(), wctx, workflow.StatusOptions{
		ExpectedBranch: "ABC-9",
		Repos:          []string{"gamma"},
	})
	require.Nil(t, report)
	require.ErrorIs(t, err, devctlerrors.ErrUnknownRepo)
}
