package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestProgress(t *testing.T) (*SimpleSyncProgress, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	splog, err := NewSplogWithConfig(&out, &errOut, "")
	require.NoError(t, err)
	return NewSimpleSyncProgress(splog), &out, &errOut
}

func TestSimpleSyncProgressSuccess(t *testing.T) {
	progress, out, errOut := newTestProgress(t)

	progress.Start([]SyncItem{
		{Repo: "alpha", Branch: "ABC-9"},
		{Repo: "beta", Branch: "ABC-9"},
	})
	progress.UpdateItem(0, "syncing", "", nil)
	progress.UpdateItem(0, "done", "created & pushed", nil)
	progress.UpdateItem(1, "syncing", "", nil)
	progress.UpdateItem(1, "done", "created & pushed", nil)
	progress.Complete()

	require.Contains(t, out.String(), "alpha")
	require.Contains(t, out.String(), "beta")
	require.Contains(t, out.String(), "created & pushed")
	require.Contains(t, out.String(), "Branch synchronization complete.")
	require.Empty(t, errOut.String())
}

func TestSimpleSyncProgressFailure(t *testing.T) {
	progress, out, errOut := newTestProgress(t)

	progress.Start([]SyncItem{
		{Repo: "alpha", Branch: "ABC-9"},
		{Repo: "beta", Branch: "ABC-9"},
	})
	progress.UpdateItem(0, "done", "created & pushed", nil)
	progress.UpdateItem(1, "error", "fatal: could not read from remote repository", nil)
	progress.Complete()

	require.Contains(t, errOut.String(), "beta")
	require.Contains(t, errOut.String(), "could not read from remote")
	require.Contains(t, errOut.String(), "Branch synchronization incomplete (1 of 2 repo(s) failed).")
	require.NotContains(t, out.String(), "Branch synchronization complete.")
}

func TestSimpleSyncProgressNote(t *testing.T) {
	progress, _, errOut := newTestProgress(t)

	progress.Start([]SyncItem{{Repo: "alpha", Branch: "ABC-9"}})
	progress.Note(0, "remote branch 'ABC-9' already exists, will create local branch and push")

	require.Contains(t, errOut.String(), "alpha")
	require.Contains(t, errOut.String(), "remote branch 'ABC-9' already exists")
}
