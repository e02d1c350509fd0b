package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func init() {
	// Strip color from all tests in this file so assertions see plain text
	lipgloss.SetColorProfile(termenv.Ascii)
}

// pad left-aligns s in a cell of the given width plus the column gap
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len([]rune(s))) + " "
}

func TestStatusTableRender(t *testing.T) {
	table := NewStatusTable()
	table.AddRow("alpha", "ABC-9", true, true, "")
	table.AddRow("beta", "main", true, false, "ABC-9")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	require.Equal(t, strings.TrimRight(pad("Repo", wRepo)+pad("Local Branch", wBranch)+pad("Remote", wRemote)+pad("Clean", wClean), " "), lines[0])
	require.Equal(t, strings.Repeat("-", wRepo+wBranch+wRemote+wClean+3), lines[1])

	require.Equal(t, strings.TrimRight(pad("alpha", wRepo)+pad("ABC-9", wBranch)+pad("✓", wRemote)+pad("✓", wClean), " "), lines[2])
	require.Equal(t, pad("beta", wRepo)+pad("main", wBranch)+pad("✓", wRemote)+"✗"+strings.Repeat(" ", wClean-1)+"← expected ABC-9", lines[3])
}

func TestStatusTableErrorRow(t *testing.T) {
	table := NewStatusTable()
	table.AddErrorRow("gamma", "detached HEAD")

	out := table.Render()
	require.Contains(t, out, "gamma")
	require.Contains(t, out, "git error: detached HEAD")
}

func TestStatusTableColumnAlignment(t *testing.T) {
	table := NewStatusTable()
	table.AddRow("a", "b", true, true, "note")

	line := strings.Split(table.Render(), "\n")[2]
	// Remote symbol sits right where the Remote header starts
	require.Equal(t, wRepo+1+wBranch+1, strings.Index(line, "✓"))
	require.Contains(t, line, "← expected note")
}
