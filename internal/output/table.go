package output

import (
	"fmt"
	"strings"
)

// Column widths for the status table
const (
	wRepo   = 20
	wBranch = 26
	wRemote = 8
	wClean  = 6
)

// StatusTable renders the per-repo status report as a fixed-width table
type StatusTable struct {
	rows []string
}

// NewStatusTable creates an empty status table
func NewStatusTable() *StatusTable {
	return &StatusTable{}
}

// AddRow appends one repo's status line. The expected-branch note is shown
// only when the current branch does not match.
func (t *StatusTable) AddRow(repo, branch string, remoteExists, clean bool, note string) {
	remoteSym := ColorSuccess("✓")
	if !remoteExists {
		remoteSym = ColorFailure("✗")
	}
	cleanSym := ColorSuccess("✓")
	if !clean {
		cleanSym = ColorFailure("✗")
	}

	// Styled cells carry invisible escape codes, so pad them manually
	line := fmt.Sprintf("%-*s %-*s ", wRepo, repo, wBranch, branch)
	line += remoteSym + strings.Repeat(" ", wRemote-1) + " "
	line += cleanSym + strings.Repeat(" ", wClean-1)
	if note != "" {
		line += ColorDim("← expected " + note)
	}
	t.rows = append(t.rows, strings.TrimRight(line, " "))
}

// AddErrorRow appends a repo whose checks failed outright
func (t *StatusTable) AddErrorRow(repo, message string) {
	t.rows = append(t.rows, fmt.Sprintf("%-*s %s %s", wRepo, repo, ColorFailure("✗"), ColorFailure("git error: "+message)))
}

// Render returns the full table with header and separator
func (t *StatusTable) Render() string {
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s",
		wRepo, "Repo",
		wBranch, "Local Branch",
		wRemote, "Remote",
		wClean, "Clean",
	)
	header = strings.TrimRight(header, " ")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", wRepo+wBranch+wRemote+wClean+3))
	b.WriteString("\n")
	for _, row := range t.rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
