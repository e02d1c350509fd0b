package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ColorSuccess colors text for a successful per-repo outcome
func ColorSuccess(text string) string {
	return successStyle.Render(text)
}

// ColorFailure colors text for a failed per-repo outcome
func ColorFailure(text string) string {
	return failureStyle.Render(text)
}

// ColorAdvisory colors non-fatal advisory text
func ColorAdvisory(text string) string {
	return advisoryStyle.Render(text)
}

// ColorBranch colors a branch name
func ColorBranch(text string) string {
	return branchStyle.Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// IsTTY returns true if we can use a TTY for the animated progress UI
func IsTTY() bool {
	// First check if stdin/stdout are terminals
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
