package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncItem is one repo's entry in the start progress display
type SyncItem struct {
	Repo   string
	Branch string
	Status string
	Detail string
	Error  error
}

// SyncProgressUI defines the interface for start progress display
type SyncProgressUI interface {
	// Start initializes the UI with the repos being synchronized
	Start(items []SyncItem)
	// UpdateItem updates the status of a specific repo
	UpdateItem(idx int, status string, detail string, err error)
	// Note attaches a non-fatal advisory to a repo
	Note(idx int, note string)
	// Complete finalizes the UI and shows the summary line
	Complete()
}

// NewSyncProgressUI creates the appropriate progress UI based on TTY availability
func NewSyncProgressUI(splog *Splog) SyncProgressUI {
	if IsTTY() {
		return NewTTYSyncProgress(splog)
	}
	return NewSimpleSyncProgress(splog)
}

// SimpleSyncProgress prints progress line by line (non-TTY)
type SimpleSyncProgress struct {
	splog     *Splog
	items     []SyncItem
	completed int
	failed    int
}

// NewSimpleSyncProgress creates a new simple progress UI
func NewSimpleSyncProgress(splog *Splog) *SimpleSyncProgress {
	return &SimpleSyncProgress{splog: splog}
}

func (p *SimpleSyncProgress) Start(items []SyncItem) {
	p.items = items
	p.completed = 0
	p.failed = 0
}

func (p *SimpleSyncProgress) UpdateItem(idx int, status string, detail string, err error) {
	if idx >= len(p.items) {
		return
	}

	item := p.items[idx]

	switch status {
	case "syncing":
		p.splog.Info("  %s %s %s %s...", ColorDim("⋯"), item.Repo, ColorDim("→"), ColorBranch(item.Branch))

	case "done":
		p.completed++
		p.splog.Info("  %s %s %s %s %s", ColorSuccess("✓"), item.Repo, ColorDim("→"), ColorBranch(item.Branch), ColorDim("("+detail+")"))

	case "error":
		p.failed++
		p.splog.Error("  %s %s: %s", ColorFailure("✗"), item.Repo, detail)
	}

	p.items[idx].Status = status
	p.items[idx].Detail = detail
	p.items[idx].Error = err
}

func (p *SimpleSyncProgress) Note(idx int, note string) {
	if idx >= len(p.items) {
		return
	}
	p.splog.Warn("  %s %s: %s", ColorAdvisory("!"), p.items[idx].Repo, note)
}

func (p *SimpleSyncProgress) Complete() {
	p.splog.Newline()
	if p.failed > 0 {
		p.splog.Error("Branch synchronization incomplete (%d of %d repo(s) failed).", p.failed, len(p.items))
	} else if p.completed > 0 {
		p.splog.Info("Branch synchronization complete.")
	}
}

// TTYSyncProgress uses bubbletea for animated progress (TTY)
type TTYSyncProgress struct {
	splog   *Splog
	items   []SyncItem
	program *tea.Program
	model   *ttyProgressModel
}

// NewTTYSyncProgress creates a new TTY progress UI
func NewTTYSyncProgress(splog *Splog) *TTYSyncProgress {
	return &TTYSyncProgress{splog: splog}
}

func (p *TTYSyncProgress) Start(items []SyncItem) {
	p.items = make([]SyncItem, len(items))
	copy(p.items, items)

	p.splog.SetQuiet(true)
	p.model = newTTYProgressModel(p.items)
	p.program = tea.NewProgram(p.model, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	// Run program in background
	go func() {
		_, _ = p.program.Run()
	}()
}

func (p *TTYSyncProgress) UpdateItem(idx int, status string, detail string, err error) {
	if p.program == nil {
		return
	}
	p.program.Send(progressUpdateMsg{
		idx:    idx,
		status: status,
		detail: detail,
		err:    err,
	})
}

func (p *TTYSyncProgress) Note(idx int, note string) {
	if p.program == nil {
		return
	}
	p.program.Send(progressNoteMsg{idx: idx, note: note})
}

func (p *TTYSyncProgress) Complete() {
	if p.program == nil {
		return
	}
	p.program.Send(progressCompleteMsg{})
	p.program.Wait()
	p.splog.SetQuiet(false)
}

// Internal bubbletea model for TTY progress
type ttyProgressModel struct {
	items   []SyncItem
	notes   []string
	spinner spinner.Model
	done    bool
	styles  syncStyles
}

type syncStyles struct {
	spinnerStyle lipgloss.Style
	doneStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	noteStyle    lipgloss.Style
	branchStyle  lipgloss.Style
	dimStyle     lipgloss.Style
}

type progressUpdateMsg struct {
	idx    int
	status string
	detail string
	err    error
}

type progressNoteMsg struct {
	idx  int
	note string
}

type progressCompleteMsg struct{}

func newTTYProgressModel(items []SyncItem) *ttyProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &ttyProgressModel{
		items:   items,
		notes:   make([]string, len(items)),
		spinner: s,
		styles: syncStyles{
			spinnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			doneStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			noteStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			branchStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			dimStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m *ttyProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *ttyProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressUpdateMsg:
		if msg.idx < len(m.items) {
			m.items[msg.idx].Status = msg.status
			m.items[msg.idx].Detail = msg.detail
			m.items[msg.idx].Error = msg.err
		}
		return m, m.spinner.Tick

	case progressNoteMsg:
		if msg.idx < len(m.notes) {
			m.notes[msg.idx] = msg.note
		}
		return m, m.spinner.Tick

	case progressCompleteMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *ttyProgressModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	for i, item := range m.items {
		var icon string
		var status string

		switch item.Status {
		case "pending":
			icon = m.styles.dimStyle.Render("○")
			status = m.styles.dimStyle.Render("pending")
		case "syncing":
			icon = m.spinner.View()
			status = m.styles.spinnerStyle.Render("Synchronizing...")
		case "done":
			icon = m.styles.doneStyle.Render("✓")
			status = m.styles.doneStyle.Render(item.Detail)
		case "error":
			icon = m.styles.errorStyle.Render("✗")
			status = m.styles.errorStyle.Render("failed")
		}

		repoName := m.styles.branchStyle.Render(item.Repo)
		line := fmt.Sprintf("  %s %s %s", icon, repoName, status)

		if item.Status == "error" && item.Detail != "" {
			line += " " + m.styles.errorStyle.Render(item.Detail)
		}
		if m.notes[i] != "" {
			line += " " + m.styles.noteStyle.Render("! "+m.notes[i])
		}

		b.WriteString(line)
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if m.done {
		completed := 0
		failed := 0
		for _, item := range m.items {
			if item.Status == "done" {
				completed++
			} else if item.Status == "error" {
				failed++
			}
		}
		b.WriteString("\n")
		if failed > 0 {
			b.WriteString(m.styles.errorStyle.Render(fmt.Sprintf("Branch synchronization incomplete (%d of %d repo(s) failed).", failed, len(m.items))))
		} else {
			b.WriteString(m.styles.doneStyle.Render("Branch synchronization complete."))
		}
		b.WriteString("\n")
	}

	return b.String()
}
