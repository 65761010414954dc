// Package tui provides the interactive terminal interface for searching
// the library.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	modeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// searchModes cycles with the tab key.
var searchModes = []domain.SearchMode{
	domain.SearchModeFullText,
	domain.SearchModeTags,
	domain.SearchModeSimple,
}

// Model is the Bubble Tea model for interactive search.
type Model struct {
	search driving.SearchService
	ctx    context.Context

	input    textinput.Model
	viewport viewport.Model

	results   []domain.Document
	cursor    int
	modeIdx   int
	status    string
	ready     bool
	lastQuery string
}

// New creates the search TUI model.
func New(ctx context.Context, search driving.SearchService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type query and press Enter (Tab switches mode)"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		search:   search,
		ctx:      ctx,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready. Empty query browses recent documents.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBox.GetFrameSize()
		_, qh := queryBox.GetFrameSize()
		reserved := 3 + qh // header, mode line, status
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderResults())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			return m.runSearch(), nil
		case "tab":
			m.modeIdx = (m.modeIdx + 1) % len(searchModes)
			if m.lastQuery != "" || len(m.results) > 0 {
				return m.runSearch(), nil
			}
			return m, nil
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runSearch executes the current query under the current mode.
func (m Model) runSearch() Model {
	query := strings.TrimSpace(m.input.Value())
	mode := searchModes[m.modeIdx]

	docs, err := m.search.Search(m.ctx, query, domain.SearchOptions{Mode: mode})
	if err != nil {
		m.status = errorStyle.Render("Error: " + err.Error())
		m.results = nil
	} else {
		m.results = docs
		m.cursor = 0
		m.lastQuery = query
		if query == "" {
			m.status = statusStyle.Render(fmt.Sprintf("Browsing %d recent document(s)", len(docs)))
		} else {
			m.status = statusStyle.Render(fmt.Sprintf("%d result(s) for %q", len(docs), query))
		}
	}

	m.viewport.SetContent(m.renderResults())
	return m
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Cerebra")
	mode := modeStyle.Render("mode: " + string(searchModes[m.modeIdx]))
	results := resultBox.Render(m.viewport.View())
	input := queryBox.Render(m.input.View())
	return header + "  " + mode + "\n" + results + "\n" + input + "\n" + m.status
}

// renderResults renders the result list with the selected entry expanded.
func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No results."
	}

	var b strings.Builder
	for i, doc := range m.results {
		line := fmt.Sprintf("[%d] %s (%s)", i+1, doc.Title, doc.FileType)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(line))
			b.WriteString("\n")
			if len(doc.Tags) > 0 {
				b.WriteString("    " + tagStyle.Render(strings.Join(doc.Tags, ", ")) + "\n")
			}
			if doc.Summary != "" {
				b.WriteString("    " + doc.Summary + "\n")
			}
		} else {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
