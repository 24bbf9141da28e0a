// Package tui provides an interactive browser for selected passages.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/bm25filter/internal/rag"
	"github.com/mwiater/bm25filter/internal/util"
)

const descriptionRunes = 120

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	pathStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// viewState is the screen currently shown by the browser.
type viewState int

const (
	viewList viewState = iota
	viewPassage
)

// item is a passage entry in the list.
type item struct {
	chunk rag.ScoredChunk
}

func (i item) Title() string {
	return fmt.Sprintf("#%d  score %.4f", i.chunk.Index, i.chunk.Score)
}

func (i item) Description() string { return util.Preview(i.chunk.Text, descriptionRunes) }

func (i item) FilterValue() string { return i.chunk.Text }

// Model is the Bubble Tea model for browsing a selection.
type Model struct {
	query         string
	selection     rag.Selection
	state         viewState
	list          list.Model
	viewport      viewport.Model
	width, height int
}

// NewModel builds a browser over sel for the given query.
func NewModel(query string, sel rag.Selection) *Model {
	items := make([]list.Item, len(sel.Chunks))
	for i, c := range sel.Chunks {
		items[i] = item{chunk: c}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%d passages", len(sel.Chunks))
	l.SetShowHelp(false)

	return &Model{
		query:     query,
		selection: sel,
		state:     viewList,
		list:      l,
		viewport:  viewport.New(80, 20),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == viewPassage {
				m.state = viewList
				return m, nil
			}
		case "enter":
			if m.state == viewList {
				if it, ok := m.list.SelectedItem().(item); ok {
					m.openPassage(it.chunk)
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6
		return m, nil
	}

	switch m.state {
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewPassage:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) openPassage(c rag.ScoredChunk) {
	m.state = viewPassage
	m.viewport.SetContent(util.WrapToWidth(c.Text, m.viewport.Width))
	m.viewport.GotoTop()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Query: %s", m.query)))
	b.WriteString(" ")
	b.WriteString(pathStyle.Render(fmt.Sprintf("%s (%d chunks)", m.selection.Path, m.selection.ChunkCount)))
	b.WriteString("\n")

	switch m.state {
	case viewPassage:
		b.WriteString(frameStyle.Render(m.viewport.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: back • ↑/↓: scroll • q: quit"))
	default:
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: open • /: filter • q: quit"))
	}
	return b.String()
}

// Run starts the browser in the alternate screen and blocks until it exits.
func Run(query string, sel rag.Selection) error {
	p := tea.NewProgram(NewModel(query, sel), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run passage browser: %w", err)
	}
	return nil
}
