// Package logview is an interactive terminal browser over a day's hook
// log: a filterable entry list with a detail pane for the selected entry.
package logview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/project-lint/project-lint/internal/hooklog"
)

const maxVisibleEntries = 15

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Quit   key.Binding
}

var browserKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Search: key.NewBinding(key.WithKeys("/")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Model is the Bubble Tea model for the log browser.
type Model struct {
	entries     []hooklog.Entry
	cursor      int
	offset      int
	quitting    bool
	searchInput textinput.Model
	searching   bool
}

// New creates a browser over the given entries, newest last.
func New(entries []hooklog.Entry) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 50
	ti.Width = 40

	return Model{entries: entries, searchInput: ti}
}

// Run displays the browser and blocks until the user quits.
func Run(entries []hooklog.Entry) error {
	_, err := tea.NewProgram(New(entries)).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) filteredEntries() []hooklog.Entry {
	if m.searchInput.Value() == "" {
		return m.entries
	}
	query := strings.ToLower(m.searchInput.Value())
	var filtered []hooklog.Entry
	for _, entry := range m.entries {
		haystack := strings.ToLower(strings.Join([]string{
			entry.EventType, entry.Source, entry.Decision, entry.ToolName, entry.FilePath, entry.Command,
		}, " "))
		if strings.Contains(haystack, query) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// adjustScroll keeps the cursor inside the viewport
func (m *Model) adjustScroll() {
	count := len(m.filteredEntries())
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisibleEntries {
		m.offset = m.cursor - maxVisibleEntries + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "esc":
				m.searching = false
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.cursor = 0
				m.offset = 0
				return m, nil
			case "enter":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.cursor = 0
				m.offset = 0
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, browserKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, browserKeys.Search):
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, browserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}

		case key.Matches(msg, browserKeys.Down):
			if m.cursor < len(m.filteredEntries())-1 {
				m.cursor++
				m.adjustScroll()
			}
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	faintStyle := lipgloss.NewStyle().Faint(true)
	denyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	allowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Hook log"))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("\n🔍 ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.searchInput.Value() != "" {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("Filter: " + m.searchInput.Value() + " (press / to edit, esc to clear)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	entries := m.filteredEntries()
	if len(entries) == 0 {
		b.WriteString(faintStyle.Render("  (no entries)"))
		b.WriteString("\n")
		return b.String()
	}

	if m.offset > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  ↑ %d more above", m.offset)))
		b.WriteString("\n")
	}

	end := m.offset + maxVisibleEntries
	if end > len(entries) {
		end = len(entries)
	}

	for i := m.offset; i < end; i++ {
		entry := entries[i]

		var decision string
		switch entry.Decision {
		case "deny":
			decision = denyStyle.Render(entry.Decision)
		case "warn", "ask":
			decision = warnStyle.Render(entry.Decision)
		default:
			decision = allowStyle.Render(entry.Decision)
		}

		line := fmt.Sprintf("%s  %-20s %-10s %s",
			entry.Timestamp.Format("15:04:05"), entry.EventType, entry.Source, decision)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if end < len(entries) {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  ↓ %d more below", len(entries)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView(entries[m.cursor]))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("↑/↓ navigate · / filter · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) detailView(entry hooklog.Entry) string {
	labelStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	write := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render("  "+label+": ") + value + "\n")
	}

	write("session", entry.SessionID)
	write("tool", entry.ToolName)
	write("file", entry.FilePath)
	write("command", entry.Command)
	if entry.DurationMs != nil {
		write("duration", fmt.Sprintf("%dms", *entry.DurationMs))
	}
	if entry.Message != "" {
		first := strings.SplitN(strings.TrimSpace(entry.Message), "\n", 2)[0]
		write("message", first)
	}
	return b.String()
}
