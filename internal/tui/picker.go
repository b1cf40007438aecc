// Package tui provides Bubble Tea models and huh forms for the interactive
// session: the fuzzy template picker, placeholder prompts, and the action
// menu.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/chazuruo/cmdpal/internal/templates"
)

// PickerModel is a Bubble Tea model for fuzzy-selecting a template from the
// palette.
type PickerModel struct {
	// lines is the full palette in "description :: command" form.
	lines []string

	// store backs the preview pane.
	store *templates.Store

	// matches holds the indexes of lines matching the current query.
	matches []int

	// cursor is the position within matches.
	cursor int

	// SearchInput is the text input for the filter query.
	SearchInput textinput.Model

	// ShowPreview controls the placeholder preview pane.
	ShowPreview bool

	// Quit indicates the user aborted without selecting.
	Quit bool

	// EditRequested indicates the user asked to edit the collection.
	EditRequested bool

	// Confirmed indicates the user confirmed a selection.
	Confirmed bool

	// Selected is the chosen template, valid when Confirmed.
	Selected templates.Template

	// styles
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	headerStyle   lipgloss.Style
	metadataStyle lipgloss.Style
}

// NewPickerModel creates a picker over the given store.
func NewPickerModel(store *templates.Store, showPreview bool) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter commands..."
	ti.Focus()

	lines := store.Lines()
	matches := make([]int, len(lines))
	for i := range lines {
		matches[i] = i
	}

	return PickerModel{
		lines:       lines,
		store:       store,
		matches:     matches,
		SearchInput: ti,
		ShowPreview: showPreview,
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		selectedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true),
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "ctrl+e":
			m.EditRequested = true
			return m, tea.Quit

		case "enter":
			if len(m.matches) > 0 {
				if tmpl, ok := m.store.Find(m.lines[m.matches[m.cursor]]); ok {
					m.Confirmed = true
					m.Selected = tmpl
				}
			}
			return m, tea.Quit

		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	oldQuery := m.SearchInput.Value()
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if newQuery := m.SearchInput.Value(); newQuery != oldQuery {
		m.filter(newQuery)
	}

	return m, cmd
}

// filter recomputes matches for the query. An empty query shows the whole
// palette in store order.
func (m *PickerModel) filter(query string) {
	m.cursor = 0

	if query == "" {
		m.matches = make([]int, len(m.lines))
		for i := range m.lines {
			m.matches[i] = i
		}
		return
	}

	ranked := fuzzy.Find(query, m.lines)
	m.matches = make([]int, len(ranked))
	for i, match := range ranked {
		m.matches[i] = match.Index
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.headerStyle.Render("Command Palette"))
	b.WriteString("\n\n  Search: ")
	b.WriteString(m.SearchInput.View())
	b.WriteString("\n\n  ")
	b.WriteString(m.metadataStyle.Render(fmt.Sprintf("%d result(s)", len(m.matches))))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString("  (no matches)\n")
	} else {
		start := max(0, m.cursor-10)
		end := min(len(m.matches), start+21)

		for i := start; i < end; i++ {
			line := m.lines[m.matches[i]]
			style := m.normalStyle
			prefix := "  "
			if i == m.cursor {
				style = m.selectedStyle
				prefix = "> "
			}
			b.WriteString(prefix + style.Render(truncate(line, 100)) + "\n")
		}
	}

	if m.ShowPreview && len(m.matches) > 0 {
		if tmpl, ok := m.store.Find(m.lines[m.matches[m.cursor]]); ok {
			b.WriteString(m.renderPreview(tmpl))
		}
	}

	b.WriteString("\n  ")
	b.WriteString(m.metadataStyle.Render("[Enter] Select • [Ctrl+E] Edit templates • [Esc] Quit"))
	b.WriteString("\n")

	return b.String()
}

// renderPreview shows the highlighted template's placeholders with their
// required/default/optional tags.
func (m PickerModel) renderPreview(tmpl templates.Template) string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.headerStyle.Render("Placeholders"))
	b.WriteString("\n")

	tokens := tmpl.Tokens()
	if len(tokens) == 0 {
		b.WriteString("  " + m.metadataStyle.Render("(none, runs as-is)") + "\n")
		return b.String()
	}

	for _, tok := range tokens {
		tag := "required"
		if tok.HasDefault {
			tag = fmt.Sprintf("default: %q", tok.Default)
		}
		if tok.Optional {
			tag += ", optional"
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			tok.Name, m.metadataStyle.Render("("+tag+")")))
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// PickOutcome says how the picker ended.
type PickOutcome int

const (
	// PickQuit means the user left without selecting.
	PickQuit PickOutcome = iota
	// PickSelected means a template was chosen.
	PickSelected
	// PickEdit means the user asked to edit the collection.
	PickEdit
)

// Pick runs the picker and returns the chosen template together with how
// the picker ended.
func Pick(store *templates.Store, showPreview bool) (templates.Template, PickOutcome, error) {
	p := tea.NewProgram(NewPickerModel(store, showPreview))
	finalModel, err := p.Run()
	if err != nil {
		return templates.Template{}, PickQuit, fmt.Errorf("picker: %w", err)
	}

	m := finalModel.(PickerModel)
	switch {
	case m.EditRequested:
		return templates.Template{}, PickEdit, nil
	case m.Confirmed:
		return m.Selected, PickSelected, nil
	default:
		return templates.Template{}, PickQuit, nil
	}
}
