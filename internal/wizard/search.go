package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchVisibleRows caps the number of candidates drawn at once.
const searchVisibleRows = 8

// searchModel is the bubbletea Model of the fuzzy search picker.
type searchModel struct {
	title       string
	description string
	input       textinput.Model
	pool        []string
	matches     []Match
	cursor      int
	offset      int
	styles      searchStyles

	choice    string
	cancelled bool
}

func newSearchModel(title, description string, pool []string, styles searchStyles) searchModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "› "
	ti.Focus()

	return searchModel{
		title:       title,
		description: description,
		input:       ti,
		pool:        pool,
		matches:     Rank(pool, ""),
		styles:      styles,
	}
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.matches) == 0 {
				return m, nil
			}
			m.choice = m.matches[m.cursor].Str
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
			m.move(-1)
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
			m.move(1)
			return m, nil
		}
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != prev {
		m.matches = Rank(m.pool, q)
		m.cursor, m.offset = 0, 0
	}
	return m, cmd
}

func (m *searchModel) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.matches)) % len(m.matches)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+searchVisibleRows {
		m.offset = m.cursor - searchVisibleRows + 1
	}
}

func (m searchModel) View() string {
	if m.choice != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title) + "\n")
	if m.description != "" {
		b.WriteString(m.styles.Description.Render(m.description) + "\n")
	}
	b.WriteString(m.input.View() + "\n")

	if len(m.matches) == 0 {
		b.WriteString(m.styles.Help.Render("  no matches") + "\n")
	}
	end := min(m.offset+searchVisibleRows, len(m.matches))
	for i := m.offset; i < end; i++ {
		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.Cursor.Render("▸ ")
		}
		b.WriteString(prefix + m.renderMatch(m.matches[i], i == m.cursor) + "\n")
	}

	b.WriteString(m.styles.Help.Render(fmt.Sprintf("%d/%d  ↑/↓ move  enter select  esc cancel", len(m.matches), len(m.pool))))
	return b.String()
}

func (m searchModel) renderMatch(match Match, selected bool) string {
	base := m.styles.Item
	if selected {
		base = m.styles.Selected
	}
	if len(match.MatchedIndexes) == 0 {
		return base.Render(match.Str)
	}

	var b strings.Builder
	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(m.styles.Match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
