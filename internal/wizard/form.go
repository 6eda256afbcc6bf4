package wizard

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// FormPrompter asks questions on the terminal: huh forms for select and
// input questions, a bubbletea picker for fuzzy search.
// Each question runs as its own huh.Form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
type FormPrompter struct {
	theme       *huh.Theme
	styles      searchStyles
	programOpts []tea.ProgramOption
}

// NewFormPrompter creates a FormPrompter. noColor drops all colors.
func NewFormPrompter(noColor bool, opts ...tea.ProgramOption) *FormPrompter {
	return &FormPrompter{
		theme:       newFormTheme(noColor),
		styles:      newSearchStyles(noColor),
		programOpts: opts,
	}
}

// Select shows a huh.Select over the question's options.
func (f *FormPrompter) Select(q *Question) (string, error) {
	// Static Options() with no Height() keeps huh from pinning the
	// viewport offset to the cursor.
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	selected := q.Default
	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	if err := f.run(sel); err != nil {
		return "", err
	}
	return selected, nil
}

// Input shows a huh.Input that re-prompts until Validate accepts.
func (f *FormPrompter) Input(q *Question) (string, error) {
	value := q.Default
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}
	if q.Validate != nil {
		inp = inp.Validate(q.Validate)
	}

	if err := f.run(inp); err != nil {
		return "", err
	}
	return value, nil
}

// Search runs the fuzzy picker over pool.
func (f *FormPrompter) Search(q *Question, pool []string) (string, error) {
	m := newSearchModel(q.Title, q.Description, pool, f.styles)
	final, err := tea.NewProgram(m, f.programOpts...).Run()
	if err != nil {
		return "", fmt.Errorf("wizard error: %w", err)
	}
	return searchResult(final)
}

func searchResult(final tea.Model) (string, error) {
	sm, ok := final.(searchModel)
	if !ok || sm.cancelled || sm.choice == "" {
		return "", ErrCancelled
	}
	return sm.choice, nil
}

func (f *FormPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(f.theme).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
