// Package wizard resolves a scaffold request through an ordered,
// conditionally branching questionnaire.
package wizard

import (
	"errors"

	"github.com/modu-ai/mpgen/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a free text question.
	QuestionTypeInput
	// QuestionTypeSearch is a fuzzy search over a candidate pool.
	QuestionTypeSearch
)

func (t QuestionType) String() string {
	switch t {
	case QuestionTypeSelect:
		return "select"
	case QuestionTypeInput:
		return "input"
	case QuestionTypeSearch:
		return "search"
	}
	return "unknown"
}

// Question defines a single wizard step.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option // select only
	Default     string

	// Validate checks a raw input answer. Input only.
	Validate func(string) error

	// Source returns the candidate pool of a search question.
	Source func(*Answers) []string

	// Resolve stores the accepted raw value into the answers.
	Resolve func(string, *Answers) error

	// Condition reports whether the step applies; nil means always.
	Condition func(*Answers) bool
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Answers collects resolved values. Skipped steps leave their fields zero.
type Answers struct {
	AppFlavor      string
	Kind           models.Kind
	Name           string
	ModulePath     string
	ComponentScope models.Scope
	ParentModule   string
	ParentPage     *models.PageRef

	raw map[string]string
}

// Answered returns the number of questions that produced a value.
func (a *Answers) Answered() int {
	return len(a.raw)
}

// Request converts the answers into a scaffold request carrying only the
// fields of the chosen branch.
func (a *Answers) Request() models.ScaffoldRequest {
	req := models.ScaffoldRequest{
		AppFlavor: a.AppFlavor,
		Kind:      a.Kind,
		Name:      a.Name,
	}
	switch a.Kind {
	case models.KindPage:
		req.ModulePath = a.ModulePath
	case models.KindComponent:
		req.ComponentScope = a.ComponentScope
		switch a.ComponentScope {
		case models.ScopeModule:
			req.ParentModule = a.ParentModule
		case models.ScopePage:
			if a.ParentPage != nil {
				ref := *a.ParentPage
				req.ParentPage = &ref
			}
		}
	}
	return req
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrEmptyName is returned for a blank name.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrInvalidName is returned when a name contains a forbidden character.
	ErrInvalidName = errors.New("name contains a forbidden character")
	// ErrMissingAnswer is returned by the headless prompter when a question
	// has neither an answer nor a default.
	ErrMissingAnswer = errors.New("missing answer")
	// ErrUnknownChoice is returned when an answer is not among the
	// question's options or candidates.
	ErrUnknownChoice = errors.New("unknown choice")
)
