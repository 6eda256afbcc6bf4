package wizard

import (
	"fmt"
	"strings"

	"github.com/modu-ai/mpgen/pkg/models"
)

// Question IDs, in prompt order.
const (
	QAppFlavor      = "app_flavor"
	QKind           = "kind"
	QName           = "name"
	QModulePath     = "module_path"
	QComponentScope = "component_scope"
	QParentModule   = "parent_module"
	QParentPage     = "parent_page"
)

// NoModule is the module_path choice that targets the main bundle.
const NoModule = "none"

var kindLabels = map[models.Kind]Option{
	models.KindPage:      {Label: "Page", Desc: "registered in app.json"},
	models.KindComponent: {Label: "Component", Desc: "files only"},
}

var scopeLabels = map[models.Scope]Option{
	models.ScopeGlobal: {Label: "Global", Desc: "shared by the whole app"},
	models.ScopeModule: {Label: "Module", Desc: "inside one sub-package"},
	models.ScopePage:   {Label: "Page", Desc: "private to one page"},
}

func kindOptions() []Option {
	kinds := models.ValidKinds()
	opts := make([]Option, len(kinds))
	for i, k := range kinds {
		opts[i] = kindLabels[k]
		opts[i].Value = string(k)
	}
	return opts
}

func scopeOptions() []Option {
	scopes := models.ValidScopes()
	opts := make([]Option, len(scopes))
	for i, sc := range scopes {
		opts[i] = scopeLabels[sc]
		opts[i].Value = string(sc)
	}
	return opts
}

// DefaultQuestions returns the scaffold questionnaire for a session.
// The questions follow this order:
// 1. App flavor
// 2. Artifact kind
// 3. Name
// 4. Owning sub-package (pages)
// 5. Component scope (components)
// 6. Parent module (module-scoped components)
// 7. Parent page (page-scoped components)
func DefaultQuestions(s *Session) []Question {
	flavorOpts := make([]Option, len(s.Flavors))
	for i, f := range s.Flavors {
		flavorOpts[i] = Option{Label: f, Value: f}
	}
	var defaultFlavor string
	if len(s.Flavors) > 0 {
		defaultFlavor = s.Flavors[0]
	}

	return []Question{
		// 1. App flavor
		{
			ID:      QAppFlavor,
			Type:    QuestionTypeSelect,
			Title:   "Select app flavor",
			Options: flavorOpts,
			Default: defaultFlavor,
			Resolve: func(v string, a *Answers) error {
				a.AppFlavor = v
				return nil
			},
		},
		// 2. Kind
		{
			ID:    QKind,
			Type:  QuestionTypeSelect,
			Title: "What do you want to create?",
			Options: kindOptions(),
			Default: string(models.KindPage),
			Resolve: func(v string, a *Answers) error {
				a.Kind = models.Kind(v)
				return nil
			},
		},
		// 3. Name
		{
			ID:          QName,
			Type:        QuestionTypeInput,
			Title:       "Enter a name",
			Description: "Used for the directory and every generated file.",
			Validate:    ValidateName,
			Resolve: func(v string, a *Answers) error {
				a.Name = strings.TrimSpace(v)
				return nil
			},
		},
		// 4. Module path (pages only)
		{
			ID:          QModulePath,
			Type:        QuestionTypeSearch,
			Title:       "Select the owning sub-package",
			Description: "Choose none for the main bundle.",
			Default:     NoModule,
			Source: func(*Answers) []string {
				return append([]string{NoModule}, s.Modules.Keys()...)
			},
			Resolve: func(v string, a *Answers) error {
				if v == NoModule {
					a.ModulePath = ""
					return nil
				}
				root, ok := s.Modules.Lookup(v)
				if !ok {
					return fmt.Errorf("%w: module %q", ErrUnknownChoice, v)
				}
				a.ModulePath = root
				return nil
			},
			Condition: func(a *Answers) bool {
				return a.Kind == models.KindPage
			},
		},
		// 5. Component scope (components only)
		{
			ID:    QComponentScope,
			Type:  QuestionTypeSelect,
			Title: "Select component scope",
			Options: scopeOptions(),
			Default: string(models.ScopeGlobal),
			Resolve: func(v string, a *Answers) error {
				a.ComponentScope = models.Scope(v)
				return nil
			},
			Condition: func(a *Answers) bool {
				return a.Kind == models.KindComponent
			},
		},
		// 6. Parent module (module scope)
		{
			ID:    QParentModule,
			Type:  QuestionTypeSearch,
			Title: "Select the parent module",
			Source: func(*Answers) []string {
				return s.Modules.Keys()
			},
			Resolve: func(v string, a *Answers) error {
				root, ok := s.Modules.Lookup(v)
				if !ok {
					return fmt.Errorf("%w: module %q", ErrUnknownChoice, v)
				}
				a.ParentModule = root
				return nil
			},
			Condition: func(a *Answers) bool {
				return a.Kind == models.KindComponent && a.ComponentScope == models.ScopeModule
			},
		},
		// 7. Parent page (page scope)
		{
			ID:    QParentPage,
			Type:  QuestionTypeSearch,
			Title: "Select the parent page",
			Source: func(*Answers) []string {
				return s.Pages.Keys()
			},
			Resolve: func(v string, a *Answers) error {
				root, ok := s.Pages.Lookup(v)
				if !ok {
					return fmt.Errorf("%w: page %q", ErrUnknownChoice, v)
				}
				a.ParentPage = &models.PageRef{Page: v, Root: root}
				return nil
			},
			Condition: func(a *Answers) bool {
				return a.Kind == models.KindComponent && a.ComponentScope == models.ScopePage
			},
		},
	}
}

// FilteredQuestions returns questions whose conditions hold for answers.
func FilteredQuestions(questions []Question, answers *Answers) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(answers) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
