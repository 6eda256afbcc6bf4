package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest indicates a scaffold request is missing fields for its
// branch or carries fields that belong to another branch.
var ErrInvalidRequest = errors.New("invalid scaffold request")

// Kind is the artifact kind produced by a scaffold run.
type Kind string

const (
	KindPage      Kind = "page"
	KindComponent Kind = "component"
)

// ValidKinds returns all valid kind values in prompt order.
func ValidKinds() []Kind {
	return []Kind{KindPage, KindComponent}
}

// IsValid checks if the kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindPage, KindComponent:
		return true
	}
	return false
}

// Scope is the placement scope of a component.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeModule Scope = "module"
	ScopePage   Scope = "page"
)

// ValidScopes returns all valid scope values in prompt order.
func ValidScopes() []Scope {
	return []Scope{ScopeGlobal, ScopeModule, ScopePage}
}

// IsValid checks if the scope is a valid value.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeGlobal, ScopeModule, ScopePage:
		return true
	}
	return false
}

// PageRef identifies a page by its short key and the root of the
// sub-package that owns it. An empty Root means the main bundle.
type PageRef struct {
	Page string `json:"page"`
	Root string `json:"root"`
}

// ScaffoldRequest is the resolved input of one scaffold run.
type ScaffoldRequest struct {
	AppFlavor      string   `json:"app_flavor"`
	Kind           Kind     `json:"kind"`
	Name           string   `json:"name"`
	ModulePath     string   `json:"module_path,omitempty"`     // page only; "" = main bundle
	ComponentScope Scope    `json:"component_scope,omitempty"` // component only
	ParentModule   string   `json:"parent_module,omitempty"`   // component, module scope
	ParentPage     *PageRef `json:"parent_page,omitempty"`     // component, page scope
}

// Validate checks that the request carries exactly the fields its branch
// needs.
func (r ScaffoldRequest) Validate() error {
	if r.AppFlavor == "" {
		return fmt.Errorf("%w: app flavor is required", ErrInvalidRequest)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	// The name becomes one directory and the stem of every file in it.
	if strings.ContainsAny(r.Name, `/\`) || r.Name == "." || r.Name == ".." {
		return fmt.Errorf("%w: name %q must be a single path segment", ErrInvalidRequest, r.Name)
	}

	switch r.Kind {
	case KindPage:
		if r.ComponentScope != "" || r.ParentModule != "" || r.ParentPage != nil {
			return fmt.Errorf("%w: page request carries component fields", ErrInvalidRequest)
		}
	case KindComponent:
		if r.ModulePath != "" {
			return fmt.Errorf("%w: component request carries a module path", ErrInvalidRequest)
		}
		if !r.ComponentScope.IsValid() {
			return fmt.Errorf("%w: invalid component scope %q", ErrInvalidRequest, r.ComponentScope)
		}
		switch r.ComponentScope {
		case ScopeGlobal:
			if r.ParentModule != "" || r.ParentPage != nil {
				return fmt.Errorf("%w: global component carries a parent", ErrInvalidRequest)
			}
		case ScopeModule:
			if r.ParentModule == "" || r.ParentPage != nil {
				return fmt.Errorf("%w: module component needs exactly a parent module", ErrInvalidRequest)
			}
		case ScopePage:
			if r.ParentPage == nil || r.ParentPage.Page == "" || r.ParentModule != "" {
				return fmt.Errorf("%w: page component needs exactly a parent page", ErrInvalidRequest)
			}
		}
	default:
		return fmt.Errorf("%w: invalid kind %q", ErrInvalidRequest, r.Kind)
	}

	return nil
}
