// Package models provides shared data models and types for mpgen.
//
// # Artifact Kinds
//
// A scaffold run produces one of two artifact kinds:
//   - page: registered in app.json under the main bundle or a sub-package
//   - component: placed by scope, never registered in app.json
//
// Use [Kind] and its constants:
//
//	kind := models.KindPage
//	if kind.IsValid() {
//	    fmt.Println("Valid kind:", kind)
//	}
//
// # Component Scopes
//
// Components are placed by [Scope]:
//   - global: project-level components directory
//   - module: components directory under a sub-package root
//   - page: components directory under an owning page
//
// # Requests
//
// [ScaffoldRequest] is the fully resolved input handed from the
// questionnaire to the orchestrator. Call [ScaffoldRequest.Validate]
// before acting on one.
package models
