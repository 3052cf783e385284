// Package errors provides structured, coded errors for vadmin.
//
// Every error condition the runtime can surface to a user has a stable
// code (e.g. "E001") registered in registry.go, carrying a category,
// a default message, and a documentation link. Call sites attach
// request-specific detail:
//
//	return errors.New("E001").WithDetail("no list view named 'kanban'")
//
// AdminError supports errors.Is/As through Unwrap.
package errors
