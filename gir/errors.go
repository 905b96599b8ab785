// Package gir loads GObject-Introspection repositories into a node tree.
package gir

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoNamespace indicates a repository without a namespace element.
	ErrNoNamespace = errors.New("gir: no namespace found in the repository")

	// ErrModuleNotFound indicates no .gir file exists for a module.
	ErrModuleNotFound = errors.New("gir: module not found")

	// ErrNoModules indicates nothing was requested for loading.
	ErrNoModules = errors.New("gir: no modules requested")

	// ErrSymbolNotFound indicates a fully-qualified name is not registered.
	ErrSymbolNotFound = errors.New("gir: symbol not found")
)

// LoadError provides detailed information about a module that failed to load.
type LoadError struct {
	Module string // Module key, e.g. "Gtk-3.0"
	Path   string // File that was being read, if known
	Err    error  // Underlying error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("gir: failed to load %s from %s: %v", e.Module, e.Path, e.Err)
	}
	return fmt.Sprintf("gir: failed to load %s: %v", e.Module, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
