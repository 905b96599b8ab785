// Package inherit resolves class inheritance into an ancestor table.
package inherit

import (
	"slices"
	"sort"

	"github.com/skdltmxn/gir-dts/gir"
)

// RootObject is the class every GObject-derived type descends from.
const RootObject = "GObject.Object"

// rootObjectShortName is the parent spelling resolved to RootObject when
// it does not qualify to a known symbol in the declaring module.
const rootObjectShortName = "Object"

// Symbols is the part of the symbol table the resolver needs.
type Symbols interface {
	Has(name string) bool
	TypeDecl(name string) (*gir.TypeDecl, bool)
}

type entry struct {
	names     []string
	hasParent bool
}

// Table maps a class name to its direct parent, its declared interfaces
// and then each further superclass.
type Table struct {
	entries map[string]*entry
}

// Build runs the superclass and interface passes over every module and
// finalizes the table.
func Build(modules []*gir.Module, syms Symbols) *Table {
	t := &Table{entries: make(map[string]*entry)}
	for _, m := range modules {
		t.loadSuperclasses(m, syms)
	}
	for _, m := range modules {
		t.loadInterfaces(m)
	}
	t.finalize()
	return t
}

// ParentName qualifies a declared parent for a class of module. A bare
// "Object" that names nothing in module refers to RootObject, whatever
// the module.
func ParentName(parent, module string, syms Symbols) string {
	name := gir.Qualify(parent, module)
	if parent == rootObjectShortName && syms != nil && !syms.Has(name) {
		return RootObject
	}
	return name
}

func (t *Table) loadSuperclasses(m *gir.Module, syms Symbols) {
	for _, cls := range m.Namespace().Classes {
		if cls.Parent == "" || cls.FullName() == "" {
			continue
		}
		e := t.entry(cls.FullName())
		e.names = append(e.names, ParentName(cls.Parent, m.Name(), syms))
		e.hasParent = true
	}
}

func (t *Table) loadInterfaces(m *gir.Module) {
	for _, cls := range m.Namespace().Classes {
		if cls.FullName() == "" || len(cls.Implements) == 0 {
			continue
		}
		e := t.entry(cls.FullName())
		for _, name := range cls.Implements {
			e.names = append(e.names, gir.Qualify(name, m.Name()))
		}
	}
}

func (t *Table) entry(name string) *entry {
	e, ok := t.entries[name]
	if !ok {
		e = &entry{}
		t.entries[name] = e
	}
	return e
}

// finalize appends each further superclass to every entry. Only parent
// links are followed, so interfaces of ancestors are not inherited.
func (t *Table) finalize() {
	// Parents as declared, before any entry is extended.
	parents := make(map[string]string, len(t.entries))
	for name, e := range t.entries {
		if e.hasParent {
			parents[name] = e.names[0]
		}
	}

	for name, e := range t.entries {
		if !e.hasParent {
			continue
		}
		seen := map[string]bool{name: true, e.names[0]: true}
		p := e.names[0]
		for {
			next, ok := parents[p]
			if !ok || seen[next] {
				break
			}
			e.names = append(e.names, next)
			seen[next] = true
			p = next
		}
	}
}

// Ancestors returns the finalized list for a class, or nil.
func (t *Table) Ancestors(name string) []string {
	e, ok := t.entries[name]
	if !ok {
		return nil
	}
	return slices.Clone(e.names)
}

// Parent returns the direct superclass of a class.
func (t *Table) Parent(name string) (string, bool) {
	e, ok := t.entries[name]
	if !ok || !e.hasParent {
		return "", false
	}
	return e.names[0], true
}

// IsA reports whether name is target or lists target among its ancestors.
func (t *Table) IsA(name, target string) bool {
	if name == target {
		return true
	}
	e, ok := t.entries[name]
	return ok && slices.Contains(e.names, target)
}

// Names returns every class with an entry, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the table.
func (t *Table) Map() map[string][]string {
	out := make(map[string][]string, len(t.entries))
	for name, e := range t.entries {
		out[name] = slices.Clone(e.names)
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
