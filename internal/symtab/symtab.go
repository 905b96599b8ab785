// Package symtab builds the global fully-qualified name index.
package symtab

import (
	"iter"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/tliron/commonlog"
)

// Table maps fully-qualified declaration names to their nodes. It is
// built once by Build and only read afterwards.
type Table struct {
	byName     map[string]gir.Node
	kinds      map[string]gir.DeclKind
	order      []string
	duplicates []string
}

// Build indexes every introspectable declaration of every module.
// A name registered twice keeps the later declaration.
func Build(modules []*gir.Module, log commonlog.Logger) *Table {
	t := &Table{
		byName: make(map[string]gir.Node),
		kinds:  make(map[string]gir.DeclKind),
	}

	for _, m := range modules {
		for kind, n := range m.Decls() {
			if !introspectable(n) {
				continue
			}
			name := n.FullName()
			if _, ok := t.byName[name]; ok {
				t.duplicates = append(t.duplicates, name)
				if log != nil {
					log.Warningf("duplicate symbol: %s", name)
				}
			} else {
				t.order = append(t.order, name)
			}
			t.byName[name] = n
			t.kinds[name] = kind
		}
	}

	return t
}

func introspectable(n gir.Node) bool {
	var f gir.Flag
	switch d := n.(type) {
	case *gir.TypeDecl:
		f = d.Introspectable
	case *gir.Function:
		f = d.Introspectable
	case *gir.Variable:
		f = d.Introspectable
	case *gir.Enumeration:
		f = d.Introspectable
	case *gir.Alias:
		f = d.Introspectable
	}
	return f.Value(true)
}

// Lookup returns the node registered under name.
func (t *Table) Lookup(name string) (gir.Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Kind returns the declaration kind registered under name.
func (t *Table) Kind(name string) (gir.DeclKind, bool) {
	k, ok := t.kinds[name]
	return k, ok
}

// TypeDecl returns the class-like declaration registered under name.
func (t *Table) TypeDecl(name string) (*gir.TypeDecl, bool) {
	d, ok := t.byName[name].(*gir.TypeDecl)
	return d, ok
}

// Len returns the number of registered names.
func (t *Table) Len() int { return len(t.byName) }

// Duplicates returns every name that was registered more than once, in
// the order the collisions happened.
func (t *Table) Duplicates() []string {
	return append([]string(nil), t.duplicates...)
}

// All returns an iterator over the table in first-registration order.
func (t *Table) All() iter.Seq2[string, gir.Node] {
	return func(yield func(string, gir.Node) bool) {
		for _, name := range t.order {
			if !yield(name, t.byName[name]) {
				return
			}
		}
	}
}
