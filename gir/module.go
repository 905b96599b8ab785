package gir

import (
	"fmt"
	"iter"
)

// Module represents one loaded repository and its namespace.
type Module struct {
	name         string
	version      string
	dependencies []string
	repo         *Repository
	ns           *Namespace
}

// NewModule registers a parsed repository as a module. Every declaration
// and member of the namespace is annotated with its fully-qualified name
// and a reference back to the module.
func NewModule(repo *Repository) (*Module, error) {
	if repo == nil || len(repo.Namespaces) == 0 || repo.Namespaces[0] == nil {
		return nil, ErrNoNamespace
	}

	ns := repo.Namespaces[0]
	m := &Module{
		name:    ns.Name,
		version: ns.Version,
		repo:    repo,
		ns:      ns,
	}
	if m.version == "" {
		m.version = "0.0"
	}

	// Includes are kept most-recent-first.
	for i := len(repo.Includes) - 1; i >= 0; i-- {
		m.dependencies = append(m.dependencies, repo.Includes[i].Key())
	}

	m.annotate()
	return m, nil
}

// Name returns the namespace name (e.g. "Gtk").
func (m *Module) Name() string { return m.name }

// Version returns the namespace version (e.g. "3.0").
func (m *Module) Version() string { return m.version }

// Key returns "Name-Version".
func (m *Module) Key() string { return m.name + "-" + m.version }

// Dependencies returns the keys of the included repositories.
func (m *Module) Dependencies() []string {
	return append([]string(nil), m.dependencies...)
}

// DependencyNames returns the namespace names of the included repositories.
func (m *Module) DependencyNames() []string {
	names := make([]string, 0, len(m.repo.Includes))
	for i := len(m.repo.Includes) - 1; i >= 0; i-- {
		names = append(names, m.repo.Includes[i].Name)
	}
	return names
}

// Namespace returns the module's namespace.
func (m *Module) Namespace() *Namespace { return m.ns }

func (m *Module) String() string { return m.Key() }

// Decls returns an iterator over every namespace-level declaration, in
// category order.
func (m *Module) Decls() iter.Seq2[DeclKind, Node] {
	return func(yield func(DeclKind, Node) bool) {
		ns := m.ns
		for _, e := range ns.Bitfields {
			if !yield(DeclBitfield, e) {
				return
			}
		}
		for _, f := range ns.Callbacks {
			if !yield(DeclCallback, f) {
				return
			}
		}
		for _, c := range ns.Classes {
			if !yield(DeclClass, c) {
				return
			}
		}
		for _, v := range ns.Constants {
			if !yield(DeclConstant, v) {
				return
			}
		}
		for _, e := range ns.Enumerations {
			if !yield(DeclEnumeration, e) {
				return
			}
		}
		for _, f := range ns.Functions {
			if !yield(DeclFunction, f) {
				return
			}
		}
		for _, c := range ns.Interfaces {
			if !yield(DeclInterface, c) {
				return
			}
		}
		for _, c := range ns.Records {
			if !yield(DeclRecord, c) {
				return
			}
		}
		for _, c := range ns.Unions {
			if !yield(DeclUnion, c) {
				return
			}
		}
		for _, a := range ns.Aliases {
			if !yield(DeclAlias, a) {
				return
			}
		}
	}
}

// Count returns the number of declarations of the given kind.
func (m *Module) Count(kind DeclKind) int {
	n := 0
	for k := range m.Decls() {
		if k == kind {
			n++
		}
	}
	return n
}

func (m *Module) annotate() {
	for kind, n := range m.Decls() {
		switch d := n.(type) {
		case *TypeDecl:
			d.Kind = kind
			d.annotate(m.qualify(d.Name), m)
			m.annotateMembers(d)
		case *Function:
			d.Kind = FuncFunction
			if kind == DeclCallback {
				d.Kind = FuncCallback
			}
			d.annotate(m.qualify(d.Name), m)
			m.annotateFunction(d)
		case *Variable:
			d.annotate(m.qualify(d.Name), m)
		case *Enumeration:
			d.Kind = kind
			d.annotate(m.qualify(d.Name), m)
		case *Alias:
			d.annotate(m.qualify(d.Name), m)
		}
	}
}

func (m *Module) qualify(name string) string {
	return fmt.Sprintf("%s.%s", m.name, name)
}

func (m *Module) annotateMembers(d *TypeDecl) {
	owner := d.FullName()
	functions := func(kind FuncKind, funcs []*Function) {
		for _, f := range funcs {
			f.Kind = kind
			f.annotate(owner+"."+f.Name, m)
			m.annotateFunction(f)
		}
	}
	functions(FuncConstructor, d.Constructors)
	functions(FuncFunction, d.Functions)
	functions(FuncMethod, d.Methods)
	functions(FuncVirtual, d.VirtualMethods)
	functions(FuncSignal, d.Signals)

	for _, v := range d.Properties {
		v.annotate(memberName(owner, v.Name), m)
	}
	for _, v := range d.Fields {
		v.annotate(memberName(owner, v.Name), m)
	}
}

func (m *Module) annotateFunction(f *Function) {
	owner := f.FullName()
	if f.InstanceParameter != nil {
		f.InstanceParameter.annotate(memberName(owner, f.InstanceParameter.Name), m)
	}
	for _, p := range f.Parameters {
		p.annotate(memberName(owner, p.Name), m)
	}
	if f.ReturnValue != nil {
		f.ReturnValue.annotate(memberName(owner, f.ReturnValue.Name), m)
	}
}

func memberName(owner, name string) string {
	if name == "" {
		return ""
	}
	return owner + "." + name
}
