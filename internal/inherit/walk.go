package inherit

import (
	"github.com/skdltmxn/gir-dts/gir"
)

// Chain returns decl followed by each superclass reachable through the
// table's parent links, most-derived first. Links to names with no
// class-like declaration end the chain.
func (t *Table) Chain(decl *gir.TypeDecl, syms Symbols) []*gir.TypeDecl {
	if decl == nil {
		return nil
	}
	chain := []*gir.TypeDecl{decl}
	seen := map[string]bool{decl.FullName(): true}

	name := decl.FullName()
	for {
		parent, ok := t.Parent(name)
		if !ok || seen[parent] {
			break
		}
		next, ok := syms.TypeDecl(parent)
		if !ok {
			break
		}
		chain = append(chain, next)
		seen[parent] = true
		name = parent
	}
	return chain
}

// Walk calls visit for decl and each superclass in Chain order.
func (t *Table) Walk(decl *gir.TypeDecl, syms Symbols, visit func(*gir.TypeDecl)) {
	for _, cls := range t.Chain(decl, syms) {
		visit(cls)
	}
}

// Interfaces returns the interfaces declared directly by decl, qualified
// against decl's own module. Unknown names are skipped.
func Interfaces(decl *gir.TypeDecl, syms Symbols) []*gir.TypeDecl {
	module := ""
	if m := decl.Module(); m != nil {
		module = m.Name()
	}
	var out []*gir.TypeDecl
	for _, name := range decl.Implements {
		if iface, ok := syms.TypeDecl(gir.Qualify(name, module)); ok {
			out = append(out, iface)
		}
	}
	return out
}

// Levels returns the full member-aggregation walk of decl: the chain,
// then each level's directly declared interfaces in chain order. Each
// declaration appears once.
func (t *Table) Levels(decl *gir.TypeDecl, syms Symbols) []*gir.TypeDecl {
	chain := t.Chain(decl, syms)
	levels := append([]*gir.TypeDecl(nil), chain...)
	seen := make(map[*gir.TypeDecl]bool, len(chain))
	for _, cls := range chain {
		seen[cls] = true
	}
	for _, cls := range chain {
		for _, iface := range Interfaces(cls, syms) {
			if seen[iface] {
				continue
			}
			seen[iface] = true
			levels = append(levels, iface)
		}
	}
	return levels
}

// DerivesFromRoot reports whether the chain of decl reaches RootObject.
func (t *Table) DerivesFromRoot(decl *gir.TypeDecl, syms Symbols) bool {
	for _, cls := range t.Chain(decl, syms) {
		if cls.FullName() == RootObject {
			return true
		}
	}
	return false
}
