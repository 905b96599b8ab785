// Package deps computes transitive module dependencies.
package deps

import (
	"github.com/skdltmxn/gir-dts/gir"
)

// Graph maps a namespace name to the names it includes directly.
type Graph map[string][]string

// FromModules builds the include graph of the loaded modules.
func FromModules(modules []*gir.Module) Graph {
	g := make(Graph, len(modules))
	for _, m := range modules {
		g[m.Name()] = m.DependencyNames()
	}
	return g
}

// Closure returns every module reachable from name, in depth-first
// discovery order. name itself is never included, even on a cycle.
func (g Graph) Closure(name string) []string {
	visited := map[string]bool{name: true}
	var out []string

	var visit func(string)
	visit = func(n string) {
		for _, dep := range g[n] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			out = append(out, dep)
			visit(dep)
		}
	}
	visit(name)
	return out
}

// Closures computes Closure for every node of the graph.
func (g Graph) Closures() map[string][]string {
	out := make(map[string][]string, len(g))
	for name := range g {
		out[name] = g.Closure(name)
	}
	return out
}
