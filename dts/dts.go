// Package dts generates TypeScript declarations for a loaded GIR library.
package dts

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/skdltmxn/gir-dts/internal/deps"
	"github.com/skdltmxn/gir-dts/internal/emit"
	"github.com/skdltmxn/gir-dts/internal/inherit"
	"github.com/skdltmxn/gir-dts/internal/symtab"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

// Patches maps a member's fully-qualified name to replacement lines.
type Patches = emit.Patches

// DefaultPatches returns the built-in patch table.
func DefaultPatches() Patches { return emit.DefaultPatches() }

// Options configures a Generator.
type Options struct {
	// Patches replaces DefaultPatches when non-nil.
	Patches Patches
	// Jobs bounds the number of modules emitted concurrently. Zero means
	// GOMAXPROCS.
	Jobs int
	// Log receives type mapping warnings. Nil uses the "girdts.typemap"
	// logger.
	Log commonlog.Logger
}

// Generator emits declaration units for the modules of a library.
// The tables it builds are computed once, on first use, and are safe for
// concurrent read access afterwards.
type Generator struct {
	lib  *gir.Library
	opts Options

	symbols     *symtab.Table
	symbolsOnce sync.Once

	ancestors     *inherit.Table
	ancestorsOnce sync.Once

	graph     deps.Graph
	graphOnce sync.Once
}

// New creates a generator for lib.
func New(lib *gir.Library, opts Options) *Generator {
	if opts.Patches == nil {
		opts.Patches = emit.DefaultPatches()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.Log == nil {
		opts.Log = commonlog.GetLogger("girdts.typemap")
	}
	return &Generator{lib: lib, opts: opts}
}

// Library returns the library the generator emits for.
func (g *Generator) Library() *gir.Library { return g.lib }

// Symbols returns the global symbol table.
func (g *Generator) Symbols() *symtab.Table {
	g.symbolsOnce.Do(func() {
		g.symbols = symtab.Build(g.lib.Modules(), commonlog.GetLogger("girdts.symtab"))
	})
	return g.symbols
}

// Ancestors returns the finalized ancestor table.
func (g *Generator) Ancestors() *inherit.Table {
	g.ancestorsOnce.Do(func() {
		g.ancestors = inherit.Build(g.lib.Modules(), g.Symbols())
	})
	return g.ancestors
}

// Dependencies returns the module dependency graph.
func (g *Generator) Dependencies() deps.Graph {
	g.graphOnce.Do(func() {
		g.graph = deps.FromModules(g.lib.Modules())
	})
	return g.graph
}

func (g *Generator) context() *emit.Context {
	return &emit.Context{
		Symbols:   g.Symbols(),
		Ancestors: g.Ancestors(),
		Patches:   g.opts.Patches,
		Log:       g.opts.Log,
	}
}

// Unit is the rendered declaration unit of one module.
type Unit struct {
	Module *gir.Module
	Lines  []string
}

// Name returns the module name, which is also the unit's file stem.
func (u *Unit) Name() string { return u.Module.Name() }

// FileName returns the name of the declaration file.
func (u *Unit) FileName() string { return u.Module.Name() + ".d.ts" }

// ShimFileName returns the name of the runtime shim file.
func (u *Unit) ShimFileName() string { return u.Module.Name() + ".js" }

// Text returns the unit's lines joined by newlines.
func (u *Unit) Text() string { return strings.Join(u.Lines, "\n") }

// Shim returns the runtime shim re-exporting the module.
func (u *Unit) Shim() string { return emit.ModuleShim(u.Module.Name()) }

// Module renders the unit of the module with the given key.
func (g *Generator) Module(key string) (*Unit, error) {
	m, ok := g.lib.Module(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", gir.ErrModuleNotFound, key)
	}
	return g.render(g.context(), m), nil
}

func (g *Generator) render(ctx *emit.Context, m *gir.Module) *Unit {
	return &Unit{
		Module: m,
		Lines:  emit.New(ctx, m, g.Dependencies().Closure(m.Name())).Unit(),
	}
}

// GenerateAll renders every module of the library, in library order.
// Rendering stops at the first canceled context.
func (g *Generator) GenerateAll(ctx context.Context) ([]*Unit, error) {
	modules := g.lib.Modules()
	if len(modules) == 0 {
		return nil, gir.ErrNoModules
	}

	ectx := g.context()
	units := make([]*Unit, len(modules))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Jobs)
	for i, m := range modules {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			units[i] = g.render(ectx, m)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

// Artifact is a support file written next to the units.
type Artifact struct {
	Name    string
	Content string
}

// Artifacts returns the runtime support files for the library.
func (g *Generator) Artifacts() []Artifact {
	modules := g.lib.Modules()
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name()
	}
	return []Artifact{
		{Name: emit.GjsDeclFile, Content: emit.GjsDeclarations()},
		{Name: emit.GjsJSFile, Content: emit.GjsModule()},
		{Name: emit.PrintDeclFile, Content: emit.PrintDeclaration()},
		{Name: emit.IndexJSFile, Content: emit.IndexModule()},
		{Name: emit.IndexDeclFile, Content: emit.IndexDeclarations(names)},
		{Name: emit.CastFile, Content: strings.Join(emit.Cast(g.Ancestors().Map()), "\n")},
	}
}
