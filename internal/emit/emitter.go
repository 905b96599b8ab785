// Package emit renders TypeScript declaration units for loaded modules.
package emit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/skdltmxn/gir-dts/internal/inherit"
	"github.com/skdltmxn/gir-dts/internal/symtab"
	"github.com/skdltmxn/gir-dts/internal/typemap"
	"github.com/tliron/commonlog"
)

// RootModule is imported by every unit except its own.
const RootModule = "GObject"

// Context holds the tables shared by every emitter of a run. It must not
// be modified once emission starts.
type Context struct {
	Symbols   *symtab.Table
	Ancestors *inherit.Table
	Patches   Patches
	Log       commonlog.Logger
}

// Emitter renders the declarations of one module.
type Emitter struct {
	ctx   *Context
	mod   *gir.Module
	types *typemap.Mapper
	deps  []string
}

// New creates an emitter for mod. deps are the names of the modules its
// unit must import.
func New(ctx *Context, mod *gir.Module, deps []string) *Emitter {
	return &Emitter{
		ctx:   ctx,
		mod:   mod,
		types: typemap.New(ctx.Symbols, mod.Name(), ctx.Log),
		deps:  deps,
	}
}

// Unit renders the whole declaration unit of the module.
func (e *Emitter) Unit() []string {
	out := []string{
		"/**",
		" * " + e.mod.Key(),
		" */",
		"",
	}
	out = append(out, e.Imports()...)

	ns := e.mod.Namespace()
	for _, en := range ns.Enumerations {
		out = append(out, e.Enumeration(en)...)
	}
	for _, en := range ns.Bitfields {
		out = append(out, e.Enumeration(en)...)
	}
	for _, v := range ns.Constants {
		out = append(out, e.Constant(v)...)
	}
	for _, f := range ns.Functions {
		out = append(out, e.Function(f)...)
	}
	for _, f := range ns.Callbacks {
		out = append(out, e.Callback(f)...)
	}
	for _, d := range ns.Interfaces {
		out = append(out, e.Class(d)...)
	}
	for _, d := range ns.Classes {
		out = append(out, e.Class(d)...)
	}
	for _, d := range ns.Records {
		out = append(out, e.Class(d)...)
	}
	for _, d := range ns.Unions {
		out = append(out, e.Class(d)...)
	}
	for _, a := range ns.Aliases {
		out = append(out, e.Alias(a)...)
	}
	return out
}

// Imports renders one import per dependency, plus the root module.
func (e *Emitter) Imports() []string {
	deps := slices.Clone(e.deps)
	if e.mod.Name() != RootModule && !slices.Contains(deps, RootModule) {
		deps = append(deps, RootModule)
	}

	lines := []string{"import * as Gjs from './Gjs'"}
	for _, d := range deps {
		lines = append(lines, fmt.Sprintf("import * as %s from './%s'", d, d))
	}
	return lines
}

// Enumeration renders an enumeration or bitfield.
func (e *Emitter) Enumeration(en *gir.Enumeration) []string {
	if !en.Introspectable.Value(true) {
		return nil
	}
	def := []string{"export enum " + en.Name + " {"}
	for _, m := range en.Members {
		name := strings.ToUpper(m.Name)
		if name == "" {
			continue
		}
		if name[0] >= '0' && name[0] <= '9' {
			def = append(def, "    /* "+name+" (invalid, starts with a number) */")
			continue
		}
		if isInteger(m.Value) {
			def = append(def, "    "+name+" = "+m.Value+",")
		} else {
			def = append(def, "    "+name+",")
		}
	}
	return append(def, "}")
}

func isInteger(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// Constant renders a namespace constant.
func (e *Emitter) Constant(v *gir.Variable) []string {
	desc, _, ok := e.variable(v, false, false)
	if !ok {
		return nil
	}
	return []string{"export const " + desc}
}

// Function renders a namespace function.
func (e *Emitter) Function(f *gir.Function) []string {
	return e.function(f, "export function ", "", nil, false).lines
}

// Callback renders a callback as a callable interface.
func (e *Emitter) Callback(f *gir.Function) []string {
	if !f.Introspectable.Value(true) {
		return nil
	}
	sig := e.types.Classify(f, nil)
	return []string{
		"export interface " + f.Name + " {",
		"    (" + sig.ParamList() + "): " + sig.Result,
		"}",
	}
}

// Alias renders a type alias.
func (e *Emitter) Alias(a *gir.Alias) []string {
	if !a.Introspectable.Value(true) {
		return nil
	}
	return []string{"export type " + a.Name + " = " + e.types.Map(a.AsVariable()).Expr}
}

// variable renders "name: type". Properties quote reserved names,
// everything else renames them.
func (e *Emitter) variable(v *gir.Variable, optional, quote bool) (desc, name string, ok bool) {
	if v == nil || v.Name == "" || !v.Introspectable.Value(true) || v.Private.Set() {
		return "", "", false
	}
	if quote {
		name = typemap.Label(v.Name)
	} else {
		name = typemap.Identifier(v.Name)
	}
	opt := ""
	if optional {
		opt = "?"
	}
	return name + opt + ": " + e.types.Map(v).Expr, name, true
}

// rendered is the output of function emission.
type rendered struct {
	lines []string
	// name is the member name the lines declare, empty when nothing
	// should be registered.
	name string
	// sig is nil when the lines came from a patch.
	sig *typemap.Signature
}

// function renders a function-like member. A patch registered for the
// member's full name takes precedence over the default rendering.
func (e *Emitter) function(f *gir.Function, prefix, namePrefix string, ret *gir.Variable, optional bool) rendered {
	if f == nil || !f.Introspectable.Value(true) || f.ShadowedBy != "" {
		return rendered{}
	}

	name := f.Name
	if f.Shadows != "" {
		name = f.Shadows
	}
	name = namePrefix + name

	var patch []string
	if f.FullName() != "" {
		patch = e.ctx.Patches[f.FullName()]
	}
	if len(patch) == 1 {
		return rendered{lines: []string{patch[0]}, name: name}
	}
	if typemap.IsReservedFunctionName(name) {
		return rendered{lines: []string{fmt.Sprintf("/* Function '%s' is a reserved word */", name)}}
	}
	if len(patch) >= 2 {
		line := patch[len(patch)-1]
		if optional {
			line = strings.Replace(line, "(", "?(", 1)
		}
		return rendered{lines: []string{prefix + namePrefix + line}, name: name}
	}

	sig := e.types.Classify(f, ret)
	opt := ""
	if optional {
		opt = "?"
	}
	line := fmt.Sprintf("%s%s%s(%s): %s", prefix, name, opt, sig.ParamList(), sig.Result)
	return rendered{lines: []string{line}, name: name, sig: &sig}
}

// localName strips the emitted module's prefix from a full name.
func (e *Emitter) localName(fullName string) string {
	if rest, ok := strings.CutPrefix(fullName, e.mod.Name()+"."); ok {
		return rest
	}
	return fullName
}
