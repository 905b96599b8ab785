// Package typemap maps GIR type descriptors to TypeScript type expressions
// and classifies function parameters.
package typemap

import (
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/tliron/commonlog"
)

// Fallback expressions.
const (
	AnyType  = "any"
	VoidType = "void"
)

// Status tells how a type expression was obtained.
type Status uint8

const (
	// Resolved types come from a fixed map or a registered declaration.
	Resolved Status = iota
	// Dynamic types are "any" because the descriptor has no better mapping.
	Dynamic
	// Unresolved types name a declaration that is not registered.
	Unresolved
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Dynamic:
		return "dynamic"
	default:
		return "unresolved"
	}
}

// Type is a mapped type expression.
type Type struct {
	Expr   string
	Status Status
}

func (t Type) String() string { return t.Expr }

// IsVoid reports whether the expression is the void type.
func (t Type) IsVoid() bool { return t.Expr == VoidType }

func resolved(expr string) Type {
	if strings.HasPrefix(expr, AnyType) {
		return Type{Expr: expr, Status: Dynamic}
	}
	return Type{Expr: expr, Status: Resolved}
}

var dynamic = Type{Expr: AnyType, Status: Dynamic}

// arrayTypeMap applies to array element types only.
var arrayTypeMap = map[string]string{
	"guint8":   "Gjs.byteArray.ByteArray",
	"gint8":    "Gjs.byteArray.ByteArray",
	"gunichar": "string",
}

var primitiveTypeMap = map[string]string{
	"utf8":          "string",
	"filename":      "string",
	"none":          "void",
	"gboolean":      "boolean",
	"gpointer":      "object",
	"gconstpointer": "object",
	"gchar":         "number",
	"guchar":        "number",
	"gunichar":      "number",
	"gint8":         "number",
	"guint8":        "number",
	"gint16":        "number",
	"guint16":       "number",
	"gshort":        "number",
	"gushort":       "number",
	"gint":          "number",
	"guint":         "number",
	"gint32":        "number",
	"guint32":       "number",
	"glong":         "number",
	"gulong":        "number",
	"long":          "number",
	"gint64":        "number",
	"guint64":       "number",
	"gssize":        "number",
	"gsize":         "number",
	"gintptr":       "number",
	"guintptr":      "number",
	"goffset":       "number",
	"gfloat":        "number",
	"gdouble":       "number",
	"double":        "number",
	"object":        "any",
	"va_list":       "any",
}

var fullTypeMap = map[string]string{
	"GObject.Value":   "any",
	"GObject.Closure": "Function",
	"GLib.ByteArray":  "Gjs.byteArray.ByteArray",
	"GLib.Bytes":      "Gjs.byteArray.ByteArray",
}

// Symbols is the part of the symbol table the mapper needs.
type Symbols interface {
	Has(name string) bool
}

// Mapper maps types for declarations emitted into one module.
type Mapper struct {
	syms   Symbols
	module string
	log    commonlog.Logger
}

// New creates a mapper for the module whose unit is being emitted.
// log may be nil.
func New(syms Symbols, module string, log commonlog.Logger) *Mapper {
	return &Mapper{syms: syms, module: module, log: log}
}

// Module returns the module the mapper emits for.
func (m *Mapper) Module() string { return m.module }

// Map returns the type expression for a variable-like node.
func (m *Mapper) Map(v *gir.Variable) Type {
	if v == nil {
		return dynamic
	}

	owner := m.module
	if mod := v.Module(); mod != nil {
		owner = mod.Name()
	}

	var elem *gir.TypeRef
	var arr, arrCType string
	switch {
	case v.Array != nil:
		if v.Array.Element == nil {
			return dynamic
		}
		elem = v.Array.Element
		arr = "[]"
		arrCType = v.Array.CType
	case v.Type != nil && isList(v.Type.Name, owner):
		if len(v.Type.Elements) == 0 || v.Type.Elements[0] == nil {
			return dynamic
		}
		elem = v.Type.Elements[0]
		arr = "[]"
		arrCType = v.Type.CType
	case v.Type != nil:
		elem = v.Type
	default:
		return dynamic
	}

	nul := ""
	if v.IsNullable() {
		nul = " | null"
	}
	suffix := arr + nul

	if arr != "" {
		if t, ok := arrayTypeMap[elem.Name]; ok {
			return resolved(t + nul)
		}
	}
	if t, ok := primitiveTypeMap[elem.Name]; ok {
		return resolved(t + suffix)
	}

	cType := elem.CType
	if cType == "" {
		cType = arrCType
	}
	switch cType {
	case "char*", "gchar*":
		return resolved("string" + suffix)
	case "gchar**":
		return resolved(AnyType + nul)
	case "GType":
		if m.module == "GObject" {
			return resolved("Type" + suffix)
		}
		return resolved("GObject.Type" + suffix)
	}

	if elem.Name == "" {
		return m.unresolved(v, "", arr)
	}
	fullName := gir.Qualify(elem.Name, owner)
	if t, ok := fullTypeMap[fullName]; ok {
		return resolved(t + suffix)
	}
	if m.syms == nil || !m.syms.Has(fullName) {
		return m.unresolved(v, fullName, arr)
	}
	if local, ok := strings.CutPrefix(fullName, m.module+"."); ok {
		return Type{Expr: local + suffix, Status: Resolved}
	}
	return Type{Expr: fullName + suffix, Status: Resolved}
}

func (m *Mapper) unresolved(v *gir.Variable, fullName, arr string) Type {
	if m.log != nil {
		who := v.FullName()
		if who == "" {
			who = v.Name
		}
		m.log.Warningf("could not find type %s for %s", fullName, who)
	}
	return Type{Expr: AnyType + arr, Status: Unresolved}
}

func isList(name, owner string) bool {
	switch gir.Qualify(name, owner) {
	case "GLib.List", "GLib.SList":
		return true
	}
	return false
}
