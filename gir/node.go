package gir

import (
	"strings"
)

// DeclKind identifies the category of a namespace-level declaration.
type DeclKind uint8

const (
	DeclUnknown DeclKind = iota
	DeclAlias
	DeclBitfield
	DeclCallback
	DeclClass
	DeclConstant
	DeclEnumeration
	DeclFunction
	DeclInterface
	DeclRecord
	DeclUnion
)

func (k DeclKind) String() string {
	switch k {
	case DeclAlias:
		return "alias"
	case DeclBitfield:
		return "bitfield"
	case DeclCallback:
		return "callback"
	case DeclClass:
		return "class"
	case DeclConstant:
		return "constant"
	case DeclEnumeration:
		return "enumeration"
	case DeclFunction:
		return "function"
	case DeclInterface:
		return "interface"
	case DeclRecord:
		return "record"
	case DeclUnion:
		return "union"
	default:
		return "unknown"
	}
}

// ParseDeclKind maps a kind name back to its DeclKind.
func ParseDeclKind(s string) (DeclKind, bool) {
	for k := DeclAlias; k <= DeclUnion; k++ {
		if k.String() == strings.ToLower(s) {
			return k, true
		}
	}
	return DeclUnknown, false
}

// FuncKind identifies which element a Function was declared as.
type FuncKind uint8

const (
	FuncFunction FuncKind = iota
	FuncMethod
	FuncVirtual
	FuncSignal
	FuncConstructor
	FuncCallback
)

func (k FuncKind) String() string {
	switch k {
	case FuncMethod:
		return "method"
	case FuncVirtual:
		return "virtual-method"
	case FuncSignal:
		return "signal"
	case FuncConstructor:
		return "constructor"
	case FuncCallback:
		return "callback"
	default:
		return "function"
	}
}

// Direction is the data flow direction of a parameter.
type Direction uint8

const (
	DirectionIn Direction = iota
	DirectionOut
	DirectionInOut
)

func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "out"
	case DirectionInOut:
		return "inout"
	default:
		return "in"
	}
}

// ParseDirection parses a GIR direction attribute. Anything unknown is "in".
func ParseDirection(s string) Direction {
	switch s {
	case "out":
		return DirectionOut
	case "inout":
		return DirectionInOut
	default:
		return DirectionIn
	}
}

// Flag is a boolean attribute that may be absent.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagFalse
	FlagTrue
)

// ParseFlag parses a GIR boolean attribute. The value is read as a
// leading integer; zero is false, anything else that is present
// (including text without digits) is true.
func ParseFlag(s string) Flag {
	if s == "" {
		return FlagUnset
	}
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return FlagTrue
	}
	if strings.Trim(s[start:i], "0") == "" {
		return FlagFalse
	}
	return FlagTrue
}

// Value returns the flag, or def when the attribute was absent.
func (f Flag) Value(def bool) bool {
	switch f {
	case FlagTrue:
		return true
	case FlagFalse:
		return false
	default:
		return def
	}
}

// Set reports whether the flag is present and true.
func (f Flag) Set() bool { return f == FlagTrue }

// Node is implemented by every declaration and member of a namespace.
type Node interface {
	// FullName returns the fully-qualified name ("Gtk.Widget",
	// "Gtk.Widget.show"). Empty for anonymous nodes.
	FullName() string

	// Module returns the module that owns the node.
	Module() *Module

	node()
}

// annotation carries the derived state attached to a node once its
// module is registered.
type annotation struct {
	fullName string
	module   *Module
}

func (a *annotation) FullName() string { return a.fullName }
func (a *annotation) Module() *Module  { return a.module }
func (a *annotation) node()            {}

func (a *annotation) annotate(fullName string, m *Module) {
	if a.module != nil {
		return
	}
	a.fullName = fullName
	a.module = m
}

// Repository is a parsed .gir document.
type Repository struct {
	Includes   []Include
	Namespaces []*Namespace
}

// Include names another repository this one depends on.
type Include struct {
	Name    string
	Version string
}

// Key returns the "Name-Version" form used to locate the repository.
func (i Include) Key() string { return i.Name + "-" + i.Version }

// Namespace holds a module's declarations by category.
type Namespace struct {
	Name    string
	Version string

	Aliases      []*Alias
	Bitfields    []*Enumeration
	Callbacks    []*Function
	Classes      []*TypeDecl
	Constants    []*Variable
	Enumerations []*Enumeration
	Functions    []*Function
	Interfaces   []*TypeDecl
	Records      []*TypeDecl
	Unions       []*TypeDecl
}

// TypeDecl is a class, interface, record or union.
type TypeDecl struct {
	annotation

	Kind           DeclKind
	Name           string
	Parent         string
	Implements     []string
	Introspectable Flag

	// GTypeStructFor is set on records that are the class struct of
	// another type.
	GTypeStructFor string

	Constructors   []*Function
	Functions      []*Function
	Methods        []*Function
	VirtualMethods []*Function
	Signals        []*Function
	Properties     []*Variable
	Fields         []*Variable
}

// Function is a function, method, virtual method, signal, constructor
// or callback.
type Function struct {
	annotation

	Kind           FuncKind
	Name           string
	CIdentifier    string
	Shadows        string
	ShadowedBy     string
	Introspectable Flag

	InstanceParameter *Variable
	Parameters        []*Variable
	ReturnValue       *Variable
}

// Variable is a parameter, return value, property, field or constant.
// Exactly one of Type and Array is normally set.
type Variable struct {
	annotation

	Name  string
	Type  *TypeRef
	Array *Array

	Nullable  Flag
	AllowNone Flag
	Optional  Flag
	Direction Direction

	Introspectable Flag
	Private        Flag
	Readable       Flag
	Writable       Flag
	Construct      Flag
	ConstructOnly  Flag

	// Closure and Destroy are positions in the owning function's
	// parameter list.
	Closure *int
	Destroy *int

	// Value is the literal of a constant.
	Value string
}

// IsNullable reports whether either nullability attribute is set.
func (v *Variable) IsNullable() bool {
	return v.Nullable.Set() || v.AllowNone.Set()
}

// Array wraps an element type.
type Array struct {
	// Length is the position of the parameter carrying the array length.
	Length         *int
	ZeroTerminated Flag
	CType          string
	Element        *TypeRef
}

// TypeRef names a type. Elements holds the parameters of container
// types such as GLib.List.
type TypeRef struct {
	Name     string
	CType    string
	Elements []*TypeRef
}

// Enumeration is an enumeration or a bitfield.
type Enumeration struct {
	annotation

	Kind           DeclKind
	Name           string
	CType          string
	Introspectable Flag
	Members        []Member
}

// Member is one value of an enumeration.
type Member struct {
	Name  string
	Value string
}

// Alias gives another name to a type.
type Alias struct {
	annotation

	Name           string
	CType          string
	Introspectable Flag
	Type           *TypeRef
}

// AsVariable returns a variable of the aliased type owned by the
// alias's module, for type mapping.
func (a *Alias) AsVariable() *Variable {
	v := &Variable{Name: a.Name, Type: a.Type}
	v.annotate(a.fullName, a.module)
	return v
}

// NewReturnValue builds an unannotated-name return value of the named
// type owned by m.
func NewReturnValue(typeName string, m *Module) *Variable {
	v := &Variable{Type: &TypeRef{Name: typeName}}
	v.annotate("", m)
	return v
}

// Qualify prefixes name with module unless it is already qualified.
func Qualify(name, module string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return module + "." + name
}

// SplitName splits a fully-qualified name into its module and the rest.
func SplitName(name string) (module, rest string) {
	module, rest, ok := strings.Cut(name, ".")
	if !ok {
		return "", name
	}
	return module, rest
}
