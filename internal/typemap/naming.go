package typemap

import "strings"

// reservedNames cannot be used as identifiers in generated declarations.
var reservedNames = map[string]bool{
	"in":        true,
	"function":  true,
	"true":      true,
	"false":     true,
	"break":     true,
	"arguments": true,
	"eval":      true,
	"default":   true,
	"new":       true,
}

// reservedFunctionNames cannot name a declared function or method.
var reservedFunctionNames = map[string]bool{
	"true":  true,
	"false": true,
	"break": true,
}

// Identifier normalizes a GIR name for use as a declaration identifier.
// Dashes become underscores and reserved words get a trailing underscore.
func Identifier(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	if reservedNames[name] {
		return name + "_"
	}
	return name
}

// Label normalizes a GIR name for use as a property label. Reserved
// words are quoted instead of renamed.
func Label(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	if reservedNames[name] {
		return `"` + name + `"`
	}
	return name
}

// IsReservedFunctionName reports whether name cannot be declared as a
// function-like member.
func IsReservedFunctionName(name string) bool {
	return reservedFunctionNames[name]
}
