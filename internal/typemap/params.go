package typemap

import (
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
)

// Param is one parameter kept in a signature.
type Param struct {
	Name     string // identifier-safe name
	Type     Type
	Optional bool
	Index    int // position in the function's parameter list
}

func (p Param) String() string {
	opt := ""
	if p.Optional {
		opt = "?"
	}
	return p.Name + opt + ": " + p.Type.Expr
}

// Signature is the classified form of a function-like node.
type Signature struct {
	// Params are the visible in and inout parameters.
	Params []Param
	// Outs are the visible out parameters, in declaration order.
	Outs []Param
	// Hidden holds the positions of elided companion parameters.
	Hidden map[int]bool
	// Return is the declared return type.
	Return Type
	// Result is the composed result type.
	Result string
}

// ParamList renders the visible parameters as "a: T, b?: U".
func (s *Signature) ParamList() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// Classify splits the parameters of f into visible, out and hidden ones
// and composes the result type. ret, if non-nil, replaces the declared
// return value.
func (m *Mapper) Classify(f *gir.Function, ret *gir.Variable) Signature {
	if ret == nil {
		ret = f.ReturnValue
	}
	params := f.Parameters

	sig := Signature{Hidden: make(map[int]bool)}
	hide := func(index *int) {
		if index == nil || *index < 0 || *index >= len(params) {
			return
		}
		sig.Hidden[*index] = true
	}
	if ret != nil && ret.Array != nil {
		hide(ret.Array.Length)
	}
	for _, p := range params {
		if p.Array != nil {
			hide(p.Array.Length)
		}
		hide(p.Closure)
		hide(p.Destroy)
	}

	var flagged []bool
	for i, p := range params {
		if sig.Hidden[i] {
			continue
		}
		param := Param{
			Name:  paramName(p.Name),
			Type:  m.Map(p),
			Index: i,
		}
		if p.Direction == gir.DirectionOut {
			sig.Outs = append(sig.Outs, param)
			continue
		}
		sig.Params = append(sig.Params, param)
		flagged = append(flagged, p.AllowNone.Set())
	}

	// A parameter stays optional only if every later one is optional too.
	following := true
	for i := len(sig.Params) - 1; i >= 0; i-- {
		sig.Params[i].Optional = flagged[i] && following
		following = following && flagged[i]
	}

	if ret != nil {
		sig.Return = m.Map(ret)
	} else {
		sig.Return = Type{Expr: VoidType, Status: Resolved}
	}
	sig.Result = composeResult(sig.Return, sig.Outs)
	return sig
}

func composeResult(ret Type, outs []Param) string {
	switch {
	case len(outs) == 0:
		return ret.Expr
	case len(outs) == 1 && ret.IsVoid():
		return outs[0].Type.Expr
	}

	var parts []string
	if !ret.IsVoid() {
		parts = append(parts, "/* returnType */ "+ret.Expr)
	}
	for _, p := range outs {
		parts = append(parts, "/* "+p.Name+" */ "+p.Type.Expr)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func paramName(name string) string {
	if name == "" {
		name = "-"
	}
	return Identifier(name)
}
