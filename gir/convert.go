package gir

import (
	"io"

	"github.com/skdltmxn/gir-dts/internal/girxml"
)

// Parse decodes a .gir document and registers it as a module.
func Parse(r io.Reader) (*Module, error) {
	rec, err := girxml.Decode(r)
	if err != nil {
		return nil, err
	}
	return NewModule(convertRepository(rec))
}

func convertRepository(rec *girxml.Repository) *Repository {
	repo := &Repository{}
	for _, inc := range rec.Includes {
		repo.Includes = append(repo.Includes, Include{Name: inc.Name, Version: inc.Version})
	}
	for i := range rec.Namespaces {
		repo.Namespaces = append(repo.Namespaces, convertNamespace(&rec.Namespaces[i]))
	}
	return repo
}

func convertNamespace(rec *girxml.Namespace) *Namespace {
	ns := &Namespace{
		Name:    rec.Name,
		Version: rec.Version,
	}
	for i := range rec.Aliases {
		ns.Aliases = append(ns.Aliases, convertAlias(&rec.Aliases[i]))
	}
	ns.Bitfields = convertEnumerations(DeclBitfield, rec.Bitfields)
	ns.Callbacks = convertFunctions(FuncCallback, rec.Callbacks)
	ns.Classes = convertClasses(DeclClass, rec.Classes)
	ns.Constants = convertVariables(rec.Constants)
	ns.Enumerations = convertEnumerations(DeclEnumeration, rec.Enumerations)
	ns.Functions = convertFunctions(FuncFunction, rec.Functions)
	ns.Interfaces = convertClasses(DeclInterface, rec.Interfaces)
	ns.Records = convertClasses(DeclRecord, rec.Records)
	ns.Unions = convertClasses(DeclUnion, rec.Unions)
	return ns
}

func convertClasses(kind DeclKind, recs []girxml.Class) []*TypeDecl {
	if len(recs) == 0 {
		return nil
	}
	out := make([]*TypeDecl, len(recs))
	for i := range recs {
		rec := &recs[i]
		d := &TypeDecl{
			Kind:           kind,
			Name:           rec.Name,
			Parent:         rec.Parent,
			Introspectable: ParseFlag(rec.Introspectable),
			GTypeStructFor: rec.IsGTypeStructFor,
			Constructors:   convertFunctions(FuncConstructor, rec.Constructors),
			Functions:      convertFunctions(FuncFunction, rec.Functions),
			Methods:        convertFunctions(FuncMethod, rec.Methods),
			VirtualMethods: convertFunctions(FuncVirtual, rec.VirtualMethods),
			Signals:        convertFunctions(FuncSignal, rec.Signals),
			Properties:     convertVariables(rec.Properties),
			Fields:         convertVariables(rec.Fields),
		}
		for _, impl := range rec.Implements {
			if impl.Name != "" {
				d.Implements = append(d.Implements, impl.Name)
			}
		}
		out[i] = d
	}
	return out
}

func convertFunctions(kind FuncKind, recs []girxml.Function) []*Function {
	if len(recs) == 0 {
		return nil
	}
	out := make([]*Function, len(recs))
	for i := range recs {
		rec := &recs[i]
		f := &Function{
			Kind:           kind,
			Name:           rec.Name,
			CIdentifier:    rec.CIdentifier,
			Shadows:        rec.Shadows,
			ShadowedBy:     rec.ShadowedBy,
			Introspectable: ParseFlag(rec.Introspectable),
			Parameters:     convertVariables(rec.Parameters),
		}
		if rec.InstanceParameter != nil {
			f.InstanceParameter = convertVariable(rec.InstanceParameter)
		}
		if rec.ReturnValue != nil {
			f.ReturnValue = convertVariable(rec.ReturnValue)
		}
		out[i] = f
	}
	return out
}

func convertVariables(recs []girxml.Variable) []*Variable {
	if len(recs) == 0 {
		return nil
	}
	out := make([]*Variable, len(recs))
	for i := range recs {
		out[i] = convertVariable(&recs[i])
	}
	return out
}

func convertVariable(rec *girxml.Variable) *Variable {
	v := &Variable{
		Name:           rec.Name,
		Nullable:       ParseFlag(rec.Nullable),
		AllowNone:      ParseFlag(rec.AllowNone),
		Optional:       ParseFlag(rec.Optional),
		Direction:      ParseDirection(rec.Direction),
		Introspectable: ParseFlag(rec.Introspectable),
		Private:        ParseFlag(rec.Private),
		Readable:       ParseFlag(rec.Readable),
		Writable:       ParseFlag(rec.Writable),
		Construct:      ParseFlag(rec.Construct),
		ConstructOnly:  ParseFlag(rec.ConstructOnly),
		Closure:        girxml.ParseIndex(rec.Closure),
		Destroy:        girxml.ParseIndex(rec.Destroy),
		Value:          rec.Value,
	}
	if rec.Type != nil {
		v.Type = convertType(rec.Type)
	}
	if rec.Array != nil {
		v.Array = &Array{
			Length:         girxml.ParseIndex(rec.Array.Length),
			ZeroTerminated: ParseFlag(rec.Array.ZeroTerminated),
			CType:          rec.Array.CType,
		}
		if rec.Array.Type != nil {
			v.Array.Element = convertType(rec.Array.Type)
		}
	}
	return v
}

func convertType(rec *girxml.Type) *TypeRef {
	t := &TypeRef{Name: rec.Name, CType: rec.CType}
	for i := range rec.Types {
		t.Elements = append(t.Elements, convertType(&rec.Types[i]))
	}
	return t
}

func convertEnumerations(kind DeclKind, recs []girxml.Enumeration) []*Enumeration {
	if len(recs) == 0 {
		return nil
	}
	out := make([]*Enumeration, len(recs))
	for i := range recs {
		rec := &recs[i]
		e := &Enumeration{
			Kind:           kind,
			Name:           rec.Name,
			CType:          rec.CType,
			Introspectable: ParseFlag(rec.Introspectable),
		}
		for j := range rec.Members {
			m := &rec.Members[j]
			e.Members = append(e.Members, Member{Name: m.Name(), Value: m.Value()})
		}
		out[i] = e
	}
	return out
}

func convertAlias(rec *girxml.Alias) *Alias {
	a := &Alias{
		Name:           rec.Name,
		CType:          rec.CType,
		Introspectable: ParseFlag(rec.Introspectable),
	}
	if rec.Type != nil {
		a.Type = convertType(rec.Type)
	}
	return a
}
