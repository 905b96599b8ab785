package emit

import (
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
)

// memberSet tracks the names already declared in one class body.
type memberSet map[string]bool

// add appends lines to def unless the name is empty or taken.
func (s memberSet) add(def []string, r rendered) []string {
	if len(r.lines) == 0 || r.name == "" || s[r.name] {
		return def
	}
	s[r.name] = true
	return append(def, r.lines...)
}

// Class renders a class, interface, record or union. Members of every
// superclass and implemented interface are flattened into the body.
func (e *Emitter) Class(d *gir.TypeDecl) []string {
	if d == nil || !d.Introspectable.Value(true) || d.GTypeStructFor != "" {
		return nil
	}

	syms := e.ctx.Symbols
	chain := e.ctx.Ancestors.Chain(d, syms)
	levels := e.ctx.Ancestors.Levels(d, syms)
	derived := e.ctx.Ancestors.DerivesFromRoot(d, syms)

	var def []string
	if derived {
		def = append(def, e.constructProps(d, chain)...)
	}
	def = append(def, "export class "+d.Name+" {")

	members := make(memberSet)
	var notify []string

	for _, cls := range levels {
		if len(cls.Properties) == 0 {
			continue
		}
		def = append(def, "    /* Properties of "+cls.FullName()+" */")
		for _, p := range cls.Properties {
			line, label, ok := e.instanceProperty(p)
			if !ok || members[label] {
				continue
			}
			members[label] = true
			notify = append(notify, p.Name)
			def = append(def, line)
		}
	}

	for _, cls := range levels {
		if len(cls.Fields) == 0 {
			continue
		}
		def = append(def, "    /* Fields of "+cls.FullName()+" */")
		for _, f := range cls.Fields {
			desc, name, ok := e.variable(f, false, false)
			if !ok || members[name] {
				continue
			}
			members[name] = true
			def = append(def, "    "+desc)
		}
	}

	for _, cls := range levels {
		if len(cls.Methods) == 0 {
			continue
		}
		def = append(def, "    /* Methods of "+cls.FullName()+" */")
		for _, f := range cls.Methods {
			def = members.add(def, e.function(f, "    ", "", nil, false))
		}
	}

	for _, cls := range levels {
		if len(cls.VirtualMethods) == 0 {
			continue
		}
		def = append(def, "    /* Virtual methods of "+cls.FullName()+" */")
		for _, f := range cls.VirtualMethods {
			def = members.add(def, e.function(f, "    ", "vfunc_", nil, true))
		}
	}

	signals := make(map[string]bool)
	for _, cls := range levels {
		if len(cls.Signals) == 0 {
			continue
		}
		def = append(def, "    /* Signals of "+cls.FullName()+" */")
		for _, s := range cls.Signals {
			if signals[s.Name] {
				continue
			}
			if line, ok := e.signal(s, d.Name); ok {
				signals[s.Name] = true
				def = append(def, line)
			}
		}
	}

	if derived {
		pspec := "GObject.ParamSpec"
		if e.mod.Name() == RootModule {
			pspec = "ParamSpec"
		}
		for _, p := range notify {
			def = append(def, `    connect(sigName: "notify::`+p+`", callback: ((obj: `+d.Name+`, pspec: `+pspec+`) => void)): void`)
		}
		def = append(def, "    connect(sigName: string, callback: any): void")
	}

	def = append(def, "    static name: string")
	def = append(def, e.constructors(d, derived)...)
	return append(def, "}")
}

// constructors renders the constructor forms and the static functions of d.
func (e *Emitter) constructors(d *gir.TypeDecl, derived bool) []string {
	var def []string
	statics := make(memberSet)

	if derived {
		def = append(def, "    constructor (config?: "+d.Name+"_ConstructProps)")
	} else {
		for _, f := range d.Constructors {
			r := e.constructor(d, f)
			if r.name != "new" || statics["new"] {
				continue
			}
			def = statics.add(def, r)
			if r.sig != nil {
				def = append(def, "    constructor ("+r.sig.ParamList()+")")
			}
		}
	}

	for _, f := range d.Constructors {
		def = statics.add(def, e.constructor(d, f))
	}
	for _, f := range d.Functions {
		def = statics.add(def, e.function(f, "    static ", "", nil, false))
	}
	return def
}

// constructor renders a constructing function. Its return type is forced
// to the owning class when it declares something else, such as a parent
// class, or nothing at all.
func (e *Emitter) constructor(d *gir.TypeDecl, f *gir.Function) rendered {
	var ret *gir.Variable
	if f != nil {
		first := ""
		if f.ReturnValue != nil {
			first, _, _ = strings.Cut(e.types.Map(f.ReturnValue).Expr, " ")
		}
		if first != d.Name {
			ret = gir.NewReturnValue(d.Name, d.Module())
		}
	}
	return e.function(f, "    static ", "", ret, false)
}

// constructProps renders the interface accepted by the constructor of a
// GObject-derived class.
func (e *Emitter) constructProps(d *gir.TypeDecl, chain []*gir.TypeDecl) []string {
	head := "export interface " + d.Name + "_ConstructProps {"
	if len(chain) > 1 {
		head = "export interface " + d.Name + "_ConstructProps extends " + e.localName(chain[1].FullName()) + "_ConstructProps {"
	}
	def := []string{head}
	seen := make(map[string]bool)
	for _, p := range d.Properties {
		line, label, ok := e.constructProperty(p)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		def = append(def, line)
	}
	return append(def, "}")
}

func (e *Emitter) constructProperty(p *gir.Variable) (line, label string, ok bool) {
	if !p.Writable.Set() && !p.Construct.Set() && !p.ConstructOnly.Set() {
		return "", "", false
	}
	desc, label, ok := e.variable(p, true, true)
	if !ok {
		return "", "", false
	}
	return "    " + desc, label, true
}

func (e *Emitter) instanceProperty(p *gir.Variable) (line, label string, ok bool) {
	if !p.Readable.Value(true) {
		return "", "", false
	}
	desc, label, ok := e.variable(p, false, true)
	if !ok {
		return "", "", false
	}
	if !p.Writable.Set() || p.ConstructOnly.Set() {
		return "    readonly " + desc, label, true
	}
	return "    " + desc, label, true
}

// signal renders a typed connect overload for s on the class named owner.
func (e *Emitter) signal(s *gir.Function, owner string) (string, bool) {
	if s == nil || s.Name == "" || !s.Introspectable.Value(true) {
		return "", false
	}
	sig := e.types.Classify(s, nil)
	params := "obj: " + owner
	if list := sig.ParamList(); list != "" {
		params += ", " + list
	}
	return `    connect(sigName: "` + s.Name + `", callback: ((` + params + `) => ` + sig.Result + `)): void`, true
}
