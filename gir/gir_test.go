package gir_test

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/skdltmxn/gir-dts/internal/girtest"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want gir.Flag
	}{
		{"", gir.FlagUnset},
		{"0", gir.FlagFalse},
		{"00", gir.FlagFalse},
		{"1", gir.FlagTrue},
		{"2", gir.FlagTrue},
		{"1abc", gir.FlagTrue},
		{"0abc", gir.FlagFalse},
		{"yes", gir.FlagTrue},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := gir.ParseFlag(tt.in); got != tt.want {
				t.Errorf("ParseFlag(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	if !gir.FlagUnset.Value(true) || gir.FlagUnset.Value(false) {
		t.Error("unset flag should return the default")
	}
	if gir.FlagFalse.Value(true) {
		t.Error("false flag should be false")
	}
	if !gir.FlagTrue.Value(false) {
		t.Error("true flag should be true")
	}
}

func TestParseDeclKind(t *testing.T) {
	for k := gir.DeclAlias; k <= gir.DeclUnion; k++ {
		got, ok := gir.ParseDeclKind(strings.ToUpper(k.String()))
		if !ok || got != k {
			t.Errorf("ParseDeclKind(%q) = %v, %v", k, got, ok)
		}
	}
	if _, ok := gir.ParseDeclKind("struct"); ok {
		t.Error("ParseDeclKind(struct) should fail")
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name, module, want string
	}{
		{"Widget", "Gtk", "Gtk.Widget"},
		{"GObject.Object", "Gtk", "GObject.Object"},
	}
	for _, tt := range tests {
		if got := gir.Qualify(tt.name, tt.module); got != tt.want {
			t.Errorf("Qualify(%q, %q) = %q, want %q", tt.name, tt.module, got, tt.want)
		}
	}

	mod, rest := gir.SplitName("Gtk.Widget.show")
	if mod != "Gtk" || rest != "Widget.show" {
		t.Errorf("SplitName() = %q, %q", mod, rest)
	}
}

const gtkBody = `
    <class name="Widget" parent="GObject.InitiallyUnowned">
      <implements name="Buildable"/>
      <constructor name="new">
        <return-value><type name="Widget"/></return-value>
      </constructor>
      <method name="show">
        <return-value><type name="none"/></return-value>
        <parameters>
          <instance-parameter name="widget"><type name="Widget"/></instance-parameter>
          <parameter name="flag" allow-none="1"><type name="gboolean"/></parameter>
        </parameters>
      </method>
      <property name="visible" writable="1"><type name="gboolean"/></property>
      <glib:signal name="destroy"/>
    </class>
    <interface name="Buildable"/>
    <enumeration name="Orientation" c:type="GtkOrientation">
      <member name="horizontal" value="0" c:identifier="GTK_ORIENTATION_HORIZONTAL" glib:nick="horizontal" glib:name="GTK_ORIENTATION_HORIZONTAL"/>
      <member name="vertical" value="1" glib:name="GTK_ORIENTATION_VERTICAL"/>
    </enumeration>
    <constant name="MAJOR_VERSION" value="3" c:type="GTK_MAJOR_VERSION">
      <type name="gint" c:type="gint"/>
    </constant>
    <function name="init" c:identifier="gtk_init">
      <return-value><type name="none"/></return-value>
      <parameters>
        <parameter name="argv" direction="inout">
          <array length="1" zero-terminated="0" c:type="char***"><type name="utf8" c:type="char*"/></array>
        </parameter>
        <parameter name="argc" direction="inout"><type name="gint"/></parameter>
      </parameters>
    </function>
    <alias name="Allocation" c:type="GtkAllocation"><type name="Gdk.Rectangle"/></alias>`

func TestParseModule(t *testing.T) {
	src := girtest.Repository("Gtk", "3.0", []string{"GObject-2.0", "Gdk-3.0"}, gtkBody)
	m := girtest.Module(t, src)

	if m.Key() != "Gtk-3.0" {
		t.Errorf("Key() = %q, want Gtk-3.0", m.Key())
	}
	if got, want := m.Dependencies(), []string{"Gdk-3.0", "GObject-2.0"}; !slices.Equal(got, want) {
		t.Errorf("Dependencies() = %v, want %v", got, want)
	}
	if got, want := m.DependencyNames(), []string{"Gdk", "GObject"}; !slices.Equal(got, want) {
		t.Errorf("DependencyNames() = %v, want %v", got, want)
	}

	ns := m.Namespace()
	if len(ns.Classes) != 1 || len(ns.Interfaces) != 1 || len(ns.Enumerations) != 1 ||
		len(ns.Constants) != 1 || len(ns.Functions) != 1 || len(ns.Aliases) != 1 {
		t.Fatalf("unexpected namespace shape: %+v", ns)
	}

	w := ns.Classes[0]
	if w.Kind != gir.DeclClass || w.Parent != "GObject.InitiallyUnowned" {
		t.Errorf("Widget = %+v", w)
	}
	if !slices.Equal(w.Implements, []string{"Buildable"}) {
		t.Errorf("Implements = %v", w.Implements)
	}
	if len(w.Signals) != 1 || w.Signals[0].Name != "destroy" {
		t.Errorf("Signals = %v", w.Signals)
	}
	show := w.Methods[0]
	if show.InstanceParameter == nil || show.InstanceParameter.Name != "widget" {
		t.Errorf("instance parameter = %+v", show.InstanceParameter)
	}
	if len(show.Parameters) != 1 || !show.Parameters[0].AllowNone.Set() {
		t.Errorf("show parameters = %+v", show.Parameters)
	}

	en := ns.Enumerations[0]
	if en.Kind != gir.DeclEnumeration || en.CType != "GtkOrientation" {
		t.Errorf("Orientation = %+v", en)
	}
	want := []gir.Member{{Name: "horizontal", Value: "0"}, {Name: "vertical", Value: "1"}}
	if !slices.Equal(en.Members, want) {
		t.Errorf("Members = %v, want %v", en.Members, want)
	}

	if c := ns.Constants[0]; c.Value != "3" || c.Type.CType != "gint" {
		t.Errorf("constant = %+v", c)
	}

	argv := ns.Functions[0].Parameters[0]
	if argv.Array == nil || argv.Array.Length == nil || *argv.Array.Length != 1 {
		t.Fatalf("argv array = %+v", argv.Array)
	}
	if argv.Direction != gir.DirectionInOut || argv.Array.ZeroTerminated != gir.FlagFalse {
		t.Errorf("argv = %+v", argv)
	}
	if argv.Array.Element.Name != "utf8" || argv.Array.Element.CType != "char*" {
		t.Errorf("argv element = %+v", argv.Array.Element)
	}
}

func TestAnnotation(t *testing.T) {
	m := girtest.Module(t, girtest.Repository("Gtk", "3.0", nil, gtkBody))
	ns := m.Namespace()
	w := ns.Classes[0]

	tests := []struct {
		node gir.Node
		want string
	}{
		{w, "Gtk.Widget"},
		{w.Constructors[0], "Gtk.Widget.new"},
		{w.Methods[0], "Gtk.Widget.show"},
		{w.Methods[0].Parameters[0], "Gtk.Widget.show.flag"},
		{w.Methods[0].ReturnValue, ""},
		{w.Properties[0], "Gtk.Widget.visible"},
		{w.Signals[0], "Gtk.Widget.destroy"},
		{ns.Enumerations[0], "Gtk.Orientation"},
		{ns.Constants[0], "Gtk.MAJOR_VERSION"},
		{ns.Functions[0], "Gtk.init"},
		{ns.Functions[0].Parameters[1], "Gtk.init.argc"},
		{ns.Aliases[0], "Gtk.Allocation"},
	}
	for _, tt := range tests {
		if got := tt.node.FullName(); got != tt.want {
			t.Errorf("FullName() = %q, want %q", got, tt.want)
		}
		if tt.node.Module() != m {
			t.Errorf("%s: Module() = %v, want %v", tt.want, tt.node.Module(), m)
		}
	}

	if w.Methods[0].Kind != gir.FuncMethod || w.Constructors[0].Kind != gir.FuncConstructor || w.Signals[0].Kind != gir.FuncSignal {
		t.Error("member function kinds not assigned")
	}
}

func TestDeclsOrder(t *testing.T) {
	m := girtest.Module(t, girtest.Repository("Gtk", "3.0", nil, gtkBody))

	var kinds []gir.DeclKind
	for k := range m.Decls() {
		kinds = append(kinds, k)
	}
	want := []gir.DeclKind{
		gir.DeclClass,
		gir.DeclConstant,
		gir.DeclEnumeration,
		gir.DeclFunction,
		gir.DeclInterface,
		gir.DeclAlias,
	}
	if !slices.Equal(kinds, want) {
		t.Errorf("Decls() kinds = %v, want %v", kinds, want)
	}
	if m.Count(gir.DeclClass) != 1 || m.Count(gir.DeclRecord) != 0 {
		t.Error("Count() mismatch")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := gir.Parse(strings.NewReader(`<repository version="1.2"></repository>`)); !errors.Is(err, gir.ErrNoNamespace) {
		t.Errorf("Parse() without namespace err = %v, want ErrNoNamespace", err)
	}
	if _, err := gir.Parse(strings.NewReader(`<repository><namespace`)); err == nil {
		t.Error("Parse() of truncated document should fail")
	}
}

func TestDefaultVersion(t *testing.T) {
	m := girtest.Module(t, `<repository><namespace name="Foo"/></repository>`)
	if m.Key() != "Foo-0.0" {
		t.Errorf("Key() = %q, want Foo-0.0", m.Key())
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"gir/GObject-2.0.gir": &fstest.MapFile{Data: []byte(girtest.GObject)},
		"gir/GLib-2.0.gir":    &fstest.MapFile{Data: []byte(girtest.Repository("GLib", "2.0", nil, ""))},
		"extra/Gtk-3.0.gir": &fstest.MapFile{Data: []byte(
			girtest.Repository("Gtk", "3.0", []string{"GLib-2.0", "GObject-2.0"}, gtkBody))},
	}

	var parsed []string
	lib, err := gir.Load(gir.LoadOptions{
		FS:      fsys,
		Dirs:    []string{"gir", "extra"},
		Modules: []string{"Gtk-3.0"},
		Progress: func(key, path string) {
			parsed = append(parsed, key)
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Includes are pushed to the front of the queue, most recent first.
	want := []string{"Gtk-3.0", "GLib-2.0", "GObject-2.0"}
	if !slices.Equal(parsed, want) {
		t.Errorf("parse order = %v, want %v", parsed, want)
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
	if _, ok := lib.Module("GObject-2.0"); !ok {
		t.Error("GObject-2.0 not loaded")
	}
	if m, ok := lib.ByName("Gtk"); !ok || m.Version() != "3.0" {
		t.Errorf("ByName(Gtk) = %v, %v", m, ok)
	}
}

func TestLoadSkipsLoadedDependencies(t *testing.T) {
	fsys := fstest.MapFS{
		"GObject-2.0.gir": &fstest.MapFile{Data: []byte(girtest.GObject)},
		"A-1.0.gir":       &fstest.MapFile{Data: []byte(girtest.Repository("A", "1.0", []string{"GObject-2.0"}, ""))},
		"B-1.0.gir":       &fstest.MapFile{Data: []byte(girtest.Repository("B", "1.0", []string{"GObject-2.0", "A-1.0"}, ""))},
	}

	var parsed []string
	lib, err := gir.Load(gir.LoadOptions{
		FS:       fsys,
		Dirs:     []string{"."},
		Modules:  []string{"A-1.0", "B-1.0"},
		Progress: func(key, path string) { parsed = append(parsed, key) },
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := []string{"A-1.0", "GObject-2.0", "B-1.0"}; !slices.Equal(parsed, want) {
		t.Errorf("parse order = %v, want %v", parsed, want)
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := gir.Load(gir.LoadOptions{}); !errors.Is(err, gir.ErrNoModules) {
		t.Errorf("Load() without modules err = %v, want ErrNoModules", err)
	}

	fsys := fstest.MapFS{
		"Gtk-3.0.gir": &fstest.MapFile{Data: []byte(girtest.Repository("Gtk", "3.0", []string{"Missing-1.0"}, ""))},
		"Bad-1.0.gir": &fstest.MapFile{Data: []byte("<repository><namespace")},
	}

	_, err := gir.Load(gir.LoadOptions{FS: fsys, Dirs: []string{"."}, Modules: []string{"Gtk-3.0"}})
	if !errors.Is(err, gir.ErrModuleNotFound) {
		t.Fatalf("Load() err = %v, want ErrModuleNotFound", err)
	}
	var le *gir.LoadError
	if !errors.As(err, &le) || le.Module != "Missing-1.0" {
		t.Errorf("Load() err = %#v, want LoadError for Missing-1.0", err)
	}

	_, err = gir.Load(gir.LoadOptions{FS: fsys, Dirs: []string{"."}, Modules: []string{"Bad-1.0"}})
	if !errors.As(err, &le) || le.Path != "Bad-1.0.gir" {
		t.Errorf("Load() err = %v, want LoadError with path", err)
	}
}
