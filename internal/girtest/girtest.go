// Package girtest builds modules from inline GIR documents for tests.
package girtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/skdltmxn/gir-dts/gir"
)

// Repository wraps namespace content in a repository document. includes
// are "Name-Version" keys.
func Repository(name, version string, includes []string, body string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>
<repository version="1.2"
            xmlns="http://www.gtk.org/introspection/core/1.0"
            xmlns:c="http://www.gtk.org/introspection/c/1.0"
            xmlns:glib="http://www.gtk.org/introspection/glib/1.0">
`)
	for _, inc := range includes {
		n, v, _ := strings.Cut(inc, "-")
		fmt.Fprintf(&b, "  <include name=%q version=%q/>\n", n, v)
	}
	fmt.Fprintf(&b, "  <namespace name=%q version=%q>\n", name, version)
	b.WriteString(body)
	b.WriteString("\n  </namespace>\n</repository>\n")
	return b.String()
}

// Module parses a repository document.
func Module(t testing.TB, src string) *gir.Module {
	t.Helper()
	m, err := gir.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("gir.Parse() error = %v", err)
	}
	return m
}

// Library parses every document into one library, in order.
func Library(t testing.TB, srcs ...string) *gir.Library {
	t.Helper()
	modules := make([]*gir.Module, len(srcs))
	for i, src := range srcs {
		modules[i] = Module(t, src)
	}
	return gir.NewLibrary(modules...)
}

// GObject is a minimal GObject-2.0 repository.
var GObject = Repository("GObject", "2.0", nil, `
    <class name="Object" c:type="GObject" glib:type-name="GObject">
      <method name="notify" c:identifier="g_object_notify">
        <return-value transfer-ownership="none"><type name="none" c:type="void"/></return-value>
        <parameters>
          <instance-parameter name="object"><type name="Object" c:type="GObject*"/></instance-parameter>
          <parameter name="property_name"><type name="utf8" c:type="const gchar*"/></parameter>
        </parameters>
      </method>
      <glib:signal name="notify">
        <return-value transfer-ownership="none"><type name="none" c:type="void"/></return-value>
        <parameters>
          <parameter name="pspec"><type name="ParamSpec"/></parameter>
        </parameters>
      </glib:signal>
    </class>
    <class name="InitiallyUnowned" parent="Object" c:type="GInitiallyUnowned"/>
    <class name="ParamSpec" c:type="GParamSpec"/>
    <record name="ObjectClass" c:type="GObjectClass" glib:is-gtype-struct-for="Object"/>
    <record name="Value" c:type="GValue"/>`)
