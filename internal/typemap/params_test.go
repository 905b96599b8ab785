package typemap

import (
	"testing"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/skdltmxn/gir-dts/internal/girtest"
)

var classifySource = girtest.Repository("Gio", "2.0", nil, `
    <function name="read_bytes">
      <return-value><type name="gboolean"/></return-value>
      <parameters>
        <parameter name="data"><array length="1"><type name="utf8"/></array></parameter>
        <parameter name="length"><type name="gsize"/></parameter>
      </parameters>
    </function>
    <function name="list_names">
      <return-value><array length="0"><type name="utf8"/></array></return-value>
      <parameters>
        <parameter name="n_names" direction="out"><type name="guint"/></parameter>
      </parameters>
    </function>
    <function name="watch">
      <return-value><type name="guint"/></return-value>
      <parameters>
        <parameter name="name"><type name="utf8"/></parameter>
        <parameter name="callback" closure="2" destroy="3"><type name="gpointer"/></parameter>
        <parameter name="user_data"><type name="gpointer"/></parameter>
        <parameter name="notify"><type name="gpointer"/></parameter>
      </parameters>
    </function>
    <function name="optional_first">
      <return-value><type name="none"/></return-value>
      <parameters>
        <parameter name="a" allow-none="1"><type name="utf8"/></parameter>
        <parameter name="b"><type name="utf8"/></parameter>
      </parameters>
    </function>
    <function name="optional_last">
      <return-value><type name="none"/></return-value>
      <parameters>
        <parameter name="a"><type name="utf8"/></parameter>
        <parameter name="b" allow-none="1"><type name="utf8"/></parameter>
        <parameter name="c" allow-none="1"><type name="utf8"/></parameter>
      </parameters>
    </function>
    <function name="one_out">
      <return-value><type name="none"/></return-value>
      <parameters>
        <parameter name="value" direction="out"><type name="gint"/></parameter>
      </parameters>
    </function>
    <function name="return_and_out">
      <return-value><type name="gboolean"/></return-value>
      <parameters>
        <parameter name="key"><type name="utf8"/></parameter>
        <parameter name="value" direction="out"><type name="gint"/></parameter>
      </parameters>
    </function>
    <function name="two_outs">
      <return-value><type name="none"/></return-value>
      <parameters>
        <parameter name="x" direction="out"><type name="gint"/></parameter>
        <parameter name="y" direction="out"><type name="gint"/></parameter>
      </parameters>
    </function>
    <function name="reserved">
      <parameters>
        <parameter name="in"><type name="gint"/></parameter>
        <parameter name="child-name"><type name="utf8"/></parameter>
        <parameter><type name="gint"/></parameter>
      </parameters>
    </function>
    <function name="bad_index">
      <return-value><array length="9"><type name="utf8"/></array></return-value>
      <parameters>
        <parameter name="a" closure="-1"><type name="gint"/></parameter>
      </parameters>
    </function>`)

func TestClassify(t *testing.T) {
	syms, lib := setup(t, classifySource)
	gio, _ := lib.ByName("Gio")
	m := New(syms, "Gio", nil)

	tests := []struct {
		fn     string
		params string
		result string
		hidden []int
	}{
		{"read_bytes", "data: string[]", "boolean", []int{1}},
		{"list_names", "", "string[]", []int{0}},
		{"watch", "name: string, callback: object", "number", []int{2, 3}},
		{"optional_first", "a: string | null, b: string", "void", nil},
		{"optional_last", "a: string, b?: string | null, c?: string | null", "void", nil},
		{"one_out", "", "number", nil},
		{"return_and_out", "key: string", "[ /* returnType */ boolean, /* value */ number ]", nil},
		{"two_outs", "", "[ /* x */ number, /* y */ number ]", nil},
		{"reserved", "in_: number, child_name: string, _: number", "void", nil},
		{"bad_index", "a: number", "string[]", nil},
	}

	funcs := make(map[string]*gir.Function)
	for _, f := range gio.Namespace().Functions {
		funcs[f.Name] = f
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			f := funcs[tt.fn]
			if f == nil {
				t.Fatalf("fixture lacks %s", tt.fn)
			}
			sig := m.Classify(f, nil)
			if got := sig.ParamList(); got != tt.params {
				t.Errorf("ParamList() = %q, want %q", got, tt.params)
			}
			if sig.Result != tt.result {
				t.Errorf("Result = %q, want %q", sig.Result, tt.result)
			}
			if len(sig.Hidden) != len(tt.hidden) {
				t.Errorf("Hidden = %v, want %v", sig.Hidden, tt.hidden)
			}
			for _, i := range tt.hidden {
				if !sig.Hidden[i] {
					t.Errorf("parameter %d not hidden", i)
				}
			}
		})
	}
}

func TestClassifyReturnOverride(t *testing.T) {
	syms, lib := setup(t, classifySource)
	gio, _ := lib.ByName("Gio")
	m := New(syms, "Gio", nil)

	f := gio.Namespace().Functions[0]
	sig := m.Classify(f, gir.NewReturnValue("utf8", gio))
	if sig.Result != "string" {
		t.Errorf("Result = %q, want string", sig.Result)
	}
	if sig.Return.Expr != "string" {
		t.Errorf("Return = %q, want string", sig.Return.Expr)
	}
}

func TestClassifyOuts(t *testing.T) {
	syms, lib := setup(t, classifySource)
	gio, _ := lib.ByName("Gio")
	m := New(syms, "Gio", nil)

	var f *gir.Function
	for _, fn := range gio.Namespace().Functions {
		if fn.Name == "return_and_out" {
			f = fn
		}
	}
	sig := m.Classify(f, nil)
	if len(sig.Params) != 1 || len(sig.Outs) != 1 {
		t.Fatalf("Params = %v, Outs = %v", sig.Params, sig.Outs)
	}
	if out := sig.Outs[0]; out.Name != "value" || out.Index != 1 || out.Type.Expr != "number" {
		t.Errorf("Outs[0] = %+v", out)
	}
}
