package deps

import (
	"slices"
	"testing"

	"github.com/skdltmxn/gir-dts/internal/girtest"
)

func TestClosure(t *testing.T) {
	g := Graph{
		"Gtk":     {"Gdk", "Gio"},
		"Gdk":     {"cairo", "GObject"},
		"Gio":     {"GObject"},
		"GObject": {"GLib"},
		"GLib":    nil,
		"cairo":   nil,
	}

	tests := []struct {
		name string
		want []string
	}{
		{"Gtk", []string{"Gdk", "cairo", "GObject", "GLib", "Gio"}},
		{"Gio", []string{"GObject", "GLib"}},
		{"GLib", nil},
		{"Unknown", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Closure(tt.name); !slices.Equal(got, tt.want) {
				t.Errorf("Closure(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClosureExcludesSelfOnCycle(t *testing.T) {
	g := Graph{
		"A": {"B"},
		"B": {"C"},
		"C": {"A", "B"},
	}
	if got, want := g.Closure("A"), []string{"B", "C"}; !slices.Equal(got, want) {
		t.Errorf("Closure(A) = %v, want %v", got, want)
	}

	all := g.Closures()
	if len(all) != 3 || !slices.Equal(all["C"], []string{"A", "B"}) {
		t.Errorf("Closures() = %v", all)
	}
}

func TestFromModules(t *testing.T) {
	lib := girtest.Library(t,
		girtest.Repository("GLib", "2.0", nil, ""),
		girtest.Repository("GObject", "2.0", []string{"GLib-2.0"}, ""),
		girtest.Repository("Gio", "2.0", []string{"GLib-2.0", "GObject-2.0"}, ""),
	)
	g := FromModules(lib.Modules())

	if got, want := g["Gio"], []string{"GObject", "GLib"}; !slices.Equal(got, want) {
		t.Errorf("Gio = %v, want %v", got, want)
	}
	if got, want := g.Closure("Gio"), []string{"GObject", "GLib"}; !slices.Equal(got, want) {
		t.Errorf("Closure(Gio) = %v, want %v", got, want)
	}
}
