package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/skdltmxn/gir-dts/gir"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
gir-dirs = ["/opt/gir", "/usr/share/gir-1.0"]
modules  = ["Gtk-3.0", "WebKit2-4.0"]
outdir   = "out"
jobs     = 4

[patches]
"Atk.Object.get_name" = ["/* clash */", "get_name(): string | null"]
"Gtk.MenuItem.activate" = []
"Foo.Bar.baz" = ["/* baz */"]
`)

	cfg, err := ParseConfig(data, "girdts.toml")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !slices.Equal(cfg.GirDirs, []string{"/opt/gir", "/usr/share/gir-1.0"}) {
		t.Errorf("GirDirs = %v", cfg.GirDirs)
	}
	if !slices.Equal(cfg.Modules, []string{"Gtk-3.0", "WebKit2-4.0"}) {
		t.Errorf("Modules = %v", cfg.Modules)
	}
	if cfg.OutDir != "out" || cfg.Jobs != 4 {
		t.Errorf("OutDir = %q, Jobs = %d", cfg.OutDir, cfg.Jobs)
	}

	patches := cfg.PatchTable()
	if got := patches["Atk.Object.get_name"]; !slices.Equal(got, []string{"/* clash */", "get_name(): string | null"}) {
		t.Errorf("overridden patch = %v", got)
	}
	if _, ok := patches["Gtk.MenuItem.activate"]; ok {
		t.Error("empty patch entry should remove the built-in one")
	}
	if got := patches["Foo.Bar.baz"]; !slices.Equal(got, []string{"/* baz */"}) {
		t.Errorf("added patch = %v", got)
	}
	if _, ok := patches["WebKit.WebView.get_settings"]; !ok {
		t.Error("untouched built-in patch missing")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, "empty")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if !slices.Equal(cfg.GirDirs, []string{gir.DefaultDir}) {
		t.Errorf("GirDirs = %v, want default", cfg.GirDirs)
	}
	if len(cfg.PatchTable()) != 7 {
		t.Errorf("PatchTable() has %d entries, want the 7 built-in ones", len(cfg.PatchTable()))
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `modules = [`},
		{"type", `jobs = "four"`},
		{"negative jobs", `jobs = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data), "bad.toml"); err == nil {
				t.Error("ParseConfig() error = nil")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.toml"), false)
	if err != nil {
		t.Fatalf("LoadConfig() of optional missing file error = %v", err)
	}
	if len(cfg.GirDirs) != 1 {
		t.Errorf("GirDirs = %v", cfg.GirDirs)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml"), true); err == nil {
		t.Error("LoadConfig() of required missing file error = nil")
	}

	path := filepath.Join(dir, "girdts.toml")
	if err := os.WriteFile(path, []byte(`modules = ["GLib-2.0"]`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path, true)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !slices.Equal(cfg.Modules, []string{"GLib-2.0"}) {
		t.Errorf("Modules = %v", cfg.Modules)
	}
}

func TestOverride(t *testing.T) {
	cfg := &Config{GirDirs: []string{"/a"}, Modules: []string{"A-1.0"}, OutDir: "x", Jobs: 2}

	cfg.Override(nil, nil, "", 0)
	if cfg.GirDirs[0] != "/a" || cfg.Modules[0] != "A-1.0" || cfg.OutDir != "x" || cfg.Jobs != 2 {
		t.Errorf("empty override changed config: %+v", cfg)
	}

	cfg.Override([]string{"/b"}, []string{"B-1.0"}, "y", 8)
	if cfg.GirDirs[0] != "/b" || cfg.Modules[0] != "B-1.0" || cfg.OutDir != "y" || cfg.Jobs != 8 {
		t.Errorf("override not applied: %+v", cfg)
	}
}
