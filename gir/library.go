package gir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tliron/commonlog"
)

// DefaultDir is where distributions install .gir files.
const DefaultDir = "/usr/share/gir-1.0"

// Library is the set of modules loaded for one run. It is complete once
// Load returns and is not modified afterwards.
type Library struct {
	modules []*Module
	byKey   map[string]*Module
}

// NewLibrary builds a library from already registered modules, in order.
func NewLibrary(modules ...*Module) *Library {
	lib := &Library{byKey: make(map[string]*Module)}
	for _, m := range modules {
		lib.add(m)
	}
	return lib
}

func (l *Library) add(m *Module) {
	if _, ok := l.byKey[m.Key()]; !ok {
		l.modules = append(l.modules, m)
	}
	l.byKey[m.Key()] = m
}

// Modules returns the modules in load order.
func (l *Library) Modules() []*Module {
	return slices.Clone(l.modules)
}

// Module returns a module by "Name-Version" key.
func (l *Library) Module(key string) (*Module, bool) {
	m, ok := l.byKey[key]
	return m, ok
}

// ByName returns the first loaded module with the given namespace name.
func (l *Library) ByName(name string) (*Module, bool) {
	for _, m := range l.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Len returns the number of loaded modules.
func (l *Library) Len() int { return len(l.modules) }

// LoadOptions configures Load.
type LoadOptions struct {
	// Dirs are searched in order for "<Name-Version>.gir".
	Dirs []string

	// Modules are the keys to load, e.g. "Gtk-3.0". Their includes are
	// loaded too.
	Modules []string

	// Progress, if set, is called before each file is parsed.
	Progress func(key, path string)

	// FS, if set, replaces the host file system. Dirs are then paths
	// inside it.
	FS fs.FS
}

// Load parses the requested modules and everything they include.
// Any module that cannot be found or parsed aborts the load.
func Load(opts LoadOptions) (*Library, error) {
	if len(opts.Modules) == 0 {
		return nil, ErrNoModules
	}
	dirs := opts.Dirs
	if len(dirs) == 0 {
		dirs = []string{DefaultDir}
	}

	log := commonlog.GetLogger("girdts.load")
	lib := NewLibrary()
	queue := slices.Clone(opts.Modules)

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if _, ok := lib.byKey[key]; ok {
			continue
		}

		path, err := findModule(opts.FS, dirs, key)
		if err != nil {
			return nil, &LoadError{Module: key, Err: err}
		}
		if opts.Progress != nil {
			opts.Progress(key, path)
		}

		m, err := parseFile(opts.FS, path)
		if err != nil {
			return nil, &LoadError{Module: key, Path: path, Err: err}
		}
		if m.Key() != key {
			log.Warningf("%s declares namespace %s", path, m.Key())
		}
		lib.add(m)
		lib.byKey[key] = m

		for _, dep := range m.Dependencies() {
			if _, ok := lib.byKey[dep]; ok || slices.Contains(queue, dep) {
				continue
			}
			queue = append([]string{dep}, queue...)
		}
	}

	log.Infof("loaded %d modules", len(lib.modules))
	return lib, nil
}

func findModule(fsys fs.FS, dirs []string, key string) (string, error) {
	name := key + ".gir"
	for _, dir := range dirs {
		var path string
		var err error
		if fsys != nil {
			path = strings.TrimPrefix(filepath.ToSlash(filepath.Join(dir, name)), "/")
			_, err = fs.Stat(fsys, path)
		} else {
			path = filepath.Join(dir, name)
			_, err = os.Stat(path)
		}
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s not in %s", ErrModuleNotFound, name, strings.Join(dirs, ", "))
}

func parseFile(fsys fs.FS, path string) (*Module, error) {
	var f fs.File
	var err error
	if fsys != nil {
		f, err = fsys.Open(path)
	} else {
		f, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
