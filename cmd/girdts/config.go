package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/skdltmxn/gir-dts/dts"
	"github.com/skdltmxn/gir-dts/gir"
)

// defaultConfigFile is read from the working directory when --config is
// not given. Its absence is not an error.
const defaultConfigFile = "girdts.toml"

// Config is the girdts.toml file.
type Config struct {
	GirDirs []string            `toml:"gir-dirs"`
	Modules []string            `toml:"modules"`
	OutDir  string              `toml:"outdir"`
	Jobs    int                 `toml:"jobs"`
	Patches map[string][]string `toml:"patches"`
}

// LoadConfig reads the config file at path. When required is false a
// missing file yields an empty config.
func LoadConfig(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			cfg := &Config{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes config data. name is used in error messages.
func ParseConfig(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", name, err)
	}
	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("parse error in %s: jobs must not be negative", name)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.GirDirs) == 0 {
		c.GirDirs = []string{gir.DefaultDir}
	}
}

// Override replaces file values with the ones given on the command line.
func (c *Config) Override(girDirs, modules []string, outDir string, jobs int) {
	if len(girDirs) > 0 {
		c.GirDirs = girDirs
	}
	if len(modules) > 0 {
		c.Modules = modules
	}
	if outDir != "" {
		c.OutDir = outDir
	}
	if jobs > 0 {
		c.Jobs = jobs
	}
}

// PatchTable returns the built-in patches overlaid with the configured ones.
func (c *Config) PatchTable() dts.Patches {
	return dts.DefaultPatches().Merge(dts.Patches(c.Patches))
}
