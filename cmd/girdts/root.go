package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/skdltmxn/gir-dts/dts"
	"github.com/skdltmxn/gir-dts/gir"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	outputFile string
	output     io.Writer

	configFile string
	girDirs    []string
	moduleKeys []string
	verbosity  int
	progress   bool

	cfg *Config
)

var rootCmd = &cobra.Command{
	Use:   "girdts",
	Short: "TypeScript declaration generator for GObject-Introspection",
	Long: `girdts reads GObject-Introspection repositories (.gir files) and
generates TypeScript declaration files for the GJS runtime.

Requested modules are loaded together with every repository they include,
then one <Module>.d.ts unit is generated per loaded module.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		commonlog.Configure(verbosity, nil)

		path, required := configFile, true
		if path == "" {
			path, required = defaultConfigFile, false
		}
		var err error
		if cfg, err = LoadConfig(path, required); err != nil {
			return err
		}
		cfg.Override(girDirs, moduleKeys, "", 0)

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./"+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringArrayVarP(&girDirs, "gir-dir", "g", nil, "directory searched for .gir files (repeatable, default "+gir.DefaultDir+")")
	rootCmd.PersistentFlags().StringArrayVarP(&moduleKeys, "module", "m", nil, "module to load, e.g. Gtk-3.0 (repeatable)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&progress, "progress", false, "print progress to stderr even when it is not a terminal")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(declsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(infoCmd)
}

// showProgress reports whether progress lines should be printed.
func showProgress() bool {
	fd := os.Stderr.Fd()
	return progress || isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func progressf(format string, args ...any) {
	if showProgress() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// loadLibrary loads the configured modules and their includes.
func loadLibrary() (*gir.Library, error) {
	lib, err := gir.Load(gir.LoadOptions{
		Dirs:    cfg.GirDirs,
		Modules: cfg.Modules,
		Progress: func(key, path string) {
			progressf("Parsing %s...\n", path)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load modules: %w", err)
	}
	return lib, nil
}

// openGenerator loads the library and wraps it in a generator configured
// from cfg.
func openGenerator() (*dts.Generator, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}
	return newGenerator(lib), nil
}

func newGenerator(lib *gir.Library) *dts.Generator {
	return dts.New(lib, dts.Options{
		Patches: cfg.PatchTable(),
		Jobs:    cfg.Jobs,
	})
}
