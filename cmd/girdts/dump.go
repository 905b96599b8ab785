package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skdltmxn/gir-dts/dts"
	"github.com/skdltmxn/gir-dts/gir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dumpFormat string
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the loaded library",
	Long: `Dump a summary of every loaded module and the finalized ancestor
table in structured format.

Supported formats:
  - text: Human-readable text (default)
  - json: JSON format
  - yaml: YAML format`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "output format (text, json, yaml)")
}

type LibraryDump struct {
	Modules   []ModuleDump        `json:"modules" yaml:"modules"`
	Ancestors map[string][]string `json:"ancestors" yaml:"ancestors"`
	Symbols   int                 `json:"symbols" yaml:"symbols"`
}

type ModuleDump struct {
	Name         string         `json:"name" yaml:"name"`
	Version      string         `json:"version" yaml:"version"`
	Dependencies []string       `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Transitive   []string       `json:"transitive,omitempty" yaml:"transitive,omitempty"`
	Counts       map[string]int `json:"counts" yaml:"counts"`
}

func runDump(cmd *cobra.Command, args []string) error {
	switch dumpFormat {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown format: %s", dumpFormat)
	}

	g, err := openGenerator()
	if err != nil {
		return err
	}
	dump := buildDump(g)

	switch dumpFormat {
	case "json":
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dump)
	case "yaml":
		encoder := yaml.NewEncoder(output)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(dump)
	default:
		return dumpText(g, dump)
	}
}

func buildDump(g *dts.Generator) *LibraryDump {
	closures := g.Dependencies().Closures()
	dump := &LibraryDump{
		Ancestors: g.Ancestors().Map(),
		Symbols:   g.Symbols().Len(),
	}
	for _, m := range g.Library().Modules() {
		dump.Modules = append(dump.Modules, ModuleDump{
			Name:         m.Name(),
			Version:      m.Version(),
			Dependencies: m.Dependencies(),
			Transitive:   closures[m.Name()],
			Counts:       moduleCounts(m),
		})
	}
	return dump
}

func moduleCounts(m *gir.Module) map[string]int {
	counts := make(map[string]int)
	for k := gir.DeclAlias; k <= gir.DeclUnion; k++ {
		if n := m.Count(k); n > 0 {
			counts[k.String()] = n
		}
	}
	return counts
}

func dumpText(g *dts.Generator, dump *LibraryDump) error {
	fmt.Fprintln(output, "=== Modules ===")
	for _, m := range dump.Modules {
		fmt.Fprintf(output, "%s-%s\n", m.Name, m.Version)
		if len(m.Dependencies) > 0 {
			fmt.Fprintf(output, "  Includes: %s\n", strings.Join(m.Dependencies, ", "))
		}
		if len(m.Transitive) > 0 {
			fmt.Fprintf(output, "  Imports: %s\n", strings.Join(m.Transitive, ", "))
		}
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "=== Ancestors ===")
	for _, name := range g.Ancestors().Names() {
		fmt.Fprintf(output, "%s: %s\n", name, strings.Join(dump.Ancestors[name], ", "))
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Total: %d modules, %d symbols\n", len(dump.Modules), dump.Symbols)
	return nil
}
