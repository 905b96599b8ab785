package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skdltmxn/gir-dts/dts"
	"github.com/spf13/cobra"
)

var (
	generateOutDir string
	generateJobs   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript declarations",
	Long: `Generate one declaration unit per loaded module.

With --outdir every unit is written to <Module>.d.ts together with its
<Module>.js runtime shim and the GJS support files (Gjs.d.ts, Gjs.js,
print.d.ts, index.d.ts, index.js, cast.ts). Without it the units are
written to the output.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutDir, "outdir", "O", "", "directory to write the generated files to")
	generateCmd.Flags().IntVarP(&generateJobs, "jobs", "j", 0, "modules generated in parallel (0 = number of CPUs)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg.Override(nil, nil, generateOutDir, generateJobs)

	g, err := openGenerator()
	if err != nil {
		return err
	}

	progressf("Types loaded, generating .d.ts...\n")
	units, err := g.GenerateAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to generate declarations: %w", err)
	}

	if cfg.OutDir == "" {
		for _, u := range units {
			progressf(" - %s ...\n", u.Module.Key())
			fmt.Fprintln(output, u.Text())
		}
		return nil
	}

	if err := writeUnits(cfg.OutDir, g, units); err != nil {
		return err
	}
	progressf("Done.\n")
	return nil
}

func writeUnits(dir string, g *dts.Generator, units []*dts.Unit) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, u := range units {
		progressf(" - %s ...\n", u.Module.Key())
		if err := writeFile(dir, u.FileName(), u.Text()); err != nil {
			return err
		}
		if err := writeFile(dir, u.ShimFileName(), u.Shim()); err != nil {
			return err
		}
	}

	for _, a := range g.Artifacts() {
		if err := writeFile(dir, a.Name, a.Content); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name, content string) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
