package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	modulesVerbose bool
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List loaded modules",
	Long:  `List every loaded module with its version and dependencies.`,
	Args:  cobra.NoArgs,
	RunE:  runModules,
}

func init() {
	modulesCmd.Flags().BoolVarP(&modulesVerbose, "transitive", "t", false, "show transitive dependencies")
}

func runModules(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary()
	if err != nil {
		return err
	}

	closures := make(map[string][]string)
	if modulesVerbose {
		closures = newGenerator(lib).Dependencies().Closures()
	}

	fmt.Fprintf(output, "%-24s %-8s %s\n", "NAME", "VERSION", "DEPENDENCIES")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 80))

	for _, m := range lib.Modules() {
		fmt.Fprintf(output, "%-24s %-8s %s\n", m.Name(), m.Version(), strings.Join(m.Dependencies(), ", "))
		if modulesVerbose {
			fmt.Fprintf(output, "      Transitive: %s\n", strings.Join(closures[m.Name()], ", "))
		}
	}

	fmt.Fprintf(output, "\nTotal: %d modules\n", lib.Len())
	return nil
}
