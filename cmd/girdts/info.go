package main

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display statistics about the loaded modules",
	Long:  `Display declaration counts per module and category, and the size of the global tables.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

var infoKinds = []gir.DeclKind{
	gir.DeclClass,
	gir.DeclInterface,
	gir.DeclRecord,
	gir.DeclUnion,
	gir.DeclEnumeration,
	gir.DeclBitfield,
	gir.DeclFunction,
	gir.DeclCallback,
	gir.DeclConstant,
	gir.DeclAlias,
}

func runInfo(cmd *cobra.Command, args []string) error {
	g, err := openGenerator()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-20s", "MODULE")
	for _, k := range infoKinds {
		fmt.Fprintf(output, " %6.6s", k)
	}
	fmt.Fprintln(output)
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 20+7*len(infoKinds)))

	for _, m := range g.Library().Modules() {
		fmt.Fprintf(output, "%-20s", m.Key())
		for _, k := range infoKinds {
			fmt.Fprintf(output, " %6d", m.Count(k))
		}
		fmt.Fprintln(output)
	}

	fmt.Fprintln(output)
	fmt.Fprintf(output, "Modules: %d\n", g.Library().Len())
	fmt.Fprintf(output, "Symbols: %d\n", g.Symbols().Len())
	if dups := g.Symbols().Duplicates(); len(dups) > 0 {
		fmt.Fprintf(output, "Duplicate Symbols: %d\n", len(dups))
	}
	fmt.Fprintf(output, "Classes with Ancestors: %d\n", g.Ancestors().Len())
	return nil
}
