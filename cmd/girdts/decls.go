package main

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/spf13/cobra"
)

var (
	declsKind  string
	declsLimit int
)

var declsCmd = &cobra.Command{
	Use:   "decls",
	Short: "List declarations of the loaded modules",
	Long: `List the registered declarations of every loaded module.

Use --kind to filter by category (alias, bitfield, callback, class,
constant, enumeration, function, interface, record, union).`,
	Args: cobra.NoArgs,
	RunE: runDecls,
}

func init() {
	declsCmd.Flags().StringVarP(&declsKind, "kind", "k", "", "filter by declaration kind")
	declsCmd.Flags().IntVarP(&declsLimit, "limit", "n", 0, "limit number of declarations shown (0 = unlimited)")
}

func runDecls(cmd *cobra.Command, args []string) error {
	kindFilter := gir.DeclUnknown
	if declsKind != "" {
		k, ok := gir.ParseDeclKind(declsKind)
		if !ok {
			return fmt.Errorf("unknown declaration kind: %s", declsKind)
		}
		kindFilter = k
	}

	g, err := openGenerator()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%-12s %s\n", "KIND", "NAME")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 80))

	count := 0
	for name, node := range g.Symbols().All() {
		kind, _ := g.Symbols().Kind(name)
		if kindFilter != gir.DeclUnknown && kind != kindFilter {
			continue
		}
		fmt.Fprintf(output, "%-12s %s\n", kind, node.FullName())
		count++
		if declsLimit > 0 && count >= declsLimit {
			fmt.Fprintf(output, "... (limited to %d declarations)\n", declsLimit)
			break
		}
	}

	fmt.Fprintf(output, "\nTotal: %d declarations shown\n", count)
	return nil
}
