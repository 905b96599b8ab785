package main

import (
	"fmt"
	"strings"

	"github.com/skdltmxn/gir-dts/gir"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Look up a declaration by fully-qualified name",
	Long: `Look up a registered declaration by its fully-qualified name.

Examples:
  lookup Gtk.Button      (class, with its ancestors)
  lookup GLib.MAJOR_VERSION
  lookup Gtk.Orientation`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	name := args[0]

	g, err := openGenerator()
	if err != nil {
		return err
	}

	node, ok := g.Symbols().Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", gir.ErrSymbolNotFound, name)
	}
	kind, _ := g.Symbols().Kind(name)

	fmt.Fprintf(output, "Name: %s\n", node.FullName())
	fmt.Fprintf(output, "Kind: %s\n", kind)
	if m := node.Module(); m != nil {
		fmt.Fprintf(output, "Module: %s\n", m.Key())
	}

	switch n := node.(type) {
	case *gir.TypeDecl:
		printTypeDeclDetail(n)
		if ancestors := g.Ancestors().Ancestors(name); len(ancestors) > 0 {
			fmt.Fprintf(output, "Ancestors: %s\n", strings.Join(ancestors, ", "))
		}
	case *gir.Function:
		printFunctionDetail(n)
	case *gir.Enumeration:
		fmt.Fprintf(output, "C Type: %s\n", n.CType)
		fmt.Fprintf(output, "Members: %d\n", len(n.Members))
		for _, m := range n.Members {
			fmt.Fprintf(output, "  %s = %s\n", m.Name, m.Value)
		}
	case *gir.Variable:
		fmt.Fprintf(output, "Type: %s\n", typeDesc(n))
		if n.Value != "" {
			fmt.Fprintf(output, "Value: %s\n", n.Value)
		}
	case *gir.Alias:
		fmt.Fprintf(output, "C Type: %s\n", n.CType)
		fmt.Fprintf(output, "Target: %s\n", typeDesc(n.AsVariable()))
	}
	return nil
}

func printTypeDeclDetail(d *gir.TypeDecl) {
	if d.Parent != "" {
		fmt.Fprintf(output, "Parent: %s\n", d.Parent)
	}
	if len(d.Implements) > 0 {
		fmt.Fprintf(output, "Implements: %s\n", strings.Join(d.Implements, ", "))
	}
	if d.GTypeStructFor != "" {
		fmt.Fprintf(output, "Class struct for: %s\n", d.GTypeStructFor)
	}
	fmt.Fprintf(output, "Constructors: %d\n", len(d.Constructors))
	fmt.Fprintf(output, "Functions: %d\n", len(d.Functions))
	fmt.Fprintf(output, "Methods: %d\n", len(d.Methods))
	fmt.Fprintf(output, "Virtual Methods: %d\n", len(d.VirtualMethods))
	fmt.Fprintf(output, "Signals: %d\n", len(d.Signals))
	fmt.Fprintf(output, "Properties: %d\n", len(d.Properties))
	fmt.Fprintf(output, "Fields: %d\n", len(d.Fields))
}

func printFunctionDetail(f *gir.Function) {
	if f.CIdentifier != "" {
		fmt.Fprintf(output, "C Identifier: %s\n", f.CIdentifier)
	}
	if f.Shadows != "" {
		fmt.Fprintf(output, "Shadows: %s\n", f.Shadows)
	}
	fmt.Fprintf(output, "Returns: %s\n", typeDesc(f.ReturnValue))
	for i, p := range f.Parameters {
		fmt.Fprintf(output, "  [%d] %s: %s (%s)\n", i, p.Name, typeDesc(p), p.Direction)
	}
}

// typeDesc describes the GIR type of v without mapping it.
func typeDesc(v *gir.Variable) string {
	switch {
	case v == nil:
		return "none"
	case v.Array != nil && v.Array.Element != nil:
		return v.Array.Element.Name + "[]"
	case v.Array != nil:
		return "array"
	case v.Type != nil:
		return v.Type.Name
	}
	return "unknown"
}
