package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/stlkit/pkg/stl"
	"github.com/spf13/cobra"
)

var compareIgnoreName bool

var compareCmd = &cobra.Command{
	Use:   "compare [a] [b]",
	Short: "Check whether two STL files hold the same facets",
	Long: `Compare two documents facet by facet. Facet i of the first file is only
compared with facet i of the second, so the same facets in a different order
are reported as different. The exit status is 1 when the documents differ.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&compareIgnoreName, "ignore-name", false, "Ignore the solid names; binary files have none")
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	b, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if compareIgnoreName {
		b.doc.Name = a.doc.Name
	}
	if a.doc.Equal(b.doc) {
		fmt.Fprintln(out, "Documents are equal")
		return nil
	}

	if a.doc.Name != b.doc.Name {
		fmt.Fprintf(out, "Names differ: %q != %q\n", a.doc.Name, b.doc.Name)
	}
	if a.doc.Len() != b.doc.Len() {
		fmt.Fprintf(out, "Facet counts differ: %d != %d\n", a.doc.Len(), b.doc.Len())
	}
	for i, n := 0, min(a.doc.Len(), b.doc.Len()); i < n; i++ {
		if !a.doc.Facets[i].Equal(b.doc.Facets[i]) {
			fmt.Fprintf(out, "First differing facet: #%d\n", i)
			fmt.Fprintf(out, "  %s: %s\n", args[0], describeFacet(a.doc.Facets[i]))
			fmt.Fprintf(out, "  %s: %s\n", args[1], describeFacet(b.doc.Facets[i]))
			break
		}
	}
	return errDiffer
}

func describeFacet(f stl.Facet) string {
	parts := []string{f.String()}
	for _, v := range f.Vertices {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, ", ")
}
