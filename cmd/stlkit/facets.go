package main

import (
	"fmt"

	"github.com/philipparndt/stlkit/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	facetCount    int
	facetLargest  bool
	facetSmallest bool
)

var facetsCmd = &cobra.Command{
	Use:     "facets [file]",
	Aliases: []string{"triangles"},
	Short:   "List the facets of an STL file",
	Long:    "Display facets with their area, perimeter and vertex positions, in file order or sorted by area.",
	Args:    cobra.ExactArgs(1),
	RunE:    runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)

	facetsCmd.Flags().IntVarP(&facetCount, "count", "n", 10, "Number of facets to display")
	facetsCmd.Flags().BoolVarP(&facetLargest, "largest", "l", false, "Show largest facets by area")
	facetsCmd.Flags().BoolVarP(&facetSmallest, "smallest", "s", false, "Show smallest facets by area")
	facetsCmd.MarkFlagsMutuallyExclusive("largest", "smallest")
}

func runFacets(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	order := analysis.OrderIndex
	title := fmt.Sprintf("First %d Facets", facetCount)
	if facetLargest {
		order = analysis.OrderLargest
		title = fmt.Sprintf("Top %d Largest Facets", facetCount)
	} else if facetSmallest {
		order = analysis.OrderSmallest
		title = fmt.Sprintf("Top %d Smallest Facets", facetCount)
	}

	facets := analysis.ListFacets(in.doc, order, facetCount)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total facets: %d\n\n", in.doc.Len())

	for _, f := range facets {
		fmt.Fprintf(out, "Facet #%d:\n", f.Index)
		fmt.Fprintf(out, "  Area: %.6f square units\n", f.Area)
		fmt.Fprintf(out, "  Perimeter: %.6f units\n", f.Perimeter)
		fmt.Fprintf(out, "  Normal: %s\n", analysis.FormatVector(f.Triangle.Normal))
		fmt.Fprintf(out, "  Vertices: %s, %s, %s\n\n",
			analysis.FormatVector(f.Triangle.V1),
			analysis.FormatVector(f.Triangle.V2),
			analysis.FormatVector(f.Triangle.V3))
	}
	return nil
}
