package main

import (
	"fmt"

	"github.com/philipparndt/stlkit/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show the format, facet count, dimensions and surface area of an STL file, and flag facets with suspicious normals or no area.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	in, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	result := analysis.Summarize(in.doc)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if result.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", result.Name)
	}
	fmt.Fprintf(out, "File: %s\n", in.path)
	fmt.Fprintf(out, "Format: %s\n\n", in.format)

	fmt.Fprintln(out, "Model Statistics:")
	fmt.Fprintf(out, "  Facets: %d\n", result.FacetCount)
	if in.binary != nil {
		fmt.Fprintf(out, "  Header: %q\n", in.binary.HeaderText())
		if int(in.binary.DeclaredCount) != result.FacetCount {
			fmt.Fprintf(out, "  Declared facets: %d (does not match)\n", in.binary.DeclaredCount)
		}
	}
	fmt.Fprintf(out, "  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "square units"))
	fmt.Fprintf(out, "  Non-unit normals: %d\n", result.NonUnitNormals)
	fmt.Fprintf(out, "  Degenerate facets: %d\n\n", result.DegenerateFacets)

	if result.FacetCount == 0 {
		return nil
	}

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X())
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", result.Dimensions.Y())
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", result.Dimensions.Z())
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", result.BoundingBox.Volume())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}
