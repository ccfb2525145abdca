package main

import (
	"github.com/philipparndt/stlkit/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	shiftX, shiftY, shiftZ float32
	transformOut           string
	transformTo            string
)

var shiftCmd = &cobra.Command{
	Use:   "shift [file]",
	Short: "Move every vertex of an STL file",
	Long:  "Add the given offsets to every vertex. Normals are left unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformFile(cmd, args[0], transformOut, transformTo, func(doc *stl.Document) {
			doc.Shift(shiftX, shiftY, shiftZ)
		})
	},
}

var invertCmd = &cobra.Command{
	Use:   "invert [file]",
	Short: "Flip the normal of every facet",
	Long:  "Negate every facet normal. Vertices and their order are left unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transformFile(cmd, args[0], transformOut, transformTo, (*stl.Document).InvertAll)
	},
}

func init() {
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(invertCmd)

	shiftCmd.Flags().Float32Var(&shiftX, "dx", 0, "Offset along X")
	shiftCmd.Flags().Float32Var(&shiftY, "dy", 0, "Offset along Y")
	shiftCmd.Flags().Float32Var(&shiftZ, "dz", 0, "Offset along Z")

	for _, c := range []*cobra.Command{shiftCmd, invertCmd} {
		c.Flags().StringVarP(&transformOut, "out", "o", stdio, "Output file")
		c.Flags().StringVarP(&transformTo, "to", "t", "", "Output format (text, binary); defaults to output.format from the config")
	}
}
