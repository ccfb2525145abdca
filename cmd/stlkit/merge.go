package main

import (
	"github.com/philipparndt/stlkit/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	mergeOut  string
	mergeTo   string
	mergeName string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [file]...",
	Short: "Concatenate the facets of several STL files",
	Long:  "Append the facets of every input, in argument order, into one document. The name is taken from --name or the first input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", stdio, "Output file")
	mergeCmd.Flags().StringVarP(&mergeTo, "to", "t", "", "Output format (text, binary); defaults to output.format from the config")
	mergeCmd.Flags().StringVar(&mergeName, "name", "", "Name of the merged solid")
}

func runMerge(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(mergeTo)
	if err != nil {
		return err
	}

	var merged *stl.Document
	for _, path := range args {
		in, err := readInput(cmd, path)
		if err != nil {
			return err
		}
		if merged == nil {
			merged = stl.New(in.doc.Name, nil)
		}
		merged.Append(in.doc)
	}
	if mergeName != "" {
		merged.Name = mergeName
	}

	return writeOutput(cmd, mergeOut, merged, format)
}
