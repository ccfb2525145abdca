package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	convertTo     string
	convertOut    string
	convertHeader string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]...",
	Short: "Convert STL files between the text and binary format",
	Long: `Convert one or more STL files to the text or binary format.

Without --out each result is written next to its input, named after the
target format (part.stl becomes part.binary.stl). With a single input,
--out names the output file; with several inputs it must be a directory.
Use "-" to read from stdin or write to stdout. Several inputs are converted
concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "Target format (text, binary); defaults to output.format from the config")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file, or directory for several inputs")
	convertCmd.Flags().StringVar(&convertHeader, "header", "", "Header text for binary output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(convertTo)
	if err != nil {
		return err
	}
	if convertHeader != "" {
		cfg.Output.BinaryHeader = convertHeader
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if len(args) > 1 && convertOut != "" && !isDir(convertOut) {
		return fmt.Errorf("output %s must be an existing directory when converting %d files", convertOut, len(args))
	}

	outputs := make([]string, len(args))
	for i, in := range args {
		switch {
		case convertOut != "" && !isDir(convertOut):
			outputs[i] = convertOut
		case in == stdio:
			outputs[i] = stdio
		default:
			outputs[i] = derivedPath(in, convertOut, format)
		}
	}

	start := time.Now()
	var failed atomic.Int32

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Convert.Concurrency)
	for i, in := range args {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := transformFile(cmd, in, outputs[i], format.String(), nil); err != nil {
				failed.Add(1)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	log.LogConvert(cmd.Context(), len(args), int(failed.Load()), time.Since(start))
	return err
}
