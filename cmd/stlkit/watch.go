package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/philipparndt/stlkit/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchOut      string
	watchTo       string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Convert an STL file again whenever it changes",
	Long:  "Convert the input once, then watch it and write the output again after every change until interrupted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "Output file")
	watchCmd.Flags().StringVarP(&watchTo, "to", "t", "", "Output format (text, binary); defaults to output.format from the config")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Quiet period before converting; defaults to watch.debounce from the config")
	_ = watchCmd.MarkFlagRequired("out")
}

func runWatch(cmd *cobra.Command, args []string) error {
	in := args[0]
	if in == stdio || watchOut == stdio {
		return errors.New("watch needs files, not stdin or stdout")
	}
	if filepath.Clean(in) == filepath.Clean(watchOut) {
		return fmt.Errorf("output %s would overwrite the watched input", watchOut)
	}
	if _, err := outputFormat(watchTo); err != nil {
		return err
	}

	debounce := cfg.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	ctx := cmd.Context()
	rebuild := func() error {
		return transformFile(cmd, in, watchOut, watchTo, nil)
	}
	if err := rebuild(); err != nil {
		// The input may be half written; keep watching for the next save.
		log.LogWatch(ctx, in, err)
	}

	fw, err := watcher.NewFileWatcher(debounce, log.WithFile(in).Logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{in}, func(path string) {
		log.LogWatch(ctx, path, nil)
		if err := rebuild(); err != nil {
			log.LogWatch(ctx, path, err)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s, press Ctrl+C to stop\n", in)
	if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
