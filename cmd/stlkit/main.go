package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/stlkit/internal/config"
	"github.com/philipparndt/stlkit/internal/logging"
	"github.com/philipparndt/stlkit/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg = config.DefaultConfig()
	log = logging.Noop()
)

var rootCmd = &cobra.Command{
	Use:   "stlkit",
	Short: "Read, convert and transform STL files",
	Long: `stlkit reads and writes STL (Stereolithography) files in both the text and
the binary format. It converts between the two, shifts and merges models,
flips facet normals and compares documents facet by facet.

Paths ending in .gz, .zst or .lz4 are compressed transparently.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

// setup loads the configuration and builds the logger. Flags win over the
// config file.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log, err = logging.New(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	return err
}

// errDiffer is returned by compare; it only sets the exit code.
var errDiffer = errors.New("documents differ")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errDiffer) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
