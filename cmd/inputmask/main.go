// Command inputmask formats text through input masks.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&rootCmd.masks, "masks", "",
		"Mask document or directory (bundled masks when empty)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		rootCmd.logger = newLogger(cmd.ErrOrStderr(), rootCmd.verbose)
	}
}

var rootCmd = struct {
	cobra.Command
	verbose bool
	masks   string
	logger  *slog.Logger
}{
	Command: cobra.Command{
		Use:          "inputmask",
		Short:        "Format text through input masks",
		SilenceUsage: true,
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logger() *slog.Logger {
	if rootCmd.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return rootCmd.logger
}

// loadSet loads --masks, or the bundled set when the flag is empty.
func loadSet() (*maskconfig.Set, error) {
	if rootCmd.masks == "" {
		return maskconfig.Default(maskconfig.WithLogger(logger()))
	}
	return maskconfig.LoadPath(rootCmd.masks, maskconfig.WithLogger(logger()))
}
