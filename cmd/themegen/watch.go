package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yacobolo/themegen/internal/devloop"
)

var watchCmd = &cobra.Command{
	Use:   "watch [output]",
	Short: "Regenerate the theme whenever token files change",
	Long: `Generate the theme once, then watch the tokens directory and regenerate on
every relevant change. Failures are logged and the previous theme is kept.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.String("glob", "**/*.json", "Token file pattern, relative to the tokens dir")
	f.Duration("debounce", devloop.DefaultDebounce, "Quiet period before regenerating")
	f.String("ignore-file", "", "Gitignore-style file listing token files to skip")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr,
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false))

	w, err := devloop.New(buildWatchOptions(args), logger)
	if err != nil {
		return fmt.Errorf("watch setup failed: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.Run(ctx)
}
