package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/TFMV/filewalker/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Watch command options
	watchTimeout  time.Duration
	watchTemplate string
	watchFirst    bool
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch --directory <path> --pattern <glob>",
	Short: "Search, then keep reporting matching files as they appear",
	Long: `Search a directory tree, then watch it and report every new file whose
name matches the pattern. Press Ctrl+C to stop.

Examples:
  filewalker watch -d /var/log -p "*.log"
  filewalker watch -d . -p "*.go" --template "{base} was added to {dir}"
  filewalker watch -d /tmp -p "*.lock" --first --timeout 10m`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := viper.GetString("pattern")
		if pattern == "" {
			return fmt.Errorf("a pattern is required (--pattern)")
		}
		dir := viper.GetString("directory")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		zapLogger := walk.CreateLogger(walk.ParseLogLevel(viper.GetBool("verbose"), viper.GetBool("silent")))
		defer zapLogger.Sync()

		logger := walk.NewZapLogger(zapLogger)

		opts := []walk.Option{walk.WithLogger(logger)}
		if viper.GetBool("sorted") {
			opts = append(opts, walk.WithSortedEntries())
		}
		searcher := walk.NewSearcher(opts...)

		template := watchTemplate
		if template == "" {
			template = "found: {}"
		}
		searcher.RegisterMatchObserver(walk.FormatObserver(template, cmd.OutOrStdout()))
		if watchFirst {
			searcher.RegisterPostMatchObserver(func(args *walk.SearchArgs) {
				args.Cancel()
			})
		}

		logger.Info(fmt.Sprintf("watching %s for %s", dir, pattern))
		return searcher.Watch(ctx, dir, pattern, walk.WatchOptions{Timeout: watchTimeout})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "Duration to watch before exiting (e.g., 1h, 30m)")
	watchCmd.Flags().StringVar(&watchTemplate, "template", "", "Print each match with a template ({}, {base}, {dir})")
	watchCmd.Flags().BoolVar(&watchFirst, "first", false, "Stop at the first match")
}
