package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/TFMV/filewalker/extremal"
	"github.com/TFMV/filewalker/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "filewalker --directory <path> --pattern <glob>",
	Short: "Find files by name in a directory tree",
	Long: `filewalker searches a directory tree depth-first for files whose name
matches a glob pattern. Files of a directory are reported before its
subdirectories are entered.

By default the search stops after the first match; pass --all to report
every match. When more than one file is found, the shortest and the
longest path are printed as well.

Examples:
  filewalker --directory /var/log --pattern "*.log" --all
  filewalker -d . -p "*.go" --all --format json
  filewalker -d . -p "*.md" --all --template "{base} in {dir}"`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return runSearch(ctx, cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// ExitCode maps the result of Execute onto a process exit status: 0 on
// success, 2 for a malformed pattern and 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, walk.ErrInvalidPattern):
		return 2
	default:
		return 1
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.filewalker.yaml)")
	rootCmd.PersistentFlags().StringP("directory", "d", ".", "Directory to search")
	rootCmd.PersistentFlags().StringP("pattern", "p", "", "File name pattern to match (e.g. *.txt)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("silent", false, "Disable all output except errors")
	rootCmd.PersistentFlags().Bool("sorted", false, "Visit directory entries in name order")
	rootCmd.SetGlobalNormalizationFunc(legacyFlagNames)

	rootCmd.Flags().BoolP("all", "a", false, "Report every match instead of stopping after the first")
	rootCmd.Flags().String("format", "text", "Output format (text|json)")
	rootCmd.Flags().String("template", "", "Print each match with a template ({}, {base}, {dir})")
	rootCmd.Flags().String("exec", "", "Command to run for each match ({}, {base}, {dir})")

	// Bind flags to viper
	viper.BindPFlag("directory", rootCmd.PersistentFlags().Lookup("directory"))
	viper.BindPFlag("pattern", rootCmd.PersistentFlags().Lookup("pattern"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("silent", rootCmd.PersistentFlags().Lookup("silent"))
	viper.BindPFlag("sorted", rootCmd.PersistentFlags().Lookup("sorted"))
	viper.BindPFlag("all", rootCmd.Flags().Lookup("all"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("template", rootCmd.Flags().Lookup("template"))
	viper.BindPFlag("exec", rootCmd.Flags().Lookup("exec"))
}

// legacyFlagNames keeps --searchpattern working as an alias of --pattern.
func legacyFlagNames(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "searchpattern" {
		name = "pattern"
	}
	return pflag.NormalizedName(name)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".filewalker" (without extension).
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".filewalker")
	}

	viper.SetEnvPrefix("filewalker")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig is everything runSearch needs, read from viper.
type searchConfig struct {
	Directory string
	Pattern   string
	All       bool
	Format    string
	Template  string
	Exec      string
	Sorted    bool
	LogLevel  walk.LogLevel
}

func loadSearchConfig() (searchConfig, error) {
	cfg := searchConfig{
		Directory: viper.GetString("directory"),
		Pattern:   viper.GetString("pattern"),
		All:       viper.GetBool("all"),
		Format:    viper.GetString("format"),
		Template:  viper.GetString("template"),
		Exec:      viper.GetString("exec"),
		Sorted:    viper.GetBool("sorted"),
		LogLevel:  walk.ParseLogLevel(viper.GetBool("verbose"), viper.GetBool("silent")),
	}

	if cfg.Pattern == "" {
		return cfg, errors.New("a pattern is required (--pattern)")
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return cfg, fmt.Errorf("invalid format: %s", cfg.Format)
	}
	return cfg, nil
}

// newSearcher builds a searcher with the options shared by all commands.
func newSearcher(logger walk.Logger, sorted bool) *walk.Searcher {
	opts := []walk.Option{walk.WithLogger(logger)}
	if sorted {
		opts = append(opts, walk.WithSortedEntries())
	}
	return walk.NewSearcher(opts...)
}

func runSearch(ctx context.Context, out io.Writer) error {
	cfg, err := loadSearchConfig()
	if err != nil {
		return err
	}

	zapLogger := walk.CreateLogger(cfg.LogLevel)
	defer zapLogger.Sync()

	logger := walk.NewZapLogger(zapLogger)
	searcher := newSearcher(logger, cfg.Sorted)

	var found []string
	searcher.RegisterMatchObserver(func(args *walk.SearchArgs) {
		logger.Info(fmt.Sprintf("found file: %s", args.FileName()))
		found = append(found, args.MatchedFilePath())
	})
	if cfg.Template != "" {
		searcher.RegisterMatchObserver(walk.FormatObserver(cfg.Template, out))
	}
	if cfg.Exec != "" {
		searcher.RegisterMatchObserver(walk.ExecObserver(ctx, cfg.Exec, out, logger))
	}
	searcher.RegisterPostMatchObserver(func(args *walk.SearchArgs) {
		if !cfg.All {
			args.Cancel()
		}
	})

	if err := searcher.SearchContext(ctx, cfg.Directory, cfg.Pattern, false); err != nil {
		return err
	}

	// With a template or command the matches have already been rendered.
	if cfg.Template != "" || cfg.Exec != "" {
		return nil
	}
	return writeReport(out, cfg.Format, newReport(found))
}

// report is the summary printed after a search.
type report struct {
	Files    []string `json:"files"`
	Shortest string   `json:"shortest,omitempty"`
	Longest  string   `json:"longest,omitempty"`
}

func newReport(files []string) report {
	r := report{Files: files}
	if r.Files == nil {
		r.Files = []string{}
	}
	if len(files) < 2 {
		return r
	}

	pathLength := func(p string) float64 { return float64(len(p)) }
	// Neither call can fail on a non-empty slice.
	r.Shortest, _ = extremal.FindMin(files, pathLength)
	r.Longest, _ = extremal.FindMax(files, pathLength)
	return r
}

func writeReport(out io.Writer, format string, r report) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	for _, path := range r.Files {
		fmt.Fprintf(out, "found: %s\n", path)
	}
	if len(r.Files) > 1 {
		fmt.Fprintf(out, "shortest path: %s\nlongest path: %s\n", r.Shortest, r.Longest)
	}
	return nil
}
