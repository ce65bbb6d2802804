package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"drawfetch/internal/config"
	"drawfetch/internal/fetch"
	"drawfetch/internal/logger"
	"drawfetch/internal/resolver"
	"drawfetch/internal/server"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagState   string
	flagFormat  string
	flagConfig  string
	flagAddr    string
	flagVerbose bool
)

// NewRootCmd creates the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drawfetch",
		Short: "Fetch daily numbers game results from third-party pages",
		Long: `drawfetch scrapes daily pick-3/pick-4 draw results and draw dates from
third-party result pages, tolerating inconsistent and noisy markup. It can
print a single state's report or serve reports over HTTP.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Optional TOML file overriding the built-in state table")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newCheckCmd(), newServeCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fetch and print one state's results",
		RunE:  runCheck,
	}
	cmd.Flags().StringVar(&flagState, "state", "", "State code (e.g. NY) (required)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.MarkFlagRequired("state")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve results over HTTP",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default $ADDR or :8080)")
	return cmd
}

func buildResolver() (*resolver.Resolver, error) {
	opts := logger.FromEnv()
	if flagVerbose {
		opts.Level = "debug"
	}
	log := logger.New(opts)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return resolver.New(fetch.NewClient(), cfg, log), nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	res, err := buildResolver()
	if err != nil {
		return err
	}

	rep, err := res.Resolve(cmd.Context(), flagState, time.Now())
	if err != nil {
		return err
	}

	return WriteReport(os.Stdout, rep, format)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Best effort; a missing .env just means plain environment variables.
	_ = godotenv.Load()

	addr := flagAddr
	if addr == "" {
		addr = os.Getenv("ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	opts := logger.FromEnv()
	if flagVerbose {
		opts.Level = "debug"
	}
	log := logger.New(opts)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	res := resolver.New(fetch.NewClient(), cfg, log)
	srv := server.New(res, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, addr)
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
