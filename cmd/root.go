package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fredctl/config"
	"github.com/s0up4200/fredctl/filter"
	"github.com/s0up4200/fredctl/fred"
)

// skipClient marks commands that run without an API client
const skipClient = "skip-client"

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    fred.API
	filters   *filter.Manager
	evaluator *filter.Evaluator

	// Global flags
	apiKey      string
	outputFmt   string
	whereExpr   string
	preset      string
	concurrency int

	// newClient builds the API client; tests replace it with a fake
	newClient = func(cfg *config.Config, logger zerolog.Logger) (fred.API, error) {
		return fred.New(cfg.FRED.APIKey,
			fred.WithBaseURL(cfg.FRED.BaseURL),
			fred.WithTimeout(cfg.FRED.Timeout),
			fred.WithUserAgent(cfg.FRED.UserAgent),
			fred.WithLogger(logger),
		)
	}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fredctl",
	Short: "Query the FRED economic data API",
	Long: `fredctl is a CLI for the Federal Reserve Bank of St. Louis FRED API.
It browses categories, releases, series, sources and tags, downloads
observations, and filters any listing with expressions such as
--where 'frequency_short == "M" and popularity > 50'.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := execute(rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs cmd and closes the API client afterwards, including when the
// command failed
func execute(cmd *cobra.Command) (err error) {
	defer func() {
		if client != nil {
			err = errors.Join(err, client.Close())
			client = nil
		}
	}()
	return cmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "FRED API key (overrides config and "+config.APIKeyEnv+")")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to listed records")
	rootCmd.PersistentFlags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	rootCmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "parallel requests for multi-series commands")

	// Add subcommands
	rootCmd.AddCommand(newCategoryCmd())
	rootCmd.AddCommand(newReleaseCmd())
	rootCmd.AddCommand(newSeriesCmd())
	rootCmd.AddCommand(newSourceCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	if apiKey != "" {
		cfg.FRED.APIKey = apiKey
	}
	if outputFmt != "" {
		cfg.Output.Format = outputFmt
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	if cmd.Annotations[skipClient] != "" {
		return nil
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	filters = filter.NewManager(filter.WithDefaultExpression(cfg.Filter.DefaultExpression))
	presets := make(map[string]string, len(cfg.Filter.Presets))
	for name, p := range cfg.Filter.Presets {
		presets[name] = p.Expression
	}
	if err := filters.RegisterFilters(presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}
	evaluator = filter.NewEvaluator(filter.WithWorkers(cfg.Concurrency))

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create FRED client: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.FRED.BaseURL).
		Str("output", cfg.Output.Format).
		Msg("FRED client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; no colour when stderr is not a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the FRED API",
	Long:  `Test the API key and connection by fetching the root category.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to FRED at %s...\n", cfg.FRED.BaseURL)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FRED.Timeout)
	defer cancel()

	root, err := client.GetCategory(ctx, 0)
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	children, err := client.GetCategoryChildren(ctx, fred.CategoryParams{ID: root.ID})
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	fmt.Fprintf(out, "\nRoot category: %s\n", root.Name)
	fmt.Fprintf(out, "- Top-level categories: %d\n", len(children))
	for _, c := range children {
		fmt.Fprintf(out, "  • %s (ID: %d)\n", c.Name, c.ID)
	}

	return nil
}

// activeFilter resolves --where, --preset and the configured default
func activeFilter() (filter.Filter, error) {
	f, err := filters.Resolve(whereExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	if f != nil {
		logger.Debug().Str("filter", f.Expression()).Msg("Filtering records")
	}
	return f, nil
}
