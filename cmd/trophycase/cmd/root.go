// Package cmd implements the trophycase command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/trophycase"
	"github.com/agentstation/trophycase/internal/config"
	"github.com/agentstation/trophycase/internal/sources/emustore"
	"github.com/agentstation/trophycase/pkg/logging"
)

var (
	cfg *config.Config

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trophycase",
	Short: "Game library achievement reconciliation",
	Long: `Trophycase aggregates per-title achievement records from cached files,
remote schema services, scraped pages, emulation-layer save stores, and
heuristic file discovery, reconciles them into one unified list, and caches
the result for cheap later loads.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute runs the root command with signal-based cancellation.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("account-root", "", "storage root for Achievements/ and Metadata/")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json)")

	_ = viper.BindPFlag("account_root", rootCmd.PersistentFlags().Lookup("account-root"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// setup loads config and configures logging before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	switch {
	case cfg.Quiet:
		logging.SetDefault(logging.Default().Level(zerolog.ErrorLevel))
	case cfg.Verbose:
		logging.SetDefault(logging.Default().Level(zerolog.DebugLevel))
	}

	return nil
}

// newClient assembles a trophycase client from loaded configuration.
func newClient() (trophycase.Client, error) {
	opts := []trophycase.Option{
		trophycase.WithAccountRoot(cfg.AccountRoot),
		trophycase.WithSchemaService(cfg.SchemaURL, cfg.FallbackURL),
		trophycase.WithSearchURL(cfg.SearchURL),
	}
	if cfg.AppBase != "" {
		opts = append(opts, trophycase.WithAppBase(cfg.AppBase))
	}
	if cfg.StoreRootsFile != "" {
		rootsCfg, err := emustore.LoadRootsConfig(cfg.StoreRootsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, trophycase.WithStoreRoots(rootsCfg.Roots...))
	}
	return trophycase.New(opts...)
}
