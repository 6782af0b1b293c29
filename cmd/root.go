package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/fusionatg/tankcal-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config at load time)
	cfgFile string
	debug   bool
	// Display override; takes precedence over config when set
	flagPrecision int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tankcal",
	Short: "TankCal CLI: normalize and validate tank calibration charts",
	Long:  `TankCal ingests dip/volume strapping data in loose text or spreadsheet formats, normalizes it into a height-to-volume calibration curve, and validates the curve against field measurements or fuel delivery records.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tankcal/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagPrecision, "precision", 0, "decimal places in printed tables (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("precision") && flagPrecision > 0 {
		cfg.Precision = flagPrecision
	}
}

// precision resolves the effective decimal precision for table output.
func precision() int {
	if cfg != nil && cfg.Precision > 0 {
		return cfg.Precision
	}
	return 2
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
