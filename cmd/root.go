package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/worktimer/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	dataPath   string
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worktimer",
	Short: "Track elapsed work time across workspaces",
	Long: `A CLI time tracker built around a small set of independent workspaces.

At most one workspace is timing at any moment; starting another one flushes
the running interval into a durable entry first, so no time is ever lost.
Completed entries can be filtered, summarized and exported.

Quick Start:
  worktimer start 1                # begin timing workspace 1
  worktimer stop -m "code review"  # flush the running timer into an entry
  worktimer status                 # live elapsed time and today's total
  worktimer records --range week   # filtered history with summary stats
  worktimer export --format csv    # write the history to a file

For detailed usage, see: https://github.com/iksnae/worktimer`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Custom database location")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig resolves the config file path and reads it.
func loadConfig() (*internal.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = internal.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return internal.LoadConfig(path)
}

// openEngine wires the storage stack and loads the engine. The returned
// cleanup closes the database.
func openEngine() (*internal.Engine, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	path := dataPath
	if path == "" {
		path = cfg.DatabasePath
	}
	if path == "" {
		path, err = internal.DefaultDatabasePath()
		if err != nil {
			return nil, nil, err
		}
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, err
	}
	internal.LogDebug("opened database %s", path)

	engine, err := internal.NewEngine(internal.NewSQLiteStore(db), internal.SystemClock())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return engine, func() { db.Close() }, nil
}
