// Package commands implements the elevroute cobra command tree.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevroute/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Global configuration (loaded before every command)
	globalConfig = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "elevroute",
	Short: "Elevation-aware route search under a length budget",
	Long: `elevroute - find routes that gain as little (or as much) elevation as
possible while staying within a percentage of the shortest route's length.

Graphs are read from YAML or JSON snapshots. Settings left off the command
line come from the optional --config file.

Examples:
  # Generate a random 40-node test map
  elevroute generate kout --nodes 40 --degree 3 --seed 7 -o maps/test.yaml

  # Flattest route at most 20% longer than the shortest
  elevroute route -g maps/test.yaml --from 0 --to 17 -t 20 -O minimize

  # Serve the same map over HTTP
  elevroute serve -g maps/test.yaml --listen :8080`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
}

// initRuntime loads the config file and installs the default logger.
func initRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	globalConfig = cfg

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return nil
}

// graphPath picks the flag value over the config file.
func graphPath(flag string) string {
	if flag != "" {
		return flag
	}

	return globalConfig.Graph
}
