package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevroute/cmd/elevroute/internal/build"
	"github.com/katalvlaran/elevroute/route"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, build.String())
		if verbose {
			fmt.Fprintf(out, "  go:         %s\n", runtime.Version())
			fmt.Fprintf(out, "  algorithms: %v\n", route.Names())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
