// Package main is the entry point for the elevroute CLI.
//
// Usage:
//
//	elevroute [flags] <command> [args]
//
// Commands:
//
//	route     - Find an elevation-aware route on a graph snapshot
//	generate  - Write a synthetic graph snapshot
//	serve     - Serve route searches over HTTP
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/elevroute/cmd/elevroute/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
