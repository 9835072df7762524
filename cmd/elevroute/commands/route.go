package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
	"github.com/katalvlaran/elevroute/snapshot"
)

var routeFlags struct {
	graph         string
	from, to      string
	tolerance     float64
	objective     string
	algorithm     string
	maxDepth      int
	baselineGuard bool
	format        string
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find an elevation-aware route on a graph snapshot",
	Long: `Find a route from --from to --to that is at most --tolerance percent
longer than the shortest route and minimizes or maximizes total elevation gain.

Algorithms: dijkstra (default), astar, exhaustive.
Objectives: none (shortest path), minimize, maximize.`,
	Args: cobra.NoArgs,
	RunE: runRoute,
}

func init() {
	f := routeCmd.Flags()
	f.StringVarP(&routeFlags.graph, "graph", "g", "", "graph snapshot file (.yaml, .yml or .json)")
	f.StringVar(&routeFlags.from, "from", "", "start node ID (required)")
	f.StringVar(&routeFlags.to, "to", "", "end node ID (required)")
	f.Float64VarP(&routeFlags.tolerance, "tolerance", "t", 0, "allowed extra length, percent of the shortest route")
	f.StringVarP(&routeFlags.objective, "objective", "O", "", "none, minimize or maximize")
	f.StringVarP(&routeFlags.algorithm, "algorithm", "a", "", "dijkstra, astar or exhaustive")
	f.IntVar(&routeFlags.maxDepth, "max-depth", 0, "edge limit for the exhaustive search")
	f.BoolVar(&routeFlags.baselineGuard, "baseline-guard", false, "fall back to the shortest route when the search does worse")
	f.StringVar(&routeFlags.format, "format", "text", "output format: text or json")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(routeCmd)
}

// routeReport is the json output of the route command.
type routeReport struct {
	Path      []string `json:"path"`
	Length    float64  `json:"length"`
	Gain      float64  `json:"gain"`
	MaxLength float64  `json:"max_length"`
	Algorithm string   `json:"algorithm"`
	Objective string   `json:"objective"`
}

func runRoute(cmd *cobra.Command, _ []string) error {
	file := graphPath(routeFlags.graph)
	if file == "" {
		return errors.New("graph snapshot is required, use -g or set graph in the config file")
	}

	// 1) Merge flags over the config defaults.
	d := globalConfig.Defaults
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		d.Algorithm = routeFlags.algorithm
	}
	if flags.Changed("objective") {
		d.Objective = routeFlags.objective
	}
	if flags.Changed("tolerance") {
		d.Tolerance = routeFlags.tolerance
	}
	if flags.Changed("max-depth") {
		d.MaxDepth = routeFlags.maxDepth
	}
	if flags.Changed("baseline-guard") {
		d.BaselineGuard = routeFlags.baselineGuard
	}

	algo, err := route.Lookup(d.Algorithm)
	if err != nil {
		return err
	}
	obj, err := search.ParseObjective(d.Objective)
	if err != nil {
		return err
	}

	// 2) Load and search.
	g, err := snapshot.Load(file)
	if err != nil {
		return err
	}
	opts := []route.Option{
		route.WithMaxDepth(d.MaxDepth),
		route.WithContext(cmd.Context()),
	}
	if d.BaselineGuard {
		opts = append(opts, route.WithBaselineGuard())
	}
	res, err := route.FindRoute(g, routeFlags.from, routeFlags.to, d.Tolerance, obj, algo, opts...)
	if err != nil {
		if errors.Is(err, search.ErrBudgetInfeasible) {
			return fmt.Errorf("%w (try a larger --tolerance or --baseline-guard)", err)
		}
		return err
	}

	// 3) Report.
	out := cmd.OutOrStdout()
	switch routeFlags.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(routeReport{
			Path:      res.Path,
			Length:    res.Length,
			Gain:      res.Gain,
			MaxLength: res.MaxLength,
			Algorithm: algo.Name(),
			Objective: obj.String(),
		})
	case "text", "":
		fmt.Fprintf(out, "path:      %s\n", strings.Join(res.Path, " -> "))
		fmt.Fprintf(out, "length:    %g\n", res.Length)
		fmt.Fprintf(out, "gain:      %g\n", res.Gain)
		fmt.Fprintf(out, "budget:    %g\n", res.MaxLength)
		fmt.Fprintf(out, "algorithm: %s (%s)\n", algo.Name(), obj)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", routeFlags.format)
	}
}
