package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevroute/builder"
	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/snapshot"
)

var genFlags struct {
	output     string
	seed       int64
	minElev    float64
	maxElev    float64
	ids        string
	nodes      int
	degree     int
	truncate   bool
	rows, cols int
	cell       float64
	ridge      float64
	undirected bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic graph snapshot",
	Long: `Write a synthetic road graph as a YAML or JSON snapshot (by output extension).

Subcommands:
  kout     random directed graph, every node draws --degree exits
  terrain  rows x cols two-way street grid over a height field`,
}

var generateKOutCmd = &cobra.Command{
	Use:   "kout",
	Short: "Random directed k-out graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if genFlags.truncate {
			return generate(cmd, nil, builder.RandomKOut(genFlags.nodes, genFlags.degree),
				builder.WithLengthFn(builder.TruncatedLengthFn))
		}
		return generate(cmd, nil, builder.RandomKOut(genFlags.nodes, genFlags.degree))
	},
}

var generateTerrainCmd = &cobra.Command{
	Use:   "terrain",
	Short: "Street grid over a height field",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !(genFlags.cell > 0) {
			return fmt.Errorf("--cell must be > 0, got %g", genFlags.cell)
		}
		var gopts []core.GraphOption
		if genFlags.undirected {
			gopts = append(gopts, core.WithUndirected())
		}
		bopts := []builder.BuilderOption{builder.WithCellSize(genFlags.cell)}
		if genFlags.ridge > 0 {
			bopts = append(bopts, builder.WithElevationFn(
				builder.RidgeElevationFn(genFlags.minElev, genFlags.maxElev-genFlags.minElev, genFlags.ridge)))
		}
		return generate(cmd, gopts, builder.Terrain(genFlags.rows, genFlags.cols), bopts...)
	},
}

func init() {
	pf := generateCmd.PersistentFlags()
	pf.StringVarP(&genFlags.output, "output", "o", "", "snapshot file to write (required)")
	pf.Int64Var(&genFlags.seed, "seed", 1, "random seed")
	pf.Float64Var(&genFlags.minElev, "min-elevation", 20, "lowest elevation")
	pf.Float64Var(&genFlags.maxElev, "max-elevation", 200, "highest elevation")
	pf.StringVar(&genFlags.ids, "ids", "index", "node ID scheme: index, symbol or excel")
	_ = generateCmd.MarkPersistentFlagRequired("output")

	kf := generateKOutCmd.Flags()
	kf.IntVarP(&genFlags.nodes, "nodes", "n", 40, "number of nodes")
	kf.IntVarP(&genFlags.degree, "degree", "k", 3, "exits drawn per node")
	kf.BoolVar(&genFlags.truncate, "truncate", false, "round lengths down to integers")

	tf := generateTerrainCmd.Flags()
	tf.IntVar(&genFlags.rows, "rows", 8, "grid rows")
	tf.IntVar(&genFlags.cols, "cols", 8, "grid columns")
	tf.Float64Var(&genFlags.cell, "cell", 10, "block length")
	tf.Float64Var(&genFlags.ridge, "ridge", 0, "ridge wavelength; 0 draws random elevations")
	tf.BoolVar(&genFlags.undirected, "undirected", false, "store the grid as an undirected graph")

	generateCmd.AddCommand(generateKOutCmd, generateTerrainCmd)
	rootCmd.AddCommand(generateCmd)
}

// generate builds one graph with the shared flags and saves it.
func generate(cmd *cobra.Command, gopts []core.GraphOption, cons builder.Constructor, extra ...builder.BuilderOption) error {
	if genFlags.output == "" {
		return errors.New("output file is required, use -o flag")
	}
	if genFlags.maxElev < genFlags.minElev {
		return fmt.Errorf("--max-elevation %g is below --min-elevation %g", genFlags.maxElev, genFlags.minElev)
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(genFlags.seed),
		builder.WithElevationRange(genFlags.minElev, genFlags.maxElev),
	}
	switch genFlags.ids {
	case "index", "":
	case "symbol":
		if cmd.Name() == "kout" && genFlags.nodes > 26 {
			return fmt.Errorf("--ids symbol supports at most 26 nodes, got %d", genFlags.nodes)
		}
		bopts = append(bopts, builder.WithSymbolIDs())
	case "excel":
		bopts = append(bopts, builder.WithExcelColumnIDs())
	default:
		return fmt.Errorf("unknown --ids %q (want index, symbol or excel)", genFlags.ids)
	}
	bopts = append(bopts, extra...)

	g, err := builder.BuildGraph(gopts, bopts, cons)
	if err != nil {
		return err
	}
	if err := snapshot.Save(genFlags.output, g); err != nil {
		return err
	}

	slog.Debug("generate: snapshot written", "file", genFlags.output, "nodes", g.VertexCount(), "edges", g.EdgeCount())
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes, %d edges\n", genFlags.output, g.VertexCount(), g.EdgeCount())

	return nil
}
