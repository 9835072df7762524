package commands

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevroute/internal/metrics"
	"github.com/katalvlaran/elevroute/internal/server"
	"github.com/katalvlaran/elevroute/snapshot"
)

var serveFlags struct {
	graph  string
	listen string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve route searches over HTTP",
	Long: `Load a graph snapshot and answer POST /v1/route requests.

Request defaults (algorithm, objective, tolerance, ...) come from the
config file. Prometheus metrics are exposed on GET /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		file := graphPath(serveFlags.graph)
		if file == "" {
			return errors.New("graph snapshot is required, use -g or set graph in the config file")
		}
		addr := globalConfig.Listen
		if cmd.Flags().Changed("listen") {
			addr = serveFlags.listen
		}

		g, err := snapshot.Load(file)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv := server.New(g, globalConfig.Defaults,
			server.WithRecorder(metrics.New(reg)),
			server.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
			server.WithSearchTimeout(globalConfig.SearchTimeout),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveFlags.graph, "graph", "g", "", "graph snapshot file")
	serveCmd.Flags().StringVar(&serveFlags.listen, "listen", ":8080", "listen address")

	rootCmd.AddCommand(serveCmd)
}
