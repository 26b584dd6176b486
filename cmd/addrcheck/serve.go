package main

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vitwit/addrcheck"
	"github.com/vitwit/addrcheck/metrics"
	"github.com/vitwit/addrcheck/server"
	"github.com/vitwit/addrcheck/utils"
)

func (a *app) newServeCmd() *cobra.Command {
	var (
		listen        string
		enableMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("listen") {
				cfg.Server.Listen = listen
			}
			if enableMetrics {
				cfg.EnableMetrics = true
			}
			if err := utils.ValidateConfig(&cfg); err != nil {
				return err
			}

			opts := []addrcheck.Option{addrcheck.WithLogger(a.log)}
			var srvOpts []server.Option
			if cfg.EnableMetrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				rec, err := metrics.NewPrometheusRecorder(reg)
				if err != nil {
					return err
				}
				opts = append(opts, addrcheck.WithMetrics(rec))
				srvOpts = append(srvOpts, server.WithGatherer(reg))
			}

			gin.SetMode(gin.ReleaseMode)
			v := addrcheck.NewFromConfig(&cfg, opts...)
			srv := server.New(v, cfg.Server, append(srvOpts, server.WithLogger(a.log))...)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "address to listen on (default from config)")
	cmd.Flags().BoolVar(&enableMetrics, "metrics", false, "expose prometheus metrics on /metrics")
	return cmd
}

