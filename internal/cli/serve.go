package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/config"
	"github.com/katalvlaran/subway/metrics"
	"github.com/katalvlaran/subway/planner"
	"github.com/katalvlaran/subway/server"
)

func NewServeCmd(app *SubwayApp) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			serverCfg := ServerConfig(cfg)

			var opts []planner.Option
			if cfg.Metrics.Enabled {
				serverCfg.Registry = metrics.NewRegistry()
				serverCfg.Metrics = metrics.NewMetrics(serverCfg.Registry)
				opts = append(opts, planner.WithObserver(serverCfg.Metrics))
			}

			p, err := app.Planner(cfg, opts...)
			if err != nil {
				return err
			}
			log.Printf("loaded %d stations on %d lines from %s",
				len(p.Stations()), len(p.Lines()), cfg.Network.Path)
			if groups := p.Components(); len(groups) > 1 {
				log.Printf("warning: network splits into %d disconnected groups", len(groups))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(p, serverCfg).Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides the config file")

	return cmd
}

// ServerConfig maps the server section onto server.Config.
func ServerConfig(cfg config.AppConfig) server.Config {
	serverCfg := server.Config{
		Addr:            cfg.Server.Addr,
		CacheTTL:        cfg.Server.CacheTTL,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		DefaultStrategy: cfg.Search.Strategy,
	}
	if cfg.Server.CacheSize != nil {
		serverCfg.CacheSize = *cfg.Server.CacheSize
	}

	return serverCfg
}
