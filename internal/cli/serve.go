package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sparkbar/internal/config"
	"github.com/matzehuels/sparkbar/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sparklines over HTTP",
		Long: `Start an HTTP server rendering sparklines on demand.

  GET /sparkline.svg?type=dual&heights=1,-2,3&width=200&height=40
  GET /sparkline.png?...
  GET /sparkline.json?...
  GET /healthz

Chart defaults come from the [chart] section of the config file, limits and
the listen address from [server].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, err := c.newRunner(cmd.Context(), cfg.Cache, noCache)
			if err != nil {
				return err
			}
			defer c.closeRunner(runner)

			srv := server.New(runner, serverConfig(cfg), c.Logger)

			backend := cfg.Cache.Backend
			if backend == "" {
				backend = config.CacheFile
			}
			if noCache {
				backend = config.CacheNone
			}
			out := newPrinter(cmd)
			out.success("Serving sparklines")
			out.keyValue("Address", srv.Addr())
			out.keyValue("Cache", backend)
			out.blank()
			out.nextStep("Try", "curl 'http://localhost"+srv.Addr()+"/sparkline.svg?heights=3,1,4,1,5'")

			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// serverConfig maps the config file onto the server's settings.
func serverConfig(cfg config.Config) server.Config {
	return server.Config{
		Addr:       cfg.Server.Addr,
		MaxHeights: cfg.Server.MaxHeights,
		MaxWidth:   cfg.Server.MaxWidth,
		MaxHeight:  cfg.Server.MaxHeight,
		Defaults:   cfg.Chart,
	}
}
