package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sparkbar/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the computed layout
// as JSON without rendering anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags   chartFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [heights-file|-]",
		Short: "Print the computed chart layout as JSON",
		Long: `Compute the layout of a sparkline and print it as JSON.

The layout holds the fitted heights, the bar width, the bars and the surface
transform, the same document 'render -f json' embeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := cfg.Chart
			if err := flags.apply(cmd, args, &opts); err != nil {
				return err
			}
			opts.Logger = c.Logger

			runner, err := c.newRunner(cmd.Context(), cfg.Cache, noCache)
			if err != nil {
				return err
			}
			defer c.closeRunner(runner)

			l, cached, err := runner.ComputeLayout(cmd.Context(), opts)
			if err != nil {
				return err
			}
			c.Logger.Debug("computed layout", "bars", len(l.Bars), "trimmed", l.Dropped, "cached", cached)

			data, err := pipeline.MarshalLayout(l)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
