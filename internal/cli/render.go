package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
)

// defaultBase is the output base name when -o is not given.
const defaultBase = "sparkline"

// renderOpts holds the render-only flags.
type renderOpts struct {
	output     string
	formats    string
	background string
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags chartFlags
		ro    renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [heights-file|-]",
		Short: "Render a sparkline to SVG, PNG or JSON",
		Long: `Render a sparkline bar chart.

Heights are read from --heights, from a file, or from stdin ("-"), either as a
comma separated list or as a JSON array. Flags override the config file.

With a single format, -o names the output file ("-" writes to stdout). With
several formats, -o is a base path and each file gets its format extension.`,
		Example: `  sparkbar render --heights 3,1,4,1,5 -t positive
  sparkbar render data.json -t dual -f svg,png -o build/trend
  echo "[1,-2,0,3]" | sparkbar render - -t tri -o - > tri.svg`,
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
			if cmd.Flags().Changed("format") || len(opts.Formats) == 0 {
				opts.Formats = parseFormats(ro.formats)
			}
			if cmd.Flags().Changed("background") {
				opts.Background = ro.background
			}
			opts.Refresh = ro.refresh
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), cfg.Cache, ro.noCache)
			if err != nil {
				return err
			}
			defer c.closeRunner(runner)

			return c.runRender(cmd.Context(), runner, opts, ro.output, cmd.OutOrStdout(), newPrinter(cmd))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple), \"-\" for stdout")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVar(&ro.background, "background", "", "background color (default transparent)")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&ro.refresh, "refresh", false, "recompute and overwrite cached results")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options, output string, stdout io.Writer, out printer) error {
	toStdout := output == "-"
	if toStdout && len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(opts.Formats))
	}

	var spinner *Spinner
	if !toStdout {
		spinner = newSpinnerWithContext(ctx, "Rendering sparkline...")
		spinner.out = out.w
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if toStdout {
		_, err := stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	out.success("Rendered %s chart", result.Layout.Type)
	out.stats(result.Stats.BarCount, result.Stats.Dropped, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	for _, p := range paths {
		out.file(p)
	}
	if result.Stats.Dropped > 0 {
		out.warning("%d oldest bar(s) did not fit in %gpx", result.Stats.Dropped, opts.Width)
	}
	return nil
}

// writeArtifacts writes one file per format and returns the paths in
// format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, format, len(formats))
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath picks the file for one format. A single format writes to
// output verbatim; otherwise output is a base path.
func outputPath(output, format string, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return basePath(output) + "." + format
}

// basePath strips a known format extension from output, defaulting to
// "sparkline".
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
