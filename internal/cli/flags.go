package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/sparkbar/pkg/errors"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
	"github.com/matzehuels/sparkbar/pkg/widget"
)

// chartFlags holds the chart flags shared by render, layout and preview.
// Only flags the user actually set override the config file.
type chartFlags struct {
	chartType   string
	heights     string
	width       float64
	height      float64
	minBarWidth float64
	barGap      float64
	minus       string
	zero        string
	plus        string
}

// register adds the chart and surface size flags.
func (f *chartFlags) register(fs *pflag.FlagSet) {
	f.registerChart(fs)
	fs.Float64Var(&f.width, "width", 0, "surface width in pixels (default 120)")
	fs.Float64Var(&f.height, "height", 0, "surface height in pixels (default 30)")
}

// registerChart adds the chart flags only.
func (f *chartFlags) registerChart(fs *pflag.FlagSet) {
	fs.StringVarP(&f.chartType, "type", "t", "", "chart type: positive (default), negative, dual, tri")
	fs.StringVar(&f.heights, "heights", "", `bar heights as "1,2,-3" or a JSON array`)
	fs.Float64Var(&f.minBarWidth, "min-bar-width", 0, "narrowest acceptable bar (default 3)")
	fs.Float64Var(&f.barGap, "gap", 0, "gap between bars (default 1)")
	fs.StringVar(&f.minus, "minus", "", "fill color for negative bars")
	fs.StringVar(&f.zero, "zero", "", "fill color for zero bars (tri)")
	fs.StringVar(&f.plus, "plus", "", "fill color for positive bars")
}

// apply overrides opts with every flag set on cmd. Heights come from
// --heights, or else from the file named by args[0] ("-" reads stdin).
func (f *chartFlags) apply(cmd *cobra.Command, args []string, opts *pipeline.Options) error {
	fs := cmd.Flags()
	if fs.Changed("type") {
		opts.Type = f.chartType
	}
	if fs.Changed("width") {
		opts.Width = f.width
	}
	if fs.Changed("height") {
		opts.Height = f.height
	}
	if fs.Changed("min-bar-width") {
		opts.MinimumBarWidth = f.minBarWidth
	}
	if fs.Changed("gap") {
		opts.BarGap = f.barGap
	}
	if fs.Changed("minus") {
		opts.Colors.Minus = f.minus
	}
	if fs.Changed("zero") {
		opts.Colors.Zero = f.zero
	}
	if fs.Changed("plus") {
		opts.Colors.Plus = f.plus
	}

	switch {
	case fs.Changed("heights"):
		heights, err := widget.ParseHeights(f.heights)
		if err != nil {
			return err
		}
		opts.Heights = heights
	case len(args) > 0:
		heights, err := readHeights(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		opts.Heights = heights
	}
	return nil
}

// readHeights parses heights from a file, or from stdin when path is "-".
func readHeights(path string, stdin io.Reader) ([]float64, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read heights from %s", path)
	}
	return widget.ParseHeights(string(data))
}
