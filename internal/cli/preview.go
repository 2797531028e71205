package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sparkbar/pkg/chart"
	"github.com/matzehuels/sparkbar/pkg/color"
	"github.com/matzehuels/sparkbar/pkg/pipeline"
	"github.com/matzehuels/sparkbar/pkg/surface"
	"github.com/matzehuels/sparkbar/pkg/widget"
)

const (
	defaultPreviewCols = 80
	defaultPreviewRows = 10
	previewCell        = "█"
)

var (
	previewFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags      chartFlags
		cols, rows int
	)

	cmd := &cobra.Command{
		Use:   "preview [heights-file|-]",
		Short: "Preview a sparkline interactively in the terminal",
		Long: `Draw a sparkline with one terminal cell per pixel and adjust it live.

Keys: t cycles the chart type, ←/→ change the width, ↑/↓ the height, q quits.`,
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
			opts.Width, opts.Height = float64(cols), float64(rows)
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if _, err := pipeline.GenerateLayout(opts); err != nil {
				return err
			}

			m := newPreviewModel(opts, c.Logger)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	flags.registerChart(cmd.Flags())
	cmd.Flags().IntVar(&cols, "cols", defaultPreviewCols, "preview width in terminal cells")
	cmd.Flags().IntVar(&rows, "rows", defaultPreviewRows, "preview height in terminal cells")

	return cmd
}

// =============================================================================
// previewModel - bubbletea model around a widget drawing onto a cell grid
// =============================================================================

type previewModel struct {
	widget  *widget.Widget
	types   []chart.ChartType
	typeIdx int
	cols    int
	rows    int
	maxCols int
	status  string
}

func newPreviewModel(opts pipeline.Options, logger *log.Logger) previewModel {
	t, _ := chart.ParseChartType(opts.Type)
	m := previewModel{
		types: []chart.ChartType{chart.Positive, chart.Negative, chart.Dual, chart.Tri},
		cols:  int(opts.Width),
		rows:  int(opts.Height),
	}
	for i, ct := range m.types {
		if ct == t {
			m.typeIdx = i
		}
	}

	gridSurface := func(width, height float64, _ string) chart.Surface {
		return surface.NewGrid(int(width), int(height))
	}
	m.widget = widget.New(widget.Config{
		ChartType:       opts.Type,
		Heights:         opts.Heights,
		MinimumBarWidth: opts.MinimumBarWidth,
		BarGap:          opts.BarGap,
		Colors:          opts.Colors,
		Width:           opts.Width,
		Height:          opts.Height,
	}, widget.WithLogger(logger), widget.WithSurfaceFactory(gridSurface))
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t", "tab":
			m.typeIdx = (m.typeIdx + 1) % len(m.types)
			m.note(m.widget.SetChartType(m.types[m.typeIdx].String()))
		case "left", "h":
			if m.cols > 1 {
				m.cols--
				m.resize()
			}
		case "right", "l":
			if m.maxCols == 0 || m.cols < m.maxCols {
				m.cols++
				m.resize()
			}
		case "up", "k":
			m.rows++
			m.resize()
		case "down", "j":
			if m.rows > 1 {
				m.rows--
				m.resize()
			}
		}
	case tea.WindowSizeMsg:
		// border takes two columns
		m.maxCols = max(1, msg.Width-2)
		if m.cols > m.maxCols {
			m.cols = m.maxCols
			m.resize()
		}
	}
	return m, nil
}

func (m *previewModel) resize() {
	m.note(m.widget.SetSize(float64(m.cols), float64(m.rows)))
}

func (m *previewModel) note(drawn bool) {
	m.status = ""
	if !drawn {
		m.status = "does not fit, showing the last drawing"
	}
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sparkbar Preview"))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(fmt.Sprintf("%s %dx%d", m.types[m.typeIdx], m.cols, m.rows)))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("t type  ←/→ width  ↑/↓ height  q quit"))
	b.WriteString("\n")

	if g, ok := m.widget.Surface().(*surface.Grid); ok {
		b.WriteString(previewFrameStyle.Render(gridString(g)))
		b.WriteString("\n")
	}
	if l, ok := m.widget.Layout(); ok {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d bars · width %g · %d trimmed", len(l.Bars), l.BarWidth, l.Dropped)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// gridString renders each covered cell as a block in its fill color.
func gridString(g *surface.Grid) string {
	styles := map[string]lipgloss.Style{}
	lines := make([]string, g.Rows())
	for row := range g.Rows() {
		var line strings.Builder
		for col := range g.Cols() {
			css := g.At(col, row)
			if css == "" {
				line.WriteByte(' ')
				continue
			}
			st, ok := styles[css]
			if !ok {
				st = lipgloss.NewStyle().Foreground(termColor(css))
				styles[css] = st
			}
			line.WriteString(st.Render(previewCell))
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

// termColor converts a CSS color to the hex form lipgloss understands.
func termColor(css string) lipgloss.Color {
	c, err := color.Parse(css)
	if err != nil {
		return colorWhite
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
