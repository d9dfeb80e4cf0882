package plot

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"dapka/internal/lib"
	"dapka/internal/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	colorA = color.NRGBA{R: 31, G: 119, B: 180, A: 178}
	colorB = color.NRGBA{R: 255, G: 127, B: 14, A: 178}
)

type Options struct {
	Bins   int
	Width  vg.Length
	Height vg.Length
	OutDir string
}

// DefaultOptions mirrors an 8x6 inch figure with 30 bins.
func DefaultOptions() Options {
	return Options{
		Bins:   30,
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
		OutDir: ".",
	}
}

// Comparison holds the transformed metric of group A and of everything else.
type Comparison struct {
	Column    string
	Metric    string
	Transform string
	LabelA    string
	LabelB    string
	A         []float64
	B         []float64
}

// Compare splits records on column == groupA and applies t to metric.
func Compare(records []models.Record, column, groupA, metric string, t Transform) Comparison {
	c := Comparison{
		Column:    column,
		Metric:    metric,
		Transform: t.Name,
		LabelA:    groupA,
		LabelB:    "not " + groupA,
	}

	var a, b []float64
	for i := range records {
		v, ok := records[i].Metric(metric)
		if !ok {
			continue
		}
		if records[i].Value(column) == groupA {
			a = append(a, v)
		} else {
			b = append(b, v)
		}
	}
	c.A = t.Apply(a)
	c.B = t.Apply(b)
	return c
}

func (c Comparison) FileName() string {
	return fmt.Sprintf("histogram_%s_by_%s_metric_%s.png", c.Transform, c.Column, c.Metric)
}

type Renderer struct {
	log  *slog.Logger
	opts Options
}

func NewRenderer(log *slog.Logger, opts Options) *Renderer {
	if opts.Bins <= 0 {
		opts.Bins = DefaultOptions().Bins
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	return &Renderer{
		log:  log,
		opts: opts,
	}
}

// Histograms draws one figure per transform. With savefig each figure goes to a PNG
// in OutDir and its path is returned; otherwise a text histogram is written to w.
func (r *Renderer) Histograms(
	records []models.Record,
	column, groupA, metric string,
	ts []Transform,
	savefig bool,
	w io.Writer,
) ([]string, error) {
	const op = "plot.Histograms"

	var paths []string
	for _, t := range ts {
		c := Compare(records, column, groupA, metric, t)
		r.log.Info("plotting histograms",
			slog.String("column", column),
			slog.String("metric", metric),
			slog.String("func", t.Name),
			slog.Int("a", len(c.A)),
			slog.Int("b", len(c.B)),
		)

		if !savefig {
			if err := r.WriteText(w, c); err != nil {
				return nil, lib.Err(op, err)
			}
			continue
		}

		path := filepath.Join(r.opts.OutDir, c.FileName())
		if err := r.savePNG(path, c); err != nil {
			return nil, lib.Err(op, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (r *Renderer) savePNG(path string, c Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := r.WritePNG(f, c); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	r.log.Info("figure saved", slog.String("path", path))
	return nil
}

// WritePNG renders the two density histograms of c stacked vertically.
func (r *Renderer) WritePNG(w io.Writer, c Comparison) error {
	xLabel := "Value of " + c.Transform
	yLabel := "Frequency of " + c.Transform

	top, err := r.histPlot("Histogram of "+c.LabelA, xLabel, yLabel, c.A, colorA)
	if err != nil {
		return err
	}
	bottom, err := r.histPlot("Histogram of "+c.LabelB+" values", xLabel, yLabel, c.B, colorB)
	if err != nil {
		return err
	}

	return writeStacked(w, []*plot.Plot{top, bottom}, r.opts.Width, r.opts.Height)
}

func (r *Renderer) histPlot(title, xLabel, yLabel string, values []float64, fill color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	if len(values) == 0 {
		return p, nil
	}

	h, err := plotter.NewHist(plotter.Values(values), r.opts.Bins)
	if err != nil {
		return nil, err
	}
	h.Normalize(1)
	h.FillColor = fill
	h.LineStyle.Color = color.Black
	p.Add(h)

	return p, nil
}

func writeStacked(w io.Writer, plots []*plot.Plot, width, height vg.Length) error {
	img := vgimg.New(width, height)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}

	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}

	canvases := plot.Align(grid, tiles, dc)
	for i := range plots {
		plots[i].Draw(canvases[i][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}
