package plot

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"dapka/internal/lib"
	"dapka/internal/models"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Fit is an ordinary least squares line y = Alpha + Beta*x.
type Fit struct {
	Alpha float64
	Beta  float64
	N     int
}

type ScatterGroup struct {
	Label  string
	Points plotter.XYs
	Fit    *Fit
}

// Scatter pairs log(1+lines modified) with log(metric), split on column == groupA.
func Scatter(records []models.Record, column, groupA, metric string) (ScatterGroup, ScatterGroup) {
	a := ScatterGroup{Label: groupA}
	b := ScatterGroup{Label: "not " + groupA}

	for i := range records {
		v, ok := records[i].Metric(metric)
		if !ok || v <= 0 {
			continue
		}
		pt := plotter.XY{
			X: math.Log1p(float64(records[i].LinesModified())),
			Y: math.Log(v),
		}
		if math.IsNaN(pt.X) || math.IsInf(pt.Y, 0) || math.IsNaN(pt.Y) {
			continue
		}
		if records[i].Value(column) == groupA {
			a.Points = append(a.Points, pt)
		} else {
			b.Points = append(b.Points, pt)
		}
	}

	a.Fit = fitLine(a.Points)
	b.Fit = fitLine(b.Points)
	return a, b
}

func fitLine(pts plotter.XYs) *Fit {
	if len(pts) < 2 {
		return nil
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	if stat.Variance(xs, nil) == 0 {
		return nil
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return &Fit{Alpha: alpha, Beta: beta, N: len(pts)}
}

func ScatterFileName(column, metric string) string {
	return fmt.Sprintf("scatterplot_lines_modified_by_%s_metric_%s.png", column, metric)
}

// SaveScatter writes the lines-modified scatterplot to OutDir and returns its path.
func (r *Renderer) SaveScatter(records []models.Record, column, groupA, metric string) (string, error) {
	const op = "plot.SaveScatter"

	a, b := Scatter(records, column, groupA, metric)
	r.log.Info("plotting scatterplot",
		slog.String("column", column),
		slog.String("metric", metric),
		slog.Int("a", len(a.Points)),
		slog.Int("b", len(b.Points)),
	)

	path := filepath.Join(r.opts.OutDir, ScatterFileName(column, metric))
	f, err := os.Create(path)
	if err != nil {
		return "", lib.Err(op, err)
	}
	defer f.Close()

	if err := r.WriteScatterPNG(f, metric, a, b); err != nil {
		return "", lib.Err(op, err)
	}
	if err := f.Close(); err != nil {
		return "", lib.Err(op, err)
	}

	r.log.Info("figure saved", slog.String("path", path))
	return path, nil
}

func (r *Renderer) WriteScatterPNG(w io.Writer, metric string, groups ...ScatterGroup) error {
	p := plot.New()
	p.Title.Text = "Lines modified vs " + metric
	p.X.Label.Text = "log(1 + lines modified)"
	p.Y.Label.Text = "log(" + metric + ")"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	palette := []color.Color{colorA, colorB}
	for i, g := range groups {
		if len(g.Points) == 0 {
			continue
		}
		c := palette[i%len(palette)]

		s, err := plotter.NewScatter(g.Points)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(g.Label, s)

		if g.Fit == nil {
			continue
		}
		fit := *g.Fit
		line := plotter.NewFunction(func(x float64) float64 { return fit.Alpha + fit.Beta*x })
		line.Color = c
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s fit (slope %.3f)", g.Label, fit.Beta), line)
	}

	img := vgimg.New(r.opts.Width, r.opts.Height)
	p.Draw(draw.New(img))

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}
