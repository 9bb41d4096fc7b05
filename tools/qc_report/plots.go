package qc_report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Thorn95/fastqstats/tools/fastq_qcsum"
)

// baseColors is indexed like fastq_qcsum.CanonicalBases: A, C, G, T.
var baseColors = [4]color.RGBA{
	{R: 0, G: 160, B: 0, A: 255},
	{R: 0, G: 0, B: 220, A: 255},
	{R: 30, G: 30, B: 30, A: 255},
	{R: 220, G: 0, B: 0, A: 255},
}

type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	step := int(math.Max(1, math.Ceil((max-min)/20)))
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: fmt.Sprintf("%d", i),
		})
	}
	return ticks
}

func renderSVG(p *plot.Plot) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return nil, err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func thresholdLine(y float64, c color.RGBA) *plotter.Function {
	fn := plotter.NewFunction(func(float64) float64 { return y })
	fn.Color = c
	fn.Width = vg.Points(1)
	fn.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return fn
}

// PerBaseQualityPlot draws the median score at each position with the
// warn/fail thresholds as dashed lines.
func PerBaseQualityPlot(s *fastq_qcsum.Summary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Per Base Sequence Quality (median)"
	p.X.Label.Text = "Position in Read (bp)"
	p.Y.Label.Text = "Quality Score"
	p.X.Tick.Marker = IntegerTicks{}
	p.Y.Min = 0
	p.Y.Max = 45
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.Stats.Medians))
	for i, m := range s.Stats.Medians {
		pts[i].X = float64(i + 1)
		pts[i].Y = m
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(2)

	warn := thresholdLine(s.Thresholds.BaseQualityWarn, color.RGBA{R: 230, G: 160, A: 255})
	fail := thresholdLine(s.Thresholds.BaseQualityFail, color.RGBA{R: 220, A: 255})

	p.Add(line, warn, fail)
	p.Legend.Add("Median Quality", line)
	p.Legend.Add("Warn", warn)
	p.Legend.Add("Fail", fail)
	p.Legend.Top = true
	return renderSVG(p)
}

// PerBaseContentPlot draws the A/C/G/T percentage at each position.
func PerBaseContentPlot(s *fastq_qcsum.Summary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Per Base Sequence Content"
	p.X.Label.Text = "Position in Read (bp)"
	p.Y.Label.Text = "Percent (%)"
	p.X.Tick.Marker = IntegerTicks{}
	p.Y.Min = 0
	p.Y.Max = 100

	for b, base := range fastq_qcsum.CanonicalBases {
		pts := make(plotter.XYs, len(s.Stats.Composition))
		for i, pc := range s.Stats.Composition {
			pts[i].X = float64(i + 1)
			pts[i].Y = pc.Freq[b] * 100
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = baseColors[b]
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(string(base), line)
	}
	p.Legend.Top = true
	return renderSVG(p)
}

// WritePlots writes the per-base quality and content SVGs and returns their paths.
func WritePlots(dir string, s *fastq_qcsum.Summary) ([]string, error) {
	plots := []struct {
		suffix string
		render func(*fastq_qcsum.Summary) ([]byte, error)
	}{
		{"_per_base_quality.svg", PerBaseQualityPlot},
		{"_per_base_content.svg", PerBaseContentPlot},
	}

	var paths []string
	for _, pl := range plots {
		svg, err := pl.render(s)
		if err != nil {
			return paths, fmt.Errorf("failed to generate %s plot: %w", pl.suffix, err)
		}
		path := OutputPath(dir, s.Filename, pl.suffix)
		if err := os.WriteFile(path, svg, 0644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
