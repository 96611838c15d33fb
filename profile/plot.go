package profile

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/plot"
	_ "gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// StepTicks is a tick marker with fixed step intervals.
type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf(t.Format, v),
		})
	}
	return ticks
}

// PlotProfile renders the extracted intensity profile as a line plot and
// returns it as an image. wPx and hPx give the output size in pixels.
func PlotProfile(points []Point, c *Cut, wPx, hPx float64) (image.Image, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no profile points to plot")
	}

	p := plot.New()

	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	span := points[len(points)-1].Distance
	peak := 0.0
	for _, pt := range points {
		if pt.Intensity > peak {
			peak = pt.Intensity
		}
	}
	if peak == 0 {
		peak = 1
	}

	p.Title.Text = fmt.Sprintf("Intensity profile at %.1f degrees, offset %.3g", c.AngleDegrees, c.OffsetFromCenter)
	p.X.Label.Text = "distance along cut"
	p.Y.Label.Text = "intensity"
	if span > 0 {
		p.X.Tick.Marker = StepTicks{Step: span / 20, Format: "%.3g"}
	}
	p.Y.Tick.Marker = StepTicks{Step: peak / 5, Format: "%.3g"}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = pt.Distance
		pts[i].Y = pt.Intensity
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi

	canvas := vgimg.New(width, height)
	p.Draw(vgdraw.New(canvas))
	return canvas.Image(), nil
}

// SaveProfilePlot renders the profile and writes it to a PNG file.
func SaveProfilePlot(filename string, points []Point, c *Cut, wPx, hPx float64) (err error) {
	img, err := PlotProfile(points, c, wPx, hPx)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
