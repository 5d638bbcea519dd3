/* Copyright (C) 2025 The polmodel dataprocess authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package dataprocess

/* -------------------------------------------------------------------------- */

import "fmt"
import "image/color"
import "math"
import "os"
import "path/filepath"
import "strings"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/plotutil"
import "gonum.org/v1/plot/vg"
import "gonum.org/v1/plot/vg/draw"

/* -------------------------------------------------------------------------- */

var (
  ColorBlue     = color.RGBA{  0,   0, 255, 255}
  ColorRed      = color.RGBA{255,   0,   0, 255}
  ColorDarkBlue = color.RGBA{  0,   0, 139, 255}
  ColorDarkRed  = color.RGBA{139,   0,   0, 255}
  ColorOrange   = color.RGBA{255, 165,   0, 255}
  ColorGreen    = color.RGBA{  0, 128,   0, 255}
  ColorDarkCyan = color.RGBA{  0, 139, 139, 255}
  ColorGray     = color.RGBA{128, 128, 128, 255}
)

// Return c with the given opacity in [0, 1].
func Transparent(c color.Color, alpha float64) color.Color {
  r, g, b, _ := c.RGBA()
  return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(math.Round(255*alpha))}
}

// Color i of the default palette.
func PaletteColor(i int) color.Color {
  return plotutil.Color(i)
}

/* -------------------------------------------------------------------------- */

// A grid of plots rendered into a single image.
type Figure struct {
  Rows   int
  Cols   int
  Panels [][]*plot.Plot
}

func NewFigure(rows, cols int) Figure {
  panels := make([][]*plot.Plot, rows)
  for i := 0; i < rows; i++ {
    panels[i] = make([]*plot.Plot, cols)
    for j := 0; j < cols; j++ {
      panels[i][j] = plot.New()
    }
  }
  return Figure{rows, cols, panels}
}

// Set up the panel in row i and column j.
func (figure Figure) Panel(i, j int, title, xlabel, ylabel string) *plot.Plot {
  p := figure.Panels[i][j]
  p.Title.Text   = title
  p.X.Label.Text = xlabel
  p.Y.Label.Text = ylabel
  p.Legend.Top   = true
  p.Add(plotter.NewGrid())
  return p
}

// Render the figure. The image format is determined by the file extension
// (eps, jpg, pdf, png, svg, tex, tif).
func (figure Figure) Save(width, height vg.Length, filename string) error {
  format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
  c, err := draw.NewFormattedCanvas(width, height, format)
  if err != nil {
    return fmt.Errorf("creating figure `%s' failed: %w", filename, err)
  }
  tiles := draw.Tiles{
    Rows     : figure.Rows,
    Cols     : figure.Cols,
    PadTop   : vg.Millimeter*2,
    PadBottom: vg.Millimeter*2,
    PadLeft  : vg.Millimeter*2,
    PadRight : vg.Millimeter*2,
    PadX     : vg.Millimeter*8,
    PadY     : vg.Millimeter*8 }
  canvases := plot.Align(figure.Panels, tiles, draw.New(c))
  for i := 0; i < figure.Rows; i++ {
    for j := 0; j < figure.Cols; j++ {
      figure.Panels[i][j].Draw(canvases[i][j])
    }
  }
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  if _, err := c.WriteTo(f); err != nil {
    f.Close()
    return fmt.Errorf("writing figure `%s' failed: %w", filename, err)
  }
  return f.Close()
}

/* -------------------------------------------------------------------------- */

// Split a curve into segments of finite values.
func finiteSegments(x, y []float64) []plotter.XYs {
  r := []plotter.XYs{}
  s := plotter.XYs{}
  for i := 0; i < len(x) && i < len(y); i++ {
    if math.IsNaN(y[i]) || math.IsInf(y[i], 0) || math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
      if len(s) > 0 {
        r = append(r, s)
        s = plotter.XYs{}
      }
      continue
    }
    s = append(s, plotter.XY{X: x[i], Y: y[i]})
  }
  if len(s) > 0 {
    r = append(r, s)
  }
  return r
}

// Add a line plot of y against x. Non-finite values are left out. If c
// is nil the first color of the default palette is used.
func AddCurve(p *plot.Plot, x, y []float64, c color.Color, dashed bool, label string) error {
  if len(x) != len(y) {
    return fmt.Errorf("curve `%s' has %d x and %d y values", label, len(x), len(y))
  }
  if c == nil {
    c = PaletteColor(0)
  }
  for k, xy := range finiteSegments(x, y) {
    line, err := plotter.NewLine(xy)
    if err != nil {
      return err
    }
    line.LineStyle.Color = c
    line.LineStyle.Width = vg.Points(1)
    if dashed {
      line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
    }
    p.Add(line)
    if k == 0 && label != "" {
      p.Legend.Add(label, line)
    }
  }
  return nil
}

// Add a gray dashed horizontal line at y.
func AddReferenceLine(p *plot.Plot, y float64, label string) {
  f := plotter.NewFunction(func(float64) float64 { return y })
  f.LineStyle.Color  = ColorGray
  f.LineStyle.Width  = vg.Points(1)
  f.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
  p.Add(f)
  if label != "" {
    p.Legend.Add(label, f)
  }
}

func addBins(p *plot.Plot, bins []plotter.HistogramBin, c color.Color, label string) {
  if len(bins) == 0 {
    return
  }
  h := &plotter.Histogram{
    Bins     : bins,
    Width    : bins[0].Max - bins[0].Min,
    FillColor: c,
    LineStyle: draw.LineStyle{Color: c, Width: vg.Points(0.2)} }
  p.Add(h)
  if label != "" {
    p.Legend.Add(label, h)
  }
}

// Add histogram counts for bins [edges[i], edges[i+1]).
func AddHistogram(p *plot.Plot, edges, counts []float64, c color.Color, label string) error {
  if len(edges) != len(counts)+1 {
    return fmt.Errorf("histogram `%s' has %d edges for %d counts", label, len(edges), len(counts))
  }
  bins := make([]plotter.HistogramBin, len(counts))
  for i := 0; i < len(counts); i++ {
    bins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: counts[i]}
  }
  addBins(p, bins, c, label)
  return nil
}

// Add bars of the given width centered at x.
func AddBars(p *plot.Plot, x, y []float64, width float64, c color.Color, label string) error {
  if len(x) != len(y) {
    return fmt.Errorf("bar plot `%s' has %d x and %d y values", label, len(x), len(y))
  }
  bins := make([]plotter.HistogramBin, len(x))
  for i := 0; i < len(x); i++ {
    bins[i] = plotter.HistogramBin{Min: x[i]-width/2, Max: x[i]+width/2, Weight: y[i]}
  }
  addBins(p, bins, c, label)
  return nil
}
