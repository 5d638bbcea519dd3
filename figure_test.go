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

import   "math"
import   "os"
import   "path/filepath"
import   "testing"

import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

func TestFiniteSegments(t *testing.T) {
  x := []float64{1, 2, 3, 4, 5, 6}
  y := []float64{1, math.NaN(), 3, 4, math.Inf(1), 6}
  r := finiteSegments(x, y)
  if len(r) != 3 || len(r[0]) != 1 || len(r[1]) != 2 || len(r[2]) != 1 {
    t.Errorf("TestFiniteSegments failed: %v", r)
  }
  if r[1][0].X != 3 || r[1][1].Y != 4 {
    t.Errorf("TestFiniteSegments failed: %v", r)
  }
}

func TestFigure1(t *testing.T) {
  dir    := t.TempDir()
  figure := NewFigure(1, 2)

  p1 := figure.Panel(0, 0, "Counts", "Position", "Count")
  if err := AddHistogram(p1, []float64{0, 10, 20}, []float64{3, 5}, Transparent(ColorBlue, 0.5), "PolII"); err != nil {
    t.Fatal(err)
  }
  if err := AddBars(p1, []float64{5, 15}, []float64{1, 2}, 10, ColorRed, "Ser7P"); err != nil {
    t.Fatal(err)
  }
  p2 := figure.Panel(0, 1, "Ratio", "Position", "Ratio")
  if err := AddCurve(p2, []float64{0, 1, 2}, []float64{1, math.Inf(1), 2}, nil, false, "ratio"); err != nil {
    t.Fatal(err)
  }
  AddReferenceLine(p2, 1, "y = 1")

  for _, name := range []string{"figure.png", "figure.svg", "figure.pdf"} {
    filename := filepath.Join(dir, name)
    if err := figure.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
      t.Fatal(err)
    }
    if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
      t.Errorf("TestFigure1 failed: `%s' was not written", name)
    }
  }
}

func TestFigure2(t *testing.T) {
  figure := NewFigure(1, 1)
  p := figure.Panel(0, 0, "", "", "")
  if err := AddCurve(p, []float64{0, 1}, []float64{1}, ColorGreen, true, ""); err == nil {
    t.Error("TestFigure2 failed!")
  }
  if err := AddHistogram(p, []float64{0, 1}, []float64{1, 2}, ColorGreen, ""); err == nil {
    t.Error("TestFigure2 failed!")
  }
  if err := figure.Save(4*vg.Inch, 4*vg.Inch, filepath.Join(t.TempDir(), "figure.xyz")); err == nil {
    t.Error("TestFigure2 failed!")
  }
}
