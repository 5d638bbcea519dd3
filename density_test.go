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
import   "testing"

import   "gonum.org/v1/gonum/floats"

/* -------------------------------------------------------------------------- */

func TestDensityFunctions(t *testing.T) {
  if r := Normalize([]float64{1, 1, 2}, 0); !floats.EqualApprox(r, []float64{0.25, 0.25, 0.5}, 1e-15) {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Normalize([]float64{0, 0}, 1e-12); r[0] != 0 || r[1] != 0 {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Ratio([]float64{1, 4}, []float64{2, 0}, 1e-9); math.Abs(r[0] - 0.5) > 1e-8 || math.Abs(r[1] - 4e9) > 1e-3 {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Ratio([]float64{1, 3}, []float64{2, 4}, 0); r[0] != 0.5 || r[1] != 0.75 {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Ratio([]float64{1}, []float64{0}, 0); !math.IsInf(r[0], 1) {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Log2([]float64{1, 4}, 0); !floats.EqualApprox(r, []float64{0, 2}, 1e-15) {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Log2([]float64{0}, 1e-9); math.IsInf(r[0], 0) {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
  if r := Difference([]float64{3, 1}, []float64{1, 3}); r[0] != 2 || r[1] != -2 {
    t.Errorf("TestDensityFunctions failed: %v", r)
  }
}

func TestDensityLengthMismatch(t *testing.T) {
  for _, f := range []func(){
    func() { Difference([]float64{1}, []float64{1, 2}) },
    func() { Ratio([]float64{1, 2}, []float64{1}, 0) } } {
    func() {
      defer func() {
        if recover() == nil {
          t.Error("TestDensityLengthMismatch failed!")
        }
      }()
      f()
    }()
  }
}

/* -------------------------------------------------------------------------- */

func TestCompareDensities1(t *testing.T) {
  parameters := DensityParameters{Sigma: 0, Truncate: GaussianTruncate}

  r, err := CompareDensities([]float64{1, 2, 3}, []float64{1, 1, 2}, []float64{2, 1, 1}, parameters)
  if err != nil {
    t.Fatal(err)
  }
  if !floats.EqualApprox(r.PolII, []float64{0.25, 0.25, 0.5}, 1e-15) ||
    (!floats.EqualApprox(r.Ser7P, []float64{0.5, 0.25, 0.25}, 1e-15)) {
    t.Errorf("TestCompareDensities1 failed: %v %v", r.PolII, r.Ser7P)
  }
  if !floats.EqualApprox(r.Ratio, []float64{2, 1, 0.5}, 1e-15) {
    t.Errorf("TestCompareDensities1 failed: %v", r.Ratio)
  }
  if !floats.EqualApprox(r.Log2Ratio, []float64{1, 0, -1}, 1e-15) {
    t.Errorf("TestCompareDensities1 failed: %v", r.Log2Ratio)
  }
  if !floats.EqualApprox(r.Difference, []float64{0.25, 0, -0.25}, 1e-15) {
    t.Errorf("TestCompareDensities1 failed: %v", r.Difference)
  }
  if h := r.Head(2); h.Length() != 2 || h.Ratio[1] != r.Ratio[1] {
    t.Error("TestCompareDensities1 failed!")
  }
  if h := r.Head(10); h.Length() != 3 {
    t.Error("TestCompareDensities1 failed!")
  }
}

func TestCompareDensities2(t *testing.T) {
  n := 100
  positions := intsToFloat64(PositionRange(n))
  polii     := make([]float64, n)
  ser7p     := make([]float64, n)
  for i := 0; i < n; i++ {
    polii[i] = float64(i % 7)
    ser7p[i] = float64(i % 3)
  }
  r, err := CompareDensities(positions, polii, ser7p, DefaultDensityParameters())
  if err != nil {
    t.Fatal(err)
  }
  if math.Abs(floats.Sum(r.PolII) - 1) > 1e-9 || math.Abs(floats.Sum(r.Ser7P) - 1) > 1e-9 {
    t.Error("TestCompareDensities2 failed!")
  }
  if math.Abs(floats.Sum(r.Difference)) > 1e-9 {
    t.Error("TestCompareDensities2 failed!")
  }
  if _, err := CompareDensities(positions[1:], polii, ser7p, DefaultDensityParameters()); err == nil {
    t.Error("TestCompareDensities2 failed!")
  }
}
