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
import "math"

import "gonum.org/v1/gonum/floats"

/* -------------------------------------------------------------------------- */

func checkLengths(a, b []float64) {
  if len(a) != len(b) {
    panic("length mismatch")
  }
}

// Scale x such that it sums to one. eps is added to the sum to avoid a
// division by zero.
func Normalize(x []float64, eps float64) []float64 {
  r := make([]float64, len(x))
  s := floats.Sum(x) + eps
  for i := 0; i < len(x); i++ {
    r[i] = x[i]/s
  }
  return r
}

// Elementwise a/(b+eps). Panics if a and b differ in length.
func Ratio(a, b []float64, eps float64) []float64 {
  checkLengths(a, b)
  r := make([]float64, len(a))
  for i := 0; i < len(a); i++ {
    r[i] = a[i]/(b[i] + eps)
  }
  return r
}

// Elementwise log2(x+eps).
func Log2(x []float64, eps float64) []float64 {
  r := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    r[i] = math.Log2(x[i] + eps)
  }
  return r
}

// Elementwise a-b. Panics if a and b differ in length.
func Difference(a, b []float64) []float64 {
  checkLengths(a, b)
  return floats.SubTo(make([]float64, len(a)), a, b)
}

/* -------------------------------------------------------------------------- */

type DensityParameters struct {
  // standard deviation of the Gaussian smoothing kernel in bins
  Sigma          float64
  Truncate       float64
  // added to denominators of ratios and to log2 arguments
  Epsilon        float64
  // added to the sums when normalizing densities
  EpsilonDensity float64
}

func DefaultDensityParameters() DensityParameters {
  return DensityParameters{
    Sigma         : 5,
    Truncate      : GaussianTruncate,
    Epsilon       : 1e-9,
    EpsilonDensity: 1e-12 }
}

// Smoothed and normalized PolII and Ser7P densities and their
// ratio (Ser7P/PolII), log2 ratio and difference (Ser7P-PolII).
type DensityComparison struct {
  Positions  []float64
  PolII      []float64
  Ser7P      []float64
  Ratio      []float64
  Log2Ratio  []float64
  Difference []float64
}

func CompareDensities(positions, polii, ser7p []float64, parameters DensityParameters) (DensityComparison, error) {
  if len(positions) != len(polii) || len(positions) != len(ser7p) {
    return DensityComparison{}, fmt.Errorf("density arrays have different lengths (%d, %d, %d)", len(positions), len(polii), len(ser7p))
  }
  smoothedPolII, err := GaussianFilter1D(polii, parameters.Sigma, parameters.Truncate)
  if err != nil {
    return DensityComparison{}, err
  }
  smoothedSer7P, err := GaussianFilter1D(ser7p, parameters.Sigma, parameters.Truncate)
  if err != nil {
    return DensityComparison{}, err
  }
  r := DensityComparison{}
  r.Positions  = make([]float64, len(positions))
  copy(r.Positions, positions)
  r.PolII      = Normalize(smoothedPolII, parameters.EpsilonDensity)
  r.Ser7P      = Normalize(smoothedSer7P, parameters.EpsilonDensity)
  r.Ratio      = Ratio(r.Ser7P, r.PolII, parameters.Epsilon)
  r.Log2Ratio  = Log2(r.Ratio, parameters.Epsilon)
  r.Difference = Difference(r.Ser7P, r.PolII)
  return r, nil
}

func (c DensityComparison) Length() int {
  return len(c.Positions)
}

// First n entries of all curves.
func (c DensityComparison) Head(n int) DensityComparison {
  n = iMin(iMax(n, 0), c.Length())
  return DensityComparison{
    Positions : c.Positions [:n],
    PolII     : c.PolII     [:n],
    Ser7P     : c.Ser7P     [:n],
    Ratio     : c.Ratio     [:n],
    Log2Ratio : c.Log2Ratio [:n],
    Difference: c.Difference[:n] }
}
