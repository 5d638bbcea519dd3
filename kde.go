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

import "errors"
import "math"
import "sort"

import "github.com/pbenner/threadpool"
import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat"
import "gonum.org/v1/gonum/stat/distuv"

/* -------------------------------------------------------------------------- */

var ErrDegenerateSample = errors.New("kernel density estimation requires at least two distinct samples")

// Gaussian kernel density estimator. Identical samples are stored once
// together with their multiplicity.
type GaussianKDE struct {
  X         []float64
  Weights   []float64
  // total number of samples
  N           float64
  Bandwidth   float64
}

/* constructor
 * -------------------------------------------------------------------------- */

// Create a kernel density estimator with bandwidth selected by Scott's rule,
// i.e. the sample standard deviation times n^(-1/5).
func NewGaussianKDE(samples []float64) (GaussianKDE, error) {
  m := make(map[float64]float64)
  for _, x := range samples {
    if math.IsNaN(x) || math.IsInf(x, 0) {
      return GaussianKDE{}, errors.New("kernel density estimation requires finite samples")
    }
    m[x] += 1
  }
  kde := GaussianKDE{}
  kde.X = make([]float64, 0, len(m))
  for x := range m {
    kde.X = append(kde.X, x)
  }
  sort.Float64s(kde.X)
  kde.Weights = make([]float64, len(kde.X))
  for i, x := range kde.X {
    kde.Weights[i] = m[x]
  }
  kde.N = float64(len(samples))
  if len(kde.X) < 2 {
    return GaussianKDE{}, ErrDegenerateSample
  }
  _, variance := stat.MeanVariance(kde.X, kde.Weights)
  if !(variance > 0) {
    return GaussianKDE{}, ErrDegenerateSample
  }
  kde.Bandwidth = math.Sqrt(variance)*ScottsFactor(kde.N)
  return kde, nil
}

func NewGaussianKDEFromPositions(positions []int) (GaussianKDE, error) {
  return NewGaussianKDE(intsToFloat64(positions))
}

// Bandwidth factor n^(-1/5) for one-dimensional data.
func ScottsFactor(n float64) float64 {
  return math.Pow(n, -1.0/5.0)
}

/* -------------------------------------------------------------------------- */

func (kde GaussianKDE) Density(x float64) float64 {
  normal := distuv.Normal{Mu: 0, Sigma: kde.Bandwidth}
  r := 0.0
  for i, xi := range kde.X {
    r += kde.Weights[i]*normal.Prob(x - xi)
  }
  return r/kde.N
}

func (kde GaussianKDE) Evaluate(x []float64) []float64 {
  r := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    r[i] = kde.Density(x[i])
  }
  return r
}

// Evaluate the density at all points using the given thread pool.
func (kde GaussianKDE) EvaluateParallel(pool threadpool.ThreadPool, x []float64) ([]float64, error) {
  r := make([]float64, len(x))
  if err := pool.RangeJob(0, len(x), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    r[i] = kde.Density(x[i])
    return nil
  }); err != nil {
    return nil, err
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

// n evenly spaced points from `from' to `to' (both included).
func Linspace(from, to float64, n int) []float64 {
  switch {
  case n <= 0:
    return []float64{}
  case n == 1:
    return []float64{from}
  }
  return floats.Span(make([]float64, n), from, to)
}
