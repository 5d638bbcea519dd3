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

import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat/distuv"

/* -------------------------------------------------------------------------- */

// Default number of standard deviations covered by the Gaussian kernel.
const GaussianTruncate = 4.0

/* -------------------------------------------------------------------------- */

// Moving average with a uniform window. The result has the same length as
// x and is centered like a discrete convolution in `same' mode, values
// outside of x count as zero.
func MovingAverage(x []float64, window int) ([]float64, error) {
  if window <= 0 {
    return nil, fmt.Errorf("invalid window size `%d'", window)
  }
  n := len(x)
  m := iMax(n, window)
  // length of the full convolution
  l := n + window - 1
  // offset of the centered result within the full convolution
  offset := (l - m)/2
  r := make([]float64, m)
  w := 1.0/float64(window)
  for k := 0; k < m; k++ {
    s := 0.0
    j := k + offset
    for i := iMax(0, j-window+1); i <= iMin(j, n-1); i++ {
      s += x[i]*w
    }
    r[k] = s
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

// Map an index outside [0, n) back into the range by mirroring at the
// boundaries (d c b a | a b c d | d c b a).
func reflectIndex(i, n int) int {
  if n == 1 {
    return 0
  }
  p := 2*n
  i  = i % p
  if i < 0 {
    i += p
  }
  if i >= n {
    i = p - 1 - i
  }
  return i
}

func gaussianKernel(sigma, truncate float64) []float64 {
  radius := int(truncate*sigma + 0.5)
  kernel := make([]float64, 2*radius+1)
  normal := distuv.Normal{Mu: 0, Sigma: sigma}
  for i := -radius; i <= radius; i++ {
    kernel[i+radius] = normal.Prob(float64(i))
  }
  floats.Scale(1.0/floats.Sum(kernel), kernel)
  return kernel
}

// Smooth x with a Gaussian kernel of standard deviation sigma. The kernel
// is cut off at truncate standard deviations and normalized to one, the
// signal is mirrored at both ends.
func GaussianFilter1D(x []float64, sigma, truncate float64) ([]float64, error) {
  if sigma < 0 {
    return nil, fmt.Errorf("invalid standard deviation `%f'", sigma)
  }
  if truncate <= 0 {
    return nil, fmt.Errorf("invalid truncation `%f'", truncate)
  }
  r := make([]float64, len(x))
  if sigma == 0 || len(x) == 0 {
    copy(r, x)
    return r, nil
  }
  kernel := gaussianKernel(sigma, truncate)
  radius := len(kernel)/2
  for k := 0; k < len(x); k++ {
    s := 0.0
    for j := -radius; j <= radius; j++ {
      s += kernel[j+radius]*x[reflectIndex(k+j, len(x))]
    }
    r[k] = s
  }
  return r, nil
}
