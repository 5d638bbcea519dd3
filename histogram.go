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
import "sort"

/* -------------------------------------------------------------------------- */

// Count positions in `bins' equally sized bins covering [from, to]. All
// bins are half-open except the last one, which also contains `to'.
// Positions outside the range are ignored.
func Histogram(x []int, bins int, from, to float64) ([]float64, error) {
  if bins <= 0 {
    return nil, fmt.Errorf("invalid number of bins `%d'", bins)
  }
  if !(from < to) {
    return nil, fmt.Errorf("invalid histogram range [%f, %f]", from, to)
  }
  counts := make([]float64, bins)
  width  := (to - from)/float64(bins)
  for _, v := range x {
    y := float64(v)
    if y < from || y > to {
      continue
    }
    j := int((y - from)/width)
    if j >= bins {
      j = bins-1
    }
    counts[j] += 1
  }
  return counts, nil
}

// Width of the count histograms drawn for position samples.
const DefaultHistogramBinSize = 100

// Bin edges from, from+step, ... strictly below `to'.
func HistogramEdges(from, to, step float64) []float64 {
  if step <= 0 {
    return nil
  }
  edges := []float64{}
  for i := 0; from + float64(i)*step < to; i++ {
    edges = append(edges, from + float64(i)*step)
  }
  return edges
}

// Count positions in the bins defined by consecutive edges. The last bin
// is closed on the right.
func HistogramBinned(x []int, edges []float64) ([]float64, error) {
  if len(edges) < 2 {
    return nil, fmt.Errorf("at least two bin edges required")
  }
  if !sort.Float64sAreSorted(edges) {
    return nil, fmt.Errorf("bin edges must be sorted")
  }
  n      := len(edges)-1
  counts := make([]float64, n)
  for _, v := range x {
    y := float64(v)
    if y < edges[0] || y > edges[n] {
      continue
    }
    // index of the first edge strictly greater than y
    j := sort.Search(len(edges), func(i int) bool { return edges[i] > y }) - 1
    if j >= n {
      j = n-1
    }
    counts[j] += 1
  }
  return counts, nil
}
