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

import   "reflect"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestHistogram(t *testing.T) {
  r, err := Histogram([]int{0, 1, 1, 2, 9, 10, 11, -1}, 5, 0, 10)
  if err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r, []float64{3, 1, 0, 0, 2}) {
    t.Errorf("TestHistogram failed: %v", r)
  }
  if _, err := Histogram(nil, 0, 0, 10); err == nil {
    t.Error("TestHistogram failed!")
  }
  if _, err := Histogram(nil, 5, 10, 10); err == nil {
    t.Error("TestHistogram failed!")
  }
}

func TestHistogramEdges(t *testing.T) {
  edges := HistogramEdges(0, 1000, DefaultHistogramBinSize)
  if len(edges) != 10 || edges[0] != 0 || edges[9] != 900 {
    t.Errorf("TestHistogramEdges failed: %v", edges)
  }
  if r := HistogramEdges(0, 10, 0); r != nil {
    t.Error("TestHistogramEdges failed!")
  }
}

func TestHistogramBinned(t *testing.T) {
  r, err := HistogramBinned([]int{0, 5, 10, 15, 20, 21}, []float64{0, 10, 20})
  if err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r, []float64{2, 3}) {
    t.Errorf("TestHistogramBinned failed: %v", r)
  }
  if _, err := HistogramBinned(nil, []float64{0}); err == nil {
    t.Error("TestHistogramBinned failed!")
  }
  if _, err := HistogramBinned(nil, []float64{10, 0}); err == nil {
    t.Error("TestHistogramBinned failed!")
  }
}
