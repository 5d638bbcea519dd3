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

func TestMovingAverage(t *testing.T) {
  if r, err := MovingAverage([]float64{1, 2, 3}, 2); err != nil {
    t.Fatal(err)
  } else if !floats.EqualApprox(r, []float64{0.5, 1.5, 2.5}, 1e-12) {
    t.Errorf("TestMovingAverage failed: %v", r)
  }
  if r, err := MovingAverage([]float64{1, 2, 3}, 3); err != nil {
    t.Fatal(err)
  } else if !floats.EqualApprox(r, []float64{1, 2, 5.0/3.0}, 1e-12) {
    t.Errorf("TestMovingAverage failed: %v", r)
  }
  // window larger than the signal
  if r, err := MovingAverage([]float64{3, 3}, 4); err != nil {
    t.Fatal(err)
  } else if len(r) != 4 {
    t.Errorf("TestMovingAverage failed: %v", r)
  }
  if _, err := MovingAverage([]float64{1}, 0); err == nil {
    t.Error("TestMovingAverage failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestReflectIndex(t *testing.T) {
  n := 4
  for i, j := range map[int]int{-1: 0, -2: 1, -4: 3, -5: 3, 4: 3, 5: 2, 8: 0, 9: 1, 2: 2} {
    if r := reflectIndex(i, n); r != j {
      t.Errorf("TestReflectIndex failed for index %d: %d", i, r)
    }
  }
}

func TestGaussianFilter1(t *testing.T) {
  x := make([]float64, 9)
  x[4] = 1.0
  r, err := GaussianFilter1D(x, 1.0, GaussianTruncate)
  if err != nil {
    t.Fatal(err)
  }
  if math.Abs(r[4] - 0.39894346935609776) > 1e-10 ||
    (math.Abs(r[3] - 0.24197144565660073) > 1e-10) ||
    (math.Abs(r[2] - 0.05399112742070441) > 1e-10) {
    t.Errorf("TestGaussianFilter1 failed: %v", r)
  }
  if math.Abs(r[3] - r[5]) > 1e-15 {
    t.Error("TestGaussianFilter1 failed!")
  }
}

func TestGaussianFilter2(t *testing.T) {
  // mass is preserved by reflection at the boundaries
  x := []float64{5, 0, 1, 0, 0, 0, 2, 0, 7}
  r, err := GaussianFilter1D(x, 2.0, GaussianTruncate)
  if err != nil {
    t.Fatal(err)
  }
  if math.Abs(floats.Sum(r) - floats.Sum(x)) > 1e-10 {
    t.Errorf("TestGaussianFilter2 failed: %f != %f", floats.Sum(r), floats.Sum(x))
  }
  // constant signals are left unchanged
  y := []float64{3, 3, 3, 3, 3}
  if r, err := GaussianFilter1D(y, 5.0, GaussianTruncate); err != nil {
    t.Fatal(err)
  } else if !floats.EqualApprox(r, y, 1e-12) {
    t.Errorf("TestGaussianFilter2 failed: %v", r)
  }
}

func TestGaussianFilter3(t *testing.T) {
  x := []float64{1, 2, 3}
  r, err := GaussianFilter1D(x, 0, GaussianTruncate)
  if err != nil {
    t.Fatal(err)
  }
  r[0] = 10
  if x[0] != 1 {
    t.Error("TestGaussianFilter3 failed!")
  }
  if _, err := GaussianFilter1D(x, -1, GaussianTruncate); err == nil {
    t.Error("TestGaussianFilter3 failed!")
  }
  if _, err := GaussianFilter1D(x, 1, 0); err == nil {
    t.Error("TestGaussianFilter3 failed!")
  }
}
