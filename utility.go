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

import "bufio"
import "io"
import "math"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

/* -------------------------------------------------------------------------- */

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

func bufioReadLine(reader *bufio.Reader) (string, error) {
  l, err := reader.ReadString('\n')
  if err != nil {
    // ignore EOF errors if some bytes were read
    if len(l) > 0 && err == io.EOF {
      return strings.TrimRight(l, "\r"), nil
    }
    return l, err
  }
  // remove newline character
  return strings.TrimRight(l[0:len(l)-1], "\r"), err
}

/* -------------------------------------------------------------------------- */

func intsToFloat64(x []int) []float64 {
  r := make([]float64, len(x))
  for i := 0; i < len(x); i++ {
    r[i] = float64(x[i])
  }
  return r
}

func float64sToInt(x []float64) []int {
  r := make([]int, len(x))
  for i := 0; i < len(x); i++ {
    r[i] = int(math.Round(x[i]))
  }
  return r
}

// Range of positions 1, 2, ..., n.
func PositionRange(n int) []int {
  r := make([]int, n)
  for i := 0; i < n; i++ {
    r[i] = i+1
  }
  return r
}
