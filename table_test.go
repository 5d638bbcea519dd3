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

import   "bytes"
import   "errors"
import   "path/filepath"
import   "reflect"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestTable1(t *testing.T) {
  occupancy := Occupancy{GeneLength: 3, Positions: []int{1, 2, 3}}
  occupancy.Total  [PolII] = []float64{4, 0, 1}
  occupancy.Total  [Ser7P] = []float64{2, 2, 0}
  occupancy.Average[PolII] = []float64{2, 0, 0.5}
  occupancy.Average[Ser7P] = []float64{1, 1, 0}

  buffer := bytes.Buffer{}
  if err := occupancy.WriteTable(&buffer); err != nil {
    t.Fatal(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 4 || lines[0] != occupancyTableHeader {
    t.Fatalf("TestTable1 failed: %v", lines)
  }
  if lines[3] != "3\t0.500000\t0.000000\t1\t0" {
    t.Errorf("TestTable1 failed: `%s'", lines[3])
  }
  r := Occupancy{}
  if err := r.ReadTable(&buffer); err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r, occupancy) {
    t.Errorf("TestTable1 failed: %v", r)
  }
}

func TestTable2(t *testing.T) {
  r := Occupancy{}
  err := r.ReadTable(strings.NewReader(occupancyTableHeader + "\n1\t0.5\t0.5\t1\n"))

  var e ParseError
  if !errors.As(err, &e) || e.Line != 2 {
    t.Errorf("TestTable2 failed: %v", err)
  }
}

func TestTable3(t *testing.T) {
  occupancy := Occupancy{GeneLength: 1, Positions: []int{1}}
  occupancy.Total  [PolII] = []float64{1}
  occupancy.Total  [Ser7P] = []float64{0}
  occupancy.Average[PolII] = []float64{1}
  occupancy.Average[Ser7P] = []float64{0}

  filename := filepath.Join(t.TempDir(), "table.txt")
  if err := occupancy.ExportTable(filename); err != nil {
    t.Fatal(err)
  }
  r := Occupancy{}
  if err := r.ImportTable(filename); err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r, occupancy) {
    t.Errorf("TestTable3 failed: %v", r)
  }
}

/* -------------------------------------------------------------------------- */

func TestSummary(t *testing.T) {
  c := DensityComparison{
    Positions : []float64{1, 2, 3},
    PolII     : []float64{0.25, 0.25, 0.5},
    Ser7P     : []float64{0.5, 0.25, 0.25},
    Ratio     : []float64{2, 1, 0.5},
    Log2Ratio : []float64{1, 0, -1},
    Difference: []float64{0.25, 0, -0.25} }

  buffer := bytes.Buffer{}
  if err := c.WriteSummary(&buffer, 2); err != nil {
    t.Fatal(err)
  }
  lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
  if len(lines) != 3 {
    t.Fatalf("TestSummary failed: %v", lines)
  }
  if !strings.HasPrefix(lines[0], "Position  PolII Density  ") {
    t.Errorf("TestSummary failed: `%s'", lines[0])
  }
  if fields := strings.Fields(lines[1]); !reflect.DeepEqual(fields, []string{"1", "0.2500", "0.5000", "2.0000", "1.0000", "0.2500"}) {
    t.Errorf("TestSummary failed: %v", fields)
  }
}

func TestSummaryShort(t *testing.T) {
  c := DensityComparison{
    Positions : []float64{1, 2},
    PolII     : []float64{0.5, 0.5},
    Ser7P     : []float64{0.5, 0.5},
    Ratio     : []float64{1, 1},
    Log2Ratio : []float64{0, 0},
    Difference: []float64{0, 0} }

  if n := c.Head(10).Length(); n != 2 {
    t.Errorf("TestSummaryShort failed: %d", n)
  }
  buffer := bytes.Buffer{}
  if err := c.WriteSummary(&buffer, 10); err != nil {
    t.Fatal(err)
  }
  if n := strings.Count(buffer.String(), "\n"); n != 3 {
    t.Errorf("TestSummaryShort failed: %d lines", n)
  }
}
