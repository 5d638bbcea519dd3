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
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

const occupancyTableHeader = "# Position\tAverage_PolII_Count\tAverage_Ser7P_Count\tTotal_PolII_Count\tTotal_Ser7P_Count"

// Write occupancy counts as a tab separated table with one row per
// position.
func (occupancy Occupancy) WriteTable(writer io.Writer) error {
  w := bufio.NewWriter(writer)
  if _, err := fmt.Fprintln(w, occupancyTableHeader); err != nil {
    return err
  }
  for i, pos := range occupancy.Positions {
    if _, err := fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%d\t%d\n", pos,
      occupancy.Average[PolII][i],
      occupancy.Average[Ser7P][i],
      int(occupancy.Total[PolII][i]),
      int(occupancy.Total[Ser7P][i])); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (occupancy Occupancy) ExportTable(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  if err := occupancy.WriteTable(f); err != nil {
    f.Close()
    return fmt.Errorf("writing `%s' failed: %w", filename, err)
  }
  return f.Close()
}

// Read a table written by WriteTable. The number of runs is not part of the
// table and remains zero.
func (occupancy *Occupancy) ReadTable(reader io.Reader) error {
  r := Occupancy{}
  scanner := bufio.NewScanner(reader)
  for line := 1; scanner.Scan(); line++ {
    text := strings.TrimSpace(scanner.Text())
    if text == "" || text[0] == '#' {
      continue
    }
    fields := strings.Split(text, "\t")
    if len(fields) != 5 {
      return ParseError{Line: line, Text: text, Reason: "expected 5 columns"}
    }
    pos, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      return ParseError{Line: line, Text: text, Reason: "invalid position"}
    }
    var values [4]float64
    for j := 0; j < 4; j++ {
      if values[j], err = strconv.ParseFloat(fields[j+1], 64); err != nil {
        return ParseError{Line: line, Text: text, Reason: "invalid count"}
      }
    }
    r.Positions        = append(r.Positions,        int(pos))
    r.Average[PolII]   = append(r.Average[PolII],   values[0])
    r.Average[Ser7P]   = append(r.Average[Ser7P],   values[1])
    r.Total  [PolII]   = append(r.Total  [PolII],   values[2])
    r.Total  [Ser7P]   = append(r.Total  [Ser7P],   values[3])
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  r.GeneLength = len(r.Positions)
  *occupancy = r
  return nil
}

func (occupancy *Occupancy) ImportTable(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  if err := occupancy.ReadTable(f); err != nil {
    return fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Print the first n values of all curves as a fixed width table.
func (c DensityComparison) WriteSummary(writer io.Writer, n int) error {
  w := bufio.NewWriter(writer)
  fmt.Fprintf(w, "%-10s%-15s%-15s%-18s%-23s%-15s\n",
    "Position", "PolII Density", "Ser7P Density", "Ratio Densities", "Log2 Ratio Densities", "Diff Density")
  h := c.Head(n)
  for i := 0; i < h.Length(); i++ {
    fmt.Fprintf(w, "%-10.0f%-15.4f%-15.4f%-18.4f%-23.4f%-15.4f\n",
      h.Positions [i],
      h.PolII     [i],
      h.Ser7P     [i],
      h.Ratio     [i],
      h.Log2Ratio [i],
      h.Difference[i])
  }
  return w.Flush()
}
