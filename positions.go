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
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Column of an event log that holds the position along the gene.
const PositionColumn = 4

type PositionResult struct {
  Positions []int
  // number of lines read
  Lines     int
  // number of malformed lines that were skipped
  Skipped   int
}

/* -------------------------------------------------------------------------- */

// Read the positions of all events in a simulation log. Run separators
// (lines starting with `>') and empty lines are ignored. The position is
// taken from the given tab separated column.
func ReadPositions(r io.Reader, column int, options LogReaderOptions) (PositionResult, error) {
  if column < 0 {
    return PositionResult{}, fmt.Errorf("invalid position column `%d'", column)
  }
  result  := PositionResult{}
  scanner := newLineScanner(r, options)
  for {
    if ok, err := scanner.Scan(); err != nil {
      return result, err
    } else if !ok {
      break
    }
    line := scanner.Text()
    if len(line) > 0 && line[0] == '>' {
      continue
    }
    line = strings.TrimSpace(line)
    if line == "" {
      continue
    }
    fields := strings.Split(line, "\t")
    if len(fields) <= column {
      result.Skipped++
      if err := scanner.malformed(ParseError{Text: line, Reason: fmt.Sprintf("expected at least %d columns", column+1)}); err != nil {
        return result, err
      }
      continue
    }
    t, err := strconv.ParseInt(fields[column], 10, 64)
    if err != nil {
      result.Skipped++
      if err := scanner.malformed(ParseError{Text: line, Reason: "invalid position"}); err != nil {
        return result, err
      }
      continue
    }
    result.Positions = append(result.Positions, int(t))
  }
  result.Lines = scanner.Line()
  return result, nil
}

func ImportPositions(filename string, column int, options LogReaderOptions) (PositionResult, error) {
  f, err := OpenLog(filename, options)
  if err != nil {
    return PositionResult{}, err
  }
  defer f.Close()

  result, err := ReadPositions(f, column, options)
  if err != nil {
    return result, fmt.Errorf("reading positions from `%s' failed: %w", filename, err)
  }
  return result, nil
}
