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

import   "compress/gzip"
import   "errors"
import   "os"
import   "path/filepath"
import   "reflect"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

var testPositionLog = joinLines(
  ">run 1",
  "0.1\ta\tb\tc\t7\td\te",
  "",
  "0.2\ta\tb\tc\t9",
  "short\tline",
  "0.3\ta\tb\tc\tnotanumber")

func TestReadPositions(t *testing.T) {
  r, err := ReadPositions(strings.NewReader(testPositionLog), PositionColumn, DefaultLogReaderOptions())
  if err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r.Positions, []int{7, 9}) {
    t.Errorf("TestReadPositions failed: %v", r.Positions)
  }
  if r.Skipped != 2 || r.Lines != 6 {
    t.Errorf("TestReadPositions failed: skipped %d lines of %d", r.Skipped, r.Lines)
  }
}

func TestReadPositionsStrict(t *testing.T) {
  options := DefaultLogReaderOptions()
  options.Strict = true

  _, err := ReadPositions(strings.NewReader(testPositionLog), PositionColumn, options)

  var e ParseError
  if !errors.As(err, &e) || e.Line != 5 {
    t.Errorf("TestReadPositionsStrict failed: %v", err)
  }
}

func TestReadPositionsProgress(t *testing.T) {
  calls := []int{}
  options := DefaultLogReaderOptions()
  options.ProgressInterval = 2
  options.Progress = func(lines int) {
    calls = append(calls, lines)
  }
  if _, err := ReadPositions(strings.NewReader(testPositionLog), PositionColumn, options); err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(calls, []int{0, 2, 4, 6}) {
    t.Errorf("TestReadPositionsProgress failed: %v", calls)
  }
}

func TestImportPositionsGzip(t *testing.T) {
  filename := filepath.Join(t.TempDir(), "positions.txt.gz")

  f, err := os.Create(filename)
  if err != nil {
    t.Fatal(err)
  }
  w := gzip.NewWriter(f)
  w.Write([]byte(testPositionLog))
  w.Close()
  f.Close()

  r, err := ImportPositions(filename, PositionColumn, DefaultLogReaderOptions())
  if err != nil {
    t.Fatal(err)
  }
  if !reflect.DeepEqual(r.Positions, []int{7, 9}) {
    t.Errorf("TestImportPositionsGzip failed: %v", r.Positions)
  }
}

func TestImportPositionsMissing(t *testing.T) {
  if _, err := ImportPositions(filepath.Join(t.TempDir(), "missing.txt"), PositionColumn, DefaultLogReaderOptions()); !errors.Is(err, os.ErrNotExist) {
    t.Errorf("TestImportPositionsMissing failed: %v", err)
  }
}
