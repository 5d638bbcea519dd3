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
import "fmt"
import "io"

/* -------------------------------------------------------------------------- */

// Marks tracked along the gene.
const (
  PolII = iota
  Ser7P
)

// Per-position occupancy accumulated over simulation runs.
type Occupancy struct {
  GeneLength int
  Positions  []int
  // counts summed over all runs, indexed by mark
  Total      [2][]float64
  // counts divided by the number of runs
  Average    [2][]float64
  Runs       int
  Lines      int
  Skipped    int
  OutOfRange int
}

/* -------------------------------------------------------------------------- */

type OccupancyOptions struct {
  LogReaderOptions
  OnRun func(run int)
}

func DefaultOccupancyOptions() OccupancyOptions {
  return OccupancyOptions{LogReaderOptions: DefaultLogReaderOptions()}
}

/* -------------------------------------------------------------------------- */

// Counts polymerase occupancy for a single pass over a simulation log. A
// polymerase moving to position i releases position i-1 and occupies
// position i, each position is occupied at most once within a run.
type OccupancyCounter struct {
  GeneLength int
  // maximum number of runs, zero for no limit
  MaxRuns    int
  run        [2][]float64
  total      [2][]float64
  runs       int
  outOfRange int
}

func NewOccupancyCounter(geneLength, maxRuns int) (*OccupancyCounter, error) {
  if geneLength <= 0 {
    return nil, fmt.Errorf("invalid gene length `%d'", geneLength)
  }
  if maxRuns < 0 {
    return nil, fmt.Errorf("invalid number of runs `%d'", maxRuns)
  }
  counter := OccupancyCounter{GeneLength: geneLength, MaxRuns: maxRuns}
  for k := 0; k < 2; k++ {
    counter.run  [k] = make([]float64, geneLength)
    counter.total[k] = make([]float64, geneLength)
  }
  return &counter, nil
}

/* -------------------------------------------------------------------------- */

func (counter *OccupancyCounter) flush() {
  for k := 0; k < 2; k++ {
    for i := 0; i < counter.GeneLength; i++ {
      counter.total[k][i] += counter.run[k][i]
      counter.run  [k][i]  = 0
    }
  }
}

// Close the current run and start a new one.
func (counter *OccupancyCounter) BeginRun() {
  counter.flush()
  counter.runs++
}

// True once the separator following the last admissible run has been
// seen.
func (counter *OccupancyCounter) Done() bool {
  return counter.MaxRuns > 0 && counter.runs >= counter.MaxRuns+1
}

// Number of runs started so far.
func (counter *OccupancyCounter) Runs() int {
  return counter.runs
}

func (counter *OccupancyCounter) move(counts []float64, i int) {
  if i > 0 && i-1 < len(counts) {
    if counts[i-1] != 0 {
      counts[i-1] -= 1
    }
  }
  if i >= 0 && i < len(counts) {
    if counts[i] == 0 {
      counts[i] += 1
    }
  }
}

func (counter *OccupancyCounter) Add(event Event) {
  if !event.IsPolII() {
    return
  }
  i := event.Position
  if i < 0 {
    counter.outOfRange++
    return
  }
  if i >= counter.GeneLength {
    counter.outOfRange++
  }
  counter.move(counter.run[PolII], i)
  if event.IsSer7P() {
    counter.move(counter.run[Ser7P], i)
  }
}

// Close the last run and compute averages. Counts are averaged over
// MaxRuns if set and over the observed number of runs otherwise.
func (counter *OccupancyCounter) Finish() Occupancy {
  counter.flush()
  r := Occupancy{}
  r.GeneLength = counter.GeneLength
  r.Positions  = PositionRange(counter.GeneLength)
  r.Runs       = counter.runs
  r.OutOfRange = counter.outOfRange
  if counter.MaxRuns > 0 && r.Runs > counter.MaxRuns {
    r.Runs = counter.MaxRuns
  }
  n := counter.MaxRuns
  if n == 0 {
    // a log without separators is a single run
    n = iMax(counter.runs, 1)
  }
  for k := 0; k < 2; k++ {
    r.Total  [k] = make([]float64, counter.GeneLength)
    r.Average[k] = make([]float64, counter.GeneLength)
    copy(r.Total[k], counter.total[k])
    for i := 0; i < counter.GeneLength; i++ {
      r.Average[k][i] = r.Total[k][i]/float64(n)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Aggregate per-position occupancy of PolII and Ser7P over the runs of a
// simulation log. Runs are separated by lines starting with `>'. At most
// maxRuns runs are counted (all runs if maxRuns is zero).
func AggregateOccupancy(r io.Reader, geneLength, maxRuns int, options OccupancyOptions) (Occupancy, error) {
  counter, err := NewOccupancyCounter(geneLength, maxRuns)
  if err != nil {
    return Occupancy{}, err
  }
  skipped := 0
  scanner := newLineScanner(r, options.LogReaderOptions)
  for {
    if ok, err := scanner.Scan(); err != nil {
      return Occupancy{}, err
    } else if !ok {
      break
    }
    if counter.Done() {
      break
    }
    line := scanner.Text()
    if len(line) > 0 && line[0] == '>' {
      counter.BeginRun()
      if options.OnRun != nil && !counter.Done() {
        options.OnRun(counter.Runs())
      }
      continue
    }
    event, err := ParseEvent(line)
    if errors.Is(err, ErrNotAnEvent) {
      continue
    }
    if err != nil {
      skipped++
      if err := scanner.malformed(err); err != nil {
        return Occupancy{}, err
      }
      continue
    }
    counter.Add(event)
  }
  result := counter.Finish()
  result.Lines   = scanner.Line()
  result.Skipped = skipped
  return result, nil
}

func ImportOccupancy(filename string, geneLength, maxRuns int, options OccupancyOptions) (Occupancy, error) {
  f, err := OpenLog(filename, options.LogReaderOptions)
  if err != nil {
    return Occupancy{}, err
  }
  defer f.Close()

  result, err := AggregateOccupancy(f, geneLength, maxRuns, options)
  if err != nil {
    return result, fmt.Errorf("aggregating occupancy from `%s' failed: %w", filename, err)
  }
  return result, nil
}
