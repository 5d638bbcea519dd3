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
import "regexp"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Action recorded for polymerase movements.
const PolIIAction = "Pol_ii"

var ErrNotAnEvent = errors.New("not an event line")

var eventTimeRegexp = regexp.MustCompile(`^[0-9.\-]*[0-9][0-9.\-]*$`)

// A single line of a simulation log.
type Event struct {
  Time     float64
  Action   string
  Process  string
  Position int
  Phospho  int
  Fields   []string
}

/* -------------------------------------------------------------------------- */

// Parse a tab separated event line. Lines with less than seven columns or
// without a numeric time stamp (headers, separators) are rejected with
// ErrNotAnEvent.
func ParseEvent(line string) (Event, error) {
  fields := strings.Split(strings.TrimRight(line, " \t\r\n"), "\t")
  if len(fields) < 7 || !eventTimeRegexp.MatchString(fields[0]) {
    return Event{}, ErrNotAnEvent
  }
  time, err := strconv.ParseFloat(fields[0], 64)
  if err != nil {
    return Event{}, ParseError{Text: line, Reason: "invalid time"}
  }
  position, err := strconv.ParseInt(fields[4], 10, 64)
  if err != nil {
    return Event{}, ParseError{Text: line, Reason: "invalid position"}
  }
  phospho, err := strconv.ParseInt(fields[6], 10, 64)
  if err != nil {
    return Event{}, ParseError{Text: line, Reason: "invalid phosphorylation state"}
  }
  event := Event{
    Time    : time,
    Action  : fields[1],
    Process : fields[2],
    Position: int(position),
    Phospho : int(phospho),
    Fields  : fields }
  return event, nil
}

/* -------------------------------------------------------------------------- */

func (event Event) IsPolII() bool {
  return event.Action == PolIIAction
}

// True if the polymerase carries the Ser7P mark.
func (event Event) IsSer7P() bool {
  return event.Phospho == 1
}
