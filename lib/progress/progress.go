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


package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

// Progress bar for n steps that is redrawn every n/k steps.
func New(n, k int) Progress {
  progress := Progress{n, n/k, 40}
  if k > n || progress.K < 1 {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  if p > 1.0 {
    p = 1.0
  }
  // carriage return
  fmt.Fprintf(writer, "%s|", __line_del__)

  for i := 1; i < progress.LineWidth-1; i++ {
    if float64(i)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%%", p*100)
  // add newline if finished
  if p == 1.0 {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress Progress) Fprint(w io.Writer, i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(w, progress.Exec(i))
  }
}

func (progress Progress) PrintStdout(i int) {
  progress.Fprint(os.Stdout, i)
}

func (progress Progress) PrintStderr(i int) {
  progress.Fprint(os.Stderr, i)
}

/* -------------------------------------------------------------------------- */

// Reader that draws a progress bar while the underlying reader is
// consumed. The bar is measured in bytes.
type Reader struct {
  r        io.Reader
  w        io.Writer
  progress Progress
  n        int
  last     int
  done     bool
}

func NewReader(r io.Reader, size int64, w io.Writer) *Reader {
  return &Reader{r: r, w: w, progress: New(int(size), 1000), last: -1}
}

func (reader *Reader) Read(p []byte) (int, error) {
  n, err := reader.r.Read(p)
  if n > 0 && !reader.done {
    reader.n += n
    k := reader.n/reader.progress.K
    if k != reader.last || reader.n >= reader.progress.N {
      fmt.Fprint(reader.w, reader.progress.Exec(reader.n))
      reader.last = k
      reader.done = reader.n >= reader.progress.N
    }
  }
  return n, err
}
