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

import "github.com/klauspost/pgzip"

/* -------------------------------------------------------------------------- */

// Options shared by all readers of simulation logs.
type LogReaderOptions struct {
  // Return an error on malformed lines instead of skipping them
  Strict           bool
  // Number of lines between two calls of Progress
  ProgressInterval int
  Progress         func(lines int)
  // Applied to the raw contents of a log file (before decompression)
  // together with the file size, e.g. to monitor progress
  Monitor          func(r io.Reader, size int64) io.Reader
}

func DefaultLogReaderOptions() LogReaderOptions {
  return LogReaderOptions{ProgressInterval: 1000000}
}

/* -------------------------------------------------------------------------- */

type ParseError struct {
  Line   int
  Text   string
  Reason string
}

func (err ParseError) Error() string {
  if err.Line > 0 {
    return fmt.Sprintf("line %d: %s: `%s'", err.Line, err.Reason, err.Text)
  }
  return fmt.Sprintf("%s: `%s'", err.Reason, err.Text)
}

/* -------------------------------------------------------------------------- */

type logFile struct {
  file *os.File
  raw  io.Reader
  gz   *pgzip.Reader
}

func (f logFile) Read(p []byte) (int, error) {
  if f.gz != nil {
    return f.gz.Read(p)
  }
  return f.raw.Read(p)
}

func (f logFile) Close() error {
  if f.gz != nil {
    if err := f.gz.Close(); err != nil {
      f.file.Close()
      return err
    }
  }
  return f.file.Close()
}

// Open a simulation log for reading. Gzip compressed logs are
// decompressed on the fly.
func OpenLog(filename string, options LogReaderOptions) (io.ReadCloser, error) {
  compressed := isGzip(filename)

  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  var raw io.Reader = f
  if options.Monitor != nil {
    info, err := f.Stat()
    if err != nil {
      f.Close()
      return nil, err
    }
    raw = options.Monitor(f, info.Size())
  }
  if !compressed {
    return logFile{f, raw, nil}, nil
  }
  g, err := pgzip.NewReader(raw)
  if err != nil {
    f.Close()
    return nil, fmt.Errorf("opening compressed log `%s' failed: %w", filename, err)
  }
  return logFile{f, raw, g}, nil
}

/* -------------------------------------------------------------------------- */

type lineScanner struct {
  reader  *bufio.Reader
  options LogReaderOptions
  line    int
  text    string
}

func newLineScanner(r io.Reader, options LogReaderOptions) *lineScanner {
  return &lineScanner{reader: bufio.NewReader(r), options: options}
}

// Advance to the next line. Returns false at the end of input.
func (scanner *lineScanner) Scan() (bool, error) {
  if scanner.options.Progress != nil && scanner.options.ProgressInterval > 0 {
    if scanner.line % scanner.options.ProgressInterval == 0 {
      scanner.options.Progress(scanner.line)
    }
  }
  text, err := bufioReadLine(scanner.reader)
  if err == io.EOF {
    return false, nil
  }
  if err != nil {
    return false, err
  }
  scanner.line += 1
  scanner.text  = text
  return true, nil
}

func (scanner *lineScanner) Text() string {
  return scanner.text
}

func (scanner *lineScanner) Line() int {
  return scanner.line
}

// Report a malformed line. In strict mode the error is returned, otherwise
// the line is skipped.
func (scanner *lineScanner) malformed(err error) error {
  if !scanner.options.Strict {
    return nil
  }
  if e, ok := err.(ParseError); ok {
    e.Line = scanner.line
    return e
  }
  return ParseError{Line: scanner.line, Text: scanner.text, Reason: err.Error()}
}
