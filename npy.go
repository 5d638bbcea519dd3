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

import "archive/zip"
import "bufio"
import "fmt"
import "io"
import "os"
import "strings"

import "github.com/kshedden/gonpy"

/* -------------------------------------------------------------------------- */

type nopCloser struct {
  io.Writer
}

func (nopCloser) Close() error {
  return nil
}

/* -------------------------------------------------------------------------- */

func writeNpyFloat64(w io.WriteCloser, x []float64) error {
  npw, err := gonpy.NewWriter(w)
  if err != nil {
    return err
  }
  npw.Shape = []int{len(x)}
  return npw.WriteFloat64(x)
}

func writeNpyInt(w io.WriteCloser, x []int) error {
  npw, err := gonpy.NewWriter(w)
  if err != nil {
    return err
  }
  y := make([]int64, len(x))
  for i := 0; i < len(x); i++ {
    y[i] = int64(x[i])
  }
  npw.Shape = []int{len(y)}
  return npw.WriteInt64(y)
}

// Read a one-dimensional numpy array. Integer arrays are converted to
// float64.
func readNpy(r io.Reader) ([]float64, error) {
  npr, err := gonpy.NewReader(r)
  if err != nil {
    return nil, err
  }
  // accept (n), (1, n), (n, 1) and similar shapes
  k := 0
  for _, d := range npr.Shape {
    if d > 1 {
      k++
    }
  }
  if k > 1 {
    return nil, fmt.Errorf("expected one-dimensional array but got shape %v", npr.Shape)
  }
  switch strings.TrimLeft(npr.Dtype, "<>|=") {
  case "f8":
    return npr.GetFloat64()
  case "f4":
    if x, err := npr.GetFloat32(); err != nil {
      return nil, err
    } else {
      r := make([]float64, len(x))
      for i := range x {
        r[i] = float64(x[i])
      }
      return r, nil
    }
  case "i8":
    if x, err := npr.GetInt64(); err != nil {
      return nil, err
    } else {
      r := make([]float64, len(x))
      for i := range x {
        r[i] = float64(x[i])
      }
      return r, nil
    }
  case "i4":
    if x, err := npr.GetInt32(); err != nil {
      return nil, err
    } else {
      r := make([]float64, len(x))
      for i := range x {
        r[i] = float64(x[i])
      }
      return r, nil
    }
  default:
    return nil, fmt.Errorf("unsupported numpy data type `%s'", npr.Dtype)
  }
}

/* -------------------------------------------------------------------------- */

func exportNpy(filename string, write func(io.WriteCloser) error) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  w := bufio.NewWriter(f)
  if err := write(nopCloser{w}); err != nil {
    f.Close()
    return fmt.Errorf("writing `%s' failed: %w", filename, err)
  }
  if err := w.Flush(); err != nil {
    f.Close()
    return err
  }
  return f.Close()
}

func ExportNpyFloat64(filename string, x []float64) error {
  return exportNpy(filename, func(w io.WriteCloser) error {
    return writeNpyFloat64(w, x)
  })
}

func ExportNpyInt(filename string, x []int) error {
  return exportNpy(filename, func(w io.WriteCloser) error {
    return writeNpyInt(w, x)
  })
}

func ImportNpy(filename string) ([]float64, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  x, err := readNpy(f)
  if err != nil {
    return nil, fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return x, nil
}

/* numpy archives
 * -------------------------------------------------------------------------- */

type NpzEntry struct {
  Name   string
  Values []float64
  // store values as 64-bit integers
  Integer bool
}

// Named arrays stored in a single zip file, one `.npy' member per array.
type NpzArchive struct {
  Entries []NpzEntry
}

func (archive *NpzArchive) AddFloat64(name string, x []float64) {
  archive.Entries = append(archive.Entries, NpzEntry{Name: name, Values: x})
}

func (archive *NpzArchive) AddInt(name string, x []int) {
  archive.Entries = append(archive.Entries, NpzEntry{Name: name, Values: intsToFloat64(x), Integer: true})
}

func (archive NpzArchive) Get(name string) ([]float64, bool) {
  for _, entry := range archive.Entries {
    if entry.Name == name {
      return entry.Values, true
    }
  }
  return nil, false
}

// Like Get but returns an error if the array does not exist.
func (archive NpzArchive) Lookup(name string) ([]float64, error) {
  if x, ok := archive.Get(name); ok {
    return x, nil
  }
  return nil, fmt.Errorf("array `%s' not found in archive", name)
}

func (archive NpzArchive) Names() []string {
  r := make([]string, len(archive.Entries))
  for i, entry := range archive.Entries {
    r[i] = entry.Name
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (archive NpzArchive) Write(w io.Writer) error {
  z := zip.NewWriter(w)
  for _, entry := range archive.Entries {
    // members are stored uncompressed
    m, err := z.CreateHeader(&zip.FileHeader{Name: entry.Name + ".npy", Method: zip.Store})
    if err != nil {
      return err
    }
    if entry.Integer {
      err = writeNpyInt(nopCloser{m}, float64sToInt(entry.Values))
    } else {
      err = writeNpyFloat64(nopCloser{m}, entry.Values)
    }
    if err != nil {
      return fmt.Errorf("writing array `%s' failed: %w", entry.Name, err)
    }
  }
  return z.Close()
}

func (archive NpzArchive) Export(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  if err := archive.Write(f); err != nil {
    f.Close()
    return fmt.Errorf("writing `%s' failed: %w", filename, err)
  }
  return f.Close()
}

func (archive *NpzArchive) Read(r io.ReaderAt, size int64) error {
  z, err := zip.NewReader(r, size)
  if err != nil {
    return err
  }
  entries := []NpzEntry{}
  for _, file := range z.File {
    if !strings.HasSuffix(file.Name, ".npy") {
      continue
    }
    f, err := file.Open()
    if err != nil {
      return err
    }
    x, err := readNpy(f)
    f.Close()
    if err != nil {
      return fmt.Errorf("reading array `%s' failed: %w", file.Name, err)
    }
    entries = append(entries, NpzEntry{Name: strings.TrimSuffix(file.Name, ".npy"), Values: x})
  }
  archive.Entries = entries
  return nil
}

func (archive *NpzArchive) Import(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  info, err := f.Stat()
  if err != nil {
    return err
  }
  if err := archive.Read(f, info.Size()); err != nil {
    return fmt.Errorf("reading `%s' failed: %w", filename, err)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Archive with the arrays of an occupancy aggregation.
func (occupancy Occupancy) NpzArchive() NpzArchive {
  archive := NpzArchive{}
  archive.AddInt    ("positions",           occupancy.Positions)
  archive.AddFloat64("polii_density_avg",   occupancy.Average[PolII])
  archive.AddFloat64("ser7p_density_avg",   occupancy.Average[Ser7P])
  archive.AddFloat64("polii_density_total", occupancy.Total  [PolII])
  archive.AddFloat64("ser7p_density_total", occupancy.Total  [Ser7P])
  return archive
}

// Archive with all curves of a density comparison.
func (c DensityComparison) NpzArchive() NpzArchive {
  archive := NpzArchive{}
  archive.AddFloat64("positions",                 c.Positions)
  archive.AddFloat64("polii_density_normalized",  c.PolII)
  archive.AddFloat64("ser7p_density_normalized",  c.Ser7P)
  archive.AddFloat64("ratio_ser7p_polii",         c.Ratio)
  archive.AddFloat64("log2_ratio_ser7p_polii",    c.Log2Ratio)
  archive.AddFloat64("difference_ser7p_polii",    c.Difference)
  return archive
}
