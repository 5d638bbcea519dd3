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


package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "image/color"
import   "io"
import   "os"
import   "path/filepath"
import   "time"

import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/vg"
import   log "github.com/sirupsen/logrus"

import . "github.com/polmodel/dataprocess"
import   "github.com/polmodel/dataprocess/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  Column      int
  GeneLength  int
  Window      int
  HistBinSize int
  Zoom        int
  Figure      string
  Threads     int
  Strict      bool
  Progress    bool
  Verbose     int
}

/* -------------------------------------------------------------------------- */

func setVerbose(config Config) {
  switch {
  case config.Verbose >= 2:
    log.SetLevel(log.DebugLevel)
  case config.Verbose == 1:
    log.SetLevel(log.InfoLevel)
  default:
    log.SetLevel(log.WarnLevel)
  }
}

/* -------------------------------------------------------------------------- */

func importPositions(config Config, name, filename string) ([]int, error) {
  options := DefaultLogReaderOptions()
  options.Strict   = config.Strict
  options.Progress = func(lines int) {
    log.WithField("mark", name).Infof("Processed %d lines...", lines)
  }
  if config.Progress {
    options.Monitor = func(r io.Reader, size int64) io.Reader {
      return progress.NewReader(r, size, os.Stderr)
    }
  }
  log.WithFields(log.Fields{"mark": name, "file": filename}).Info("Reading positions...")
  start := time.Now()

  result, err := ImportPositions(filename, config.Column, options)
  if err != nil {
    return nil, err
  }
  if result.Skipped > 0 {
    log.Warnf("skipped %d malformed lines in `%s'", result.Skipped, filename)
  }
  log.WithField("mark", name).Infof("Finished reading %d positions in %.2f seconds", len(result.Positions), time.Since(start).Seconds())
  return result.Positions, nil
}

func importAllPositions(config Config, filenamePolII, filenameSer7P string) (polii, ser7p []int) {
  threads := config.Threads
  if config.Progress {
    // progress bars of parallel readers would overwrite each other
    threads = 1
  }
  pool      := threadpool.New(threads, 100*threads)
  names     := []string{"PolII", "Ser7P"}
  filenames := []string{filenamePolII, filenameSer7P}
  positions := make([][]int, 2)

  if err := pool.RangeJob(0, 2, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if r, err := importPositions(config, names[i], filenames[i]); err != nil {
      return err
    } else {
      positions[i] = r
    }
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  return positions[0], positions[1]
}

/* -------------------------------------------------------------------------- */

func exportNpy(outputDir, name string, x []float64) {
  if err := ExportNpyFloat64(filepath.Join(outputDir, name), x); err != nil {
    log.Fatal(err)
  }
}

func exportNpyInt(outputDir, name string, x []int) {
  if err := ExportNpyInt(filepath.Join(outputDir, name), x); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func countEdges(config Config, to int) []float64 {
  edges := HistogramEdges(0, float64(to), float64(config.HistBinSize))
  if len(edges) == 0 || edges[len(edges)-1] < float64(to) {
    edges = append(edges, float64(to))
  }
  return edges
}

func plotCounts(config Config, p *plot.Plot, polii, ser7p []int, to int) {
  edges := countEdges(config, to)
  if len(edges) < 2 {
    return
  }
  h1, err := HistogramBinned(polii, edges)
  if err != nil {
    log.Fatal(err)
  }
  h2, err := HistogramBinned(ser7p, edges)
  if err != nil {
    log.Fatal(err)
  }
  if err := AddHistogram(p, edges, h1, Transparent(ColorBlue, 0.6), "Count of PolII"); err != nil {
    log.Fatal(err)
  }
  if err := AddHistogram(p, edges, h2, Transparent(ColorRed, 0.6), "Count of Ser7P"); err != nil {
    log.Fatal(err)
  }
}

func plotCurves(p *plot.Plot, x []float64, n int, curves [][]float64, colors []color.Color, labels []string) {
  if n > len(x) {
    n = len(x)
  }
  for i, y := range curves {
    if err := AddCurve(p, x[:n], y[:n], colors[i], false, labels[i]); err != nil {
      log.Fatal(err)
    }
  }
}

func plotPositions(config Config, filename string, polii, ser7p []int, x, poliiMa, ser7pMa, difference, ratio, log2Ratio []float64) {
  figure := NewFigure(5, 2)
  xlabel := "Position on Gene (x100 bp)"
  zoom   := fmt.Sprintf(" (positions 0-%d)", config.Zoom)

  for j, n := range []int{config.GeneLength, config.Zoom} {
    suffix := ""
    if j == 1 {
      suffix = zoom
    }
    plotCounts(config, figure.Panel(0, j, "PolII and Ser7P counts" + suffix, xlabel, "Count"), polii, ser7p, n)

    plotCurves(figure.Panel(1, j, fmt.Sprintf("Moving average (window %d)", config.Window) + suffix, xlabel, "Count"),
      x, n, [][]float64{poliiMa, ser7pMa}, []color.Color{ColorBlue, ColorRed}, []string{"PolII", "Ser7P"})

    p := figure.Panel(2, j, "Difference (Ser7P - PolII)" + suffix, xlabel, "Difference")
    plotCurves(p, x, n, [][]float64{difference}, []color.Color{ColorDarkCyan}, []string{""})
    AddReferenceLine(p, 0, "")

    p  = figure.Panel(3, j, "Ratio (Ser7P / PolII)" + suffix, xlabel, "Ratio")
    plotCurves(p, x, n, [][]float64{ratio}, []color.Color{ColorOrange}, []string{""})
    AddReferenceLine(p, 1, "Ratio = 1")

    p  = figure.Panel(4, j, "Log2 ratio (Ser7P / PolII)" + suffix, xlabel, "Log2 ratio")
    plotCurves(p, x, n, [][]float64{log2Ratio}, []color.Color{ColorGreen}, []string{""})
    AddReferenceLine(p, 0, "")
  }
  log.WithField("file", filename).Info("Writing figure")
  if err := figure.Save(15*vg.Inch, 15*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func extractPositions(config Config, filenamePolII, filenameSer7P, outputDir string) {
  if err := os.MkdirAll(outputDir, 0755); err != nil {
    log.Fatal(err)
  }
  polii, ser7p := importAllPositions(config, filenamePolII, filenameSer7P)

  log.Info("Saving raw position arrays...")
  exportNpyInt(outputDir, "Poll_positions.npy", polii)
  exportNpyInt(outputDir, "Ser7_positions.npy", ser7p)

  // one bin per position
  n := config.GeneLength
  poliiHist, err := Histogram(polii, n, 0, float64(n))
  if err != nil {
    log.Fatal(err)
  }
  ser7pHist, err := Histogram(ser7p, n, 0, float64(n))
  if err != nil {
    log.Fatal(err)
  }
  poliiMa, err := MovingAverage(poliiHist, config.Window)
  if err != nil {
    log.Fatal(err)
  }
  ser7pMa, err := MovingAverage(ser7pHist, config.Window)
  if err != nil {
    log.Fatal(err)
  }
  if len(poliiMa) > n {
    // window is larger than the gene
    poliiMa = poliiMa[:n]
    ser7pMa = ser7pMa[:n]
  }
  difference := Difference(ser7pMa, poliiMa)
  ratio      := Ratio(ser7pMa, poliiMa, 0)
  log2Ratio  := Log2(ratio, 0)

  log.Info("Saving processed arrays...")
  exportNpy(outputDir, "Poll_ma.npy",     poliiMa)
  exportNpy(outputDir, "Ser7_ma.npy",     ser7pMa)
  exportNpy(outputDir, "difference.npy",  difference)
  exportNpy(outputDir, "ratio.npy",       ratio)
  exportNpy(outputDir, "log2_ratio.npy",  log2Ratio)

  x := make([]float64, n)
  for i := 0; i < n; i++ {
    x[i] = float64(i)
  }
  filenameFigure := filepath.Join(outputDir, config.Figure)
  plotPositions(config, filenameFigure, polii, ser7p, x, poliiMa, ser7pMa, difference, ratio, log2Ratio)
  fmt.Printf("Plot saved to: %s\n", filenameFigure)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optConfig      := options. StringLong("config",        'c',                 "", "read parameters from file (YAML, TOML or JSON)")
  optColumn      := options.    IntLong("column",         0 ,   PositionColumn, "zero-based column containing positions [default: 4]")
  optGeneLength  := options.    IntLong("gene-length",    0 ,             1000, "length of the gene in bins of 100 bp [default: 1000]")
  optWindow      := options.    IntLong("window",         0 ,               50, "moving average window size [default: 50]")
  optHistBinSize := options.    IntLong("hist-bin-size",  0 , DefaultHistogramBinSize, "bin size of count histograms [default: 100]")
  optZoom        := options.    IntLong("zoom",           0 ,               50, "number of positions shown in zoomed panels [default: 50]")
  optFigure      := options. StringLong("figure",         0 ,"count_ratio.pdf", "name of the figure file [default: count_ratio.pdf]")
  optThreads     := options.    IntLong("threads",        0 ,                2, "number of threads [default: 2]")
  optStrict      := options.   BoolLong("strict",         0 ,                   "abort on malformed lines")
  optProgress    := options.   BoolLong("progress",       0 ,                   "show progress bar")
  optVerbose     := options.CounterLong("verbose",       'v',                   "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",          'h',                   "print help")

  options.SetParameters("<POLII.log> <SER7P.log> [<OUTPUT-DIR>]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Column      = *optColumn
  config.GeneLength  = *optGeneLength
  config.Window      = *optWindow
  config.HistBinSize = *optHistBinSize
  config.Zoom        = *optZoom
  config.Figure      = *optFigure
  config.Threads     = *optThreads
  config.Strict      = *optStrict
  config.Progress    = *optProgress
  config.Verbose     = *optVerbose
  setVerbose(config)

  if *optConfig != "" {
    parameters, err := ImportParameters(*optConfig)
    if err != nil {
      log.Fatal(err)
    }
    // options given on the command line take precedence
    for name, value := range map[string]*int{
      "column"       : &config.Column,
      "gene-length"  : &config.GeneLength,
      "window"       : &config.Window,
      "hist-bin-size": &config.HistBinSize,
      "zoom"         : &config.Zoom,
      "threads"      : &config.Threads } {
      if !options.Lookup(name).Seen() {
        *value = parameters.GetInt(name, *value)
      }
    }
    if !options.Lookup("figure").Seen() {
      config.Figure = parameters.GetString("figure", config.Figure)
    }
    if !options.Lookup("strict").Seen() {
      config.Strict = parameters.GetBool("strict", config.Strict)
    }
  }
  if config.Column < 0 || config.GeneLength < 1 || config.Window < 1 || config.HistBinSize < 1 || config.Zoom < 1 || config.Threads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  outputDir := "."
  if len(options.Args()) == 3 {
    outputDir = options.Args()[2]
  }
  extractPositions(config, options.Args()[0], options.Args()[1], outputDir)
}
