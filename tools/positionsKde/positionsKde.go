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
import   "os"
import   "path/filepath"
import   "strconv"

import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"
import   "gonum.org/v1/plot/vg"
import   log "github.com/sirupsen/logrus"

import . "github.com/polmodel/dataprocess"

/* -------------------------------------------------------------------------- */

type Config struct {
  From    float64
  To      float64
  Points  int
  Figure  string
  Threads int
  Verbose int
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

func estimateDensity(config Config, pool threadpool.ThreadPool, name, filename string, x []float64) []float64 {
  samples, err := ImportNpy(filename)
  if err != nil {
    log.Fatal(err)
  }
  kde, err := NewGaussianKDE(samples)
  if err != nil {
    log.Fatalf("estimating %s density failed: %v", name, err)
  }
  log.WithFields(log.Fields{
    "mark"     : name,
    "samples"  : len(samples),
    "bandwidth": kde.Bandwidth }).Info("Evaluating kernel density estimate")

  y, err := kde.EvaluateParallel(pool, x)
  if err != nil {
    log.Fatal(err)
  }
  return y
}

/* -------------------------------------------------------------------------- */

func plotDensities(config Config, filename string, x, polii, ser7p, difference []float64) {
  figure := NewFigure(2, 1)

  p := figure.Panel(0, 0, "KDE of PolII and Ser7P Positions", "Position", "Density")
  if err := AddCurve(p, x, polii, PaletteColor(0), false, "PolII KDE"); err != nil {
    log.Fatal(err)
  }
  if err := AddCurve(p, x, ser7p, PaletteColor(1), false, "Ser7P KDE"); err != nil {
    log.Fatal(err)
  }
  p = figure.Panel(1, 0, "Difference between PolII and Ser7P KDEs", "Position", "Density Difference")
  if err := AddCurve(p, x, difference, PaletteColor(0), false, ""); err != nil {
    log.Fatal(err)
  }
  log.WithField("file", filename).Info("Writing figure")
  if err := figure.Save(12*vg.Inch, 8*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func positionsKde(config Config, filenamePolII, filenameSer7P, outputDir string) {
  if err := os.MkdirAll(outputDir, 0755); err != nil {
    log.Fatal(err)
  }
  pool := threadpool.New(config.Threads, 100*config.Threads)
  x    := Linspace(config.From, config.To, config.Points)

  polii := estimateDensity(config, pool, "PolII", filenamePolII, x)
  ser7p := estimateDensity(config, pool, "Ser7P", filenameSer7P, x)

  difference := Difference(polii, ser7p)
  ratio      := Ratio(polii, ser7p, 0)

  for _, item := range []struct {
    name string
    x    []float64
  }{
    {"kde_Poll_values.npy", polii},
    {"kde_Ser7_values.npy", ser7p},
    {"kde_difference.npy",  difference},
    {"kde_ratio.npy",       ratio},
    {"x_range_kde.npy",     x} } {
    if err := ExportNpyFloat64(filepath.Join(outputDir, item.name), item.x); err != nil {
      log.Fatal(err)
    }
  }
  filenameFigure := filepath.Join(outputDir, config.Figure)
  plotDensities(config, filenameFigure, x, polii, ser7p, difference)
  fmt.Printf("Plot saved to: %s\n", filenameFigure)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optConfig  := options. StringLong("config",  'c',                   "", "read parameters from file (YAML, TOML or JSON)")
  optFrom    := options. StringLong("from",     0 ,                  "0", "first evaluation point [default: 0]")
  optTo      := options. StringLong("to",       0 ,               "1000", "last evaluation point [default: 1000]")
  optPoints  := options.    IntLong("points",   0 ,                 1000, "number of evaluation points [default: 1000]")
  optFigure  := options. StringLong("figure",   0 , "kde_comparison.pdf", "name of the figure file [default: kde_comparison.pdf]")
  optThreads := options.    IntLong("threads",  0 ,                    1, "number of threads [default: 1]")
  optVerbose := options.CounterLong("verbose", 'v',                       "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',                       "print help")

  options.SetParameters("<POLII_POSITIONS.npy> <SER7P_POSITIONS.npy> [<OUTPUT-DIR>]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Verbose = *optVerbose
  setVerbose(config)

  parameters := Parameters{}
  if *optConfig != "" {
    if p, err := ImportParameters(*optConfig); err != nil {
      log.Fatal(err)
    } else {
      parameters = p
    }
  }
  if t, err := strconv.ParseFloat(*optFrom, 64); err != nil {
    log.Fatal(err)
  } else {
    config.From = t
  }
  if t, err := strconv.ParseFloat(*optTo, 64); err != nil {
    log.Fatal(err)
  } else {
    config.To = t
  }
  config.Points  = *optPoints
  config.Figure  = *optFigure
  config.Threads = *optThreads
  // options given on the command line take precedence
  if !options.Lookup("from").Seen() {
    config.From = parameters.GetFloat64("from", config.From)
  }
  if !options.Lookup("to").Seen() {
    config.To = parameters.GetFloat64("to", config.To)
  }
  if !options.Lookup("points").Seen() {
    config.Points = parameters.GetInt("points", config.Points)
  }
  if !options.Lookup("figure").Seen() {
    config.Figure = parameters.GetString("figure", config.Figure)
  }
  if !options.Lookup("threads").Seen() {
    config.Threads = parameters.GetInt("threads", config.Threads)
  }
  if config.Points < 1 || config.Threads < 1 || !(config.From < config.To) {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  outputDir := "."
  if len(options.Args()) == 3 {
    outputDir = options.Args()[2]
  }
  positionsKde(config, options.Args()[0], options.Args()[1], outputDir)
}
