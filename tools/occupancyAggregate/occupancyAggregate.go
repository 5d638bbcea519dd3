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
import   "os"
import   "path/filepath"

import   "github.com/pborman/getopt"
import   "gonum.org/v1/plot/vg"
import   log "github.com/sirupsen/logrus"

import . "github.com/polmodel/dataprocess"
import   "github.com/polmodel/dataprocess/lib/progress"

/* -------------------------------------------------------------------------- */

type Config struct {
  GeneLength int
  Runs       int
  Prefix     string
  Strict     bool
  Progress   bool
  Verbose    int
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

func importOccupancy(config Config, filename string) Occupancy {
  options := DefaultOccupancyOptions()
  options.Strict   = config.Strict
  options.Progress = func(lines int) {
    if lines > 0 {
      log.Infof("Processed %d lines...", lines)
    }
  }
  if config.Progress && config.Runs > 0 {
    bar := progress.New(config.Runs, 100)
    options.OnRun = func(run int) {
      bar.PrintStderr(run)
    }
  }
  log.WithField("file", filename).Info("Aggregating PolII and Ser7P occupancy")

  occupancy, err := ImportOccupancy(filename, config.GeneLength, config.Runs, options)
  if err != nil {
    log.Fatal(err)
  }
  log.WithFields(log.Fields{
    "runs"        : occupancy.Runs,
    "lines"       : occupancy.Lines,
    "skipped"     : occupancy.Skipped,
    "out-of-range": occupancy.OutOfRange }).Info("Finished reading simulation log")

  if occupancy.Skipped > 0 {
    log.Warnf("skipped %d malformed lines in `%s'", occupancy.Skipped, filename)
  }
  if config.Runs > 0 && occupancy.Runs < config.Runs {
    log.Warnf("simulation log contains %d runs, averages are computed over %d runs", occupancy.Runs, config.Runs)
  }
  log.Debugf("total PolII counts: %v", occupancy.Total[PolII])
  log.Debugf("total Ser7P counts: %v", occupancy.Total[Ser7P])
  return occupancy
}

/* -------------------------------------------------------------------------- */

type panel struct {
  title  string
  ylabel string
  y      []float64
  color  color.Color
}

func plotOccupancy(config Config, occupancy Occupancy, runs int, filename string) {
  x := make([]float64, len(occupancy.Positions))
  for i, pos := range occupancy.Positions {
    x[i] = float64(pos)
  }
  panels := [2][2]panel{
    { {fmt.Sprintf("Pol II Density vs Position (Averaged over %d simulations)", runs),
        "Average Pol II count per simulation", occupancy.Average[PolII], ColorBlue},
      {fmt.Sprintf("Ser7P Density vs Position (p=1 only, averaged over %d simulations)", runs),
        "Average Ser7P count per simulation", occupancy.Average[Ser7P], ColorRed} },
    { {fmt.Sprintf("Pol II Density vs Position (Total counts from %d simulations)", runs),
        "Total Pol II count across all simulations", occupancy.Total[PolII], ColorDarkBlue},
      {fmt.Sprintf("Ser7P Density vs Position (Total counts from %d simulations)", runs),
        "Total Ser7P count across all simulations", occupancy.Total[Ser7P], ColorDarkRed} } }

  figure := NewFigure(2, 2)
  for i := 0; i < 2; i++ {
    for j := 0; j < 2; j++ {
      p := figure.Panel(i, j, panels[i][j].title, "Position along gene", panels[i][j].ylabel)
      if err := AddBars(p, x, panels[i][j].y, 1.0, Transparent(panels[i][j].color, 0.7), ""); err != nil {
        log.Fatal(err)
      }
    }
  }
  log.WithField("file", filename).Info("Writing figure")
  if err := figure.Save(15*vg.Inch, 10*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func aggregate(config Config, filenameLog, outputDir string) {
  if err := os.MkdirAll(outputDir, 0755); err != nil {
    log.Fatal(err)
  }
  occupancy := importOccupancy(config, filenameLog)

  runs := config.Runs
  if runs == 0 {
    runs = occupancy.Runs
  }
  filenameFigure  := filepath.Join(outputDir, fmt.Sprintf("%s_%dsim.pdf", config.Prefix, runs))
  filenameTable   := filepath.Join(outputDir, fmt.Sprintf("%s_polii_ser7p_density_data.txt", config.Prefix))
  filenameArchive := filepath.Join(outputDir, fmt.Sprintf("%s_polii_ser7p_density_arrays.npz", config.Prefix))

  plotOccupancy(config, occupancy, runs, filenameFigure)
  fmt.Printf("Plot saved to: %s\n", filenameFigure)

  if err := occupancy.ExportTable(filenameTable); err != nil {
    log.Fatal(err)
  }
  fmt.Printf("Data saved to: %s\n", filenameTable)

  if err := occupancy.NpzArchive().Export(filenameArchive); err != nil {
    log.Fatal(err)
  }
  fmt.Printf("NumPy arrays saved to: %s\n", filenameArchive)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optConfig     := options. StringLong("config",      'c',     "", "read parameters from file (YAML, TOML or JSON)")
  optGeneLength := options.    IntLong("gene-length",  0 ,   1000, "length of the gene in bins of 100 bp [default: 1000]")
  optRuns       := options.    IntLong("runs",         0 ,    500, "number of simulation runs to aggregate, 0 for all [default: 500]")
  optPrefix     := options. StringLong("prefix",       0 ,"trans", "prefix of output files [default: trans]")
  optStrict     := options.   BoolLong("strict",       0 ,         "abort on malformed lines")
  optProgress   := options.   BoolLong("progress",     0 ,         "show progress bar")
  optVerbose    := options.CounterLong("verbose",     'v',         "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",        'h',         "print help")

  options.SetParameters("<SIMULATION.bcs> [<OUTPUT-DIR>]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.GeneLength = *optGeneLength
  config.Runs       = *optRuns
  config.Prefix     = *optPrefix
  config.Strict     = *optStrict
  config.Progress   = *optProgress
  config.Verbose    = *optVerbose
  setVerbose(config)

  if *optConfig != "" {
    parameters, err := ImportParameters(*optConfig)
    if err != nil {
      log.Fatal(err)
    }
    // options given on the command line take precedence
    if !options.Lookup("gene-length").Seen() {
      config.GeneLength = parameters.GetInt("gene-length", config.GeneLength)
    }
    if !options.Lookup("runs").Seen() {
      config.Runs = parameters.GetInt("runs", config.Runs)
    }
    if !options.Lookup("prefix").Seen() {
      config.Prefix = parameters.GetString("prefix", config.Prefix)
    }
    if !options.Lookup("strict").Seen() {
      config.Strict = parameters.GetBool("strict", config.Strict)
    }
  }
  if config.GeneLength < 1 || config.Runs < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameLog := options.Args()[0]
  outputDir   := "."
  if len(options.Args()) == 2 {
    outputDir = options.Args()[1]
  }
  aggregate(config, filenameLog, outputDir)
}
