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

import   "errors"
import   "fmt"
import   "io/fs"
import   "os"
import   "path/filepath"
import   "strconv"

import   "github.com/pborman/getopt"
import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/vg"
import   log "github.com/sirupsen/logrus"

import . "github.com/polmodel/dataprocess"

/* -------------------------------------------------------------------------- */

type Config struct {
  DensityParameters
  Zoom        int
  SummaryRows int
  Prefix      string
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

func importDensities(config Config, filename string) (positions, polii, ser7p []float64) {
  archive := NpzArchive{}
  if err := archive.Import(filename); err != nil {
    if errors.Is(err, fs.ErrNotExist) {
      fmt.Fprintf(os.Stderr, "Error: Data file `%s' not found.\n", filename)
      fmt.Fprintf(os.Stderr, "Please run occupancyAggregate first to generate this file.\n")
      os.Exit(1)
    }
    log.Fatal(err)
  }
  var err error
  if positions, err = archive.Lookup("positions"); err != nil {
    log.Fatal(err)
  }
  if polii, err = archive.Lookup("polii_density_avg"); err != nil {
    log.Fatal(err)
  }
  if ser7p, err = archive.Lookup("ser7p_density_avg"); err != nil {
    log.Fatal(err)
  }
  log.WithFields(log.Fields{
    "file"       : filename,
    "gene-length": len(positions) }).Info("Data loaded successfully")
  return
}

/* -------------------------------------------------------------------------- */

// Add the full curves to the left panel and the first `zoom' values to the
// right panel.
func plotRow(config Config, figure Figure, row int, title, ylabel string, f func(p *plot.Plot, c DensityComparison) error, c DensityComparison) {
  zoomTitle := fmt.Sprintf("Zoomed-in (Positions 1-%d) %s", config.Zoom, title)
  fullTitle := fmt.Sprintf("%s (σ=%g)", title, config.Sigma)
  if err := f(figure.Panel(row, 0, fullTitle, "Position along gene", ylabel), c); err != nil {
    log.Fatal(err)
  }
  if err := f(figure.Panel(row, 1, zoomTitle, "Position along gene", ylabel), c.Head(config.Zoom)); err != nil {
    log.Fatal(err)
  }
}

func plotComparison(config Config, c DensityComparison, filename string) {
  figure := NewFigure(4, 2)

  plotRow(config, figure, 0, "Smoothed Pol II and Ser7P Density", "Density",
    func(p *plot.Plot, c DensityComparison) error {
      if err := AddCurve(p, c.Positions, c.PolII, ColorBlue, false, "Pol II (density)"); err != nil {
        return err
      }
      return AddCurve(p, c.Positions, c.Ser7P, ColorRed, true, "Ser7P (density)")
    }, c)
  plotRow(config, figure, 1, "Ratio of Normalized Densities", "Normalized Ser7P / Normalized Pol II Ratio",
    func(p *plot.Plot, c DensityComparison) error {
      if err := AddCurve(p, c.Positions, c.Ratio, ColorOrange, false, ""); err != nil {
        return err
      }
      AddReferenceLine(p, 1, "Ratio = 1")
      return nil
    }, c)
  plotRow(config, figure, 2, "Log2 Ratio of Normalized Densities", "Log2 (Normalized Ser7P / Normalized Pol II Ratio)",
    func(p *plot.Plot, c DensityComparison) error {
      if err := AddCurve(p, c.Positions, c.Log2Ratio, ColorGreen, false, ""); err != nil {
        return err
      }
      AddReferenceLine(p, 0, "Log2 Ratio = 0 (Ratio = 1)")
      return nil
    }, c)
  plotRow(config, figure, 3, "Difference in Density (Ser7P - Pol II)", "Difference in Density (Ser7P - Pol II)",
    func(p *plot.Plot, c DensityComparison) error {
      if err := AddCurve(p, c.Positions, c.Difference, ColorDarkCyan, false, ""); err != nil {
        return err
      }
      AddReferenceLine(p, 0, "Difference = 0")
      return nil
    }, c)

  if err := figure.Save(18*vg.Inch, 18*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func densityComparison(config Config, filenameArchive, outputDir string) {
  if err := os.MkdirAll(outputDir, 0755); err != nil {
    log.Fatal(err)
  }
  positions, polii, ser7p := importDensities(config, filenameArchive)

  log.Infof("Applying Gaussian smoothing to individual densities with sigma=%g...", config.Sigma)
  c, err := CompareDensities(positions, polii, ser7p, config.DensityParameters)
  if err != nil {
    log.Fatal(err)
  }
  filenameFigure  := filepath.Join(outputDir, fmt.Sprintf("%s_polii_ser7p.pdf", config.Prefix))
  filenameArchive  = filepath.Join(outputDir, fmt.Sprintf("%s_polii_ser7p_comparison.npz", config.Prefix))

  plotComparison(config, c, filenameFigure)
  fmt.Printf("All analysis plots saved to: %s\n", filenameFigure)

  if err := c.NpzArchive().Export(filenameArchive); err != nil {
    log.Fatal(err)
  }
  fmt.Printf("Density arrays saved to: %s\n", filenameArchive)

  fmt.Printf("\n--- Summary of first %d values ---\n", c.Head(config.SummaryRows).Length())
  if err := c.WriteSummary(os.Stdout, config.SummaryRows); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optConfig         := options. StringLong("config",          'c',    "", "read parameters from file (YAML, TOML or JSON)")
  optSigma          := options. StringLong("sigma",            0 ,   "5", "standard deviation of the Gaussian smoothing kernel in bins [default: 5]")
  optTruncate       := options. StringLong("truncate",         0 ,   "4", "truncate the Gaussian kernel at this many standard deviations [default: 4]")
  optEpsilon        := options. StringLong("epsilon",          0 ,"1e-9", "pseudocount for ratios and log2 ratios [default: 1e-9]")
  optEpsilonDensity := options. StringLong("epsilon-density",  0 ,"1e-12","pseudocount for density normalization [default: 1e-12]")
  optZoom           := options.    IntLong("zoom",             0 ,    50, "number of positions shown in zoomed panels [default: 50]")
  optSummaryRows    := options.    IntLong("summary-rows",     0 ,    10, "number of positions in the printed summary [default: 10]")
  optPrefix         := options. StringLong("prefix",           0 , "cis", "prefix of output files [default: cis]")
  optVerbose        := options.CounterLong("verbose",         'v',        "verbose level [-v or -vv]")
  optHelp           := options.   BoolLong("help",            'h',        "print help")

  options.SetParameters("<ARRAYS.npz> [<OUTPUT-DIR>]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 && len(options.Args()) != 2 {
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
  // options given on the command line take precedence over the
  // parameter file
  getFloat := func(name, value string) float64 {
    if !options.Lookup(name).Seen() && parameters.IsSet(name) {
      return parameters.GetFloat64(name, 0)
    }
    t, err := strconv.ParseFloat(value, 64)
    if err != nil {
      log.Fatalf("parsing option `%s' failed: %v", name, err)
    }
    return t
  }
  getInt := func(name string, value int) int {
    if !options.Lookup(name).Seen() {
      return parameters.GetInt(name, value)
    }
    return value
  }
  config.Sigma          = getFloat("sigma",           *optSigma)
  config.Truncate       = getFloat("truncate",        *optTruncate)
  config.Epsilon        = getFloat("epsilon",         *optEpsilon)
  config.EpsilonDensity = getFloat("epsilon-density", *optEpsilonDensity)
  config.Zoom           = getInt  ("zoom",            *optZoom)
  config.SummaryRows    = getInt  ("summary-rows",    *optSummaryRows)
  config.Prefix         = *optPrefix
  if !options.Lookup("prefix").Seen() {
    config.Prefix = parameters.GetString("prefix", config.Prefix)
  }
  if config.Sigma < 0 || config.Truncate <= 0 || config.Zoom < 1 || config.SummaryRows < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameArchive := options.Args()[0]
  outputDir       := "."
  if len(options.Args()) == 2 {
    outputDir = options.Args()[1]
  }
  densityComparison(config, filenameArchive, outputDir)
}
