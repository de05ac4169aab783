/* Copyright (C) 2024 Philipp Benner
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
import   "math"
import   "os"
import   "strconv"
import   "strings"
import   "sync/atomic"

import . "github.com/pbenner/chromswitch"
import   "github.com/pbenner/chromswitch/lib/progress"

import   "github.com/go-gota/gota/dataframe"
import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Output     string
  PlotScores string
  Status     bool
  Threads    int
  Verbose    int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

// importSamples reads the sample metadata table and the per-sample peak
// files it references. The table must be tab separated with the columns
// Sample, Condition, and File; files ending in `.narrowPeak[.gz]' are read
// as narrowPeak, everything else as BED.
func importSamples(config SessionConfig, filename string) (Conditions, SampleSet) {
  conditions, err := ImportConditions(filename)
  if err != nil {
    logrus.Fatalf("reading condition metadata failed: %v", err)
  }
  f, err := os.Open(filename)
  if err != nil {
    logrus.Fatalf("reading condition metadata failed: %v", err)
  }
  defer f.Close()
  df := dataframe.ReadCSV(f,
    dataframe.WithDelimiter('\t'),
    dataframe.HasHeader(true))
  if df.Error() != nil {
    logrus.Fatalf("reading condition metadata failed: %v", df.Error())
  }
  hasFile := false
  for _, name := range df.Names() {
    if name == "File" {
      hasFile = true
    }
  }
  if !hasFile {
    logrus.Fatalf("condition metadata `%s' must have a File column", filename)
  }
  samples := df.Col("Sample").Records()
  files   := df.Col("File")  .Records()

  peaks := make(map[string]PeakSet)
  for i, sample := range samples {
    p := PeakSet{}
    PrintStderr(config, 1, "Reading peaks for sample `%s' from `%s'... ", sample, files[i])
    if strings.HasSuffix(files[i], ".narrowPeak") || strings.HasSuffix(files[i], ".narrowPeak.gz") {
      err = p.ImportNarrowPeak(files[i])
    } else {
      err = p.ImportBed(files[i])
    }
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      logrus.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
    peaks[sample] = p
  }
  sampleSet, err := NewSampleSet(samples, peaks)
  if err != nil {
    logrus.Fatal(err)
  }
  return conditions, sampleSet
}

func importRegions(config SessionConfig, filename string) []Region {
  PrintStderr(config, 1, "Reading query regions from `%s'... ", filename)
  regions, err := ImportRegionsBed(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    logrus.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

/* -------------------------------------------------------------------------- */

func callRegions(config SessionConfig, sampleSet SampleSet, conditions Conditions, regions []Region, options Config) RegionCalls {

  pool  := threadpool.New(config.Threads, 100*config.Threads)
  calls := make([]RegionCall, len(regions))

  if !config.Status {
    PrintStderr(config, 1, "Calling chromatin state switches... ")
  }
  g := pool.NewJobGroup()

  // the status bar tracks completed regions, not enqueued jobs
  done := int64(0)

  for n, i := len(regions), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      calls[j] = CallRegion(sampleSet, conditions, regions[j], options)
      if config.Status {
        progress.New(n, 1000).PrintStderr(int(atomic.AddInt64(&done, 1)))
      }
      return nil
    })
  }
  pool.Wait(g)
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }
  return calls
}

/* -------------------------------------------------------------------------- */

func plotConsensus(config SessionConfig, calls RegionCalls, filename string) {
  values := plotter.Values{}
  for _, call := range calls {
    if !math.IsNaN(call.Scores.Consensus) {
      values = append(values, call.Scores.Consensus)
    }
  }
  if len(values) == 0 {
    logrus.Warn("no scored regions, skipping score histogram")
    return
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "consensus score"
  p.Y.Label.Text = "regions"

  h, err := plotter.NewHist(values, 20)
  if err != nil {
    logrus.Fatal(err)
  }
  p.Add(h)

  PrintStderr(config, 1, "Writing score histogram to `%s'... ", filename)
  if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    logrus.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func exportCalls(config SessionConfig, calls RegionCalls, conditions Conditions, filename string) {
  if filename == "" {
    if err := calls.WriteTable(os.Stdout, conditions); err != nil {
      logrus.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing results to `%s'... ", filename)
    if err := calls.ExportTable(filename, conditions); err != nil {
      PrintStderr(config, 1, "failed\n")
      logrus.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func parseFloat(options *getopt.Set, name, value string) float64 {
  v, err := strconv.ParseFloat(value, 64)
  if err != nil {
    fmt.Fprintf(os.Stderr, "invalid value for option `%s': %s\n", name, value)
    os.Exit(1)
  }
  return v
}

func parseList(value string) []string {
  if value == "" {
    return nil
  }
  return strings.Split(value, ",")
}

func parseFloatList(options *getopt.Set, name, value string) []float64 {
  result := []float64{}
  for _, field := range parseList(value) {
    result = append(result, parseFloat(options, name, field))
  }
  return result
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optOutput      := options. StringLong("output",           0 , "",        "write results to file (default: stdout)")
  optStrategy    := options. StringLong("strategy",         0 , "summary", "feature matrix strategy [summary (default), binary]")
  optStatAttr    := options. StringLong("stat-attributes",  0 , "",        "summary: comma separated peak statistics, e.g. signalValue,qValue")
  optNoFraction  := options.   BoolLong("no-fraction",      0 ,            "summary: drop the covered-fraction feature")
  optNoCount     := options.   BoolLong("no-count",         0 ,            "summary: drop the peak-count feature")
  optNoReduce    := options.   BoolLong("no-reduce",        0 ,            "binary: do not merge nearby peaks per sample")
  optGap         := options.    IntLong("gap",              0 , 300,       "binary: merge peaks closer than this many bp")
  optP           := options. StringLong("p",                0 , "0.4",     "binary: reciprocal overlap threshold in (0,1]")
  optNFeatures   := options.   BoolLong("n-features",       0 ,            "binary: append the unique peak count as a feature")
  optFilterAttr  := options. StringLong("filter-attributes", 0 , "",       "comma separated attributes to filter on")
  optFilterThr   := options. StringLong("filter-thresholds", 0 , "",       "comma separated minimum values, one per filter attribute")
  optNormalize   := options. StringLong("normalize",        0 , "",        "comma separated attributes to normalize genome-wide")
  optTail        := options. StringLong("tail-fraction",    0 , "0.01",    "normalization tail fraction in [0,1]")
  optFixedK      := options.   BoolLong("fixed-k",          0 ,            "always use k=2 instead of the silhouette-optimal k")
  optPlotScores  := options. StringLong("plot-scores",      0 , "",        "write a histogram of consensus scores to file")
  optThreads     := options.    IntLong("threads",          0 ,  1,        "number of threads")
  optStatus      := options.   BoolLong("status",           0 ,            "show status bar")

  optVerbose     := options.CounterLong("verbose",         'v',            "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",            'h',            "print help")

  options.SetParameters("<METADATA.tsv> <REGIONS.bed>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameMetadata := options.Args()[0]
  filenameRegions  := options.Args()[1]

  config.Output     = *optOutput
  config.PlotScores = *optPlotScores
  config.Status     = *optStatus
  config.Threads    = *optThreads
  config.Verbose    = *optVerbose

  pipeline := DefaultConfig()
  pipeline.Strategy            = *optStrategy
  pipeline.StatAttributes      = parseList(*optStatAttr)
  pipeline.UseFraction         = !*optNoFraction
  pipeline.UseCount            = !*optNoCount
  pipeline.Reduce              = !*optNoReduce
  pipeline.Gap                 = *optGap
  pipeline.P                   = parseFloat(options, "p", *optP)
  pipeline.IncludeFeatureCount = *optNFeatures
  pipeline.FilterAttributes    = parseList(*optFilterAttr)
  pipeline.FilterThresholds    = parseFloatList(options, "filter-thresholds", *optFilterThr)
  pipeline.Filter              = len(pipeline.FilterAttributes) > 0
  pipeline.NormalizeAttributes = parseList(*optNormalize)
  pipeline.Normalize           = len(pipeline.NormalizeAttributes) > 0
  pipeline.TailFraction        = parseFloat(options, "tail-fraction", *optTail)
  pipeline.OptimalClusters     = !*optFixedK

  conditions, sampleSet := importSamples(config, filenameMetadata)
  regions := importRegions(config, filenameRegions)

  sampleSet, err := Preprocess(sampleSet, conditions, pipeline)
  if err != nil {
    logrus.Fatal(err)
  }
  calls := callRegions(config, sampleSet, conditions, regions, pipeline)

  exportCalls(config, calls, conditions, config.Output)

  if config.PlotScores != "" {
    plotConsensus(config, calls, config.PlotScores)
  }
}
