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

import   "bufio"
import   "fmt"
import   "log"
import   "os"

import . "github.com/pbenner/chromswitch"

import   "github.com/pborman/getopt"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Verbose int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func exportRegions(config SessionConfig, regions []Region, filename string) {
  var w *bufio.Writer
  if filename == "" {
    w = bufio.NewWriter(os.Stdout)
  } else {
    PrintStderr(config, 1, "Writing regions to `%s'... ", filename)
    f, err := os.Create(filename)
    if err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    defer f.Close()
    w = bufio.NewWriter(f)
  }
  defer w.Flush()
  for _, region := range regions {
    fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", region.Seqname, region.From, region.To, region.Name)
  }
  if filename != "" {
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optOutput  := options. StringLong("output",  0 , "",        "write regions to file (default: stdout)")
  optTable   := options. StringLong("table",   0 , "refGene", "UCSC gene table")

  optVerbose := options.CounterLong("verbose", 'v',           "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',           "print help")

  options.SetParameters("<GENOME>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  genome := options.Args()[0]

  config.Verbose = *optVerbose

  PrintStderr(config, 1, "Querying UCSC table `%s' for genome `%s'... ", *optTable, genome)
  regions, err := ImportRegionsFromUCSC(genome, *optTable)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  exportRegions(config, regions, *optOutput)
}
