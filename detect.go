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

package chromswitch

/* -------------------------------------------------------------------------- */

import "math"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// RegionCall is the result of the pipeline for one query region. Empty
// marks regions without enough data to cluster; such rows carry K = 0 and
// NaN scores but are not errors.
type RegionCall struct {
  Region        Region
  K             int
  AvgSilhouette float64
  Scores        Scores
  Assignment    map[string]int
  Empty         bool
}

func emptyRegionCall(region Region) RegionCall {
  nan    := math.NaN()
  scores := Scores{nan, nan, nan, nan, nan, nan, nan}
  return RegionCall{region, 0, nan, scores, nil, true}
}

/* -------------------------------------------------------------------------- */

// CallRegion runs the per-region pipeline on a preprocessed sample set:
// extract local peaks, build the feature matrix, cluster, and score the
// clusters against the condition labels. Failures to build a usable matrix
// terminate in an empty call, never an error.
func CallRegion(sampleSet SampleSet, conditions Conditions, region Region, config Config) RegionCall {
  local := Retrieve(sampleSet, conditions, region)
  if local.Empty() {
    return emptyRegionCall(region)
  }
  var matrix FeatureMatrix
  var err    error
  switch config.Strategy {
  case "binary":
    matrix, err = Binarize(local, config.Reduce, config.Gap, config.P,
      config.IncludeFeatureCount)
  default:
    matrix, err = Summarize(local, config.StatAttributes, config.UseFraction,
      config.UseCount)
  }
  if err != nil {
    // e.g. no unique peaks survived the overlap threshold
    return emptyRegionCall(region)
  }
  if matrix.InformativeRows() < 2 {
    // not enough information to cluster
    return emptyRegionCall(region)
  }
  result := SelectK(matrix, config.OptimalClusters)
  table, err := NewContingencyTable(result.Assignment, conditions)
  if err != nil {
    return emptyRegionCall(region)
  }
  call := RegionCall{}
  call.Region        = region
  call.K             = result.K
  call.AvgSilhouette = result.AvgSilhouette
  call.Scores        = table.Validate()
  call.Assignment    = result.Assignment
  return call
}

/* -------------------------------------------------------------------------- */

// Preprocess validates the configuration and the sample metadata and
// applies the genome-wide filtering and normalization steps once. The
// returned sample set is treated as read-only by all region workers.
// Attribute names referenced by the summary strategy are checked here: a
// misspelled attribute is a setup mistake and aborts the run instead of
// degrading every region to an empty row.
func Preprocess(sampleSet SampleSet, conditions Conditions, config Config) (SampleSet, error) {
  if err := config.Validate(); err != nil {
    return SampleSet{}, err
  }
  if err := sampleSet.CheckConditions(conditions); err != nil {
    return SampleSet{}, err
  }
  if config.Strategy == "summary" {
    for _, attribute := range config.StatAttributes {
      for _, sample := range sampleSet.Samples {
        p := sampleSet.Peaks[sample]
        if p.Length() > 0 && p.GetMetaFloat(attribute) == nil {
          return SampleSet{}, newConfigError(
            "summarize: sample `%s' has no numeric attribute `%s'", sample, attribute)
        }
      }
    }
  }
  if config.Filter {
    r, err := sampleSet.Filter(config.FilterThresholdMap())
    if err != nil {
      return SampleSet{}, err
    }
    sampleSet = r
  }
  if config.Normalize {
    r, err := sampleSet.Normalize(config.NormalizeAttributes, config.TailFraction)
    if err != nil {
      return SampleSet{}, err
    }
    sampleSet = r
  }
  return sampleSet, nil
}

/* -------------------------------------------------------------------------- */

// DetectSwitches runs the full pipeline: preprocess the sample set once and
// process all query regions on the given number of threads. Regions are
// independent; results are returned in input order. A region that cannot be
// called yields an empty row and does not affect the other regions.
func DetectSwitches(sampleSet SampleSet, conditions Conditions, regions []Region, config Config, threads int) ([]RegionCall, error) {
  sampleSet, err := Preprocess(sampleSet, conditions, config)
  if err != nil {
    return nil, err
  }
  if threads < 1 {
    threads = 1
  }
  // the preprocessed sample set is read-only from here on and may be
  // shared by all threads
  pool  := threadpool.New(threads, 100*threads)
  calls := make([]RegionCall, len(regions))

  g := pool.NewJobGroup()

  for n, i := len(regions), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      calls[j] = CallRegion(sampleSet, conditions, regions[j], config)
      return nil
    })
  }
  pool.Wait(g)

  return calls, nil
}
