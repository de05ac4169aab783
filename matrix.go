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

import "fmt"
import "sort"

import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// FeatureMatrix is a samples x features matrix. Rows appear in the sample
// order of the condition metadata; there are no missing cells.
type FeatureMatrix struct {
  Samples []string
  Names   []string
  Data    [][]float64
}

func (m FeatureMatrix) NRows() int {
  return len(m.Data)
}

func (m FeatureMatrix) NCols() int {
  return len(m.Names)
}

// Number of samples that have at least one nonzero feature.
func (m FeatureMatrix) InformativeRows() int {
  n := 0
  for _, row := range m.Data {
    for _, v := range row {
      if v != 0.0 {
        n++
        break
      }
    }
  }
  return n
}

/* summary strategy
 * -------------------------------------------------------------------------- */

// Summarize builds a feature matrix of per-sample summary statistics. For
// every attribute listed the mean, median, and maximum over the sample's
// peaks in the region are computed; samples without peaks get zeros. If
// useFraction is set, the fraction of the region covered by the sample's
// peaks is appended, and if useCount is set, the raw peak count. Column
// order is attribute major (mean, median, max), then fraction, then count.
func Summarize(local LocalPeaks, statAttributes []string, useFraction, useCount bool) (FeatureMatrix, error) {
  if len(statAttributes) == 0 && !useFraction && !useCount {
    return FeatureMatrix{}, newConfigError(
      "summarize: no feature columns requested")
  }
  names := []string{}
  for _, attribute := range statAttributes {
    names = append(names, attribute+"_mean", attribute+"_median", attribute+"_max")
  }
  if useFraction {
    names = append(names, "fraction_region")
  }
  if useCount {
    names = append(names, "n_peaks")
  }
  data := make([][]float64, len(local.Samples))
  for i, sample := range local.Samples {
    p   := local.Peaks[sample]
    row := []float64{}
    for _, attribute := range statAttributes {
      values := p.GetMetaFloat(attribute)
      if values == nil && p.Length() > 0 {
        return FeatureMatrix{}, newConfigError(
          "summarize: sample `%s' has no numeric attribute `%s'", sample, attribute)
      }
      if len(values) == 0 {
        // empty samples contribute zeros by convention
        row = append(row, 0.0, 0.0, 0.0)
        continue
      }
      sorted := append([]float64{}, values...)
      sort.Float64s(sorted)
      row = append(row,
        stat.Mean(values, nil),
        stat.Quantile(0.5, stat.Empirical, sorted, nil),
        floats.Max(values))
    }
    if useFraction {
      row = append(row, coveredFraction(p, local.Region))
    }
    if useCount {
      row = append(row, float64(p.Length()))
    }
    data[i] = row
  }
  return FeatureMatrix{append([]string{}, local.Samples...), names, data}, nil
}

// Fraction of the region covered by the union of the sample's peaks.
func coveredFraction(p PeakSet, region Region) float64 {
  if region.Length() == 0 || p.Length() == 0 {
    return 0.0
  }
  merged  := p.Merge(0)
  covered := 0
  for i := 0; i < merged.Length(); i++ {
    if merged.Seqnames[i] != region.Seqname {
      continue
    }
    if merged.Ranges[i].Overlaps(region.Range) {
      covered += merged.Ranges[i].Intersection(region.Range).Length()
    }
  }
  return float64(covered)/float64(region.Length())
}

/* binary strategy
 * -------------------------------------------------------------------------- */

// Binarize builds a presence/absence feature matrix. Each sample's peaks are
// optionally fused with Merge(gap) first (reduce), the fused sets are pooled
// into unique representative peaks with UnionUnique, and a cell is 1 if the
// sample has a peak with reciprocal overlap of at least p with the
// representative. If includeFeatureCount is set, a constant column with the
// number of representatives is appended. Finding no representative at all is
// a ConfigError; callers treat it as an empty region rather than a failure
// of the whole run.
func Binarize(local LocalPeaks, reduce bool, gap int, p float64, includeFeatureCount bool) (FeatureMatrix, error) {
  if p <= 0.0 || p > 1.0 {
    return FeatureMatrix{}, newConfigError("binarize: p = %f not in (0,1]", p)
  }
  if gap < 0 {
    return FeatureMatrix{}, newConfigError("binarize: gap = %d is negative", gap)
  }
  sets := make([]PeakSet, len(local.Samples))
  for i, sample := range local.Samples {
    q := local.Peaks[sample]
    if reduce {
      sets[i] = q.Merge(gap)
    } else {
      sets[i] = q
    }
  }
  unique := UnionUnique(sets, p)
  if unique.Length() == 0 {
    return FeatureMatrix{}, newConfigError(
      "binarize: no unique peaks in region %s", local.Region.String())
  }
  names := make([]string, unique.Length())
  for j := 0; j < unique.Length(); j++ {
    names[j] = fmt.Sprintf("%s:%d-%d",
      unique.Seqnames[j], unique.Ranges[j].From, unique.Ranges[j].To)
  }
  if includeFeatureCount {
    names = append(names, "n_features")
  }
  data := make([][]float64, len(local.Samples))
  for i := range sets {
    row := make([]float64, len(names))
    for j := 0; j < unique.Length(); j++ {
      for k := 0; k < sets[i].Length(); k++ {
        if sets[i].Seqnames[k] != unique.Seqnames[j] {
          continue
        }
        if sets[i].Ranges[k].ReciprocalOverlap(unique.Ranges[j]) >= p {
          row[j] = 1.0
          break
        }
      }
    }
    if includeFeatureCount {
      row[len(row)-1] = float64(unique.Length())
    }
    data[i] = row
  }
  return FeatureMatrix{append([]string{}, local.Samples...), names, data}, nil
}
