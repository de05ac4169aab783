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

import "sort"

import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Filter drops every peak whose value in one of the listed attribute
// columns falls below the given minimum. Samples are filtered
// independently. Referencing an attribute that does not exist in the data
// is a ConfigError.
func (s *SampleSet) Filter(thresholds map[string]float64) (SampleSet, error) {
  attributes := make([]string, 0, len(thresholds))
  for attribute := range thresholds {
    attributes = append(attributes, attribute)
  }
  sort.Strings(attributes)

  peaks := make(map[string]PeakSet)
  for _, sample := range s.Samples {
    p := s.Peaks[sample]
    keep := []int{}
  rows:
    for i := 0; i < p.Length(); i++ {
      for _, attribute := range attributes {
        values := p.GetMetaFloat(attribute)
        if values == nil {
          return SampleSet{}, newConfigError(
            "filter: sample `%s' has no numeric attribute `%s'", sample, attribute)
        }
        if values[i] < thresholds[attribute] {
          continue rows
        }
      }
      keep = append(keep, i)
    }
    peaks[sample] = p.Subset(keep)
  }
  return NewSampleSet(s.Samples, peaks)
}

/* -------------------------------------------------------------------------- */

// Normalize rescales the listed attribute columns to [0,1], for each sample
// and attribute independently and across all peaks of that sample genome
// wide. Values between the tailFraction/2 and 1-tailFraction/2 empirical
// quantiles are rescaled linearly; values outside are clamped to 0 or 1. If
// the two quantiles coincide, values at the quantile map to 0.5 so that
// zero-variance columns stay finite.
func (s *SampleSet) Normalize(attributes []string, tailFraction float64) (SampleSet, error) {
  if tailFraction < 0.0 || tailFraction > 1.0 {
    return SampleSet{}, newConfigError(
      "normalize: tail fraction %f not in [0,1]", tailFraction)
  }
  result := s.Clone()
  for _, sample := range result.Samples {
    p := result.Peaks[sample]
    for _, attribute := range attributes {
      values := p.GetMetaFloat(attribute)
      if values == nil {
        return SampleSet{}, newConfigError(
          "normalize: sample `%s' has no numeric attribute `%s'", sample, attribute)
      }
      if len(values) == 0 {
        continue
      }
      sorted := append([]float64{}, values...)
      sort.Float64s(sorted)
      lo := stat.Quantile(    tailFraction/2.0, stat.Empirical, sorted, nil)
      hi := stat.Quantile(1.0-tailFraction/2.0, stat.Empirical, sorted, nil)
      for i, v := range values {
        switch {
        case v <  lo: values[i] = 0.0
        case v >  hi: values[i] = 1.0
        case hi == lo: values[i] = 0.5
        default:      values[i] = (v - lo)/(hi - lo)
        }
      }
    }
  }
  return result, nil
}
