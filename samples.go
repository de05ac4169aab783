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

// SampleSet maps sample identifiers to their genome-wide peak sets. The
// identifier set must match the condition metadata exactly.
type SampleSet struct {
  Samples []string
  Peaks   map[string]PeakSet
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewSampleSet(samples []string, peaks map[string]PeakSet) (SampleSet, error) {
  s := SampleSet{}
  if len(samples) != len(peaks) {
    return s, newConfigError("sample set: %d sample names but %d peak sets",
      len(samples), len(peaks))
  }
  for _, sample := range samples {
    if _, ok := peaks[sample]; !ok {
      return s, newConfigError("sample set: no peaks for sample `%s'", sample)
    }
  }
  s.Samples = append([]string{}, samples...)
  s.Peaks   = peaks
  return s, nil
}

func (s *SampleSet) Clone() SampleSet {
  peaks := make(map[string]PeakSet)
  for sample, p := range s.Peaks {
    peaks[sample] = p.Clone()
  }
  return SampleSet{append([]string{}, s.Samples...), peaks}
}

/* -------------------------------------------------------------------------- */

func (s *SampleSet) Length() int {
  return len(s.Samples)
}

// Check that the sample identifiers are exactly those of the condition
// metadata.
func (s *SampleSet) CheckConditions(conditions Conditions) error {
  if s.Length() != conditions.Length() {
    return newConfigError("sample set has %d samples but condition metadata has %d",
      s.Length(), conditions.Length())
  }
  for _, sample := range s.Samples {
    if _, ok := conditions.Label(sample); !ok {
      return newConfigError("sample `%s' missing from condition metadata", sample)
    }
  }
  return nil
}
