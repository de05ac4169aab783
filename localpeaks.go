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

// LocalPeaks is the per-region working data set: for every sample the peaks
// overlapping one query region, attributes preserved. It is constructed
// fresh per region and not modified afterwards.
type LocalPeaks struct {
  Region  Region
  Samples []string
  Peaks   map[string]PeakSet
}

/* -------------------------------------------------------------------------- */

// Retrieve restricts every sample of the given set to the peaks overlapping
// the query region. The sample order is taken from the condition metadata.
// Samples without any overlapping peak are kept with an empty peak set.
func Retrieve(sampleSet SampleSet, conditions Conditions, region Region) LocalPeaks {
  local := LocalPeaks{}
  local.Region  = region
  local.Samples = append([]string{}, conditions.Samples...)
  local.Peaks   = make(map[string]PeakSet)
  for _, sample := range local.Samples {
    p := sampleSet.Peaks[sample]
    local.Peaks[sample] = p.Subset(p.FindOverlaps(region.Seqname, region.Range))
  }
  return local
}

/* -------------------------------------------------------------------------- */

// Empty is true if no sample has a peak in the region.
func (local LocalPeaks) Empty() bool {
  for _, sample := range local.Samples {
    if p := local.Peaks[sample]; p.Length() > 0 {
      return false
    }
  }
  return true
}
