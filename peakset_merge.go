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

// Merge fuses peaks whose distance to the previous peak on the same sequence
// is less than gap base pairs. Peaks are sorted by coordinate first; a run
// of peaks is replaced by one peak spanning its union. With gap = 0 only
// literally overlapping peaks are fused, so the result equals the sorted
// input whenever the input is non-overlapping.
//
// Meta columns are dropped: a fused peak has no well defined statistic
// value. This is a deliberate simplification; the binary feature strategy,
// the only consumer of merged peaks, never reads statistics after merging.
func (p *PeakSet) Merge(gap int) PeakSet {
  if gap < 0 {
    panic("Merge(): gap must be non-negative")
  }
  sorted := p.Sort()
  n := sorted.Length()
  if n == 0 {
    return NewEmptyPeakSet()
  }
  seqnames := []string{sorted.Seqnames[0]}
  from     := []int   {sorted.Ranges[0].From}
  to       := []int   {sorted.Ranges[0].To}
  for i := 1; i < n; i++ {
    k := len(to)-1
    if sorted.Seqnames[i] == seqnames[k] && sorted.Ranges[i].From - to[k] < gap {
      // fuse with the previous peak
      to[k] = iMax(to[k], sorted.Ranges[i].To)
    } else {
      seqnames = append(seqnames, sorted.Seqnames[i])
      from     = append(from,     sorted.Ranges[i].From)
      to       = append(to,       sorted.Ranges[i].To)
    }
  }
  return NewPeakSet(seqnames, from, to)
}

/* -------------------------------------------------------------------------- */

// UnionUnique pools the peaks of all given sets and collapses the pool into
// a minimal representative set such that no two representatives have a
// reciprocal overlap of p or more. Peaks are visited in coordinate order,
// which makes the output deterministic: a peak becomes a representative
// unless it matches one that was selected before it. The result carries
// coordinates only.
func UnionUnique(sets []PeakSet, p float64) PeakSet {
  if p <= 0.0 || p > 1.0 {
    panic("UnionUnique(): p must be in (0,1]")
  }
  pool := NewEmptyPeakSet()
  for i := 0; i < len(sets); i++ {
    coords := NewPeakSet(sets[i].Seqnames,
      rangesFrom(sets[i].Ranges), rangesTo(sets[i].Ranges))
    pool = pool.Append(coords)
  }
  pool = pool.Sort()

  result  := NewEmptyPeakSet()
  for i := 0; i < pool.Length(); i++ {
    unique := true
    // representatives on the same sequence that could still overlap are
    // near the end of the result, but correctness does not depend on that
    for j := result.Length()-1; j >= 0; j-- {
      if result.Seqnames[j] != pool.Seqnames[i] {
        continue
      }
      if result.Ranges[j].ReciprocalOverlap(pool.Ranges[i]) >= p {
        unique = false
        break
      }
    }
    if unique {
      result.Seqnames = append(result.Seqnames, pool.Seqnames[i])
      result.Ranges   = append(result.Ranges,   pool.Ranges[i])
    }
  }
  return result
}

/* -------------------------------------------------------------------------- */

func rangesFrom(ranges []Range) []int {
  r := make([]int, len(ranges))
  for i := range ranges {
    r[i] = ranges[i].From
  }
  return r
}

func rangesTo(ranges []Range) []int {
  r := make([]int, len(ranges))
  for i := range ranges {
    r[i] = ranges[i].To
  }
  return r
}
