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

import "bytes"
import "fmt"
import "sort"

/* -------------------------------------------------------------------------- */

// PeakSet is an ordered collection of genomic intervals belonging to a
// single sample. Numeric statistics such as signal or significance values
// are attached as Meta columns.
type PeakSet struct {
  Seqnames []string
  Ranges   []Range
  Meta
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewPeakSet(seqnames []string, from, to []int) PeakSet {
  n := len(seqnames)
  if len(from) != n || len(to) != n {
    panic("NewPeakSet(): invalid arguments!")
  }
  ranges := make([]Range, n)
  for i := 0; i < n; i++ {
    ranges[i] = NewRange(from[i], to[i])
  }
  return PeakSet{seqnames, ranges, Meta{}}
}

func NewEmptyPeakSet() PeakSet {
  return PeakSet{[]string{}, []Range{}, Meta{}}
}

func (p *PeakSet) Clone() PeakSet {
  result := PeakSet{}
  n := p.Length()
  result.Seqnames = make([]string, n)
  result.Ranges   = make([]Range, n)
  copy(result.Seqnames, p.Seqnames)
  copy(result.Ranges,   p.Ranges)
  result.Meta = p.Meta.Clone()
  return result
}

/* -------------------------------------------------------------------------- */

func (p *PeakSet) Length() int {
  return len(p.Ranges)
}

func (p1 *PeakSet) Append(p2 PeakSet) PeakSet {
  result := PeakSet{}
  result.Seqnames = append(append([]string{}, p1.Seqnames...), p2.Seqnames...)
  result.Ranges   = append(append([]Range{},  p1.Ranges...),   p2.Ranges...)
  result.Meta     = p1.Meta.Append(p2.Meta)
  return result
}

// Returns a PeakSet containing the rows given by indices.
func (p *PeakSet) Subset(indices []int) PeakSet {
  seqnames := make([]string, len(indices))
  from     := make([]int,    len(indices))
  to       := make([]int,    len(indices))
  for i, k := range indices {
    seqnames[i] = p.Seqnames[k]
    from    [i] = p.Ranges[k].From
    to      [i] = p.Ranges[k].To
  }
  result := NewPeakSet(seqnames, from, to)
  result.Meta = p.Meta.Subset(indices)
  return result
}

// Returns a PeakSet sorted by (seqname, from, to).
func (p *PeakSet) Sort() PeakSet {
  indices := make([]int, p.Length())
  for i := range indices {
    indices[i] = i
  }
  sort.SliceStable(indices, func(i, j int) bool {
    ki, kj := indices[i], indices[j]
    if p.Seqnames[ki] != p.Seqnames[kj] {
      return p.Seqnames[ki] < p.Seqnames[kj]
    }
    if p.Ranges[ki].From != p.Ranges[kj].From {
      return p.Ranges[ki].From < p.Ranges[kj].From
    }
    return p.Ranges[ki].To < p.Ranges[kj].To
  })
  return p.Subset(indices)
}

/* -------------------------------------------------------------------------- */

// Returns the indices of all peaks overlapping the given query interval on
// the given sequence.
func (p *PeakSet) FindOverlaps(seqname string, query Range) []int {
  hits := []int{}
  for i := 0; i < p.Length(); i++ {
    if p.Seqnames[i] == seqname && p.Ranges[i].Overlaps(query) {
      hits = append(hits, i)
    }
  }
  return hits
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (p PeakSet) String() string {
  var buffer bytes.Buffer
  for i := 0; i < p.Length(); i++ {
    if i != 0 {
      buffer.WriteString("\n")
    }
    buffer.WriteString(
      fmt.Sprintf("%10s %s", p.Seqnames[i], p.Ranges[i].String()))
  }
  return buffer.String()
}
