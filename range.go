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

/* -------------------------------------------------------------------------- */

type Range struct {
  From, To int
}

/* constructors
 * -------------------------------------------------------------------------- */

// Range object used to identify a genomic subsequence. By convention the
// first position in a sequence is numbered 0. The arguments from, to are
// interpreted as the interval [from, to).
func NewRange(from, to int) Range {
  if from > to {
    panic("NewRange(): from > to")
  }
  return Range{from, to}
}

/* -------------------------------------------------------------------------- */

func (r Range) Length() int {
  return r.To - r.From
}

// Two ranges overlap if they share at least one position. Zero-length
// ranges and ranges that merely touch do not overlap.
func (r Range) Overlaps(s Range) bool {
  return r.From < s.To && s.From < r.To
}

func (r Range) Intersection(s Range) Range {
  from := iMax(r.From, s.From)
  to   := iMin(r.To,   s.To)
  // this shouldn't happen if r and s overlap
  if to < from {
    to = from
  }
  return NewRange(from, to)
}

// Length of the intersection divided by the length of the longer range. The
// result is symmetric and zero if the ranges do not overlap.
func (r Range) ReciprocalOverlap(s Range) float64 {
  if !r.Overlaps(s) {
    return 0.0
  }
  n := iMax(r.Length(), s.Length())
  if n == 0 {
    return 0.0
  }
  return float64(r.Intersection(s).Length())/float64(n)
}

/* -------------------------------------------------------------------------- */

func (r Range) String() string {
  return fmt.Sprintf("[%d %d)", r.From, r.To)
}

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  }
  return b
}

func iMax(a, b int) int {
  if a > b {
    return a
  }
  return b
}
