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

import "errors"
import "testing"

/* -------------------------------------------------------------------------- */

func testSampleSet() SampleSet {
  p1 := NewPeakSet(
    []string{"chr1", "chr1", "chr1"},
    []int{0, 200, 500},
    []int{100, 400, 600})
  p1.AddMeta("signalValue", []float64{2.0, 4.0, 6.0})

  p2 := NewPeakSet([]string{"chr1"}, []int{250}, []int{350})
  p2.AddMeta("signalValue", []float64{3.0})

  s, err := NewSampleSet([]string{"s1", "s2"},
    map[string]PeakSet{"s1": p1, "s2": p2})
  if err != nil {
    panic(err)
  }
  return s
}

/* -------------------------------------------------------------------------- */

func TestFilter(t *testing.T) {

  s := testSampleSet()

  r, err := s.Filter(map[string]float64{"signalValue": 3.5})
  if err != nil {
    t.Error("TestFilter failed!")
  }
  p1 := r.Peaks["s1"]
  p2 := r.Peaks["s2"]
  if p1.Length() != 2 || p2.Length() != 0 {
    t.Error("TestFilter failed!")
  }
  // the input is left untouched
  p1 = s.Peaks["s1"]
  if p1.Length() != 3 {
    t.Error("TestFilter failed!")
  }
}

func TestFilterUnknownAttribute(t *testing.T) {

  s := testSampleSet()

  _, err := s.Filter(map[string]float64{"qValue": 1.0})
  configError := ConfigError{}
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestFilterUnknownAttribute failed!")
  }
}

func TestFilterAll(t *testing.T) {

  // a threshold above all data values empties every sample
  s := testSampleSet()

  r, err := s.Filter(map[string]float64{"signalValue": 1e9})
  if err != nil {
    t.Error("TestFilterAll failed!")
  }
  for _, sample := range r.Samples {
    p := r.Peaks[sample]
    if p.Length() != 0 {
      t.Error("TestFilterAll failed!")
    }
  }
}

/* -------------------------------------------------------------------------- */

func TestNormalize(t *testing.T) {

  p := NewPeakSet(
    []string{"chr1", "chr1", "chr1", "chr1", "chr1"},
    []int{0, 100, 200, 300, 400},
    []int{50, 150, 250, 350, 450})
  p.AddMeta("signalValue", []float64{0.0, 2.5, 5.0, 7.5, 10.0})

  s, err := NewSampleSet([]string{"s1"}, map[string]PeakSet{"s1": p})
  if err != nil {
    t.Error("TestNormalize failed!")
  }
  r, err := s.Normalize([]string{"signalValue"}, 0.0)
  if err != nil {
    t.Error("TestNormalize failed!")
  }
  q := r.Peaks["s1"]
  values := q.GetMetaFloat("signalValue")
  expect := []float64{0.0, 0.25, 0.5, 0.75, 1.0}
  for i := range expect {
    if !fEqual(values[i], expect[i]) {
      t.Error("TestNormalize failed!")
    }
  }
  // normalizing normalized data again changes nothing
  r2, err := r.Normalize([]string{"signalValue"}, 0.0)
  if err != nil {
    t.Error("TestNormalize failed!")
  }
  q2 := r2.Peaks["s1"]
  values2 := q2.GetMetaFloat("signalValue")
  for i := range expect {
    if !fEqual(values2[i], expect[i]) {
      t.Error("TestNormalize failed!")
    }
  }
}

func TestNormalizeDegenerate(t *testing.T) {

  // constant columns map to 0.5 instead of dividing by zero
  p := NewPeakSet(
    []string{"chr1", "chr1"},
    []int{0, 100},
    []int{50, 150})
  p.AddMeta("signalValue", []float64{5.0, 5.0})

  s, err := NewSampleSet([]string{"s1"}, map[string]PeakSet{"s1": p})
  if err != nil {
    t.Error("TestNormalizeDegenerate failed!")
  }
  r, err := s.Normalize([]string{"signalValue"}, 0.01)
  if err != nil {
    t.Error("TestNormalizeDegenerate failed!")
  }
  q := r.Peaks["s1"]
  for _, v := range q.GetMetaFloat("signalValue") {
    if !fEqual(v, 0.5) {
      t.Error("TestNormalizeDegenerate failed!")
    }
  }
}

func TestNormalizeInvalidTail(t *testing.T) {

  s := testSampleSet()

  _, err := s.Normalize([]string{"signalValue"}, 1.5)
  configError := ConfigError{}
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestNormalizeInvalidTail failed!")
  }
}
