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

import "testing"

/* -------------------------------------------------------------------------- */

func testMatrix() FeatureMatrix {
  return FeatureMatrix{
    Samples: []string{"s1", "s2", "s3", "s4"},
    Names:   []string{"f1", "f2"},
    Data:    [][]float64{
      {1.0, 1.0},
      {1.1, 1.0},
      {5.0, 5.0},
      {5.1, 5.0}},
  }
}

/* -------------------------------------------------------------------------- */

func TestHClust(t *testing.T) {

  d := HClust(testMatrix())

  labels := d.Cut(2)
  if len(labels) != 4 {
    t.Error("TestHClust failed!")
  }
  if labels[0] != labels[1] || labels[2] != labels[3] || labels[0] == labels[2] {
    t.Error("TestHClust failed!")
  }
  // every level of the dendrogram is available
  if len(d.Cut(1)) != 4 || len(d.Cut(4)) != 4 {
    t.Error("TestHClust failed!")
  }
  for _, l := range d.Cut(1) {
    if l != 0 {
      t.Error("TestHClust failed!")
    }
  }
}

func TestSilhouette(t *testing.T) {

  d := HClust(testMatrix())

  // the natural two-group structure scores close to 1
  s2 := d.Silhouette(d.Cut(2))
  s3 := d.Silhouette(d.Cut(3))
  if s2 < 0.9 || s2 > 1.0 {
    t.Error("TestSilhouette failed!")
  }
  if s3 >= s2 {
    t.Error("TestSilhouette failed!")
  }
}

func TestSelectK(t *testing.T) {

  result := SelectK(testMatrix(), true)
  if result.K != 2 {
    t.Error("TestSelectK failed!")
  }
  if result.Assignment["s1"] != result.Assignment["s2"] ||
     result.Assignment["s3"] != result.Assignment["s4"] ||
     result.Assignment["s1"] == result.Assignment["s3"] {
    t.Error("TestSelectK failed!")
  }
  if result.AvgSilhouette < 0.9 {
    t.Error("TestSelectK failed!")
  }
  // fixed k
  result = SelectK(testMatrix(), false)
  if result.K != 2 {
    t.Error("TestSelectK failed!")
  }
}
