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

func TestConditions(t *testing.T) {

  conditions, err := NewConditions(
    []string{"s1", "s2", "s3"},
    []string{"B", "A", "B"})
  if err != nil {
    t.Error("TestConditions failed!")
  }
  // the domain is sorted
  if conditions.Domain[0] != "A" || conditions.Domain[1] != "B" {
    t.Error("TestConditions failed!")
  }
  if label, ok := conditions.Label("s2"); !ok || label != "A" {
    t.Error("TestConditions failed!")
  }
  if conditions.ClassIndex("s1") != 1 || conditions.ClassIndex("s2") != 0 {
    t.Error("TestConditions failed!")
  }
  if conditions.ClassIndex("unknown") != -1 {
    t.Error("TestConditions failed!")
  }
}

func TestConditionsInvalid(t *testing.T) {

  configError := ConfigError{}

  // one condition label
  _, err := NewConditions([]string{"s1", "s2"}, []string{"A", "A"})
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestConditionsInvalid failed!")
  }
  // three condition labels
  _, err = NewConditions([]string{"s1", "s2", "s3"}, []string{"A", "B", "C"})
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestConditionsInvalid failed!")
  }
  // duplicate sample
  _, err = NewConditions([]string{"s1", "s1"}, []string{"A", "B"})
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestConditionsInvalid failed!")
  }
}

func TestConditionsImport(t *testing.T) {

  conditions, err := ImportConditions("conditions_test.tsv")
  if err != nil {
    t.Error("TestConditionsImport failed!")
  }
  if conditions.Length() != 4 {
    t.Error("TestConditionsImport failed!")
  }
  if conditions.Domain[0] != "brain" || conditions.Domain[1] != "other" {
    t.Error("TestConditionsImport failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestSampleSetConditions(t *testing.T) {

  conditions, err := NewConditions(
    []string{"s1", "s2"}, []string{"A", "B"})
  if err != nil {
    t.Error("TestSampleSetConditions failed!")
  }
  sampleSet, err := NewSampleSet([]string{"s1", "s2"},
    map[string]PeakSet{"s1": NewEmptyPeakSet(), "s2": NewEmptyPeakSet()})
  if err != nil {
    t.Error("TestSampleSetConditions failed!")
  }
  if err := sampleSet.CheckConditions(conditions); err != nil {
    t.Error("TestSampleSetConditions failed!")
  }
  // a sample missing from the metadata is a configuration error
  sampleSet, err = NewSampleSet([]string{"s1", "s9"},
    map[string]PeakSet{"s1": NewEmptyPeakSet(), "s9": NewEmptyPeakSet()})
  if err != nil {
    t.Error("TestSampleSetConditions failed!")
  }
  if err := sampleSet.CheckConditions(conditions); err == nil {
    t.Error("TestSampleSetConditions failed!")
  }
}
