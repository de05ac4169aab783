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
import "math"
import "testing"

/* -------------------------------------------------------------------------- */

// four samples, two conditions; the brain samples carry a strong peak in
// gene1, the other samples do not
func testPipelineData() (SampleSet, Conditions, []Region) {
  newSample := func(from, to int, signal float64) PeakSet {
    if from < 0 {
      p := NewEmptyPeakSet()
      p.AddMeta("signalValue", []float64{})
      return p
    }
    p := NewPeakSet([]string{"chr1"}, []int{from}, []int{to})
    p.AddMeta("signalValue", []float64{signal})
    return p
  }
  peaks := map[string]PeakSet{
    "s1": newSample(1200, 1800, 20.0),
    "s2": newSample(1250, 1850, 18.0),
    "s3": newSample(-1, -1, 0.0),
    "s4": newSample(-1, -1, 0.0),
  }
  conditions, err := NewConditions(
    []string{"s1", "s2", "s3", "s4"},
    []string{"brain", "brain", "other", "other"})
  if err != nil {
    panic(err)
  }
  sampleSet, err := NewSampleSet([]string{"s1", "s2", "s3", "s4"}, peaks)
  if err != nil {
    panic(err)
  }
  regions := []Region{
    NewRegion("chr1", 1000, 2000, "gene1"),
    NewRegion("chr2", 1000, 2000, "gene2"),
  }
  return sampleSet, conditions, regions
}

/* -------------------------------------------------------------------------- */

func TestDetectSwitches(t *testing.T) {

  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.StatAttributes = []string{"signalValue"}

  calls, err := DetectSwitches(sampleSet, conditions, regions, config, 2)
  if err != nil {
    t.Error("TestDetectSwitches failed!")
  }
  if len(calls) != 2 {
    t.Error("TestDetectSwitches failed!")
  }
  // gene1 separates the conditions perfectly
  if calls[0].Empty || calls[0].K != 2 {
    t.Error("TestDetectSwitches failed!")
  }
  if !fEqual(calls[0].Scores.Consensus, 1.0) {
    t.Error("TestDetectSwitches failed!")
  }
  if calls[0].Assignment["s1"] != calls[0].Assignment["s2"] ||
     calls[0].Assignment["s1"] == calls[0].Assignment["s3"] {
    t.Error("TestDetectSwitches failed!")
  }
  // gene2 has no data at all and terminates as an empty call
  if !calls[1].Empty || calls[1].K != 0 {
    t.Error("TestDetectSwitches failed!")
  }
  if !math.IsNaN(calls[1].Scores.Consensus) {
    t.Error("TestDetectSwitches failed!")
  }
  // results are ordered like the input regions
  if calls[0].Region.Name != "gene1" || calls[1].Region.Name != "gene2" {
    t.Error("TestDetectSwitches failed!")
  }
}

func TestDetectSwitchesFilterAll(t *testing.T) {

  // a filter threshold above all data values empties every region without
  // raising an error
  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.StatAttributes   = []string{"signalValue"}
  config.Filter           = true
  config.FilterAttributes = []string{"signalValue"}
  config.FilterThresholds = []float64{1e9}

  calls, err := DetectSwitches(sampleSet, conditions, regions, config, 1)
  if err != nil {
    t.Error("TestDetectSwitchesFilterAll failed!")
  }
  for _, call := range calls {
    if !call.Empty {
      t.Error("TestDetectSwitchesFilterAll failed!")
    }
  }
}

func TestDetectSwitchesBinary(t *testing.T) {

  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.Strategy = "binary"

  calls, err := DetectSwitches(sampleSet, conditions, regions, config, 1)
  if err != nil {
    t.Error("TestDetectSwitchesBinary failed!")
  }
  // the brain samples share the only representative peak; the other
  // samples have all-zero rows, so the matrix is degenerate but the
  // region is still scored
  if calls[0].Empty {
    t.Error("TestDetectSwitchesBinary failed!")
  }
  if calls[0].Assignment["s1"] != calls[0].Assignment["s2"] {
    t.Error("TestDetectSwitchesBinary failed!")
  }
}

func TestDetectSwitchesConfigError(t *testing.T) {

  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.Strategy = "kmeans"

  if _, err := DetectSwitches(sampleSet, conditions, regions, config, 1); err == nil {
    t.Error("TestDetectSwitchesConfigError failed!")
  }
  // mismatched filter lists fail before any region is processed
  config = DefaultConfig()
  config.Filter           = true
  config.FilterAttributes = []string{"signalValue"}
  config.FilterThresholds = []float64{}

  if _, err := DetectSwitches(sampleSet, conditions, regions, config, 1); err == nil {
    t.Error("TestDetectSwitchesConfigError failed!")
  }
}

func TestDetectSwitchesUnknownStatAttribute(t *testing.T) {

  // a misspelled summary attribute aborts the run at setup instead of
  // silently producing all-empty rows
  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.StatAttributes = []string{"signa1Value"}

  _, err := DetectSwitches(sampleSet, conditions, regions, config, 1)
  configError := ConfigError{}
  if err == nil || !errors.As(err, &configError) {
    t.Error("TestDetectSwitchesUnknownStatAttribute failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestRegionCallsDataframe(t *testing.T) {

  sampleSet, conditions, regions := testPipelineData()

  config := DefaultConfig()
  config.StatAttributes = []string{"signalValue"}

  calls, err := DetectSwitches(sampleSet, conditions, regions, config, 1)
  if err != nil {
    t.Error("TestRegionCallsDataframe failed!")
  }
  df := RegionCalls(calls).Dataframe(conditions)
  if df.Nrow() != 2 {
    t.Error("TestRegionCallsDataframe failed!")
  }
  // 13 fixed columns plus one cluster column per sample
  if df.Ncol() != 13+4 {
    t.Error("TestRegionCallsDataframe failed!")
  }
}
