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

import "os"
import "sort"

import "github.com/go-gota/gota/dataframe"

/* -------------------------------------------------------------------------- */

// Conditions assigns each sample one of exactly two condition labels, e.g.
// `brain' and `other'. The sample order given here defines the row order of
// all feature matrices and result tables.
type Conditions struct {
  Samples []string
  Labels  []string
  Domain  [2]string
  index   map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewConditions(samples, labels []string) (Conditions, error) {
  c := Conditions{}
  if len(samples) != len(labels) {
    return c, newConfigError("condition metadata: %d samples but %d labels",
      len(samples), len(labels))
  }
  if len(samples) == 0 {
    return c, newConfigError("condition metadata is empty")
  }
  index := make(map[string]int)
  for i, sample := range samples {
    if _, ok := index[sample]; ok {
      return c, newConfigError("condition metadata: duplicate sample `%s'", sample)
    }
    index[sample] = i
  }
  domain := []string{}
  seen   := make(map[string]bool)
  for _, label := range labels {
    if !seen[label] {
      seen[label] = true
      domain = append(domain, label)
    }
  }
  if len(domain) != 2 {
    return c, newConfigError("condition metadata: expected exactly two condition labels, found %d",
      len(domain))
  }
  sort.Strings(domain)
  c.Samples = append([]string{}, samples...)
  c.Labels  = append([]string{}, labels...)
  c.Domain  = [2]string{domain[0], domain[1]}
  c.index   = index
  return c, nil
}

/* -------------------------------------------------------------------------- */

func (c *Conditions) Length() int {
  return len(c.Samples)
}

// Returns the condition label of the given sample.
func (c *Conditions) Label(sample string) (string, bool) {
  if i, ok := c.index[sample]; ok {
    return c.Labels[i], true
  }
  return "", false
}

// Returns 0 or 1 depending on which condition the sample belongs to, or -1
// if the sample is unknown.
func (c *Conditions) ClassIndex(sample string) int {
  label, ok := c.Label(sample)
  if !ok {
    return -1
  }
  if label == c.Domain[0] {
    return 0
  }
  return 1
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import condition metadata from a tab separated table with at least the
// columns `Sample' and `Condition'.
func ImportConditions(filename string) (Conditions, error) {
  f, err := os.Open(filename)
  if err != nil {
    return Conditions{}, err
  }
  defer f.Close()

  df := dataframe.ReadCSV(f,
    dataframe.WithDelimiter('\t'),
    dataframe.HasHeader(true))
  if df.Error() != nil {
    return Conditions{}, df.Error()
  }
  names := make(map[string]bool)
  for _, name := range df.Names() {
    names[name] = true
  }
  if !names["Sample"] || !names["Condition"] {
    return Conditions{}, newConfigError(
      "condition metadata `%s' must have columns Sample and Condition", filename)
  }
  return NewConditions(
    df.Col("Sample")   .Records(),
    df.Col("Condition").Records())
}
