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

// ContingencyTable cross-tabulates the two known condition labels (rows)
// against the inferred cluster assignments (columns). It is built once per
// clustering result by joining on sample identifiers and is never modified
// afterwards; all validation scores are pure functions of this table.
type ContingencyTable struct {
  Classes  []string
  Clusters []int
  Counts   [][]int
  n        int
}

/* constructors
 * -------------------------------------------------------------------------- */

// NewContingencyTable joins the cluster assignment with the condition
// metadata on sample identifiers. A sample with a cluster assignment but no
// metadata entry indicates inconsistent sample sets and is a ConfigError.
func NewContingencyTable(assignment map[string]int, conditions Conditions) (ContingencyTable, error) {
  t := ContingencyTable{}

  clusters := []int{}
  seen     := make(map[int]bool)
  for sample, cluster := range assignment {
    if _, ok := conditions.Label(sample); !ok {
      return t, newConfigError(
        "contingency table: sample `%s' has a cluster but no condition label", sample)
    }
    if !seen[cluster] {
      seen[cluster] = true
      clusters = append(clusters, cluster)
    }
  }
  sort.Ints(clusters)

  column := make(map[int]int)
  for j, cluster := range clusters {
    column[cluster] = j
  }
  counts := make([][]int, 2)
  for i := range counts {
    counts[i] = make([]int, len(clusters))
  }
  n := 0
  for _, sample := range conditions.Samples {
    cluster, ok := assignment[sample]
    if !ok {
      continue
    }
    counts[conditions.ClassIndex(sample)][column[cluster]]++
    n++
  }
  t.Classes  = []string{conditions.Domain[0], conditions.Domain[1]}
  t.Clusters = clusters
  t.Counts   = counts
  t.n        = n
  return t, nil
}

/* -------------------------------------------------------------------------- */

// Total number of samples in the table.
func (t ContingencyTable) N() int {
  return t.n
}

func (t ContingencyTable) NRows() int {
  return len(t.Classes)
}

func (t ContingencyTable) NCols() int {
  return len(t.Clusters)
}

// Number of samples with the i-th condition label.
func (t ContingencyTable) RowSum(i int) int {
  sum := 0
  for j := 0; j < t.NCols(); j++ {
    sum += t.Counts[i][j]
  }
  return sum
}

// Number of samples in the j-th cluster.
func (t ContingencyTable) ColSum(j int) int {
  sum := 0
  for i := 0; i < t.NRows(); i++ {
    sum += t.Counts[i][j]
  }
  return sum
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (t ContingencyTable) String() string {
  var buffer bytes.Buffer
  buffer.WriteString(fmt.Sprintf("%12s", ""))
  for _, cluster := range t.Clusters {
    buffer.WriteString(fmt.Sprintf(" %8d", cluster))
  }
  for i := 0; i < t.NRows(); i++ {
    buffer.WriteString(fmt.Sprintf("\n%12s", t.Classes[i]))
    for j := 0; j < t.NCols(); j++ {
      buffer.WriteString(fmt.Sprintf(" %8d", t.Counts[i][j]))
    }
  }
  return buffer.String()
}
