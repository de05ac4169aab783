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

import "math"

import "gonum.org/v1/gonum/floats"

/* -------------------------------------------------------------------------- */

// ClusterResult is the outcome of clustering one feature matrix: the chosen
// number of clusters, the per-sample cluster assignment, and the average
// silhouette width of the chosen partition.
type ClusterResult struct {
  K             int
  Assignment    map[string]int
  AvgSilhouette float64
}

/* -------------------------------------------------------------------------- */

// Dendrogram holds the flat partitions of an agglomerative clustering at
// every level together with the pairwise sample distances.
type Dendrogram struct {
  distances  [][]float64
  partitions map[int][]int
  n          int
}

// HClust runs agglomerative clustering with complete linkage on the rows of
// the feature matrix, using Euclidean distances. The number of samples is
// small, so the quadratic Lance-Williams update is run on a dense matrix.
func HClust(m FeatureMatrix) *Dendrogram {
  n := m.NRows()
  d := Dendrogram{}
  d.n          = n
  d.distances  = make([][]float64, n)
  d.partitions = make(map[int][]int)
  for i := 0; i < n; i++ {
    d.distances[i] = make([]float64, n)
    for j := 0; j < n; j++ {
      if i != j {
        d.distances[i][j] = floats.Distance(m.Data[i], m.Data[j], 2)
      }
    }
  }
  // every sample starts as its own cluster
  labels := make([]int, n)
  active := make([]bool, n)
  links  := make([][]float64, n)
  for i := 0; i < n; i++ {
    labels[i] = i
    active[i] = true
    links [i] = append([]float64{}, d.distances[i]...)
  }
  d.partitions[n] = renumber(labels)

  for k := n-1; k >= 1; k-- {
    // find the pair of active clusters with the smallest linkage
    a, b, best := -1, -1, math.Inf(1)
    for i := 0; i < n; i++ {
      if !active[i] {
        continue
      }
      for j := i+1; j < n; j++ {
        if !active[j] {
          continue
        }
        if links[i][j] < best {
          a, b, best = i, j, links[i][j]
        }
      }
    }
    // merge b into a, complete linkage update
    for i := 0; i < n; i++ {
      if active[i] && i != a && i != b {
        links[a][i] = math.Max(links[a][i], links[b][i])
        links[i][a] = links[a][i]
      }
    }
    active[b] = false
    for i := 0; i < n; i++ {
      if labels[i] == b {
        labels[i] = a
      }
    }
    d.partitions[k] = renumber(labels)
  }
  return &d
}

// Cut returns the flat clustering with k clusters, one label in 0..k-1 per
// sample.
func (d *Dendrogram) Cut(k int) []int {
  if p, ok := d.partitions[k]; ok {
    return append([]int{}, p...)
  }
  panic("Cut(): invalid number of clusters")
}

// renumber maps arbitrary cluster labels to 0..k-1 in order of first
// appearance
func renumber(labels []int) []int {
  next   := 0
  m      := make(map[int]int)
  result := make([]int, len(labels))
  for i, l := range labels {
    if _, ok := m[l]; !ok {
      m[l] = next
      next++
    }
    result[i] = m[l]
  }
  return result
}

/* silhouette
 * -------------------------------------------------------------------------- */

// Silhouette returns the average silhouette width of the given flat
// clustering. Samples in singleton clusters contribute zero.
func (d *Dendrogram) Silhouette(labels []int) float64 {
  n := d.n
  if n == 0 {
    return 0.0
  }
  k := 0
  for _, l := range labels {
    if l+1 > k {
      k = l+1
    }
  }
  sizes := make([]int, k)
  for _, l := range labels {
    sizes[l]++
  }
  sum := 0.0
  for i := 0; i < n; i++ {
    if sizes[labels[i]] == 1 {
      continue
    }
    // mean distance to every cluster
    means := make([]float64, k)
    for j := 0; j < n; j++ {
      if j != i {
        means[labels[j]] += d.distances[i][j]
      }
    }
    for l := 0; l < k; l++ {
      if l == labels[i] {
        means[l] /= float64(sizes[l]-1)
      } else if sizes[l] > 0 {
        means[l] /= float64(sizes[l])
      }
    }
    a := means[labels[i]]
    b := math.Inf(1)
    for l := 0; l < k; l++ {
      if l != labels[i] && sizes[l] > 0 && means[l] < b {
        b = means[l]
      }
    }
    if math.IsInf(b, 1) {
      continue
    }
    if max := math.Max(a, b); max > 0.0 {
      sum += (b - a)/max
    }
  }
  return sum/float64(n)
}

/* cluster count selection
 * -------------------------------------------------------------------------- */

// SelectK picks the flat clustering for the given feature matrix. With
// optimal set, k in 2..N-1 is searched for the maximum average silhouette
// width, ties broken towards the smallest k; otherwise k is fixed at 2.
func SelectK(m FeatureMatrix, optimal bool) ClusterResult {
  n := m.NRows()
  d := HClust(m)

  kbest := 2
  sbest := math.Inf(-1)
  if optimal && n >= 3 {
    for k := 2; k <= n-1; k++ {
      if s := d.Silhouette(d.Cut(k)); s > sbest {
        kbest, sbest = k, s
      }
    }
  } else {
    kbest = iMin(2, n)
    sbest = d.Silhouette(d.Cut(kbest))
  }
  labels     := d.Cut(kbest)
  assignment := make(map[string]int)
  for i, sample := range m.Samples {
    assignment[sample] = labels[i]
  }
  return ClusterResult{kbest, assignment, sbest}
}
