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

/* external cluster validation scores
 *
 * All scores compare an inferred clustering against the known two condition
 * labels and are computed from the contingency table alone. Every entropy
 * term is guarded explicitly: a zero count contributes zero, a zero-entropy
 * partition short-circuits to its documented limit. No score ever returns
 * NaN or Inf, for any table with 1 <= K <= N clusters.
 * -------------------------------------------------------------------------- */

import "math"

/* -------------------------------------------------------------------------- */

// Scores holds the external cluster validation measures of one clustering.
// Consensus, the mean of ARI, NMI and V-measure, is the headline statistic:
// 1 means the clusters reproduce the condition labels perfectly.
type Scores struct {
  Purity       float64
  Homogeneity  float64
  Completeness float64
  VMeasure     float64
  NMI          float64
  ARI          float64
  Consensus    float64
}

/* -------------------------------------------------------------------------- */

// Purity is the fraction of samples that belong to the majority class of
// their cluster.
func (t ContingencyTable) Purity() float64 {
  if t.n == 0 {
    return 0.0
  }
  sum := 0
  for j := 0; j < t.NCols(); j++ {
    max := 0
    for i := 0; i < t.NRows(); i++ {
      max = iMax(max, t.Counts[i][j])
    }
    sum += max
  }
  return float64(sum)/float64(t.n)
}

/* entropies
 * -------------------------------------------------------------------------- */

// Entropy of the class (condition) partition, H(C).
func (t ContingencyTable) ClassEntropy() float64 {
  h := 0.0
  for i := 0; i < t.NRows(); i++ {
    if n := t.RowSum(i); n > 0 {
      p := float64(n)/float64(t.n)
      h -= p*math.Log(p)
    }
  }
  return h
}

// Entropy of the cluster partition, H(K).
func (t ContingencyTable) ClusterEntropy() float64 {
  h := 0.0
  for j := 0; j < t.NCols(); j++ {
    if n := t.ColSum(j); n > 0 {
      p := float64(n)/float64(t.n)
      h -= p*math.Log(p)
    }
  }
  return h
}

// Conditional entropy of the classes given the clusters, H(C|K). Cells with
// a zero count contribute zero.
func (t ContingencyTable) ConditionalClassEntropy() float64 {
  h := 0.0
  for j := 0; j < t.NCols(); j++ {
    nk := t.ColSum(j)
    for i := 0; i < t.NRows(); i++ {
      if t.Counts[i][j] > 0 {
        p := float64(t.Counts[i][j])
        h -= p/float64(t.n)*math.Log(p/float64(nk))
      }
    }
  }
  return h
}

// Conditional entropy of the clusters given the classes, H(K|C).
func (t ContingencyTable) ConditionalClusterEntropy() float64 {
  h := 0.0
  for i := 0; i < t.NRows(); i++ {
    nc := t.RowSum(i)
    for j := 0; j < t.NCols(); j++ {
      if t.Counts[i][j] > 0 {
        p := float64(t.Counts[i][j])
        h -= p/float64(t.n)*math.Log(p/float64(nc))
      }
    }
  }
  return h
}

/* entropy based scores
 * -------------------------------------------------------------------------- */

// Homogeneity is 1 if every cluster contains samples of a single class. A
// zero-entropy class partition is perfectly homogeneous by convention.
func (t ContingencyTable) Homogeneity() float64 {
  hc := t.ClassEntropy()
  if hc == 0.0 {
    return 1.0
  }
  return 1.0 - t.ConditionalClassEntropy()/hc
}

// Completeness is 1 if all samples of a class end up in the same cluster. A
// zero-entropy cluster partition (a single cluster) is perfectly complete
// by convention.
func (t ContingencyTable) Completeness() float64 {
  hk := t.ClusterEntropy()
  if hk == 0.0 {
    return 1.0
  }
  return 1.0 - t.ConditionalClusterEntropy()/hk
}

// VMeasure is the harmonic mean of homogeneity and completeness.
func (t ContingencyTable) VMeasure() float64 {
  h := t.Homogeneity()
  c := t.Completeness()
  if h+c == 0.0 {
    return 0.0
  }
  return 2.0*h*c/(h+c)
}

// NMI is the mutual information between the class and the cluster partition
// normalized by the geometric mean of their entropies. If either partition
// has zero entropy the mutual information is necessarily zero and NMI is
// defined as 0.
func (t ContingencyTable) NMI() float64 {
  hc := t.ClassEntropy()
  hk := t.ClusterEntropy()
  if hc == 0.0 || hk == 0.0 {
    return 0.0
  }
  mi := 0.0
  for i := 0; i < t.NRows(); i++ {
    nc := t.RowSum(i)
    for j := 0; j < t.NCols(); j++ {
      nk := t.ColSum(j)
      if t.Counts[i][j] > 0 {
        x := float64(t.Counts[i][j])/float64(t.n)
        y := float64(nc)/float64(t.n)*float64(nk)/float64(t.n)
        mi += x*math.Log(x/y)
      }
    }
  }
  // numeric noise can push the ratio marginally outside [0,1]
  r := mi/math.Sqrt(hc*hk)
  if r < 0.0 {
    r = 0.0
  }
  if r > 1.0 {
    r = 1.0
  }
  return r
}

/* adjusted rand index
 * -------------------------------------------------------------------------- */

// ARI is the Rand index corrected for chance, computed from the pairwise
// agreement counts of the contingency table. The expected index equals the
// maximum index only for tables that cannot distinguish the partitions at
// all, in which case ARI is defined as 0.
func (t ContingencyTable) ARI() float64 {
  index := 0.0
  for i := 0; i < t.NRows(); i++ {
    for j := 0; j < t.NCols(); j++ {
      index += choose2(t.Counts[i][j])
    }
  }
  rows := 0.0
  for i := 0; i < t.NRows(); i++ {
    rows += choose2(t.RowSum(i))
  }
  cols := 0.0
  for j := 0; j < t.NCols(); j++ {
    cols += choose2(t.ColSum(j))
  }
  pairs := choose2(t.n)
  if pairs == 0.0 {
    return 0.0
  }
  expected := rows*cols/pairs
  max      := (rows + cols)/2.0
  if max == expected {
    return 0.0
  }
  return (index - expected)/(max - expected)
}

func choose2(n int) float64 {
  return float64(n)*float64(n-1)/2.0
}

/* -------------------------------------------------------------------------- */

// Validate computes all scores. Consensus is the mean of ARI, NMI, and
// V-measure.
func (t ContingencyTable) Validate() Scores {
  s := Scores{}
  s.Purity       = t.Purity()
  s.Homogeneity  = t.Homogeneity()
  s.Completeness = t.Completeness()
  s.VMeasure     = t.VMeasure()
  s.NMI          = t.NMI()
  s.ARI          = t.ARI()
  s.Consensus    = (s.ARI + s.NMI + s.VMeasure)/3.0
  return s
}
