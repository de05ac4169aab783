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

import "io"
import "os"

import "github.com/go-gota/gota/dataframe"
import "github.com/go-gota/gota/series"

/* -------------------------------------------------------------------------- */

type RegionCalls []RegionCall

// Dataframe assembles the calls into a table with one row per query region,
// in input order: region coordinates and name, the chosen cluster count,
// the average silhouette width, the score breakdown, and one cluster label
// column per sample. Empty regions carry NaN scores and cluster label -1.
func (calls RegionCalls) Dataframe(conditions Conditions) dataframe.DataFrame {
  n := len(calls)

  chrom      := make([]string,  n)
  start      := make([]int,     n)
  end        := make([]int,     n)
  name       := make([]string,  n)
  k          := make([]int,     n)
  silhouette := make([]float64, n)
  purity     := make([]float64, n)
  hom        := make([]float64, n)
  com        := make([]float64, n)
  vmeasure   := make([]float64, n)
  nmi        := make([]float64, n)
  ari        := make([]float64, n)
  consensus  := make([]float64, n)

  for i, call := range calls {
    chrom     [i] = call.Region.Seqname
    start     [i] = call.Region.From
    end       [i] = call.Region.To
    name      [i] = call.Region.Name
    k         [i] = call.K
    silhouette[i] = call.AvgSilhouette
    purity    [i] = call.Scores.Purity
    hom       [i] = call.Scores.Homogeneity
    com       [i] = call.Scores.Completeness
    vmeasure  [i] = call.Scores.VMeasure
    nmi       [i] = call.Scores.NMI
    ari       [i] = call.Scores.ARI
    consensus [i] = call.Scores.Consensus
  }
  columns := []series.Series{
    series.New(chrom,      series.String, "chrom"),
    series.New(start,      series.Int,    "start"),
    series.New(end,        series.Int,    "end"),
    series.New(name,       series.String, "name"),
    series.New(k,          series.Int,    "k"),
    series.New(silhouette, series.Float,  "avg_silhouette"),
    series.New(purity,     series.Float,  "purity"),
    series.New(hom,        series.Float,  "homogeneity"),
    series.New(com,        series.Float,  "completeness"),
    series.New(vmeasure,   series.Float,  "v_measure"),
    series.New(nmi,        series.Float,  "nmi"),
    series.New(ari,        series.Float,  "ari"),
    series.New(consensus,  series.Float,  "consensus"),
  }
  for _, sample := range conditions.Samples {
    labels := make([]int, n)
    for i, call := range calls {
      if call.Assignment == nil {
        labels[i] = -1
      } else {
        labels[i] = call.Assignment[sample]
      }
    }
    columns = append(columns, series.New(labels, series.Int, "cluster_"+sample))
  }
  return dataframe.New(columns...)
}

/* -------------------------------------------------------------------------- */

func (calls RegionCalls) WriteTable(w io.Writer, conditions Conditions) error {
  df := calls.Dataframe(conditions)
  return df.WriteCSV(w, dataframe.WriteHeader(true))
}

func (calls RegionCalls) ExportTable(filename string, conditions Conditions) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return calls.WriteTable(f, conditions)
}
