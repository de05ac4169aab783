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

import "bufio"
import "compress/gzip"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Read peaks in ENCODE narrowPeak format, i.e. BED6 plus the columns
// signalValue, pValue, qValue, and peak. The three statistics columns are
// attached as Meta columns of the same names.
func (p *PeakSet) ReadNarrowPeak(r io.Reader) error {
  scanner := bufio.NewScanner(r)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  name     := []string{}
  signal   := []float64{}
  pvalue   := []float64{}
  qvalue   := []float64{}

  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 10 {
      return fmt.Errorf("narrowPeak file must have ten columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    v1, err := strconv.ParseFloat(fields[6], 64)
    if err != nil {
      return err
    }
    v2, err := strconv.ParseFloat(fields[7], 64)
    if err != nil {
      return err
    }
    v3, err := strconv.ParseFloat(fields[8], 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    name     = append(name,     fields[3])
    signal   = append(signal,   v1)
    pvalue   = append(pvalue,   v2)
    qvalue   = append(qvalue,   v3)
  }
  *p = NewPeakSet(seqnames, from, to)
  p.AddMeta("name",        name)
  p.AddMeta("signalValue", signal)
  p.AddMeta("pValue",      pvalue)
  p.AddMeta("qValue",      qvalue)
  return nil
}

// Import peaks in narrowPeak format from the given file. Files with a `.gz'
// suffix are decompressed on the fly.
func (p *PeakSet) ImportNarrowPeak(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  if strings.HasSuffix(filename, ".gz") {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    return p.ReadNarrowPeak(g)
  }
  return p.ReadNarrowPeak(f)
}

/* -------------------------------------------------------------------------- */

// Read peaks in BED format with at least three columns. Columns four and
// five, if present, are attached as `name' and `score' Meta columns.
func (p *PeakSet) ReadBed(r io.Reader) error {
  scanner := bufio.NewScanner(r)

  seqnames := []string{}
  from     := []int{}
  to       := []int{}
  name     := []string{}
  score    := []float64{}
  hasName  := false
  hasScore := false

  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 3 {
      return fmt.Errorf("bed file must have at least three columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return err
    }
    seqnames = append(seqnames, fields[0])
    from     = append(from,     int(t1))
    to       = append(to,       int(t2))
    if len(fields) >= 4 {
      name    = append(name, fields[3])
      hasName = true
    } else {
      name    = append(name, "")
    }
    if len(fields) >= 5 {
      v, err := strconv.ParseFloat(fields[4], 64)
      if err != nil {
        return err
      }
      score    = append(score, v)
      hasScore = true
    } else {
      score    = append(score, 0.0)
    }
  }
  *p = NewPeakSet(seqnames, from, to)
  if hasName {
    p.AddMeta("name", name)
  }
  if hasScore {
    p.AddMeta("score", score)
  }
  return nil
}

func (p *PeakSet) ImportBed(filename string) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  if strings.HasSuffix(filename, ".gz") {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    return p.ReadBed(g)
  }
  return p.ReadBed(f)
}
