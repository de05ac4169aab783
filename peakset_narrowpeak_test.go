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

import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestReadNarrowPeak(t *testing.T) {

  data := "" +
    "chr1\t100\t200\tpeak1\t0\t.\t5.5\t12.0\t9.1\t50\n" +
    "chr1\t500\t800\tpeak2\t0\t.\t2.0\t4.5\t3.2\t100\n"

  p := PeakSet{}
  if err := p.ReadNarrowPeak(strings.NewReader(data)); err != nil {
    t.Error("TestReadNarrowPeak failed!")
  }
  if p.Length() != 2 {
    t.Error("TestReadNarrowPeak failed!")
  }
  if p.Seqnames[0] != "chr1" || p.Ranges[0].From != 100 || p.Ranges[0].To != 200 {
    t.Error("TestReadNarrowPeak failed!")
  }
  signal := p.GetMetaFloat("signalValue")
  qvalue := p.GetMetaFloat("qValue")
  if signal == nil || qvalue == nil {
    t.Error("TestReadNarrowPeak failed!")
  }
  if !fEqual(signal[0], 5.5) || !fEqual(qvalue[1], 3.2) {
    t.Error("TestReadNarrowPeak failed!")
  }
}

func TestReadNarrowPeakInvalid(t *testing.T) {

  p := PeakSet{}
  if err := p.ReadNarrowPeak(strings.NewReader("chr1\t100\t200\n")); err == nil {
    t.Error("TestReadNarrowPeakInvalid failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestReadRegionsBed(t *testing.T) {

  data := "" +
    "chr1\t1000\t2000\tgene1\n" +
    "chr2\t5000\t9000\tgene2\n" +
    "chr3\t100\t200\n"

  regions, err := ReadRegionsBed(strings.NewReader(data))
  if err != nil {
    t.Error("TestReadRegionsBed failed!")
  }
  if len(regions) != 3 {
    t.Error("TestReadRegionsBed failed!")
  }
  if regions[0].Name != "gene1" || regions[2].Name != "" {
    t.Error("TestReadRegionsBed failed!")
  }
  if regions[1].Seqname != "chr2" || regions[1].From != 5000 || regions[1].To != 9000 {
    t.Error("TestReadRegionsBed failed!")
  }
}
