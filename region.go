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

// Region is a single query interval. The Name and any further annotation
// are passed through to the output but never consulted by the algorithm.
type Region struct {
  Seqname string
  Range
  Name    string
}

/* -------------------------------------------------------------------------- */

func NewRegion(seqname string, from, to int, name string) Region {
  return Region{seqname, NewRange(from, to), name}
}

func (r Region) String() string {
  return fmt.Sprintf("%s:%d-%d", r.Seqname, r.From, r.To)
}

/* i/o
 * -------------------------------------------------------------------------- */

// Read query regions from BED format. The fourth column, if present, is
// used as the region name.
func ReadRegionsBed(r io.Reader) ([]Region, error) {
  regions := []Region{}
  scanner := bufio.NewScanner(r)
  for scanner.Scan() {
    if err := scanner.Err(); err != nil {
      return nil, err
    }
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 3 {
      return nil, fmt.Errorf("regions bed file must have at least three columns")
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return nil, err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return nil, err
    }
    name := ""
    if len(fields) >= 4 {
      name = fields[3]
    }
    regions = append(regions, NewRegion(fields[0], int(t1), int(t2), name))
  }
  return regions, nil
}

func ImportRegionsBed(filename string) ([]Region, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  if strings.HasSuffix(filename, ".gz") {
    g, err := gzip.NewReader(f)
    if err != nil {
      return nil, err
    }
    defer g.Close()
    return ReadRegionsBed(g)
  }
  return ReadRegionsBed(f)
}
