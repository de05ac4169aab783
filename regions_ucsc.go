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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* import query regions from ucsc
 * -------------------------------------------------------------------------- */

// Import query regions from the UCSC public MySQL server. The genome is a
// UCSC assembly name such as `hg19' and the table is a gene table such as
// `refGene'; the transcript span of each entry becomes one query region
// named after the gene.
func ImportRegionsFromUCSC(genome, table string) ([]Region, error) {
  /* variables for storing a single database row */
  var i_name, i_seqname string
  var i_txFrom, i_txTo int

  regions := []Region{}

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return nil, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return nil, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name2, chrom, txStart, txEnd FROM %s", table))
  if err != nil {
    return nil, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_name, &i_seqname, &i_txFrom, &i_txTo); err != nil {
      return nil, err
    }
    regions = append(regions, NewRegion(i_seqname, i_txFrom, i_txTo, i_name))
  }
  return regions, nil
}
