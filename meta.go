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

// Meta holds named data columns attached to a PeakSet or Region, such as
// signal values or gene names. Supported column types are []float64,
// []string, and []int.
type Meta struct {
  MetaName []string
  MetaData []interface{}
  rows int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMeta(names []string, data []interface{}) Meta {
  meta := Meta{}
  if len(names) != len(data) {
    panic("NewMeta(): invalid parameters!")
  }
  for i := 0; i < len(names); i++ {
    meta.AddMeta(names[i], data[i])
  }
  return meta
}

// Deep copy the Meta object.
func (m *Meta) Clone() Meta {
  result := NewMeta([]string{}, []interface{}{})
  for i := 0; i < m.MetaLength(); i++ {
    switch v := m.MetaData[i].(type) {
    case []float64:
      r := make([]float64, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []string:
      r := make([]string, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    case []int:
      r := make([]int, len(v))
      copy(r, v)
      result.AddMeta(m.MetaName[i], r)
    default: panic("Clone(): invalid type!")
    }
  }
  return result
}

/* -------------------------------------------------------------------------- */

// Returns the number of rows.
func (m *Meta) Length() int {
  return m.rows
}

// Returns the number of columns.
func (m *Meta) MetaLength() int {
  return len(m.MetaName)
}

func (m *Meta) AddMeta(name string, meta interface{}) {
  n := -1
  switch v := meta.(type) {
  case []float64: n = len(v)
  case []string:  n = len(v)
  case []int:     n = len(v)
  default: panic("AddMeta(): invalid type!")
  }
  if m.MetaLength() > 0 {
    // this is not the first column added; check length
    if n != m.rows {
      panic("AddMeta(): column has invalid length!")
    }
  } else {
    // this is the first column, it determines the number of rows
    m.rows = n
  }
  // replace the column if a column with this name already exists
  m.DeleteMeta(name)
  m.MetaData = append(m.MetaData, meta)
  m.MetaName = append(m.MetaName, name)
}

func (m *Meta) DeleteMeta(name string) {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      m.MetaName = append(m.MetaName[:i], m.MetaName[i+1:]...)
      m.MetaData = append(m.MetaData[:i], m.MetaData[i+1:]...)
    }
  }
}

func (m *Meta) GetMeta(name string) interface{} {
  for i := 0; i < m.MetaLength(); i++ {
    if m.MetaName[i] == name {
      return m.MetaData[i]
    }
  }
  return nil
}

func (m *Meta) GetMetaFloat(name string) []float64 {
  if v, ok := m.GetMeta(name).([]float64); ok {
    return v
  }
  return nil
}

func (m *Meta) GetMetaStr(name string) []string {
  if v, ok := m.GetMeta(name).([]string); ok {
    return v
  }
  return nil
}

func (m *Meta) GetMetaInt(name string) []int {
  if v, ok := m.GetMeta(name).([]int); ok {
    return v
  }
  return nil
}

/* -------------------------------------------------------------------------- */

func (m1 *Meta) Append(m2 Meta) Meta {
  result := NewMeta([]string{}, []interface{}{})
  for i := 0; i < m1.MetaLength(); i++ {
    name := m1.MetaName[i]
    t2   := m2.GetMeta(name)
    switch v1 := m1.MetaData[i].(type) {
    case []float64:
      v2, ok := t2.([]float64)
      if !ok {
        panic("Append(): column types do not match!")
      }
      r := make([]float64, 0, len(v1)+len(v2))
      r  = append(append(r, v1...), v2...)
      result.AddMeta(name, r)
    case []string:
      v2, ok := t2.([]string)
      if !ok {
        panic("Append(): column types do not match!")
      }
      r := make([]string, 0, len(v1)+len(v2))
      r  = append(append(r, v1...), v2...)
      result.AddMeta(name, r)
    case []int:
      v2, ok := t2.([]int)
      if !ok {
        panic("Append(): column types do not match!")
      }
      r := make([]int, 0, len(v1)+len(v2))
      r  = append(append(r, v1...), v2...)
      result.AddMeta(name, r)
    }
  }
  return result
}

// Returns a new Meta object containing the given rows.
func (m *Meta) Subset(indices []int) Meta {
  result := NewMeta([]string{}, []interface{}{})
  for i := 0; i < m.MetaLength(); i++ {
    switch v := m.MetaData[i].(type) {
    case []float64:
      r := make([]float64, len(indices))
      for j, k := range indices {
        r[j] = v[k]
      }
      result.AddMeta(m.MetaName[i], r)
    case []string:
      r := make([]string, len(indices))
      for j, k := range indices {
        r[j] = v[k]
      }
      result.AddMeta(m.MetaName[i], r)
    case []int:
      r := make([]int, len(indices))
      for j, k := range indices {
        r[j] = v[k]
      }
      result.AddMeta(m.MetaName[i], r)
    }
  }
  return result
}
