/*
Package sparse implements a simple type for sparse integer matrices.
It is used for automata transition tables: rows are states, columns are
alphabet positions, and the null value marks a missing transition
(implicit reject).

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sparse

// Matrix is a sparse matrix of int32 values. Construct with
//
//     M := sparse.New(10, 10, -1)   // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)             // set a value
//     v := M.Value(2, 3)            // returns 4711
//     v = M.Value(9, 9)             // returns -1, i.e. the null-value
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Triplets are kept sorted by (row, col), so lookup skips all lesser
// positions.
type Matrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    int32
}

// New creates a matrix of size m x n. The 3rd argument is the null-value,
// indicating empty entries.
func New(m, n int, nullValue int32) *Matrix {
	return &Matrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// M returns the row count.
func (m *Matrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *Matrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value.
func (m *Matrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of stored values in the matrix.
func (m *Matrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or NullValue.
func (m *Matrix) Value(i, j int) int32 {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return t.value
			}
			break
		}
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j).
func (m *Matrix) Set(i, j int, value int32) *Matrix {
	at := 0 // will be position of new value
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) { // value already present
				m.values[k].value = value
				return m
			}
			break // no old value present
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: value}
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

// Each calls f for every stored non-null value, in (row, col) order.
func (m *Matrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		if t.value == m.nullval {
			continue
		}
		f(t.row, t.col, t.value)
	}
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}
