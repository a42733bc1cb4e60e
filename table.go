package main

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Table holds running sums with one row per label and one column per
// selected MO. Every (row, MO) cell exists from the start with value
// 0.
type Table struct {
	Rows []string
	MOs  []int
	data *mat.Dense
	rows map[string]int
	cols map[int]int
}

// NewTable returns a zeroed Table over rows and mos
func NewTable(rows []string, mos []int) *Table {
	t := &Table{
		Rows: append([]string(nil), rows...),
		MOs:  append([]int(nil), mos...),
		rows: make(map[string]int, len(rows)),
		cols: make(map[int]int, len(mos)),
	}
	for i, r := range rows {
		t.rows[r] = i
	}
	for j, mo := range mos {
		t.cols[mo] = j
	}
	// mat.NewDense panics on zero dimensions
	if len(rows) > 0 && len(mos) > 0 {
		t.data = mat.NewDense(len(rows), len(mos), nil)
	}
	return t
}

// AtomRow is the row label used for atom in an individual table
func AtomRow(atom int) string {
	return strconv.Itoa(atom)
}

// Empty reports whether t has no rows
func (t *Table) Empty() bool { return t.data == nil }

// Get returns the value at row and mo. ok is false if either key is
// not part of t.
func (t *Table) Get(row string, mo int) (v float64, ok bool) {
	i, ok := t.rows[row]
	if !ok {
		return 0, false
	}
	j, ok := t.cols[mo]
	if !ok {
		return 0, false
	}
	return t.data.At(i, j), true
}

// Add adds v to the cell at row and mo, returning false if the cell
// does not exist
func (t *Table) Add(row string, mo int, v float64) bool {
	i, ok := t.rows[row]
	if !ok {
		return false
	}
	j, ok := t.cols[mo]
	if !ok {
		return false
	}
	t.data.Set(i, j, t.data.At(i, j)+v)
	return true
}

// Row returns a copy of the values of row in MO order
func (t *Table) Row(row string) []float64 {
	i, ok := t.rows[row]
	if !ok {
		return nil
	}
	return mat.Row(nil, i, t.data)
}

// Totals returns the column sums of t, one per MO
func (t *Table) Totals() []float64 {
	ret := make([]float64, len(t.MOs))
	if t.Empty() {
		return ret
	}
	r, _ := t.data.Dims()
	for i := 0; i < r; i++ {
		floats.Add(ret, t.data.RawRowView(i))
	}
	return ret
}

// Matrix exposes the values of t, or nil if t is empty
func (t *Table) Matrix() mat.Matrix {
	if t.Empty() {
		return nil
	}
	return t.data
}

// Equal reports whether t and o have the same keys and values within
// tol
func (t *Table) Equal(o *Table, tol float64) bool {
	if len(t.Rows) != len(o.Rows) || len(t.MOs) != len(o.MOs) {
		return false
	}
	for i := range t.Rows {
		if t.Rows[i] != o.Rows[i] {
			return false
		}
	}
	for j := range t.MOs {
		if t.MOs[j] != o.MOs[j] {
			return false
		}
	}
	if t.Empty() || o.Empty() {
		return t.Empty() == o.Empty()
	}
	return mat.EqualApprox(t.data, o.data, tol)
}

// WriteTable writes t to w as fixed-width text with the MOs across the
// top. If total is set a row of column sums follows.
func WriteTable(w io.Writer, t *Table, total bool) {
	fmt.Fprintf(w, "%-8s", "")
	for _, mo := range t.MOs {
		fmt.Fprintf(w, "%10s", fmt.Sprintf("MO%d", mo))
	}
	fmt.Fprint(w, "\n")
	for _, r := range t.Rows {
		fmt.Fprintf(w, "%-8s", r)
		for _, v := range t.Row(r) {
			fmt.Fprintf(w, "%10.4f", v)
		}
		fmt.Fprint(w, "\n")
	}
	if total {
		fmt.Fprintf(w, "%-8s", "Total")
		for _, v := range t.Totals() {
			fmt.Fprintf(w, "%10.4f", v)
		}
		fmt.Fprint(w, "\n")
	}
}
