package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is the contribution of one atomic orbital to the selected MOs
// on a single page. Values[i] belongs to MOs[i].
type Record struct {
	Atom    int
	Element string
	Orbital string
	MOs     []int
	Values  []float64
}

// String formats r as a line of the debug dump
func (r Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s, %s", r.Atom, r.Element, r.Orbital)
	for _, v := range r.Values {
		b.WriteString(", ")
		b.WriteString(formatFloat(v))
	}
	return b.String()
}

// ParseRecord extracts a Record from the fields of a data row using
// the current page's columns. The first three fields are the atom
// index, element symbol and orbital label, and the value of column
// Local is fields[3+Local].
func ParseRecord(fields []string, cols ColumnMap) (r Record, err error) {
	if need := 3 + cols.width(); len(fields) < need {
		return r, fmt.Errorf("%w: %d fields, need %d",
			ErrShortRow, len(fields), need)
	}
	r.Atom, err = strconv.Atoi(fields[0])
	if err != nil {
		return r, fmt.Errorf("%w: atom index %q", ErrBadField, fields[0])
	}
	r.Element = fields[1]
	r.Orbital = fields[2]
	r.MOs = make([]int, len(cols))
	r.Values = make([]float64, len(cols))
	for i, col := range cols {
		r.MOs[i] = col.MO
		r.Values[i], err = strconv.ParseFloat(fields[3+col.Local], 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: value %q for MO %d",
				ErrBadField, fields[3+col.Local], col.MO)
		}
	}
	return r, nil
}

// formatFloat prints v in the shortest form that round-trips, always
// with a decimal point
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
