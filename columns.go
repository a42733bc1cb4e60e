package main

// Column pairs a column position on the current page with the global
// MO index printed above it
type Column struct {
	Local int
	MO    int
}

// ColumnMap is the ordered list of selected columns on one page, in
// the left-to-right order of the page header
type ColumnMap []Column

// Align builds the ColumnMap for a page header, keeping only the MOs
// in selection. The header order is preserved, not the selection
// order.
func Align(header []int, selection Selection) ColumnMap {
	var ret ColumnMap
	for i, mo := range header {
		if selection.Contains(mo) {
			ret = append(ret, Column{Local: i, MO: mo})
		}
	}
	return ret
}

// MOs returns the global MO indices of c in column order
func (c ColumnMap) MOs() []int {
	ret := make([]int, len(c))
	for i, col := range c {
		ret[i] = col.MO
	}
	return ret
}

// width is the number of value fields a data row needs to cover every
// column in c
func (c ColumnMap) width() int {
	var max int
	for _, col := range c {
		if col.Local+1 > max {
			max = col.Local + 1
		}
	}
	return max
}
