package main

import (
	"fmt"
	"io"
)

// WriteReport prints the tables of res followed by the scan
// statistics and any warnings about the page layout
func WriteReport(w io.Writer, res *Result) {
	WriteTable(w, res.Summary, true)
	if !res.Individual.Empty() {
		fmt.Fprint(w, "\n")
		WriteTable(w, res.Individual, false)
	}
	s := res.Stats
	fmt.Fprintf(w, "\n%d pages, %d page breaks, %d records (%d matched), "+
		"%d skipped rows\n",
		s.Pages, s.PageBreaks, s.Records, s.Matched, res.Skipped)
	for _, pw := range res.Irregular {
		fmt.Fprintf(w, "warning: page at line %d has %d selected MOs, "+
			"expected %d\n", pw.Line, pw.Width, pw.Want)
	}
	if s.Misaligned > 0 {
		fmt.Fprintf(w, "warning: %d values were attributed to a different "+
			"MO than their page header\n", s.Misaligned)
	}
}
