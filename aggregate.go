package main

import (
	"io"
	"log"
)

// Stats counts what the Aggregator has seen
type Stats struct {
	Pages      int
	PageBreaks int
	Records    int
	Matched    int
	// values whose MO from the page header disagreed with the MO
	// derived from the row offset
	Misaligned int
}

// PageWidth records a page whose number of selected columns differs
// from the first selected page
type PageWidth struct {
	Line  int
	Width int
	Want  int
}

// Aggregator sums record values by element and by tracked atom across
// the pages of the section. Events must be added in report order.
type Aggregator struct {
	selection Selection
	filter    Filter

	rowOffset int
	lastIndex int
	consumed  bool
	width     int

	summary    *Table
	individual *Table
	irregular  []PageWidth
	stats      Stats

	// Logger receives per-record diagnostics
	Logger *log.Logger
}

// NewAggregator returns an Aggregator with zeroed tables for every
// element of filter and every tracked atom
func NewAggregator(selection Selection, filter Filter) *Aggregator {
	atoms, _ := filter.Tracked()
	rows := make([]string, len(atoms))
	for i, a := range atoms {
		rows[i] = AtomRow(a)
	}
	return &Aggregator{
		selection:  selection,
		filter:     filter,
		summary:    NewTable(filter.Symbols(), selection.MOs()),
		individual: NewTable(rows, selection.MOs()),
		Logger:     log.New(io.Discard, "", 0),
	}
}

// Add folds ev into the running sums
func (a *Aggregator) Add(ev Event) {
	switch ev.Kind {
	case PageBreak:
		a.stats.PageBreaks++
		// repeated dividers with no rows between them keep the
		// offset of the last page that had rows
		if a.consumed {
			a.rowOffset = a.lastIndex
			a.lastIndex = 0
			a.consumed = false
		}
	case HeaderBlock:
		a.stats.Pages++
		w := len(ev.Columns)
		if a.width == 0 {
			a.width = w
		} else if w != a.width {
			a.irregular = append(a.irregular,
				PageWidth{Line: ev.Line, Width: w, Want: a.width})
			a.Logger.Printf("line %d: page has %d selected MOs, "+
				"first page had %d\n", ev.Line, w, a.width)
		}
	case DataRow:
		a.addRecord(ev.Record, ev.Line)
	}
}

func (a *Aggregator) addRecord(rec Record, line int) {
	a.stats.Records++
	rule, ok := a.filter.Rule(rec.Element)
	match := ok && rule.Matches(rec.Atom, rec.Orbital)
	if match {
		a.stats.Matched++
	}
	a.Logger.Printf("Atom: %d %s, Orbital: %s, Populations: %v, "+
		"Row Offset: %d\n",
		rec.Atom, rec.Element, rec.Orbital, rec.Values, a.rowOffset)
	n := a.selection.Len()
	for i, v := range rec.Values {
		idx := (a.rowOffset + i) % n
		mo := a.selection.At(idx)
		if i < len(rec.MOs) && rec.MOs[i] != mo {
			a.stats.Misaligned++
			a.Logger.Printf("line %d: value %d of %d %s %s "+
				"attributed to MO %d, header says MO %d\n",
				line, i, rec.Atom, rec.Element, rec.Orbital,
				mo, rec.MOs[i])
		}
		if match {
			a.summary.Add(rec.Element, mo, v)
			if len(rule.Atoms) > 0 {
				a.individual.Add(AtomRow(rec.Atom), mo, v)
			}
		}
		a.lastIndex = idx + 1
		a.consumed = true
	}
}

// Summary returns the per-element sums
func (a *Aggregator) Summary() *Table { return a.summary }

// Individual returns the per-atom sums of the tracked atoms
func (a *Aggregator) Individual() *Table { return a.individual }

// Irregular returns the pages whose selected column count differs
// from the first selected page
func (a *Aggregator) Irregular() []PageWidth { return a.irregular }

func (a *Aggregator) Stats() Stats { return a.stats }
