package main

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

const tol = 1e-9

func aggregate(t *testing.T, text string, sel Selection,
	filter Filter) *Aggregator {
	t.Helper()
	events, err := ScanAll(strings.NewReader(text), UNO_SECTION, sel)
	if err != nil {
		t.Fatal(err)
	}
	agg := NewAggregator(sel, filter)
	for _, ev := range events {
		agg.Add(ev)
	}
	return agg
}

func checkRow(t *testing.T, tab *Table, row string, want []float64) {
	t.Helper()
	got := tab.Row(row)
	if len(got) != len(want) || !floats.EqualApprox(got, want, tol) {
		t.Errorf("%s: got %v, wanted %v\n", row, got, want)
	}
}

func TestAggregateSinglePage(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2 3
10 X s 5.0 6.0 7.0
`
	agg := aggregate(t, text, MustSelection(1, 2, 3),
		Filter{{Symbol: "X", Orbitals: []string{"s"}}})
	checkRow(t, agg.Summary(), "X", []float64{5, 6, 7})
	if !agg.Individual().Empty() {
		t.Errorf("got %v, wanted an empty table\n", agg.Individual().Rows)
	}
	if agg.rowOffset != 0 {
		t.Errorf("got %v, wanted %v\n", agg.rowOffset, 0)
	}
}

func TestAggregateTwoPages(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2
10 X s 1.0 2.0
------
3 4
10 X s 3.0 4.0
`
	agg := aggregate(t, text, MustSelection(1, 2, 3, 4),
		Filter{{Symbol: "X", Orbitals: []string{"s"}}})
	checkRow(t, agg.Summary(), "X", []float64{1, 2, 3, 4})
	if got := agg.Stats().Misaligned; got != 0 {
		t.Errorf("got %v, wanted %v\n", got, 0)
	}
}

func TestAggregateThreePages(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
0 1 2 3
10 X s 9.0 9.0 1.0 2.0
11 X p 9.0 9.0 1.0 1.0

4 5 6 7
10 X s 3.0 4.0 5.0 6.0
11 X p 1.0 1.0 1.0 1.0

8 9 10 11
10 X s 7.0 8.0 9.0 9.0
11 X p 1.0 1.0 9.0 9.0

12 13
10 X s 9.0 9.0
`
	agg := aggregate(t, text, MustSelection(2, 3, 4, 5, 6, 7, 8, 9),
		Filter{{Symbol: "X", Orbitals: []string{"s"}, Atoms: []int{10}}})
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	checkRow(t, agg.Summary(), "X", want)
	checkRow(t, agg.Individual(), "10", want)
	if got := agg.Stats().Misaligned; got != 0 {
		t.Errorf("got %v, wanted %v\n", got, 0)
	}
	// only the middle page is wider than the first
	irr := agg.Irregular()
	if len(irr) != 1 || irr[0].Width != 4 || irr[0].Want != 2 {
		t.Errorf("got %v, wanted one page of width 4\n", irr)
	}
}

func TestAggregateRepeatedBreaks(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2
10 X s 1.0 2.0


3 4
--------
10 X s 3.0 4.0
`
	agg := aggregate(t, text, MustSelection(1, 2, 3, 4),
		Filter{{Symbol: "X", Orbitals: []string{"s"}}})
	checkRow(t, agg.Summary(), "X", []float64{1, 2, 3, 4})
	if got := agg.Stats().PageBreaks; got != 3 {
		t.Errorf("got %v, wanted %v\n", got, 3)
	}
}

func TestAggregateFilter(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2
 0 Fe dxy 10.0 20.0
 0 Fe s    1.0  1.0
 1 Fe dz2  5.0  5.0
 2 O  pz   3.0  4.0
 3 O  s    1.0  2.0
 4 N  px   7.0  7.0
`
	filter := Filter{
		{Symbol: "Fe", Orbitals: []string{"d"}, Atoms: []int{1}},
		{Symbol: "O", Orbitals: []string{"s", "p"}},
		{Symbol: "H", Orbitals: []string{"s"}},
	}
	agg := aggregate(t, text, MustSelection(1, 2), filter)
	checkRow(t, agg.Summary(), "Fe", []float64{5, 5})
	checkRow(t, agg.Summary(), "O", []float64{4, 6})
	// present even though nothing contributed
	checkRow(t, agg.Summary(), "H", []float64{0, 0})
	checkRow(t, agg.Individual(), "1", []float64{5, 5})
	if _, ok := agg.Individual().Get("0", 1); ok {
		t.Errorf("got an entry for untracked atom 0\n")
	}
	if _, ok := agg.Summary().Get("N", 1); ok {
		t.Errorf("got an entry for unfiltered element N\n")
	}
	if got, want := agg.Stats().Matched, 3; got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestAggregateMalformedRow(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2
10 X s 1.0 oops
10 X s 1.0 2.0
x0 X s 9.0 9.0
11 X s 1.0 2.0
`
	agg := aggregate(t, text, MustSelection(1, 2),
		Filter{{Symbol: "X", Orbitals: []string{"s"}}})
	checkRow(t, agg.Summary(), "X", []float64{2, 4})
}

func TestAggregateFlagsMisalignment(t *testing.T) {
	text := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2 3
10 X s 5.0 6.0 7.0
`
	// the selection is not in header order, so the offset rule
	// pairs the first column with MO 3
	agg := aggregate(t, text, MustSelection(3, 1),
		Filter{{Symbol: "X", Orbitals: []string{"s"}}})
	checkRow(t, agg.Summary(), "X", []float64{5, 7})
	if got := agg.Stats().Misaligned; got != 2 {
		t.Errorf("got %v, wanted %v\n", got, 2)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	f := Filter{
		{Symbol: "O", Orbitals: []string{"s", "p"}},
		{Symbol: "C", Orbitals: []string{"p"}, Atoms: []int{1}},
	}
	sel := MustSelection(2, 3, 4, 5)
	events, err := ScanAll(strings.NewReader(readFile(t,
		"testfiles/orca.out")), UNO_SECTION, sel)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAggregator(sel, f)
	b := NewAggregator(sel, f)
	for _, ev := range events {
		a.Add(ev)
	}
	for _, ev := range events {
		b.Add(ev)
	}
	if !a.Summary().Equal(b.Summary(), 0) {
		t.Errorf("summaries differ\n")
	}
	if !a.Individual().Equal(b.Individual(), 0) {
		t.Errorf("individual tables differ\n")
	}
}

func TestAggregateIgnoresOtherLines(t *testing.T) {
	plain := `LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
1 2
10 X s 1.0 2.0

3 4
10 X s 3.0 4.0
`
	noisy := `some header text
ORCA 5.0.3
LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO
THRESHOLD FOR PRINTING IS 0.1%
1 2
 -1.0 -2.0
10 X s 1.0 2.0

3 4
 2.0 2.0
 ----  ----
10 X s 3.0 4.0
`
	sel := MustSelection(1, 2, 3, 4)
	f := Filter{{Symbol: "X", Orbitals: []string{"s"}}}
	a := aggregate(t, plain, sel, f)
	b := aggregate(t, noisy, sel, f)
	if !a.Summary().Equal(b.Summary(), 0) {
		t.Errorf("got %v, wanted %v\n",
			b.Summary().Row("X"), a.Summary().Row("X"))
	}
}
