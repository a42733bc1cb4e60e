package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	PLOT_WIDTH  = 10 * vg.Inch
	PLOT_HEIGHT = 6 * vg.Inch
)

// Chart draws the summary as one solid line per element and the
// individual table as one dashed line per tracked atom
func Chart(res *Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Percentage Contributions to Molecular Orbitals (MOs)"
	p.X.Label.Text = "MOs"
	p.Y.Label.Text = "Percentage Contribution (%)"
	ticks := make([]plot.Tick, len(res.Summary.MOs))
	for i, mo := range res.Summary.MOs {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("MO%d", mo)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(grid)
	p.Legend.Top = true
	p.Legend.Left = false

	var series int
	for _, sym := range res.Summary.Rows {
		line, points, err := plotter.NewLinePoints(
			xys(res.Summary.Row(sym)))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(series)
		points.Color = plotutil.Color(series)
		points.Shape = plotutil.Shape(0)
		p.Add(line, points)
		p.Legend.Add(sym, line, points)
		series++
	}
	for _, row := range res.Individual.Rows {
		line, err := plotter.NewLine(xys(res.Individual.Row(row)))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(series)
		line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(line)
		p.Legend.Add(atomLabel(row, res.Elements), line)
		series++
	}
	return p, nil
}

func atomLabel(row string, elements map[int]string) string {
	for atom, sym := range elements {
		if AtomRow(atom) == row {
			return fmt.Sprintf("Atom %s (%s)", row, sym)
		}
	}
	return "Atom " + row
}

func xys(vals []float64) plotter.XYs {
	ret := make(plotter.XYs, len(vals))
	for i, v := range vals {
		ret[i].X = float64(i)
		ret[i].Y = v
	}
	return ret
}

// SavePlot draws res to filename. The format is taken from the
// extension, e.g. png, svg or pdf.
func SavePlot(res *Result, filename string) error {
	p, err := Chart(res)
	if err != nil {
		return err
	}
	return p.Save(PLOT_WIDTH, PLOT_HEIGHT, filename)
}
