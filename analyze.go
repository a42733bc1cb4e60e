package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Result is the outcome of analyzing one report
type Result struct {
	Summary    *Table
	Individual *Table
	// Elements maps each tracked atom to its element symbol
	Elements  map[int]string
	Records   []Record
	Irregular []PageWidth
	Stats     Stats
	Skipped   int
}

// Analyze scans the population section of the report in r and sums
// the contributions selected by conf. The returned error is
// ErrSectionNotFound or ErrNoRelevantMOs if nothing matched, in which
// case the zero-filled Result is still returned.
func Analyze(r io.Reader, conf Config, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	scanner := NewScanner(r, conf.Section, conf.Selection)
	scanner.Logger = logger
	agg := NewAggregator(conf.Selection, conf.Filter)
	agg.Logger = logger
	var records []Record
	for scanner.Scan() {
		ev := scanner.Event()
		if ev.Kind == DataRow {
			records = append(records, ev.Record)
		}
		agg.Add(ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	_, elements := conf.Filter.Tracked()
	res := &Result{
		Summary:    agg.Summary(),
		Individual: agg.Individual(),
		Elements:   elements,
		Records:    records,
		Irregular:  agg.Irregular(),
		Stats:      agg.Stats(),
		Skipped:    scanner.Skipped(),
	}
	switch {
	case !scanner.Found():
		return res, fmt.Errorf("%w: %q", ErrSectionNotFound, conf.Section)
	case res.Stats.Pages == 0:
		return res, fmt.Errorf("%w: %v", ErrNoRelevantMOs,
			conf.Selection.MOs())
	}
	return res, nil
}

// AnalyzeFile is Analyze on the report named by conf.Report
func AnalyzeFile(conf Config, logger *log.Logger) (*Result, error) {
	f, err := os.Open(conf.Report)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()
	return Analyze(f, conf, logger)
}
