package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	conf := testConfig()
	conf.Debug = filepath.Join(t.TempDir(), "parsing_debug.txt")
	var buf bytes.Buffer
	if err := Run(&buf, conf, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"MO2", "MO5",
		"O          85.3000   50.0000   51.0000   32.0000",
		"2 pages, 2 page breaks, 10 records (8 matched), 6 skipped rows",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "warning") {
		t.Errorf("unexpected warning in\n%s", got)
	}
	dump := readFile(t, conf.Debug)
	if !strings.HasPrefix(dump, DUMP_HEADER+"\n") {
		t.Errorf("got %q, wanted prefix %q\n", dump, DUMP_HEADER)
	}
}

func TestRunNothingMatched(t *testing.T) {
	conf := testConfig()
	conf.Selection = MustSelection(100)
	conf.Plot = filepath.Join(t.TempDir(), "never.png")
	var buf bytes.Buffer
	err := Run(&buf, conf, nil)
	if !errors.Is(err, ErrNoRelevantMOs) {
		t.Errorf("got %v, wanted %v\n", err, ErrNoRelevantMOs)
	}
	if buf.Len() != 0 {
		t.Errorf("got output %q, wanted none\n", buf.String())
	}
}
