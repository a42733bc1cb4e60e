package main

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// Kind is the type of an Event
type Kind int

const (
	PageBreak Kind = iota
	HeaderBlock
	DataRow
)

func (k Kind) String() string {
	switch k {
	case PageBreak:
		return "PageBreak"
	case HeaderBlock:
		return "HeaderBlock"
	default:
		return "DataRow"
	}
}

// Event is a single item of the population section. Header and
// Columns are set for HeaderBlock events, Record for DataRow events.
// Line is the 1-based line number in the report.
type Event struct {
	Kind    Kind
	Line    int
	Header  []int
	Columns ColumnMap
	Record  Record
}

type state int

const (
	outside state = iota
	inside
	done
)

// maximum line length accepted from a report
const MAXLINE = 1 << 20

// Scanner reads a report one line at a time and yields the events of
// the population section. Like bufio.Scanner, call Scan until it
// returns false, then check Err.
type Scanner struct {
	lines     *bufio.Scanner
	marker    string
	selection Selection
	max       int

	state    state
	relevant bool
	header   bool
	highest  int
	cols     ColumnMap

	line    int
	skipped int
	event   Event
	err     error

	// Logger receives a line for every skipped data row
	Logger *log.Logger
}

// NewScanner returns a Scanner reading r for the section titled
// marker, keeping only the MOs in selection
func NewScanner(r io.Reader, marker string, selection Selection) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), MAXLINE)
	return &Scanner{
		lines:     lines,
		marker:    marker,
		selection: selection,
		max:       selection.Max(),
		Logger:    log.New(io.Discard, "", 0),
	}
}

// Scan advances to the next event, returning false at the end of the
// section or the end of the input
func (s *Scanner) Scan() bool {
	for s.state != done && s.lines.Scan() {
		s.line++
		text := s.lines.Text()
		switch Classify(text, s.marker, s.state == inside) {
		case SectionStart:
			s.state = inside
		case PageBreakLine:
			// dividers before the first selected column are part
			// of the section preamble
			if s.relevant {
				s.event = Event{Kind: PageBreak, Line: s.line}
				return true
			}
		case HeaderLine:
			header, _ := ParseHeader(text)
			s.header = true
			for _, mo := range header {
				if mo > s.highest {
					s.highest = mo
				}
			}
			s.cols = Align(header, s.selection)
			if len(s.cols) > 0 {
				s.relevant = true
				s.event = Event{
					Kind:    HeaderBlock,
					Line:    s.line,
					Header:  header,
					Columns: s.cols,
				}
				return true
			}
		case DataLine:
			if len(s.cols) > 0 {
				rec, err := ParseRecord(strings.Fields(text), s.cols)
				if err != nil {
					s.skipped++
					s.Logger.Printf("line %d: skipping %q: %v\n",
						s.line, strings.TrimSpace(text), err)
					continue
				}
				s.event = Event{Kind: DataRow, Line: s.line, Record: rec}
				return true
			}
			if s.header && s.highest >= s.max {
				s.state = done
			}
		}
	}
	if s.state != done {
		s.err = s.lines.Err()
	}
	return false
}

// Event returns the most recent event produced by Scan
func (s *Scanner) Event() Event { return s.event }

// Err returns the first read error encountered by the Scanner
func (s *Scanner) Err() error { return s.err }

// Skipped returns the number of data rows rejected so far
func (s *Scanner) Skipped() int { return s.skipped }

// Found reports whether the section marker has been seen
func (s *Scanner) Found() bool { return s.state != outside }

// ScanAll collects every event of the section in r
func ScanAll(r io.Reader, marker string, selection Selection) (
	[]Event, error) {
	s := NewScanner(r, marker, selection)
	var ret []Event
	for s.Scan() {
		ret = append(ret, s.Event())
	}
	return ret, s.Err()
}
