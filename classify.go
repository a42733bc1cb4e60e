package main

import (
	"strconv"
	"strings"
)

// Class is the kind of a single report line
type Class int

const (
	Other Class = iota
	SectionStart
	PageBreakLine
	HeaderLine
	DataLine
)

func (c Class) String() string {
	switch c {
	case SectionStart:
		return "SectionStart"
	case PageBreakLine:
		return "PageBreakLine"
	case HeaderLine:
		return "HeaderLine"
	case DataLine:
		return "DataLine"
	default:
		return "Other"
	}
}

const (
	UNO_SECTION = "LOEWDIN REDUCED ORBITAL POPULATIONS PER UNO"
	MO_SECTION  = "LOEWDIN REDUCED ORBITAL POPULATIONS PER MO"
)

// Classify decides what kind of line line is. marker is the section
// title and is compared case-insensitively. Outside of the section
// everything but the marker is Other. Lines that trim to the empty
// string count as page breaks, since ORCA separates pages with blank
// lines.
func Classify(line, marker string, inside bool) Class {
	trimmed := strings.TrimSpace(line)
	switch {
	case marker != "" &&
		strings.Contains(strings.ToUpper(line), strings.ToUpper(marker)):
		return SectionStart
	case !inside:
		return Other
	case isDivider(trimmed):
		return PageBreakLine
	case isHeader(trimmed):
		return HeaderLine
	default:
		return DataLine
	}
}

func isDivider(s string) bool {
	for _, c := range s {
		if c != '-' {
			return false
		}
	}
	return true
}

func isHeader(s string) bool {
	_, ok := ParseHeader(s)
	return ok
}

// ParseHeader parses a line of whitespace-separated MO indices, in
// column order. ok is false if the line is empty or any field is not
// an integer.
func ParseHeader(line string) (mos []int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}
	mos = make([]int, len(fields))
	var err error
	for i, f := range fields {
		mos[i], err = strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
	}
	return mos, true
}
