package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is the ordered set of global MO indices to analyze. The
// order is the declaration order and is also the column order of the
// output tables.
type Selection struct {
	mos   []int
	index map[int]int
}

// NewSelection returns a Selection over mos. Empty and duplicate
// selections are rejected.
func NewSelection(mos []int) (Selection, error) {
	if len(mos) == 0 {
		return Selection{}, ErrEmptySelection
	}
	index := make(map[int]int, len(mos))
	for i, mo := range mos {
		if _, ok := index[mo]; ok {
			return Selection{}, fmt.Errorf(
				"%w: MO %d selected twice", ErrBadConfig, mo,
			)
		}
		index[mo] = i
	}
	return Selection{
		mos:   append([]int(nil), mos...),
		index: index,
	}, nil
}

// MustSelection is like NewSelection but panics on error
func MustSelection(mos ...int) Selection {
	s, err := NewSelection(mos)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Selection) Len() int { return len(s.mos) }

// At returns the ith MO in declaration order
func (s Selection) At(i int) int { return s.mos[i] }

// MOs returns a copy of the selected MOs in declaration order
func (s Selection) MOs() []int { return append([]int(nil), s.mos...) }

func (s Selection) Contains(mo int) bool {
	_, ok := s.index[mo]
	return ok
}

// Index returns the position of mo in the declaration order
func (s Selection) Index(mo int) (int, bool) {
	i, ok := s.index[mo]
	return i, ok
}

// Max returns the largest selected MO
func (s Selection) Max() int {
	var max int
	for i, mo := range s.mos {
		if i == 0 || mo > max {
			max = mo
		}
	}
	return max
}

// ParseMOs parses a list of MO indices like "520-529" or "1,2,5" or a
// combination such as "1-3,7". Ranges are inclusive.
func ParseMOs(s string) (ret []int, err error) {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi := part, part
		if i := strings.Index(part[1:], "-"); i >= 0 {
			lo, hi = part[:i+1], part[i+2:]
		}
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("%w: bad MO %q", ErrBadConfig, lo)
		}
		b, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("%w: bad MO %q", ErrBadConfig, hi)
		}
		if b < a {
			return nil, fmt.Errorf("%w: descending range %q",
				ErrBadConfig, part)
		}
		for mo := a; mo <= b; mo++ {
			ret = append(ret, mo)
		}
	}
	return
}
