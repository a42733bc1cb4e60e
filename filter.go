package main

import "strings"

// ElementRule selects the orbitals of one element that contribute to
// the summary. If Atoms is empty every atom of the element counts,
// otherwise only the listed atoms do and each is also tracked on its
// own.
type ElementRule struct {
	Symbol   string
	Orbitals []string
	Atoms    []int
}

// Matches reports whether the orbital of atom on this element passes
// the rule. Orbitals are matched by substring, so "d" accepts "dxy".
func (e ElementRule) Matches(atom int, orbital string) bool {
	if !e.hasAtom(atom) {
		return false
	}
	for _, o := range e.Orbitals {
		if strings.Contains(orbital, o) {
			return true
		}
	}
	return false
}

func (e ElementRule) hasAtom(atom int) bool {
	if len(e.Atoms) == 0 {
		return true
	}
	for _, a := range e.Atoms {
		if a == atom {
			return true
		}
	}
	return false
}

// Filter is the list of element rules, in declaration order
type Filter []ElementRule

// Rule returns the rule for symbol
func (f Filter) Rule(symbol string) (ElementRule, bool) {
	for _, e := range f {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return ElementRule{}, false
}

// Symbols returns the element symbols of f in order
func (f Filter) Symbols() []string {
	ret := make([]string, len(f))
	for i, e := range f {
		ret[i] = e.Symbol
	}
	return ret
}

// Tracked returns the explicitly listed atoms of f, in order and
// without duplicates, along with the element each belongs to
func (f Filter) Tracked() (atoms []int, elements map[int]string) {
	elements = make(map[int]string)
	for _, e := range f {
		for _, a := range e.Atoms {
			if _, ok := elements[a]; ok {
				continue
			}
			elements[a] = e.Symbol
			atoms = append(atoms, a)
		}
	}
	return
}
