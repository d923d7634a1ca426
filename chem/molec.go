/*
Copyright © 2025 the OttoFTAF authors.
This file is part of OttoFTAF.

OttoFTAF is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OttoFTAF is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OttoFTAF.  If not, see <http://www.gnu.org/licenses/>.
*/

package chem

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
)

// AtomicNumbers returns the atomic numbers in Elements in increasing order.
func AtomicNumbers() []int {
	zz := make([]int, 0, len(Elements))
	for z := range Elements {
		zz = append(zz, z)
	}
	sort.Ints(zz)
	return zz
}

// Symbols returns the element symbols in Elements, ordered by atomic number.
func Symbols() []string {
	zz := AtomicNumbers()
	ss := make([]string, len(zz))
	for i, z := range zz {
		ss[i] = Elements[z].Symbol
	}
	return ss
}

// atomicNumber returns the atomic number of the element with the
// given symbol.
func atomicNumber(symbol string) (int, error) {
	for _, z := range AtomicNumbers() {
		if Elements[z].Symbol == symbol {
			return z, nil
		}
	}
	return 0, fmt.Errorf("chem: unknown element %s", symbol)
}

// IsotopesOf returns the mass numbers of the isotopes of the element with
// the given symbol, in increasing order.
func IsotopesOf(symbol string) ([]int, error) {
	z, err := atomicNumber(symbol)
	if err != nil {
		return nil, err
	}
	return IsotopesOfZ(z)
}

// IsotopesOfZ returns the mass numbers of the isotopes of the element with
// atomic number z, in increasing order.
func IsotopesOfZ(z int) ([]int, error) {
	e, ok := Elements[z]
	if !ok {
		return nil, fmt.Errorf("chem: unknown atomic number %d", z)
	}
	aa := make([]int, 0, len(e.Isotopes))
	for a := range e.Isotopes {
		aa = append(aa, a)
	}
	sort.Ints(aa)
	return aa, nil
}

// AbundanceWeightedMass returns the mean isotope mass weighted by
// terrestrial abundance. Isotopes with unknown abundance weigh nothing
// unless every abundance is unknown, in which case all isotopes weigh
// equally.
func AbundanceWeightedMass(isotopes map[int]Isotope) float64 {
	aa := make([]int, 0, len(isotopes))
	anyKnown := false
	for a, iso := range isotopes {
		aa = append(aa, a)
		if !math.IsNaN(iso.Abundance) {
			anyKnown = true
		}
	}
	sort.Ints(aa)
	var mass, wSum float64
	for _, a := range aa {
		iso := isotopes[a]
		w := iso.Abundance
		if math.IsNaN(w) {
			if anyKnown {
				w = 0
			} else {
				w = 1
			}
		}
		mass += iso.Mass * w
		wSum += w
	}
	return mass / wSum
}

// AtomicMass returns the atomic mass [u] of the element with the given
// symbol, averaged over its isotopes by terrestrial abundance.
func AtomicMass(symbol string) (float64, error) {
	z, err := atomicNumber(symbol)
	if err != nil {
		return 0, err
	}
	return AbundanceWeightedMass(Elements[z].Isotopes), nil
}

// AtomicMassZ returns the abundance-averaged atomic mass [u] of the
// element with atomic number z.
func AtomicMassZ(z int) (float64, error) {
	e, ok := Elements[z]
	if !ok {
		return 0, fmt.Errorf("chem: unknown atomic number %d", z)
	}
	return AbundanceWeightedMass(e.Isotopes), nil
}

// termRE matches one element term of an empirical formula: a capitalized
// symbol of one or two letters, optionally followed by an atom count.
var termRE = regexp.MustCompile(`[A-Z][a-z]?[0-9]*`)

// symRE extracts the symbol from a matched term.
var symRE = regexp.MustCompile(`[A-Z][a-z]?`)

// Atomize parses an empirical formula such as "C8H18" into a map from
// element symbol to atom count. Repeated symbols accumulate. Elements
// that do not appear in Elements are errors.
func Atomize(formula string) (map[string]int, error) {
	terms := termRE.FindAllString(formula, -1)
	var matched int
	for _, t := range terms {
		matched += len(t)
	}
	if matched != len(formula) {
		return nil, fmt.Errorf("chem: cannot parse formula %q", formula)
	}
	atoms := make(map[string]int)
	for _, t := range terms {
		sym := symRE.FindString(t)
		if _, err := atomicNumber(sym); err != nil {
			return nil, fmt.Errorf("chem: formula %q: %v", formula, err)
		}
		n := 1
		if digits := t[len(sym):]; digits != "" {
			var err error
			n, err = strconv.Atoi(digits)
			if err != nil {
				return nil, fmt.Errorf("chem: formula %q: %v", formula, err)
			}
		}
		atoms[sym] += n
	}
	return atoms, nil
}

// MolarMass returns the molar mass [kg kmol-1] of the given empirical
// formula.
func MolarMass(formula string) (float64, error) {
	atoms, err := Atomize(formula)
	if err != nil {
		return 0, err
	}
	var mass float64
	for _, sym := range Symbols() {
		n, ok := atoms[sym]
		if !ok {
			continue
		}
		m, err := AtomicMass(sym)
		if err != nil {
			return 0, err
		}
		mass += float64(n) * m
	}
	return mass, nil
}

// A Molecule is an empirical formula together with its parsed atom counts
// and molar mass.
type Molecule struct {
	Formula   string
	Atoms     map[string]int
	MolarMass float64 // [kg kmol-1]
}

// NewMolecule parses formula and calculates its molar mass.
func NewMolecule(formula string) (*Molecule, error) {
	atoms, err := Atomize(formula)
	if err != nil {
		return nil, err
	}
	mm, err := MolarMass(formula)
	if err != nil {
		return nil, err
	}
	return &Molecule{Formula: formula, Atoms: atoms, MolarMass: mm}, nil
}

// Mass returns the mass [kg] of n kmol of the molecule.
func (m *Molecule) Mass(n float64) float64 {
	return n * m.MolarMass
}
