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

// Package therm models the working fluid: standard-state species
// properties, fuels, ideal-gas mixtures, and the in-cylinder air-fuel
// charge with its burned-gas chemistry.
package therm

import (
	"fmt"
	"math"
)

// nan marks property values with no tabulated data.
var nan = math.NaN()

// PhaseProps holds the standard-state properties of a species in a single
// phase. Values with no tabulated data are NaN.
type PhaseProps struct {
	Hf0 float64 // enthalpy of formation [kJ/mol]
	Gf0 float64 // Gibbs energy of formation [kJ/mol]
	S0  float64 // absolute entropy [J/mol·K]
	Cp  float64 // constant-pressure heat capacity [J/mol·K]
}

// SpeciesProps holds per-phase standard-state properties of one species.
type SpeciesProps struct {
	Name   string
	Solid  PhaseProps
	Liquid PhaseProps
	Gas    PhaseProps
}

// noData is a phase with no tabulated properties.
var noData = PhaseProps{Hf0: nan, Gf0: nan, S0: nan, Cp: nan}

// StdProps maps chemical formulas to standard-state thermodynamic
// properties for common fuels and combustion products, from the CRC
// Handbook of Chemistry and Physics, Internet Version 2005.
var StdProps = map[string]SpeciesProps{
	"C": {
		Name:   "Carbon",
		Solid:  PhaseProps{Hf0: 0.0, Gf0: nan, S0: 5.7, Cp: 8.5},
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 716.7, Gf0: 671.3, S0: 158.1, Cp: 20.8},
	},
	"CO": {
		Name:   "Carbon monoxide",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: -110.5, Gf0: -137.2, S0: 197.7, Cp: 29.1},
	},
	"CO2": {
		Name:   "Carbon dioxide",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: -393.5, Gf0: -394.4, S0: 213.8, Cp: 37.1},
	},
	"N": {
		Name:   "Nitrogen (atomic)",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 472.7, Gf0: 455.5, S0: 153.3, Cp: 20.8},
	},
	"NO": {
		Name:   "Nitric oxide",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 91.3, Gf0: 87.6, S0: 210.8, Cp: 29.9},
	},
	"NO2": {
		Name:   "Nitrogen dioxide",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 33.2, Gf0: 51.3, S0: 240.1, Cp: 37.2},
	},
	"N2": {
		Name:   "Nitrogen",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 0.0, Gf0: nan, S0: 191.6, Cp: 29.1},
	},
	"O2": {
		Name:   "Oxygen",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 0.0, Gf0: nan, S0: 205.2, Cp: 29.4},
	},
	"H2": {
		Name:   "Hydrogen",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 0.0, Gf0: nan, S0: 130.7, Cp: 28.8},
	},
	"HO": {
		Name:   "Hydroxyl",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: 39.0, Gf0: 34.2, S0: 183.7, Cp: 29.9},
	},
	"H2O": {
		Name:   "Water",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -285.8, Gf0: -237.1, S0: 70.0, Cp: 75.3},
		Gas:    PhaseProps{Hf0: -241.8, Gf0: -228.6, S0: 188.8, Cp: 33.6},
	},
	"H4N2": {
		Name:   "Hydrazine",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: 50.6, Gf0: 149.3, S0: 121.2, Cp: 98.9},
		Gas:    PhaseProps{Hf0: 95.4, Gf0: 159.4, S0: 238.5, Cp: 48.4},
	},

	// n-alkanes (CnH2n+2)
	"CH4": {
		Name:   "Methane",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: -74.6, Gf0: -50.5, S0: 186.3, Cp: 35.7},
	},
	"C2H6": {
		Name:   "Ethane",
		Solid:  noData,
		Liquid: noData,
		Gas:    PhaseProps{Hf0: -84.0, Gf0: -32.0, S0: 229.2, Cp: 52.5},
	},
	"C3H8": {
		Name:   "Propane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -120.9, Gf0: nan, S0: nan, Cp: nan},
		Gas:    PhaseProps{Hf0: -103.8, Gf0: -23.4, S0: 270.3, Cp: 73.6},
	},
	"C4H10": {
		Name:   "Butane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -147.3, Gf0: nan, S0: nan, Cp: 140.9},
		Gas:    PhaseProps{Hf0: -125.7, Gf0: nan, S0: nan, Cp: 99.7},
	},
	"C5H12": {
		Name:   "Pentane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -173.5, Gf0: nan, S0: nan, Cp: 167.2},
		Gas:    PhaseProps{Hf0: -146.9, Gf0: nan, S0: nan, Cp: nan},
	},
	"C6H14": {
		Name:   "Hexane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -198.7, Gf0: nan, S0: nan, Cp: 195.6},
		Gas:    PhaseProps{Hf0: -166.9, Gf0: nan, S0: nan, Cp: nan},
	},
	"C7H16": {
		Name:   "Heptane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -224.2, Gf0: nan, S0: nan, Cp: 224.7},
		Gas:    PhaseProps{Hf0: -187.6, Gf0: nan, S0: nan, Cp: nan},
	},
	"C8H18": {
		Name:   "Octane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -250.1, Gf0: nan, S0: nan, Cp: 254.6},
		Gas:    PhaseProps{Hf0: -208.5, Gf0: nan, S0: nan, Cp: 195.5},
	},
	"C9H20": {
		Name:   "Nonane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -274.7, Gf0: nan, S0: nan, Cp: 284.4},
		Gas:    PhaseProps{Hf0: -228.2, Gf0: nan, S0: nan, Cp: nan},
	},
	"C10H22": {
		Name:   "Decane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -300.9, Gf0: nan, S0: nan, Cp: 314.4},
		Gas:    PhaseProps{Hf0: -249.5, Gf0: nan, S0: nan, Cp: nan},
	},
	"C11H24": {
		Name:   "Undecane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -327.2, Gf0: nan, S0: nan, Cp: 344.9},
		Gas:    PhaseProps{Hf0: -270.8, Gf0: nan, S0: nan, Cp: nan},
	},
	"C12H26": {
		Name:   "Dodecane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -350.9, Gf0: nan, S0: nan, Cp: 375.8},
		Gas:    PhaseProps{Hf0: -289.4, Gf0: nan, S0: nan, Cp: nan},
	},
	"C13H28": {
		Name:   "Tridecane",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: nan, Gf0: nan, S0: nan, Cp: 406.7},
		Gas:    noData,
	},

	// 1-alcohols (CnH2n+2O)
	"CH4O": {
		Name:   "Methanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -239.2, Gf0: -166.6, S0: 126.8, Cp: 81.1},
		Gas:    PhaseProps{Hf0: -201.0, Gf0: -162.3, S0: 239.9, Cp: 44.1},
	},
	"C2H6O": {
		Name:   "Ethanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -277.6, Gf0: -174.8, S0: 160.7, Cp: 112.3},
		Gas:    PhaseProps{Hf0: -234.8, Gf0: -167.9, S0: 281.6, Cp: 65.6},
	},
	"C3H8O": {
		Name:   "1-Propanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -302.6, Gf0: nan, S0: 193.6, Cp: 143.9},
		Gas:    PhaseProps{Hf0: -255.1, Gf0: nan, S0: 322.6, Cp: 85.6},
	},
	"C4H10O": {
		Name:   "2-Butanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -342.6, Gf0: nan, S0: 214.9, Cp: 196.9},
		Gas:    PhaseProps{Hf0: -292.8, Gf0: nan, S0: 359.5, Cp: 112.7},
	},
	"C5H12O": {
		Name:   "1-Pentanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -351.6, Gf0: nan, S0: nan, Cp: 208.1},
		Gas:    PhaseProps{Hf0: -294.6, Gf0: nan, S0: nan, Cp: nan},
	},
	"C6H14O": {
		Name:   "1-Hexanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -377.5, Gf0: nan, S0: 287.4, Cp: 240.4},
		Gas:    PhaseProps{Hf0: -315.9, Gf0: nan, S0: nan, Cp: nan},
	},
	"C7H16O": {
		Name:   "1-Heptanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -403.3, Gf0: nan, S0: nan, Cp: 272.1},
		Gas:    PhaseProps{Hf0: -336.5, Gf0: nan, S0: nan, Cp: nan},
	},
	"C8H18O": {
		Name:   "1-Octanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -426.5, Gf0: nan, S0: nan, Cp: 305.2},
		Gas:    PhaseProps{Hf0: -355.6, Gf0: nan, S0: nan, Cp: nan},
	},
	"C9H20O": {
		Name:   "1-Nonanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -453.4, Gf0: nan, S0: nan, Cp: nan},
		Gas:    PhaseProps{Hf0: -376.5, Gf0: nan, S0: nan, Cp: nan},
	},
	"C10H22O": {
		Name:   "1-Decanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -478.1, Gf0: nan, S0: nan, Cp: 370.6},
		Gas:    PhaseProps{Hf0: -396.6, Gf0: nan, S0: nan, Cp: nan},
	},
	"C11H24O": {
		Name:   "1-Undecanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -504.8, Gf0: nan, S0: nan, Cp: nan},
		Gas:    noData,
	},
	"C12H26O": {
		Name:   "1-Dodecanol",
		Solid:  noData,
		Liquid: PhaseProps{Hf0: -528.5, Gf0: nan, S0: nan, Cp: 438.1},
		Gas:    PhaseProps{Hf0: -436.6, Gf0: nan, S0: nan, Cp: nan},
	},
	"C13H28O": {
		Name:   "1-Tridecanol",
		Solid:  PhaseProps{Hf0: -599.4, Gf0: nan, S0: nan, Cp: nan},
		Liquid: noData,
		Gas:    noData,
	},
}

// Props returns the standard-state properties of the species with the
// given formula.
func Props(formula string) (SpeciesProps, error) {
	p, ok := StdProps[formula]
	if !ok {
		return SpeciesProps{}, fmt.Errorf("therm: no properties for species %s", formula)
	}
	return p, nil
}

// molarCp returns the constant-pressure heat capacity [kJ/mol·K] of the
// species, preferring the gas phase and falling back to the liquid phase.
func molarCp(formula string) (float64, error) {
	p, err := Props(formula)
	if err != nil {
		return 0, err
	}
	switch {
	case !math.IsNaN(p.Gas.Cp):
		return p.Gas.Cp / 1000, nil
	case !math.IsNaN(p.Liquid.Cp):
		return p.Liquid.Cp / 1000, nil
	}
	return 0, fmt.Errorf("therm: no gas or liquid heat capacity for species %s", formula)
}

// gasHf0 returns the gas-phase enthalpy of formation [kJ/mol] of the
// species.
func gasHf0(formula string) (float64, error) {
	p, err := Props(formula)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p.Gas.Hf0) {
		return 0, fmt.Errorf("therm: no gas-phase formation enthalpy for species %s", formula)
	}
	return p.Gas.Hf0, nil
}
