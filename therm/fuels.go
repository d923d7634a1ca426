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

package therm

import (
	"github.com/spatialmodel/ottoftaf/chem"
)

// A Fuel is a molecule modeled as an ideal gas with constant specific
// heat, together with the quantities combustion calculations need.
type Fuel struct {
	*chem.Molecule
	Hf0 float64 // gas-phase enthalpy of formation [kJ/mol]

	// Epsilon is the inverse of the stoichiometric O2 requirement per
	// mole of fuel, 1/(nC + nH/4 - nO/2).
	Epsilon float64

	NC, NH, NO, NN int // C, H, O and N atoms per molecule
}

// NewFuel builds a Fuel from an empirical formula such as "C8H18".
func NewFuel(formula string) (*Fuel, error) {
	mol, err := chem.NewMolecule(formula)
	if err != nil {
		return nil, err
	}
	hf0, err := gasHf0(formula)
	if err != nil {
		return nil, err
	}
	f := &Fuel{
		Molecule: mol,
		Hf0:      hf0,
		NC:       mol.Atoms["C"],
		NH:       mol.Atoms["H"],
		NO:       mol.Atoms["O"],
		NN:       mol.Atoms["N"],
	}
	f.Epsilon = 1 / (float64(f.NC) + float64(f.NH)/4 - float64(f.NO)/2)
	return f, nil
}
