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

// DefaultPsi is the molar ratio of N2 to O2 in standard air, consistent
// with a 79% N2, 21% O2 composition.
const DefaultPsi = 3.76

// Air is an ideal-gas model of air as a two-component O2 + ψ·N2 mixture.
type Air struct {
	Psi float64 // moles of N2 per mole of O2
}

// StandardAir returns air with the default N2:O2 ratio.
func StandardAir() *Air {
	return &Air{Psi: DefaultPsi}
}

// MoleFractions returns the mole fractions of the air components.
func (a *Air) MoleFractions() map[string]float64 {
	return map[string]float64{
		"O2": 1 / (1 + a.Psi),
		"N2": a.Psi / (1 + a.Psi),
	}
}

// Components returns the species that make up the air.
func (a *Air) Components() []string {
	return []string{"O2", "N2"}
}
