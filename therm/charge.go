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
	"fmt"
	"math"

	"github.com/spatialmodel/ottoftaf/chem"
)

// burntSpecies are the combustion products tracked by the model, in the
// order used throughout this file.
var burntSpecies = []string{"CO2", "H2O", "CO", "H2", "O2", "N2"}

// shiftK is the water-gas shift equilibrium constant used for rich
// mixtures.
const shiftK = 3.5

// A Charge is the in-cylinder air-fuel mixture: one or more fuels plus
// standard air filling a volume at a known initial state, together with
// the burned-gas chemistry of its combustion.
type Charge struct {
	*IdealMix

	// Fuel is the fuel blend on its own, without the air.
	Fuel *FuelMix

	Phi  float64 // equivalence ratio
	Psi  float64 // N2:O2 molar ratio of the air
	Qext float64 // external heat addition [kJ/kg]; required when Phi is zero

	NAir  float64 // moles of air [mol]
	NFuel float64 // moles of fuel [mol]

	P0 float64 // initial pressure [kPa]
	T0 float64 // initial temperature [K]
	V0 float64 // initial volume [m3]
	U0 float64 // initial internal energy [kJ]

	props      []float64  // blend mole fractions
	fuelCv     []float64  // per-fuel cv [kJ/mol·K]
	burnt      [6]float64 // moles of each burnt species [mol]
	burntTotal float64
	burntCp    [6]float64 // per-species cp [kJ/mol·K]
	burntMM    [6]float64 // per-species molar mass [kg/mol]

	hfCO2, hfH2O, hfCO float64 // formation enthalpies [kJ/mol]
}

// NewCharge fills volume v [m3] at pressure p [kPa] and temperature
// t [K] with the given fuel blend and standard air at equivalence ratio
// phi. props gives the blend mole proportions ([1] for a single fuel).
// qExt [kJ/kg] is heat added from an external source, needed when
// phi is zero.
func NewCharge(formulas []string, props []float64, phi, p, t, v, qExt float64) (*Charge, error) {
	if phi == 0 && qExt == 0 {
		return nil, fmt.Errorf("therm: an external heat source is required when phi is zero")
	}
	fm, err := NewFuelMix(formulas, props)
	if err != nil {
		return nil, err
	}
	air := chem.StandardAir()
	psi := air.Psi
	nAir := (p * v / (Ru * t)) / (1 + phi*fm.Epsilon/(1+psi))
	nFuel := nAir * phi * fm.Epsilon / (1 + psi)

	prop := fm.Proportions()
	airX := air.MoleFractions()
	species := make([]string, 0, len(formulas)+2)
	moles := make([]float64, 0, len(formulas)+2)
	for i, formula := range formulas {
		species = append(species, formula)
		moles = append(moles, nFuel*prop[i])
	}
	species = append(species, "O2", "N2")
	moles = append(moles, airX["O2"]*nAir, airX["N2"]*nAir)

	im, err := NewIdealMix(species, moles, p, t)
	if err != nil {
		return nil, err
	}
	im.V = v

	c := &Charge{
		IdealMix: im,
		Fuel:     fm,
		Phi:      phi,
		Psi:      psi,
		Qext:     qExt,
		NAir:     nAir,
		NFuel:    nFuel,
		P0:       p,
		T0:       t,
		V0:       v,
		props:    prop,
		fuelCv:   make([]float64, len(formulas)),
		hfCO2:    StdProps["CO2"].Gas.Hf0,
		hfH2O:    StdProps["H2O"].Gas.Hf0,
		hfCO:     StdProps["CO"].Gas.Hf0,
	}
	c.U0 = InternalEnergy(im.HeatCapacityV(), t)
	for i := range formulas {
		c.fuelCv[i] = im.cps[i] - Ru
	}
	for i, s := range burntSpecies {
		cp, err := molarCp(s)
		if err != nil {
			return nil, err
		}
		c.burntCp[i] = cp
		mm, err := chem.MolarMass(s)
		if err != nil {
			return nil, err
		}
		c.burntMM[i] = mm / 1000
	}
	if err := c.burn(); err != nil {
		return nil, err
	}
	return c, nil
}

// burn calculates the burned-gas mole balance. Lean and stoichiometric
// mixtures burn to CO2, H2O, excess O2 and N2 in closed form; rich
// mixtures additionally form CO and H2, with the CO amount taken from
// the water-gas shift equilibrium quadratic.
func (c *Charge) burn() error {
	nc, nh, no, nn := c.Fuel.NC, c.Fuel.NH, c.Fuel.NO, c.Fuel.NN
	nF, nAir, psi := c.NFuel, c.NAir, c.Psi
	var nCO2, nH2O, nCO, nH2, nO2, nN2 float64
	if c.Phi <= 1 {
		nCO2 = nc * nF
		nH2O = nh * nF / 2
		nO2 = nAir/(1+psi) + no*nF/2 - nc*nF - nh*nF/4
		nN2 = nAir*psi/(1+psi) + nn*nF/2
	} else {
		k := shiftK
		aa := k - 1
		bb := 2*(nc*nF-nAir/(1+psi)) +
			k*(2*nAir/(psi+1)-(3*nc+nh/2-no)*nF) - no*nF
		cc := k * nc * nF * (2*nc*nF + nh*nF/2 - no*nF - 2*nAir/(psi+1))
		disc := bb*bb - 4*aa*cc
		if disc < 0 {
			return fmt.Errorf("therm: no real water-gas shift solution for phi = %g", c.Phi)
		}
		co := (-bb - math.Sqrt(disc)) / (2 * aa)
		if co < 0 {
			co = (-bb + math.Sqrt(disc)) / (2 * aa)
		}
		nCO2 = nc*nF - co
		nH2O = 2*(nAir/(1+psi)+no*nF/2-nc*nF) + co
		nCO = co
		// Hydrogen balance: nh·nF atoms split between H2O and H2.
		nH2 = nh*nF/2 - nH2O
		nN2 = nAir*psi/(1+psi) + nn*nF/2
	}
	c.burnt = [6]float64{nCO2, nH2O, nCO, nH2, nO2, nN2}
	c.burntTotal = nCO2 + nH2O + nCO + nH2 + nO2 + nN2
	return nil
}

// BurntMoles returns the moles of each combustion product [mol].
func (c *Charge) BurntMoles() map[string]float64 {
	n := make(map[string]float64, len(burntSpecies))
	for i, s := range burntSpecies {
		n[s] = c.burnt[i]
	}
	return n
}

// BurntTotalMoles returns the total moles of burned gas [mol].
func (c *Charge) BurntTotalMoles() float64 {
	return c.burntTotal
}

// BurntMoleFractions returns the mole fraction of each combustion
// product.
func (c *Charge) BurntMoleFractions() map[string]float64 {
	x := make(map[string]float64, len(burntSpecies))
	for i, s := range burntSpecies {
		x[s] = c.burnt[i] / c.burntTotal
	}
	return x
}

// BurntMolarMass returns the molar mass of the burned gas [kg/mol].
func (c *Charge) BurntMolarMass() float64 {
	var mm float64
	for i := range burntSpecies {
		mm += (c.burnt[i] / c.burntTotal) * c.burntMM[i]
	}
	return mm
}

// BurntMass returns the mass of the burned gas [kg]. Atom balance makes
// it equal to the unburned charge mass.
func (c *Charge) BurntMass() float64 {
	return c.burntTotal * c.BurntMolarMass()
}

// BurntMolarCp returns the mole-fraction-averaged cp of the burned gas
// [kJ/mol·K].
func (c *Charge) BurntMolarCp() float64 {
	var cp float64
	for i := range burntSpecies {
		cp += (c.burnt[i] / c.burntTotal) * c.burntCp[i]
	}
	return cp
}

// BurntMolarCv returns the mole-fraction-averaged cv of the burned gas
// [kJ/mol·K].
func (c *Charge) BurntMolarCv() float64 {
	return c.BurntMolarCp() - Ru
}

// BurntHeatCapacityP returns the extensive CP of the burned gas [kJ/K].
func (c *Charge) BurntHeatCapacityP() float64 {
	var cp float64
	for i := range burntSpecies {
		cp += c.burnt[i] * c.burntCp[i]
	}
	return cp
}

// BurntHeatCapacityV returns the extensive CV of the burned gas [kJ/K].
func (c *Charge) BurntHeatCapacityV() float64 {
	var cv float64
	for i := range burntSpecies {
		cv += c.burnt[i] * (c.burntCp[i] - Ru)
	}
	return cv
}

// QTotal returns the total heat release of the charge [kJ], reduced by
// the residual-gas fraction zeta.
func (c *Charge) QTotal(zeta float64) float64 {
	q := c.NFuel*c.Fuel.Hf0 -
		c.hfCO*c.burnt[2] - c.hfH2O*c.burnt[1] - c.hfCO2*c.burnt[0] +
		c.Qext*c.Mass()
	return q * (1 - zeta)
}

// QBetween returns the heat released [kJ] as the burned fraction
// advances from y1 to y2 with residual-gas fraction zeta.
func (c *Charge) QBetween(y1, y2, zeta float64) float64 {
	hProd := c.burnt[0]*c.hfCO2 + c.burnt[1]*c.hfH2O + c.burnt[2]*c.hfCO
	q := (zeta+(1-zeta)*y1)*hProd - (zeta+(1-zeta)*y2)*hProd +
		c.Qext*(y2-y1)*c.Mass()
	for i := range c.props {
		hf := c.Fuel.Fuels[i].Hf0
		q += (1-y1)*(1-zeta)*c.NFuel*c.props[i]*hf -
			(1-y2)*(1-zeta)*c.NFuel*c.props[i]*hf
	}
	return q
}

// compositionAt returns the instantaneous fuel moles and the moles of
// each burnt species at burned fraction y with residual-gas fraction
// zeta. The unburned air's O2 and N2 are folded into the respective
// product entries.
func (c *Charge) compositionAt(y, zeta float64) (nf float64, b [6]float64) {
	nf = (1 - y) * (1 - zeta) * c.NFuel
	air := (1 - y) * (1 - zeta) * c.NAir
	f := zeta + (1-zeta)*y
	for i := range b {
		b[i] = f * c.burnt[i]
	}
	b[4] += air / (1 + c.Psi)         // O2
	b[5] += air * c.Psi / (1 + c.Psi) // N2
	return nf, b
}

// CompositionAt returns the instantaneous moles of every species in the
// charge at burned fraction y with residual-gas fraction zeta.
func (c *Charge) CompositionAt(y, zeta float64) map[string]float64 {
	nf, b := c.compositionAt(y, zeta)
	n := make(map[string]float64, len(c.props)+len(burntSpecies))
	for i, s := range burntSpecies {
		n[s] = b[i]
	}
	for i, f := range c.Fuel.Species {
		n[f] += nf * c.props[i]
	}
	return n
}

// TotalMolesAt returns the total moles in the charge at burned fraction
// y with residual-gas fraction zeta [mol].
func (c *Charge) TotalMolesAt(y, zeta float64) float64 {
	nf, b := c.compositionAt(y, zeta)
	total := nf
	for i := range b {
		total += b[i]
	}
	return total
}

// MoleFractionsAt returns the instantaneous mole fractions of every
// species in the charge.
func (c *Charge) MoleFractionsAt(y, zeta float64) map[string]float64 {
	n := c.CompositionAt(y, zeta)
	total := c.TotalMolesAt(y, zeta)
	for s, ni := range n {
		n[s] = ni / total
	}
	return n
}

// MolarCvAt returns the mole-fraction-averaged cv of the charge at
// burned fraction y [kJ/mol·K].
func (c *Charge) MolarCvAt(y, zeta float64) float64 {
	nf, b := c.compositionAt(y, zeta)
	total := nf
	for i := range b {
		total += b[i]
	}
	var cv float64
	for i := range b {
		cv += (c.burntCp[i] - Ru) * b[i] / total
	}
	for i := range c.props {
		cv += c.fuelCv[i] * nf * c.props[i] / total
	}
	return cv
}

// HeatCapacityVAt returns the extensive CV of the charge at burned
// fraction y [kJ/K].
func (c *Charge) HeatCapacityVAt(y, zeta float64) float64 {
	nf, b := c.compositionAt(y, zeta)
	var cv float64
	for i := range b {
		cv += (c.burntCp[i] - Ru) * b[i]
	}
	for i := range c.props {
		cv += c.fuelCv[i] * nf * c.props[i]
	}
	return cv
}
