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

	"github.com/gonum/floats"
	"github.com/spatialmodel/ottoftaf/chem"
)

// Ru is the universal gas constant [kJ/mol·K].
const Ru = 8.3144598e-3

// A Mixture is a set of chemical species with the number of moles of
// each. Amounts are in mol, masses in kg.
type Mixture struct {
	Species []string
	Moles   []float64 // [mol]

	mm []float64 // per-species molar mass [kg/mol]
}

// NewMixture builds a mixture from parallel species and mole slices.
func NewMixture(species []string, n []float64) (*Mixture, error) {
	if len(species) != len(n) {
		return nil, fmt.Errorf("therm: %d species but %d mole amounts", len(species), len(n))
	}
	m := &Mixture{
		Species: species,
		Moles:   n,
		mm:      make([]float64, len(species)),
	}
	for i, s := range species {
		mm, err := chem.MolarMass(s)
		if err != nil {
			return nil, err
		}
		m.mm[i] = mm / 1000 // kg/kmol to kg/mol
	}
	return m, nil
}

// TotalMoles returns the total amount of substance in the mixture [mol].
func (m *Mixture) TotalMoles() float64 {
	return floats.Sum(m.Moles)
}

// MoleFractions returns the mole fraction of each species.
func (m *Mixture) MoleFractions() map[string]float64 {
	total := m.TotalMoles()
	x := make(map[string]float64, len(m.Species))
	for i, s := range m.Species {
		x[s] = m.Moles[i] / total
	}
	return x
}

// MolarMasses returns the molar mass of each species [kg/mol].
func (m *Mixture) MolarMasses() map[string]float64 {
	mm := make(map[string]float64, len(m.Species))
	for i, s := range m.Species {
		mm[s] = m.mm[i]
	}
	return mm
}

// MolarMass returns the mole-fraction-averaged molar mass of the
// mixture [kg/mol].
func (m *Mixture) MolarMass() float64 {
	total := m.TotalMoles()
	var mm float64
	for i := range m.Species {
		mm += m.mm[i] * m.Moles[i] / total
	}
	return mm
}

// Mass returns the total mass of the mixture [kg].
func (m *Mixture) Mass() float64 {
	return m.TotalMoles() * m.MolarMass()
}

// MassFractions returns the mass fraction of each species.
func (m *Mixture) MassFractions() map[string]float64 {
	total := m.TotalMoles()
	mixMM := m.MolarMass()
	y := make(map[string]float64, len(m.Species))
	for i, s := range m.Species {
		y[s] = (m.Moles[i] / total) * m.mm[i] / mixMM
	}
	return y
}

// MassOf returns the partial mass of one species in the mixture [kg].
func (m *Mixture) MassOf(species string) (float64, error) {
	for i, s := range m.Species {
		if s == species {
			return m.Moles[i] * m.mm[i], nil
		}
	}
	return 0, fmt.Errorf("therm: species %s is not in the mixture", species)
}

// A FuelMix is a mixture of one or more fuels.
type FuelMix struct {
	*Mixture
	Fuels []*Fuel

	// Hf0 is the mole-fraction-weighted enthalpy of formation of the
	// blend [kJ/mol].
	Hf0 float64

	// NC, NH, NO and NN are the summed C, H, O and N atom counts over
	// the blend components.
	NC, NH, NO, NN float64

	// Epsilon is the inverse of the stoichiometric O2 requirement of
	// the blend, 1/(NC + NH/4 - NO/2).
	Epsilon float64
}

// NewFuelMix builds a fuel blend from parallel formula and mole slices.
func NewFuelMix(formulas []string, n []float64) (*FuelMix, error) {
	mix, err := NewMixture(formulas, n)
	if err != nil {
		return nil, err
	}
	fm := &FuelMix{
		Mixture: mix,
		Fuels:   make([]*Fuel, len(formulas)),
	}
	x := mix.MoleFractions()
	for i, formula := range formulas {
		f, err := NewFuel(formula)
		if err != nil {
			return nil, err
		}
		fm.Fuels[i] = f
		fm.Hf0 += x[formula] * f.Hf0
		fm.NC += float64(f.NC)
		fm.NH += float64(f.NH)
		fm.NO += float64(f.NO)
		fm.NN += float64(f.NN)
	}
	fm.Epsilon = 1 / (fm.NC + fm.NH/4 - fm.NO/2)
	return fm, nil
}

// Proportions returns the mole fraction of each blend component, in the
// order the components were given.
func (fm *FuelMix) Proportions() []float64 {
	total := fm.TotalMoles()
	p := make([]float64, len(fm.Moles))
	for i, n := range fm.Moles {
		p[i] = n / total
	}
	return p
}

// An IdealMix is a mixture at a known thermodynamic state, treated as an
// ideal gas with constant specific heats.
type IdealMix struct {
	*Mixture
	P float64 // pressure [kPa]
	T float64 // temperature [K]
	V float64 // volume [m3]

	cps []float64 // per-species cp [kJ/mol·K]
}

// NewIdealMix builds an ideal-gas mixture at pressure p [kPa] and
// temperature t [K]; the volume follows from the equation of state.
func NewIdealMix(species []string, n []float64, p, t float64) (*IdealMix, error) {
	mix, err := NewMixture(species, n)
	if err != nil {
		return nil, err
	}
	im := &IdealMix{
		Mixture: mix,
		P:       p,
		T:       t,
		V:       mix.TotalMoles() * Ru * t / p,
		cps:     make([]float64, len(species)),
	}
	for i, s := range species {
		cp, err := molarCp(s)
		if err != nil {
			return nil, err
		}
		im.cps[i] = cp
	}
	return im, nil
}

// GasConstant returns the specific gas constant of the mixture [kJ/kg·K].
func (im *IdealMix) GasConstant() float64 {
	return Ru / im.MolarMass()
}

// PartialPressures applies Dalton's law, returning each species'
// partial pressure [kPa].
func (im *IdealMix) PartialPressures() map[string]float64 {
	x := im.MoleFractions()
	p := make(map[string]float64, len(x))
	for s, xi := range x {
		p[s] = xi * im.P
	}
	return p
}

// PartialVolumes applies Amagat's law, returning each species' partial
// volume [m3].
func (im *IdealMix) PartialVolumes() map[string]float64 {
	x := im.MoleFractions()
	v := make(map[string]float64, len(x))
	for s, xi := range x {
		v[s] = xi * im.V
	}
	return v
}

// MolarCps returns the constant-pressure specific heat of each species
// [kJ/mol·K].
func (im *IdealMix) MolarCps() map[string]float64 {
	cp := make(map[string]float64, len(im.Species))
	for i, s := range im.Species {
		cp[s] = im.cps[i]
	}
	return cp
}

// MolarCp returns the mole-fraction-averaged constant-pressure specific
// heat of the mixture [kJ/mol·K].
func (im *IdealMix) MolarCp() float64 {
	total := im.TotalMoles()
	var cp float64
	for i := range im.Species {
		cp += im.cps[i] * im.Moles[i] / total
	}
	return cp
}

// MolarCvs returns the constant-volume specific heat of each species
// [kJ/mol·K], cv = cp - Ru.
func (im *IdealMix) MolarCvs() map[string]float64 {
	cv := make(map[string]float64, len(im.Species))
	for i, s := range im.Species {
		cv[s] = im.cps[i] - Ru
	}
	return cv
}

// MolarCv returns the mole-fraction-averaged constant-volume specific
// heat of the mixture [kJ/mol·K].
func (im *IdealMix) MolarCv() float64 {
	return im.MolarCp() - Ru
}

// HeatCapacityP returns the extensive constant-pressure heat capacity
// CP of the mixture [kJ/K].
func (im *IdealMix) HeatCapacityP() float64 {
	var cp float64
	for i := range im.Species {
		cp += im.cps[i] * im.Moles[i]
	}
	return cp
}

// HeatCapacityV returns the extensive constant-volume heat capacity CV
// of the mixture [kJ/K].
func (im *IdealMix) HeatCapacityV() float64 {
	var cv float64
	for i := range im.Species {
		cv += (im.cps[i] - Ru) * im.Moles[i]
	}
	return cv
}

// MassCp returns the constant-pressure specific heat per unit mass
// [kJ/kg·K].
func (im *IdealMix) MassCp() float64 {
	return im.HeatCapacityP() / im.Mass()
}

// MassCv returns the constant-volume specific heat per unit mass
// [kJ/kg·K].
func (im *IdealMix) MassCv() float64 {
	return im.HeatCapacityV() / im.Mass()
}

// InternalEnergy returns U [kJ] from the extensive heat capacity cv
// [kJ/K] and temperature t [K].
func InternalEnergy(cv, t float64) float64 {
	return cv * t
}

// Temperature returns T [K] from the extensive heat capacity cv [kJ/K]
// and internal energy u [kJ].
func Temperature(cv, u float64) float64 {
	return u / cv
}

// Pressure solves the ideal-gas equation of state for pressure [kPa].
func Pressure(n, v, t float64) float64 {
	return n * Ru * t / v
}

// TemperatureAt solves the ideal-gas equation of state for
// temperature [K].
func TemperatureAt(n, v, p float64) float64 {
	return p * v / (n * Ru)
}

// Volume solves the ideal-gas equation of state for volume [m3].
func Volume(n, t, p float64) float64 {
	return n * Ru * t / p
}
