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
	"math"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// testCharge is the stoichiometrically lean octane case used throughout
// these tests: phi = 0.5 at 100 kPa and 300 K in 0.57142857 liters.
func testCharge(t *testing.T) *Charge {
	c, err := NewCharge([]string{"C8H18"}, []float64{1}, 0.5, 100, 300, 0.00057142857, 0)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFuel(t *testing.T) {
	f, err := NewFuel("C8H18")
	if err != nil {
		t.Fatal(err)
	}
	if different(f.Epsilon, 0.08, 1e-12) {
		t.Errorf("epsilon: have %g, want 0.08", f.Epsilon)
	}
	if f.Hf0 != -208.5 {
		t.Errorf("hf0: have %g, want -208.5", f.Hf0)
	}
	if f.NC != 8 || f.NH != 18 || f.NO != 0 || f.NN != 0 {
		t.Errorf("atom counts: have C=%d H=%d O=%d N=%d, want C=8 H=18 O=0 N=0",
			f.NC, f.NH, f.NO, f.NN)
	}
}

func TestProps(t *testing.T) {
	p, err := Props("CO")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Carbon monoxide" {
		t.Errorf("name: have %s, want Carbon monoxide", p.Name)
	}
	if p.Gas.Hf0 != -110.5 || p.Gas.Gf0 != -137.2 || p.Gas.S0 != 197.7 || p.Gas.Cp != 29.1 {
		t.Errorf("CO gas props: have %+v", p.Gas)
	}
	if _, err := Props("XYZ"); err == nil {
		t.Error("expected an error for an unknown species")
	}
}

func TestMixture(t *testing.T) {
	m, err := NewMixture([]string{"C8H18", "O2", "N2"}, []float64{0.13, 0.8, 1.9})
	if err != nil {
		t.Fatal(err)
	}
	if different(m.TotalMoles(), 2.83, 1e-12) {
		t.Errorf("total moles: have %g, want 2.83", m.TotalMoles())
	}
	var xSum float64
	for _, x := range m.MoleFractions() {
		xSum += x
	}
	if different(xSum, 1.0, 1e-12) {
		t.Errorf("mole fractions sum to %g, want 1", xSum)
	}
	var ySum float64
	for _, y := range m.MassFractions() {
		ySum += y
	}
	if different(ySum, 1.0, 1e-12) {
		t.Errorf("mass fractions sum to %g, want 1", ySum)
	}
}

func TestFuelMix(t *testing.T) {
	fm, err := NewFuelMix([]string{"C8H18"}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if fm.NC != 8 || fm.NH != 18 || fm.NO != 0 || fm.NN != 0 {
		t.Errorf("atom counts: have C=%g H=%g O=%g N=%g, want C=8 H=18 O=0 N=0",
			fm.NC, fm.NH, fm.NO, fm.NN)
	}
	if fm.Hf0 != -208.5 {
		t.Errorf("blend hf0: have %g, want -208.5", fm.Hf0)
	}
	if different(fm.Epsilon, 0.08, 1e-12) {
		t.Errorf("blend epsilon: have %g, want 0.08", fm.Epsilon)
	}
}

func TestIdealMixState(t *testing.T) {
	im, err := NewIdealMix([]string{"O2", "N2"}, []float64{1, 3.76}, 100, 300)
	if err != nil {
		t.Fatal(err)
	}
	wantV := 4.76 * Ru * 300 / 100
	if different(im.V, wantV, 1e-12) {
		t.Errorf("volume: have %g, want %g", im.V, wantV)
	}
	var pSum float64
	for _, p := range im.PartialPressures() {
		pSum += p
	}
	if different(pSum, 100, 1e-12) {
		t.Errorf("partial pressures sum to %g, want 100", pSum)
	}
	if cv, cp := im.MolarCv(), im.MolarCp(); different(cv, cp-Ru, 1e-12) {
		t.Errorf("cv: have %g, want cp-Ru = %g", cv, cp-Ru)
	}
	if mcv := im.MassCv(); different(mcv, im.HeatCapacityV()/im.Mass(), 1e-12) {
		t.Errorf("mass cv: have %g, want %g", mcv, im.HeatCapacityV()/im.Mass())
	}
}

func TestChargeAtomCounts(t *testing.T) {
	c := testCharge(t)
	fm := c.Fuel
	if fm.NC != 8 || fm.NH != 18 || fm.NO != 0 || fm.NN != 0 {
		t.Errorf("atom counts: have C=%g H=%g O=%g N=%g, want C=8 H=18 O=0 N=0",
			fm.NC, fm.NH, fm.NO, fm.NN)
	}
}

func TestChargeMassBalance(t *testing.T) {
	c := testCharge(t)
	in := c.Mass()
	out := c.BurntMass()
	if different(in, out, 1e-9) {
		t.Errorf("unburned mass %g does not match burned mass %g", in, out)
	}
}

func TestChargeBurntOxygen(t *testing.T) {
	c := testCharge(t)
	nO2 := c.BurntMoles()["O2"]
	if different(nO2, 0.002386311, 1e-4) {
		t.Errorf("burnt O2: have %g, want 0.002386", nO2)
	}
}

func TestChargeQTotal(t *testing.T) {
	c := testCharge(t)
	q := c.QTotal(0)
	if different(q, 0.9766, 1e-3) {
		t.Errorf("total heat release: have %g, want 0.9766", q)
	}
	// Residual gas scales the release linearly.
	if qz := c.QTotal(0.25); different(qz, 0.75*q, 1e-12) {
		t.Errorf("heat release at zeta=0.25: have %g, want %g", qz, 0.75*q)
	}
}

func TestChargeHeatIncrements(t *testing.T) {
	c := testCharge(t)
	// Heat released over the full burn matches the incremental sums.
	total := c.QBetween(0, 1, 0)
	if different(total, c.QTotal(0), 1e-9) {
		t.Errorf("full-burn increment %g does not match total release %g", total, c.QTotal(0))
	}
	split := c.QBetween(0, 0.3, 0) + c.QBetween(0.3, 1, 0)
	if different(split, total, 1e-9) {
		t.Errorf("split increments sum to %g, want %g", split, total)
	}
}

func TestChargeComposition(t *testing.T) {
	c := testCharge(t)
	// Before ignition the charge is fuel plus air.
	n0 := c.CompositionAt(0, 0)
	if different(n0["C8H18"], c.NFuel, 1e-12) {
		t.Errorf("unburned fuel: have %g, want %g", n0["C8H18"], c.NFuel)
	}
	// After a complete burn the composition is the burned-gas balance.
	n1 := c.CompositionAt(1, 0)
	for s, want := range c.BurntMoles() {
		if math.Abs(n1[s]-want) > 1e-15 {
			t.Errorf("burned %s: have %g, want %g", s, n1[s], want)
		}
	}
	if n1["C8H18"] != 0 {
		t.Errorf("fuel left after complete burn: %g", n1["C8H18"])
	}
}

func TestChargeRichBurn(t *testing.T) {
	c, err := NewCharge([]string{"C8H18"}, []float64{1}, 1.2, 100, 300, 0.00057142857, 0)
	if err != nil {
		t.Fatal(err)
	}
	n := c.BurntMoles()
	for _, s := range []string{"CO2", "H2O", "CO", "H2", "N2"} {
		if n[s] < 0 {
			t.Errorf("negative burned %s: %g", s, n[s])
		}
	}
	if n["CO"] == 0 {
		t.Error("rich burn should produce CO")
	}
	if n["O2"] != 0 {
		t.Errorf("rich burn should consume all O2, have %g", n["O2"])
	}
	if different(c.Mass(), c.BurntMass(), 1e-9) {
		t.Errorf("unburned mass %g does not match burned mass %g", c.Mass(), c.BurntMass())
	}
}

func TestChargeExternalHeat(t *testing.T) {
	if _, err := NewCharge([]string{"C8H18"}, []float64{1}, 0, 100, 300, 0.00057142857, 0); err == nil {
		t.Error("expected an error for phi = 0 without external heat")
	}
	c, err := NewCharge([]string{"C8H18"}, []float64{1}, 0, 100, 300, 0.00057142857, 500)
	if err != nil {
		t.Fatal(err)
	}
	want := 500 * c.Mass()
	if different(c.QTotal(0), want, 1e-9) {
		t.Errorf("external-only heat release: have %g, want %g", c.QTotal(0), want)
	}
}
