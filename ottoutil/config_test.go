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

package ottoutil

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestReadCase(t *testing.T) {
	c, err := ReadCase("testdata/nominal.toml")
	if err != nil {
		t.Fatal(err)
	}
	if c.Phi != 1 || c.P0 != 100 || c.T0 != 300 {
		t.Errorf("case state: have phi=%g p0=%g t0=%g, want 1, 100, 300", c.Phi, c.P0, c.T0)
	}
	if len(c.Fuels) != 1 || c.Fuels[0] != "C8H18" {
		t.Errorf("fuels: have %v, want [C8H18]", c.Fuels)
	}
	if c.Engine["r_v"] != 12 || different(c.Engine["V_du"], 250e-6, 1e-12) {
		t.Errorf("engine parameters: have %v", c.Engine)
	}
	if _, err := ReadCase("testdata/doesnotexist.toml"); err == nil {
		t.Error("expected an error for a missing case file")
	}
}

func TestCaseSolveEngine(t *testing.T) {
	c, err := ReadCase("testdata/nominal.toml")
	if err != nil {
		t.Fatal(err)
	}
	e, err := c.SolveEngine()
	if err != nil {
		t.Fatal(err)
	}
	if different(e["V_1"]/e["V_2"], 12, 1e-6) {
		t.Errorf("compression ratio: have %g, want 12", e["V_1"]/e["V_2"])
	}
	// The rod length comes from the rod-crank ratio.
	if different(e["L"], 3*e["r"], 1e-12) {
		t.Errorf("rod length: have %g, want %g", e["L"], 3*e["r"])
	}
}

func TestCaseCycle(t *testing.T) {
	c, err := ReadCase("testdata/nominal.toml")
	if err != nil {
		t.Fatal(err)
	}
	cyc, err := c.Cycle()
	if err != nil {
		t.Fatal(err)
	}
	if cyc.Na != 25 || cyc.Nc != 25 {
		t.Errorf("default process counts: have Na=%d Nc=%d, want 25 and 25", cyc.Na, cyc.Nc)
	}
	if different(cyc.Theta, -math.Pi/6, 1e-12) {
		t.Errorf("ignition angle: have %g rad, want %g", cyc.Theta, -math.Pi/6)
	}
	if different(cyc.Delta, math.Pi/3, 1e-12) {
		t.Errorf("combustion duration: have %g rad, want %g", cyc.Delta, math.Pi/3)
	}
	res, err := cyc.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Eta <= 0 || res.Eta >= 0.7 {
		t.Errorf("thermal efficiency %g outside the plausible range", res.Eta)
	}
}

func TestSweepRange(t *testing.T) {
	phis := SweepRange(0.6, 1.2, 7)
	if len(phis) != 7 {
		t.Fatalf("sweep length: have %d, want 7", len(phis))
	}
	if phis[0] != 0.6 || different(phis[6], 1.2, 1e-12) {
		t.Errorf("sweep endpoints: have %g and %g, want 0.6 and 1.2", phis[0], phis[6])
	}
	if different(phis[3], 0.9, 1e-12) {
		t.Errorf("sweep midpoint: have %g, want 0.9", phis[3])
	}
}

func TestSweep(t *testing.T) {
	c, err := ReadCase("testdata/nominal.toml")
	if err != nil {
		t.Fatal(err)
	}
	pts, err := Sweep(c, []float64{0.8, 1.0})
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 {
		t.Fatalf("sweep points: have %d, want 2", len(pts))
	}
	for _, p := range pts {
		if p.Eta <= 0 || p.Eta >= 0.7 {
			t.Errorf("efficiency %g at phi = %g outside the plausible range", p.Eta, p.Phi)
		}
		if p.NetWork <= 0 {
			t.Errorf("net work %g at phi = %g is not positive", p.NetWork, p.Phi)
		}
	}

	s := Summarize(pts)
	if s.EtaMean < s.EtaMin || s.EtaMean > s.EtaMax {
		t.Errorf("mean efficiency %g outside [%g, %g]", s.EtaMean, s.EtaMin, s.EtaMax)
	}

	var b bytes.Buffer
	if err := WriteCSV(&b, pts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines: have %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "phi,eta,") {
		t.Errorf("csv header: have %q", lines[0])
	}
}
