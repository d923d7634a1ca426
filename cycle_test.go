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

package ottoftaf

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ctessum/unit"
)

// testCycle is a stoichiometric octane cycle in a square 250 cm3
// cylinder at a compression ratio of 12, with ignition 30 degrees
// before top dead center and a 60 degree burn.
func testCycle(t *testing.T) *Cycle {
	e, err := SolveEngine(EngineParams{"r_v": 12, "V_du": 250e-6, "r_s": 1}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	e["L"] = 3 * e["r"]
	c, err := NewCycle(CycleConfig{
		Engine: e,
		Na:     25,
		Nc:     25,
		Theta:  -math.Pi / 6,
		Delta:  math.Pi / 3,
		Fuels:  []string{"C8H18"},
		Props:  []float64{1},
		Phi:    1,
		P0:     100,
		T0:     300,
		EpsV:   1e-8,
		EpsW:   1e-8,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCycleMesh(t *testing.T) {
	c := testCycle(t)
	if len(c.Alpha) != 76 {
		t.Fatalf("mesh size: have %d, want 76", len(c.Alpha))
	}
	if c.Alpha[0] != -math.Pi {
		t.Errorf("mesh start: have %g, want -pi", c.Alpha[0])
	}
	if different(c.Alpha[25], c.Theta, 1e-12) {
		t.Errorf("ignition node: have %g, want %g", c.Alpha[25], c.Theta)
	}
	if different(c.Alpha[50], c.Theta+c.Delta, 1e-12) {
		t.Errorf("end-of-burn node: have %g, want %g", c.Alpha[50], c.Theta+c.Delta)
	}
	if different(c.Alpha[75], math.Pi, 1e-12) {
		t.Errorf("mesh end: have %g, want pi", c.Alpha[75])
	}
}

func TestCycleBurnFraction(t *testing.T) {
	c := testCycle(t)
	if c.Y[0] != 0 || c.Y[25] != 0 {
		t.Errorf("burn fraction before ignition: have %g and %g, want 0", c.Y[0], c.Y[25])
	}
	if math.Abs(c.Y[50]-1) > 1e-12 || c.Y[75] != 1 {
		t.Errorf("burn fraction after combustion: have %g and %g, want 1", c.Y[50], c.Y[75])
	}
	for j := 1; j < len(c.Y); j++ {
		if c.Y[j] < c.Y[j-1] {
			t.Fatalf("burn fraction decreases at node %d: %g < %g", j, c.Y[j], c.Y[j-1])
		}
	}
	// Halfway through the burn duration half the charge is burned.
	mid := 0.5 - 0.5*math.Cos(math.Pi*0.5)
	if y := c.Y[25+13]; math.Abs(y-mid) > 0.1 {
		t.Errorf("burn fraction near mid-burn: have %g, want about %g", y, mid)
	}
}

func TestResidualFraction(t *testing.T) {
	c := testCycle(t)
	zeta := c.ResidualFraction(101.325)
	if zeta <= 0 || zeta > 0.2 {
		t.Errorf("residual gas fraction %g outside the plausible range", zeta)
	}
	// Higher exhaust pressure traps more residual gas.
	if zHigh := c.ResidualFraction(150); zHigh <= zeta {
		t.Errorf("residual fraction did not grow with exhaust pressure: %g <= %g", zHigh, zeta)
	}
}

func TestCycleRun(t *testing.T) {
	c := testCycle(t)
	res, err := c.Run()
	if err != nil {
		t.Fatal(err)
	}
	if res.Eta <= 0 || res.Eta >= 0.7 {
		t.Errorf("thermal efficiency %g outside the plausible range", res.Eta)
	}
	if res.NetWork.Value() <= 0 {
		t.Errorf("net work %v is not positive", res.NetWork)
	}
	if err := res.NetWork.Check(unit.Joule); err != nil {
		t.Error(err)
	}
	if res.BackWorkRatio <= 0 || res.BackWorkRatio >= 1 {
		t.Errorf("back work ratio %g outside (0, 1)", res.BackWorkRatio)
	}
	if res.HeatIn.Value() <= 0 {
		t.Errorf("heat input %v is not positive", res.HeatIn)
	}
	if c.Results() != res {
		t.Error("Results does not return the last solution")
	}
}

func TestCycleState(t *testing.T) {
	c := testCycle(t)
	if _, err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if c.P[0] != 100 || c.T[0] != 300 {
		t.Errorf("initial state: have %g kPa %g K, want 100 kPa 300 K", c.P[0], c.T[0])
	}
	for j := range c.P {
		if c.P[j] <= 0 || c.T[j] <= 0 {
			t.Fatalf("nonphysical state at node %d: p = %g, T = %g", j, c.P[j], c.T[j])
		}
	}
	// The first law holds over the whole cycle.
	var sum float64
	for j := range c.Q {
		sum += c.Q[j] + c.W[j]
	}
	if du := c.U[len(c.U)-1] - c.U[0]; math.Abs(du-sum) > 1e-9 {
		t.Errorf("energy balance: dU = %g but Q+W = %g", du, sum)
	}
	// Peak pressure happens during or shortly after combustion.
	jPeak := 0
	for j := range c.P {
		if c.P[j] > c.P[jPeak] {
			jPeak = j
		}
	}
	if jPeak <= 25 || jPeak > 55 {
		t.Errorf("peak pressure at node %d, expected it near top dead center", jPeak)
	}
}

func TestCycleWriteStates(t *testing.T) {
	c := testCycle(t)
	var b bytes.Buffer
	if err := c.WriteStates(&b); err == nil {
		t.Error("expected an error writing states before solving")
	}
	if _, err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteStates(&b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 77 {
		t.Errorf("state lines: have %d, want 77", len(lines))
	}
	if !strings.HasPrefix(lines[0], "alpha_rad,") {
		t.Errorf("state header: have %q", lines[0])
	}
}

func TestCycleRunZeta(t *testing.T) {
	c := testCycle(t)
	res0, err := c.RunZeta(0)
	if err != nil {
		t.Fatal(err)
	}
	// Residual gas dilutes the charge and cuts the heat release.
	c2 := testCycle(t)
	res, err := c2.RunZeta(0.1)
	if err != nil {
		t.Fatal(err)
	}
	if res.HeatIn.Value() >= res0.HeatIn.Value() {
		t.Errorf("heat input did not drop with residual gas: %v >= %v", res.HeatIn, res0.HeatIn)
	}
}

func TestNewCycleErrors(t *testing.T) {
	e, err := SolveEngine(EngineParams{"r_v": 12, "V_du": 250e-6, "r_s": 1}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	cfg := CycleConfig{
		Engine: e, // no L
		Na:     25, Nc: 25,
		Theta: -math.Pi / 6, Delta: math.Pi / 3,
		Fuels: []string{"C8H18"}, Props: []float64{1},
		Phi: 1, P0: 100, T0: 300, EpsV: 1e-8, EpsW: 1e-8,
	}
	if _, err := NewCycle(cfg); err == nil {
		t.Error("expected an error for a missing engine parameter")
	}
	cfg.Engine = EngineParams{}
	for k, v := range e {
		cfg.Engine[k] = v
	}
	cfg.Engine["L"] = 3 * e["r"]
	cfg.Na = 0
	if _, err := NewCycle(cfg); err == nil {
		t.Error("expected an error for a zero process count")
	}
}
