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
	"math"
	"testing"
)

func TestSolveEngine(t *testing.T) {
	// A square 250 cm3 cylinder at a compression ratio of 12 determines
	// the rest of the geometry.
	e, err := SolveEngine(EngineParams{"r_v": 12, "V_du": 250e-6, "r_s": 1}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Cbrt(4 * 250e-6 / math.Pi)
	cases := []struct {
		name string
		want float64
	}{
		{"S", s},
		{"D", s},
		{"r", s / 2},
		{"V_2", 250e-6 / 11},
		{"V_1", 12 * 250e-6 / 11},
	}
	for _, c := range cases {
		have, ok := e[c.name]
		if !ok {
			t.Errorf("%s was not solved for", c.name)
			continue
		}
		if different(have, c.want, 1e-6) {
			t.Errorf("%s: have %g, want %g", c.name, have, c.want)
		}
	}
	if different(e["V_1"]/e["V_2"], 12, 1e-6) {
		t.Errorf("compression ratio: have %g, want 12", e["V_1"]/e["V_2"])
	}
}

func TestSolveEngineTotalDisplacement(t *testing.T) {
	e, err := SolveEngine(EngineParams{"V_d": 1e-3, "z": 4, "r_s": 1}, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if different(e["V_du"], 250e-6, 1e-6) {
		t.Errorf("per-cylinder displacement: have %g, want 250e-6", e["V_du"])
	}
	if _, ok := e["V_2"]; ok {
		t.Error("the clearance volume is not determined without a compression ratio")
	}
}

func TestSolveEngineInput(t *testing.T) {
	e := EngineParams{"r_v": 12, "V_du": 250e-6, "r_s": 1}
	if _, err := SolveEngine(e, 1e-9); err != nil {
		t.Fatal(err)
	}
	if len(e) != 3 {
		t.Errorf("the input map was modified: %v", e)
	}
	if _, err := SolveEngine(nil, 1e-9); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestSolveEngineInconsistent(t *testing.T) {
	_, err := SolveEngine(EngineParams{"r_v": 12, "V_1": 3e-4, "V_2": 3e-5}, 1e-3)
	if err == nil {
		t.Error("expected an error for inconsistent parameters")
	}
	// The same parameters pass with a loose enough tolerance.
	if _, err := SolveEngine(EngineParams{"r_v": 12, "V_1": 3e-4, "V_2": 3e-5}, 10); err != nil {
		t.Error(err)
	}
}
