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

	"github.com/ctessum/unit"
)

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

// testCrank is a square engine (bore equals stroke) displacing 250 cm3
// per cylinder at a compression ratio of 12.
func testCrank() *CrankRod {
	s := math.Cbrt(4 * 250e-6 / math.Pi)
	return &CrankRod{
		D:    s,
		L:    1.5 * s,
		R:    s / 2,
		Vmin: 250e-6 / 11,
	}
}

func TestCrankRodVolume(t *testing.T) {
	c := testCrank()
	if v := c.V(0); different(v, c.Vmin, 1e-12) {
		t.Errorf("volume at top dead center: have %g, want %g", v, c.Vmin)
	}
	vdu := c.DisplacedVolume()
	if different(vdu, 250e-6, 1e-12) {
		t.Errorf("displaced volume: have %g, want 250e-6", vdu)
	}
	if v := c.V(-math.Pi); different(v, c.Vmin+vdu, 1e-12) {
		t.Errorf("volume at bottom dead center: have %g, want %g", v, c.Vmin+vdu)
	}
	// The volume profile is symmetric about top dead center.
	if v1, v2 := c.V(-1), c.V(1); different(v1, v2, 1e-12) {
		t.Errorf("volume is not symmetric: %g != %g", v1, v2)
	}
}

func TestCrankRodCompressionRatio(t *testing.T) {
	c := testCrank()
	if rv := c.CompressionRatio(); different(rv, 12, 1e-12) {
		t.Errorf("compression ratio: have %g, want 12", rv)
	}
}

func TestCrankRodPosition(t *testing.T) {
	c := testCrank()
	if x := c.X(0); x != 0 {
		t.Errorf("position at top dead center: have %g, want 0", x)
	}
	if x := c.X(math.Pi); different(x, 2*c.R, 1e-12) {
		t.Errorf("position at bottom dead center: have %g, want the stroke %g", x, 2*c.R)
	}
}

func TestDisplacedVolumeUnits(t *testing.T) {
	c := testCrank()
	u := c.DisplacedVolumeUnits()
	if err := u.Check(unit.Meter3); err != nil {
		t.Error(err)
	}
	if different(u.Value(), c.DisplacedVolume(), 1e-12) {
		t.Errorf("dimensioned displaced volume: have %g, want %g", u.Value(), c.DisplacedVolume())
	}
}
