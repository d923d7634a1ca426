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

	"github.com/ctessum/unit"
)

// A CrankRod holds the piston, crank, and connecting-rod geometry of one
// cylinder and converts crank angle to piston position and cylinder
// volume. The kinematics are the simplified crank-rod relations with the
// wrist pin on the cylinder axis.
type CrankRod struct {
	D    float64 // cylinder bore [m]
	L    float64 // connecting rod length [m]
	R    float64 // crank radius [m]
	Vmin float64 // clearance volume at top dead center [m3]
}

// X returns the piston position [m] measured from top dead center at
// crank angle alpha [rad].
func (c *CrankRod) X(alpha float64) float64 {
	sin := math.Sin(alpha) * c.R / c.L
	return c.R*(1-math.Cos(alpha)) + c.L*(1-math.Sqrt(1-sin*sin))
}

// V returns the total cylinder volume [m3] at crank angle alpha [rad].
func (c *CrankRod) V(alpha float64) float64 {
	return c.X(alpha)*math.Pi*c.D*c.D/4 + c.Vmin
}

// DisplacedVolume returns the volume swept by the piston over one
// stroke [m3].
func (c *CrankRod) DisplacedVolume() float64 {
	return c.R * math.Pi * c.D * c.D / 2
}

// CompressionRatio returns the ratio of the largest to the smallest
// cylinder volume.
func (c *CrankRod) CompressionRatio() float64 {
	return 1 + c.DisplacedVolume()/c.Vmin
}

// DisplacedVolumeUnits returns the displaced volume as a dimensioned
// quantity.
func (c *CrankRod) DisplacedVolumeUnits() *unit.Unit {
	return unit.New(c.DisplacedVolume(), unit.Meter3)
}
