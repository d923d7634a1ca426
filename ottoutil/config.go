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
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/spatialmodel/ottoftaf"
)

// A Case specifies one cycle solution in the form read from a TOML case
// file. Angles are given in degrees and converted when the cycle is
// built.
type Case struct {
	// Engine holds a possibly partial engine geometry specification;
	// see ottoftaf.EngineParams for the parameter names.
	Engine map[string]float64

	// RodCrankRatio is the connecting rod length over the crank
	// radius, used to fill in L when Engine omits it.
	RodCrankRatio float64

	// EngineEps is the consistency tolerance for completing the
	// engine geometry. The default is 1e-9.
	EngineEps float64

	Na int // processes over each of compression and expansion; default 25
	Nc int // processes over combustion; default 25

	ThetaDeg float64 // ignition angle [degrees after top dead center]
	DeltaDeg float64 // combustion duration [degrees]

	Fuels []string  // fuel formulas
	Props []float64 // blend mole proportions

	Phi float64 // fuel-air equivalence ratio
	P0  float64 // intake pressure [kPa]
	T0  float64 // intake temperature [K]

	EpsV float64 // volume tolerance [m3]; default 1e-8
	EpsW float64 // work convergence tolerance [kJ]; default 1e-8

	QExt float64 // external heat addition [kJ/kg]
}

// ReadCase reads a case specification from the TOML file at filename.
func ReadCase(filename string) (*Case, error) {
	c := new(Case)
	if _, err := toml.DecodeFile(filename, c); err != nil {
		return nil, fmt.Errorf("ottoutil: problem reading case file %s: %v", filename, err)
	}
	return c, nil
}

// SolveEngine completes the case's engine geometry, filling in the
// connecting rod length from RodCrankRatio when it is not given
// directly.
func (c *Case) SolveEngine() (ottoftaf.EngineParams, error) {
	eps := c.EngineEps
	if eps == 0 {
		eps = 1e-9
	}
	e, err := ottoftaf.SolveEngine(ottoftaf.EngineParams(c.Engine), eps)
	if err != nil {
		return nil, err
	}
	if _, ok := e["L"]; !ok && c.RodCrankRatio != 0 {
		r, ok := e["r"]
		if !ok {
			return nil, fmt.Errorf("ottoutil: the crank radius could not be determined, so RodCrankRatio cannot set L")
		}
		e["L"] = c.RodCrankRatio * r
	}
	return e, nil
}

// Cycle builds the cycle the case describes.
func (c *Case) Cycle() (*ottoftaf.Cycle, error) {
	e, err := c.SolveEngine()
	if err != nil {
		return nil, err
	}
	cfg := ottoftaf.CycleConfig{
		Engine: e,
		Na:     c.Na,
		Nc:     c.Nc,
		Theta:  c.ThetaDeg * math.Pi / 180,
		Delta:  c.DeltaDeg * math.Pi / 180,
		Fuels:  c.Fuels,
		Props:  c.Props,
		Phi:    c.Phi,
		P0:     c.P0,
		T0:     c.T0,
		EpsV:   c.EpsV,
		EpsW:   c.EpsW,
		QExt:   c.QExt,
	}
	if cfg.Na == 0 {
		cfg.Na = 25
	}
	if cfg.Nc == 0 {
		cfg.Nc = 25
	}
	if cfg.EpsV == 0 {
		cfg.EpsV = 1e-8
	}
	if cfg.EpsW == 0 {
		cfg.EpsW = 1e-8
	}
	return ottoftaf.NewCycle(cfg)
}
