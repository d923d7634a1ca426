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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/ottoftaf/therm"
)

// maxPolytropicIter caps the fixed-point iteration on the work of a
// single polytropic step.
const maxPolytropicIter = 64

// A CycleConfig specifies one finite-time heat addition cycle solution.
type CycleConfig struct {
	// Engine holds the engine geometry. It must contain at least
	// D, L, r, V_1, V_2, and r_v; use SolveEngine to complete a
	// partial specification.
	Engine EngineParams

	Na int // processes over each of compression and expansion
	Nc int // processes over combustion

	Theta float64 // ignition angle [rad]
	Delta float64 // combustion duration [rad]

	Fuels []string  // fuel formulas, e.g. ["C8H18"]
	Props []float64 // blend mole proportions

	Phi float64 // fuel-air equivalence ratio
	P0  float64 // intake pressure [kPa]
	T0  float64 // intake temperature [K]

	EpsV float64 // volume tolerance separating isochoric steps [m3]
	EpsW float64 // work convergence tolerance [kJ]

	QExt float64 // external heat addition [kJ/kg]; required when Phi is zero
}

// A Cycle is an air-fuel Otto cycle with finite-time heat addition,
// discretized over crank angle. Create one with NewCycle and solve it
// with Run.
type Cycle struct {
	CycleConfig

	Crank  *CrankRod
	Charge *therm.Charge

	// Crank-angle mesh and the state at each mesh point. Alpha, Y,
	// Vol, U, T, P, and Cv have 2Na+Nc+1 entries; Q and W hold the
	// heat and work of each of the 2Na+Nc processes between them.
	Alpha []float64 // crank angle [rad]
	Y     []float64 // burned mass fraction
	Vol   []float64 // cylinder volume [m3]
	U     []float64 // internal energy [kJ]
	T     []float64 // temperature [K]
	P     []float64 // pressure [kPa]
	Cv    []float64 // extensive heat capacity [kJ/K]
	Q     []float64 // heat added over each process [kJ]
	W     []float64 // work done on the gas over each process [kJ]

	res *Results
}

// Results holds the aggregate outcome of a cycle solution. Work and
// heat terms are magnitudes.
type Results struct {
	Eta           float64 // thermal efficiency
	BackWorkRatio float64 // work in over work out
	Zeta          float64 // residual gas fraction

	NetWork *unit.Unit // work out minus work in
	WorkIn  *unit.Unit
	WorkOut *unit.Unit
	HeatIn  *unit.Unit
	HeatOut *unit.Unit
}

// NewCycle builds the crank-angle mesh, the burn fraction profile, and
// the in-cylinder charge for the given configuration.
func NewCycle(cfg CycleConfig) (*Cycle, error) {
	if cfg.Na < 1 || cfg.Nc < 1 {
		return nil, fmt.Errorf("ottoftaf: process counts must be positive, have Na=%d Nc=%d", cfg.Na, cfg.Nc)
	}
	if cfg.Delta <= 0 {
		return nil, fmt.Errorf("ottoftaf: combustion duration must be positive, have %g", cfg.Delta)
	}
	for _, name := range []string{"D", "L", "r", "V_1", "V_2", "r_v"} {
		if _, ok := cfg.Engine[name]; !ok {
			return nil, fmt.Errorf("ottoftaf: engine parameter %s is missing", name)
		}
	}

	c := &Cycle{
		CycleConfig: cfg,
		Crank: &CrankRod{
			D:    cfg.Engine["D"],
			L:    cfg.Engine["L"],
			R:    cfg.Engine["r"],
			Vmin: cfg.Engine["V_2"],
		},
	}

	charge, err := therm.NewCharge(cfg.Fuels, cfg.Props, cfg.Phi,
		cfg.P0, cfg.T0, cfg.Engine["V_1"], cfg.QExt)
	if err != nil {
		return nil, err
	}
	c.Charge = charge

	na, nc := cfg.Na, cfg.Nc
	theta, delta := cfg.Theta, cfg.Delta
	n := 2*na + nc + 1
	c.Alpha = make([]float64, n)
	c.Y = make([]float64, n)
	c.Vol = make([]float64, n)
	for j := 0; j < n; j++ {
		switch {
		case j < na:
			c.Alpha[j] = -math.Pi + float64(j)*(theta+math.Pi)/float64(na)
		case j <= na+nc:
			c.Alpha[j] = theta + float64(j-na)*delta/float64(nc)
		default:
			c.Alpha[j] = theta + delta + float64(j-na-nc)*(math.Pi-theta-delta)/float64(na)
		}
		switch a := c.Alpha[j]; {
		case a < theta:
			c.Y[j] = 0
		case a <= theta+delta:
			c.Y[j] = 0.5 - 0.5*math.Cos(math.Pi*(a-theta)/delta)
		default:
			c.Y[j] = 1
		}
		c.Vol[j] = c.Crank.V(c.Alpha[j])
	}

	c.U = make([]float64, n)
	c.T = make([]float64, n)
	c.P = make([]float64, n)
	c.Cv = make([]float64, n)
	c.Q = make([]float64, n-1)
	c.W = make([]float64, n-1)
	return c, nil
}

// ResidualFraction estimates the residual gas fraction left in the
// cylinder after exhaust at the given exhaust pressure p [kPa], from a
// regression on the compression ratio.
func (c *Cycle) ResidualFraction(p float64) float64 {
	rv := c.Engine["r_v"]
	gr := (5.25 - 0.5*rv) * math.Exp(8.5-rv)
	ret := 17.80689929 +
		6.42331483*gr -
		(0.21709256+0.09426031*gr)*p +
		(1.02837062+0.44882466*gr)*1e-3*p*p
	return ret / 100
}

// prim fills in the mesh quantities that depend only on the burn
// profile: the heat capacity at each mesh point and the heat released
// over each process.
func (c *Cycle) prim(zeta float64) {
	c.T[0] = c.Charge.T0
	c.P[0] = c.Charge.P0
	c.U[0] = c.Charge.U0
	for j := range c.Cv {
		c.Cv[j] = c.Charge.HeatCapacityVAt(c.Y[j], zeta)
	}
	for j := range c.Q {
		c.Q[j] = c.Charge.QBetween(c.Y[j], c.Y[j+1], zeta)
	}
}

// work returns the work [kJ] done on the gas taking it from v0 to v1
// [m3] along a polytropic path with exponent n0 starting at pressure
// p [kPa].
func work(p, v0, v1, n0 float64) float64 {
	return (p / (1 - n0)) * (v0 - math.Pow(v0, n0)/math.Pow(v1, n0-1))
}

// march advances the state around the whole cycle. Steps whose volume
// change is below EpsV are treated as isochoric heat addition;
// everything else is a polytropic step whose exponent and work are
// found by fixed-point iteration.
func (c *Cycle) march(zeta float64) error {
	c.prim(zeta)
	ru := therm.Ru
	for j := range c.Q {
		v0, v1 := c.Vol[j], c.Vol[j+1]
		if math.Abs(v1-v0) < c.EpsV {
			c.U[j+1] = c.U[j] + c.Q[j]
			c.T[j+1] = c.T[j] + c.Q[j]/c.Cv[j]
			c.P[j+1] = c.Charge.TotalMolesAt(c.Y[j+1], zeta) * ru * c.T[j+1] / v1
			c.W[j] = 0
			continue
		}
		n0 := 1 + ru/c.Charge.MolarCvAt(c.Y[j], zeta)
		w := work(c.P[j], v0, v1, n0)
		converged := false
		for k := 0; k < maxPolytropicIter; k++ {
			c.U[j+1] = c.U[j] + c.Q[j] + w
			c.T[j+1] = therm.Temperature(c.Cv[j+1], c.U[j+1])
			c.P[j+1] = c.Charge.TotalMolesAt(c.Y[j+1], zeta) * ru * c.T[j+1] / v1
			nk := math.Log(c.P[j+1]/c.P[j]) / math.Log(v0/v1)
			wNext := work(c.P[j], v0, v1, nk)
			converged = math.Abs(wNext-w) <= c.EpsW
			w = wNext
			if converged {
				break
			}
		}
		if !converged {
			return fmt.Errorf("ottoftaf: polytropic work iteration did not converge within %d iterations at step %d", maxPolytropicIter, j)
		}
		c.U[j+1] = c.U[j] + c.Q[j] + w
		c.T[j+1] = therm.Temperature(c.Cv[j+1], c.U[j+1])
		c.P[j+1] = c.Charge.TotalMolesAt(c.Y[j+1], zeta) * ru * c.T[j+1] / v1
		c.W[j] = w
	}
	return nil
}

// RunZeta solves the cycle with the given residual gas fraction.
func (c *Cycle) RunZeta(zeta float64) (*Results, error) {
	if err := c.march(zeta); err != nil {
		return nil, err
	}
	var wIn, wOut, qIn, qOut float64
	for j := range c.W {
		if c.W[j] >= 0 {
			wIn += c.W[j]
		} else {
			wOut += -c.W[j]
		}
		if c.Q[j] >= 0 {
			qIn += c.Q[j]
		} else {
			qOut += -c.Q[j]
		}
	}
	if qIn == 0 {
		return nil, fmt.Errorf("ottoftaf: the cycle released no heat")
	}
	kJ := func(v float64) *unit.Unit { return unit.New(v*1000, unit.Joule) }
	c.res = &Results{
		Eta:           (wOut - wIn) / qIn,
		BackWorkRatio: wIn / wOut,
		Zeta:          zeta,
		NetWork:       kJ(wOut - wIn),
		WorkIn:        kJ(wIn),
		WorkOut:       kJ(wOut),
		HeatIn:        kJ(qIn),
		HeatOut:       kJ(qOut),
	}
	return c.res, nil
}

// Run solves the cycle using the residual gas fraction estimated at
// atmospheric exhaust pressure.
func (c *Cycle) Run() (*Results, error) {
	return c.RunZeta(c.ResidualFraction(101.325))
}

// Results returns the outcome of the last solution, or nil if the
// cycle has not been run.
func (c *Cycle) Results() *Results {
	return c.res
}

// WriteStates writes the state at every mesh point of the solved cycle
// to w as comma-separated values with a header row.
func (c *Cycle) WriteStates(w io.Writer) error {
	if c.res == nil {
		return fmt.Errorf("ottoftaf: solve the cycle before writing its states")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"alpha_rad", "y", "V_m3", "P_kPa", "T_K", "U_kJ"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for j := range c.Alpha {
		err := cw.Write([]string{f(c.Alpha[j]), f(c.Y[j]), f(c.Vol[j]), f(c.P[j]), f(c.T[j]), f(c.U[j])})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
