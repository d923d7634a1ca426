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
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// EngineParams maps engine parameter names to values in SI units.
// The recognized names are:
//
//	V_1  largest cylinder volume [m3]
//	V_2  clearance volume [m3]
//	V_du displaced volume per cylinder [m3]
//	V_d  total engine displacement [m3]
//	r_v  compression ratio
//	S    stroke [m]
//	D    bore [m]
//	r    crank radius [m]
//	L    connecting rod length [m]
//	r_s  bore-to-stroke ratio
//	z    number of cylinders
type EngineParams map[string]float64

// engineRelations are residual expressions that vanish for a consistent
// engine. Each one ties a derived parameter to the geometry that
// determines it; the cubic form of the bore-to-stroke relation lets the
// stroke be found from displacement and r_s alone.
var engineRelations = mustParseRelations(
	"V_du - (V_1 - V_2)",
	"V_du - pi * D ** 2 * S / 4",
	"V_d - z * V_du",
	"r_v - V_1 / V_2",
	"r_v - 1 - V_du / V_2",
	"S - 2 * r",
	"r_s - D / S",
	"S ** 3 - 4 * V_du / (pi * r_s ** 2)",
)

func mustParseRelations(exprs ...string) []*govaluate.EvaluableExpression {
	parsed := make([]*govaluate.EvaluableExpression, len(exprs))
	for i, s := range exprs {
		expr, err := govaluate.NewEvaluableExpression(s)
		if err != nil {
			panic(fmt.Errorf("ottoftaf: parsing engine relation %q: %v", s, err))
		}
		parsed[i] = expr
	}
	return parsed
}

// SolveEngine completes a partial engine specification. Relations whose
// parameters are all given act as consistency checks on the input, with
// residuals required to stay below eps; relations with exactly one
// missing parameter are solved for it numerically. Solving repeats until
// no further parameters can be determined. The input map is not
// modified.
func SolveEngine(params EngineParams, eps float64) (EngineParams, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("ottoftaf: no engine parameters given")
	}
	out := make(EngineParams, len(params))
	for k, v := range params {
		out[k] = v
	}

	evalParams := func() map[string]interface{} {
		m := make(map[string]interface{}, len(out)+1)
		m["pi"] = math.Pi
		for k, v := range out {
			m[k] = v
		}
		return m
	}
	unknowns := func(expr *govaluate.EvaluableExpression) []string {
		var u []string
		seen := make(map[string]bool)
		for _, v := range expr.Vars() {
			if v == "pi" || seen[v] {
				continue
			}
			if _, ok := out[v]; ok {
				continue
			}
			seen[v] = true
			u = append(u, v)
		}
		return u
	}

	// Fully determined relations are consistency checks on the input.
	for _, expr := range engineRelations {
		if len(unknowns(expr)) != 0 {
			continue
		}
		res, err := evalRelation(expr, evalParams())
		if err != nil {
			return nil, err
		}
		if math.Abs(res) >= eps {
			return nil, fmt.Errorf("ottoftaf: engine parameters violate %s by %g", expr, math.Abs(res))
		}
	}

	for {
		progress := false
		for _, expr := range engineRelations {
			u := unknowns(expr)
			if len(u) != 1 {
				continue
			}
			name := u[0]
			f := func(x float64) (float64, error) {
				m := evalParams()
				m[name] = x
				return evalRelation(expr, m)
			}
			x, err := solvePositive(f)
			if err != nil {
				return nil, fmt.Errorf("ottoftaf: solving %s for %s: %v", expr, name, err)
			}
			out[name] = x
			progress = true
		}
		if !progress {
			break
		}
	}
	return out, nil
}

func evalRelation(expr *govaluate.EvaluableExpression, params map[string]interface{}) (float64, error) {
	res, err := expr.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("ottoftaf: evaluating %s: %v", expr, err)
	}
	v, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("ottoftaf: relation %s did not evaluate to a number", expr)
	}
	return v, nil
}

// solvePositive finds a root of f on the positive axis by scanning a
// geometric grid for a sign change and bisecting the bracketing
// interval.
func solvePositive(f func(float64) (float64, error)) (float64, error) {
	const (
		xMin = 1e-12
		xMax = 1e12
	)
	var lo, flo float64
	haveLo := false
	for x := xMin; x <= xMax; x *= 10 {
		fx, err := f(x)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(fx) || math.IsInf(fx, 0) {
			haveLo = false
			continue
		}
		if fx == 0 {
			return x, nil
		}
		if haveLo && (flo < 0) != (fx < 0) {
			return bisect(f, lo, x, flo)
		}
		lo, flo, haveLo = x, fx, true
	}
	return 0, fmt.Errorf("no sign change on the positive axis")
}

func bisect(f func(float64) (float64, error), lo, hi, flo float64) (float64, error) {
	for {
		mid := (lo + hi) / 2
		if mid == lo || mid == hi {
			return mid, nil
		}
		fmid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fmid == 0 {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
}
