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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// A SweepPoint is one cycle solution within an equivalence ratio sweep.
type SweepPoint struct {
	Phi           float64
	Eta           float64
	NetWork       float64 // [J]
	BackWorkRatio float64
	Zeta          float64
}

// Sweep solves the case once for each of the given equivalence ratios.
func Sweep(c *Case, phis []float64) ([]SweepPoint, error) {
	pts := make([]SweepPoint, 0, len(phis))
	for _, phi := range phis {
		cc := *c
		cc.Phi = phi
		cyc, err := cc.Cycle()
		if err != nil {
			return nil, fmt.Errorf("ottoutil: at phi = %g: %v", phi, err)
		}
		res, err := cyc.Run()
		if err != nil {
			return nil, fmt.Errorf("ottoutil: at phi = %g: %v", phi, err)
		}
		pts = append(pts, SweepPoint{
			Phi:           phi,
			Eta:           res.Eta,
			NetWork:       res.NetWork.Value(),
			BackWorkRatio: res.BackWorkRatio,
			Zeta:          res.Zeta,
		})
	}
	return pts, nil
}

// SweepRange returns n equivalence ratios evenly spaced from start to
// end inclusive.
func SweepRange(start, end float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	phis := make([]float64, n)
	for i := range phis {
		phis[i] = start + float64(i)*(end-start)/float64(n-1)
	}
	return phis
}

// SweepStats summarizes the efficiencies of a sweep, including the
// linear trend of efficiency against equivalence ratio.
type SweepStats struct {
	EtaMean, EtaStdDev, EtaMin, EtaMax float64

	Slope, Intercept, RSquared float64
}

// Summarize calculates summary statistics for a sweep.
func Summarize(pts []SweepPoint) SweepStats {
	var d stats.Stats
	phis := make([]float64, len(pts))
	etas := make([]float64, len(pts))
	for i, p := range pts {
		d.Update(p.Eta)
		phis[i] = p.Phi
		etas[i] = p.Eta
	}
	s := SweepStats{
		EtaMean: d.Mean(),
		EtaMin:  d.Min(),
		EtaMax:  d.Max(),
	}
	if len(pts) > 1 {
		s.EtaStdDev = d.SampleStandardDeviation()
		s.Slope, s.Intercept, s.RSquared, _, _, _ = stats.LinearRegression(phis, etas)
	}
	return s
}

// WriteCSV writes the sweep results to w as comma-separated values with
// a header row.
func WriteCSV(w io.Writer, pts []SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phi", "eta", "w_net_J", "back_work_ratio", "zeta"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, p := range pts {
		err := cw.Write([]string{f(p.Phi), f(p.Eta), f(p.NetWork), f(p.BackWorkRatio), f(p.Zeta)})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PlotEta writes a plot of thermal efficiency against equivalence ratio
// to fname.
func PlotEta(fname string, pts []SweepPoint) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "Thermal efficiency"
	p.X.Label.Text = "Equivalence ratio"
	p.Y.Label.Text = "Efficiency"

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.Phi
		xys[i].Y = pt.Eta
	}
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), l, s)

	return p.Save(14*vg.Centimeter, 9*vg.Centimeter, fname)
}
