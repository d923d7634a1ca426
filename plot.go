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
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PVDiagram writes a pressure-volume diagram of the solved cycle to
// fname. The output format follows the file extension (png, pdf, svg,
// ...). With logScale both axes are logarithmic.
func (c *Cycle) PVDiagram(fname string, logScale bool) error {
	return c.diagram(fname, "Pressure [kPa]", c.P, logScale)
}

// TVDiagram writes a temperature-volume diagram of the solved cycle to
// fname. With logScale both axes are logarithmic.
func (c *Cycle) TVDiagram(fname string, logScale bool) error {
	return c.diagram(fname, "Temperature [K]", c.T, logScale)
}

func (c *Cycle) diagram(fname, yLabel string, ys []float64, logScale bool) error {
	if c.res == nil {
		return fmt.Errorf("ottoftaf: solve the cycle before plotting it")
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = fmt.Sprintf("phi = %.1f, r_v = %.1f", c.Phi, c.Engine["r_v"])
	p.X.Label.Text = "Volume [m3]"
	p.Y.Label.Text = yLabel
	if logScale {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	pts := make(plotter.XYs, len(c.Vol))
	for i := range c.Vol {
		pts[i].X = c.Vol[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = color.RGBA{R: 255, A: 255}
	p.Add(plotter.NewGrid(), l)
	p.Legend.Add(fmt.Sprintf("%v: eta = %.3f%%", c.Fuels, c.res.Eta*100), l)
	p.Legend.Top = true

	return p.Save(18*vg.Centimeter, 9*vg.Centimeter, fname)
}
