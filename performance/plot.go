// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/jetsetilly/gopher8080/hardware/clocks"
)

// Plot the number of states between interrupts. The ideal number of states is
// drawn as a horizontal line. The format of the file is decided by the
// filename's extension.
func Plot(filename string, states []int) error {
	if len(states) == 0 {
		return fmt.Errorf("performance: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "states per interrupt"
	p.X.Label.Text = "interrupt"
	p.Y.Label.Text = "states"

	pts := make(plotter.XYs, len(states))
	for i, s := range states {
		pts[i].X = float64(i)
		pts[i].Y = float64(s)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	p.Add(line)

	ideal := plotter.NewFunction(func(float64) float64 {
		return clocks.StatesPerInterrupt
	})
	ideal.Color = color.RGBA{R: 0xff, A: 0xff}
	ideal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(ideal)

	err = p.Save(8*vg.Inch, 4*vg.Inch, filename)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
