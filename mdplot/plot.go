/*
 * plot.go, part of mdtools.
 *
 * Copyright 2023 The mdtools developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package mdplot produces quick plots of the quantities calculated
// from trajectories, such as RMSD time series and pairwise RMSD
// matrices.
package mdplot

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RMSDPlot plots the given RMSD values against the frame number and
// saves the plot to plotname, with the format given by the file
// extension (png, pdf, svg...). dt, if positive, scales the X axis to
// time instead of frame number.
func RMSDPlot(rmsd []float64, dt float64, title, plotname string) error {
	if len(rmsd) == 0 {
		return fmt.Errorf("mdplot: no RMSD values to plot")
	}
	xlabel := "Time"
	if dt <= 0 {
		dt = 1.0
		xlabel = "Frame"
	}
	pts := make(plotter.XYs, len(rmsd))
	for i, v := range rmsd {
		pts[i].X = float64(i+1) * dt
		pts[i].Y = v
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "RMSD"
	p.Add(plotter.NewGrid())
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mdplot: %v", err)
	}
	p.Add(line)
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, plotname); err != nil {
		return fmt.Errorf("mdplot: %v", err)
	}
	return nil
}

// symGrid adapts a symmetric matrix to the plotter.GridXYZ interface,
// with the frame numbers (1-based) on both axes.
type symGrid struct {
	m *mat.SymDense
}

func (g symGrid) Dims() (int, int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g symGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g symGrid) X(c int) float64 { return float64(c + 1) }

func (g symGrid) Y(r int) float64 { return float64(r + 1) }

// RMSDMatrixPlot saves to plotname a heat map of the given pairwise
// RMSD matrix, as produced by md.RMSDMatrix.
func RMSDMatrixPlot(m *mat.SymDense, title, plotname string) error {
	if m.SymmetricDim() == 0 {
		return fmt.Errorf("mdplot: empty RMSD matrix")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Frame"
	h := plotter.NewHeatMap(symGrid{m}, palette.Heat(12, 1))
	p.Add(h)
	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, plotname); err != nil {
		return fmt.Errorf("mdplot: %v", err)
	}
	return nil
}
