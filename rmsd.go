/*
 * rmsd.go, part of mdtools.
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

package md

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/m3g/mdtools/v3"
)

// RMSD returns the RMSD between the two sets of coordinates, which
// must have the same dimensions. The coordinates are compared as they
// are given, with no superposition. Note that the deviations are
// summed over atoms before the square root is taken, i.e.
// sqrt(sum_i |a_i - b_i|^2)/N, matching the convention of the rest of
// the tools in this family rather than the textbook definition.
func RMSD(a, b *v3.Matrix) (float64, error) {
	n := a.NVecs()
	if b.NVecs() != n {
		return 0, &ShapeError{Rows: a.NVecs(), Atoms: b.NVecs()}
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			d := a.At(i, j) - b.At(i, j)
			sum += d * d
		}
	}
	return math.Sqrt(sum) / float64(n), nil
}

// SuperRMSD superimposes test on templa and returns the RMSD between
// the superimposed coordinates and templa. If mol is not nil, the
// atom masses weight the centering step of the superposition.
func SuperRMSD(test, templa *v3.Matrix, mol Masser) (float64, error) {
	super, err := Align(test, templa, mol)
	if err != nil {
		return 0, errDecorate(err, "SuperRMSD")
	}
	r, err := RMSD(super, templa)
	if err != nil {
		return 0, errDecorate(err, "SuperRMSD")
	}
	return r, nil
}

// RMSDTraj restarts the given Simulation and returns the RMSD of each
// frame of its selection against the reference coordinates ref, in
// reading order. indexes, when not nil, restricts the comparison to
// those atoms of each frame; ref then has one row per index. If sup
// is true, each frame (or its subset) is superimposed on the
// reference before comparing; mol, when not nil, weights the
// centering step of the superposition.
func RMSDTraj(S *Simulation, ref *v3.Matrix, indexes []int, sup bool, mol Masser) ([]float64, error) {
	natoms := S.Len()
	if len(indexes) > 0 {
		natoms = len(indexes)
	}
	if ref.NVecs() != natoms {
		return nil, &ShapeError{Rows: ref.NVecs(), Atoms: natoms}
	}
	if err := S.Restart(); err != nil {
		return nil, errDecorate(err, "RMSDTraj")
	}
	ret := make([]float64, 0, S.SelectionLen())
	sub := v3.Zeros(natoms)
	buf := v3.Zeros(natoms)
	for {
		frame, err := S.Next()
		if err != nil {
			if LastFrame(err) {
				break
			}
			return nil, errDecorate(err, "RMSDTraj")
		}
		coord := frame.Coords
		if len(indexes) > 0 {
			if err := sub.SomeVecsSafe(frame.Coords, indexes); err != nil {
				return nil, errDecorate(err, "RMSDTraj")
			}
			coord = sub
		}
		if sup {
			if err := AlignInPlace(buf, coord, ref, mol); err != nil {
				return nil, errDecorate(err, "RMSDTraj")
			}
			coord = buf
		}
		r, err := RMSD(coord, ref)
		if err != nil {
			return nil, errDecorate(err, "RMSDTraj")
		}
		ret = append(ret, r)
	}
	return ret, nil
}

// RMSDMatrix restarts the given Simulation and returns the matrix of
// pairwise RMSDs between the frames of its selection: element i,j is
// the RMSD between the ith and jth selected frames. The matrix is
// symmetric with a zero diagonal. Frames are read sequentially, but
// the pairwise calculations are distributed over the available CPUs.
// All selected frames (or their subsets, when indexes is not nil) are
// kept in memory at once, so the cost is quadratic in time and linear
// in frames*atoms in memory. The options are as in RMSDTraj.
func RMSDMatrix(S *Simulation, indexes []int, sup bool, mol Masser) (*mat.SymDense, error) {
	natoms := S.Len()
	if len(indexes) > 0 {
		natoms = len(indexes)
	}
	if err := S.Restart(); err != nil {
		return nil, errDecorate(err, "RMSDMatrix")
	}
	frames := make([]*v3.Matrix, 0, S.SelectionLen())
	for {
		frame, err := S.Next()
		if err != nil {
			if LastFrame(err) {
				break
			}
			return nil, errDecorate(err, "RMSDMatrix")
		}
		c := v3.Zeros(natoms)
		if len(indexes) > 0 {
			if err := c.SomeVecsSafe(frame.Coords, indexes); err != nil {
				return nil, errDecorate(err, "RMSDMatrix")
			}
		} else {
			c.Clone(frame.Coords)
		}
		frames = append(frames, c)
	}
	return RMSDMatrixCoords(frames, sup, mol)
}

// RMSDMatrixCoords is like RMSDMatrix, but takes the frames as a
// slice of already-materialized coordinate sets.
func RMSDMatrixCoords(frames []*v3.Matrix, sup bool, mol Masser) (*mat.SymDense, error) {
	n := len(frames)
	if n == 0 {
		return nil, CError{"no frames to compare", []string{"RMSDMatrixCoords"}}
	}
	ret := mat.NewSymDense(n, nil)
	atoms := frames[0].NVecs()
	for _, f := range frames {
		if f.NVecs() != atoms {
			return nil, &ShapeError{Rows: f.NVecs(), Atoms: atoms}
		}
	}
	cpus := runtime.NumCPU()
	if cpus > n {
		cpus = n
	}
	errs := make([]error, cpus)
	var wg sync.WaitGroup
	for w := 0; w < cpus; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += cpus {
				for j := i + 1; j < n; j++ {
					var r float64
					var err error
					if sup {
						r, err = SuperRMSD(frames[j], frames[i], mol)
					} else {
						r, err = RMSD(frames[j], frames[i])
					}
					if err != nil {
						errs[w] = errDecorate(err, "RMSDMatrixCoords")
						return
					}
					ret.SetSym(i, j, r)
				}
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
