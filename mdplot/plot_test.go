/*
 * plot_test.go, part of mdtools.
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

package mdplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRMSDPlot(t *testing.T) {
	rmsd := []float64{0, 0.5, 0.8, 1.1, 1.0, 1.3}
	name := filepath.Join(t.TempDir(), "rmsd.png")
	if err := RMSDPlot(rmsd, 0.1, "Test RMSD", name); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("Plot file not written: %v", err)
	}
	if err := RMSDPlot(nil, 0, "empty", name); err == nil {
		t.Errorf("An empty series should be rejected")
	}
}

func TestRMSDMatrixPlot(t *testing.T) {
	n := 5
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, float64(j-i))
		}
	}
	name := filepath.Join(t.TempDir(), "matrix.png")
	if err := RMSDMatrixPlot(m, "Test matrix", name); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("Plot file not written: %v", err)
	}
}
