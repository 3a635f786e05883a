/*
 * v3_test.go, part of mdtools.
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

package v3

import (
	"math"
	"testing"
)

func TestMatrixCreation(t *testing.T) {
	a, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if a.NVecs() != 2 {
		t.Errorf("Wrong number of vectors: %d", a.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		t.Errorf("Slice with length not divisible by 3 should be rejected")
	}
}

func TestVecView(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v := a.VecView(1)
	if v.At(0, 0) != 4 || v.At(0, 2) != 6 {
		t.Errorf("Wrong view: %v", v)
	}
	v.Set(0, 0, 40)
	if a.At(1, 0) != 40 {
		t.Errorf("Changes to the view are not reflected in the viewed matrix")
	}
}

func TestAddSubVec(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	vec, _ := NewMatrix([]float64{1, 2, 3})
	b := Zeros(2)
	b.AddVec(a, vec)
	if b.At(0, 0) != 2 || b.At(1, 2) != 5 {
		t.Errorf("Wrong AddVec result: %v", b)
	}
	b.SubVec(b, vec)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if b.At(i, j) != a.At(i, j) {
				t.Errorf("SubVec did not undo AddVec: %v vs %v", b, a)
			}
		}
	}
	// in-place, receiver aliases the argument
	a.AddVec(a, vec)
	if a.At(0, 1) != 3 {
		t.Errorf("Wrong in-place AddVec result: %v", a)
	}
	a.SubVec(a, vec)
	if a.At(0, 1) != 1 || a.At(1, 2) != 2 {
		t.Errorf("Wrong in-place SubVec result: %v", a)
	}
}

func TestCrossAndUnit(t *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 || z.At(0, 1) != 0 {
		t.Errorf("Wrong cross product: %v", z)
	}
	a, _ := NewMatrix([]float64{3, 0, 4})
	u := Zeros(1)
	norm := u.Unit(a)
	if math.Abs(norm-5) > 1e-12 {
		t.Errorf("Wrong norm: %f", norm)
	}
	if math.Abs(u.Norm(2)-1) > 1e-12 {
		t.Errorf("Unit vector norm not 1: %f", u.Norm(2))
	}
}

func TestSomeSetVecs(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4})
	some := Zeros(2)
	some.SomeVecs(a, []int{1, 3})
	if some.At(0, 0) != 2 || some.At(1, 0) != 4 {
		t.Errorf("Wrong SomeVecs result: %v", some)
	}
	b := Zeros(4)
	b.SetVecs(some, []int{0, 2})
	if b.At(0, 0) != 2 || b.At(2, 0) != 4 {
		t.Errorf("Wrong SetVecs result: %v", b)
	}
	err := some.SomeVecsSafe(a, []int{1, 5})
	if err == nil {
		t.Errorf("Out of range index should produce an error")
	}
}

func TestMulAliasing(t *testing.T) {
	a, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	rot, _ := NewMatrix([]float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
	a.Mul(a, rot)
	if a.At(0, 1) != -1 || a.At(1, 0) != 1 {
		t.Errorf("Wrong in-place Mul result: %v", a)
	}
}

func TestDist(t *testing.T) {
	a, _ := NewMatrix([]float64{0, 0, 0})
	b, _ := NewMatrix([]float64{1, 2, 2})
	if d := Dist(a, b); math.Abs(d-3) > 1e-12 {
		t.Errorf("Wrong distance: %f", d)
	}
}
