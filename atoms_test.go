/*
 * atoms_test.go, part of mdtools.
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
	"testing"
)

func TestTopologyMasses(t *testing.T) {
	top := NewTopology([]*Atom{
		{Name: "OW", Symbol: "O"},
		{Name: "HW1", Symbol: "H"},
		{Name: "HW2", Symbol: "H", Mass: 2.014}, //deuterated
	})
	mass, err := top.Masses()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mass[0]-15.999) > 1e-6 || math.Abs(mass[1]-1.008) > 1e-6 {
		t.Errorf("Wrong masses from the symbols: %v", mass)
	}
	//an explicitly set mass wins over the element mass
	if mass[2] != 2.014 {
		t.Errorf("Explicit mass not respected: %f", mass[2])
	}
	top.AppendAtom(&Atom{Name: "X", Symbol: "Xx"})
	if _, err := top.Masses(); err == nil {
		t.Errorf("An unknown element should cause an error")
	}
}

func TestSomeAtoms(t *testing.T) {
	top := NewTopology([]*Atom{
		{Name: "N"}, {Name: "CA"}, {Name: "C"}, {Name: "O"},
	})
	bb, err := top.SomeAtoms([]int{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if bb.Len() != 3 || bb.Atom(2).Name != "C" {
		t.Errorf("Wrong sub-topology")
	}
	if _, err := top.SomeAtoms([]int{7}); err == nil {
		t.Errorf("Out of range atom index should cause an error")
	}
}
