/*
 * atoms.go, part of mdtools.
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

import "fmt"

// Atom contains the metadata of one atom. Coordinates are kept
// separately, in v3.Matrix objects.
type Atom struct {
	Name    string  //PDB/XYZ name of the atom
	ID      int     //The PDB index of the atom
	MolName string  //The molecule or residue name
	MolID   int     //The molecule or residue number
	Chain   string  //The chain the atom belongs to
	Mass    float64 //hopefully in Daltons
	Charge  float64 //partial charge, in e
	Symbol  string  //chemical element
}

// Copy returns a copy of the Atom.
func (N *Atom) Copy() *Atom {
	ret := *N
	return &ret
}

// Topology is a set of atoms, i.e. a molecule without coordinates.
type Topology struct {
	atoms []*Atom
}

// NewTopology returns a topology containing the given atoms.
func NewTopology(atoms []*Atom) *Topology {
	return &Topology{atoms: atoms}
}

// Atom returns the Atom corresponding to the atom i of the topology.
// It panics if the index is out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic(PanicMsg(fmt.Sprintf("goMD: Requested atom (%d) out of range (%d)", i, T.Len())))
	}
	return T.atoms[i]
}

// SetAtom sets the atom i of the topology to at. It panics if the
// index is out of range.
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic(PanicMsg(fmt.Sprintf("goMD: Tried to set atom (%d) out of range (%d)", i, T.Len())))
	}
	T.atoms[i] = at
}

// AppendAtom appends the given atom at the end of the topology.
func (T *Topology) AppendAtom(at *Atom) {
	T.atoms = append(T.atoms, at)
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.atoms)
}

// Masses returns a slice with the masses of the atoms in the
// topology. If an atom has no mass assigned, the mass is looked up
// from its chemical symbol. Atoms for which no mass can be obtained
// cause an error.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		m := at.Mass
		if m <= 0 {
			var ok bool
			m, ok = symbolMass[at.Symbol]
			if !ok {
				return nil, CError{fmt.Sprintf("no mass for atom %d (%s %s)", i, at.Name, at.Symbol), []string{"Topology.Masses"}}
			}
		}
		mass[i] = m
	}
	return mass, nil
}

// SomeAtoms returns a new topology with the atoms of T whose indexes
// are given in list, in order. The atoms are shared with T.
func (T *Topology) SomeAtoms(list []int) (*Topology, error) {
	atoms := make([]*Atom, 0, len(list))
	for _, v := range list {
		if v >= T.Len() {
			return nil, CError{fmt.Sprintf("atom index %d out of range (%d)", v, T.Len()), []string{"Topology.SomeAtoms"}}
		}
		atoms = append(atoms, T.atoms[v])
	}
	return NewTopology(atoms), nil
}

// PanicMsg is the type used for the panics thrown by this package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
