/*
 * align.go, part of mdtools.
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
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/m3g/mdtools/v3"
)

// CenterOfMass returns the center of mass of the given coordinates as
// a 1x3 matrix. If mol is nil, all atoms are given the same weight,
// so the geometric center is returned instead.
func CenterOfMass(coord *v3.Matrix, mol Masser) (*v3.Matrix, error) {
	n := coord.NVecs()
	center := v3.Zeros(1)
	if mol == nil {
		for i := 0; i < n; i++ {
			center.Add(center, coord.VecView(i))
		}
		center.Scale(1.0/float64(n), center)
		return center, nil
	}
	mass, err := mol.Masses()
	if err != nil {
		return nil, errDecorate(err, "CenterOfMass")
	}
	if len(mass) != n {
		return nil, &ShapeError{Rows: n, Atoms: len(mass)}
	}
	var total float64
	tmp := v3.Zeros(1)
	for i := 0; i < n; i++ {
		tmp.Scale(mass[i], coord.VecView(i))
		center.Add(center, tmp)
		total += mass[i]
	}
	center.Scale(1.0/total, center)
	return center, nil
}

// MassCenter returns a copy of in translated so the center of mass of
// ref sits at the origin. in and ref will often be the same matrix,
// or ref a subset of the atoms of in.
func MassCenter(in, ref *v3.Matrix, mol Masser) (*v3.Matrix, error) {
	center, err := CenterOfMass(ref, mol)
	if err != nil {
		return nil, errDecorate(err, "MassCenter")
	}
	out := v3.Zeros(in.NVecs())
	out.SubVec(in, center)
	return out, nil
}

// RotatorTranslatorToSuper returns the rotation matrix and the two
// translations needed to superimpose test on templa: the superimposed
// coordinates are (test-ctest)*R + ctempla. The rotation is obtained
// from the quaternion associated with the smallest eigenvalue of the
// residual quadratic form (Kearsley, Acta Cryst. A45, 208 (1989)), so
// it is a proper rotation: mirror images are not matched. If mol is
// not nil, the atom masses weight the centering step.
func RotatorTranslatorToSuper(test, templa *v3.Matrix, mol Masser) (*v3.Matrix, *v3.Matrix, *v3.Matrix, error) {
	n := test.NVecs()
	if templa.NVecs() != n {
		return nil, nil, nil, &ShapeError{Rows: test.NVecs(), Atoms: templa.NVecs()}
	}
	ctest, err := CenterOfMass(test, mol)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "RotatorTranslatorToSuper")
	}
	ctempla, err := CenterOfMass(templa, mol)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "RotatorTranslatorToSuper")
	}
	m := v3.Zeros(n)
	m.SubVec(test, ctest)
	f := v3.Zeros(n)
	f.SubVec(templa, ctempla)

	//The off-diagonal elements below the diagonal are filled in by
	//the SymDense, so only the upper triangle is accumulated.
	var k [16]float64
	for i := 0; i < n; i++ {
		dx := f.At(i, 0) - m.At(i, 0)
		dy := f.At(i, 1) - m.At(i, 1)
		dz := f.At(i, 2) - m.At(i, 2)
		sx := f.At(i, 0) + m.At(i, 0)
		sy := f.At(i, 1) + m.At(i, 1)
		sz := f.At(i, 2) + m.At(i, 2)
		k[0] += dx*dx + dy*dy + dz*dz
		k[5] += sy*sy + sz*sz + dx*dx
		k[10] += sx*sx + sz*sz + dy*dy
		k[15] += sx*sx + sy*sy + dz*dz
		k[1] += sy*dz - sz*dy
		k[2] += sz*dx - sx*dz
		k[3] += sx*dy - sy*dx
		k[6] += dx*dy - sx*sy
		k[7] += dx*dz - sx*sz
		k[11] += dy*dz - sy*sz
	}
	k[4], k[8], k[12] = k[1], k[2], k[3]
	k[9], k[13] = k[6], k[7]
	k[14] = k[11]
	K := mat.NewSymDense(4, k[:])
	var eig mat.EigenSym
	if ok := eig.Factorize(K, true); !ok {
		return nil, nil, nil, CError{"eigendecomposition of the residual form failed", []string{"RotatorTranslatorToSuper"}}
	}
	vecs := new(mat.Dense)
	eig.VectorsTo(vecs)
	//eigenvalues come sorted in ascending order, so the quaternion
	//of the best rotation is the first column.
	q0 := vecs.At(0, 0)
	q1 := vecs.At(1, 0)
	q2 := vecs.At(2, 0)
	q3 := vecs.At(3, 0)

	rot, _ := v3.NewMatrix([]float64{
		q0*q0 + q1*q1 - q2*q2 - q3*q3, 2 * (q1*q2 - q0*q3), 2 * (q1*q3 + q0*q2),
		2 * (q1*q2 + q0*q3), q0*q0 - q1*q1 + q2*q2 - q3*q3, 2 * (q2*q3 - q0*q1),
		2 * (q1*q3 - q0*q2), 2 * (q2*q3 + q0*q1), q0*q0 - q1*q1 - q2*q2 + q3*q3,
	})
	return rot, ctest, ctempla, nil
}

// Align returns a copy of test superimposed on templa by the rigid
// transformation (rotation plus translation) that best matches the
// two sets of coordinates. Scaling and reflections are never applied.
func Align(test, templa *v3.Matrix, mol Masser) (*v3.Matrix, error) {
	out := v3.Zeros(test.NVecs())
	if err := AlignInPlace(out, test, templa, mol); err != nil {
		return nil, errDecorate(err, "Align")
	}
	return out, nil
}

// AlignInPlace is like Align, but puts the superimposed coordinates
// in out, which must have the dimensions of test. out may be test
// itself.
func AlignInPlace(out, test, templa *v3.Matrix, mol Masser) error {
	if out.NVecs() != test.NVecs() {
		return &ShapeError{Rows: out.NVecs(), Atoms: test.NVecs()}
	}
	rot, ctest, ctempla, err := RotatorTranslatorToSuper(test, templa, mol)
	if err != nil {
		return errDecorate(err, "AlignInPlace")
	}
	out.SubVec(test, ctest)
	out.Mul(out, rot)
	out.AddVec(out, ctempla)
	return nil
}

// Super returns a copy of test superimposed on templa, with the fit
// computed only on the atoms of testlst and templalst, which must
// have the same length. The transformation obtained from the subsets
// is applied to the whole of test. Nil or empty lists mean all atoms.
// mol, if not nil, must provide the masses of the atoms in the lists.
func Super(test, templa *v3.Matrix, testlst, templalst []int, mol Masser) (*v3.Matrix, error) {
	if len(testlst) == 0 && len(templalst) == 0 {
		return Align(test, templa, mol)
	}
	if len(testlst) != len(templalst) {
		return nil, CError{fmt.Sprintf("mismatched fitting subsets: %d and %d atoms", len(testlst), len(templalst)), []string{"Super"}}
	}
	ctest := v3.Zeros(len(testlst))
	if err := ctest.SomeVecsSafe(test, testlst); err != nil {
		return nil, errDecorate(err, "Super")
	}
	ctempla := v3.Zeros(len(templalst))
	if err := ctempla.SomeVecsSafe(templa, templalst); err != nil {
		return nil, errDecorate(err, "Super")
	}
	rot, c1, c2, err := RotatorTranslatorToSuper(ctest, ctempla, mol)
	if err != nil {
		return nil, errDecorate(err, "Super")
	}
	out := v3.Zeros(test.NVecs())
	out.SubVec(test, c1)
	out.Mul(out, rot)
	out.AddVec(out, c2)
	return out, nil
}
