/*
 * v3.go, part of mdtools.
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
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space. The underlying implementation
// is a gonum mat.Dense with 3 columns. Each row is the cartesian
// coordinates of one point, typically one atom.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix returns a Matrix backed by the data of the given Dense.
// It panics if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix creates and returns a Matrix with the given data, which
// must have a length divisible by 3, as the Matrix will have 3 columns.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", rows, cols, rows%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vectors in the receiver.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len returns the number of vectors in the receiver. It is equivalent
// to NVecs and exists to satisfy interfaces requiring a Len method.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// VecView returns a view of the ith vector of the matrix, as a Matrix.
// Changes to the view are reflected in the original matrix.
func (F *Matrix) VecView(i int) *Matrix {
	M := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{M}
}

// View returns a view of F starting from i,j and spanning r rows and
// c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	M := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{M}
}

// Row fills the given slice with the ith row of the receiver, and
// returns it. If a nil slice is given, a new one is allocated.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, F.Dense)
}

// Mul multiplies A and B and puts the result on the receiver.
// It panics if the matrices have shapes unsuitable for multiplication.
func (F *Matrix) Mul(A, B mat.Matrix) {
	// We need to unwrap any v3.Matrix argument into the naked Dense,
	// as gonum detects receiver/argument overlap by comparing the
	// concrete values, and a wrapped Dense would escape the check.
	if A2, ok := A.(*Matrix); ok {
		A = A2.Dense
	}
	if B2, ok := B.(*Matrix); ok {
		B = B2.Dense
	}
	F.Dense.Mul(A, B)
}

// Clone copies A into the receiver, which must have the same
// dimensions as A.
func (F *Matrix) Clone(A *Matrix) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar != fr {
		panic(ErrShape)
	}
	F.Dense.Copy(A.Dense)
}

// AddVec adds vec, a 1x3 Matrix, to each vector of A, putting the
// result on the receiver. The receiver may be A itself. The sums are
// done element by element, as gonum rejects even exactly-overlapping
// views as operands (the same hazard Mul works around).
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

// SubVec subtracts vec, a 1x3 Matrix, from each vector of A, putting
// the result on the receiver. The receiver may be A itself.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-vec.At(0, j))
		}
	}
}

// Add puts in the receiver the element-wise sum of A and B. The
// receiver may be one of the arguments.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

// Sub puts in the receiver the element-wise difference A-B. The
// receiver may be one of the arguments.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Scale puts in the receiver the matrix A scaled by v. The receiver
// may be A itself.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

// ScaleByVec scales each column of A by the corresponding element of
// vec, a 1x3 Matrix, putting the result in the receiver.
func (F *Matrix) ScaleByVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ac; i++ {
		for j := 0; j < ar; j++ {
			F.Set(j, i, A.At(j, i)*vec.At(0, i))
		}
	}
}

// ScaleByCol scales each column of A by the corresponding element of
// col, a Nx1 column vector with as many rows as A, putting the result
// in the receiver.
func (F *Matrix) ScaleByCol(A, col mat.Matrix) {
	ar, ac := A.Dims()
	cr, cc := col.Dims()
	fr, fc := F.Dims()
	if ac != 3 || cc > 1 || cr != ar || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			F.Set(i, j, A.At(i, j)*col.At(i, 0))
		}
	}
}

// SwapVecs swaps the vectors i and j of the receiver.
func (F *Matrix) SwapVecs(i, j int) {
	l := F.NVecs()
	if i >= l || j >= l {
		panic(ErrIndexOutOfRange)
	}
	rowi := F.Row(nil, i)
	rowj := F.Row(nil, j)
	for k := 0; k < 3; k++ {
		F.Set(i, k, rowj[k])
		F.Set(j, k, rowi[k])
	}
}

// SetVecs sets the vectors of the receiver whose indexes are given in
// clist to the vectors of A, in order. The receiver must have at least
// as many vectors as the last index in clist, and A at least
// len(clist) vectors.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= fr {
			panic(ErrIndexOutOfRange)
		}
		F.Set(val, 0, A.At(key, 0))
		F.Set(val, 1, A.At(key, 1))
		F.Set(val, 2, A.At(key, 2))
	}
}

// SomeVecs puts in the receiver the vectors of A whose indexes are
// given in clist, in order. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar {
			panic(ErrIndexOutOfRange)
		}
		F.Set(key, 0, A.At(val, 0))
		F.Set(key, 1, A.At(val, 1))
		F.Set(key, 2, A.At(val, 2))
	}
}

// SomeVecsSafe is equivalent to SomeVecs, but returns an error instead
// of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	f := func() { F.SomeVecs(A, clist) }
	return mustCatch(f)
}

// Cross puts the cross product of a and b, both 1x3 matrices, in the
// receiver, also a 1x3 matrix.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrVecLength)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

// Dot returns the dot product of the receiver and B, both treated as
// flat vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	frows, fcols := F.Dims()
	brows, bcols := B.Dims()
	if fcols != bcols || frows != brows {
		panic(ErrShape)
	}
	a, b := F.Dims()
	A := Zeros(a)
	A.MulElem(F, B)
	var sum float64
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			sum += A.At(i, j)
		}
	}
	return sum
}

// MulElem puts in the receiver the element-wise product of A and B.
func (F *Matrix) MulElem(A, B *Matrix) {
	F.Dense.MulElem(A.Dense, B.Dense)
}

// Norm returns the Frobenius norm of the receiver. For a 1x3 matrix
// this is the Euclidean norm of the vector.
func (F *Matrix) Norm(i float64) float64 {
	return mat.Norm(F.Dense, i)
}

// Unit puts in the receiver the unit vector in the direction of A,
// a 1x3 matrix. It returns the norm of A.
func (F *Matrix) Unit(A *Matrix) float64 {
	if A.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrVecLength)
	}
	norm := A.Norm(2)
	F.Scale(1.0/norm, A)
	return norm
}

// String returns a neat string representation of the matrix.
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c, c)
	for i := 0; i < r; i++ {
		F.Row(row, i)
		if i == 0 {
			v[1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

func mustCatch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Error{fmt.Sprintf("%v", r), []string{}, true}
		}
	}()
	f()
	return err
}

// Dist returns the euclidean distance between the 1x3 matrices a and b.
func Dist(a, b *Matrix) float64 {
	if a.NVecs() != 1 || b.NVecs() != 1 {
		panic(ErrVecLength)
	}
	var sum float64
	for i := 0; i < 3; i++ {
		d := a.At(0, i) - b.At(0, i)
		sum += d * d
	}
	return math.Sqrt(sum)
}
