/*
 * interfaces.go, part of mdtools.
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
	"github.com/m3g/mdtools/v3"
)

// Atomer is the basic interface for a topology, a set of atoms and
// their metadata, excluding coordinates.
type Atomer interface {
	// Atom returns the Atom corresponding to the atom i of the
	// topology. Changes to the returned Atom are reflected in the
	// topology.
	Atom(i int) *Atom

	Len() int
}

// Masser is anything able to produce a slice with the masses of a set
// of atoms.
type Masser interface {
	// Masses returns a slice with the masses of the atoms, in the
	// same order as in the topology.
	Masses() ([]float64, error)
}

// Traj is a trajectory read sequentially, one frame at a time. Traj
// implementations are not assumed to be safe for concurrent use.
type Traj interface {
	// Readable returns true if the trajectory is fit to be read,
	// i.e. if it is open and the last read did not fail.
	Readable() bool

	// Next reads the next frame into the given matrix, which must
	// have the correct dimensions. If the matrix is nil, the frame
	// is read and discarded. If a box slice (of at least 3
	// elements) is given, the frame's unit-cell vectors are put
	// in it, when the format supports them.
	Next(output *v3.Matrix, box ...[]float64) error

	// Len returns the number of atoms per frame in the trajectory.
	Len() int
}

// FrameSource is a trajectory backend that, in addition to sequential
// reads, knows how many frames it holds and can be rewound by
// reopening the underlying data.
type FrameSource interface {
	Traj

	// Frames returns the total number of frames in the trajectory.
	Frames() int

	// Reopen rewinds the trajectory to just before its first
	// frame, so the next read returns frame 1 again.
	Reopen() error

	// Close releases the resources held by the trajectory. The
	// trajectory is no longer readable after the call.
	Close()
}

// Error is the interface for most errors issued by the library. The
// decoration slice carries the names of the functions the error has
// traveled through, for easier debugging.
type Error interface {
	error
	Decorate(string) []string //Decorate will add the given string to the decoration slice of strings of the error, and return the resulting slice.
}

// TrajError is the interface for errors in trajectory handling.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError is a special case of TrajError. It is not really an
// error, but a signal that the trajectory, or the selected part of
// it, has been fully read.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError implementations
}
