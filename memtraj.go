/*
 * memtraj.go, part of mdtools.
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

	"github.com/m3g/mdtools/v3"
)

// MemTraj is an in-memory trajectory. It implements FrameSource, so
// already-materialized coordinates can be fed to anything that
// iterates over trajectories. The zero MemTraj is not usable; get one
// from NewMemTraj.
type MemTraj struct {
	frames []*Frame
	natoms int
	pos    int
	closed bool
}

// NewMemTraj returns an in-memory trajectory holding the given
// frames, which must all have the same number of atoms. The frames
// are kept by reference, not copied.
func NewMemTraj(frames []*Frame) (*MemTraj, error) {
	if len(frames) == 0 {
		return nil, CError{"an in-memory trajectory needs at least one frame", []string{"NewMemTraj"}}
	}
	natoms := frames[0].Coords.NVecs()
	for i, f := range frames {
		if f.Coords.NVecs() != natoms {
			return nil, CError{fmt.Sprintf("frame %d has %d atoms, expected %d", i+1, f.Coords.NVecs(), natoms), []string{"NewMemTraj"}}
		}
	}
	return &MemTraj{frames: frames, natoms: natoms}, nil
}

// Readable returns true if the trajectory can still deliver frames.
func (M *MemTraj) Readable() bool {
	return !M.closed && M.pos < len(M.frames)
}

// Next copies the coordinates of the next frame into output. A nil
// output skips the frame. If a box slice is given, the frame's
// unit-cell vector lengths, when present, are copied into it.
func (M *MemTraj) Next(output *v3.Matrix, box ...[]float64) error {
	if M.closed {
		return simError{message: "trajectory has been closed", filename: "in memory", format: "mem", critical: true}
	}
	if M.pos >= len(M.frames) {
		return lastFrameError{fileName: "in memory", format: "mem"}
	}
	f := M.frames[M.pos]
	M.pos++
	if output != nil {
		if output.NVecs() != M.natoms {
			return &ShapeError{Rows: output.NVecs(), Atoms: M.natoms}
		}
		output.Clone(f.Coords)
	}
	if len(box) > 0 && len(f.Box) > 0 {
		copy(box[0], f.Box)
	}
	return nil
}

// Len returns the number of atoms per frame.
func (M *MemTraj) Len() int {
	return M.natoms
}

// Frames returns the number of frames in the trajectory.
func (M *MemTraj) Frames() int {
	return len(M.frames)
}

// Reopen rewinds the trajectory to its first frame.
func (M *MemTraj) Reopen() error {
	if M.closed {
		return simError{message: "trajectory has been closed", filename: "in memory", format: "mem", critical: true}
	}
	M.pos = 0
	return nil
}

// Close marks the trajectory as no longer readable. The frames
// themselves are not touched.
func (M *MemTraj) Close() {
	M.closed = true
}
