/*
 * simulation.go, part of mdtools.
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
	"sync"

	"github.com/m3g/mdtools/v3"
)

// Selection restricts the reading of a trajectory to the frames
// First, First+Step, First+2*Step... up to, at most, Last. Frames are
// numbered from 1.
type Selection struct {
	First int
	Step  int
	Last  int
}

// Contains returns true if frame i belongs to the selection.
func (s Selection) Contains(i int) bool {
	return i >= s.First && i <= s.Last && (i-s.First)%s.Step == 0
}

// Len returns the number of frames in the selection.
func (s Selection) Len() int {
	return (s.Last-s.First)/s.Step + 1
}

// Frame holds the data read from one trajectory frame: the cartesian
// coordinates of the atoms and, if the format provides it, the unit
// cell. For orthorhombic cells Box holds the 3 cell-vector lengths;
// a backend may instead fill 9 elements with the full cell matrix in
// row-major order for triclinic cells. Formats without cell
// information leave Box untouched.
type Frame struct {
	Coords *v3.Matrix
	Box    []float64
}

// Clone returns a deep copy of the frame, which remains valid after
// further reads on the trajectory the frame came from.
func (F *Frame) Clone() *Frame {
	c := v3.Zeros(F.Coords.NVecs())
	c.Clone(F.Coords)
	b := make([]float64, len(F.Box))
	copy(b, F.Box)
	return &Frame{Coords: c, Box: b}
}

// Simulation iterates over the frames of a trajectory, restricted to
// a selection of the frames. Reads go through a single reusable
// buffer, so the Frame returned by one call is only valid until the
// next read; use Frame.Clone to keep it. A Simulation serializes
// access to its backend and is safe for concurrent use, though frames
// are still delivered one at a time.
type Simulation struct {
	mu      sync.Mutex
	source  FrameSource
	sel     Selection
	current int //the last frame delivered, 1-based. 0 if no frame has been read.
	nextpos int //the frame the backend will produce on its next read, 1-based.
	frame   *Frame
}

// NewSimulation returns a Simulation reading from the given source.
// If no Selection is given, all frames are selected. A Selection with
// zero-valued fields has them replaced by the defaults: 1 for First
// and Step, the total number of frames for Last.
func NewSimulation(source FrameSource, sel ...Selection) (*Simulation, error) {
	S := &Simulation{
		source:  source,
		nextpos: 1,
		frame: &Frame{
			Coords: v3.Zeros(source.Len()),
			Box:    make([]float64, 3),
		},
	}
	s := Selection{}
	if len(sel) > 0 {
		s = sel[0]
	}
	if err := S.SetSelection(s); err != nil {
		return nil, errDecorate(err, "NewSimulation")
	}
	return S, nil
}

// SetSelection replaces the frame selection and restarts the reading,
// so the next frame delivered is the first of the new selection.
// Zero-valued fields of the selection are replaced by their defaults.
// A Last beyond the end of the trajectory is not rejected here: the
// missing frames simply surface as the end-of-selection signal while
// iterating.
func (S *Simulation) SetSelection(sel Selection) error {
	S.mu.Lock()
	defer S.mu.Unlock()
	if sel.First == 0 {
		sel.First = 1
	}
	if sel.Step == 0 {
		sel.Step = 1
	}
	if sel.Last == 0 {
		sel.Last = S.source.Frames()
	}
	if sel.First < 1 || sel.Step < 1 || sel.Last < sel.First {
		return &OutOfRangeError{Frame: sel.Last, First: sel.First, Last: S.source.Frames()}
	}
	S.sel = sel
	return S.restart()
}

// Selection returns the current frame selection.
func (S *Simulation) Selection() Selection {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.sel
}

// Frames returns the total number of frames in the underlying
// trajectory, ignoring the selection.
func (S *Simulation) Frames() int {
	return S.source.Frames()
}

// SelectionLen returns the number of frames in the current selection.
func (S *Simulation) SelectionLen() int {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.sel.Len()
}

// Len returns the number of atoms per frame.
func (S *Simulation) Len() int {
	return S.source.Len()
}

// Readable returns true if the Simulation is fit to deliver frames.
func (S *Simulation) Readable() bool {
	return S.source.Readable()
}

// Restart rewinds the trajectory, so the next frame delivered is
// again the first of the selection.
func (S *Simulation) Restart() error {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.restart()
}

func (S *Simulation) restart() error {
	if err := S.source.Reopen(); err != nil {
		return errDecorate(err, "Simulation.Restart")
	}
	S.current = 0
	S.nextpos = 1
	return nil
}

// Next delivers the next frame of the selection, reading and
// discarding any intermediate frames. After the last frame of the
// selection it returns an error satisfying the LastFrameError
// interface, which signals the normal end of the reading.
func (S *Simulation) Next() (*Frame, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.next()
}

func (S *Simulation) next() (*Frame, error) {
	target := S.sel.First
	if S.current != 0 {
		target = S.current + S.sel.Step
	}
	if target > S.sel.Last {
		return nil, lastFrameError{fileName: S.path(), format: S.format()}
	}
	for S.nextpos < target {
		if err := S.source.Next(nil); err != nil {
			if LastFrame(err) {
				return nil, lastFrameError{fileName: S.path(), format: S.format()}
			}
			return nil, errDecorate(err, "Simulation.Next")
		}
		S.nextpos++
	}
	if err := S.source.Next(S.frame.Coords, S.frame.Box); err != nil {
		if LastFrame(err) {
			return nil, lastFrameError{fileName: S.path(), format: S.format()}
		}
		return nil, errDecorate(err, "Simulation.Next")
	}
	S.nextpos++
	S.current = target
	return S.frame, nil
}

// Current returns again the last frame delivered, without advancing
// the reading. It returns a NoFrameError if called before any frame
// has been read.
func (S *Simulation) Current() (*Frame, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	if S.current == 0 {
		return nil, &NoFrameError{}
	}
	return S.frame, nil
}

// CurrentIndex returns the 1-based index, in the whole trajectory, of
// the last frame delivered. It returns 0 if no frame has been read.
func (S *Simulation) CurrentIndex() int {
	S.mu.Lock()
	defer S.mu.Unlock()
	return S.current
}

// Goto delivers the frame with the given 1-based index, which must
// belong to the selection. As trajectory backends only read forward,
// going to a frame at or before the current one restarts the reading
// from the beginning of the file.
func (S *Simulation) Goto(i int) (*Frame, error) {
	S.mu.Lock()
	defer S.mu.Unlock()
	if !S.sel.Contains(i) {
		return nil, &OutOfRangeError{Frame: i, First: S.sel.First, Last: S.sel.Last}
	}
	if i <= S.current {
		if err := S.restart(); err != nil {
			return nil, errDecorate(err, "Simulation.Goto")
		}
	}
	for {
		f, err := S.next()
		if err != nil {
			return nil, errDecorate(err, "Simulation.Goto")
		}
		if S.current == i {
			return f, nil
		}
	}
}

// Close closes the underlying trajectory. The Simulation delivers no
// more frames after the call.
func (S *Simulation) Close() {
	S.mu.Lock()
	defer S.mu.Unlock()
	S.source.Close()
}

func (S *Simulation) path() string {
	if p, ok := S.source.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}

func (S *Simulation) format() string {
	if p, ok := S.source.(interface{ Format() string }); ok {
		return p.Format()
	}
	return ""
}
