/*
 * errors.go, part of mdtools.
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

// CError is the concrete implementation of the Error interface used
// for most errors in this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of the error
// and returns the resulting slice. Pass an empty string to only
// retrieve the current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the name of the caller. If err does
// not implement the Error interface it is wrapped in a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}

// simError is the TrajError implementation for failures while
// iterating over a trajectory.
type simError struct {
	message  string
	filename string
	format   string
	critical bool
	deco     []string
}

func (err simError) Error() string {
	return fmt.Sprintf("trajectory %s error: %s", err.filename, err.message)
}

func (err simError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err simError) FileName() string { return err.filename }

func (err simError) Format() string { return err.format }

func (err simError) Critical() bool { return err.critical }

// lastFrameError signals the normal termination of a trajectory, or
// of the selected part of it. It satisfies the LastFrameError
// interface, so callers can tell it apart from actual problems.
type lastFrameError struct {
	fileName string
	format   string
	deco     []string
}

// NormalLastFrameTermination does nothing. It is there so the
// lastFrameError satisfies the LastFrameError interface.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Format() string { return E.format }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

// LastFrame returns true if err signals the normal termination of a
// trajectory (or of the part of it selected for reading) rather than
// an actual reading problem.
func LastFrame(err error) bool {
	_, ok := err.(LastFrameError)
	return ok
}

// OutOfRangeError reports a request for a frame that is not part of
// the current selection.
type OutOfRangeError struct {
	Frame       int
	First, Last int
	deco        []string
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("frame %d is not in the selection %d:%d", err.Frame, err.First, err.Last)
}

func (err *OutOfRangeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// NoFrameError reports a query for the current frame before any frame
// has been read, or after the reader failed.
type NoFrameError struct {
	deco []string
}

func (err *NoFrameError) Error() string {
	return "no frame has been read yet"
}

func (err *NoFrameError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ShapeError reports a mismatch between the dimensions of a
// coordinate matrix and the number of atoms it should hold.
type ShapeError struct {
	Rows, Atoms int
	deco        []string
}

func (err *ShapeError) Error() string {
	return fmt.Sprintf("matrix with %d rows cannot hold a frame of %d atoms", err.Rows, err.Atoms)
}

func (err *ShapeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
