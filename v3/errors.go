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

package v3

// Error implements the error interface for the v3 package, with
// support for the decoration of errors as they travel up the call
// stack.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return err.message
}

// Decorate adds the dec string to the decoration slice of the error
// and returns the resulting slice. Pass an empty string to only
// retrieve the current decoration.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool {
	return err.critical
}

// PanicMsg is the type used for the messages of the panics thrown by
// v3 functions, most of which come from shape mismatches.
type PanicMsg string

func (v PanicMsg) Error() string {
	return string(v)
}

const (
	ErrNotXx3Matrix    = PanicMsg("v3: Matrix must have 3 columns")
	ErrNoCrossProduct  = PanicMsg("v3: Invalid matrix for cross product")
	ErrShape           = PanicMsg("v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("v3: Index out of range")
	ErrVecLength       = PanicMsg("v3: A 1x3 matrix was expected")
)
