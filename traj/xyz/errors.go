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

package xyz

import "fmt"

// Error implements the md.TrajError interface for errors reading or
// writing XYZ files.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
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

// FileName returns the name of the file on which the error occurred.
func (err Error) FileName() string { return err.filename }

// Format returns "xyz".
func (err Error) Format() string { return "xyz" }

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// Typical error messages.
const (
	TrajUnIni   = "Trajectory not initialized, or closed"
	WrongFormat = "Wrong format in the XYZ file or frame"
)

// lastFrameError signals the clean end of the file. It satisfies the
// md.LastFrameError interface.
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing. It is there so
// lastFrameError satisfies the md.LastFrameError interface.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "xyz" }

func (E lastFrameError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

func newlastFrameError(filename string) lastFrameError {
	return lastFrameError{fileName: filename}
}

// errDecorate decorates the error with the name of the caller, if the
// error supports decoration.
func errDecorate(err error, caller string) error {
	type decorable interface {
		Decorate(string) []string
	}
	if err2, ok := err.(decorable); ok {
		err2.Decorate(caller)
		return err
	}
	return Error{err.Error(), "", []string{caller}, true}
}
