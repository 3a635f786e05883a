/*
 * xyz.go, part of mdtools.
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

// Package xyz implements reading and writing of multi-frame XYZ
// files, which may be compressed with gzip or zstd (selected by the
// file extension).
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/m3g/mdtools/v3"
)

// XYZObj reads a multi-frame XYZ trajectory, one frame at a time. It
// implements the md.FrameSource interface. The number of atoms is
// taken from the first frame, and every frame must have the same
// number of atoms.
type XYZObj struct {
	natoms     int
	frames     int
	filename   string
	xyz        *bufio.Reader
	fh         *os.File
	unzipper   io.Closer //nil for plain files
	readable   bool
	firstFrame []string //the atom names of the first frame
}

// New opens the XYZ trajectory in filename, counts its frames, and
// leaves it ready to be read from the first frame. Files ending in
// .gz or .zst are transparently decompressed.
func New(filename string) (*XYZObj, error) {
	X := &XYZObj{filename: filename}
	if err := X.open(); err != nil {
		return nil, errDecorate(err, "New")
	}
	//A first pass over the whole file to learn the number of atoms
	//and frames. XYZ has no index, so there is no cheaper way.
	natoms, err := X.readHeader()
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	X.natoms = natoms
	X.firstFrame = make([]string, 0, natoms)
	for i := 0; i < natoms; i++ {
		line, err := X.xyz.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, Error{err.Error(), filename, []string{"New"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("%s: atom line with %d fields", WrongFormat, len(fields)), filename, []string{"New"}, true}
		}
		X.firstFrame = append(X.firstFrame, fields[0])
	}
	X.frames = 1
	for {
		err := X.skipFrame()
		if err != nil {
			if _, ok := err.(lastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "New")
		}
		X.frames++
	}
	if err := X.Reopen(); err != nil {
		return nil, errDecorate(err, "New")
	}
	return X, nil
}

func (X *XYZObj) open() error {
	fh, err := os.Open(X.filename)
	if err != nil {
		return Error{err.Error(), X.filename, []string{"open"}, true}
	}
	X.fh = fh
	X.unzipper = nil
	var reader io.Reader = fh
	switch {
	case strings.HasSuffix(X.filename, ".gz"):
		gz, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return Error{err.Error(), X.filename, []string{"open"}, true}
		}
		X.unzipper = gz
		reader = gz
	case strings.HasSuffix(X.filename, ".zst"):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			fh.Close()
			return Error{err.Error(), X.filename, []string{"open"}, true}
		}
		ior := zr.IOReadCloser()
		X.unzipper = ior
		reader = ior
	}
	X.xyz = bufio.NewReader(reader)
	X.readable = true
	return nil
}

// Readable returns true if the trajectory is fit to be read.
func (X *XYZObj) Readable() bool {
	return X.readable
}

// Len returns the number of atoms per frame.
func (X *XYZObj) Len() int {
	return X.natoms
}

// Frames returns the total number of frames in the file.
func (X *XYZObj) Frames() int {
	return X.frames
}

// Path returns the name of the file read.
func (X *XYZObj) Path() string {
	return X.filename
}

// Format returns the format of the trajectory, i.e. "xyz".
func (X *XYZObj) Format() string {
	return "xyz"
}

// AtomNames returns the atom names found in the first frame of the
// file, in order.
func (X *XYZObj) AtomNames() []string {
	return X.firstFrame
}

// Next reads the next frame into output, which must have one row per
// atom. A nil output skips the frame. XYZ files carry no unit-cell
// information, so any box slice given is left untouched.
func (X *XYZObj) Next(output *v3.Matrix, box ...[]float64) error {
	if !X.readable {
		return Error{TrajUnIni, X.filename, []string{"Next"}, true}
	}
	if output == nil {
		err := X.skipFrame()
		if err != nil {
			X.readable = false
			return errDecorate(err, "Next")
		}
		return nil
	}
	if output.NVecs() != X.natoms {
		return Error{fmt.Sprintf("%s: output has %d rows, frame has %d atoms", WrongFormat, output.NVecs(), X.natoms), X.filename, []string{"Next"}, true}
	}
	natoms, err := X.readHeader()
	if err != nil {
		X.readable = false
		return errDecorate(err, "Next")
	}
	if natoms != X.natoms {
		X.readable = false
		return Error{fmt.Sprintf("%s: frame with %d atoms, expected %d", WrongFormat, natoms, X.natoms), X.filename, []string{"Next"}, true}
	}
	for i := 0; i < X.natoms; i++ {
		line, err := X.xyz.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			X.readable = false
			return Error{fmt.Sprintf("%s: %v", WrongFormat, err), X.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			X.readable = false
			return Error{fmt.Sprintf("%s: atom line with %d fields", WrongFormat, len(fields)), X.filename, []string{"Next"}, true}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				X.readable = false
				return Error{fmt.Sprintf("%s: %v", WrongFormat, err), X.filename, []string{"Next"}, true}
			}
			output.Set(i, j, v)
		}
	}
	return nil
}

// readHeader reads the number-of-atoms line and the comment line of
// the next frame. It returns a lastFrameError on a clean EOF.
func (X *XYZObj) readHeader() (int, error) {
	line, err := X.xyz.ReadString('\n')
	if strings.TrimSpace(line) == "" {
		return 0, newlastFrameError(X.filename)
	}
	if err != nil && err != io.EOF {
		return 0, Error{err.Error(), X.filename, []string{"readHeader"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, Error{fmt.Sprintf("%s: malformed atom-count line: %v", WrongFormat, err), X.filename, []string{"readHeader"}, true}
	}
	if _, err := X.xyz.ReadString('\n'); err != nil && err != io.EOF {
		return 0, Error{err.Error(), X.filename, []string{"readHeader"}, true}
	}
	return natoms, nil
}

func (X *XYZObj) skipFrame() error {
	natoms, err := X.readHeader()
	if err != nil {
		return err
	}
	for i := 0; i < natoms; i++ {
		if _, err := X.xyz.ReadString('\n'); err != nil && err != io.EOF {
			return Error{err.Error(), X.filename, []string{"skipFrame"}, true}
		}
	}
	return nil
}

// Reopen closes and reopens the file, so the next read returns the
// first frame again.
func (X *XYZObj) Reopen() error {
	X.Close()
	if err := X.open(); err != nil {
		return errDecorate(err, "Reopen")
	}
	return nil
}

// Close closes the file and the decompressor, if any. The trajectory
// is not readable after the call, but can be rewound with Reopen.
func (X *XYZObj) Close() {
	if X.unzipper != nil {
		X.unzipper.Close()
		X.unzipper = nil
	}
	if X.fh != nil {
		X.fh.Close()
		X.fh = nil
	}
	X.readable = false
}
