/*
 * xyz_write.go, part of mdtools.
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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/m3g/mdtools/v3"
)

// Writer writes a multi-frame XYZ trajectory, one frame at a time.
// Files ending in .gz or .zst are transparently compressed.
type Writer struct {
	names    []string
	filename string
	out      *bufio.Writer
	fh       *os.File
	zipper   io.WriteCloser //nil for plain files
	frames   int
}

// NewWriter creates the file filename and returns a Writer that will
// put in it frames of len(names) atoms, with the given atom names.
func NewWriter(filename string, names []string) (*Writer, error) {
	fh, err := os.Create(filename)
	if err != nil {
		return nil, Error{err.Error(), filename, []string{"NewWriter"}, true}
	}
	W := &Writer{names: names, filename: filename, fh: fh}
	var w io.Writer = fh
	switch {
	case strings.HasSuffix(filename, ".gz"):
		W.zipper = gzip.NewWriter(fh)
		w = W.zipper
	case strings.HasSuffix(filename, ".zst"):
		zw, err := zstd.NewWriter(fh)
		if err != nil {
			fh.Close()
			return nil, Error{err.Error(), filename, []string{"NewWriter"}, true}
		}
		W.zipper = zw
		w = W.zipper
	}
	W.out = bufio.NewWriter(w)
	return W, nil
}

// WNext writes coord as the next frame of the trajectory, with an
// optional comment on the second line of the frame.
func (W *Writer) WNext(coord *v3.Matrix, comment ...string) error {
	if W.out == nil {
		return Error{TrajUnIni, W.filename, []string{"WNext"}, true}
	}
	if coord.NVecs() != len(W.names) {
		return Error{fmt.Sprintf("%s: %d coordinates for %d atoms", WrongFormat, coord.NVecs(), len(W.names)), W.filename, []string{"WNext"}, true}
	}
	com := ""
	if len(comment) > 0 {
		com = comment[0]
	}
	if _, err := fmt.Fprintf(W.out, "%d\n%s\n", len(W.names), com); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	for i, name := range W.names {
		_, err := fmt.Fprintf(W.out, "%-3s %12.6f %12.6f %12.6f\n", name, coord.At(i, 0), coord.At(i, 1), coord.At(i, 2))
		if err != nil {
			return Error{err.Error(), W.filename, []string{"WNext"}, true}
		}
	}
	W.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

// Close flushes the pending writes and closes the file. The Writer
// cannot be used after the call.
func (W *Writer) Close() error {
	if W.out == nil {
		return nil
	}
	if err := W.out.Flush(); err != nil {
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	if W.zipper != nil {
		if err := W.zipper.Close(); err != nil {
			return Error{err.Error(), W.filename, []string{"Close"}, true}
		}
	}
	err := W.fh.Close()
	W.out = nil
	if err != nil {
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	return nil
}
