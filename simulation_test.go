/*
 * simulation_test.go, part of mdtools.
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
	"testing"

	"github.com/m3g/mdtools/v3"
)

// testTraj returns an in-memory trajectory of nframes frames of 3
// atoms, where every coordinate of frame k (1-based) has the value k.
func testTraj(t *testing.T, nframes int) *MemTraj {
	t.Helper()
	frames := make([]*Frame, 0, nframes)
	for k := 1; k <= nframes; k++ {
		c := v3.Zeros(3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				c.Set(i, j, float64(k))
			}
		}
		frames = append(frames, &Frame{Coords: c, Box: []float64{10, 10, 10}})
	}
	M, err := NewMemTraj(frames)
	if err != nil {
		t.Fatal(err)
	}
	return M
}

func frameValue(t *testing.T, f *Frame) float64 {
	t.Helper()
	v := f.Coords.At(0, 0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if f.Coords.At(i, j) != v {
				t.Fatalf("Frame with non-uniform coordinates: %v", f.Coords)
			}
		}
	}
	return v
}

func TestSimulationFullRead(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 5))
	if err != nil {
		t.Fatal(err)
	}
	read := []float64{}
	for {
		f, err := S.Next()
		if err != nil {
			if !LastFrame(err) {
				t.Fatal(err)
			}
			break
		}
		read = append(read, frameValue(t, f))
		//the orthorhombic cell lengths travel with each frame
		if len(f.Box) != 3 || f.Box[0] != 10 || f.Box[1] != 10 || f.Box[2] != 10 {
			t.Errorf("Wrong cell in frame %d: %v", len(read), f.Box)
		}
	}
	if len(read) != 5 {
		t.Fatalf("Read %d frames, expected 5", len(read))
	}
	for i, v := range read {
		if v != float64(i+1) {
			t.Errorf("Frame %d has value %f", i+1, v)
		}
	}
}

func TestSimulationSelection(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 5), Selection{First: 2, Step: 2, Last: 4})
	if err != nil {
		t.Fatal(err)
	}
	if S.SelectionLen() != 2 {
		t.Errorf("Wrong selection length: %d", S.SelectionLen())
	}
	want := []float64{2, 4}
	for _, w := range want {
		f, err := S.Next()
		if err != nil {
			t.Fatal(err)
		}
		if v := frameValue(t, f); v != w {
			t.Errorf("Got frame %f, expected %f", v, w)
		}
	}
	_, err = S.Next()
	if err == nil || !LastFrame(err) {
		t.Errorf("Expected the end-of-selection signal, got %v", err)
	}
	//the same selection should be readable again after a restart
	if err := S.Restart(); err != nil {
		t.Fatal(err)
	}
	f, err := S.Next()
	if err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, f); v != 2 {
		t.Errorf("After restart, got frame %f, expected 2", v)
	}
}

func TestSimulationCurrent(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := S.Current(); err == nil {
		t.Errorf("Current before any read should fail")
	} else if _, ok := err.(*NoFrameError); !ok {
		t.Errorf("Wrong error type for early Current: %v", err)
	}
	if S.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex before any read: %d", S.CurrentIndex())
	}
	if _, err := S.Next(); err != nil {
		t.Fatal(err)
	}
	f, err := S.Current()
	if err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, f); v != 1 {
		t.Errorf("Current returned frame %f, expected 1", v)
	}
	if S.CurrentIndex() != 1 {
		t.Errorf("Wrong CurrentIndex: %d", S.CurrentIndex())
	}
}

func TestSimulationGoto(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 10), Selection{First: 2, Step: 2, Last: 8})
	if err != nil {
		t.Fatal(err)
	}
	f, err := S.Goto(6)
	if err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, f); v != 6 {
		t.Errorf("Goto(6) delivered frame %f", v)
	}
	//backwards seeks restart the reading under the hood
	f, err = S.Goto(2)
	if err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, f); v != 2 {
		t.Errorf("Goto(2) delivered frame %f", v)
	}
	//frames outside the selection, even if in the trajectory
	for _, bad := range []int{1, 3, 9, 10, 11, 0} {
		if _, err := S.Goto(bad); err == nil {
			t.Errorf("Goto(%d) should have failed", bad)
		} else if _, ok := err.(*OutOfRangeError); !ok {
			t.Errorf("Wrong error type for Goto(%d): %v", bad, err)
		}
	}
	//the failed seeks should not have moved the reader
	if S.CurrentIndex() != 2 {
		t.Errorf("Failed Goto moved the reader to %d", S.CurrentIndex())
	}
}

func TestSimulationSetSelection(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := S.Next(); err != nil {
		t.Fatal(err)
	}
	if err := S.SetSelection(Selection{First: 3}); err != nil {
		t.Fatal(err)
	}
	f, err := S.Next()
	if err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, f); v != 3 {
		t.Errorf("After SetSelection, got frame %f, expected 3", v)
	}
	//a selection past the end of the trajectory is not an error: the
	//missing frames surface lazily as the end-of-selection signal
	if err := S.SetSelection(Selection{First: 4, Last: 9}); err != nil {
		t.Fatal(err)
	}
	read := 0
	for {
		_, err := S.Next()
		if err != nil {
			if !LastFrame(err) {
				t.Fatal(err)
			}
			break
		}
		read++
	}
	if read != 2 {
		t.Errorf("Read %d frames of a clipped selection, expected 2", read)
	}
	if err := S.SetSelection(Selection{First: 4, Last: 2}); err == nil {
		t.Errorf("Empty selection should be rejected")
	}
}

func TestSimulationConcurrentNext(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 50), Selection{First: 5, Step: 3, Last: 47})
	if err != nil {
		t.Fatal(err)
	}
	//several goroutines pull from the same iterator; the mutex must
	//hand each selected frame to exactly one of them
	const workers = 4
	counts := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for {
				_, err := S.Next()
				if err != nil {
					if !LastFrame(err) {
						t.Errorf("Unexpected error under concurrency: %v", err)
					}
					return
				}
				counts[w]++
			}
		}(w)
	}
	wg.Wait()
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != S.SelectionLen() {
		t.Errorf("Concurrent readers got %d frames in total, expected %d", total, S.SelectionLen())
	}
	//the index settles on the last frame of the selection
	if S.CurrentIndex() != 47 {
		t.Errorf("Wrong final index after concurrent reads: %d", S.CurrentIndex())
	}
}

func TestFrameClone(t *testing.T) {
	S, err := NewSimulation(testTraj(t, 3))
	if err != nil {
		t.Fatal(err)
	}
	f, err := S.Next()
	if err != nil {
		t.Fatal(err)
	}
	kept := f.Clone()
	if _, err := S.Next(); err != nil {
		t.Fatal(err)
	}
	if v := frameValue(t, kept); v != 1 {
		t.Errorf("Cloned frame changed after the next read: %f", v)
	}
	//the reusable buffer, on the other hand, is overwritten
	if v := frameValue(t, f); v != 2 {
		t.Errorf("Buffer frame not overwritten by the next read: %f", v)
	}
}
