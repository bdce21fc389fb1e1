// Copyright 2026 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flat

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// wantOverflow fails the test unless fn panics with an error wrapping
// ErrOverflow.
func wantOverflow(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if err, ok := r.(error); !ok || !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: got panic %v, want ErrOverflow", name, r)
		}
	}()
	fn()
}

func TestIndex(t *testing.T) {
	for _, tc := range []struct {
		depth  uint
		offset uint64
		want   uint64
	}{
		{depth: 0, offset: 0, want: 0},
		{depth: 1, offset: 0, want: 1},
		{depth: 0, offset: 1, want: 2},
		{depth: 2, offset: 0, want: 3},
		{depth: 0, offset: 2, want: 4},
		{depth: 1, offset: 1, want: 5},
		{depth: 1, offset: 2, want: 9},
		{depth: 1, offset: 3, want: 13},
		{depth: 2, offset: 1, want: 11},
		{depth: 2, offset: 2, want: 19},
		{depth: 3, offset: 0, want: 7},
		{depth: 3, offset: 1, want: 23},
		{depth: 0, offset: MaxLeaves - 1, want: math.MaxUint64 - 1},
		{depth: 62, offset: 1, want: math.MaxUint64 - 1<<62},
		{depth: 63, offset: 0, want: math.MaxUint64 >> 1},
		{depth: 64, offset: 0, want: math.MaxUint64},
	} {
		t.Run(fmt.Sprintf("%d:%d", tc.depth, tc.offset), func(t *testing.T) {
			if got := Index(tc.depth, tc.offset); got != tc.want {
				t.Errorf("Index(%d, %d): got %d, want %d", tc.depth, tc.offset, got, tc.want)
			}
		})
	}
}

func TestIndexOverflow(t *testing.T) {
	for _, c := range []Coord{
		{Depth: 0, Offset: MaxLeaves},
		{Depth: 0, Offset: math.MaxUint64},
		{Depth: 1, Offset: MaxLeaves >> 1},
		{Depth: 62, Offset: 2},
		{Depth: 63, Offset: 1},
		{Depth: 64, Offset: 1},
		{Depth: 65, Offset: 0},
		{Depth: 1000, Offset: 0},
	} {
		if _, err := c.Index(); !errors.Is(err, ErrOverflow) {
			t.Errorf("%v.Index(): got err %v, want ErrOverflow", c, err)
		}
		wantOverflow(t, fmt.Sprintf("Index%v", c), func() { Index(c.Depth, c.Offset) })
	}
}

func TestDepthOffset(t *testing.T) {
	for _, tc := range []struct {
		index  uint64
		depth  uint
		offset uint64
	}{
		{index: 0, depth: 0, offset: 0},
		{index: 1, depth: 1, offset: 0},
		{index: 2, depth: 0, offset: 1},
		{index: 3, depth: 2, offset: 0},
		{index: 4, depth: 0, offset: 2},
		{index: 5, depth: 1, offset: 1},
		{index: 23, depth: 3, offset: 1},
		{index: 27, depth: 2, offset: 3},
		{index: math.MaxUint64 - 1, depth: 0, offset: MaxLeaves - 1},
		{index: math.MaxUint64 >> 1, depth: 63, offset: 0},
		{index: math.MaxUint64, depth: 64, offset: 0},
	} {
		if got := Depth(tc.index); got != tc.depth {
			t.Errorf("Depth(%d): got %d, want %d", tc.index, got, tc.depth)
		}
		if got := Offset(tc.index); got != tc.offset {
			t.Errorf("Offset(%d): got %d, want %d", tc.index, got, tc.offset)
		}
		if got, want := CoordOf(tc.index), (Coord{Depth: tc.depth, Offset: tc.offset}); got != want {
			t.Errorf("CoordOf(%d): got %v, want %v", tc.index, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for depth := uint(0); depth <= 20; depth++ {
		for offset := uint64(0); offset < 300; offset++ {
			i := Index(depth, offset)
			if got := Depth(i); got != depth {
				t.Fatalf("Depth(Index(%d, %d)): got %d", depth, offset, got)
			}
			if got := Offset(i); got != offset {
				t.Fatalf("Offset(Index(%d, %d)): got %d", depth, offset, got)
			}
		}
	}
}

func TestRoundTripInverse(t *testing.T) {
	check := func(i uint64) {
		t.Helper()
		c := CoordOf(i)
		got, err := c.Index()
		if err != nil {
			t.Fatalf("%v.Index(): %v", c, err)
		}
		if got != i {
			t.Fatalf("Index(CoordOf(%d)): got %d", i, got)
		}
		// Even indices are exactly the leaves.
		if even, leaf := i%2 == 0, c.Depth == 0; even != leaf {
			t.Fatalf("index %d: even=%v but depth %d", i, even, c.Depth)
		}
		if c.Depth == 0 && c.Offset != i/2 {
			t.Fatalf("Offset(%d): got %d, want %d", i, c.Offset, i/2)
		}
	}
	for i := uint64(0); i < 1<<16; i++ {
		check(i)
	}
	for i := uint64(math.MaxUint64); i > math.MaxUint64-1<<16; i-- {
		check(i)
	}
}

func TestCoordString(t *testing.T) {
	if got, want := CoordOf(23).String(), "[3 1]"; got != want {
		t.Errorf("CoordOf(23).String(): got %q, want %q", got, want)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, i := range []uint64{0, 1, 2, 3, 23, 27, 10_000_000_000, math.MaxUint64 - 1, math.MaxUint64} {
		f.Add(i)
	}
	f.Fuzz(func(t *testing.T, i uint64) {
		c := CoordOf(i)
		got, err := c.Index()
		if err != nil {
			t.Fatalf("%v.Index(): %v", c, err)
		}
		if got != i {
			t.Errorf("Index(CoordOf(%d)): got %d", i, got)
		}
	})
}
