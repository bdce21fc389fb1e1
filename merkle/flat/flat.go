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

// Package flat numbers the nodes of an infinite binary tree so that a tree, or
// a forest of perfect trees, can be stored in a single flat array.
//
// Leaves take the even positions and every parent sits between its two
// subtrees, so a node at (depth, offset) lives at (2*offset+1)*2^depth - 1:
//
//	                  7
//	          3               11
//	      1       5       9       13
//	    0   2   4   6   8   10  12  14
//
// All functions are pure and safe for concurrent use. Indices and offsets are
// uint64. A result that does not fit in a uint64 is never wrapped: functions
// with a plain result panic with an error wrapping ErrOverflow, and functions
// that return an error report it through that error instead.
package flat

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

const (
	// MaxDepth is the largest depth of any node. Only the index math.MaxUint64
	// has this depth.
	MaxDepth = 64
	// MaxLeaves is the largest number of leaves whose flat indices fit in a
	// uint64. The last such leaf lives at index math.MaxUint64-1.
	MaxLeaves = uint64(1) << 63
)

var (
	// ErrOverflow is wrapped by every failure caused by a result that does not
	// fit in a uint64.
	ErrOverflow = errors.New("flat: index overflows uint64")
	// ErrLeafHasNoChildren is returned when children of a leaf are requested.
	ErrLeafHasNoChildren = errors.New("flat: leaf has no children")
	// ErrInvalidRange is returned for a leaf range that is reversed or exceeds
	// MaxLeaves.
	ErrInvalidRange = errors.New("flat: invalid leaf range")
)

// Coord is the (depth, offset) position of a tree node. Depth 0 is the leaf
// level, and Offset counts nodes of the same depth from left to right.
type Coord struct {
	Depth  uint
	Offset uint64
}

// CoordOf returns the coordinate of the node at flat index i.
func CoordOf(i uint64) Coord {
	d := Depth(i)
	return Coord{Depth: d, Offset: offset(i, d)}
}

// Index returns the flat index of the coordinate, or an error wrapping
// ErrOverflow if it does not fit in a uint64.
func (c Coord) Index() (uint64, error) {
	if c.Depth > MaxDepth || c.Offset > math.MaxUint64>>(c.Depth+1) {
		return 0, fmt.Errorf("%w: coordinate %v", ErrOverflow, c)
	}
	// (2*offset+1)*2^depth - 1, with the top node relying on 1<<64 == 0.
	return c.Offset<<(c.Depth+1) | (uint64(1)<<c.Depth - 1), nil
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d %d]", c.Depth, c.Offset)
}

// Index returns the flat index of the node at the given depth and offset. It
// panics if the index does not fit in a uint64.
func Index(depth uint, offset uint64) uint64 {
	i, err := Coord{Depth: depth, Offset: offset}.Index()
	if err != nil {
		panic(err)
	}
	return i
}

// Depth returns the depth of the node at flat index i, which is the number of
// trailing one bits of i.
func Depth(i uint64) uint {
	return uint(bits.TrailingZeros64(^i))
}

// Offset returns the left-to-right position of the node at flat index i among
// the nodes of its depth.
func Offset(i uint64) uint64 {
	if i&1 == 0 {
		return i >> 1
	}
	return offset(i, Depth(i))
}

func offset(i uint64, depth uint) uint64 {
	// Shifting by 65 for the top node yields 0, which is its offset.
	return i >> (depth + 1)
}

// overflow panics with an error wrapping ErrOverflow.
func overflow(op string, i uint64) {
	panic(fmt.Errorf("%w: %s(%d)", ErrOverflow, op, i))
}
