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

import "fmt"

// Parent returns the flat index of the parent of node i. Every node has a
// parent since the tree is unbounded upwards; only the top node at index
// math.MaxUint64 overflows, in which case Parent panics.
func Parent(i uint64) uint64 {
	d := Depth(i)
	if d >= MaxDepth {
		overflow("Parent", i)
	}
	return Index(d+1, offset(i, d)>>1)
}

// Sibling returns the flat index of the other child of i's parent. It panics
// if the sibling does not fit in a uint64, which happens from depth 63 up.
func Sibling(i uint64) uint64 {
	c := CoordOf(i)
	c.Offset ^= 1
	s, err := c.Index()
	if err != nil {
		overflow("Sibling", i)
	}
	return s
}

// Uncle returns the sibling of i's parent. It panics from depth 62 up, where
// that node does not fit in a uint64.
func Uncle(i uint64) uint64 {
	if Depth(i) >= MaxDepth-2 {
		overflow("Uncle", i)
	}
	return Sibling(Parent(i))
}

// IsLeft reports whether i is the left child of its parent.
func IsLeft(i uint64) bool {
	return Offset(i)&1 == 0
}

// IsRight reports whether i is the right child of its parent.
func IsRight(i uint64) bool {
	return !IsLeft(i)
}

// Children returns the left and right children of node i. It returns
// ErrLeafHasNoChildren if i is a leaf.
func Children(i uint64) (left, right uint64, err error) {
	if left, err = LeftChild(i); err != nil {
		return 0, 0, err
	}
	if right, err = RightChild(i); err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// LeftChild returns the left child of node i, or ErrLeafHasNoChildren if i is
// a leaf.
func LeftChild(i uint64) (uint64, error) {
	return child(i, 0)
}

// RightChild returns the right child of node i, or ErrLeafHasNoChildren if i
// is a leaf. The top node's right child is beyond uint64, which is reported
// as ErrOverflow.
func RightChild(i uint64) (uint64, error) {
	return child(i, 1)
}

func child(i, side uint64) (uint64, error) {
	c := CoordOf(i)
	if c.Depth == 0 {
		return 0, fmt.Errorf("%w: index %d", ErrLeafHasNoChildren, i)
	}
	return Coord{Depth: c.Depth - 1, Offset: c.Offset<<1 | side}.Index()
}
