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

// LeftSpan returns the flat index of the leftmost leaf under node i. A leaf
// spans only itself.
func LeftSpan(i uint64) uint64 {
	c := CoordOf(i)
	return c.Offset << (c.Depth + 1)
}

// RightSpan returns the flat index of the rightmost leaf under node i. It
// panics for the top node, whose rightmost leaf is beyond uint64.
func RightSpan(i uint64) uint64 {
	c := CoordOf(i)
	if c.Depth >= MaxDepth {
		overflow("RightSpan", i)
	}
	// (offset+1)*2^(depth+1) may equal 2^64 and wrap to 0; the final result
	// still fits, so modular arithmetic gives the right answer.
	return (c.Offset+1)<<(c.Depth+1) - 2
}

// Spans returns the leftmost and rightmost leaves under node i.
func Spans(i uint64) (left, right uint64) {
	return LeftSpan(i), RightSpan(i)
}

// Count returns the number of nodes, leaves and internal, in the perfect
// subtree rooted at i. This is 2^(depth+1)-1, or equivalently
// RightSpan(i)-LeftSpan(i)+1.
func Count(i uint64) uint64 {
	d := Depth(i)
	if d >= MaxDepth {
		overflow("Count", i)
	}
	return uint64(2)<<d - 1
}

// CountLeaves returns the number of leaves under node i, which is 2^depth.
func CountLeaves(i uint64) uint64 {
	d := Depth(i)
	if d >= MaxDepth {
		overflow("CountLeaves", i)
	}
	return uint64(1) << d
}
