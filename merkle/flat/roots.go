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
	"fmt"
	"iter"
	"math/bits"

	"github.com/transparency-dev/merkle/compact"
)

// FullRoots returns the roots of the perfect subtrees that exactly cover the
// first leaves leaves, ordered left to right. There is one root per bit set in
// leaves, and the highest bit comes first. For example, 5 leaves are covered
// by the root of leaves [0, 4) at index 3 and the single leaf 4 at index 8.
//
// FullRoots panics if leaves exceeds MaxLeaves.
func FullRoots(leaves uint64) []uint64 {
	return AppendFullRoots(make([]uint64, 0, bits.OnesCount64(leaves)), leaves)
}

// AppendFullRoots appends the full roots of the first leaves leaves to dst and
// returns the extended slice.
func AppendFullRoots(dst []uint64, leaves uint64) []uint64 {
	for root := range AllFullRoots(leaves) {
		dst = append(dst, root)
	}
	return dst
}

// AllFullRoots returns an iterator over the full roots of the first leaves
// leaves, in the same order as FullRoots.
func AllFullRoots(leaves uint64) iter.Seq[uint64] {
	if leaves > MaxLeaves {
		overflow("FullRoots", leaves)
	}
	return func(yield func(uint64) bool) {
		// Each set bit of the leaf count, from the top, is one perfect subtree
		// starting where the previous one ended.
		for pos, rest := uint64(0), leaves; rest != 0; {
			depth := uint(bits.Len64(rest)) - 1
			bit := uint64(1) << depth
			if !yield(Index(depth, pos>>depth)) {
				return
			}
			pos, rest = pos+bit, rest^bit
		}
	}
}

// RangeRoots returns the roots of the minimal set of perfect subtrees that
// exactly cover leaves [begin, end), ordered left to right. RangeRoots(0, n)
// equals FullRoots(n).
func RangeRoots(begin, end uint64) ([]uint64, error) {
	if begin > end || end > MaxLeaves {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, begin, end)
	}
	ids := compact.RangeNodes(begin, end, nil)
	roots := make([]uint64, 0, len(ids))
	for _, id := range ids {
		roots = append(roots, FromNodeID(id))
	}
	return roots, nil
}
