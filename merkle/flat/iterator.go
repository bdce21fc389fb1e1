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

// Iterator is a cursor over the flat tree. It caches the depth and offset of
// the current node so that repeated moves avoid recomputing them. An Iterator
// must not be shared between goroutines.
type Iterator struct {
	index uint64
	c     Coord
}

// NewIterator returns an Iterator positioned at flat index i.
func NewIterator(i uint64) *Iterator {
	it := &Iterator{}
	it.Seek(i)
	return it
}

// Seek moves the cursor to flat index i.
func (it *Iterator) Seek(i uint64) {
	it.index = i
	it.c = CoordOf(i)
}

// Index returns the flat index of the current node.
func (it *Iterator) Index() uint64 { return it.index }

// Depth returns the depth of the current node.
func (it *Iterator) Depth() uint { return it.c.Depth }

// Offset returns the offset of the current node.
func (it *Iterator) Offset() uint64 { return it.c.Offset }

// IsLeft reports whether the current node is a left child.
func (it *Iterator) IsLeft() bool { return it.c.Offset&1 == 0 }

// IsRight reports whether the current node is a right child.
func (it *Iterator) IsRight() bool { return !it.IsLeft() }

func (it *Iterator) moveTo(c Coord) uint64 {
	it.index = Index(c.Depth, c.Offset)
	it.c = c
	return it.index
}

// Next moves to the next node at the same depth and returns its index. It
// panics with ErrOverflow if the current node is the last one at its depth.
func (it *Iterator) Next() uint64 {
	return it.moveTo(Coord{Depth: it.c.Depth, Offset: it.c.Offset + 1})
}

// Prev moves to the previous node at the same depth and returns its index. It
// stays in place at offset 0.
func (it *Iterator) Prev() uint64 {
	if it.c.Offset == 0 {
		return it.index
	}
	return it.moveTo(Coord{Depth: it.c.Depth, Offset: it.c.Offset - 1})
}

// Parent moves to the parent and returns its index. It panics with
// ErrOverflow at the top node.
func (it *Iterator) Parent() uint64 {
	if it.c.Depth >= MaxDepth {
		overflow("Parent", it.index)
	}
	return it.moveTo(Coord{Depth: it.c.Depth + 1, Offset: it.c.Offset >> 1})
}

// Sibling moves to the sibling and returns its index. It panics with
// ErrOverflow from depth 63 up, where the sibling does not fit in a uint64.
func (it *Iterator) Sibling() uint64 {
	if it.IsLeft() {
		return it.Next()
	}
	return it.Prev()
}

// Uncle moves to the parent's sibling and returns its index. It panics with
// ErrOverflow from depth 62 up, leaving the cursor in place.
func (it *Iterator) Uncle() uint64 {
	if it.c.Depth >= MaxDepth-2 {
		overflow("Uncle", it.index)
	}
	it.Parent()
	return it.Sibling()
}

// LeftChild moves to the left child and returns its index. The cursor stays
// in place if the current node is a leaf.
func (it *Iterator) LeftChild() (uint64, error) {
	return it.child(LeftChild)
}

// RightChild moves to the right child and returns its index. The cursor stays
// in place if the current node is a leaf or the child overflows.
func (it *Iterator) RightChild() (uint64, error) {
	return it.child(RightChild)
}

func (it *Iterator) child(fn func(uint64) (uint64, error)) (uint64, error) {
	i, err := fn(it.index)
	if err != nil {
		return it.index, err
	}
	it.Seek(i)
	return i, nil
}

// LeftSpan moves to the leftmost leaf under the current node and returns its
// index.
func (it *Iterator) LeftSpan() uint64 {
	it.Seek(LeftSpan(it.index))
	return it.index
}

// RightSpan moves to the rightmost leaf under the current node and returns
// its index. It panics with ErrOverflow at the top node.
func (it *Iterator) RightSpan() uint64 {
	it.Seek(RightSpan(it.index))
	return it.index
}

// Contains reports whether node i belongs to the subtree rooted at the
// current node.
func (it *Iterator) Contains(i uint64) bool {
	if it.c.Depth >= MaxDepth {
		return true
	}
	left, right := Spans(it.index)
	return left <= i && i <= right
}

// CountNodes returns the number of nodes under the current node, itself
// included.
func (it *Iterator) CountNodes() uint64 { return Count(it.index) }

// CountLeaves returns the number of leaves under the current node.
func (it *Iterator) CountLeaves() uint64 { return CountLeaves(it.index) }
