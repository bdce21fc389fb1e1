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

// Package inmemory provides an append-only Merkle tree whose node hashes are
// stored in a single slice addressed by flat index.
package inmemory

import (
	"fmt"

	"github.com/google/flattree/merkle/flat"
	"github.com/transparency-dev/merkle"
	"github.com/transparency-dev/merkle/compact"
	"github.com/transparency-dev/merkle/proof"
)

// Tree implements an append-only Merkle tree. For testing.
type Tree struct {
	hasher merkle.LogHasher
	size   uint64
	nodes  [][]byte // Node hashes, indexed by flat index.
}

// New returns a new empty Merkle tree.
func New(hasher merkle.LogHasher) *Tree {
	return &Tree{hasher: hasher}
}

// AppendData adds the leaf hashes of the given entries to the end of the tree.
func (t *Tree) AppendData(entries ...[]byte) {
	for _, data := range entries {
		t.appendImpl(t.hasher.HashLeaf(data))
	}
}

// Append adds the given leaf hashes to the end of the tree.
func (t *Tree) Append(hashes ...[]byte) {
	for _, hash := range hashes {
		t.appendImpl(hash)
	}
}

func (t *Tree) appendImpl(hash []byte) {
	i := flat.Index(0, t.size)
	t.set(i, hash)
	// A right child completes its parent's subtree, the same way a carry
	// propagates through a binary counter.
	for flat.IsRight(i) {
		hash = t.hasher.HashChildren(t.nodes[flat.Sibling(i)], hash)
		i = flat.Parent(i)
		t.set(i, hash)
	}
	t.size++
}

func (t *Tree) set(i uint64, hash []byte) {
	if n := uint64(len(t.nodes)); i >= n {
		t.nodes = append(t.nodes, make([][]byte, i+1-n)...)
	}
	t.nodes[i] = hash
}

// Size returns the current number of leaves in the tree.
func (t *Tree) Size() uint64 {
	return t.size
}

// LeafHash returns the leaf hash at the given index.
// Requires 0 <= index < Size(), otherwise panics.
func (t *Tree) LeafHash(index uint64) []byte {
	return t.nodes[flat.Index(0, index)]
}

// Hash returns the current root hash of the tree.
func (t *Tree) Hash() []byte {
	return t.HashAt(t.size)
}

// HashAt returns the root hash at the given size.
// Requires 0 <= size <= Size(), otherwise panics.
func (t *Tree) HashAt(size uint64) []byte {
	if size == 0 {
		return t.hasher.EmptyRoot()
	}
	roots := flat.FullRoots(size)
	return t.foldRoots(roots)
}

// foldRoots hashes the given full roots from right to left into the root of
// the tree they span.
func (t *Tree) foldRoots(roots []uint64) []byte {
	hash := t.nodes[roots[len(roots)-1]]
	for i := len(roots) - 2; i >= 0; i-- {
		hash = t.hasher.HashChildren(t.nodes[roots[i]], hash)
	}
	return hash
}

// InclusionProof returns the inclusion proof for the given leaf index in the
// tree of the given size. Requires 0 <= index < size <= Size().
func (t *Tree) InclusionProof(index, size uint64) ([][]byte, error) {
	if index >= size || size > t.size {
		return nil, fmt.Errorf("index %d out of range for size %d, tree size %d", index, size, t.size)
	}
	roots := flat.FullRoots(size)
	leaf := flat.Index(0, index)
	k := 0
	for flat.RightSpan(roots[k]) < leaf {
		k++
	}

	var hashes [][]byte
	for node := leaf; node != roots[k]; node = flat.Parent(node) {
		hashes = append(hashes, t.nodes[flat.Sibling(node)])
	}
	if k+1 < len(roots) {
		hashes = append(hashes, t.foldRoots(roots[k+1:]))
	}
	for j := k - 1; j >= 0; j-- {
		hashes = append(hashes, t.nodes[roots[j]])
	}
	return hashes, nil
}

// ConsistencyProof returns the consistency proof between the two given tree
// sizes. Requires 0 <= size1 <= size2 <= Size().
func (t *Tree) ConsistencyProof(size1, size2 uint64) ([][]byte, error) {
	if size2 > t.size {
		return nil, fmt.Errorf("size %d exceeds tree size %d", size2, t.size)
	}
	nodes, err := proof.Consistency(size1, size2)
	if err != nil {
		return nil, err
	}
	return nodes.Rehash(t.getNodes(nodes.IDs), t.hasher.HashChildren)
}

func (t *Tree) getNodes(ids []compact.NodeID) [][]byte {
	hashes := make([][]byte, len(ids))
	for i, id := range ids {
		hashes[i] = t.nodes[flat.FromNodeID(id)]
	}
	return hashes
}
