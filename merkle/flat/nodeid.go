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

import "github.com/transparency-dev/merkle/compact"

// ToNodeID returns the compact.NodeID addressing the same node as flat index i.
// A NodeID's level is the node's depth and its index is the node's offset.
func ToNodeID(i uint64) compact.NodeID {
	c := CoordOf(i)
	return compact.NewNodeID(c.Depth, c.Offset)
}

// FromNodeID returns the flat index of the node addressed by id. It panics if
// the index does not fit in a uint64.
func FromNodeID(id compact.NodeID) uint64 {
	return Index(id.Level, id.Index)
}
