/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package chain

import (
	"iter"

	"dirpx.dev/dxjoint/dxcore/model/geom"
)

// Entry is the description of one block, as produced by Chain.Describe.
type Entry struct {
	// Index is the position of the block in the chain, 0 for the root.
	Index int

	// Incoming is the block's own parent-side face; unset for the root.
	Incoming geom.Side

	// Coord is the absolute position of the block.
	Coord geom.Vec3

	// Rotation holds the free pivot axes; it is meaningful only when
	// Rotatable is true.
	Rotation Rotation

	// Rotatable reports whether the block is an elbow joint.
	Rotatable bool
}

// Label returns StartMarker for the root and the Incoming face label for
// every other block.
func (e Entry) Label() string {
	if f, ok := e.Incoming.Face(); ok {
		return f.String()
	}
	return StartMarker
}

// Direction returns the face of the previous block this block grew out of,
// the opposite of Incoming. It is unset for the root.
func (e Entry) Direction() geom.Side {
	return e.Incoming.Opposite()
}

// String renders the entry as "<label> <coord>" followed by " <rotation>"
// for elbow joints, for example "D (0, 1, 0) FRBL & URDL".
func (e Entry) String() string {
	s := e.Label() + " " + e.Coord.String()
	if e.Rotatable {
		s += " " + e.Rotation.String()
	}
	return s
}

// Describe iterates over one Entry per block in chain order. It only reads
// the chain and may be ranged over any number of times.
func (c *Chain) Describe() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, b := range c.blocks {
			rot, ok := b.Rotation()
			e := Entry{
				Index:     i,
				Incoming:  b.Parent,
				Coord:     b.Coord,
				Rotation:  rot,
				Rotatable: ok,
			}
			if !yield(e) {
				return
			}
		}
	}
}
