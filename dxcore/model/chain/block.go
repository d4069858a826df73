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

// Package chain builds chains of unit cubes from a stream of direction tokens
// and reports, for every block, where it sits and how its joint can pivot.
//
// A chain is singly linked: each block attaches face-to-face to the block
// before it. The direction token names the face of the previous block the
// new block grows from, and the new block's own attachment face is always
// the opposite one. Blocks are stored in a single arena (Chain.blocks) and
// know their neighbours only through their Parent and Child sides, so there
// are no pointer cycles between blocks.
//
// A built Chain is immutable and safe for concurrent readers.
package chain

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"gopkg.in/yaml.v3"
)

// Block is one unit cube of a chain.
//
// Coord is the absolute position of the block. Parent is the face of this
// block that touches its predecessor and is unset only for the root. Child
// is the face of this block that touches its successor and is unset for the
// last block of a chain.
//
// For two adjacent blocks p and c the reciprocal-face invariant holds:
// p.Child is c.Parent.Opposite().
type Block struct {
	Coord  geom.Vec3 `json:"coord" yaml:"coord"`
	Parent geom.Side `json:"parent" yaml:"parent"`
	Child  geom.Side `json:"child" yaml:"child"`
}

// NewRoot returns a block at coord with neither side attached.
func NewRoot(coord geom.Vec3) Block {
	return Block{Coord: coord}
}

// AttachChild grows a new block out of face direction of parent.
//
// The new block sits at parent.Coord + direction.Vector() and its Parent side
// is direction.Opposite(); parent.Child is set to direction. A direction
// outside 0..5 returns ErrInvalidFaceIndex and leaves parent untouched.
//
// Example usage:
//
//	root := chain.NewRoot(geom.Vec3{})
//	next, err := chain.AttachChild(&root, geom.Up)
//	// next.Coord = (0, 1, 0), next.Parent = D, root.Child = U
func AttachChild(parent *Block, direction geom.Face) (Block, error) {
	if err := direction.Validate(); err != nil {
		return Block{}, fmt.Errorf("%w: %w", ErrInvalidFaceIndex, err)
	}

	parent.Child = geom.SideOf(direction)
	return Block{
		Coord:  parent.Coord.Add(direction.Vector()),
		Parent: geom.SideOf(direction.Opposite()),
	}, nil
}

// Rotation reports the free pivot axes of the block's joint.
//
// The second result is false when the block has no parent, no child, or when
// its two attachment faces are axis-mates ((parent - child) mod 3 == 0), in
// which case the chain runs straight through the block and there is nothing
// to pivot. Otherwise each set of the returned Rotation holds the four faces
// off one attachment axis.
func (b Block) Rotation() (Rotation, bool) {
	parent, ok := b.Parent.Face()
	if !ok {
		return Rotation{}, false
	}
	child, ok := b.Child.Face()
	if !ok {
		return Rotation{}, false
	}
	if parent.SameAxis(child) {
		return Rotation{}, false
	}

	return Rotation{
		Parent: geom.AllFaceSet.Without(parent.AxisFaces()),
		Child:  geom.AllFaceSet.Without(child.AxisFaces()),
	}, true
}

// Compile-time assertion that Block implements model.Model.
var _ model.Model = (*Block)(nil)

// String renders the block as "(x, y, z) parent>child".
func (b Block) String() string {
	return fmt.Sprintf("%s %s>%s", b.Coord, b.Parent, b.Child)
}

// Redacted returns the same value as String.
func (b Block) Redacted() string {
	return b.String()
}

// TypeName returns "Block".
func (b Block) TypeName() string {
	return "Block"
}

// IsZero reports whether the block is an unattached block at the origin.
func (b Block) IsZero() bool {
	return b.Coord.IsZero() && b.Parent.IsZero() && b.Child.IsZero()
}

// Equal reports whether both blocks have the same position and sides.
func (b Block) Equal(other Block) bool {
	return b.Coord == other.Coord && b.Parent.Equal(other.Parent) && b.Child.Equal(other.Child)
}

// Validate checks the two sides on their own. Parent and Child may name the
// same face: a chain that doubles back ("S", "U", "D") leaves its middle
// block that way. Relations between adjacent blocks are checked by
// Chain.Validate.
func (b Block) Validate() error {
	if err := b.Parent.Validate(); err != nil {
		return fmt.Errorf("Block.Parent: %w", err)
	}
	if err := b.Child.Validate(); err != nil {
		return fmt.Errorf("Block.Child: %w", err)
	}
	return nil
}

// MarshalJSON validates and encodes the block.
func (b Block) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}

	type blockJSON Block
	return json.Marshal(blockJSON(b))
}

// UnmarshalJSON decodes and validates the block.
func (b *Block) UnmarshalJSON(data []byte) error {
	type blockJSON Block
	var temp blockJSON

	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal Block: %w", err)
	}

	*b = Block(temp)

	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid Block after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML validates and encodes the block.
func (b Block) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}

	type blockYAML Block
	return blockYAML(b), nil
}

// UnmarshalYAML decodes and validates the block.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	type blockYAML Block
	var temp blockYAML

	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Block: %w", err)
	}

	*b = Block(temp)

	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid Block after unmarshal: %w", err)
	}
	return nil
}
