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
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Chain is an ordered sequence of blocks, index 0 being the root at the
// origin.
//
// A Chain is produced by Build (or FromMoves, or by unmarshaling a validated
// serialized chain) and is never modified afterwards. All methods are read
// only and safe for concurrent use.
//
// Two blocks of a chain may occupy the same coordinate; self-overlap is not
// an error.
type Chain struct {
	blocks []Block
}

// Build consumes a token stream and constructs the chain it describes.
//
// The first token must be StartMarker; it creates the root block at (0, 0, 0).
// Every following token must be a face label and attaches a new block to the
// face it names on the most recently created block.
//
// Build returns ErrMissingStartMarker when the stream is empty or starts with
// anything else, and an *InvalidDirectionError for the first token that is
// not a face label. The stream is consumed once, in order, and abandoned at
// the first error; no partially built chain is ever returned.
//
// Example usage:
//
//	c, err := chain.Build(slices.Values([]string{"S", "U", "F", "R"}))
//	// c.Len() = 4, last block at (1, 1, 1)
func Build(tokens iter.Seq[string]) (*Chain, error) {
	var blocks []Block
	pos := 0

	for tok := range tokens {
		pos++
		if pos == 1 {
			if tok != StartMarker {
				return nil, ErrMissingStartMarker
			}
			blocks = append(blocks, NewRoot(geom.Vec3{}))
			continue
		}

		dir, err := geom.ParseFace(tok)
		if err != nil {
			return nil, &InvalidDirectionError{Position: pos, Token: tok, Err: err}
		}

		next, err := AttachChild(&blocks[len(blocks)-1], dir)
		if err != nil {
			return nil, fmt.Errorf("attach block %d: %w", len(blocks), err)
		}
		blocks = append(blocks, next)
	}

	if len(blocks) == 0 {
		return nil, ErrMissingStartMarker
	}
	return &Chain{blocks: blocks}, nil
}

// FromMoves builds the chain whose blocks grow out of the given faces in
// order, as if the stream were StartMarker followed by their labels.
func FromMoves(moves []geom.Face) (*Chain, error) {
	return Build(Tokens(moves))
}

// Tokens returns the token stream describing moves: StartMarker followed by
// one label per face.
func Tokens(moves []geom.Face) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(StartMarker) {
			return
		}
		for _, f := range moves {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// Len returns the number of blocks, root included.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Block returns the i-th block. It panics if i is out of range.
func (c *Chain) Block(i int) Block {
	return c.blocks[i]
}

// Blocks iterates over the blocks in chain order.
func (c *Chain) Blocks() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i, b := range c.blocks {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Moves returns the direction each non-root block was attached along, that
// is the Child face of its predecessor.
func (c *Chain) Moves() []geom.Face {
	moves := make([]geom.Face, 0, max(len(c.blocks)-1, 0))
	for _, b := range c.blocks[:max(len(c.blocks)-1, 0)] {
		if f, ok := b.Child.Face(); ok {
			moves = append(moves, f)
		}
	}
	return moves
}

// Compile-time assertion that Chain implements model.Model.
var _ model.Model = (*Chain)(nil)

// String returns the chain as its token stream concatenated, for example
// "SUFR".
func (c *Chain) String() string {
	if c.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString(StartMarker)
	for _, f := range c.Moves() {
		b.WriteString(f.String())
	}
	return b.String()
}

// Redacted returns a summary of the chain that stays short for long chains.
func (c *Chain) Redacted() string {
	if c.IsZero() {
		return "Chain{}"
	}
	return fmt.Sprintf("Chain{blocks: %d, end: %s}", len(c.blocks), c.blocks[len(c.blocks)-1].Coord)
}

// TypeName returns "Chain".
func (c *Chain) TypeName() string {
	return "Chain"
}

// IsZero reports whether the chain is nil or has no blocks. The zero Chain
// is invalid.
func (c *Chain) IsZero() bool {
	return c == nil || len(c.blocks) == 0
}

// Equal reports whether both chains hold the same blocks in the same order.
func (c *Chain) Equal(other *Chain) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.blocks) != len(other.blocks) {
		return false
	}
	for i := range c.blocks {
		if !c.blocks[i].Equal(other.blocks[i]) {
			return false
		}
	}
	return true
}

// Validate checks every structural invariant of the chain and reports all
// violations together:
//
//   - the chain has at least one block and the root has no parent;
//   - every other block has a parent and every block but the last a child;
//   - adjacent blocks attach through opposite faces;
//   - every block sits one unit from its predecessor along the attachment
//     face.
func (c *Chain) Validate() error {
	if c.IsZero() {
		return &dxerrors.ValidationError{Type: c.TypeName(), Field: "Blocks", Reason: "must not be empty"}
	}

	col := rxmerr.NewCollector()
	if err := model.ValidateAll(c.blocks); err != nil {
		col.Append(err)
	}

	if c.blocks[0].Parent.IsSet() {
		col.Append(c.blockError(0, "Parent", "root must not have a parent", c.blocks[0].Parent.String()))
	}
	last := len(c.blocks) - 1
	if c.blocks[last].Child.IsSet() {
		col.Append(c.blockError(last, "Child", "last block must not have a child", c.blocks[last].Child.String()))
	}

	for i := 1; i < len(c.blocks); i++ {
		prev, cur := c.blocks[i-1], c.blocks[i]

		out, hasOut := prev.Child.Face()
		if !hasOut {
			col.Append(c.blockError(i-1, "Child", "must be set on a block with a successor", nil))
		}
		in, hasIn := cur.Parent.Face()
		if !hasIn {
			col.Append(c.blockError(i, "Parent", "must be set on a non-root block", nil))
		}
		if !hasOut || !hasIn {
			continue
		}

		if in != out.Opposite() {
			col.Append(c.blockError(i, "Parent",
				fmt.Sprintf("must be opposite of Blocks[%d].Child %s", i-1, out), in.String()))
		}
		if want := prev.Coord.Add(out.Vector()); cur.Coord != want {
			col.Append(c.blockError(i, "Coord",
				fmt.Sprintf("must be %s, one step %s of Blocks[%d]", want, out.Name(), i-1), cur.Coord.String()))
		}
	}

	return col.Err()
}

func (c *Chain) blockError(i int, field, reason string, value any) error {
	return &dxerrors.ValidationError{
		Type:   c.TypeName(),
		Field:  fmt.Sprintf("Blocks[%d].%s", i, field),
		Reason: reason,
		Value:  value,
	}
}

type chainDoc struct {
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// MarshalJSON validates and encodes the chain as {"blocks": [...]}.
func (c *Chain) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(chainDoc{Blocks: c.blocks})
}

// UnmarshalJSON decodes and validates a chain. The receiver is left unchanged
// on error.
func (c *Chain) UnmarshalJSON(data []byte) error {
	var doc chainDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal Chain: %w", err)
	}

	decoded := Chain{blocks: doc.Blocks}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("invalid Chain after unmarshal: %w", err)
	}

	*c = decoded
	return nil
}

// MarshalYAML validates and encodes the chain as a blocks mapping.
func (c *Chain) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return chainDoc{Blocks: c.blocks}, nil
}

// UnmarshalYAML decodes and validates a chain. The receiver is left unchanged
// on error.
func (c *Chain) UnmarshalYAML(node *yaml.Node) error {
	var doc chainDoc
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("failed to unmarshal Chain: %w", err)
	}

	decoded := Chain{blocks: doc.Blocks}
	if err := decoded.Validate(); err != nil {
		return fmt.Errorf("invalid Chain after unmarshal: %w", err)
	}

	*c = decoded
	return nil
}
