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

package geom

import (
	"encoding/json"
	"fmt"
	"strconv"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Vec3 is an integer position or displacement in block units.
//
// Y points up, Z points to the front and X points to the right, matching
// the vectors of Up, Front and Right. Every Vec3 is valid; the zero value is
// the origin, where the root block of every chain sits.
//
// JSON and YAML encode a Vec3 as a three-element array [x, y, z].
type Vec3 struct {
	X int
	Y int
	Z int
}

// Compile-time assertion that Vec3 implements model.Model.
var _ model.Model = (*Vec3)(nil)

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Array returns the components as [x, y, z].
func (v Vec3) Array() [3]int {
	return [3]int{v.X, v.Y, v.Z}
}

// String renders the vector as a parenthesized tuple, "(x, y, z)".
func (v Vec3) String() string {
	return "(" + strconv.Itoa(v.X) + ", " + strconv.Itoa(v.Y) + ", " + strconv.Itoa(v.Z) + ")"
}

// Redacted returns the same value as String.
func (v Vec3) Redacted() string {
	return v.String()
}

// TypeName returns "Vec3".
func (v Vec3) TypeName() string {
	return "Vec3"
}

// IsZero reports whether v is the origin.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// Equal reports whether v and o have the same components.
func (v Vec3) Equal(o Vec3) bool {
	return v == o
}

// Validate always returns nil; every integer triple is a position.
func (v Vec3) Validate() error {
	return nil
}

// MarshalJSON encodes v as [x, y, z].
func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Array())
}

// UnmarshalJSON decodes a three-element integer array.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", v.TypeName(), err)
	}
	return v.fromSlice(data, arr)
}

// MarshalYAML encodes v as a flow sequence [x, y, z].
func (v Vec3) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v.Array() {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(c),
		})
	}
	return node, nil
}

// UnmarshalYAML decodes a three-element integer sequence.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var arr []int
	if err := node.Decode(&arr); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", v.TypeName(), err)
	}
	return v.fromSlice([]byte(node.Value), arr)
}

func (v *Vec3) fromSlice(data []byte, arr []int) error {
	if len(arr) != 3 {
		return &dxerrors.UnmarshalError{
			Type:   v.TypeName(),
			Data:   data,
			Reason: fmt.Sprintf("expected 3 components, got %d", len(arr)),
		}
	}
	*v = Vec3{X: arr[0], Y: arr[1], Z: arr[2]}
	return nil
}
