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

	"dirpx.dev/dxjoint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Side is an optional Face: either one face or nothing.
//
// Blocks use Side for their attachment slots. Because Up is index 0, a plain
// Face cannot tell "attached through Up" apart from "not attached"; Side keeps
// the two states distinct and its accessor forces callers to check.
//
// The zero value is the unset side. JSON and YAML encode an unset side as
// null and a set side as the face label.
type Side struct {
	face Face
	set  bool
}

// NoSide is the unset side.
var NoSide = Side{}

// SideOf returns the side holding f.
func SideOf(f Face) Side {
	return Side{face: f, set: true}
}

// Compile-time assertion that Side implements model.Model.
var _ model.Model = (*Side)(nil)

// Face returns the face and true if the side is set, or Up and false if it
// is not.
func (s Side) Face() (Face, bool) {
	return s.face, s.set
}

// IsSet reports whether the side holds a face.
func (s Side) IsSet() bool {
	return s.set
}

// Opposite returns the side holding the opposite face. An unset side stays
// unset.
func (s Side) Opposite() Side {
	if !s.set {
		return s
	}
	return SideOf(s.face.Opposite())
}

// String returns the face label, or "-" when unset.
func (s Side) String() string {
	if !s.set {
		return "-"
	}
	return s.face.String()
}

// Redacted returns the same value as String.
func (s Side) Redacted() string {
	return s.String()
}

// TypeName returns "Side".
func (s Side) TypeName() string {
	return "Side"
}

// IsZero reports whether the side is unset.
func (s Side) IsZero() bool {
	return !s.set
}

// Equal reports whether both sides are unset, or both hold the same face.
func (s Side) Equal(other Side) bool {
	if s.set != other.set {
		return false
	}
	return !s.set || s.face == other.face
}

// Validate checks the face of a set side.
func (s Side) Validate() error {
	if !s.set {
		return nil
	}
	return s.face.Validate()
}

// MarshalJSON encodes the side as null or as the face label.
func (s Side) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return s.face.MarshalJSON()
}

// UnmarshalJSON decodes null into the unset side and a label into a set side.
func (s *Side) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSide
		return nil
	}

	var f Face
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", s.TypeName(), err)
	}

	*s = SideOf(f)
	return nil
}

// MarshalYAML encodes the side as null or as the face label.
func (s Side) MarshalYAML() (interface{}, error) {
	if !s.set {
		return nil, nil
	}
	return s.face.MarshalYAML()
}

// UnmarshalYAML decodes a label into a set side. yaml.v3 never calls it for
// null nodes; those leave the field at its zero value, the unset side.
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	var f Face
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", s.TypeName(), err)
	}

	*s = SideOf(f)
	return nil
}
