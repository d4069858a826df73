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
	"math/bits"
	"strings"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// FaceSet is a set of faces stored as a bitmask, bit i standing for Face(i).
//
// Sets render as their labels concatenated in canonical order, so the set
// {Left, Up, Back} prints as "UBL" regardless of how it was built.
type FaceSet uint8

// AllFaceSet holds all six faces.
const AllFaceSet FaceSet = 1<<FaceCount - 1

// FaceSetOf returns the set holding the given faces. Invalid faces are
// ignored.
func FaceSetOf(faces ...Face) FaceSet {
	var s FaceSet
	for _, f := range faces {
		s = s.With(f)
	}
	return s
}

// ParseFaceSet parses a string of face labels such as "FRBL". Each label may
// appear at most once.
func ParseFaceSet(str string) (FaceSet, error) {
	var s FaceSet
	for _, r := range str {
		f, err := ParseFace(string(r))
		if err != nil {
			return 0, &dxerrors.ParseError{Type: "FaceSet", Value: str}
		}
		if s.Has(f) {
			return 0, &dxerrors.ParseError{Type: "FaceSet", Value: str}
		}
		s = s.With(f)
	}
	return s, nil
}

// Compile-time assertion that FaceSet implements model.Model.
var _ model.Model = (*FaceSet)(nil)

// Has reports whether f is in the set.
func (s FaceSet) Has(f Face) bool {
	return f.Valid() && s&(1<<f) != 0
}

// With returns s with f added.
func (s FaceSet) With(f Face) FaceSet {
	if !f.Valid() {
		return s
	}
	return s | 1<<f
}

// Without returns s with every face of o removed.
func (s FaceSet) Without(o FaceSet) FaceSet {
	return s &^ o
}

// Union returns the faces in s or o.
func (s FaceSet) Union(o FaceSet) FaceSet {
	return s | o
}

// Len returns the number of faces in the set.
func (s FaceSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Faces returns the members in canonical order.
func (s FaceSet) Faces() []Face {
	out := make([]Face, 0, s.Len())
	for _, f := range AllFaces() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String returns the member labels in canonical order.
func (s FaceSet) String() string {
	var b strings.Builder
	for _, f := range s.Faces() {
		b.WriteString(f.String())
	}
	return b.String()
}

// Redacted returns the same value as String.
func (s FaceSet) Redacted() string {
	return s.String()
}

// TypeName returns "FaceSet".
func (s FaceSet) TypeName() string {
	return "FaceSet"
}

// IsZero reports whether the set is empty.
func (s FaceSet) IsZero() bool {
	return s == 0
}

// Validate rejects bits beyond the sixth face.
func (s FaceSet) Validate() error {
	if s&^AllFaceSet != 0 {
		return &dxerrors.ValidationError{
			Type:   s.TypeName(),
			Reason: fmt.Sprintf("bitmask %#x has bits beyond face %d", uint8(s), FaceCount-1),
			Value:  uint8(s),
		}
	}
	return nil
}

// MarshalJSON encodes the set as its label string.
func (s FaceSet) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a label string.
func (s *FaceSet) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", s.TypeName(), err)
	}

	parsed, err := ParseFaceSet(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}

	*s = parsed
	return nil
}

// MarshalYAML encodes the set as its label string.
func (s FaceSet) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a label string.
func (s *FaceSet) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", s.TypeName(), err)
	}

	parsed, err := ParseFaceSet(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}

	*s = parsed
	return nil
}
