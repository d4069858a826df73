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

// Package geom holds the fixed cube geometry every dxjoint chain is built on:
// the six faces of a unit cube, their unit displacement vectors and the
// opposite-face arithmetic.
//
// The package has no state. The face table is a compile-time constant
// attached to the Face type rather than a mutable package-level map, so any
// code holding a Face can resolve its label, vector and opposite without
// further wiring.
package geom

import (
	"encoding/json"
	"fmt"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Face identifies one of the six faces of a unit cube.
//
// Faces are indexed 0..5 in the canonical order Up, Front, Right, Down, Back,
// Left. The order is significant: the first three faces point along the
// positive Y, Z and X axes and the last three are their opposites, so
// f.Opposite() is always (f+3) mod 6 and two faces share a geometric axis
// exactly when their indices are congruent modulo 3.
//
// Unlike most enum-like types in dxjoint, the zero value of Face is not an
// "unknown" marker but the valid face Up. Code that needs to express "no
// face" MUST use Side instead of relying on a zero Face.
//
// JSON and YAML serialization uses the single-character label ("U", "F",
// ...).
type Face uint8

const (
	// Up is the +Y face, index 0.
	Up Face = iota

	// Front is the +Z face, index 1.
	Front

	// Right is the +X face, index 2.
	Right

	// Down is the -Y face, index 3.
	Down

	// Back is the -Z face, index 4.
	Back

	// Left is the -X face, index 5.
	Left
)

// FaceCount is the number of faces of a cube.
const FaceCount = 6

const (
	// UpStr is the label of Up.
	UpStr = "U"

	// FrontStr is the label of Front.
	FrontStr = "F"

	// RightStr is the label of Right.
	RightStr = "R"

	// DownStr is the label of Down.
	DownStr = "D"

	// BackStr is the label of Back.
	BackStr = "B"

	// LeftStr is the label of Left.
	LeftStr = "L"
)

var faceLabels = [FaceCount]string{UpStr, FrontStr, RightStr, DownStr, BackStr, LeftStr}

var faceNames = [FaceCount]string{"Up", "Front", "Right", "Down", "Back", "Left"}

// faceVectors[i] is the unit displacement of face i; faceVectors[i] and
// faceVectors[(i+3)%6] are antiparallel.
var faceVectors = [FaceCount]Vec3{
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: -1},
	{X: -1, Y: 0, Z: 0},
}

// ParseFace returns the Face whose label is s.
//
// Matching is exact: labels are single upper-case characters and no
// whitespace trimming or case folding is applied, because shape files carry
// exactly one label per line. Any other input returns a *errors.ParseError
// with Type "Face" and the offending string as Value.
//
// Example usage:
//
//	f, err := geom.ParseFace("R")
//	// f = geom.Right, err = nil
//
//	_, err = geom.ParseFace("X")
//	// err = dxjoint: invalid Face value: "X"
func ParseFace(s string) (Face, error) {
	switch s {
	case UpStr:
		return Up, nil
	case FrontStr:
		return Front, nil
	case RightStr:
		return Right, nil
	case DownStr:
		return Down, nil
	case BackStr:
		return Back, nil
	case LeftStr:
		return Left, nil
	default:
		return 0, &dxerrors.ParseError{Type: "Face", Value: s}
	}
}

// AllFaces returns the six faces in canonical order.
func AllFaces() []Face {
	return []Face{Up, Front, Right, Down, Back, Left}
}

// Compile-time assertion that Face implements model.Model.
var _ model.Model = (*Face)(nil)

// String returns the single-character label of the face.
//
// Values outside 0..5 render as "Face(n)" so that a corrupted value is
// visible in logs instead of silently printing an empty label.
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", uint8(f))
	}
	return faceLabels[f]
}

// Name returns the long English name of the face ("Up", "Front", ...).
func (f Face) Name() string {
	if !f.Valid() {
		return f.String()
	}
	return faceNames[f]
}

// Redacted returns the same value as String; face labels are not sensitive.
func (f Face) Redacted() string {
	return f.String()
}

// TypeName returns "Face".
func (f Face) TypeName() string {
	return "Face"
}

// IsZero reports whether f is the zero value, which is the valid face Up.
func (f Face) IsZero() bool {
	return f == Up
}

// Equal reports whether f and other are the same face.
func (f Face) Equal(other Face) bool {
	return f == other
}

// Valid reports whether f is one of the six defined faces.
func (f Face) Valid() bool {
	return f < FaceCount
}

// Validate returns a *errors.ValidationError if f is outside 0..5.
func (f Face) Validate() error {
	if !f.Valid() {
		return &dxerrors.ValidationError{
			Type:   f.TypeName(),
			Reason: fmt.Sprintf("index %d out of range 0-%d", uint8(f), FaceCount-1),
			Value:  int(f),
		}
	}
	return nil
}

// Vector returns the unit displacement that moves from a block to the block
// attached on face f. Invalid faces return the zero vector.
func (f Face) Vector() Vec3 {
	if !f.Valid() {
		return Vec3{}
	}
	return faceVectors[f]
}

// Opposite returns the face antiparallel to f, (f+3) mod 6.
//
// Opposite is an involution: f.Opposite().Opposite() == f for every valid
// face. Invalid faces are returned unchanged.
func (f Face) Opposite() Face {
	if !f.Valid() {
		return f
	}
	return (f + 3) % FaceCount
}

// Axis returns the index (0, 1 or 2) of the geometric axis f lies on:
// 0 for Up/Down, 1 for Front/Back and 2 for Right/Left.
func (f Face) Axis() int {
	return int(f % 3)
}

// SameAxis reports whether f and other are axis-mates, that is whether they
// are the same face or opposite faces.
func (f Face) SameAxis(other Face) bool {
	return (int(f)-int(other))%3 == 0
}

// AxisFaces returns the set holding f and its opposite.
func (f Face) AxisFaces() FaceSet {
	return FaceSetOf(f, f.Opposite())
}

// MarshalJSON encodes the face as its label string.
func (f Face) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &dxerrors.MarshalError{Type: f.TypeName(), Value: int(f)}
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a label string into the face. The receiver is left
// unchanged on error.
func (f *Face) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", f.TypeName(), err)
	}

	parsed, err := ParseFace(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", f.TypeName(), err)
	}

	*f = parsed
	return nil
}

// MarshalYAML encodes the face as its label string.
func (f Face) MarshalYAML() (interface{}, error) {
	if !f.Valid() {
		return nil, &dxerrors.MarshalError{Type: f.TypeName(), Value: int(f)}
	}
	return f.String(), nil
}

// UnmarshalYAML decodes a label string into the face. The receiver is left
// unchanged on error.
func (f *Face) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", f.TypeName(), err)
	}

	parsed, err := ParseFace(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", f.TypeName(), err)
	}

	*f = parsed
	return nil
}
