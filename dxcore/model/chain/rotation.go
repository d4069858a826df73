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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"gopkg.in/yaml.v3"
)

// RotationSeparator joins the two face sets of a rendered Rotation.
const RotationSeparator = " & "

// Rotation describes an elbow joint: the block's parent and child
// attachments each pin one axis, and the joint can still pivot within the
// four faces off either pinned axis.
//
// Parent holds the four faces not on the parent-attachment axis and Child
// the four faces not on the child-attachment axis. A Rotation renders as
// "FRBL & URDL", labels in canonical order within each set.
type Rotation struct {
	Parent geom.FaceSet
	Child  geom.FaceSet
}

// ParseRotation parses the "XXXX & YYYY" form produced by String.
func ParseRotation(s string) (Rotation, error) {
	parentStr, childStr, ok := strings.Cut(s, RotationSeparator)
	if !ok {
		return Rotation{}, &dxerrors.ParseError{Type: "Rotation", Value: s}
	}

	parent, err := geom.ParseFaceSet(parentStr)
	if err != nil {
		return Rotation{}, fmt.Errorf("Rotation.Parent: %w", err)
	}
	child, err := geom.ParseFaceSet(childStr)
	if err != nil {
		return Rotation{}, fmt.Errorf("Rotation.Child: %w", err)
	}

	r := Rotation{Parent: parent, Child: child}
	if err := r.Validate(); err != nil {
		return Rotation{}, err
	}
	return r, nil
}

// Compile-time assertion that Rotation implements model.Model.
var _ model.Model = (*Rotation)(nil)

// String renders the rotation as "<parent labels> & <child labels>".
func (r Rotation) String() string {
	return r.Parent.String() + RotationSeparator + r.Child.String()
}

// Redacted returns the same value as String.
func (r Rotation) Redacted() string {
	return r.String()
}

// TypeName returns "Rotation".
func (r Rotation) TypeName() string {
	return "Rotation"
}

// IsZero reports whether both sets are empty.
func (r Rotation) IsZero() bool {
	return r.Parent.IsZero() && r.Child.IsZero()
}

// Validate checks that each set is the complement of one whole axis and that
// the two axes differ.
func (r Rotation) Validate() error {
	parentAxis, err := excludedAxis(r.Parent)
	if err != nil {
		return &dxerrors.ValidationError{Type: r.TypeName(), Field: "Parent", Reason: err.Error(), Value: r.Parent.String()}
	}
	childAxis, err := excludedAxis(r.Child)
	if err != nil {
		return &dxerrors.ValidationError{Type: r.TypeName(), Field: "Child", Reason: err.Error(), Value: r.Child.String()}
	}
	if parentAxis == childAxis {
		return &dxerrors.ValidationError{Type: r.TypeName(), Reason: "parent and child sets exclude the same axis", Value: r.String()}
	}
	return nil
}

// excludedAxis returns the axis whose two faces are missing from s.
func excludedAxis(s geom.FaceSet) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.Len() != 4 {
		return 0, fmt.Errorf("must hold 4 faces, has %d", s.Len())
	}
	for _, f := range geom.AllFaces()[:3] {
		if s.Without(f.AxisFaces()) == s {
			return f.Axis(), nil
		}
	}
	return 0, fmt.Errorf("faces %s do not exclude a whole axis", s)
}

// MarshalJSON encodes the rotation as its string form. The separator is
// written as a literal "&"; encoders that escape HTML (json.Marshal does)
// still rewrite it as \u0026.
func (r Rotation) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.String()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes the string form.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", r.TypeName(), err)
	}

	parsed, err := ParseRotation(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", r.TypeName(), err)
	}

	*r = parsed
	return nil
}

// MarshalYAML encodes the rotation as its string form.
func (r Rotation) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	return r.String(), nil
}

// UnmarshalYAML decodes the string form.
func (r *Rotation) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", r.TypeName(), err)
	}

	parsed, err := ParseRotation(str)
	if err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", r.TypeName(), err)
	}

	*r = parsed
	return nil
}
