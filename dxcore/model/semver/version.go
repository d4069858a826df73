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

// Package semver provides the semantic version type that stamps dxjoint
// shape documents with their format version.
//
// It wraps github.com/blang/semver/v4 for parsing and precedence, and adds
// the model.Model contract and a compatibility rule used when reading
// documents written by other releases.
package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a Semantic Versioning 2.0.0 version,
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// The zero value is "0.0.0". Versions are immutable; compare them with
// Compare or Compatible rather than ==, because build metadata does not take
// part in precedence.
type Version struct {
	v bsemver.Version
}

// ParseVersion parses s, with an optional leading "v".
//
// Example usage:
//
//	v, err := semver.ParseVersion("v1.2.0")
//	// v.String() = "1.2.0"
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %w", &dxerrors.ParseError{Type: "Version", Value: s}, err)
	}
	return Version{v: bv}, nil
}

// MustParseVersion is like ParseVersion but panics on error. It is meant for
// package-level constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compile-time assertion that Version implements model.Model.
var _ model.Model = (*Version)(nil)

// Major returns the major component.
func (v Version) Major() uint64 {
	return v.v.Major
}

// Minor returns the minor component.
func (v Version) Minor() uint64 {
	return v.v.Minor
}

// Patch returns the patch component.
func (v Version) Patch() uint64 {
	return v.v.Patch
}

// String returns the canonical form without a "v" prefix.
func (v Version) String() string {
	return v.v.String()
}

// Redacted returns the same value as String.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether v is 0.0.0 without prerelease or metadata.
func (v Version) IsZero() bool {
	return v.v.EQ(bsemver.Version{}) && len(v.v.Build) == 0
}

// Validate delegates to blang/semver's own checks on prerelease and build
// identifiers.
func (v Version) Validate() error {
	if err := v.v.Validate(); err != nil {
		return &dxerrors.ValidationError{Type: v.TypeName(), Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// Compare returns -1, 0 or 1 following SemVer precedence.
func (v Version) Compare(other Version) int {
	return v.v.Compare(other.v)
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compatible reports whether a reader supporting v can read a document
// written as other: the major components must match and, while the major
// component is 0, the minor components as well.
func (v Version) Compatible(other Version) bool {
	if v.v.Major != other.v.Major {
		return false
	}
	if v.v.Major == 0 {
		return v.v.Minor == other.v.Minor
	}
	return true
}

// MarshalJSON encodes the version as a string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a version string.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: v.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// MarshalYAML encodes the version as a string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a version string.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: v.TypeName(), Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}
