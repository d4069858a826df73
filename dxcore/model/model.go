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

// Package model defines the contracts shared by every dxjoint domain type.
//
// Faces, coordinates, blocks, chains and shape documents all implement Model
// so that they can be validated, serialized to JSON and YAML, logged and
// compared through one set of generic helpers (ValidateAll, ToJSON, ToYAML,
// FromJSON, FromYAML, Equal).
//
// Model values are treated as immutable. Concurrent reads are safe; callers
// MUST synchronize any concurrent writes to mutable instances.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxjoint domain types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers a full and a compact string form;
// Identifiable supplies a canonical type name; and ZeroCheckable detects
// empty instances.
//
//	var _ model.Model = (*Face)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST be fast and deterministic, MUST NOT mutate the receiver and
// MUST NOT have side effects such as logging. It returns nil if and only if
// every invariant holds. Error messages SHOULD name the offending field, for
// example "Chain.Blocks[2].Parent: must be opposite of Blocks[1].Child".
//
// Callers SHOULD invoke Validate right after unmarshaling external input and
// before handing values across package boundaries.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST call Validate first and refuse to encode invalid
// values. Unmarshal methods MUST call Validate after decoding and return the
// validation error; callers MUST NOT use a receiver whose unmarshal failed.
//
// A value serialized to JSON and then deserialized MUST equal the original,
// and the same MUST hold for YAML.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that can be rendered for humans.
//
// String returns the full representation. Redacted returns a compact form
// suitable for high-volume logs; for small values the two are identical,
// while a Chain reports only its length and end points.
type Loggable interface {
	String() string
	Redacted() string
}

// Identifiable defines the contract for types that can report their own
// canonical type name, used to build error messages and log fields.
type Identifiable interface {
	// TypeName returns the canonical name of the type (for example "Face").
	TypeName() string
}

// ZeroCheckable defines the contract for types that can detect their zero
// value.
//
// Note that for some types the zero value is a meaningful, valid value: the
// zero Face is Up and the zero Vec3 is the origin.
type ZeroCheckable interface {
	IsZero() bool
}
