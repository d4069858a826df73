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

// Package errors provides the reusable error value types shared by the dxjoint
// model packages.
//
// Geometry, chain and shape packages report failures with these types so that
// callers get one stable message format regardless of which layer rejected
// the input:
//
//   - ParseError
//     Returned when a textual token (a face label, a format version) cannot
//     be interpreted. A chain that meets an unknown direction token reports
//     it through a ParseError with Type "Face".
//
//   - MarshalError
//     Returned when an out-of-range enum-like value (for example Face(9)) is
//     about to be serialized.
//
//   - UnmarshalError
//     Returned when JSON or YAML input cannot populate a model value.
//
//   - ValidationError
//     Returned by Validate methods when a model value breaks one of its
//     invariants, such as a face index outside 0..5 or two adjacent blocks
//     whose attachment faces are not opposite each other.
//
// All types are plain value carriers; recognize them with errors.As.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed ("Face", "Version") and Value
// contains the exact string that could not be interpreted.
//
// # Example
//
//	func ParseFace(s string) (Face, error) {
//	    for f := Up; f <= Left; f++ {
//	        if f.String() == s {
//	            return f, nil
//	        }
//	    }
//	    // "dxjoint: invalid Face value: X"
//	    return 0, &errors.ParseError{Type: "Face", Value: s}
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Face").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxjoint: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxjoint: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants.
//
// In practice a MarshalError points at a programming error: a Face built by
// conversion from an arbitrary integer was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Face").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxjoint: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxjoint: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data keeps the raw payload for callers that want to log it; it is not part
// of the message.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxjoint: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxjoint: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model value fails.
//
// Field optionally names the offending field; for values held in a sequence
// it carries the position as well, for example "Blocks[3].Parent".
//
// # Example
//
//	func (f Face) Validate() error {
//	    if !f.Valid() {
//	        return &errors.ValidationError{
//	            Type:   "Face",
//	            Reason: "index out of range 0-5",
//	            Value:  int(f),
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxjoint: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxjoint: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxjoint: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxjoint: invalid " + e.Type + ": " + e.Reason
}
