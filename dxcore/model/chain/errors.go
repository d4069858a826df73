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
	"errors"
	"strconv"
)

// StartMarker is the token that must open every token stream. It stands for
// the root block, which has no incoming attachment.
const StartMarker = "S"

var (
	// ErrMissingStartMarker is returned by Build when the token stream is
	// empty or does not begin with StartMarker.
	ErrMissingStartMarker = errors.New("dxjoint: token stream must begin with " + strconv.Quote(StartMarker))

	// ErrInvalidFaceIndex is returned by AttachChild for a direction outside
	// 0..5. Build validates tokens first, so seeing it means a caller passed
	// an unchecked Face.
	ErrInvalidFaceIndex = errors.New("dxjoint: face index out of range")
)

// InvalidDirectionError is returned by Build for the first token after the
// start marker that is not a face label.
//
// Position is the 1-based position of the token in the stream (the start
// marker is position 1), which equals the line number for shape files.
type InvalidDirectionError struct {
	Position int
	Token    string
	Err      error
}

// Error implements the error interface.
func (e *InvalidDirectionError) Error() string {
	return "dxjoint: invalid direction " + strconv.Quote(e.Token) +
		" at position " + strconv.Itoa(e.Position) + " (expecting U, F, R, D, B, L)"
}

// Unwrap returns the underlying face parse error.
func (e *InvalidDirectionError) Unwrap() error {
	return e.Err
}
