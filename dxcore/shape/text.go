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

// Package shape reads chain descriptions from files and renders chain
// descriptions for people and programs.
//
// Three input formats are understood:
//
//   - text: one token per line, "S" first, then one face label per line;
//   - JSON and YAML documents ({"version": "1.0.0", "moves": ["U", ...]}),
//     JSON being checked against an embedded JSON Schema first.
//
// Any of them may be zstd-compressed, signalled by a ".zst" suffix.
package shape

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	"dirpx.dev/dxjoint/dxcore/model/chain"
)

// Tokens returns the lines of r as a token stream, with line terminators
// ("\n" or "\r\n") removed. The stream can be consumed once. The returned
// function reports the read error that ended the stream early, if any; call
// it after the stream is exhausted.
func Tokens(r io.Reader) (iter.Seq[string], func() error) {
	sc := bufio.NewScanner(r)
	seq := func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(strings.TrimSuffix(sc.Text(), "\r")) {
				return
			}
		}
	}
	return seq, sc.Err
}

// ReadText builds a chain from the text format.
func ReadText(r io.Reader) (*chain.Chain, error) {
	tokens, readErr := Tokens(r)
	c, err := chain.Build(tokens)
	if rerr := readErr(); rerr != nil {
		return nil, fmt.Errorf("read shape: %w", rerr)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WriteText writes one line per block:
//
//	<label> <coord>[ <rotation>]
//
// where label is "S" for the root and the block's incoming face otherwise,
// and the rotation is present only for elbow joints.
func WriteText(w io.Writer, c *chain.Chain) error {
	bw := bufio.NewWriter(w)
	for e := range c.Describe() {
		if _, err := bw.WriteString(e.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTokens writes the chain back in the text input format.
func WriteTokens(w io.Writer, c *chain.Chain) error {
	bw := bufio.NewWriter(w)
	for tok := range chain.Tokens(c.Moves()) {
		if _, err := bw.WriteString(tok + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
