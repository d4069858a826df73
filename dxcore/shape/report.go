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

package shape

import (
	"encoding/json"
	"io"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model/chain"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"gopkg.in/yaml.v3"
)

// Report is the machine-readable counterpart of WriteText.
type Report struct {
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Blocks []ReportEntry `json:"blocks" yaml:"blocks"`
}

// ReportEntry describes one block. Rotation is nil unless the block is an
// elbow joint.
type ReportEntry struct {
	Label    string          `json:"label" yaml:"label"`
	Coord    geom.Vec3       `json:"coord" yaml:"coord"`
	Rotation *chain.Rotation `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

// NewReport describes every block of c.
func NewReport(name string, c *chain.Chain) Report {
	r := Report{Name: name, Blocks: make([]ReportEntry, 0, c.Len())}
	for e := range c.Describe() {
		entry := ReportEntry{Label: e.Label(), Coord: e.Coord}
		if e.Rotatable {
			rot := e.Rotation
			entry.Rotation = &rot
		}
		r.Blocks = append(r.Blocks, entry)
	}
	return r
}

// Joints returns the number of elbow joints in the report.
func (r Report) Joints() int {
	n := 0
	for _, b := range r.Blocks {
		if b.Rotation != nil {
			n++
		}
	}
	return n
}

// Encode writes v as indented JSON or as YAML. JSON output keeps "&" and
// other HTML characters unescaped, so rotations read as in text output.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return &dxerrors.ParseError{Type: "Format", Value: string(format)}
	}
}

// Write renders the description of c in the given format: WriteText lines
// for FormatText, an encoded Report otherwise.
func Write(w io.Writer, format Format, name string, c *chain.Chain) error {
	if format == FormatText {
		return WriteText(w, c)
	}
	return Encode(w, format, NewReport(name, c))
}
