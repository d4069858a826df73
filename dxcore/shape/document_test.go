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

package shape_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/chain"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"dirpx.dev/dxjoint/dxcore/model/semver"
	"dirpx.dev/dxjoint/dxcore/shape"
	"gopkg.in/yaml.v3"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMoves []geom.Face
		wantErr   string
	}{
		{
			name:      "valid",
			input:     `{"version":"1.0.0","name":"elbow","moves":["U","F","R"]}`,
			wantMoves: []geom.Face{geom.Up, geom.Front, geom.Right},
		},
		{
			name:      "newer minor version",
			input:     `{"version":"1.4.0","moves":["L"]}`,
			wantMoves: []geom.Face{geom.Left},
		},
		{
			name:      "root only",
			input:     `{"version":"1.0.0","moves":[]}`,
			wantMoves: []geom.Face{},
		},
		{
			name:    "unknown move",
			input:   `{"version":"1.0.0","moves":["U","X"]}`,
			wantErr: "schema",
		},
		{
			name:    "missing moves",
			input:   `{"version":"1.0.0"}`,
			wantErr: "schema",
		},
		{
			name:    "unknown field",
			input:   `{"version":"1.0.0","moves":[],"colour":"red"}`,
			wantErr: "schema",
		},
		{
			name:    "incompatible major",
			input:   `{"version":"2.0.0","moves":["U"]}`,
			wantErr: "not compatible",
		},
		{
			name:    "not json",
			input:   `moves: [U]`,
			wantErr: "cannot unmarshal Document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := shape.DecodeJSON([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("DecodeJSON() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON() error = %v", err)
			}
			if !slices.Equal(doc.Moves, tt.wantMoves) {
				t.Errorf("Moves = %v, want %v", doc.Moves, tt.wantMoves)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	doc, err := shape.DecodeYAML([]byte("version: 1.0.0\nname: elbow\nmoves: [U, F, R]\n"))
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}
	if doc.Name != "elbow" {
		t.Errorf("Name = %q", doc.Name)
	}

	c, err := doc.Chain()
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	if got := c.Block(3).Coord; got != (geom.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("last block at %v, want (1, 1, 1)", got)
	}

	if _, err := shape.DecodeYAML([]byte("version: 0.9.0\nmoves: [U]\n")); err == nil {
		t.Error("DecodeYAML() should reject format 0.9.0")
	}
	if _, err := shape.DecodeYAML([]byte("version: 1.0.0\nmoves: [U, Q]\n")); err == nil {
		t.Error("DecodeYAML() should reject unknown moves")
	}
}

func TestDocumentOf_RoundTrip(t *testing.T) {
	c, err := chain.FromMoves([]geom.Face{geom.Right, geom.Up, geom.Up, geom.Back})
	if err != nil {
		t.Fatalf("FromMoves() error = %v", err)
	}
	doc := shape.DocumentOf("hook", c)

	if !doc.Version.Equal(shape.FormatVersion) {
		t.Errorf("Version = %v, want %v", doc.Version, shape.FormatVersion)
	}
	if got, want := doc.String(), "hook@1.0.0:RUUB"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := doc.Redacted(), "hook@1.0.0 (4 moves)"; got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}

	data, err := model.ToJSON(&doc)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if got, want := string(data), `{"version":"1.0.0","name":"hook","moves":["R","U","U","B"]}`; got != want {
		t.Errorf("ToJSON() = %s, want %s", got, want)
	}
	fromJSON, err := shape.DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}

	out, err := model.ToYAML(&doc)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	if got, want := string(out), "version: 1.0.0\nname: hook\nmoves: [R, U, U, B]\n"; got != want {
		t.Errorf("ToYAML() = %q, want %q", got, want)
	}
	fromYAML, err := shape.DecodeYAML(out)
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}

	for name, d := range map[string]shape.Document{"json": fromJSON, "yaml": fromYAML} {
		rebuilt, err := d.Chain()
		if err != nil {
			t.Fatalf("%s: Chain() error = %v", name, err)
		}
		if !rebuilt.Equal(c) {
			t.Errorf("%s: rebuilt chain %v, want %v", name, rebuilt, c)
		}
	}
}

func TestDocument_MarshalRejectsIncompatibleVersion(t *testing.T) {
	doc := shape.Document{Version: semver.MustParseVersion("3.0.0"), Moves: []geom.Face{geom.Up}}
	if _, err := json.Marshal(doc); err == nil {
		t.Error("json.Marshal() should fail for format 3.0.0")
	}
	if _, err := yaml.Marshal(doc); err == nil {
		t.Error("yaml.Marshal() should fail for format 3.0.0")
	}
}
