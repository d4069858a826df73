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

package geom_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/dxjoint/dxcore/model/geom"
)

func TestFaceSet_String_CanonicalOrder(t *testing.T) {
	s := geom.FaceSetOf(geom.Left, geom.Up, geom.Back)
	if got, want := s.String(), "UBL"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := geom.AllFaceSet.String(), "UFRDBL"; got != want {
		t.Errorf("AllFaceSet.String() = %q, want %q", got, want)
	}
}

func TestFaceSet_Without(t *testing.T) {
	tests := []struct {
		face geom.Face
		want string
	}{
		{geom.Up, "FRBL"},
		{geom.Down, "FRBL"},
		{geom.Front, "URDL"},
		{geom.Right, "UFDB"},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			s := geom.AllFaceSet.Without(tt.face.AxisFaces())
			if got := s.String(); got != tt.want {
				t.Errorf("Without(%v axis) = %q, want %q", tt.face, got, tt.want)
			}
			if s.Len() != 4 {
				t.Errorf("Len() = %d, want 4", s.Len())
			}
			if s.Union(tt.face.AxisFaces()) != geom.AllFaceSet {
				t.Error("set plus removed axis does not cover all faces")
			}
		})
	}
}

func TestParseFaceSet(t *testing.T) {
	tests := []struct {
		input   string
		want    geom.FaceSet
		wantErr bool
	}{
		{input: "", want: 0},
		{input: "LU", want: geom.FaceSetOf(geom.Up, geom.Left)},
		{input: "UFRDBL", want: geom.AllFaceSet},
		{input: "UU", wantErr: true},
		{input: "UX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := geom.ParseFaceSet(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFaceSet(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFaceSet(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFaceSet_Validate(t *testing.T) {
	if err := geom.AllFaceSet.Validate(); err != nil {
		t.Errorf("AllFaceSet.Validate() error = %v", err)
	}
	if err := geom.FaceSet(0x40).Validate(); err == nil {
		t.Error("FaceSet(0x40).Validate() should fail")
	}
}

func TestFaceSet_JSON(t *testing.T) {
	s := geom.FaceSetOf(geom.Front, geom.Right, geom.Back, geom.Left)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(data), `"FRBL"`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var decoded geom.FaceSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded != s {
		t.Errorf("json round-trip = %v, want %v", decoded, s)
	}
}
