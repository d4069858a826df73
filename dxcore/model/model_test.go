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

package model_test

import (
	"strings"
	"testing"

	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/chain"
	"dirpx.dev/dxjoint/dxcore/model/geom"
)

// Compile-time checks for the model types of this module.
var (
	_ model.Model = (*geom.Face)(nil)
	_ model.Model = (*geom.Vec3)(nil)
	_ model.Model = (*geom.Side)(nil)
	_ model.Model = (*geom.FaceSet)(nil)
	_ model.Model = (*chain.Block)(nil)
	_ model.Model = (*chain.Chain)(nil)
)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		faces     []geom.Face
		wantErr   bool
		wantIndex []string
	}{
		{name: "empty", faces: nil},
		{name: "all valid", faces: geom.AllFaces()},
		{
			name:      "one invalid",
			faces:     []geom.Face{geom.Up, geom.Face(7), geom.Left},
			wantErr:   true,
			wantIndex: []string{"model[1] (Face)"},
		},
		{
			name:      "collects every failure",
			faces:     []geom.Face{geom.Face(6), geom.Up, geom.Face(9)},
			wantErr:   true,
			wantIndex: []string{"model[0] (Face)", "model[2] (Face)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.faces)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantIndex {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("ValidateAll() error = %q, want it to mention %q", err, want)
				}
			}
		})
	}
}

func TestValidateAll_Blocks(t *testing.T) {
	root := chain.NewRoot(geom.Vec3{})
	child, err := chain.AttachChild(&root, geom.Front)
	if err != nil {
		t.Fatalf("AttachChild() error = %v", err)
	}

	if err := model.ValidateAll([]chain.Block{root, child}); err != nil {
		t.Errorf("ValidateAll(blocks) error = %v", err)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	face := geom.Right
	data, err := model.ToJSON(&face)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	if string(data) != `"R"` {
		t.Errorf("ToJSON() = %s, want \"R\"", data)
	}

	var got *geom.Face
	if err := model.FromJSON(data, &got); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if got == nil || *got != geom.Right {
		t.Errorf("FromJSON() = %v, want R", got)
	}
}

func TestToJSON_Invalid(t *testing.T) {
	bad := geom.Face(12)
	if _, err := model.ToJSON(&bad); err == nil {
		t.Error("ToJSON() should fail on an invalid face")
	}
	if _, err := model.ToYAML(&bad); err == nil {
		t.Error("ToYAML() should fail on an invalid face")
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown label", data: `"X"`},
		{name: "not a string", data: `3`},
		{name: "malformed", data: `"U`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *geom.Face
			if err := model.FromJSON([]byte(tt.data), &got); err == nil {
				t.Errorf("FromJSON(%s) error = nil", tt.data)
			}
		})
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	v := geom.Vec3{X: 1, Y: -2, Z: 3}
	data, err := model.ToYAML(&v)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var got *geom.Vec3
	if err := model.FromYAML(data, &got); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if got == nil || *got != v {
		t.Errorf("FromYAML() = %v, want %v", got, v)
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	var got *geom.Vec3
	if err := model.FromYAML([]byte("[1, 2]"), &got); err == nil {
		t.Error("FromYAML() should fail on a two-element coordinate")
	}
}

func TestEqual(t *testing.T) {
	a, b, c := geom.Up, geom.Up, geom.Down
	bad := geom.Face(8)

	tests := []struct {
		name string
		x, y *geom.Face
		want bool
	}{
		{name: "same face", x: &a, y: &b, want: true},
		{name: "different faces", x: &a, y: &c, want: false},
		{name: "invalid never equal", x: &bad, y: &bad, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.Equal(tt.x, tt.y); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", *tt.x, *tt.y, got, tt.want)
			}
		})
	}
}
