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

package semver_test

import (
	"encoding/json"
	"errors"
	"testing"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple_version", input: "1.2.3", want: "1.2.3"},
		{name: "v_prefix", input: "v1.0.0", want: "1.0.0"},
		{name: "with_prerelease", input: "1.0.0-alpha.1", want: "1.0.0-alpha.1"},
		{name: "with_metadata", input: "2.0.0+build.123", want: "2.0.0+build.123"},
		{name: "missing_patch", input: "1.2", wantErr: true},
		{name: "garbage", input: "one", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := semver.ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *dxerrors.ParseError
				if !errors.As(err, &pe) || pe.Type != "Version" {
					t.Errorf("ParseVersion(%q) error = %v, want Version ParseError", tt.input, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "1.0.0", b: "1.0.0", want: 0},
		{name: "metadata_ignored", a: "1.0.0+a", b: "1.0.0+b", want: 0},
		{name: "patch_less", a: "1.0.0", b: "1.0.1", want: -1},
		{name: "prerelease_before_release", a: "1.0.0-rc.1", b: "1.0.0", want: -1},
		{name: "major_greater", a: "2.0.0", b: "1.9.9", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := semver.MustParseVersion(tt.a), semver.MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVersion_Compatible(t *testing.T) {
	tests := []struct {
		name   string
		reader string
		doc    string
		want   bool
	}{
		{name: "same", reader: "1.0.0", doc: "1.0.0", want: true},
		{name: "newer_minor", reader: "1.0.0", doc: "1.3.0", want: true},
		{name: "older_patch", reader: "1.2.3", doc: "1.0.0", want: true},
		{name: "major_bump", reader: "1.0.0", doc: "2.0.0", want: false},
		{name: "zero_major_same_minor", reader: "0.2.0", doc: "0.2.5", want: true},
		{name: "zero_major_other_minor", reader: "0.2.0", doc: "0.3.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, doc := semver.MustParseVersion(tt.reader), semver.MustParseVersion(tt.doc)
			if got := reader.Compatible(doc); got != tt.want {
				t.Errorf("%s.Compatible(%s) = %v, want %v", tt.reader, tt.doc, got, tt.want)
			}
		})
	}
}

func TestVersion_IsZero(t *testing.T) {
	var v semver.Version
	if !v.IsZero() {
		t.Error("zero Version IsZero() = false")
	}
	if v.String() != "0.0.0" {
		t.Errorf("zero Version String() = %q", v.String())
	}
	if semver.MustParseVersion("0.0.1").IsZero() {
		t.Error("0.0.1 IsZero() = true")
	}
}

func TestMustParseVersion_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseVersion(\"bad\") did not panic")
		}
	}()
	semver.MustParseVersion("bad")
}

func TestVersion_Serialization(t *testing.T) {
	type holder struct {
		Version semver.Version `json:"version" yaml:"version"`
	}
	h := holder{Version: semver.MustParseVersion("1.2.0-beta.1")}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if got, want := string(data), `{"version":"1.2.0-beta.1"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
	var fromJSON holder
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !fromJSON.Version.Equal(h.Version) {
		t.Errorf("json round-trip = %v", fromJSON.Version)
	}

	out, err := yaml.Marshal(h)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var fromYAML holder
	if err := yaml.Unmarshal(out, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if !fromYAML.Version.Equal(h.Version) {
		t.Errorf("yaml round-trip = %v", fromYAML.Version)
	}

	if err := json.Unmarshal([]byte(`{"version":"x.y"}`), &fromJSON); err == nil {
		t.Error("json.Unmarshal() should fail for an invalid version")
	}
}
