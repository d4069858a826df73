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
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model"
	"dirpx.dev/dxjoint/dxcore/model/chain"
	"dirpx.dev/dxjoint/dxcore/model/geom"
	"dirpx.dev/dxjoint/dxcore/model/semver"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the document format written by this package. Documents
// whose version is Compatible with it can be read.
var FormatVersion = semver.MustParseVersion("1.0.0")

//go:embed shape.schema.json
var schemaJSON string

const schemaURL = "https://dirpx.dev/dxjoint/shape.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString(schemaURL, schemaJSON)
})

// Document is the serialized form of a chain: the direction of every block
// after the root, in order.
//
// Example (YAML):
//
//	version: 1.0.0
//	name: elbow
//	moves: [U, F, R]
type Document struct {
	Version semver.Version `json:"version" yaml:"version"`
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Moves   []geom.Face    `json:"moves" yaml:"moves"`
}

// DocumentOf returns the current-format document describing c.
func DocumentOf(name string, c *chain.Chain) Document {
	return Document{Version: FormatVersion, Name: name, Moves: c.Moves()}
}

// Chain builds the chain the document describes.
func (d Document) Chain() (*chain.Chain, error) {
	return chain.FromMoves(d.Moves)
}

// DecodeJSON validates data against the shape schema and decodes it.
func DecodeJSON(data []byte) (Document, error) {
	schema, err := compileSchema()
	if err != nil {
		return Document{}, fmt.Errorf("compile shape schema: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, &dxerrors.UnmarshalError{Type: "Document", Data: data, Reason: err.Error()}
	}
	if err := schema.Validate(raw); err != nil {
		return Document{}, fmt.Errorf("shape document does not match schema: %w", err)
	}

	d := new(Document)
	if err := model.FromJSON(data, &d); err != nil {
		return Document{}, err
	}
	return *d, nil
}

// DecodeYAML decodes and validates a YAML document.
func DecodeYAML(data []byte) (Document, error) {
	d := new(Document)
	if err := model.FromYAML(data, &d); err != nil {
		return Document{}, err
	}
	return *d, nil
}

// Compile-time assertion that Document implements model.Model.
var _ model.Model = (*Document)(nil)

// String renders the document as "name@version:MOVES".
func (d Document) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString("@")
	b.WriteString(d.Version.String())
	b.WriteString(":")
	for _, f := range d.Moves {
		b.WriteString(f.String())
	}
	return b.String()
}

// Redacted omits the moves, which can be long.
func (d Document) Redacted() string {
	return fmt.Sprintf("%s@%s (%d moves)", d.Name, d.Version, len(d.Moves))
}

// TypeName returns "Document".
func (d Document) TypeName() string {
	return "Document"
}

// IsZero reports whether the document is entirely empty.
func (d Document) IsZero() bool {
	return d.Version.IsZero() && d.Name == "" && len(d.Moves) == 0
}

// Validate checks the format version and every move.
func (d Document) Validate() error {
	if err := d.Version.Validate(); err != nil {
		return fmt.Errorf("Document.Version: %w", err)
	}
	if !FormatVersion.Compatible(d.Version) {
		return &dxerrors.ValidationError{
			Type:   d.TypeName(),
			Field:  "Version",
			Reason: fmt.Sprintf("format %s is not compatible with supported %s", d.Version, FormatVersion),
			Value:  d.Version.String(),
		}
	}
	if err := model.ValidateAll(d.Moves); err != nil {
		return fmt.Errorf("Document.Moves: %w", err)
	}
	return nil
}

// MarshalJSON validates and encodes the document.
func (d Document) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}

	type documentJSON Document
	doc := documentJSON(d)
	if doc.Moves == nil {
		doc.Moves = []geom.Face{}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes and validates the document.
func (d *Document) UnmarshalJSON(data []byte) error {
	type documentJSON Document
	var temp documentJSON

	if err := json.Unmarshal(data, &temp); err != nil {
		return fmt.Errorf("failed to unmarshal Document: %w", err)
	}

	*d = Document(temp)

	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid Document after unmarshal: %w", err)
	}
	return nil
}

// MarshalYAML validates and encodes the document, moves in flow style.
func (d Document) MarshalYAML() (interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}

	type documentYAML Document
	var node yaml.Node
	if err := node.Encode(documentYAML(d)); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "moves" {
			node.Content[i+1].Style = yaml.FlowStyle
		}
	}
	return &node, nil
}

// UnmarshalYAML decodes and validates the document.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type documentYAML Document
	var temp documentYAML

	if err := node.Decode(&temp); err != nil {
		return fmt.Errorf("failed to unmarshal Document: %w", err)
	}

	*d = Document(temp)

	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid Document after unmarshal: %w", err)
	}
	return nil
}
