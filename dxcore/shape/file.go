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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/model/chain"
	"github.com/klauspost/compress/zstd"
)

// Format names a shape encoding.
type Format string

const (
	// FormatText is the line-per-token format.
	FormatText Format = "text"

	// FormatJSON is a JSON Document.
	FormatJSON Format = "json"

	// FormatYAML is a YAML Document.
	FormatYAML Format = "yaml"
)

// CompressedSuffix marks zstd-compressed files.
const CompressedSuffix = ".zst"

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	default:
		return "", &dxerrors.ParseError{Type: "Format", Value: s}
	}
}

// FormatOf guesses the format from the file name, ignoring a trailing
// ".zst". Unknown extensions are read as text, like the plain shape.txt the
// tool defaults to.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(strings.TrimSuffix(path, CompressedSuffix))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

type zstdReadCloser struct {
	dec *zstd.Decoder
	f   *os.File
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return z.f.Close()
}

// Open opens path for reading, decompressing it on the fly when its name
// ends in ".zst".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstd reader for %s: %w", path, err)
	}
	return &zstdReadCloser{dec: dec, f: f}, nil
}

type zstdWriteCloser struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdWriteCloser) Write(p []byte) (int, error) {
	return z.enc.Write(p)
}

func (z *zstdWriteCloser) Close() error {
	return errors.Join(z.enc.Close(), z.f.Close())
}

// Create creates or truncates path for writing, compressing with zstd when
// its name ends in ".zst".
func Create(path string) (io.WriteCloser, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedSuffix) {
		return f, nil
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("zstd writer for %s: %w", path, err)
	}
	return &zstdWriteCloser{enc: enc, f: f}, nil
}

// Decode reads a chain in the given format from r.
func Decode(r io.Reader, format Format) (*chain.Chain, error) {
	if format == FormatText {
		return ReadText(r)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read shape: %w", err)
	}

	var doc Document
	switch format {
	case FormatJSON:
		doc, err = DecodeJSON(data)
	case FormatYAML:
		doc, err = DecodeYAML(data)
	default:
		return nil, &dxerrors.ParseError{Type: "Format", Value: string(format)}
	}
	if err != nil {
		return nil, err
	}
	return doc.Chain()
}

// LoadFile reads the chain stored at path, choosing the decoder with
// FormatOf.
func LoadFile(path string) (*chain.Chain, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	c, err := Decode(rc, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SaveFile writes c to path in the format FormatOf picks. Text files receive
// the token stream, so LoadFile(path) reproduces c.
func SaveFile(path, name string, c *chain.Chain) (err error) {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	if FormatOf(path) == FormatText {
		return WriteTokens(wc, c)
	}
	return Encode(wc, FormatOf(path), DocumentOf(name, c))
}
