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

// Package config holds the settings of the dxjoint command.
//
// Values are layered: DefaultConfig, then environment variables (optionally
// loaded from a .env file by the caller), then command-line flags. Validate
// runs last.
package config

import (
	"fmt"
	"os"

	dxerrors "dirpx.dev/dxjoint/dxcore/errors"
	"dirpx.dev/dxjoint/dxcore/shape"
	"github.com/rs/zerolog"
)

// Environment variables read by ApplyEnv.
const (
	EnvInput    = "DXJOINT_INPUT"
	EnvFormat   = "DXJOINT_FORMAT"
	EnvLogLevel = "DXJOINT_LOG_LEVEL"
)

// Config holds the command configuration.
type Config struct {
	Input    string       `json:"input"`
	Format   shape.Format `json:"format"` // output format
	LogLevel string       `json:"log_level"`
}

// DefaultConfig returns a Config that reads shape.txt and prints text.
func DefaultConfig() *Config {
	return &Config{
		Input:    "shape.txt",
		Format:   shape.FormatText,
		LogLevel: "info",
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields whose environment variable is set and non-empty.
// A nil lookup reads the process environment.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvInput); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		f, err := shape.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Format = f
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

// Level returns the parsed log level, or zerolog.InfoLevel when LogLevel is
// not a level name.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Input == "" {
		return &dxerrors.ValidationError{Type: "Config", Field: "Input", Reason: "must not be empty"}
	}
	if _, err := shape.ParseFormat(string(c.Format)); err != nil {
		return &dxerrors.ValidationError{Type: "Config", Field: "Format", Reason: "unknown format", Value: string(c.Format)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &dxerrors.ValidationError{Type: "Config", Field: "LogLevel", Reason: err.Error(), Value: c.LogLevel}
	}
	return nil
}
