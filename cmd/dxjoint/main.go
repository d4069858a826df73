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

// Command dxjoint reads a block chain shape and prints the coordinate of
// every block together with the faces each elbow joint can rotate around.
//
//	dxjoint -input shape.txt
//	dxjoint -input elbow.json.zst -format yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dxjoint/dxcore/shape"
	"dirpx.dev/dxjoint/internal/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("dxjoint failed")
	}
}

// run layers the configuration (defaults, environment, args), loads the
// input shape and writes its description to stdout.
func run(args []string, stdout io.Writer) error {
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(nil); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("dxjoint", flag.ContinueOnError)
	format := string(cfg.Format)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "shape file to read (.txt, .json, .yaml, optionally .zst)")
	fs.StringVar(&format, "format", format, "output format: text, json or yaml")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := shape.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("invalid -format: %w", err)
	}
	cfg.Format = f

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	c, err := shape.LoadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("load shape: %w", err)
	}

	name := shapeName(cfg.Input)
	log.Debug().
		Str("input", cfg.Input).
		Str("chain", c.Redacted()).
		Int("joints", shape.NewReport(name, c).Joints()).
		Msg("shape loaded")

	if err := shape.Write(stdout, cfg.Format, name, c); err != nil {
		return fmt.Errorf("write description: %w", err)
	}
	return nil
}

// shapeName is the file name without directory or extensions.
func shapeName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}
