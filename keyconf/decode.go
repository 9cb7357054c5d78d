// SPDX-License-Identifier: MIT
// Package: lvplot/keyconf
//
// decode.go — TOML/YAML decoding and file loading.
//
// Both decoders are strict: unknown keys are an ErrDecode, so a typo such as
// "stacked = ..." is reported rather than silently ignored.

package keyconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvplot/internal/logger"
	"github.com/katalvlaran/lvplot/key"
)

// Format is the syntax of a legend config document.
type Format int

const (
	// TOML documents use github.com/BurntSushi/toml.
	TOML Format = iota
	// YAML documents use gopkg.in/yaml.v3.
	YAML
)

// String provides a readable identifier for logs/errors.
func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf picks the Format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseTOML decodes a TOML legend description.
func ParseTOML(data []byte) (Spec, error) {
	var s Spec
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: toml: %v", ErrDecode, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Spec{}, fmt.Errorf("%w: toml: unknown keys %s", ErrDecode, strings.Join(keys, ", "))
	}

	return s, nil
}

// ParseYAML decodes a YAML legend description. An empty document yields the
// zero Spec.
func ParseYAML(data []byte) (Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Spec{}, nil
		}

		return Spec{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}

	return s, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (Spec, error) {
	switch f {
	case TOML:
		return ParseTOML(data)
	case YAML:
		return ParseYAML(data)
	default:
		return Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Load reads and decodes the file at path, choosing the format by extension.
// It logs through the logger carried by ctx (see internal/logger).
func Load(ctx context.Context, path string) (Spec, error) {
	l := logger.L(ctx).With(zap.String("path", path))

	f, err := FormatOf(path)
	if err != nil {
		return Spec{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("keyconf: read %s: %w", path, err)
	}
	l.Debug("decoding legend config", zap.Stringer("format", f), zap.Int("bytes", len(data)))

	s, err := Parse(data, f)
	if err != nil {
		return Spec{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// LoadProperties is Load followed by Spec.Properties.
func LoadProperties(ctx context.Context, path string) (*key.Properties, error) {
	s, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	p, err := s.Properties()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.L(ctx).Debug("compiled legend", zap.String("path", path), zap.Bool("visible", p.Visible()))

	return p, nil
}
