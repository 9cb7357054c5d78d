// SPDX-License-Identifier: MIT
// Package: lvplot/keyconf
//
// spec.go — the decoded document and its conversion into key.Properties.

package keyconf

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvplot/key"
)

// PositionSpec is the [position] table.
type PositionSpec struct {
	// Placement is "inside" or "outside"; empty means inside.
	Placement  string `toml:"placement" yaml:"placement"`
	Vertical   string `toml:"vertical" yaml:"vertical"`
	Horizontal string `toml:"horizontal" yaml:"horizontal"`
}

// BoxSetting is the "boxed" key. It accepts a bool (boxed = true) or a word
// understood by key.ParseBoxed (boxed = "yes", "no", "on", "off", ...).
type BoxSetting struct {
	Value key.Boxed
	// Set is false when the key is absent from the document.
	Set bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (b *BoxSetting) UnmarshalTOML(v any) error { return b.assign(v) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *BoxSetting) UnmarshalYAML(n *yaml.Node) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return err
	}

	return b.assign(v)
}

func (b *BoxSetting) assign(v any) error {
	switch x := v.(type) {
	case bool:
		b.Value = key.No
		if x {
			b.Value = key.Yes
		}
	case string:
		sel, err := key.ParseBoxed(x)
		if err != nil {
			return fieldErr("boxed", err)
		}
		b.Value = sel
	default:
		return fieldErr("boxed", fmt.Errorf("%w: want bool or word, got %T", key.ErrUnknownToken, v))
	}
	b.Set = true

	return nil
}

// Spec is a legend description as written in a config file.
// Pointer and empty-string fields mean "not given".
type Spec struct {
	Visible       *bool         `toml:"visible" yaml:"visible"`
	Boxed         BoxSetting    `toml:"boxed" yaml:"boxed"`
	Position      *PositionSpec `toml:"position" yaml:"position"`
	Stacking      string        `toml:"stacking" yaml:"stacking"`
	Justification string        `toml:"justification" yaml:"justification"`
	Order         string        `toml:"order" yaml:"order"`
	Title         *string       `toml:"title" yaml:"title"`
}

// Properties builds a key from s. All invalid fields are reported together;
// on error the returned Properties is nil.
func (s Spec) Properties() (*key.Properties, error) {
	p := key.New()

	var errs error
	if s.Visible != nil && !*s.Visible {
		p.Hide()
	}
	if s.Boxed.Set {
		p.SetBoxed(s.Boxed.Value)
	}
	if s.Position != nil {
		pos, err := s.Position.position()
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			p.SetPosition(pos)
		}
	}
	if s.Stacking != "" {
		st, err := key.ParseStacked(s.Stacking)
		if err != nil {
			errs = multierr.Append(errs, fieldErr("stacking", err))
		} else {
			p.SetStacking(st)
		}
	}
	if s.Justification != "" {
		j, err := key.ParseJustification(s.Justification)
		if err != nil {
			errs = multierr.Append(errs, fieldErr("justification", err))
		} else {
			p.SetJustification(j)
		}
	}
	if s.Order != "" {
		o, err := key.ParseOrder(s.Order)
		if err != nil {
			errs = multierr.Append(errs, fieldErr("order", err))
		} else {
			p.SetOrder(o)
		}
	}
	if s.Title != nil {
		p.SetTitle(*s.Title)
	}

	if errs != nil {
		return nil, errs
	}

	return p, nil
}

// position resolves the table into a key.Position.
func (ps PositionSpec) position() (key.Position, error) {
	if ps.Vertical == "" || ps.Horizontal == "" {
		return key.Position{}, fieldErr("position", ErrIncompletePosition)
	}

	var errs error
	placement := key.InsidePlacement
	if ps.Placement != "" {
		pl, err := key.ParsePlacement(ps.Placement)
		if err != nil {
			errs = multierr.Append(errs, fieldErr("position.placement", err))
		}
		placement = pl
	}
	v, err := key.ParseVertical(ps.Vertical)
	if err != nil {
		errs = multierr.Append(errs, fieldErr("position.vertical", err))
	}
	h, err := key.ParseHorizontal(ps.Horizontal)
	if err != nil {
		errs = multierr.Append(errs, fieldErr("position.horizontal", err))
	}
	if errs != nil {
		return key.Position{}, errs
	}

	if placement == key.OutsidePlacement {
		return key.Outside(v, h), nil
	}

	return key.Inside(v, h), nil
}
