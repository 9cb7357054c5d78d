// SPDX-License-Identifier: MIT
// Package: lvplot/key
//
// options.go — functional options for New.
//
// Contract:
//   • Options are plain func(*Properties) closures applied in order by New;
//     later options override earlier ones.
//   • Option constructors never validate: every argument type is a closed enum.

package key

// Option customizes a Properties value during New.
type Option func(*Properties)

// WithHidden starts the key hidden.
func WithHidden() Option {
	return func(p *Properties) { p.Hide() }
}

// WithBox draws a border around the key.
func WithBox() Option {
	return func(p *Properties) { p.SetBoxed(Yes) }
}

// WithJustification sets the entry text justification.
func WithJustification(j Justification) Option {
	return func(p *Properties) { p.SetJustification(j) }
}

// WithOrder sets the sample/text order.
func WithOrder(o Order) Option {
	return func(p *Properties) { p.SetOrder(o) }
}

// WithPosition sets the key position.
func WithPosition(pos Position) Option {
	return func(p *Properties) { p.SetPosition(pos) }
}

// WithStacking sets the stacking direction.
func WithStacking(s Stacked) Option {
	return func(p *Properties) { p.SetStacking(s) }
}

// WithTitle sets the key title.
func WithTitle(title string) Option {
	return func(p *Properties) { p.SetTitle(title) }
}
