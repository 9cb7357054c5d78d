// SPDX-License-Identifier: MIT
// Package: lvplot/key
//
// properties.go — the key property set and its script compiler.
//
// Design:
//   • Optional attributes are wrapped in optional[T]; "unset" means the
//     engine default applies and no token is emitted. No sentinel values.
//   • Mutators store and return the receiver for chaining; they never fail.
//   • Script is a pure function of the current fields and may be called
//     any number of times.
//
// Token order (fixed, gnuplot is order-sensitive):
//   set key on [position] [stacking] [justification] [order] [title '...'] [box]

package key

import (
	"io"
	"strings"
)

const (
	scriptOff = "set key off\n"
	scriptOn  = "set key on "
)

// optional holds a value together with its presence flag.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] { return optional[T]{value: v, set: true} }

func (o optional[T]) get() (T, bool) { return o.value, o.set }

// Scripter is anything that renders itself as gnuplot script text.
// A figure model concatenates the output of its Scripters into one script.
type Scripter interface {
	Script() string
}

// Properties is the legend configuration of one plot.
// The zero value is a visible, unboxed key with every attribute unset,
// identical to New().
//
// Properties is single-owner and not safe for concurrent mutation.
type Properties struct {
	hidden        bool
	boxed         bool
	justification optional[Justification]
	order         optional[Order]
	position      optional[Position]
	stacking      optional[Stacked]
	title         optional[string]
}

// compile-time check.
var _ Scripter = (*Properties)(nil)

// New returns a visible, unboxed key with every optional attribute unset,
// then applies opts in order (last wins).
func New(opts ...Option) *Properties {
	p := &Properties{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Hide turns the key off. While hidden, Script emits "set key off" and
// ignores every other attribute.
func (p *Properties) Hide() *Properties {
	p.hidden = true
	return p
}

// Show turns the key on. The key is shown by default.
func (p *Properties) Show() *Properties {
	p.hidden = false
	return p
}

// SetBoxed selects whether the key is surrounded with a border.
// The key is not boxed by default.
func (p *Properties) SetBoxed(b Boxed) *Properties {
	p.boxed = b == Yes
	return p
}

// SetJustification changes the justification of the text of each entry.
// gnuplot justifies to the Right when unset.
func (p *Properties) SetJustification(j Justification) *Properties {
	p.justification = some(j)
	return p
}

// SetOrder changes the order of sample and text in each entry.
// gnuplot uses TextThenSample when unset.
func (p *Properties) SetOrder(o Order) *Properties {
	p.order = some(o)
	return p
}

// SetPosition selects where to place the key.
// gnuplot places it Inside(Top, Right) when unset.
func (p *Properties) SetPosition(pos Position) *Properties {
	p.position = some(pos)
	return p
}

// SetStacking changes how the entries of the key are stacked.
func (p *Properties) SetStacking(s Stacked) *Properties {
	p.stacking = some(s)
	return p
}

// SetTitle sets the key title. The text is emitted verbatim between single
// quotes; a title containing a single quote produces an unparsable line.
func (p *Properties) SetTitle(title string) *Properties {
	p.title = some(title)
	return p
}

// ClearJustification restores the engine default justification.
func (p *Properties) ClearJustification() *Properties {
	p.justification = optional[Justification]{}
	return p
}

// ClearOrder restores the engine default order.
func (p *Properties) ClearOrder() *Properties {
	p.order = optional[Order]{}
	return p
}

// ClearPosition restores the engine default position.
func (p *Properties) ClearPosition() *Properties {
	p.position = optional[Position]{}
	return p
}

// ClearStacking restores the engine default stacking.
func (p *Properties) ClearStacking() *Properties {
	p.stacking = optional[Stacked]{}
	return p
}

// ClearTitle removes the key title.
func (p *Properties) ClearTitle() *Properties {
	p.title = optional[string]{}
	return p
}

// Visible reports whether the key is shown.
func (p *Properties) Visible() bool { return !p.hidden }

// IsBoxed reports whether the key is drawn with a border.
func (p *Properties) IsBoxed() bool { return p.boxed }

// Justification returns the justification and whether it is set.
func (p *Properties) Justification() (Justification, bool) { return p.justification.get() }

// Order returns the entry order and whether it is set.
func (p *Properties) Order() (Order, bool) { return p.order.get() }

// Position returns the key position and whether it is set.
func (p *Properties) Position() (Position, bool) { return p.position.get() }

// Stacking returns the stacking direction and whether it is set.
func (p *Properties) Stacking() (Stacked, bool) { return p.stacking.get() }

// Title returns the key title and whether it is set.
func (p *Properties) Title() (string, bool) { return p.title.get() }

// Clone returns an independent copy of p.
func (p *Properties) Clone() *Properties {
	c := *p
	return &c
}

// Script renders p as one newline-terminated line of gnuplot script.
//
// Algorithm:
//  1. hidden → "set key off\n" (nothing else is consulted).
//  2. "set key on ", then for each set field, in this order (fields holding
//     an out-of-range enum value are skipped):
//     position ("inside|outside <v> <h> "), stacking, justification, order,
//     title ("title '<text>' "), and "box " when boxed.
//  3. Terminate with "\n".
//
// Complexity: O(len(title)) time and space.
func (p *Properties) Script() string {
	if p.hidden {
		return scriptOff
	}

	var sb strings.Builder
	sb.WriteString(scriptOn)

	if pos, ok := p.position.get(); ok {
		writeToken(&sb, pos.Display())
	}
	if s, ok := p.stacking.get(); ok {
		writeToken(&sb, s.Display())
	}
	if j, ok := p.justification.get(); ok {
		writeToken(&sb, j.Display())
	}
	if o, ok := p.order.get(); ok {
		writeToken(&sb, o.Display())
	}
	if t, ok := p.title.get(); ok {
		sb.WriteString("title '")
		sb.WriteString(t)
		sb.WriteString("' ")
	}
	if p.boxed {
		sb.WriteString("box ")
	}

	sb.WriteByte('\n')

	return sb.String()
}

// writeToken appends tok and a separating blank; out-of-range enum values
// display as "" and are skipped.
func writeToken(sb *strings.Builder, tok string) {
	if tok == "" {
		return
	}
	sb.WriteString(tok)
	sb.WriteByte(' ')
}

// String returns the same text as Script.
func (p *Properties) String() string { return p.Script() }

// WriteTo writes the script line to w. It implements io.WriterTo.
func (p *Properties) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.Script())
	return int64(n), err
}
