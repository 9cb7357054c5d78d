// SPDX-License-Identifier: MIT
// Package: lvplot/key
//
// types.go — closed value types of the key and their gnuplot tokens.
//
// Design:
//   • Every enum is an int with iota values and two renderings:
//     Display() is the gnuplot token, String() is the Go name for logs/errors.
//   • Token tables are the single source of truth; Parse* in parse.go
//     reads the same tables backwards.
//   • Out-of-range values display as "" and stringify as "Unknown".

package key

// Boxed selects whether a border is drawn around the key.
// It is an input-only selector for SetBoxed; Properties stores a plain bool.
type Boxed int

const (
	// No leaves the key without a border (default).
	No Boxed = iota
	// Yes surrounds the key with a border.
	Yes
)

// String provides a readable identifier for logs/errors.
func (b Boxed) String() string {
	switch b {
	case No:
		return "No"
	case Yes:
		return "Yes"
	default:
		return "Unknown"
	}
}

// Justification is the text justification of each key entry.
type Justification int

const (
	// JustifyLeft justifies entry text to the left.
	JustifyLeft Justification = iota
	// JustifyRight justifies entry text to the right (engine default).
	JustifyRight
)

var justificationTokens = map[Justification]string{
	JustifyLeft:  "Left",
	JustifyRight: "Right",
}

// Display returns the gnuplot token for j, or "" for an out-of-range value.
func (j Justification) Display() string { return justificationTokens[j] }

// String provides a readable identifier for logs/errors.
func (j Justification) String() string {
	switch j {
	case JustifyLeft:
		return "JustifyLeft"
	case JustifyRight:
		return "JustifyRight"
	default:
		return "Unknown"
	}
}

// Order is the order of sample and text inside each key entry.
type Order int

const (
	// SampleThenText draws the sample line before its caption.
	SampleThenText Order = iota
	// TextThenSample draws the caption before its sample line (engine default).
	TextThenSample
)

var orderTokens = map[Order]string{
	SampleThenText: "reverse",
	TextThenSample: "noreverse",
}

// Display returns the gnuplot token for o, or "" for an out-of-range value.
func (o Order) Display() string { return orderTokens[o] }

// String provides a readable identifier for logs/errors.
func (o Order) String() string {
	switch o {
	case SampleThenText:
		return "SampleThenText"
	case TextThenSample:
		return "TextThenSample"
	default:
		return "Unknown"
	}
}

// Stacked is the direction in which key entries are stacked.
type Stacked int

const (
	// Horizontally lays entries out in rows.
	Horizontally Stacked = iota
	// Vertically lays entries out in columns.
	Vertically
)

var stackedTokens = map[Stacked]string{
	Horizontally: "horizontally",
	Vertically:   "vertically",
}

// Display returns the gnuplot token for s, or "" for an out-of-range value.
func (s Stacked) Display() string { return stackedTokens[s] }

// String provides a readable identifier for logs/errors.
func (s Stacked) String() string {
	switch s {
	case Horizontally:
		return "Horizontally"
	case Vertically:
		return "Vertically"
	default:
		return "Unknown"
	}
}

// Vertical is the vertical anchor of the key.
type Vertical int

const (
	// Top anchors the key at the top edge.
	Top Vertical = iota
	// VCenter anchors the key at mid height.
	VCenter
	// Bottom anchors the key at the bottom edge.
	Bottom
)

var verticalTokens = map[Vertical]string{
	Top:     "top",
	VCenter: "center",
	Bottom:  "bottom",
}

// Display returns the gnuplot token for v, or "" for an out-of-range value.
func (v Vertical) Display() string { return verticalTokens[v] }

// String provides a readable identifier for logs/errors.
func (v Vertical) String() string {
	switch v {
	case Top:
		return "Top"
	case VCenter:
		return "VCenter"
	case Bottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Horizontal is the horizontal anchor of the key.
type Horizontal int

const (
	// Left anchors the key at the left edge.
	Left Horizontal = iota
	// HCenter anchors the key at mid width.
	HCenter
	// Right anchors the key at the right edge.
	Right
)

var horizontalTokens = map[Horizontal]string{
	Left:    "left",
	HCenter: "center",
	Right:   "right",
}

// Display returns the gnuplot token for h, or "" for an out-of-range value.
func (h Horizontal) Display() string { return horizontalTokens[h] }

// String provides a readable identifier for logs/errors.
func (h Horizontal) String() string {
	switch h {
	case Left:
		return "Left"
	case HCenter:
		return "HCenter"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Placement tells whether the key is drawn inside or outside the plot border.
type Placement int

const (
	// InsidePlacement draws the key within the plot area.
	InsidePlacement Placement = iota
	// OutsidePlacement draws the key in the margin.
	OutsidePlacement
)

var placementTokens = map[Placement]string{
	InsidePlacement:  "inside",
	OutsidePlacement: "outside",
}

// Display returns the gnuplot token for p, or "" for an out-of-range value.
func (p Placement) Display() string { return placementTokens[p] }

// String provides a readable identifier for logs/errors.
func (p Placement) String() string {
	switch p {
	case InsidePlacement:
		return "Inside"
	case OutsidePlacement:
		return "Outside"
	default:
		return "Unknown"
	}
}

// Position is where the key is placed: inside or outside the border,
// anchored at a (Vertical, Horizontal) corner/edge.
// Absolute X/Y placement is not supported.
// TODO: add an At(x, y) variant once coordinate systems (graph/screen) are modeled.
type Position struct {
	Placement  Placement
	Vertical   Vertical
	Horizontal Horizontal
}

// Inside places the key within the plot area.
func Inside(v Vertical, h Horizontal) Position {
	return Position{Placement: InsidePlacement, Vertical: v, Horizontal: h}
}

// Outside places the key in the margin around the plot area.
func Outside(v Vertical, h Horizontal) Position {
	return Position{Placement: OutsidePlacement, Vertical: v, Horizontal: h}
}

// Display returns "<placement> <vertical> <horizontal>", e.g. "inside top right",
// or "" when any component is out of range.
func (p Position) Display() string {
	if !p.valid() {
		return ""
	}

	return p.Placement.Display() + " " + p.Vertical.Display() + " " + p.Horizontal.Display()
}

// valid reports whether every component names a known value.
func (p Position) valid() bool {
	return p.Placement.Display() != "" && p.Vertical.Display() != "" && p.Horizontal.Display() != ""
}

// String provides a readable identifier for logs/errors, e.g. "Inside(Top, Right)".
func (p Position) String() string {
	return p.Placement.String() + "(" + p.Vertical.String() + ", " + p.Horizontal.String() + ")"
}

// Engine defaults, applied by gnuplot when the matching field is unset.
// They are documentation only and never emitted by Script.
const (
	DefaultJustification = JustifyRight
	DefaultOrder         = TextThenSample
)

// DefaultPosition is the engine default position (a struct, hence not a const).
var DefaultPosition = Inside(Top, Right)
