// SPDX-License-Identifier: MIT

// Package key compiles the legend ("key") configuration of a plot into one
// line of gnuplot script.
//
// 🚀 What is a key?
//
//	The key is the box of sample-line + caption entries that gnuplot draws
//	next to a figure. Its look is driven by a single command:
//	  set key on inside top right vertically Left reverse title 'Legend' box
//
// ✨ Key features:
//   - Properties holds every knob as an explicit "set / unset" field;
//     an unset field emits nothing and the engine default applies.
//   - One named mutator per attribute, all chainable.
//   - Script() is pure and deterministic: fixed token order
//     position → stacking → justification → order → title → box.
//   - Hide() is absorbing: the line collapses to "set key off".
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvplot/key"
//
//	p := key.New()
//	p.SetPosition(key.Inside(key.Top, key.Right)).
//		SetStacking(key.Vertically).
//		SetTitle("Legend")
//	fmt.Print(p.Script())
//
// Limitations:
//
//   - Title text is written verbatim between single quotes. A title that
//     itself contains a single quote yields a line gnuplot cannot parse;
//     no escaping convention is applied.
//   - Only Inside/Outside placement is supported; absolute X/Y placement is not.
//
// Complexity: every operation is O(1) in the number of fields.
package key
