// SPDX-License-Identifier: MIT

// Package keyconf reads a declarative legend description from TOML or YAML
// and turns it into a *key.Properties.
//
// A TOML document:
//
//	visible       = true
//	boxed         = true             # or "yes", "no", "on", "off"
//	stacking      = "vertically"
//	justification = "left"
//	order         = "reverse"
//	title         = "Legend"
//
//	[position]
//	placement  = "outside"
//	vertical   = "top"
//	horizontal = "right"
//
// The same keys are used in YAML. Absent keys leave the attribute unset so
// the engine default applies. Words are matched case-insensitively against
// the gnuplot token or the Go constant name (see key.Parse*).
//
// Errors: every invalid field is reported at once (aggregated with
// go.uber.org/multierr); each one matches its sentinel via errors.Is.
package keyconf
