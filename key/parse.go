// SPDX-License-Identifier: MIT
// Package: lvplot/key
//
// parse.go — reverse lookup from words to enum values.
//
// Matching is case-insensitive and accepts either the gnuplot token
// (Display) or the Go name (String), so "top", "Top" and "TOP" all map to
// Top, and "reverse" and "SampleThenText" both map to SampleThenText.

package key

import "strings"

// lookup scans values in order and returns the first whose token or name
// equals word (case-insensitive).
func lookup[T interface {
	comparable
	Display() string
	String() string
}](kind, word string, values ...T) (T, error) {
	w := strings.TrimSpace(word)
	for _, v := range values {
		if strings.EqualFold(w, v.Display()) || strings.EqualFold(w, v.String()) {
			return v, nil
		}
	}

	var zero T

	return zero, unknownTokenf(kind, word)
}

// ParseVertical maps "top", "center" or "bottom" to a Vertical.
func ParseVertical(word string) (Vertical, error) {
	return lookup("vertical", word, Top, VCenter, Bottom)
}

// ParseHorizontal maps "left", "center" or "right" to a Horizontal.
func ParseHorizontal(word string) (Horizontal, error) {
	return lookup("horizontal", word, Left, HCenter, Right)
}

// ParseJustification maps "left" or "right" to a Justification.
func ParseJustification(word string) (Justification, error) {
	return lookup("justification", word, JustifyLeft, JustifyRight)
}

// ParseOrder maps "reverse"/"noreverse" (or the Go names) to an Order.
func ParseOrder(word string) (Order, error) {
	return lookup("order", word, SampleThenText, TextThenSample)
}

// ParseStacked maps "horizontally"/"vertically" to a Stacked value.
// The gnuplot spellings "horizontal" and "vertical" are accepted too.
func ParseStacked(word string) (Stacked, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "horizontal":
		return Horizontally, nil
	case "vertical":
		return Vertically, nil
	}

	return lookup("stacking", word, Horizontally, Vertically)
}

// ParsePlacement maps "inside" or "outside" to a Placement.
func ParsePlacement(word string) (Placement, error) {
	return lookup("placement", word, InsidePlacement, OutsidePlacement)
}

// ParseBoxed maps "yes"/"no" (also "true"/"false", "on"/"off") to a Boxed selector.
func ParseBoxed(word string) (Boxed, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "yes", "true", "on", "box":
		return Yes, nil
	case "no", "false", "off", "nobox":
		return No, nil
	}

	return No, unknownTokenf("boxed", word)
}
