// SPDX-License-Identifier: MIT
// Package: lvplot/keyconf
//
// errors.go — sentinel errors for legend config loading.

package keyconf

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode indicates the document is not valid TOML/YAML or holds keys
	// this package does not know.
	ErrDecode = errors.New("keyconf: decode failed")

	// ErrUnsupportedFormat indicates a file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("keyconf: unsupported format")

	// ErrIncompletePosition indicates a position table missing its vertical
	// or horizontal anchor.
	ErrIncompletePosition = errors.New("keyconf: position needs vertical and horizontal")
)

// fieldErr prefixes err with the config field it came from, keeping the chain
// intact for errors.Is.
func fieldErr(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
