// SPDX-License-Identifier: MIT
// Package: lvplot/key
//
// errors.go — sentinel errors for the key package.
//
// Error policy:
//   • Mutators and Script never fail; enums are closed sets.
//   • The only fallible surface is Parse*, which turns user-provided
//     words (config files, flags) into enum values.
//   • Callers branch with errors.Is; context is attached with %w.

package key

import (
	"errors"
	"fmt"
)

// ErrUnknownToken indicates that a word does not name any value of the
// requested enum type.
// Usage: if errors.Is(err, ErrUnknownToken) { /* report bad config value */ }.
var ErrUnknownToken = errors.New("key: unknown token")

// unknownTokenf wraps ErrUnknownToken with the enum kind and the rejected word,
// e.g. `key: unknown token: vertical "middle"`.
func unknownTokenf(kind, word string) error {
	return fmt.Errorf("%w: %s %q", ErrUnknownToken, kind, word)
}
