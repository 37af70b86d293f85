// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package utfutil

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// InvalidPolicy selects what a converter does when it encounters input
// that is not valid Unicode. The set is closed; converters switch over it
// exhaustively.
type InvalidPolicy int

const (
	// Substitute emits one U+FFFD per invalid input unit.
	Substitute InvalidPolicy = iota

	// Preserve8 escapes each invalid byte of 8-bit input into
	// [0xDC80, 0xDCFF] so the byte survives a round trip through the wider
	// encodings and back.
	Preserve8

	// Preserve16 carries lone surrogates of 16-bit input through 8-bit
	// form by encoding the surrogate value directly (WTF-8), so the unit
	// survives the round trip back to 16-bit form.
	Preserve16
)

func (p InvalidPolicy) String() string {
	switch p {
	case Substitute:
		return "substitute"
	case Preserve8:
		return "preserve8"
	case Preserve16:
		return "preserve16"
	}
	return "unknown"
}

// ParsePolicy maps a policy name to its value. The empty string means
// Substitute, the default.
func ParsePolicy(name string) (InvalidPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "substitute":
		return Substitute, nil
	case "preserve8":
		return Preserve8, nil
	case "preserve16":
		return Preserve16, nil
	}
	return Substitute, errors.Newf("unknown invalid-input policy %q", name)
}
