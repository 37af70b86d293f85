// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package utfutil

const (
	surr1    = 0xD800 // first high surrogate
	surr2    = 0xDC00 // first low surrogate
	surr3    = 0xE000 // first code point past the surrogate range
	surrSelf = 0x10000
)

// IsHighSurrogate reports whether w is in [0xD800, 0xDBFF].
func IsHighSurrogate(w uint16) bool { return w >= surr1 && w < surr2 }

// IsLowSurrogate reports whether w is in [0xDC00, 0xDFFF].
func IsLowSurrogate(w uint16) bool { return w >= surr2 && w < surr3 }

// CombineSurrogates returns the code point above the Basic Multilingual
// Plane jointly encoded by a high/low surrogate pair.
func CombineSurrogates(high, low uint16) rune {
	return (rune(high&0x3FF)<<10 | rune(low&0x3FF)) + surrSelf
}

// SplitSurrogate returns the surrogate pair encoding r, which must be at
// least 0x10000.
func SplitSurrogate(r rune) (high, low uint16) {
	return uint16(surr1 + (r-surrSelf)>>10), uint16(surr2 + (r & 0x3FF))
}
