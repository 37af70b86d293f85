// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package utfutil converts text among the UTF-8, UTF-16 and UTF-32 forms
// without ever failing: input that is not valid Unicode yields output
// defined by an InvalidPolicy instead of an error. All functions are pure
// and safe for concurrent use on independent inputs.
package utfutil

// Predicates over a single byte of a UTF-8 stream. Classification is by bit
// pattern alone: a byte is ASCII, a lead byte declaring a 2-4 byte
// sequence, a continuation byte, or trash that can neither start nor
// continue a well-formed sequence.

// IsASCII reports whether c is a single-byte character (high bit clear).
func IsASCII(c byte) bool { return c&0x80 == 0x00 }

// IsContinuation reports whether c is a non-initial byte of a multi-byte
// sequence, i.e. tagged 10xxxxxx.
func IsContinuation(c byte) bool { return c&0xC0 == 0x80 }

// IsLead2 reports whether c starts a 2-byte sequence. 0xC0 and 0xC1 are
// excluded: they could only start overlong encodings.
func IsLead2(c byte) bool { return c&0xE0 == 0xC0 && c&0xFE != 0xC0 }

// IsLead3 reports whether c starts a 3-byte sequence.
func IsLead3(c byte) bool { return c&0xF0 == 0xE0 }

// IsLead4 reports whether c starts a 4-byte sequence. 0xF4 is the upper
// bound of the valid range; 0xF5 through 0xFF can never appear.
func IsLead4(c byte) bool { return c&0xFC == 0xF0 || c == 0xF4 }

// IsTrash reports whether c can appear in no well-formed sequence at all.
func IsTrash(c byte) bool {
	return c&0xFE == 0xC0 || (c&0xF0 == 0xF0 && c&0x0C != 0x00 && c != 0xF4)
}

// BadPair reports whether the first two bytes of a 3- or 4-byte sequence
// form a known-invalid combination: an overlong 3-byte encoding (0xE0), a
// code point in the surrogate range (0xED), an overlong 4-byte encoding
// (0xF0), or a value beyond U+10FFFF (0xF4). It does not validate 1- or
// 2-byte sequences.
func BadPair(c1, c2 byte) bool {
	return (c1 == 0xE0 && c2 < 0xA0) ||
		(c1 == 0xED && c2 > 0x9F) ||
		(c1 == 0xF0 && c2 < 0x90) ||
		(c1 == 0xF4 && c2 > 0x8F)
}

// ImplicitLength returns the number of bytes the sequence starting at c
// should occupy according to its high bits alone, or 0 when c cannot start
// a sequence.
func ImplicitLength(c byte) int {
	switch {
	case IsASCII(c):
		return 1
	case IsLead2(c):
		return 2
	case IsLead3(c):
		return 3
	case IsLead4(c):
		return 4
	}
	return 0
}

// validTrail4 reports whether a 4-byte sequence led by c1 carries three
// well-formed continuation bytes and a legal lead pair.
func validTrail4(c1, c2, c3, c4 byte) bool {
	return !BadPair(c1, c2) && IsContinuation(c2) && IsContinuation(c3) && IsContinuation(c4)
}

// assemble* pack validated sequences into a code point by encoding width.
func assemble2(c1, c2 byte) rune { return rune(c1&0x1F)<<6 | rune(c2&0x3F) }

func assemble3(c1, c2, c3 byte) rune {
	return rune(c1&0x0F)<<12 | rune(c2&0x3F)<<6 | rune(c3&0x3F)
}

func assemble4(c1, c2, c3, c4 byte) rune {
	return rune(c1&0x07)<<18 | rune(c2&0x3F)<<12 | rune(c3&0x3F)<<6 | rune(c4&0x3F)
}
