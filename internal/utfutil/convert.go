// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package utfutil

// replacement is the Unicode replacement character U+FFFD.
const replacement = 0xFFFD

// UTF8ToRunes converts a UTF-8 byte sequence to code points. Each invalid
// byte yields exactly one output value under errs and the scan resumes at
// the very next byte, so a run of garbage cannot swallow valid data behind
// it. A truncated sequence at the end of the buffer is treated like any
// other invalid byte.
func UTF8ToRunes(s []byte, errs InvalidPolicy) []rune {
	u := make([]rune, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch ImplicitLength(c) {
		case 1:
			u = append(u, rune(c))
			continue
		case 2:
			if i+1 < len(s) && IsContinuation(s[i+1]) {
				u = append(u, assemble2(c, s[i+1]))
				i++
				continue
			}
		case 3:
			// 0xED leads encode surrogate values, normally rejected in
			// 8-bit form; under Preserve16 they carry escaped lone
			// surrogates and must decode.
			if i+2 < len(s) && IsContinuation(s[i+1]) && IsContinuation(s[i+2]) &&
				((errs == Preserve16 && c == 0xED) || !BadPair(c, s[i+1])) {
				u = append(u, assemble3(c, s[i+1], s[i+2]))
				i += 2
				continue
			}
		case 4:
			if i+3 < len(s) && validTrail4(c, s[i+1], s[i+2], s[i+3]) {
				u = append(u, assemble4(c, s[i+1], s[i+2], s[i+3]))
				i += 3
				continue
			}
		}
		if errs == Preserve8 {
			u = append(u, surr2+rune(c))
		} else {
			u = append(u, replacement)
		}
	}
	return u
}

// RunesToUTF8 converts code points to a UTF-8 byte sequence, choosing the
// minimal width for each value. Surrogate values are not encodable in
// 8-bit form: under Substitute they become U+FFFD, under Preserve8 a value
// in [0xDC80, 0xDCFF] becomes its original low byte, and under Preserve16
// any surrogate is encoded directly so it can be reconstituted later.
// Values beyond U+10FFFF become U+FFFD.
func RunesToUTF8(u []rune, errs InvalidPolicy) []byte {
	s := make([]byte, 0, len(u))
	for _, r := range u {
		// Negative values sort with the out-of-range ones.
		c := uint32(r)
		switch {
		case c < 0x80:
			s = append(s, byte(c))
		case c < 0x800:
			s = append(s, byte(c>>6)|0xC0, byte(c)&0x3F|0x80)
		case c >= surr1 && c < surr3 && errs != Preserve16:
			if errs == Preserve8 && c >= 0xDC80 && c <= 0xDCFF {
				s = append(s, byte(c))
			} else {
				s = append(s, 0xEF, 0xBF, 0xBD)
			}
		case c < surrSelf:
			s = append(s, byte(c>>12)|0xE0, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
		case c <= 0x10FFFF:
			s = append(s, byte(c>>18)|0xF0, byte(c>>12)&0x3F|0x80, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
		default:
			s = append(s, 0xEF, 0xBF, 0xBD)
		}
	}
	return s
}

// UTF8ToUTF16 converts a UTF-8 byte sequence to UTF-16 units. Code points
// above the Basic Multilingual Plane become surrogate pairs. Invalid input
// follows the same advance-by-one rule as UTF8ToRunes.
func UTF8ToUTF16(s []byte, errs InvalidPolicy) []uint16 {
	w := make([]uint16, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch ImplicitLength(c) {
		case 1:
			w = append(w, uint16(c))
			continue
		case 2:
			if i+1 < len(s) && IsContinuation(s[i+1]) {
				w = append(w, uint16(assemble2(c, s[i+1])))
				i++
				continue
			}
		case 3:
			if i+2 < len(s) && IsContinuation(s[i+1]) && IsContinuation(s[i+2]) &&
				((errs == Preserve16 && c == 0xED) || !BadPair(c, s[i+1])) {
				w = append(w, uint16(assemble3(c, s[i+1], s[i+2])))
				i += 2
				continue
			}
		case 4:
			if i+3 < len(s) && validTrail4(c, s[i+1], s[i+2], s[i+3]) {
				high, low := SplitSurrogate(assemble4(c, s[i+1], s[i+2], s[i+3]))
				w = append(w, high, low)
				i += 3
				continue
			}
		}
		if errs == Preserve8 {
			w = append(w, surr2+uint16(c))
		} else {
			w = append(w, replacement)
		}
	}
	return w
}

// UTF16ToUTF8 converts UTF-16 units to a UTF-8 byte sequence. A high
// surrogate immediately followed by a low surrogate is consumed as one
// pair. A lone surrogate is invalid: under Substitute it becomes U+FFFD,
// under Preserve8 a unit in [0xDC80, 0xDCFF] becomes its low byte, and
// under Preserve16 it is encoded directly as three bytes.
func UTF16ToUTF8(w []uint16, errs InvalidPolicy) []byte {
	s := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case c < 0x80:
			s = append(s, byte(c))
		case c < 0x800:
			s = append(s, byte(c>>6)|0xC0, byte(c)&0x3F|0x80)
		case c < surr1 || c >= surr3:
			s = append(s, byte(c>>12)|0xE0, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
		case IsHighSurrogate(c) && i+1 < len(w) && IsLowSurrogate(w[i+1]):
			r := CombineSurrogates(c, w[i+1])
			s = append(s, byte(r>>18)|0xF0, byte(r>>12)&0x3F|0x80, byte(r>>6)&0x3F|0x80, byte(r)&0x3F|0x80)
			i++
		case errs == Preserve8 && c >= 0xDC80 && c <= 0xDCFF:
			s = append(s, byte(c))
		case errs == Preserve16:
			s = append(s, byte(c>>12)|0xE0, byte(c>>6)&0x3F|0x80, byte(c)&0x3F|0x80)
		default:
			s = append(s, 0xEF, 0xBF, 0xBD)
		}
	}
	return s
}

// UTF16ToRunes widens UTF-16 units to code points. Surrogate pairs
// combine; a lone surrogate passes through as its own value, so this
// direction never fails.
func UTF16ToRunes(w []uint16) []rune {
	u := make([]rune, 0, len(w))
	for i := 0; i < len(w); i++ {
		if IsHighSurrogate(w[i]) && i+1 < len(w) && IsLowSurrogate(w[i+1]) {
			u = append(u, CombineSurrogates(w[i], w[i+1]))
			i++
		} else {
			u = append(u, rune(w[i]))
		}
	}
	return u
}

// RunesToUTF16 narrows code points to UTF-16 units. Values of 0x10000 and
// above become surrogate pairs; everything else, surrogate values
// included, passes through as a single unit.
func RunesToUTF16(u []rune) []uint16 {
	w := make([]uint16, 0, len(u))
	for _, r := range u {
		if r >= surrSelf {
			high, low := SplitSurrogate(r)
			w = append(w, high, low)
		} else {
			w = append(w, uint16(r))
		}
	}
	return w
}
