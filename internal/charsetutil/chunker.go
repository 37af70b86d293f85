// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charsetutil

import (
	"github.com/utfworks/transcode/internal/utfutil"
)

// EncodeFunc converts UTF-16 units to bytes in some target code page. An
// implementation may reject or truncate calls beyond the limit given to
// ChunkedEncode, so unbounded input goes through the chunker.
type EncodeFunc func(w []uint16) ([]byte, error)

// DecodeFunc converts code-page bytes to UTF-16 units, under the same
// per-call contract as EncodeFunc.
type DecodeFunc func(b []byte) ([]uint16, error)

// ChunkedEncode feeds w to fn in chunks of at most limit units and
// concatenates the results. A chunk never ends between the halves of a
// surrogate pair: when the candidate boundary lands right after a high
// surrogate, that unit is left for the next chunk. The output is identical
// to what a single unbounded call would produce.
func ChunkedEncode(w []uint16, limit int, fn EncodeFunc) ([]byte, error) {
	if len(w) == 0 {
		return nil, nil
	}
	if limit < 1 {
		return fn(w)
	}

	var out []byte
	for len(w) > limit {
		n := limit
		if utfutil.IsHighSurrogate(w[n-1]) {
			n--
		}
		if n == 0 {
			// A limit of 1 cannot keep a pair together.
			n = 1
		}
		seg, err := fn(w[:n])
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
		w = w[n:]
	}
	seg, err := fn(w)
	if err != nil {
		return nil, err
	}
	return append(out, seg...), nil
}

// ChunkedDecode feeds b to fn in chunks of at most limit bytes and
// concatenates the results. When the byte at the candidate boundary is a
// UTF-8 continuation byte the cut moves backward to the nearest sequence
// start, so no multi-byte sequence is split across calls.
func ChunkedDecode(b []byte, limit int, fn DecodeFunc) ([]uint16, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if limit < 1 {
		return fn(b)
	}

	var out []uint16
	for len(b) > limit {
		n := limit
		for n > 0 && utfutil.IsContinuation(b[n]) {
			n--
		}
		if n == 0 {
			// Nothing but continuation bytes; cut at the limit.
			n = limit
		}
		seg, err := fn(b[:n])
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
		b = b[n:]
	}
	seg, err := fn(b)
	if err != nil {
		return nil, err
	}
	return append(out, seg...), nil
}
