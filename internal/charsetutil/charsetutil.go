// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package charsetutil detects character encodings and converts between
// UTF-16 text and legacy code pages through the encodings registered with
// golang.org/x/text.
package charsetutil

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/gogs/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
	log "unknwon.dev/clog/v2"

	"github.com/utfworks/transcode/internal/conf"
	"github.com/utfworks/transcode/internal/utfutil"
)

// DetectEncoding returns best guess of encoding of given content.
func DetectEncoding(content []byte) (string, error) {
	if utf8.Valid(content) {
		log.Trace("Detected encoding: UTF-8 (fast)")
		return "UTF-8", nil
	}

	result, err := chardet.NewTextDetector().DetectBest(content)
	if err != nil {
		return "", errors.Wrap(err, "detect charset")
	}
	if result.Charset != "UTF-8" && len(conf.Convert.ANSICharset) > 0 {
		log.Trace("Using default ANSICharset: %s", conf.Convert.ANSICharset)
		return conf.Convert.ANSICharset, nil
	}

	log.Trace("Detected encoding: %s", result.Charset)
	return result.Charset, nil
}

// ToUTF8 detects the encoding of content and converts it to UTF-8. When
// the conversion fails partway, the decoded part is concatenated with the
// remaining original bytes so no data is lost.
func ToUTF8(content []byte) (string, error) {
	charsetLabel, err := DetectEncoding(content)
	if err != nil {
		return "", err
	} else if charsetLabel == "UTF-8" {
		return string(content), nil
	}

	e, _ := charset.Lookup(charsetLabel)
	if e == nil {
		return string(content), errors.Newf("unknown encoding: %s", charsetLabel)
	}

	result, n, err := transform.String(e.NewDecoder(), string(content))
	if err != nil {
		result = result + string(content[n:])
	}
	return result, err
}

// DefaultCallLimit caps how many input units a single call into the
// underlying transformer receives. Buffers longer than this go through the
// chunked EncodeAll/DecodeAll paths.
const DefaultCallLimit = 1 << 28

// Codec is a resolved code page converting between UTF-16 units and
// code-page bytes.
type Codec struct {
	Label string // label the codec was resolved from
	Name  string // canonical name of the resolved encoding

	// CallLimit is the maximum number of input units Encode and Decode
	// accept in one call.
	CallLimit int

	enc encoding.Encoding
}

// NewCodec resolves a charset label (e.g. "latin1", "gbk", "windows-1252")
// to a codec.
func NewCodec(label string) (*Codec, error) {
	e, name := charset.Lookup(label)
	if e == nil {
		return nil, errors.Newf("unknown charset %q", label)
	}
	return &Codec{
		Label:     label,
		Name:      name,
		CallLimit: DefaultCallLimit,
		enc:       e,
	}, nil
}

// Encode converts UTF-16 units to code-page bytes. The input must not
// exceed CallLimit units; use EncodeAll for buffers of any length.
func (c *Codec) Encode(w []uint16) ([]byte, error) {
	b, _, err := transform.Bytes(c.enc.NewEncoder(), utfutil.UTF16ToUTF8(w, utfutil.Substitute))
	if err != nil {
		return nil, errors.Wrapf(err, "encode to %s", c.Name)
	}
	return b, nil
}

// Decode converts code-page bytes to UTF-16 units. The input must not
// exceed CallLimit bytes; use DecodeAll for buffers of any length.
func (c *Codec) Decode(b []byte) ([]uint16, error) {
	u, _, err := transform.Bytes(c.enc.NewDecoder(), b)
	if err != nil {
		return nil, errors.Wrapf(err, "decode from %s", c.Name)
	}
	return utfutil.UTF8ToUTF16(u, utfutil.Substitute), nil
}

// EncodeAll converts a UTF-16 buffer of any length, feeding the underlying
// encoder at most CallLimit units per call.
func (c *Codec) EncodeAll(w []uint16) ([]byte, error) {
	return ChunkedEncode(w, c.CallLimit, c.Encode)
}

// DecodeAll converts a code-page buffer of any length, feeding the
// underlying decoder at most CallLimit bytes per call.
func (c *Codec) DecodeAll(b []byte) ([]uint16, error) {
	return ChunkedDecode(b, c.CallLimit, c.Decode)
}
