// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/utfworks/transcode/internal/charsetutil"
	"github.com/utfworks/transcode/internal/conf"
	"github.com/utfworks/transcode/internal/utfutil"
)

// normalizeLabel canonicalizes an encoding label for the native Unicode
// formats. Any other label is left for the charset lookup to judge.
func normalizeLabel(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	switch l {
	case "utf8":
		return "utf-8"
	case "utf16":
		return "utf-16"
	case "utf32":
		return "utf-32"
	}
	return l
}

// decodeUnits interprets data in the named encoding and returns its UTF-16
// units. Unicode formats are handled natively so the invalid-input policy
// applies; everything else goes through a code-page codec. The plain
// "utf-16" and "utf-32" labels honor a byte order mark and default to
// little endian; the le/be variants are strict about order and keep any
// leading U+FEFF as content.
func decodeUnits(data []byte, label string, errs utfutil.InvalidPolicy) ([]uint16, error) {
	switch normalizeLabel(label) {
	case "utf-8":
		return utfutil.UTF8ToUTF16(data, errs), nil
	case "utf-16":
		bo := binary.ByteOrder(binary.LittleEndian)
		if len(data) >= 2 {
			switch {
			case data[0] == 0xFE && data[1] == 0xFF:
				bo = binary.BigEndian
				data = data[2:]
			case data[0] == 0xFF && data[1] == 0xFE:
				data = data[2:]
			}
		}
		return unitsFromUTF16Bytes(data, bo)
	case "utf-16le":
		return unitsFromUTF16Bytes(data, binary.LittleEndian)
	case "utf-16be":
		return unitsFromUTF16Bytes(data, binary.BigEndian)
	case "utf-32":
		bo := binary.ByteOrder(binary.LittleEndian)
		if len(data) >= 4 {
			switch {
			case data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF:
				bo = binary.BigEndian
				data = data[4:]
			case data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00:
				data = data[4:]
			}
		}
		return unitsFromUTF32Bytes(data, bo)
	case "utf-32le":
		return unitsFromUTF32Bytes(data, binary.LittleEndian)
	case "utf-32be":
		return unitsFromUTF32Bytes(data, binary.BigEndian)
	}

	codec, err := newCodec(label)
	if err != nil {
		return nil, err
	}
	return codec.DecodeAll(data)
}

// encodeUnits renders UTF-16 units as bytes in the named encoding. The
// byte order mark is written only when withBOM is set and the target is a
// UTF-16 or UTF-32 form.
func encodeUnits(w []uint16, label string, errs utfutil.InvalidPolicy, withBOM bool) ([]byte, error) {
	switch normalizeLabel(label) {
	case "utf-8":
		return utfutil.UTF16ToUTF8(w, errs), nil
	case "utf-16", "utf-16le":
		return utf16Bytes(w, binary.LittleEndian, withBOM), nil
	case "utf-16be":
		return utf16Bytes(w, binary.BigEndian, withBOM), nil
	case "utf-32", "utf-32le":
		return utf32Bytes(utfutil.UTF16ToRunes(w), binary.LittleEndian, withBOM), nil
	case "utf-32be":
		return utf32Bytes(utfutil.UTF16ToRunes(w), binary.BigEndian, withBOM), nil
	}

	codec, err := newCodec(label)
	if err != nil {
		return nil, err
	}
	return codec.EncodeAll(w)
}

func unitsFromUTF16Bytes(data []byte, bo binary.ByteOrder) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, errors.Newf("UTF-16 input has odd length %d", len(data))
	}
	w := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		w = append(w, bo.Uint16(data[i:]))
	}
	return w, nil
}

func unitsFromUTF32Bytes(data []byte, bo binary.ByteOrder) ([]uint16, error) {
	if len(data)%4 != 0 {
		return nil, errors.Newf("UTF-32 input length %d is not a multiple of four", len(data))
	}
	u := make([]rune, 0, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		u = append(u, rune(int32(bo.Uint32(data[i:]))))
	}
	return utfutil.RunesToUTF16(u), nil
}

func utf16Bytes(w []uint16, bo binary.AppendByteOrder, withBOM bool) []byte {
	out := make([]byte, 0, 2*len(w)+2)
	if withBOM {
		out = bo.AppendUint16(out, 0xFEFF)
	}
	for _, c := range w {
		out = bo.AppendUint16(out, c)
	}
	return out
}

func utf32Bytes(u []rune, bo binary.AppendByteOrder, withBOM bool) []byte {
	out := make([]byte, 0, 4*len(u)+4)
	if withBOM {
		out = bo.AppendUint32(out, 0xFEFF)
	}
	for _, r := range u {
		out = bo.AppendUint32(out, uint32(r))
	}
	return out
}

// newCodec resolves a code-page label and applies the configured per-call
// limit.
func newCodec(label string) (*charsetutil.Codec, error) {
	codec, err := charsetutil.NewCodec(label)
	if err != nil {
		return nil, err
	}
	if conf.Convert.CodecCallLimit > 0 {
		codec.CallLimit = conf.Convert.CodecCallLimit
	}
	return codec, nil
}
