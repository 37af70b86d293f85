// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package charsetutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utfworks/transcode/internal/conf"
)

func TestDetectEncoding(t *testing.T) {
	t.Run("valid UTF-8 fast path", func(t *testing.T) {
		label, err := DetectEncoding([]byte("plain ascii and \xe2\x82\xac"))
		require.NoError(t, err)
		assert.Equal(t, "UTF-8", label)
	})

	t.Run("ANSI charset override", func(t *testing.T) {
		conf.Convert.ANSICharset = "windows-1252"
		defer func() { conf.Convert.ANSICharset = "" }()

		content := bytes.Repeat([]byte("une journ\xe9e ensoleill\xe9e \xe0 l'\xe9cole "), 20)
		label, err := DetectEncoding(content)
		require.NoError(t, err)
		assert.Equal(t, "windows-1252", label)
	})
}

func TestToUTF8(t *testing.T) {
	t.Run("already UTF-8", func(t *testing.T) {
		got, err := ToUTF8([]byte("caf\xc3\xa9"))
		require.NoError(t, err)
		assert.Equal(t, "caf\xc3\xa9", got)
	})

	t.Run("legacy code page", func(t *testing.T) {
		conf.Convert.ANSICharset = "windows-1252"
		defer func() { conf.Convert.ANSICharset = "" }()

		content := bytes.Repeat([]byte("une journ\xe9e ensoleill\xe9e \xe0 l'\xe9cole "), 20)
		got, err := ToUTF8(content)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "une journée"))
	})
}

func TestNewCodec(t *testing.T) {
	c, err := NewCodec("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", c.Name)
	assert.Equal(t, DefaultCallLimit, c.CallLimit)

	_, err = NewCodec("no-such-charset")
	assert.Error(t, err)
}

func TestCodec_roundTrip(t *testing.T) {
	c, err := NewCodec("windows-1252")
	require.NoError(t, err)

	units := []uint16{'h', 0xE9, 'l', 'l', 'o'}
	encoded, err := c.Encode(units)
	require.NoError(t, err)
	assert.Equal(t, []byte("h\xe9llo"), encoded)

	decoded, err := c.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, units, decoded)
}

func TestCodec_chunkedMatchesSingleCall(t *testing.T) {
	c, err := NewCodec("windows-1252")
	require.NoError(t, err)

	units := []uint16{'b', 0xE9, 'b', 0xE9, 'c', 'a', 'f', 0xE9}
	whole, err := c.Encode(units)
	require.NoError(t, err)

	c.CallLimit = 3
	chunked, err := c.EncodeAll(units)
	require.NoError(t, err)
	assert.Equal(t, whole, chunked)

	decoded, err := c.DecodeAll(chunked)
	require.NoError(t, err)
	assert.Equal(t, units, decoded)
}
