// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package utfutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurrogateRanges(t *testing.T) {
	assert.False(t, IsHighSurrogate(0xD7FF))
	assert.True(t, IsHighSurrogate(0xD800))
	assert.True(t, IsHighSurrogate(0xDBFF))
	assert.False(t, IsHighSurrogate(0xDC00))

	assert.False(t, IsLowSurrogate(0xDBFF))
	assert.True(t, IsLowSurrogate(0xDC00))
	assert.True(t, IsLowSurrogate(0xDFFF))
	assert.False(t, IsLowSurrogate(0xE000))
}

func TestCombineAndSplitSurrogates(t *testing.T) {
	tests := []struct {
		high, low uint16
		expVal    rune
	}{
		{high: 0xD800, low: 0xDC00, expVal: 0x10000},
		{high: 0xD83D, low: 0xDE00, expVal: 0x1F600},
		{high: 0xDBFF, low: 0xDFFF, expVal: 0x10FFFF},
	}
	for _, test := range tests {
		assert.Equal(t, test.expVal, CombineSurrogates(test.high, test.low))

		high, low := SplitSurrogate(test.expVal)
		assert.Equal(t, test.high, high)
		assert.Equal(t, test.low, low)
	}
}
