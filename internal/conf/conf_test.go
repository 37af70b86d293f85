// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_defaults(t *testing.T) {
	// Point the custom config at a file that does not exist so only the
	// built-in defaults apply.
	require.NoError(t, Init(filepath.Join(t.TempDir(), "app.ini")))

	assert.Equal(t, "transcode", App.BrandName)
	assert.Equal(t, "substitute", Convert.DefaultPolicy)
	assert.Empty(t, Convert.ANSICharset)
	assert.Equal(t, 268435456, Convert.CodecCallLimit)
}

func TestInit_customOverrides(t *testing.T) {
	customConf := filepath.Join(t.TempDir(), "app.ini")
	err := os.WriteFile(customConf, []byte(`
[convert]
DEFAULT_POLICY = preserve8
ANSI_CHARSET = windows-1252
CODEC_CALL_LIMIT = 64
`), 0644)
	require.NoError(t, err)
	require.NoError(t, Init(customConf))

	assert.Equal(t, "preserve8", Convert.DefaultPolicy)
	assert.Equal(t, "windows-1252", Convert.ANSICharset)
	assert.Equal(t, 64, Convert.CodecCallLimit)
	assert.Equal(t, customConf, CustomConf)
}
