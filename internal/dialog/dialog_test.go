// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dialog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalPicker_Pick(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opts   Options
		expVal string
		expErr bool
	}{
		{
			name:   "explicit path",
			input:  "out.txt\n",
			expVal: "out.txt",
		},
		{
			name:   "empty answer falls back to default",
			input:  "\n",
			opts:   Options{DefaultName: "default.txt"},
			expVal: "default.txt",
		},
		{
			name:   "no answer and no default",
			input:  "\n",
			expErr: true,
		},
		{
			name:   "filter accepts",
			input:  "notes.txt\n",
			opts:   Options{Filters: []Filter{{Name: "Text files", Pattern: "*.txt"}}},
			expVal: "notes.txt",
		},
		{
			name:   "filter rejects",
			input:  "notes.bin\n",
			opts:   Options{Filters: []Filter{{Name: "Text files", Pattern: "*.txt"}}},
			expErr: true,
		},
		{
			name:   "must exist rejects missing file",
			input:  "definitely_not_found\n",
			opts:   Options{MustExist: true},
			expErr: true,
		},
		{
			name:   "must exist accepts present file",
			input:  "dialog.go\n",
			opts:   Options{MustExist: true},
			expVal: "dialog.go",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &TerminalPicker{In: strings.NewReader(test.input), Out: &out}
			got, err := p.Pick(test.opts)
			if test.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expVal, got)
		})
	}
}
