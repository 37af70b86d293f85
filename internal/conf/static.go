// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

// ℹ️ README: This file contains static values that should only be set at initialization time.

// CustomConf is the absolute path of custom configuration file that is used.
var CustomConf string

var (
	// Application settings
	App struct {
		BrandName string

		// Version should only be set by the main package.
		Version string `ini:"-"`
	}

	// Conversion settings: [convert]
	Convert struct {
		// DefaultPolicy applies when no policy is given on the command
		// line: substitute, preserve8 or preserve16.
		DefaultPolicy string

		// ANSICharset overrides charset detection results other than
		// UTF-8, for installations whose legacy files are known to use a
		// single code page.
		ANSICharset string `ini:"ANSI_CHARSET"`

		// CodecCallLimit caps the number of units handed to the code-page
		// transformer per call.
		CodecCallLimit int
	}
)
