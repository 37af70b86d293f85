// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"

	"github.com/utfworks/transcode/internal/osutil"
)

func init() {
	// Initialize the primary logger until logging service is up.
	err := log.NewConsole()
	if err != nil {
		panic("init console logger: " + err.Error())
	}
}

// Built-in defaults, overridable from the custom configuration file.
const defaultConf = `
BRAND_NAME = transcode

[convert]
DEFAULT_POLICY = substitute
ANSI_CHARSET =
CODEC_CALL_LIMIT = 268435456

[log]
MODE = console
LEVEL = trace
`

// File is the configuration object.
var File *ini.File

// Init initializes configuration from the given custom configuration file.
// If `customConf` is empty, it falls back to the default location, i.e.
// "<USER CONFIG DIR>/transcode/app.ini". A missing file is not an error:
// built-in defaults apply. It is safe to call this function multiple times
// with desired `customConf`, but it is not concurrent safe.
func Init(customConf string) error {
	var err error
	File, err = ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, []byte(defaultConf))
	if err != nil {
		return errors.Wrap(err, "parse default configuration")
	}
	File.NameMapper = ini.SnackCase

	if customConf == "" {
		dir, err := os.UserConfigDir()
		if err == nil {
			customConf = filepath.Join(dir, "transcode", "app.ini")
		}
	} else {
		customConf, err = filepath.Abs(customConf)
		if err != nil {
			return errors.Wrap(err, "get absolute path")
		}
	}
	CustomConf = customConf

	if osutil.IsFile(customConf) {
		if err = File.Append(customConf); err != nil {
			return errors.Wrapf(err, "append %q", customConf)
		}
	}

	if err = File.Section(ini.DefaultSection).MapTo(&App); err != nil {
		return errors.Wrap(err, "mapping default section")
	}
	if err = File.Section("convert").MapTo(&Convert); err != nil {
		return errors.Wrap(err, "mapping [convert] section")
	}
	return nil
}

// MustInit panics if configuration initialization failed.
func MustInit(customConf string) {
	err := Init(customConf)
	if err != nil {
		panic(err)
	}
}
