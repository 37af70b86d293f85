// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"strings"

	log "unknwon.dev/clog/v2"
)

// Log settings
var Log struct {
	Mode  string
	Level string
}

// InitLogging initializes the logging service of the application. When
// verbose is true the configured level is overridden with trace.
func InitLogging(verbose bool) {
	Log.Mode = strings.ToLower(File.Section("log").Key("MODE").MustString("console"))
	Log.Level = strings.ToLower(File.Section("log").Key("LEVEL").MustString("trace"))

	levelMappings := map[string]log.Level{
		"trace": log.LevelTrace,
		"info":  log.LevelInfo,
		"warn":  log.LevelWarn,
		"error": log.LevelError,
		"fatal": log.LevelFatal,
	}
	level := levelMappings[Log.Level]
	if verbose {
		level = log.LevelTrace
	}

	// Replace the primary logger created at init time with one honoring
	// the configured level.
	err := log.NewConsole(100,
		log.ConsoleConfig{
			Level: level,
		},
	)
	if err != nil {
		log.Fatal("Failed to init console logger: %v", err)
		return
	}
	log.Trace("Log mode: %s (%s)", Log.Mode, Log.Level)
}
