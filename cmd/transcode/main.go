// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Transcode converts text files among Unicode formats and legacy code pages.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
	log "unknwon.dev/clog/v2"

	"github.com/utfworks/transcode/internal/conf"
)

func init() {
	conf.App.Version = "0.4.0+dev"
}

func main() {
	cmd := &cli.Command{
		Name:    "transcode",
		Usage:   "Convert text among Unicode formats and legacy code pages",
		Version: conf.App.Version,
		Commands: []*cli.Command{
			&convertCommand,
			&detectCommand,
			&encodingsCommand,
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal("Failed to run application: %v", err)
	}
}
