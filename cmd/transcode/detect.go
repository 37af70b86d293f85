// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"

	"github.com/utfworks/transcode/internal/charsetutil"
	"github.com/utfworks/transcode/internal/conf"
)

var detectCommand = cli.Command{
	Name:        "detect",
	Usage:       "Report the likely character encoding of files",
	Description: `Sniff each file and print the best guess for its encoding, one line per file.`,
	Action:      runDetect,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

func runDetect(_ context.Context, cmd *cli.Command) error {
	err := conf.Init(cmd.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}

	if cmd.Args().Len() == 0 {
		return errors.New("expect at least one file argument")
	}
	for _, name := range cmd.Args().Slice() {
		data, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "read %q", name)
		}
		label, err := charsetutil.DetectEncoding(data)
		if err != nil {
			return errors.Wrapf(err, "detect encoding of %q", name)
		}
		fmt.Printf("%s: %s\n", name, label)
	}
	return nil
}
