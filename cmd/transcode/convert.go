// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
	log "unknwon.dev/clog/v2"

	"github.com/utfworks/transcode/internal/charsetutil"
	"github.com/utfworks/transcode/internal/conf"
	"github.com/utfworks/transcode/internal/dialog"
	"github.com/utfworks/transcode/internal/utfutil"
)

var convertCommand = cli.Command{
	Name:        "convert",
	Usage:       "Transcode a file between character encodings",
	Description: `Read a file in one encoding and write it out in another. The source encoding is detected when not given. Unicode forms are converted natively under the selected invalid-input policy; other labels are resolved through the charset registry.`,
	Action:      runConvert,
	Flags: []cli.Flag{
		stringFlag("from, f", "", "Source encoding label, detected when empty"),
		stringFlag("to, t", "utf-8", "Target encoding label"),
		stringFlag("policy, p", "", "Invalid-input policy: substitute, preserve8 or preserve16"),
		stringFlag("output, o", "", "Output path, prompted for when empty"),
		stringFlag("config, c", "", "Custom configuration file path"),
		boolFlag("bom", "Prefix UTF-16/32 output with a byte order mark"),
		boolFlag("verbose, v", "Show trace level log messages"),
	},
}

func runConvert(_ context.Context, cmd *cli.Command) error {
	err := conf.Init(cmd.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging(cmd.Bool("verbose"))
	defer log.Stop()

	if cmd.Args().Len() != 1 {
		return errors.New("expect exactly one source file argument")
	}
	src := cmd.Args().First()

	policyName := cmd.String("policy")
	if policyName == "" {
		policyName = conf.Convert.DefaultPolicy
	}
	policy, err := utfutil.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "read source file")
	}

	from := cmd.String("from")
	if from == "" {
		from, err = charsetutil.DetectEncoding(data)
		if err != nil {
			return errors.Wrap(err, "detect source encoding")
		}
		log.Trace("Detected source encoding %q for %q", from, src)
	}
	to := cmd.String("to")

	units, err := decodeUnits(data, from, policy)
	if err != nil {
		return errors.Wrapf(err, "decode %q as %q", src, from)
	}
	out, err := encodeUnits(units, to, policy, cmd.Bool("bom"))
	if err != nil {
		return errors.Wrapf(err, "encode as %q", to)
	}

	dst := cmd.String("output")
	if dst == "" {
		dst, err = dialog.NewTerminalPicker().Pick(dialog.Options{
			Title:       "Save converted file as",
			DefaultName: defaultTarget(src, to),
		})
		if err != nil {
			return errors.Wrap(err, "pick output path")
		}
	}
	if err = os.WriteFile(dst, out, 0644); err != nil {
		return errors.Wrap(err, "write output file")
	}

	log.Info("Converted %q (%s) to %q (%s), %d bytes in, %d bytes out",
		src, from, dst, to, len(data), len(out))
	return nil
}

// defaultTarget derives an output name by tagging the source name with the
// target encoding, e.g. notes.txt -> notes.utf-16le.txt.
func defaultTarget(src, to string) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(src, ext)
	return base + "." + normalizeLabel(to) + ext
}
