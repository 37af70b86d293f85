// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/utfworks/transcode/internal/charsetutil"
)

var encodingsCommand = cli.Command{
	Name:        "encodings",
	Usage:       "List encoding labels the convert command accepts",
	Description: `Print the commonly used labels together with the codec each one resolves to. UTF forms are converted natively; any WHATWG charset label beyond this list is also accepted.`,
	Action:      runEncodings,
}

// knownLabels is not exhaustive, the charset registry accepts far more.
// These are the labels worth advertising.
var knownLabels = []string{
	"utf-8",
	"utf-16", "utf-16le", "utf-16be",
	"utf-32", "utf-32le", "utf-32be",
	"windows-1250", "windows-1251", "windows-1252", "windows-1256",
	"iso-8859-1", "iso-8859-2", "iso-8859-5", "iso-8859-7", "iso-8859-15",
	"koi8-r",
	"gbk", "gb18030", "big5",
	"shift_jis", "euc-jp", "euc-kr",
}

func runEncodings(_ context.Context, _ *cli.Command) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Label", "Resolves To"})
	table.SetBorder(false)
	for _, label := range knownLabels {
		if strings.HasPrefix(label, "utf-") {
			table.Append([]string{label, "native"})
			continue
		}
		codec, err := charsetutil.NewCodec(label)
		if err != nil {
			table.Append([]string{label, "unavailable"})
			continue
		}
		table.Append([]string{label, codec.Name})
	}
	table.Render()
	return nil
}
