// Copyright 2025 The Transcode Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dialog is a thin shim over "let the user pick a path". Platform
// file dialogs plug in behind the Picker interface; callers only ever see
// the resulting path string.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/utfworks/transcode/internal/osutil"
)

// Filter restricts the file names a picker offers.
type Filter struct {
	Name    string // human-readable description, e.g. "Text files"
	Pattern string // glob pattern matched against the base name, e.g. "*.txt"
}

// Options control how a path is requested from the user.
type Options struct {
	Title       string
	DefaultName string
	Filters     []Filter

	// MustExist requires the picked path to name an existing file.
	MustExist bool
}

// Picker asks the user to choose a path.
type Picker interface {
	Pick(opts Options) (string, error)
}

// TerminalPicker prompts on Out and reads a path from In. An empty answer
// selects the default name.
type TerminalPicker struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminalPicker returns a picker wired to the process terminal. The
// prompt goes to stderr so output redirection stays clean.
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{In: os.Stdin, Out: os.Stderr}
}

func (p *TerminalPicker) Pick(opts Options) (string, error) {
	if opts.Title != "" {
		fmt.Fprintln(p.Out, opts.Title)
	}
	if opts.DefaultName != "" {
		fmt.Fprintf(p.Out, "Path [%s]: ", opts.DefaultName)
	} else {
		fmt.Fprint(p.Out, "Path: ")
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "read path")
	}

	path := strings.TrimSpace(line)
	if path == "" {
		path = opts.DefaultName
	}
	if path == "" {
		return "", errors.New("no path given")
	}
	if opts.MustExist && !osutil.IsFile(path) {
		return "", errors.Newf("file %q does not exist", path)
	}
	if len(opts.Filters) > 0 && !matchesFilter(opts.Filters, path) {
		return "", errors.Newf("path %q does not match any of the offered file types", path)
	}
	return path, nil
}

func matchesFilter(filters []Filter, path string) bool {
	base := filepath.Base(path)
	for _, f := range filters {
		if ok, _ := filepath.Match(f.Pattern, base); ok {
			return true
		}
	}
	return false
}
