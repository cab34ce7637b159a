// Copyright (c) 2026, The glskel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages and printed
// diagnostics. It is on by default; output that is not a color
// terminal is never colored.
var UseColor = true

// ANSI color indexes
const (
	errorColor   = "1"
	successColor = "2"
	warnColor    = "3"
	infoColor    = "6"
	cmdColor     = "4"
	debugColor   = "8"
)

// stderr is the output that diagnostics are printed to.
var stderr io.Writer = os.Stderr

func colored(w io.Writer, color, s string) string {
	if !UseColor {
		return s
	}
	out := termenv.NewOutput(w)
	return out.String(s).Foreground(out.Color(color)).String()
}

// ErrorColor returns s in the error color (red) for printing to stderr.
func ErrorColor(s string) string {
	return colored(stderr, errorColor, s)
}

// SuccessColor returns s in the success color (green) for printing to stderr.
func SuccessColor(s string) string {
	return colored(stderr, successColor, s)
}

// CmdColor returns s in the command color (blue) for printing to stderr.
func CmdColor(s string) string {
	return colored(stderr, cmdColor, s)
}

// PrintlnError prints the arguments to stderr in the error color,
// followed by a newline.
func PrintlnError(a ...any) {
	fmt.Fprintln(stderr, ErrorColor(fmt.Sprint(a...)))
}

// PrintlnSuccess prints the arguments to stderr in the success color,
// followed by a newline.
func PrintlnSuccess(a ...any) {
	fmt.Fprintln(stderr, SuccessColor(fmt.Sprint(a...)))
}
