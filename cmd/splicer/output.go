package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"splicer/internal/worddiff"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func opColor(op worddiff.Op) string {
	switch op {
	case worddiff.OpAdded:
		return ansiGreen
	case worddiff.OpRemoved:
		return ansiRed
	default:
		return ""
	}
}

func colorizeOp(value string, op worddiff.Op, colorize bool) string {
	if !colorize {
		return value
	}
	color := opColor(op)
	if color == "" {
		return value
	}
	return color + value + ansiReset
}
