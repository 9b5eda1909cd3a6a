package main

import (
	"io"
	"log/slog"
	"os"
)

// stdout carries the protocol stream, so the log goes to stderr.
var theLog = newLog(os.Stderr)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
