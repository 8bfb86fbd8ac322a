package main

import (
	"log/slog"
	"os"
)

// logLevel is raised to debug by -v.
var logLevel = &slog.LevelVar{}

// theLog writes to stderr so that it never mixes with documents written
// to stdout.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: logLevel,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))
