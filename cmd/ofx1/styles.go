package main

import (
	"fmt"
	"io"

	"github.com/signadot/ofx-sgml/format"

	"github.com/scott-cotton/cli"
)

var styleDescriptions = map[format.Style]string{
	format.CompactStyle: "one line, unclosed elements (default for encode)",
	format.ClosedStyle:  "one line, closed elements",
	format.PrettyStyle:  "indented, one tag or value per line (default for view)",
}

func styles(cfg *StylesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Styles.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: styles takes no arguments", cli.ErrUsage)
	}
	return writeStyles(cc.Out)
}

func writeStyles(w io.Writer) error {
	for _, s := range format.AllStyles() {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", s, styleDescriptions[s]); err != nil {
			return err
		}
	}
	return nil
}
