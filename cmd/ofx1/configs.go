package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ofx-sgml/format"
	"github.com/signadot/ofx-sgml/sgml"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='log each document and aggregate'"`

	Style *format.Style

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) styleFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		s, err := format.ParseStyle(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Style = &s
		return s, nil
	})
}

// writerOpts returns the writer options for the selected style, or for
// def if none was selected.
func (cfg *MainConfig) writerOpts(def format.Style) []sgml.Option {
	s := def
	if cfg.Style != nil {
		s = *cfg.Style
	}
	return []sgml.Option{s.Option()}
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Color   bool `cli:"name=color desc='highlight tags in color'"`
	NoColor bool `cli:"name=nocolor desc='never highlight'"`

	View *cli.Command
}

// colors decides whether view output to w is highlighted.
func (cfg *ViewConfig) colors(w io.Writer) *Colors {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		color.NoColor = false
		return NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

type StylesConfig struct {
	*MainConfig

	Styles *cli.Command
}
