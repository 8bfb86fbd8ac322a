package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/ofx-sgml/tree"

	"github.com/scott-cotton/cli"
)

func ofx1Main(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if cerr := cfg.closeOut(); err == nil {
			err = cerr
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		cfg.closeOut()
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// outOpt directs output to a file, "-" meaning stdout. The file is closed
// when the command finishes.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if err := cfg.closeOut(); err != nil {
		return nil, err
	}
	cfg.Out = a
	if a == "-" {
		cc.Out = os.Stdout
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// closeOut closes the output file, if any, at most once. An error means
// written output may be lost.
func (cfg *MainConfig) closeOut() error {
	if cfg.CloseOut == nil {
		return nil
	}
	closeFn := cfg.CloseOut
	cfg.CloseOut = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.Out, err)
	}
	return nil
}

// eachDocument calls fn with every document named by files, or with the
// document read from in when files is empty. "-" names in.
func eachDocument(in io.Reader, files []string, fn func(name string, doc *tree.Document) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := readDocument(in, file)
		if err != nil {
			return err
		}
		if err := fn(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func readDocument(in io.Reader, file string) (*tree.Document, error) {
	var r io.Reader = in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	doc, err := tree.ParseYAML(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return doc, nil
}
