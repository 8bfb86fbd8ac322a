package main

import (
	"io"

	"github.com/signadot/ofx-sgml/format"
	"github.com/signadot/ofx-sgml/sgml"
	"github.com/signadot/ofx-sgml/tree"

	"github.com/scott-cotton/cli"
)

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.writerOpts(format.CompactStyle)
	return eachDocument(cc.In, args, func(name string, doc *tree.Document) error {
		n, err := encodeDocument(cc.Out, doc, opts)
		if err != nil {
			return err
		}
		theLog.Debug("encoded", "file", name, "bytes", n)
		return nil
	})
}

// encodeDocument writes doc to w as ISO-8859-1 and returns the number of
// bytes written. w belongs to the caller, so it is flushed, not closed.
func encodeDocument(w io.Writer, doc *tree.Document, opts []sgml.Option) (int64, error) {
	sw := sgml.NewWriter(w, opts...)
	if err := tree.Marshal(sw, doc, tree.WithLogger(theLog)); err != nil {
		return 0, err
	}
	if err := sw.Flush(); err != nil {
		return 0, err
	}
	return sw.Offset(), nil
}
