package main

import (
	"bytes"
	"io"

	"github.com/signadot/ofx-sgml/format"
	"github.com/signadot/ofx-sgml/sgml"
	"github.com/signadot/ofx-sgml/tree"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return eachDocument(cc.In, args, func(_ string, doc *tree.Document) error {
		return viewDocument(cc.Out, doc, colors, cfg.writerOpts(format.PrettyStyle))
	})
}

// viewDocument renders doc as text rather than ISO-8859-1 so that it
// displays on a UTF-8 terminal.
func viewDocument(w io.Writer, doc *tree.Document, colors *Colors, opts []sgml.Option) error {
	buf := &bytes.Buffer{}
	sw := sgml.NewSinkWriter(sgml.NewTextSink(buf), opts...)
	if err := tree.Marshal(sw, doc, tree.WithLogger(theLog)); err != nil {
		return err
	}
	out := buf.String()
	if colors != nil {
		out = colors.Highlight(out)
	}
	_, err := io.WriteString(w, out)
	return err
}
