package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ofx-sgml/format"
	"github.com/signadot/ofx-sgml/sgml"
	"github.com/signadot/ofx-sgml/tree"

	"github.com/fatih/color"
)

const testDoc = `
headers:
  NEWFILEUID: "1001"
body:
  OFX:
    SONRS:
      CODE: 0
`

func TestViewDocument(t *testing.T) {
	doc, err := tree.ParseYAML([]byte(testDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	err = viewDocument(&buf, doc, nil, []sgml.Option{format.ClosedStyle.Option()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, body, ok := strings.Cut(buf.String(), "\r\n\r\n")
	if !ok {
		t.Fatalf("missing header block in %q", buf.String())
	}
	if diff := cmp.Diff("<OFX><SONRS><CODE>0</CODE></SONRS></OFX>", body); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "NEWFILEUID:1001\r\n") {
		t.Errorf("missing NEWFILEUID header in %q", buf.String())
	}
}

func TestHighlight(t *testing.T) {
	in := "OFXHEADER:100\r\nDATA:OFXSGML\r\n\r\n<OFX>\r\n    <CODE>a&amp;b</CODE>\r\n</OFX>\r\n"

	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	color.NoColor = true
	if diff := cmp.Diff(in, NewColors().Highlight(in)); diff != "" {
		t.Errorf("uncolored highlight changed text (-want +got):\n%s", diff)
	}

	color.NoColor = false
	got := NewColors().Highlight(in)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape sequences in %q", got)
	}
	for _, want := range []string{"<OFX>", "</CODE>", "a&amp;b", "OFXHEADER", ":100"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in highlighted output %q", want, got)
		}
	}
}
