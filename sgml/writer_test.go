package sgml

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const defaultHeaders = "OFXHEADER:100\r\n" +
	"DATA:OFXSGML\r\n" +
	"VERSION:102\r\n" +
	"SECURITY:NONE\r\n" +
	"ENCODING:USASCII\r\n" +
	"CHARSET:1252\r\n" +
	"COMPRESSION:NONE\r\n" +
	"OLDFILEUID:NONE\r\n" +
	"NEWFILEUID:NONE\r\n" +
	"\r\n"

func newTestWriter(opts ...Option) (*Writer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewSinkWriter(NewTextSink(buf), opts...), buf
}

func prettyConfig(tab int) Config {
	return Config{
		WriteAttributesOnNewLine: true,
		WriteValuesOnNewLine:     true,
		AlwaysCloseElement:       true,
		TabLength:                tab,
	}
}

func TestWriterCharacterEscaping(t *testing.T) {
	var buf bytes.Buffer
	w := NewSinkWriter(NewTextSink(&buf), WithTabLength(0), WithAttributesOnNewLine(false))
	if err := w.WriteElement("NAME", "&<>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("<NAME>&amp;&lt;&gt;", buf.String()); diff != "" {
		t.Errorf("compact output mismatch (-want +got):\n%s", diff)
	}

	// the buffer is not a Closer, so writing may continue after
	// reconfiguring
	buf.Reset()
	w.SetConfig(prettyConfig(4))
	if err := w.WriteElement("NAME", "&<>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<NAME>\r\n    &amp;&lt;&gt;\r\n    </NAME>\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterElementStyles(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		depth int
		want  string
	}{
		{
			name: "compact",
			cfg:  Config{},
			want: "<CODE>0",
		},
		{
			name:  "default indent unclosed",
			cfg:   DefaultConfig(),
			depth: 2,
			want:  "        <CODE>0",
		},
		{
			name:  "closed inline",
			cfg:   Config{AlwaysCloseElement: true, TabLength: 2},
			depth: 1,
			want:  "  <CODE>0</CODE>",
		},
		{
			name:  "attributes on new line closed",
			cfg:   Config{WriteAttributesOnNewLine: true, AlwaysCloseElement: true, TabLength: 2},
			depth: 1,
			want:  "  <CODE>0</CODE>\r\n",
		},
		{
			name:  "attributes on new line unclosed",
			cfg:   Config{WriteAttributesOnNewLine: true, TabLength: 2},
			depth: 1,
			want:  "  <CODE>0",
		},
		{
			name: "values on new line unclosed",
			cfg:  Config{WriteValuesOnNewLine: true, TabLength: 2},
			want: "<CODE>\r\n  0\r\n",
		},
		{
			name: "values on new line closed",
			cfg:  Config{WriteValuesOnNewLine: true, AlwaysCloseElement: true, TabLength: 2},
			want: "<CODE>\r\n  0\r\n  </CODE>",
		},
		{
			name:  "pretty",
			cfg:   prettyConfig(2),
			depth: 1,
			want:  "  <CODE>\r\n    0\r\n    </CODE>\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, buf := newTestWriter(WithConfig(tt.cfg))
			for i := 0; i < tt.depth; i++ {
				if err := w.WriteStartAggregate("A"); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			buf.Reset()
			if err := w.WriteElement("CODE", "0"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if w.Depth() != tt.depth {
				t.Errorf("expected depth %d, got %d", tt.depth, w.Depth())
			}
		})
	}
}

func TestWriterDocument(t *testing.T) {
	w, buf := newTestWriter()
	mustWrite(t, w.WriteStartAggregate("OFX"))
	mustWrite(t, w.WriteStartAggregate("SIGNONMSGSRSV1"))
	mustWrite(t, w.WriteElement("DTSERVER", "2024"))
	mustWrite(t, w.WriteEndAggregate("SIGNONMSGSRSV1"))
	mustWrite(t, w.WriteEndAggregate("OFX"))

	want := "<OFX>    <SIGNONMSGSRSV1>        <DTSERVER>2024    </SIGNONMSGSRSV1></OFX>"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if w.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", w.Depth())
	}
}

func TestWriterPrettyDocument(t *testing.T) {
	w, buf := newTestWriter(WithConfig(prettyConfig(2)))
	mustWrite(t, w.WriteHeaders(map[string]string{"NEWFILEUID": "1001"}))
	mustWrite(t, w.WriteStartAggregate("OFX"))
	mustWrite(t, w.WriteStartAggregate("SONRS"))
	mustWrite(t, w.WriteElement("CODE", "0"))
	mustWrite(t, w.WriteEndAggregate("SONRS"))
	mustWrite(t, w.WriteEndAggregate("OFX"))
	mustWrite(t, w.Close())

	want := strings.Replace(defaultHeaders, "NEWFILEUID:NONE", "NEWFILEUID:1001", 1) +
		"<OFX>\r\n" +
		"  <SONRS>\r\n" +
		"    <CODE>\r\n" +
		"      0\r\n" +
		"      </CODE>\r\n" +
		"  </SONRS>\r\n" +
		"</OFX>\r\n"
	got := buf.String()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	for i := 0; i < len(got); i++ {
		switch got[i] {
		case '\r':
			if i+1 == len(got) || got[i+1] != '\n' {
				t.Fatalf("bare CR at offset %d", i)
			}
		case '\n':
			if i == 0 || got[i-1] != '\r' {
				t.Fatalf("bare LF at offset %d", i)
			}
		}
	}
}

func TestWriterDepth(t *testing.T) {
	for n := 0; n < 6; n++ {
		w, _ := newTestWriter(WithConfig(prettyConfig(3)))
		for i := 0; i < n; i++ {
			mustWrite(t, w.WriteStartAggregate("A"))
			mustWrite(t, w.WriteElement("E", "v"))
		}
		if w.Depth() != n {
			t.Fatalf("expected depth %d, got %d", n, w.Depth())
		}
		for i := 0; i < n; i++ {
			mustWrite(t, w.WriteEndAggregate("A"))
		}
		if w.Depth() != 0 {
			t.Errorf("nesting %d: expected depth 0, got %d", n, w.Depth())
		}
	}
}

func TestWriterUnbalancedEndAggregate(t *testing.T) {
	w, buf := newTestWriter()
	mustWrite(t, w.WriteEndAggregate("OFX"))
	if w.Depth() != -1 {
		t.Errorf("expected depth -1, got %d", w.Depth())
	}
	if buf.String() != "</OFX>" {
		t.Errorf("expected %q, got %q", "</OFX>", buf.String())
	}
}

func TestWriterHeaders(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "nil",
			want: defaultHeaders,
		},
		{
			name:    "empty",
			headers: map[string]string{},
			want:    defaultHeaders,
		},
		{
			name: "all",
			headers: map[string]string{
				"SECURITY":   "TYPE1",
				"OLDFILEUID": "1000",
				"NEWFILEUID": "1001",
				"VERSION":    "999",
			},
			want: "OFXHEADER:100\r\n" +
				"DATA:OFXSGML\r\n" +
				"VERSION:102\r\n" +
				"SECURITY:TYPE1\r\n" +
				"ENCODING:USASCII\r\n" +
				"CHARSET:1252\r\n" +
				"COMPRESSION:NONE\r\n" +
				"OLDFILEUID:1000\r\n" +
				"NEWFILEUID:1001\r\n" +
				"\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, buf := newTestWriter()
			if w.HeadersWritten() {
				t.Fatal("headers reported written before WriteHeaders")
			}
			if err := w.WriteHeaders(tt.headers); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !w.HeadersWritten() {
				t.Error("headers not reported written")
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if w.Offset() != int64(len(tt.want)) {
				t.Errorf("expected offset %d, got %d", len(tt.want), w.Offset())
			}
		})
	}
}

func TestWriterHeadersTwice(t *testing.T) {
	w, buf := newTestWriter()
	mustWrite(t, w.WriteHeaders(nil))
	err := w.WriteHeaders(map[string]string{"SECURITY": "TYPE1"})
	if !errors.Is(err, ErrHeadersWritten) {
		t.Fatalf("expected ErrHeadersWritten, got %v", err)
	}
	if buf.String() != defaultHeaders {
		t.Errorf("output changed by rejected call: %q", buf.String())
	}
	if !w.HeadersWritten() {
		t.Error("headers no longer reported written")
	}
}

func TestWriterInvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		call    func(w *Writer) error
		wantErr error
	}{
		{
			name:    "empty value",
			call:    func(w *Writer) error { return w.WriteElement("NAME", "") },
			wantErr: ErrEmptyValue,
		},
		{
			name:    "empty element name",
			call:    func(w *Writer) error { return w.WriteElement("", "v") },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty start aggregate name",
			call:    func(w *Writer) error { return w.WriteStartAggregate("") },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty end aggregate name",
			call:    func(w *Writer) error { return w.WriteEndAggregate("") },
			wantErr: ErrEmptyName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, buf := newTestWriter(WithConfig(prettyConfig(4)))
			mustWrite(t, w.WriteStartAggregate("OFX"))
			buf.Reset()

			err := tt.call(w)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("expected error to match ErrInvalidArgument: %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
			if w.Depth() != 1 {
				t.Errorf("expected depth 1, got %d", w.Depth())
			}
		})
	}
}

func TestWriterEscapesValuesOnly(t *testing.T) {
	w, buf := newTestWriter(WithTabLength(0))
	mustWrite(t, w.WriteElement("A&B", `"x" & 'y' &amp;`))
	want := `<A&B>"x" &amp; 'y' &amp;amp;`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

var errBoom = errors.New("boom")

type failingSink struct {
	writes int
}

func (s *failingSink) WriteString(string) (int, error) {
	s.writes++
	return 0, errBoom
}

func (s *failingSink) Flush() error { return errBoom }
func (s *failingSink) Close() error { return nil }

func TestWriterSinkErrors(t *testing.T) {
	sink := &failingSink{}
	w := NewSinkWriter(sink)

	if err := w.WriteHeaders(nil); err != errBoom {
		t.Errorf("expected sink error, got %v", err)
	}
	if w.HeadersWritten() {
		t.Error("headers reported written after a failed write")
	}
	if err := w.WriteStartAggregate("OFX"); err != errBoom {
		t.Errorf("expected sink error, got %v", err)
	}
	if w.Depth() != 0 {
		t.Errorf("expected depth 0 after failed start, got %d", w.Depth())
	}
	if err := w.WriteElement("CODE", "0"); err != errBoom {
		t.Errorf("expected sink error, got %v", err)
	}
	if err := w.Close(); err != errBoom {
		t.Errorf("expected flush error from Close, got %v", err)
	}
	if sink.writes != 3 {
		t.Errorf("expected 3 sink writes, got %d", sink.writes)
	}
}

func mustWrite(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
