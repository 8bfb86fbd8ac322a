package sgml

import (
	"fmt"
	"io"
	"strings"
)

// Header keys whose values are taken from the map given to WriteHeaders.
const (
	HeaderSecurity   = "SECURITY"
	HeaderOldFileUID = "OLDFILEUID"
	HeaderNewFileUID = "NEWFILEUID"
)

// headerNone is written for a header key which is absent.
const headerNone = "NONE"

type headerState int

const (
	headersPending headerState = iota
	headersWritten
)

// Writer writes an OFX 1.x SGML document to a Sink.
//
// A Writer is meant for one document: headers, then aggregates and
// elements, then Close. It is not safe for concurrent use.
type Writer struct {
	sink    Sink
	cfg     Config
	headers headerState
	depth   int
	offset  int64
}

// NewWriter returns a Writer which encodes its output as ISO-8859-1 and
// writes it to w through a buffer. Close flushes the buffer and closes w
// if it is an io.Closer.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return NewSinkWriter(NewLatin1Sink(w), opts...)
}

// NewSinkWriter returns a Writer writing to sink.
func NewSinkWriter(sink Sink, opts ...Option) *Writer {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Writer{
		sink:    sink,
		cfg:     cfg,
		headers: headersPending,
	}
}

// Config returns the current configuration.
func (w *Writer) Config() Config {
	return w.cfg
}

// SetConfig replaces the configuration. It applies from the next call on.
func (w *Writer) SetConfig(cfg Config) {
	w.cfg = cfg
}

// Depth returns the number of open aggregates.
func (w *Writer) Depth() int {
	return w.depth
}

// HeadersWritten reports whether WriteHeaders has completed.
func (w *Writer) HeadersWritten() bool {
	return w.headers == headersWritten
}

// Offset returns the number of bytes written to the sink.
func (w *Writer) Offset() int64 {
	return w.offset
}

// WriteHeaders writes the OFX 1.02 header block followed by a blank line.
// SECURITY, OLDFILEUID and NEWFILEUID are taken from headers and default
// to NONE when absent; the other header values are fixed. WriteHeaders
// may succeed only once per Writer.
func (w *Writer) WriteHeaders(headers map[string]string) error {
	if w.headers == headersWritten {
		return ErrHeadersWritten
	}
	b := &strings.Builder{}
	headerLine(b, "OFXHEADER", "100")
	headerLine(b, "DATA", "OFXSGML")
	headerLine(b, "VERSION", "102")
	headerLine(b, HeaderSecurity, headerValue(headers, HeaderSecurity))
	// most 1.x servers do not read anything but ASCII
	headerLine(b, "ENCODING", "USASCII")
	headerLine(b, "CHARSET", "1252")
	headerLine(b, "COMPRESSION", "NONE")
	headerLine(b, HeaderOldFileUID, headerValue(headers, HeaderOldFileUID))
	headerLine(b, HeaderNewFileUID, headerValue(headers, HeaderNewFileUID))
	b.WriteString(LineSeparator)
	if err := w.writeString(b.String()); err != nil {
		return err
	}
	w.headers = headersWritten
	return nil
}

func headerLine(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteString(LineSeparator)
}

func headerValue(headers map[string]string, key string) string {
	v, ok := headers[key]
	if !ok {
		return headerNone
	}
	return v
}

// WriteStartAggregate writes the start tag of an aggregate and moves one
// level deeper.
func (w *Writer) WriteStartAggregate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: aggregate start tag", ErrEmptyName)
	}
	b := &strings.Builder{}
	w.startTag(b, w.depth, name)
	if w.cfg.WriteAttributesOnNewLine {
		b.WriteString(LineSeparator)
	}
	if err := w.writeString(b.String()); err != nil {
		return err
	}
	w.depth++
	return nil
}

// WriteEndAggregate moves one level up and writes the end tag of an
// aggregate. The name is not checked against the open aggregate.
func (w *Writer) WriteEndAggregate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: aggregate end tag", ErrEmptyName)
	}
	w.depth--
	b := &strings.Builder{}
	w.endTag(b, w.depth, name)
	if w.cfg.WriteAttributesOnNewLine {
		b.WriteString(LineSeparator)
	}
	return w.writeString(b.String())
}

// WriteElement writes an element with an escaped value. The value must
// not be empty: absent data is expressed by omitting the element.
func (w *Writer) WriteElement(name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: element with value %q", ErrEmptyName, value)
	}
	if value == "" {
		return fmt.Errorf("%w: element %q", ErrEmptyValue, name)
	}
	value = Escape(value)
	cfg := w.cfg

	b := &strings.Builder{}
	w.startTag(b, w.depth, name)
	if cfg.WriteValuesOnNewLine {
		b.WriteString(LineSeparator)
		b.WriteString(Indent(w.depth+1, cfg.TabLength))
	}
	b.WriteString(value)
	if cfg.WriteValuesOnNewLine {
		b.WriteString(LineSeparator)
	}
	if cfg.AlwaysCloseElement {
		// the end tag follows the value directly unless the value has a
		// line of its own
		if cfg.WriteValuesOnNewLine {
			b.WriteString(Indent(w.depth+1, cfg.TabLength))
		}
		b.WriteString("</")
		b.WriteString(name)
		b.WriteByte('>')
		if cfg.WriteAttributesOnNewLine {
			b.WriteString(LineSeparator)
		}
	}
	return w.writeString(b.String())
}

// Flush flushes the sink.
func (w *Writer) Flush() error {
	return w.sink.Flush()
}

// Close flushes and closes the sink. The Writer must not be used
// afterwards.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	return w.sink.Close()
}

func (w *Writer) startTag(b *strings.Builder, depth int, name string) {
	b.WriteString(Indent(depth, w.cfg.TabLength))
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
}

func (w *Writer) endTag(b *strings.Builder, depth int, name string) {
	b.WriteString(Indent(depth, w.cfg.TabLength))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}

// writeString writes text to the sink and updates offset.
func (w *Writer) writeString(text string) error {
	n, err := w.sink.WriteString(text)
	w.offset += int64(n)
	return err
}
