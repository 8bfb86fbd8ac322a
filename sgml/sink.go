package sgml

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Sink is the destination of a Writer's text.
type Sink interface {
	WriteString(s string) (int, error)
	Flush() error
	Close() error
}

// NewLatin1Sink returns a buffered Sink which encodes text as ISO-8859-1
// before writing it to w. Characters outside of ISO-8859-1 are replaced
// with the charset's substitution byte. Closing the sink flushes it and
// closes w if w is an io.Closer.
func NewLatin1Sink(w io.Writer) Sink {
	return &latin1Sink{
		dst: w,
		buf: bufio.NewWriter(w),
		enc: encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()),
	}
}

type latin1Sink struct {
	dst io.Writer
	buf *bufio.Writer
	enc *encoding.Encoder
}

func (s *latin1Sink) WriteString(text string) (int, error) {
	b, err := s.enc.String(text)
	if err != nil {
		return 0, err
	}
	return s.buf.WriteString(b)
}

func (s *latin1Sink) Flush() error {
	return s.buf.Flush()
}

func (s *latin1Sink) Close() error {
	if err := s.buf.Flush(); err != nil {
		return err
	}
	return closeDst(s.dst)
}

// NewTextSink returns an unbuffered Sink writing text to w as is. Flush
// calls w's Flush method if it has one and Close closes w if w is an
// io.Closer.
func NewTextSink(w io.Writer) Sink {
	return &textSink{dst: w}
}

type textSink struct {
	dst io.Writer
}

func (s *textSink) WriteString(text string) (int, error) {
	return io.WriteString(s.dst, text)
}

func (s *textSink) Flush() error {
	if f, ok := s.dst.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *textSink) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	return closeDst(s.dst)
}

func closeDst(w io.Writer) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
