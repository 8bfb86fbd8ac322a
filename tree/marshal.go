package tree

import (
	"fmt"
	"log/slog"
	"strings"
)

// AggregateWriter receives a document as a sequence of calls.
type AggregateWriter interface {
	WriteHeaders(headers map[string]string) error
	WriteStartAggregate(name string) error
	WriteElement(name, value string) error
	WriteEndAggregate(name string) error
}

type MarshalOption func(*marshalOpts)

type marshalOpts struct {
	log *slog.Logger
}

// WithLogger logs each aggregate at debug level.
func WithLogger(l *slog.Logger) MarshalOption {
	return func(o *marshalOpts) { o.log = l }
}

// Marshal writes the headers and then the body of doc to w, depth first.
// Errors are annotated with the path of the failing node.
func Marshal(w AggregateWriter, doc *Document, opts ...MarshalOption) error {
	mo := &marshalOpts{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(mo)
	}
	if err := w.WriteHeaders(doc.Headers); err != nil {
		return fmt.Errorf("headers: %w", err)
	}
	m := &marshaller{w: w, log: mo.log}
	for _, n := range doc.Body {
		if err := m.node(n); err != nil {
			return err
		}
	}
	return nil
}

type marshaller struct {
	w    AggregateWriter
	log  *slog.Logger
	path []string
}

func (m *marshaller) node(n *Node) error {
	m.path = append(m.path, n.Name)
	defer func() { m.path = m.path[:len(m.path)-1] }()

	if !n.IsAggregate() {
		if err := m.w.WriteElement(n.Name, n.Value); err != nil {
			return m.wrap(err)
		}
		return nil
	}
	m.log.Debug("aggregate", "path", m.pathString(), "children", len(n.Children))
	if err := m.w.WriteStartAggregate(n.Name); err != nil {
		return m.wrap(err)
	}
	for _, c := range n.Children {
		if err := m.node(c); err != nil {
			return err
		}
	}
	if err := m.w.WriteEndAggregate(n.Name); err != nil {
		return m.wrap(err)
	}
	return nil
}

func (m *marshaller) pathString() string {
	return strings.Join(m.path, ".")
}

func (m *marshaller) wrap(err error) error {
	return fmt.Errorf("%s: %w", m.pathString(), err)
}
