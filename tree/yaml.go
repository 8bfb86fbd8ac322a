package tree

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

var ErrBadDocument = errors.New("bad document")

// Top level keys of a YAML document.
const (
	HeadersKey = "headers"
	BodyKey    = "body"
)

// ParseYAML reads a document from YAML or JSON of the form
//
//	headers:
//	  NEWFILEUID: "1001"
//	body:
//	  OFX:
//	    SIGNONMSGSRSV1:
//	      SONRS:
//	        STATUS: {CODE: 0, SEVERITY: INFO}
//
// Mappings become aggregates in key order and scalars become elements.
// A sequence repeats its key once per item. Scalars keep their source
// text: 00123, 0x1F and 1.0 are written as they appear, not as the
// numbers YAML would read them as. Aliases are not supported.
func ParseYAML(data []byte) (*Document, error) {
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}
	if len(f.Docs) != 1 {
		return nil, fmt.Errorf("%w: expected one document, got %d", ErrBadDocument, len(f.Docs))
	}
	top, ok := mappingValues(f.Docs[0].Body)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping, got %s", ErrBadDocument, nodeKind(f.Docs[0].Body))
	}
	doc := &Document{}
	for _, mv := range top {
		switch key := keyString(mv.Key); key {
		case HeadersKey:
			hdrs, err := parseHeaders(mv.Value)
			if err != nil {
				return nil, err
			}
			doc.Headers = hdrs
		case BodyKey:
			body, ok := mappingValues(mv.Value)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a mapping, got %s", ErrBadDocument, BodyKey, nodeKind(mv.Value))
			}
			nodes, err := parseMapping(body, BodyKey)
			if err != nil {
				return nil, err
			}
			doc.Body = nodes
		default:
			return nil, fmt.Errorf("%w: unknown top level key %q", ErrBadDocument, key)
		}
	}
	return doc, nil
}

func parseHeaders(n ast.Node) (map[string]string, error) {
	n = unwrap(n)
	if _, isNull := n.(*ast.NullNode); n == nil || isNull {
		return map[string]string{}, nil
	}
	m, ok := mappingValues(n)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a mapping, got %s", ErrBadDocument, HeadersKey, nodeKind(n))
	}
	res := make(map[string]string, len(m))
	for _, mv := range m {
		key := keyString(mv.Key)
		val, err := scalarString(mv.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrBadDocument, HeadersKey, key, err)
		}
		res[key] = val
	}
	return res, nil
}

func parseMapping(m []*ast.MappingValueNode, path string) ([]*Node, error) {
	var res []*Node
	for _, mv := range m {
		key := keyString(mv.Key)
		nodes, err := parseValue(key, mv.Value, path+"."+key)
		if err != nil {
			return nil, err
		}
		res = append(res, nodes...)
	}
	return res, nil
}

func parseValue(name string, n ast.Node, path string) ([]*Node, error) {
	n = unwrap(n)
	if m, ok := mappingValues(n); ok {
		children, err := parseMapping(m, path)
		if err != nil {
			return nil, err
		}
		return []*Node{Aggregate(name, children...)}, nil
	}
	if seq, ok := n.(*ast.SequenceNode); ok {
		var res []*Node
		for i, item := range seq.Values {
			nodes, err := parseValue(name, item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			res = append(res, nodes...)
		}
		return res, nil
	}
	val, err := scalarString(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadDocument, path, err)
	}
	return []*Node{Element(name, val)}, nil
}

// mappingValues returns the entries of a mapping node. A lone key/value
// pair counts as a mapping of one entry.
func mappingValues(n ast.Node) ([]*ast.MappingValueNode, bool) {
	switch x := unwrap(n).(type) {
	case *ast.MappingNode:
		return x.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{x}, true
	}
	return nil, false
}

// unwrap strips anchors and tags from n.
func unwrap(n ast.Node) ast.Node {
	for {
		switch x := n.(type) {
		case *ast.AnchorNode:
			n = x.Value
		case *ast.TagNode:
			n = x.Value
		default:
			return n
		}
	}
}

// scalarString returns the text of a scalar as written in the source,
// with quotes and escapes of quoted strings resolved.
func scalarString(n ast.Node) (string, error) {
	switch x := unwrap(n).(type) {
	case nil, *ast.NullNode:
		return "", errors.New("null value")
	case *ast.StringNode:
		return x.Value, nil
	case *ast.LiteralNode:
		return x.Value.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return x.GetToken().Value, nil
	case *ast.AliasNode:
		return "", errors.New("aliases are not supported")
	default:
		return "", fmt.Errorf("unsupported value %s", nodeKind(x))
	}
}

func keyString(n ast.Node) string {
	if s, ok := unwrap(n).(*ast.StringNode); ok {
		return s.Value
	}
	if n == nil {
		return ""
	}
	return n.GetToken().Value
}

func nodeKind(n ast.Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Type().String()
}
