// Package tree holds OFX documents in memory and marshals them through an
// aggregate writer such as *sgml.Writer.
package tree

// Node is an aggregate or an element of an OFX document.
type Node struct {
	Name     string
	Value    string
	Children []*Node

	aggregate bool
}

// Element returns an element node.
func Element(name, value string) *Node {
	return &Node{Name: name, Value: value}
}

// Aggregate returns an aggregate node. An aggregate may be empty.
func Aggregate(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children, aggregate: true}
}

// IsAggregate reports whether n was built with Aggregate or has children.
func (n *Node) IsAggregate() bool {
	return n.aggregate || len(n.Children) > 0
}

// Append adds children to n, making it an aggregate.
func (n *Node) Append(children ...*Node) *Node {
	n.aggregate = true
	n.Children = append(n.Children, children...)
	return n
}

// Document is a header block and a body of top level nodes, usually a
// single OFX aggregate.
type Document struct {
	Headers map[string]string
	Body    []*Node
}
