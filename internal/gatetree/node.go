package gatetree

import "fmt"

// Gate is the combining operator of an interior node.
type Gate int

const (
	Or Gate = iota
	And
)

func (g Gate) String() string {
	switch g {
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return fmt.Sprintf("Gate(%d)", int(g))
	}
}

// Apply combines two child values.
func (g Gate) Apply(left, right bool) bool {
	if g == And {
		return left && right
	}
	return left || right
}

// Node is either a Leaf or an *Interior.
type Node interface {
	isNode()
	// Value returns the node's current boolean value.
	Value() bool
}

// Leaf is a terminal node with a fixed value.
type Leaf struct {
	Val bool
}

func (Leaf) isNode() {}

func (l Leaf) Value() bool {
	return l.Val
}

// Interior is a gate over two owned children.
// Gate, Changeable and the children must not be modified once the node
// has been evaluated.
type Interior struct {
	Gate       Gate
	Changeable bool
	Left       Node
	Right      Node

	cached *bool
}

func (*Interior) isNode() {}

// NewInterior creates an interior node over left and right.
func NewInterior(gate Gate, changeable bool, left, right Node) *Interior {
	return &Interior{
		Gate:       gate,
		Changeable: changeable,
		Left:       left,
		Right:      right,
	}
}

// Value evaluates the subtree once and memoizes the result.
func (n *Interior) Value() bool {
	if n.cached != nil {
		return *n.cached
	}
	v := n.Gate.Apply(n.Left.Value(), n.Right.Value())
	n.cached = &v
	return v
}

// Cached reports whether the node's value has already been computed.
func (n *Interior) Cached() bool {
	return n.cached != nil
}

// Evaluate returns the current value of node.
func Evaluate(node Node) bool {
	return node.Value()
}
