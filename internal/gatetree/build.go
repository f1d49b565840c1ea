package gatetree

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTree is returned when a flat description cannot form a complete tree.
	ErrMalformedTree = errors.New("malformed tree")
	// ErrUnknownGate is returned for gate codes other than 0 (OR) and 1 (AND).
	ErrUnknownGate = errors.New("unknown gate code")
)

// Spec describes one interior node of the flat layout.
type Spec struct {
	Gate       Gate
	Changeable bool
}

// GateFromCode maps the input gate code to a Gate.
func GateFromCode(code uint64) (Gate, error) {
	switch code {
	case 1:
		return And, nil
	case 0:
		return Or, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownGate, code)
	}
}

// Build links a heap-ordered description into a tree and returns its root.
// interiors are in level order starting at the root; leaves follow them in
// the same layout, so node k has children 2k+1 and 2k+2.
func Build(interiors []Spec, leaves []bool) (Node, error) {
	if len(leaves) != len(interiors)+1 {
		return nil, fmt.Errorf("%w: %d interior nodes need %d leaves, got %d",
			ErrMalformedTree, len(interiors), len(interiors)+1, len(leaves))
	}

	nodes := make([]Node, 0, len(interiors)+len(leaves))
	for _, s := range interiors {
		nodes = append(nodes, &Interior{Gate: s.Gate, Changeable: s.Changeable})
	}
	for _, v := range leaves {
		nodes = append(nodes, Leaf{Val: v})
	}

	// Walking backwards links every subtree before it is attached. The left
	// child (odd index) is the last one a parent receives, so its value can
	// be cached right there.
	for k := len(nodes) - 1; k > 0; k-- {
		parent, ok := nodes[(k-1)/2].(*Interior)
		if !ok {
			return nil, fmt.Errorf("%w: node %d has a leaf parent", ErrMalformedTree, k)
		}
		if k%2 == 1 {
			parent.Left = nodes[k]
			parent.Value()
		} else {
			parent.Right = nodes[k]
		}
	}

	return nodes[0], nil
}
