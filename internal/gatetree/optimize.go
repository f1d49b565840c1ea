package gatetree

import "fmt"

// MinChanges returns the fewest gate changes inside node's subtree that make
// node evaluate to desired.
func MinChanges(node Node, desired bool) Cost {
	if node.Value() == desired {
		return 0
	}

	switch n := node.(type) {
	case Leaf:
		return Impossible
	case *Interior:
		return n.minChanges(desired)
	default:
		panic(fmt.Sprintf("gatetree: unknown node type %T", node))
	}
}

// state is the key of the decision table. The guard in MinChanges already
// ruled out every state where the gate output equals desired.
type state struct {
	desired bool
	gate    Gate
	left    bool
	right   bool
}

func (n *Interior) minChanges(desired bool) Cost {
	s := state{desired: desired, gate: n.Gate, left: n.Left.Value(), right: n.Right.Value()}

	left := func() Cost { return MinChanges(n.Left, desired) }
	right := func() Cost { return MinChanges(n.Right, desired) }
	either := func() Cost { return minOf(left(), right()) }

	if n.Changeable {
		switch s {
		case state{false, Or, false, true}, state{false, Or, true, false}:
			return 1
		case state{true, Or, false, false}:
			return either()
		case state{false, Or, true, true}:
			return increment(either())
		case state{true, And, true, false}, state{true, And, false, true}:
			return 1
		case state{false, And, true, true}:
			return either()
		case state{true, And, false, false}:
			return increment(either())
		}
	} else {
		switch s {
		case state{false, Or, true, true}:
			return sumOf(left(), right())
		case state{false, Or, false, true}:
			return right()
		case state{false, Or, true, false}:
			return left()
		case state{true, Or, false, false}:
			return either()
		case state{true, And, false, false}:
			return sumOf(left(), right())
		case state{true, And, true, false}:
			return right()
		case state{true, And, false, true}:
			return left()
		case state{false, And, true, true}:
			return either()
		}
	}

	panic(fmt.Sprintf("gatetree: unreachable state desired=%t gate=%s left=%t right=%t changeable=%t",
		s.desired, s.gate, s.left, s.right, n.Changeable))
}
