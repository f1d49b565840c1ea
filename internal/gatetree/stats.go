package gatetree

// Stats summarizes the shape of a tree.
type Stats struct {
	Nodes      int
	Interior   int
	Changeable int
	Depth      int
}

// Describe walks the tree rooted at node.
func Describe(node Node) Stats {
	switch n := node.(type) {
	case *Interior:
		l, r := Describe(n.Left), Describe(n.Right)
		s := Stats{
			Nodes:    l.Nodes + r.Nodes + 1,
			Interior: l.Interior + r.Interior + 1,
			Depth:    max(l.Depth, r.Depth) + 1,
		}
		s.Changeable = l.Changeable + r.Changeable
		if n.Changeable {
			s.Changeable++
		}
		return s
	default:
		return Stats{Nodes: 1, Depth: 1}
	}
}
