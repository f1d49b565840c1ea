// Package gatetree models a complete binary tree of AND/OR gates over
// boolean leaves and answers one question about it: how many changes at
// changeable interior nodes are needed before the root evaluates to a
// desired value.
//
// A change swaps the gate of one changeable interior node (AND <-> OR) and
// costs one unit. Leaves are fixed.
//
// Trees arrive as a flat heap-ordered description (interior nodes first,
// then leaves). Build links that description into an owned tree and caches
// every interior value while linking, so MinChanges never re-derives child
// values.
//
// Usage:
//
//	dec := gatetree.NewDecoder(f)
//	n, err := dec.Count()
//	for i := 0; i < n; i++ {
//	    c, err := dec.Next()
//	    // handle err
//	    fmt.Println(c.Solve())
//	}
package gatetree
