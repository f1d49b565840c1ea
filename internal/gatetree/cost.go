package gatetree

import (
	"encoding/json"
	"strconv"
)

// Cost is a number of changes, or Impossible.
type Cost int

// Impossible marks a target value that no set of changes can reach.
const Impossible Cost = -1

// Possible reports whether c is a real number of changes.
func (c Cost) Possible() bool {
	return c >= 0
}

func (c Cost) String() string {
	if !c.Possible() {
		return "IMPOSSIBLE"
	}
	return strconv.Itoa(int(c))
}

// MarshalJSON encodes possible costs as numbers and Impossible as its token.
func (c Cost) MarshalJSON() ([]byte, error) {
	if !c.Possible() {
		return json.Marshal(c.String())
	}
	return json.Marshal(int(c))
}

func minOf(a, b Cost) Cost {
	switch {
	case !a.Possible():
		return b
	case !b.Possible():
		return a
	case a <= b:
		return a
	default:
		return b
	}
}

func sumOf(a, b Cost) Cost {
	if !a.Possible() || !b.Possible() {
		return Impossible
	}
	return a + b
}

func increment(c Cost) Cost {
	if !c.Possible() {
		return Impossible
	}
	return c + 1
}
