package gatetree

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gnoswap-labs/gatetree/internal/tokens"
)

var (
	// ErrNodeCount is returned for node counts that cannot describe a complete tree.
	ErrNodeCount = errors.New("invalid node count")
	// ErrCaseCount is returned when the case count does not fit a 32-bit int.
	ErrCaseCount = errors.New("invalid case count")
)

const (
	// maxTreeNodes bounds N even when MaxNodes is zero.
	maxTreeNodes = math.MaxInt32
	// allocChunk caps up-front allocation so a truncated stream fails on
	// its missing tokens instead of on a huge make.
	allocChunk = 1 << 16
)

// Case is one decoded test case.
type Case struct {
	Number  int
	Desired bool
	Root    Node
}

// Solve runs the optimizer on the case's root.
func (c Case) Solve() Result {
	return Result{Case: c.Number, Changes: MinChanges(c.Root, c.Desired)}
}

// Decoder reads test cases from a token stream.
type Decoder struct {
	r *tokens.Reader

	// MaxNodes rejects cases with more nodes than this. Zero means no limit.
	MaxNodes int

	next int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: tokens.NewReader(r), next: 1}
}

// Count reads the number of test cases.
func (d *Decoder) Count() (int, error) {
	v, err := d.r.NextUint()
	if err != nil {
		return 0, fmt.Errorf("reading case count: %w", err)
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrCaseCount, v)
	}
	return int(v), nil
}

// Next decodes the next case.
func (d *Decoder) Next() (Case, error) {
	c := Case{Number: d.next}

	n, err := d.r.NextUint()
	if err != nil {
		return c, d.errorf("reading node count: %w", err)
	}
	if n%2 == 0 {
		return c, d.errorf("%w: %d is even", ErrNodeCount, n)
	}
	if n > maxTreeNodes {
		return c, d.errorf("%w: %d exceeds %d", ErrNodeCount, n, maxTreeNodes)
	}
	if d.MaxNodes > 0 && n > uint64(d.MaxNodes) {
		return c, d.errorf("%w: %d exceeds limit %d", ErrNodeCount, n, d.MaxNodes)
	}

	if c.Desired, err = d.r.NextBool(); err != nil {
		return c, d.errorf("reading desired value: %w", err)
	}

	half := int(n / 2)
	interiors := make([]Spec, 0, min(half, allocChunk))
	for i := 0; i < half; i++ {
		code, err := d.r.NextUint()
		if err != nil {
			return c, d.errorf("reading gate of node %d: %w", i, err)
		}
		var spec Spec
		if spec.Gate, err = GateFromCode(code); err != nil {
			return c, d.errorf("node %d at token %d: %w", i, d.r.Pos(), err)
		}
		if spec.Changeable, err = d.r.NextBool(); err != nil {
			return c, d.errorf("reading changeable flag of node %d: %w", i, err)
		}
		interiors = append(interiors, spec)
	}

	leaves := make([]bool, 0, min(half+1, allocChunk))
	for i := 0; i <= half; i++ {
		v, err := d.r.NextBool()
		if err != nil {
			return c, d.errorf("reading leaf %d: %w", i, err)
		}
		leaves = append(leaves, v)
	}

	if c.Root, err = Build(interiors, leaves); err != nil {
		return c, d.errorf("%w", err)
	}

	d.next++
	return c, nil
}

func (d *Decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("case #%d: "+format, append([]any{d.next}, args...)...)
}
