// Package tokens reads whitespace-delimited unsigned integers from a stream.
package tokens

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrNoMoreTokens is returned when the stream ends before a token was requested.
	ErrNoMoreTokens = errors.New("no more tokens")
	// ErrInvalidToken is wrapped by errors for tokens that are not unsigned integers.
	ErrInvalidToken = errors.New("invalid token")
)

// Reader yields unsigned integers on demand.
type Reader struct {
	scanner *bufio.Scanner
	pos     int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Reader{scanner: s}
}

// NextUint returns the next token as an unsigned integer.
func (r *Reader) NextUint() (uint64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading token %d: %w", r.pos+1, err)
		}
		return 0, ErrNoMoreTokens
	}
	r.pos++

	text := r.scanner.Text()
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q", ErrInvalidToken, r.pos, text)
	}
	return v, nil
}

// NextBool reads the next token and reports whether it equals 1.
func (r *Reader) NextBool() (bool, error) {
	v, err := r.NextUint()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// Pos returns the number of tokens consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}
