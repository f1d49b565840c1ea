package gatetree

import "fmt"

// Result is the answer for one case.
type Result struct {
	Case    int  `json:"case"`
	Changes Cost `json:"changes"`
}

func (r Result) String() string {
	return fmt.Sprintf("Case #%d: %s", r.Case, r.Changes)
}
