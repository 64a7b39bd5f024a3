package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax marks input that does not follow the SMILES grammar.
	ErrSyntax = errors.New("parser: invalid syntax")

	// ErrStructure marks grammatical input describing an impossible graph:
	// open rings, conflicting ring bonds, duplicate edges, bad stereo.
	ErrStructure = errors.New("parser: invalid structure")
)

// Error is the error returned by Parse. It records the input and the byte
// offset at fault and renders both with a caret under the offending byte.
type Error struct {
	Msg   string
	Input string
	Pos   int

	kind  error // ErrSyntax or ErrStructure
	cause error // underlying error, may be nil
}

func (e *Error) Error() string {
	pos := e.Pos
	if pos > len(e.Input) {
		pos = len(e.Input)
	}
	return fmt.Sprintf("%s:\n%s\n%s^", e.Msg, e.Input, strings.Repeat(" ", pos))
}

// Unwrap exposes both the category sentinel and the underlying cause to
// errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := []error{e.kind}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}
