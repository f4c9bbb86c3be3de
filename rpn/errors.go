package rpn

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInsufficientOperands is returned when an operator is reached with
	// fewer than two values on the stack.
	ErrInsufficientOperands = errors.New("insufficient operands before operator")

	// ErrUnbalancedExpression is returned when evaluation ends with anything
	// other than exactly one value on the stack, including empty input.
	ErrUnbalancedExpression = errors.New("remaining untreated operands, probably missing operator")
)

// ParseError is returned when a token is neither an operator nor a number.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse operand %q", e.Token)
}
