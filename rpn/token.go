package rpn

import "math"

const (
	TokenTypeOperand = iota
	TokenTypeOperator
)

type TokenType int

// Operator is one of the fixed set of binary arithmetic operators.
type Operator int

const (
	Addition Operator = iota
	Subtraction
	Multiplication
	Division
	Modulo
)

var OperatorMapping = map[string]Operator{
	"+": Addition,
	"-": Subtraction,
	"*": Multiplication,
	"/": Division,
	"%": Modulo,
}

func (o Operator) String() string {
	for symbol, op := range OperatorMapping {
		if op == o {
			return symbol
		}
	}
	return "?"
}

// Apply computes first op second. Division and modulo by zero follow
// IEEE 754 and yield ±Inf or NaN.
func (o Operator) Apply(first, second float64) float64 {
	switch o {
	case Addition:
		return first + second
	case Subtraction:
		return first - second
	case Multiplication:
		return first * second
	case Division:
		return first / second
	case Modulo:
		return math.Mod(first, second)
	}
	return math.NaN()
}

type Token struct {
	TokenType TokenType
	StringVal string
	FloatVal  float64
	Operator  Operator
}

type TokenList []Token

func (in TokenList) at(index int) *Token {
	if index < len(in) {
		return &in[index]
	}
	return nil
}
