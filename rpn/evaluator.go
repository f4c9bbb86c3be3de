// Package rpn evaluates arithmetic expressions written in Reverse Polish
// Notation, such as "1 2 + 4 *".
package rpn

// Evaluator walks a token list with a single operand stack.
type Evaluator struct {
	index  int
	tokens TokenList
	stack  stack
}

func NewEvaluator(tokens TokenList) *Evaluator {
	return &Evaluator{
		index:  0,
		tokens: tokens,
	}
}

func (e *Evaluator) hasTokens() bool {
	return e.index < len(e.tokens)
}

func (e *Evaluator) next() *Token {
	current := e.index
	e.index = e.index + 1
	return e.tokens.at(current)
}

func (e *Evaluator) apply(op Operator) error {
	if e.stack.len() < 2 {
		return ErrInsufficientOperands
	}
	second := e.stack.pop()
	first := e.stack.pop()
	e.stack.push(op.Apply(first, second))
	return nil
}

// Evaluate consumes the remaining tokens and returns the single value left
// on the stack.
func (e *Evaluator) Evaluate() (float64, error) {
	for e.hasTokens() {
		token := e.next()
		switch token.TokenType {
		case TokenTypeOperand:
			e.stack.push(token.FloatVal)
		case TokenTypeOperator:
			if err := e.apply(token.Operator); err != nil {
				return 0, err
			}
		}
	}

	if e.stack.len() != 1 {
		return 0, ErrUnbalancedExpression
	}
	return e.stack.pop(), nil
}

// EvaluateTokens evaluates an already scanned expression.
func EvaluateTokens(tokens TokenList) (float64, error) {
	return NewEvaluator(tokens).Evaluate()
}

// Evaluate scans and evaluates expression. The returned error is a
// *ParseError, ErrInsufficientOperands or ErrUnbalancedExpression.
func Evaluate(expression string) (float64, error) {
	tokens, err := NewExpressionScanner().Scan(expression)
	if err != nil {
		return 0, err
	}
	return EvaluateTokens(tokens)
}
