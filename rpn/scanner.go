package rpn

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// decimal rejects the Go-only literal forms ParseFloat would otherwise
// accept: hex mantissas and digit separators.
func decimal(field string) bool {
	digits := strings.TrimLeft(field, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return false
	}
	return !strings.Contains(field, "_")
}

type Scanner struct {
}

func NewExpressionScanner() *Scanner {
	return &Scanner{}
}

// Scan splits data on runs of whitespace and classifies every field as an
// operator or an operand. The first field that is neither fails the scan.
func (*Scanner) Scan(data string) (TokenList, error) {
	var tokens TokenList
	for _, field := range strings.Fields(data) {
		if op, ok := OperatorMapping[field]; ok {
			tokens = append(tokens, Token{
				TokenType: TokenTypeOperator,
				StringVal: field,
				Operator:  op,
			})
			continue
		}

		if !decimal(field) {
			return nil, &ParseError{Token: field}
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			// out of range literals still carry ±Inf
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
				return nil, &ParseError{Token: field}
			}
		}
		tokens = append(tokens, Token{
			TokenType: TokenTypeOperand,
			StringVal: field,
			FloatVal:  f,
		})
	}
	return tokens, nil
}
