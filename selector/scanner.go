package selector

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type Scanner struct {
}

func NewSelectorScanner() *Scanner {
	return &Scanner{}
}

// Scan tokenizes a series selector such as `up{job="api", instance=""}`.
// Text between quotes is a single name token and may contain any rune but a
// quote. Lines starting with # are comments.
func (*Scanner) Scan(data string) (TokenList, error) {
	var tokens TokenList
	runes := []rune(data)
	index := 0
	line := 0
	quoted := false

	next := func() rune {
		current := runes[index]
		index = index + 1
		return current
	}

	peek := func() rune {
		return runes[index]
	}

	emit := func(t TokenType) {
		tokens = append(tokens, Token{
			TokenType: t,
			Line:      line,
		})
	}

	name := func(t rune) Token {
		sb := strings.Builder{}
		sb.WriteRune(t)
		for index < len(runes) {
			r := peek()
			if quoted {
				if r == '"' {
					break
				}
			} else if r == '{' || r == '}' || r == '=' || r == ',' || r == '"' || unicode.IsSpace(r) {
				break
			}
			sb.WriteRune(next())
		}

		return Token{
			TokenType: TokenTypeName,
			StringVal: sb.String(),
			Line:      line,
		}
	}

	comment := func() {
		for index < len(runes) {
			if next() == '\n' {
				line = line + 1
				break
			}
		}
	}

	for index < len(runes) {
		r := next()

		if quoted && r != '"' {
			tokens = append(tokens, name(r))
			continue
		}

		if r == '\n' {
			line = line + 1
			continue
		}

		if unicode.IsSpace(r) {
			continue
		}

		switch r {
		case '#':
			comment()
		case '{':
			emit(TokenTypeLBrace)
		case '}':
			emit(TokenTypeRBrace)
		case '"':
			quoted = !quoted
			emit(TokenTypeQuote)
		case '=':
			emit(TokenTypeEquals)
		case ',':
			emit(TokenTypeComma)
		default:
			tokens = append(tokens, name(r))
		}
	}

	if quoted {
		return nil, errors.Errorf("unterminated quote in line %v", line)
	}
	return tokens, nil
}
