package selector

import (
	"github.com/pkg/errors"
	"go.buf.build/protocolbuffers/go/prometheus/prometheus"
)

const MetricNameLabel = "__name__"

var errEndOfStream = errors.New("unexpected end of stream")

// Parser turns selector tokens into Prometheus labels.
type Parser struct {
	index  int
	tokens TokenList
}

func NewSelectorParser(tokens TokenList) *Parser {
	return &Parser{
		index:  0,
		tokens: tokens,
	}
}

func (p *Parser) Reset(tokens TokenList) {
	p.index = 0
	p.tokens = tokens
}

func (p *Parser) hasTokens() bool {
	return p.index < len(p.tokens)
}

func (p *Parser) consume() {
	p.index = p.index + 1
}

func (p *Parser) next() (*Token, error) {
	if !p.hasTokens() {
		return nil, errEndOfStream
	}
	current := p.index
	p.index = p.index + 1
	return p.tokens.at(current), nil
}

func (p *Parser) peek() (*Token, error) {
	if !p.hasTokens() {
		return nil, errEndOfStream
	}
	return p.tokens.at(p.index), nil
}

func (p *Parser) expect(t TokenType) (*Token, error) {
	token, err := p.next()
	if err != nil {
		return nil, errors.Wrapf(err, "expected %v", t)
	}

	if token.TokenType == t {
		return token, nil
	}

	return nil, errors.Errorf("unexpected token, expected %v but got %v:%v in line %v", t, token.TokenType, token.StringVal, token.Line)
}

func (p *Parser) label() (*prometheus.Label, error) {
	name, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}

	if _, err = p.expect(TokenTypeEquals); err != nil {
		return nil, err
	}

	if _, err = p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}

	la, err := p.peek()
	if err != nil {
		return nil, err
	}

	value := ""
	if la.TokenType != TokenTypeQuote {
		token, err := p.expect(TokenTypeName)
		if err != nil {
			return nil, err
		}
		value = token.StringVal
	}

	if _, err = p.expect(TokenTypeQuote); err != nil {
		return nil, err
	}

	return &prometheus.Label{
		Name:  name.StringVal,
		Value: value,
	}, nil
}

func (p *Parser) labels() ([]*prometheus.Label, error) {
	var labels []*prometheus.Label
	for p.hasTokens() {
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.TokenType == TokenTypeRBrace {
			break
		}

		label, err := p.label()
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)

		la, err = p.peek()
		if err != nil {
			return nil, err
		}
		switch la.TokenType {
		case TokenTypeComma:
			p.consume()
		case TokenTypeRBrace:
		default:
			return nil, errors.Errorf("unexpected token: expected , or } but got: %v", la.TokenType)
		}
	}
	return labels, nil
}

// Parse reads `<metric>{<label>="<value>", ...}`. The metric name becomes
// the __name__ label and always comes first.
func (p *Parser) Parse() ([]*prometheus.Label, error) {
	token, err := p.expect(TokenTypeName)
	if err != nil {
		return nil, err
	}

	labels := []*prometheus.Label{{
		Name:  MetricNameLabel,
		Value: token.StringVal,
	}}

	if !p.hasTokens() {
		return labels, nil
	}

	if _, err = p.expect(TokenTypeLBrace); err != nil {
		return nil, err
	}
	parsed, err := p.labels()
	if err != nil {
		return nil, err
	}
	labels = append(labels, parsed...)
	if _, err = p.expect(TokenTypeRBrace); err != nil {
		return nil, err
	}

	if p.hasTokens() {
		extra, _ := p.peek()
		return nil, errors.Errorf("unexpected trailing %v in line %v", extra.TokenType, extra.Line)
	}
	return labels, nil
}

// ParseLabels scans and parses a selector in one step.
func ParseLabels(selector string) ([]*prometheus.Label, error) {
	tokens, err := NewSelectorScanner().Scan(selector)
	if err != nil {
		return nil, err
	}
	labels, err := NewSelectorParser(tokens).Parse()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid selector %q", selector)
	}
	return labels, nil
}
