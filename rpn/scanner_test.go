package rpn

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatOperand(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func TestScan(t *testing.T) {
	tokens, err := NewExpressionScanner().Scan(" 1.5\t-2 +  3 * -\n4 / %")
	require.NoError(t, err)

	want := TokenList{
		{TokenType: TokenTypeOperand, StringVal: "1.5", FloatVal: 1.5},
		{TokenType: TokenTypeOperand, StringVal: "-2", FloatVal: -2},
		{TokenType: TokenTypeOperator, StringVal: "+", Operator: Addition},
		{TokenType: TokenTypeOperand, StringVal: "3", FloatVal: 3},
		{TokenType: TokenTypeOperator, StringVal: "*", Operator: Multiplication},
		{TokenType: TokenTypeOperator, StringVal: "-", Operator: Subtraction},
		{TokenType: TokenTypeOperand, StringVal: "4", FloatVal: 4},
		{TokenType: TokenTypeOperator, StringVal: "/", Operator: Division},
		{TokenType: TokenTypeOperator, StringVal: "%", Operator: Modulo},
	}
	assert.Equal(t, want, tokens)
}

func TestScanEmpty(t *testing.T) {
	tokens, err := NewExpressionScanner().Scan(" \t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestScanOverflowingLiteral(t *testing.T) {
	tokens, err := NewExpressionScanner().Scan("1e400 -1e400")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.True(t, math.IsInf(tokens[0].FloatVal, 1))
	assert.True(t, math.IsInf(tokens[1].FloatVal, -1))
}

func TestScanRejects(t *testing.T) {
	for _, field := range []string{"t", "++", "1,5", "--1", "1.2.3", "x1", "0x1p-2", "-0X1P4", "0x_1p0", "1_000", "1_0.5"} {
		_, err := NewExpressionScanner().Scan("1 " + field)
		require.Error(t, err, field)
		assert.Equal(t, &ParseError{Token: field}, err)
	}
}

func TestScanSpecialValues(t *testing.T) {
	tokens, err := NewExpressionScanner().Scan("inf -Inf NaN")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.True(t, math.IsInf(tokens[0].FloatVal, 1))
	assert.True(t, math.IsInf(tokens[1].FloatVal, -1))
	assert.True(t, math.IsNaN(tokens[2].FloatVal))
}

func TestOperatorString(t *testing.T) {
	for symbol, op := range OperatorMapping {
		assert.Equal(t, symbol, op.String())
	}
}
