/*
File    : internal/lexer/numeric_test.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import (
	"math/big"
	"testing"

	"github.com/akashmaji946/ecmalex/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanOneNumber(t *testing.T, src string) token.Token {
	t.Helper()
	l := NewFromString("<test>", src, DefaultOptions())
	tok, err := l.Scan()
	require.NoError(t, err)
	require.Equal(t, token.NumericLiteral, tok.Kind)
	return tok
}

func TestBinaryLiteral(t *testing.T) {
	tok := scanOneNumber(t, "0b101010")
	assert.Equal(t, token.Binary, tok.Number.Base)
	assert.Equal(t, 42.0, tok.Number.Value)
	assert.Equal(t, "0b101010", tok.Lexeme)
}

func TestHexLiteralWithBigIntSuffix(t *testing.T) {
	tok := scanOneNumber(t, "0x123n")
	assert.Equal(t, token.Hex, tok.Number.Base)
	assert.True(t, tok.Number.IsBigInt)
	require.NotNil(t, tok.Number.BigIntValue)
	assert.Equal(t, big.NewInt(0x123), tok.Number.BigIntValue)
	assert.Equal(t, "0x123n", tok.Lexeme)
}

func TestOctalPrefixedLiteral(t *testing.T) {
	tok := scanOneNumber(t, "0o17")
	assert.Equal(t, token.Octal, tok.Number.Base)
	assert.Equal(t, 15.0, tok.Number.Value)
}

func TestLegacyOctalLiteral(t *testing.T) {
	tok := scanOneNumber(t, "0755")
	assert.Equal(t, token.Octal, tok.Number.Base)
	assert.True(t, tok.Number.LegacyOctal)
	assert.Equal(t, 493.0, tok.Number.Value)
}

func TestLegacyOctalRejectsEightAndNine(t *testing.T) {
	l := NewFromString("<test>", "018", DefaultOptions())
	_, err := l.Scan()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, InvalidDigit, lexErr.Kind)
}

func TestLegacyOctalInStrictModeIsError(t *testing.T) {
	l := NewFromString("<test>", "0755", Options{StrictMode: true})
	_, err := l.Scan()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, LegacyOctalInStrictMode, lexErr.Kind)
}

func TestDecimalWithExponent(t *testing.T) {
	tok := scanOneNumber(t, "1.2e-3")
	assert.Equal(t, token.Decimal, tok.Number.Base)
	assert.True(t, tok.Number.HasExponent)
	assert.InDelta(t, 0.0012, tok.Number.Value, 1e-12)
}

func TestDecimalExponentRequiresDigit(t *testing.T) {
	l := NewFromString("<test>", "1e", DefaultOptions())
	_, err := l.Scan()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnexpectedNumber, lexErr.Kind)
}

func TestNumericSeparators(t *testing.T) {
	tok := scanOneNumber(t, "1_000_000")
	assert.Equal(t, 1000000.0, tok.Number.Value)
	assert.Equal(t, "1_000_000", tok.Lexeme)
}

func TestNumericSeparatorMustBeFlankedByDigits(t *testing.T) {
	l := NewFromString("<test>", "1_", DefaultOptions())
	_, err := l.Scan()
	require.Error(t, err)
}

func TestDecimalBigIntOnlyWhenNoFractionOrExponent(t *testing.T) {
	tok := scanOneNumber(t, "123n")
	assert.True(t, tok.Number.IsBigInt)
	assert.Equal(t, big.NewInt(123), tok.Number.BigIntValue)
}

func TestBigIntSuffixAfterFractionIsError(t *testing.T) {
	l := NewFromString("<test>", "1.5n", DefaultOptions())
	_, err := l.Scan()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, InvalidBigInt, lexErr.Kind)
}

func TestBigIntSuffixAfterExponentIsError(t *testing.T) {
	l := NewFromString("<test>", "1e3n", DefaultOptions())
	_, err := l.Scan()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, InvalidBigInt, lexErr.Kind)
}
