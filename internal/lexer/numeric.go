/*
File    : internal/lexer/numeric.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/akashmaji946/ecmalex/internal/charset"
	"github.com/akashmaji946/ecmalex/internal/token"
)

// scanNumber implements the numeric sub-lexer state machine of 4.D: Start ->
// AfterZero -> {Hex|Binary|Octal|LegacyOctal|Decimal} -> [fraction] ->
// [exponent] -> [BigInt suffix] -> End. It is entered only when the caller
// has already confirmed the current position starts a number (a decimal
// digit, or '.' followed by one).
func (l *Lexer) scanNumber(start, startLine, startCol int) (token.Token, error) {
	first, _ := l.cur.Peek()

	if first == '0' {
		l.advance()
		second, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		switch {
		case charset.IsHexStart(second):
			l.advance()
			return l.finishRadix(start, startLine, startCol, token.Hex, 16, charset.IsHexDigit)
		case charset.IsBinaryStart(second):
			l.advance()
			return l.finishRadix(start, startLine, startCol, token.Binary, 2, charset.IsBinaryDigit)
		case charset.IsOctalStart(second):
			l.advance()
			return l.finishRadix(start, startLine, startCol, token.Octal, 8, charset.IsOctalDigit)
		case charset.IsOctalDigit(second):
			return l.finishLegacyOctal(start, startLine, startCol)
		case charset.IsNonOctalDigit(second):
			return l.finishDecimal(start, startLine, startCol)
		case charset.IsDecimalSeparator(second):
			return l.finishDecimal(start, startLine, startCol)
		case charset.IsExponentIndicator(second):
			return l.finishDecimal(start, startLine, startCol)
		case charset.IsBigIntSuffix(second):
			l.advance()
			lexeme := l.sliceSince(start)
			tok := l.emit(token.NumericLiteral, start, lexeme, startLine, startCol)
			tok.Number = &token.NumberLiteral{Raw: lexeme, Base: token.Decimal, IsBigInt: true, BigIntValue: big.NewInt(0)}
			return tok, nil
		default:
			lexeme := l.sliceSince(start)
			tok := l.emit(token.NumericLiteral, start, lexeme, startLine, startCol)
			tok.Number = &token.NumberLiteral{Raw: lexeme, Value: 0, Base: token.Decimal}
			return tok, nil
		}
	}

	return l.finishDecimal(start, startLine, startCol)
}

// finishRadix consumes digit(_digit)* for a non-decimal base already past
// its "0x"/"0b"/"0o" prefix, then an optional BigInt suffix.
func (l *Lexer) finishRadix(start, startLine, startCol int, base token.NumericBase, radix int, isDigit func(rune) bool) (token.Token, error) {
	digitsStart := l.cur.Pos()
	if err := l.consumeDigitRun(start, isDigit, base); err != nil {
		return token.Token{}, err
	}
	if l.cur.Pos() == digitsStart {
		return token.Token{}, l.newError(InvalidDigit, start, "expected at least one digit in %s literal", base)
	}

	digits := stripSeparators(l.sliceSince(digitsStart))

	isBigInt := false
	if ch, _ := l.cur.Peek(); charset.IsBigIntSuffix(ch) {
		l.advance()
		isBigInt = true
	}

	lexeme := l.sliceSince(start)

	tok := l.emit(token.NumericLiteral, start, lexeme, startLine, startCol)
	num := &token.NumberLiteral{Raw: lexeme, Base: base, IsBigInt: isBigInt}
	if isBigInt {
		bi := new(big.Int)
		if _, ok := bi.SetString(digits, radix); !ok {
			return token.Token{}, l.newError(InvalidBigInt, start, "malformed %s BigInt literal", base)
		}
		num.BigIntValue = bi
	} else {
		v, err := strconv.ParseUint(digits, radix, 64)
		if err != nil {
			return token.Token{}, l.newError(InvalidDigit, start, "malformed %s literal", base)
		}
		num.Value = float64(v)
	}
	tok.Number = num
	return tok, nil
}

// finishLegacyOctal handles "0" followed by an octal digit: bare-zero octal
// with no "o"/"O" prefix. An "8" or "9" digit inside is a base violation,
// not silently reinterpreted as decimal, per spec.md 4.D.
func (l *Lexer) finishLegacyOctal(start, startLine, startCol int) (token.Token, error) {
	digitsStart := l.cur.Pos()
	for {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if charset.IsNonOctalDigit(ch) {
			return token.Token{}, l.newError(InvalidDigit, start, "digit %q invalid in octal literal", ch)
		}
		if !charset.IsOctalDigit(ch) {
			break
		}
		l.advance()
	}
	if l.opts.StrictMode {
		return token.Token{}, l.newError(LegacyOctalInStrictMode, start, "legacy octal literal not allowed in strict mode")
	}
	lexeme := l.sliceSince(start)
	digits := l.sliceSince(digitsStart)
	tok := l.emit(token.NumericLiteral, start, lexeme, startLine, startCol)
	v, _ := strconv.ParseUint(digits, 8, 64)
	tok.Number = &token.NumberLiteral{
		Raw:         lexeme,
		Value:       float64(v),
		Base:        token.Octal,
		LegacyOctal: true,
	}
	return tok, nil
}

// finishDecimal handles the general decimal path: integer part, optional
// fraction, optional exponent, optional BigInt suffix (only legal absent
// fraction and exponent).
func (l *Lexer) finishDecimal(start, startLine, startCol int) (token.Token, error) {
	if err := l.consumeDigitRun(start, charset.IsDecimalDigit, token.Decimal); err != nil {
		return token.Token{}, err
	}

	hasFraction := false
	if ch, _ := l.cur.Peek(); charset.IsDecimalSeparator(ch) {
		hasFraction = true
		l.advance()
		if err := l.consumeDigitRun(start, charset.IsDecimalDigit, token.Decimal); err != nil {
			return token.Token{}, err
		}
	}

	hasExponent := false
	if ch, _ := l.cur.Peek(); charset.IsExponentIndicator(ch) {
		hasExponent = true
		l.advance()
		if ch2, _ := l.cur.Peek(); charset.IsExponentSign(ch2) {
			l.advance()
		}
		expDigitsStart := l.cur.Pos()
		if err := l.consumeDigitRun(start, charset.IsDecimalDigit, token.Decimal); err != nil {
			return token.Token{}, err
		}
		if l.cur.Pos() == expDigitsStart {
			return token.Token{}, l.newError(UnexpectedNumber, start, "exponent indicator not followed by a digit")
		}
	}

	isBigInt := false
	if ch, _ := l.cur.Peek(); charset.IsBigIntSuffix(ch) {
		if hasFraction || hasExponent {
			return token.Token{}, l.newError(InvalidBigInt, start, "BigInt suffix not allowed after a fraction or exponent")
		}
		l.advance()
		isBigInt = true
	}

	lexeme := l.sliceSince(start)
	tok := l.emit(token.NumericLiteral, start, lexeme, startLine, startCol)
	num := &token.NumberLiteral{
		Raw:         lexeme,
		Base:        token.Decimal,
		HasExponent: hasExponent,
		IsBigInt:    isBigInt,
	}
	if isBigInt {
		digits := stripSeparators(strings.TrimSuffix(lexeme, "n"))
		bi := new(big.Int)
		if _, ok := bi.SetString(digits, 10); !ok {
			return token.Token{}, l.newError(InvalidBigInt, start, "malformed decimal BigInt literal")
		}
		num.BigIntValue = bi
	} else {
		canonical := stripSeparators(lexeme)
		v, err := strconv.ParseFloat(canonical, 64)
		if err != nil {
			return token.Token{}, l.newError(UnexpectedNumber, start, "malformed decimal literal %q", lexeme)
		}
		num.Value = v
	}
	tok.Number = num
	return tok, nil
}

// consumeDigitRun consumes digit(_ digit)* for the given predicate, with the
// uniform separator rule: '_' must be flanked by digits of the current
// base. start is only used to anchor error spans.
func (l *Lexer) consumeDigitRun(start int, isDigit func(rune) bool, base token.NumericBase) error {
	sawDigit := false
	for {
		if l.cur.Eof() {
			return nil
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return l.malformedUTF8(err)
		}
		if isDigit(ch) {
			l.advance()
			sawDigit = true
			continue
		}
		if charset.IsNumericSeparator(ch) {
			if !sawDigit {
				return l.newError(InvalidDigit, start, "numeric separator must be preceded by a digit")
			}
			next := l.peekAtOr(1, 0)
			if !isDigit(next) {
				return l.newError(InvalidDigit, start, "numeric separator must be followed by a digit")
			}
			l.advance()
			continue
		}
		return nil
	}
}

func stripSeparators(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}
