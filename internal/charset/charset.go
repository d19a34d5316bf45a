/*
File    : internal/charset/charset.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Package charset holds the pure character-classification predicates the
scanner dispatches on. None of these functions consume input; they only
answer "what is this code point" questions for the cursor-driven
sub-lexers in internal/lexer.
*/
package charset

import "unicode"

const (
	lineFeed      = 0x000A // LF
	carriageRet   = 0x000D // CR
	lineSeparator = 0x2028 // LS
	paraSeparator = 0x2029 // PS

	tab         = 0x0009
	verticalTab = 0x000B
	formFeed    = 0x000C
	byteOrderMk = 0xFEFF
)

// IsLineTerminator reports whether ch is one of the four ECMAScript line
// terminators: LF, CR, LS, or PS.
func IsLineTerminator(ch rune) bool {
	switch ch {
	case lineFeed, carriageRet, lineSeparator, paraSeparator:
		return true
	default:
		return false
	}
}

// IsCRLF reports whether the two-rune sequence (first, second) is a CRLF
// line break, which the scanner must consume as a single Newline token.
func IsCRLF(first, second rune) bool {
	return first == carriageRet && second == lineFeed
}

// IsWhitespace reports whether ch is whitespace but not a line terminator:
// tab, vertical tab, form feed, BOM, or any Unicode Zs code point.
func IsWhitespace(ch rune) bool {
	switch ch {
	case tab, verticalTab, formFeed, byteOrderMk:
		return true
	}
	return unicode.Is(unicode.Zs, ch)
}

// IsIdentifierStart reports whether ch may begin an identifier: a Unicode
// letter code point (standing in for XID_Start, which the Go standard
// library does not expose directly), '$', or '_'.
func IsIdentifierStart(ch rune) bool {
	if ch == '$' || ch == '_' {
		return true
	}
	return unicode.IsLetter(ch)
}

// IsIdentifierContinue reports whether ch may continue an identifier begun
// by IsIdentifierStart: anything IsIdentifierStart accepts, plus decimal
// digits and combining marks (standing in for XID_Continue).
func IsIdentifierContinue(ch rune) bool {
	if IsIdentifierStart(ch) {
		return true
	}
	return unicode.IsDigit(ch) || unicode.IsMark(ch)
}

// IsDecimalDigit reports whether ch is an ASCII decimal digit (0-9).
func IsDecimalDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// IsNonOctalDigit reports whether ch is a decimal digit outside the octal
// range: 8 or 9. Used to detect a decimal literal masquerading as a legacy
// octal one (e.g. "09").
func IsNonOctalDigit(ch rune) bool { return ch == '8' || ch == '9' }

// IsOctalDigit reports whether ch is a valid octal digit (0-7).
func IsOctalDigit(ch rune) bool { return ch >= '0' && ch <= '7' }

// IsBinaryDigit reports whether ch is a valid binary digit (0 or 1).
func IsBinaryDigit(ch rune) bool { return ch == '0' || ch == '1' }

// IsHexDigit reports whether ch is a valid hexadecimal digit.
func IsHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

// HexDigitValue returns the numeric value of a hex digit, or -1 if ch is not
// one.
func HexDigitValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}

// OctalDigitValue returns the numeric value of an octal digit, or -1 if ch
// is not one.
func OctalDigitValue(ch rune) int {
	if !IsOctalDigit(ch) {
		return -1
	}
	return int(ch - '0')
}

// IsNumericSeparator reports whether ch is the '_' digit-group separator.
func IsNumericSeparator(ch rune) bool { return ch == '_' }

// IsBigIntSuffix reports whether ch is the 'n' BigInt suffix.
func IsBigIntSuffix(ch rune) bool { return ch == 'n' }

// IsDecimalSeparator reports whether ch is the '.' used as a fractional
// separator in a numeric literal.
func IsDecimalSeparator(ch rune) bool { return ch == '.' }

// IsExponentIndicator reports whether ch introduces an exponent ('e'/'E').
func IsExponentIndicator(ch rune) bool { return ch == 'e' || ch == 'E' }

// IsExponentSign reports whether ch is a valid exponent sign ('+'/'-').
func IsExponentSign(ch rune) bool { return ch == '+' || ch == '-' }

// IsHexStart reports whether ch is the 'x'/'X' base prefix letter following
// a leading '0'.
func IsHexStart(ch rune) bool { return ch == 'x' || ch == 'X' }

// IsOctalStart reports whether ch is the 'o'/'O' base prefix letter
// following a leading '0'.
func IsOctalStart(ch rune) bool { return ch == 'o' || ch == 'O' }

// IsBinaryStart reports whether ch is the 'b'/'B' base prefix letter
// following a leading '0'.
func IsBinaryStart(ch rune) bool { return ch == 'b' || ch == 'B' }

// IsSingleCharacterEscape reports whether ch is one of the single-character
// escape letters recognized after a backslash in a string: quote, double
// quote, backslash, b, f, n, r, t, v.
func IsSingleCharacterEscape(ch rune) bool {
	switch ch {
	case 0x27, 0x22, 0x5C, 'b', 'f', 'n', 'r', 't', 'v':
		return true
	default:
		return false
	}
}

// IsStringDelimiter reports whether ch opens a quoted or template string:
// single quote, double quote, or backtick.
func IsStringDelimiter(ch rune) bool {
	return ch == 0x27 || ch == 0x22 || ch == 0x60
}

// SingleCharacterEscapeValue decodes one of the IsSingleCharacterEscape
// letters to its resolved code point. ok is false if ch is not a recognized
// single-character escape.
func SingleCharacterEscapeValue(ch rune) (resolved rune, ok bool) {
	switch ch {
	case 0x27:
		return 0x27, true
	case 0x22:
		return 0x22, true
	case 0x5C:
		return 0x5C, true
	case 'b':
		return 0x08, true
	case 'f':
		return formFeed, true
	case 'n':
		return lineFeed, true
	case 'r':
		return carriageRet, true
	case 't':
		return tab, true
	case 'v':
		return verticalTab, true
	default:
		return 0, false
	}
}
