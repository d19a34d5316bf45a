/*
File    : internal/lexer/escape.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import (
	"github.com/akashmaji946/ecmalex/internal/charset"
	"github.com/akashmaji946/ecmalex/internal/token"
)

// escapeFamily is a bitset of the escape kinds a caller permits. Template
// strings pass everything but allowOctal, since legacy octal escapes are
// forbidden there.
type escapeFamily struct {
	allowSimple  bool
	allowHex     bool
	allowUnicode bool
	allowOctal   bool
}

var quotedEscapes = escapeFamily{allowSimple: true, allowHex: true, allowUnicode: true, allowOctal: true}
var templateEscapes = escapeFamily{allowSimple: true, allowHex: true, allowUnicode: true, allowOctal: false}

// decodeEscape is invoked immediately after consuming the backslash that
// introduces an escape sequence inside a string or template literal.
// backslashPos is the backslash's byte offset relative to the start of the
// literal's raw interior, and becomes the returned EscapeInfo.PositionInRaw.
func (l *Lexer) decodeEscape(allowed escapeFamily, literalStart, backslashPos int) (token.EscapeInfo, error) {
	escStart := l.cur.Pos() - 1 // offset of the backslash itself, already consumed by the caller
	ch, err := l.cur.Peek()
	if err != nil {
		return token.EscapeInfo{}, l.malformedUTF8(err)
	}
	if l.cur.Eof() {
		return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "backslash at end of input")
	}

	switch {
	case ch == 'x' && allowed.allowHex:
		l.advance()
		return l.decodeHexEscape(literalStart, escStart, backslashPos)
	case ch == 'u' && allowed.allowUnicode:
		l.advance()
		return l.decodeUnicodeEscape(literalStart, escStart, backslashPos)
	case charset.IsOctalDigit(ch) && allowed.allowOctal:
		return l.decodeOctalEscape(literalStart, escStart, backslashPos)
	case charset.IsLineTerminator(ch):
		// Line continuation: backslash immediately followed by a line
		// terminator elides both from value, per ECMAScript LineContinuation.
		consumed, err := l.consumeLineTerminator()
		if err != nil {
			return token.EscapeInfo{}, err
		}
		return token.EscapeInfo{
			Kind:          token.SimpleEscape,
			RawSpan:       "\\" + consumed,
			PositionInRaw: backslashPos,
			ResolvedChar:  -1, // caller must special-case: nothing to append
		}, nil
	case charset.IsSingleCharacterEscape(ch) && allowed.allowSimple:
		l.advance()
		resolved, _ := charset.SingleCharacterEscapeValue(ch)
		return token.EscapeInfo{
			Kind:          token.SimpleEscape,
			RawSpan:       l.sliceSince(escStart),
			PositionInRaw: backslashPos,
			ResolvedChar:  resolved,
		}, nil
	default:
		// There is no "identity escape" fallback (e.g. "\q" does not decode
		// to "q"): the single-character escape set is closed, so a digit
		// that cannot start an octal escape (8 or 9, or any digit where
		// octal escapes are not allowed) and anything else unrecognized is
		// an error.
		return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "unrecognized escape character %q", ch)
	}
}

func (l *Lexer) consumeLineTerminator() (string, error) {
	start := l.cur.Pos()
	first, err := l.advance()
	if err != nil {
		return "", l.malformedUTF8(err)
	}
	if charset.IsCRLF(first, l.peekAtOr(0, 0)) {
		if _, err := l.advance(); err != nil {
			return "", l.malformedUTF8(err)
		}
	}
	l.line++
	l.column = 1
	return l.sliceSince(start), nil
}

// decodeHexEscape reads exactly two hex digits following "\x".
func (l *Lexer) decodeHexEscape(literalStart, escStart, backslashPos int) (token.EscapeInfo, error) {
	value := 0
	for i := 0; i < 2; i++ {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.EscapeInfo{}, l.malformedUTF8(err)
		}
		if !charset.IsHexDigit(ch) {
			return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "\\x escape requires two hex digits")
		}
		value = value*16 + charset.HexDigitValue(ch)
		l.advance()
	}
	return token.EscapeInfo{
		Kind:          token.HexEscape,
		RawSpan:       l.sliceSince(escStart),
		PositionInRaw: backslashPos,
		ResolvedChar:  rune(value),
	}, nil
}

// decodeUnicodeEscape reads either "\uHHHH" (exactly four hex digits) or
// "\u{H+}" (one to six hex digits, value <= 0x10FFFF).
func (l *Lexer) decodeUnicodeEscape(literalStart, escStart, backslashPos int) (token.EscapeInfo, error) {
	if ch, _ := l.cur.Peek(); ch == '{' {
		l.advance()
		value := 0
		digits := 0
		for {
			ch, err := l.cur.Peek()
			if err != nil {
				return token.EscapeInfo{}, l.malformedUTF8(err)
			}
			if ch == '}' {
				break
			}
			if !charset.IsHexDigit(ch) || digits == 6 {
				return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "malformed \\u{...} escape")
			}
			value = value*16 + charset.HexDigitValue(ch)
			digits++
			l.advance()
		}
		if digits == 0 || value > 0x10FFFF {
			return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "\\u{...} code point out of range")
		}
		l.advance() // consume '}'
		return token.EscapeInfo{
			Kind:          token.UnicodeEscape,
			RawSpan:       l.sliceSince(escStart),
			PositionInRaw: backslashPos,
			ResolvedChar:  rune(value),
		}, nil
	}

	value := 0
	for i := 0; i < 4; i++ {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.EscapeInfo{}, l.malformedUTF8(err)
		}
		if !charset.IsHexDigit(ch) {
			return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "\\u escape requires four hex digits")
		}
		value = value*16 + charset.HexDigitValue(ch)
		l.advance()
	}
	return token.EscapeInfo{
		Kind:          token.UnicodeEscape,
		RawSpan:       l.sliceSince(escStart),
		PositionInRaw: backslashPos,
		ResolvedChar:  rune(value),
	}, nil
}

// decodeOctalEscape reads one to three legacy octal digits, value <= 0o377.
func (l *Lexer) decodeOctalEscape(literalStart, escStart, backslashPos int) (token.EscapeInfo, error) {
	value := 0
	digits := 0
	for digits < 3 {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.EscapeInfo{}, l.malformedUTF8(err)
		}
		if !charset.IsOctalDigit(ch) {
			break
		}
		candidate := value*8 + charset.OctalDigitValue(ch)
		if candidate > 0o377 {
			break
		}
		value = candidate
		digits++
		l.advance()
	}
	if digits == 0 {
		return token.EscapeInfo{}, l.newError(InvalidEscapeSequence, literalStart, "malformed octal escape")
	}
	return token.EscapeInfo{
		Kind:          token.OctalEscape,
		RawSpan:       l.sliceSince(escStart),
		PositionInRaw: backslashPos,
		ResolvedChar:  rune(value),
	}, nil
}
