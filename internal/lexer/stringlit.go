/*
File    : internal/lexer/stringlit.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import (
	"strings"

	"github.com/akashmaji946/ecmalex/internal/charset"
	"github.com/akashmaji946/ecmalex/internal/token"
)

// scanQuoted implements the quoted-string half of 4.E: single- or
// double-quoted strings, escape sequences included, no interpolation.
func (l *Lexer) scanQuoted(delim rune, start, startLine, startCol int) (token.Token, error) {
	l.advance() // opening delimiter
	rawStart := l.cur.Pos()

	var value strings.Builder
	var escapes []token.EscapeInfo

	for {
		if l.cur.Eof() {
			return token.Token{}, l.newError(UnterminatedString, start, "unterminated string literal")
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if ch == delim {
			break
		}
		if charset.IsLineTerminator(ch) {
			return token.Token{}, l.newError(UnterminatedString, start, "line terminator inside string literal")
		}
		if ch == '\\' {
			backslashPos := l.cur.Pos() - rawStart
			l.advance()
			esc, err := l.decodeEscape(quotedEscapes, start, backslashPos)
			if err != nil {
				return token.Token{}, err
			}
			if esc.Kind == token.OctalEscape && l.opts.StrictMode {
				return token.Token{}, l.newError(LegacyOctalInStrictMode, start, "legacy octal escape not allowed in strict mode")
			}
			escapes = append(escapes, esc)
			if esc.ResolvedChar >= 0 {
				value.WriteRune(esc.ResolvedChar)
			}
			continue
		}
		l.advance()
		value.WriteRune(ch)
	}

	rawEnd := l.cur.Pos()
	l.advance() // closing delimiter
	raw := string(l.cur.SourceSlice(rawStart, rawEnd))
	lexeme := l.sliceSince(start)

	tok := l.emit(token.StringLiteralTok, start, lexeme, startLine, startCol)
	tok.Str = &token.StringLiteral{Raw: raw, Value: value.String(), Escapes: escapes}
	return tok, nil
}

// scanTemplate implements the template-literal half of 4.E. A single call
// here, for one backtick, can produce many tokens: TemplateStart, one
// StringLiteral per literal segment, a DollarCurlyOpen and the recursively
// scanned interpolation tokens for each "${ ... }", and a closing
// TemplateEnd. The caller (scanOne) enqueues every token past the first on
// the pending queue.
func (l *Lexer) scanTemplate(start, startLine, startCol, depth int) ([]token.Token, error) {
	l.advance() // opening backtick
	tokens := []token.Token{l.emit(token.TemplateStart, start, "`", startLine, startCol)}

	for {
		segStart := l.cur.Pos()
		segLine, segCol := l.line, l.column

		var value strings.Builder
		var escapes []token.EscapeInfo

		for {
			if l.cur.Eof() {
				return nil, l.newError(UnterminatedTemplate, start, "unterminated template literal")
			}
			ch, err := l.cur.Peek()
			if err != nil {
				return nil, l.malformedUTF8(err)
			}
			if ch == '`' {
				break
			}
			if ch == '$' && l.peekIs(1, '{') {
				break
			}
			if ch == '\\' {
				backslashPos := l.cur.Pos() - segStart
				l.advance()
				esc, err := l.decodeEscape(templateEscapes, start, backslashPos)
				if err != nil {
					return nil, err
				}
				escapes = append(escapes, esc)
				if esc.ResolvedChar >= 0 {
					value.WriteRune(esc.ResolvedChar)
				}
				continue
			}
			if charset.IsLineTerminator(ch) {
				consumed, err := l.consumeLineTerminator()
				if err != nil {
					return nil, err
				}
				value.WriteString(consumed)
				continue
			}
			l.advance()
			value.WriteRune(ch)
		}

		segLexeme := l.sliceSince(segStart)
		if len(segLexeme) > 0 {
			seg := l.emit(token.StringLiteralTok, segStart, segLexeme, segLine, segCol)
			seg.Str = &token.StringLiteral{Raw: segLexeme, Value: value.String(), Escapes: escapes}
			tokens = append(tokens, seg)
		}

		ch, err := l.cur.Peek()
		if err != nil {
			return nil, l.malformedUTF8(err)
		}
		if ch == '`' {
			closeStart := l.cur.Pos()
			closeLine, closeCol := l.line, l.column
			l.advance()
			tokens = append(tokens, l.emit(token.TemplateEnd, closeStart, "`", closeLine, closeCol))
			return tokens, nil
		}

		dcoStart := l.cur.Pos()
		dcoLine, dcoCol := l.line, l.column
		l.advance() // '$'
		l.advance() // '{'
		tokens = append(tokens, l.emit(token.DollarCurlyOpen, dcoStart, "${", dcoLine, dcoCol))

		inner, err := l.readInterpolation(start, depth)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, inner...)
	}
}

// readInterpolation scans tokens for a "${ ... }" body by repeatedly
// invoking the main dispatcher, tracking brace depth so nested object
// literals and blocks inside the interpolation do not close it early. The
// '}' that returns the depth to zero is included in the returned slice as
// an ordinary Operator(RBrace) token; templateStart anchors error spans back
// to the enclosing template literal.
//
// A nested template literal scanned inside this interpolation (e.g.
// `${`${a}`}`) arrives here as a flattened run of tokens drawn one at a
// time off the pending queue, including that inner template's own
// interpolation-closing '}'. templateDepth tracks whether the token just
// read came from inside such a nested template so its braces are never
// mistaken for this interpolation's own.
func (l *Lexer) readInterpolation(templateStart, depth int) ([]token.Token, error) {
	braceDepth := 1
	templateDepth := 0
	var out []token.Token
	for {
		tok, err := l.nextToken(depth + 1)
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Eof {
			return nil, l.newError(UnterminatedTemplate, templateStart, "unterminated template interpolation")
		}
		switch tok.Kind {
		case token.TemplateStart:
			templateDepth++
		case token.TemplateEnd:
			templateDepth--
		case token.OperatorTok:
			if templateDepth == 0 {
				switch tok.Operator {
				case token.LBrace:
					braceDepth++
				case token.RBrace:
					braceDepth--
					if braceDepth == 0 {
						out = append(out, tok)
						return out, nil
					}
				}
			}
		}
		out = append(out, tok)
	}
}
