/*
File    : internal/lexer/lexer.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Package lexer scans ECMAScript source text into a lossless token stream:
concatenating every emitted token's Lexeme reproduces the input
byte-for-byte, because whitespace, newlines, and comments are emitted as
tokens rather than discarded.
*/
package lexer

import (
	"os"

	"github.com/akashmaji946/ecmalex/internal/charset"
	"github.com/akashmaji946/ecmalex/internal/cursor"
	"github.com/akashmaji946/ecmalex/internal/token"
)

// Options configures scanning behavior.
type Options struct {
	// StrictMode rejects legacy-octal numeric literals and legacy-octal
	// escape sequences (LegacyOctalInStrictMode) instead of merely flagging
	// them.
	StrictMode bool
	// PreserveTrivia controls whether Whitespace/CommentLine/CommentBlock
	// tokens are included in ScanAll's output. Newline tokens are always
	// kept, since line tracking depends on them even with trivia dropped.
	PreserveTrivia bool
}

// DefaultOptions matches spec: strict mode off, trivia preserved.
func DefaultOptions() Options {
	return Options{StrictMode: false, PreserveTrivia: true}
}

// Lexer drives a Cursor over one source buffer, producing Tokens on demand.
// A Lexer is built once and scanned once; it holds no reusable state across
// separate sources.
type Lexer struct {
	cur  *cursor.Cursor
	name string
	opts Options

	line   int
	column int

	// regexAllowed is set by ScanWithRegexContext for the duration of one
	// call and cleared when it returns; scanOne reads it. The dispatcher never
	// decides regex-vs-division itself (see ScanWithRegexContext doc and
	// DESIGN.md) — it only honors what the caller told it about the position
	// it is about to scan.
	regexAllowed bool

	// pending holds tokens already produced but not yet returned. A single
	// dispatch on a template literal's backtick produces a whole run of
	// tokens (TemplateStart, text segments, DollarCurlyOpen, the
	// interpolation's own tokens, TemplateEnd) at once; nextToken drains
	// this queue before scanning anything new.
	pending []token.Token
}

// NewFromString builds a Lexer over an in-memory source string. name is used
// only for error messages (e.g. a file path or "<repl>").
func NewFromString(name, src string, opts Options) *Lexer {
	return &Lexer{
		cur:    cursor.New([]byte(src)),
		name:   name,
		opts:   opts,
		line:   1,
		column: 1,
	}
}

// NewFromFile reads path and builds a Lexer over its contents.
func NewFromFile(path string, opts Options) (*Lexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Lexer{
		cur:    cursor.New(data),
		name:   path,
		opts:   opts,
		line:   1,
		column: 1,
	}, nil
}

// ScanAll scans the entire input and returns every token produced before
// either EOF or the first error. On error, tokens holds everything
// successfully scanned so far and err is non-nil — partial results are never
// discarded, so a caller (CLI, REPL) can display what was lexed alongside
// the diagnostic.
func (l *Lexer) ScanAll() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := l.Scan()
		if err != nil {
			return out, err
		}
		if l.opts.PreserveTrivia || keepAlways(tok.Kind) {
			out = append(out, tok)
		}
		if tok.Kind == token.Eof {
			return out, nil
		}
	}
}

func keepAlways(k token.Kind) bool {
	switch k {
	case token.Whitespace, token.CommentLine, token.CommentBlock:
		return false
	default:
		return true
	}
}

// Scan produces the single next token, including trivia, regardless of
// PreserveTrivia (which only filters ScanAll's output). Streaming callers
// that want to drive EOF themselves, such as the REPL's incremental
// highlighter, use this directly.
func (l *Lexer) Scan() (token.Token, error) {
	return l.nextToken(0)
}

// ScanWithRegexContext behaves like Scan, but tells the dispatcher whether a
// '/' at the current position is permitted to start a RegexLiteral. The
// lexer cannot decide this itself: distinguishing division from a regex
// literal requires knowing whether the previous significant token was an
// expression (division) or an operator/keyword position (regex), which is
// parser-level grammar context this package deliberately does not carry.
// Without ever calling this, '/' is always tokenized as Operator(Slash),
// Operator(DivAssign) when followed by '=', or a comment starter.
func (l *Lexer) ScanWithRegexContext(allowRegex bool) (token.Token, error) {
	l.regexAllowed = allowRegex
	tok, err := l.nextToken(0)
	l.regexAllowed = false
	return tok, err
}

// nextToken drains the pending queue before dispatching a fresh scan. depth
// is 0 at the top level and > 0 while scanning inside a template
// interpolation (see scanOne and readInterpolation).
func (l *Lexer) nextToken(depth int) (token.Token, error) {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok, nil
	}
	return l.scanOne(depth)
}

// scanOne is the shared dispatcher routine. depth is 0 at the top level and
// > 0 while scanning a template interpolation; it is only passed on to
// scanTemplate. scanOne itself does not recognize the '}' that closes an
// interpolation: readInterpolation in stringlit.go counts braces over the
// tokens scanOne returns. This is the factoring spec.md calls for so the
// dispatcher and the template interpolation sub-lexer share one
// implementation.
func (l *Lexer) scanOne(depth int) (token.Token, error) {
	start := l.cur.Pos()
	startLine, startCol := l.line, l.column

	if l.cur.Eof() {
		return l.emit(token.Eof, start, "", startLine, startCol), nil
	}

	if start == 0 {
		if tok, ok, err := l.tryHashbang(start, startLine, startCol); ok || err != nil {
			return tok, err
		}
	}

	ch, err := l.cur.Peek()
	if err != nil {
		return token.Token{}, l.malformedUTF8(err)
	}

	switch {
	case charset.IsLineTerminator(ch):
		return l.scanNewline(start, startLine, startCol)
	case charset.IsWhitespace(ch):
		return l.scanWhitespace(start, startLine, startCol)
	case ch == '/' && l.peekIs(1, '/'):
		return l.scanLineComment(start, startLine, startCol)
	case ch == '/' && l.peekIs(1, '*'):
		return l.scanBlockComment(start, startLine, startCol)
	case ch == '/' && l.regexAllowed:
		return l.scanRegex(start, startLine, startCol)
	case ch == '`':
		tokens, err := l.scanTemplate(start, startLine, startCol, depth)
		if err != nil {
			return token.Token{}, err
		}
		l.pending = append(l.pending, tokens[1:]...)
		return tokens[0], nil
	case charset.IsStringDelimiter(ch):
		return l.scanQuoted(ch, start, startLine, startCol)
	case charset.IsDecimalDigit(ch), ch == '.' && charset.IsDecimalDigit(l.peekAtOr(1, 0)):
		return l.scanNumber(start, startLine, startCol)
	case charset.IsIdentifierStart(ch):
		return l.scanIdentifier(start, startLine, startCol)
	default:
		return l.scanOperatorOrError(ch, start, startLine, startCol)
	}
}

func (l *Lexer) peekIs(n int, want rune) bool {
	ch, err := l.cur.PeekN(n)
	return err == nil && ch == want
}

func (l *Lexer) peekAtOr(n int, fallback rune) rune {
	ch, err := l.cur.PeekN(n)
	if err != nil {
		return fallback
	}
	return ch
}

// advance consumes and returns the next code point, maintaining (line,
// column). Every sub-lexer must route consumption through this (or through
// l.cur directly followed by a manual bump, for cases like CRLF that need
// to treat two code points as one line event) so position tracking never
// drifts from the cursor.
func (l *Lexer) advance() (rune, error) {
	ch, err := l.cur.Advance()
	if err != nil {
		return 0, err
	}
	if ch == cursor.EOF {
		return ch, nil
	}
	l.column++
	return ch, nil
}

func (l *Lexer) emit(kind token.Kind, start int, lexeme string, line, column int) token.Token {
	end := l.cur.Pos()
	return token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Start:  start,
		End:    end,
		Line:   line,
		Column: column,
	}
}

func (l *Lexer) sliceSince(start int) string {
	return string(l.cur.SourceSlice(start, l.cur.Pos()))
}

func (l *Lexer) malformedUTF8(err error) *Error {
	return l.newError(UnexpectedCharacter, l.cur.Pos(), "malformed UTF-8: %v", err)
}

func (l *Lexer) tryHashbang(start, startLine, startCol int) (token.Token, bool, error) {
	first, err := l.cur.Peek()
	if err != nil || first != '#' {
		return token.Token{}, false, nil
	}
	second, err := l.cur.PeekN(1)
	if err != nil || second != '!' {
		return token.Token{}, false, nil
	}
	for {
		if l.cur.Eof() {
			break
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, true, l.malformedUTF8(err)
		}
		if charset.IsLineTerminator(ch) {
			break
		}
		if _, err := l.advance(); err != nil {
			return token.Token{}, true, l.malformedUTF8(err)
		}
	}
	tok := l.emit(token.CommentLine, start, l.sliceSince(start), startLine, startCol)
	return tok, true, nil
}

func (l *Lexer) scanNewline(start, startLine, startCol int) (token.Token, error) {
	first, err := l.advance()
	if err != nil {
		return token.Token{}, l.malformedUTF8(err)
	}
	if charset.IsCRLF(first, l.peekAtOr(0, 0)) {
		if _, err := l.advance(); err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
	}
	tok := l.emit(token.Newline, start, l.sliceSince(start), startLine, startCol)
	l.line++
	l.column = 1
	return tok, nil
}

func (l *Lexer) scanWhitespace(start, startLine, startCol int) (token.Token, error) {
	for {
		if l.cur.Eof() {
			break
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if !charset.IsWhitespace(ch) {
			break
		}
		if _, err := l.advance(); err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
	}
	return l.emit(token.Whitespace, start, l.sliceSince(start), startLine, startCol), nil
}

func (l *Lexer) scanLineComment(start, startLine, startCol int) (token.Token, error) {
	l.advance() // first '/'
	l.advance() // second '/'
	for !l.cur.Eof() {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if charset.IsLineTerminator(ch) {
			break
		}
		if _, err := l.advance(); err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
	}
	return l.emit(token.CommentLine, start, l.sliceSince(start), startLine, startCol), nil
}

func (l *Lexer) scanBlockComment(start, startLine, startCol int) (token.Token, error) {
	l.advance() // '/'
	l.advance() // '*'
	for {
		if l.cur.Eof() {
			return token.Token{}, l.newError(UnterminatedComment, start, "unterminated block comment")
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if ch == '*' && l.peekIs(1, '/') {
			l.advance()
			l.advance()
			break
		}
		if charset.IsLineTerminator(ch) {
			if ch == 0x0D && l.peekAtOr(1, 0) == 0x0A {
				l.advance()
				l.advance()
			} else {
				l.advance()
			}
			l.line++
			l.column = 1
			continue
		}
		if _, err := l.advance(); err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
	}
	return l.emit(token.CommentBlock, start, l.sliceSince(start), startLine, startCol), nil
}

func (l *Lexer) scanIdentifier(start, startLine, startCol int) (token.Token, error) {
	if _, err := l.advance(); err != nil {
		return token.Token{}, l.malformedUTF8(err)
	}
	for !l.cur.Eof() {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if !charset.IsIdentifierContinue(ch) {
			break
		}
		if _, err := l.advance(); err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
	}
	lexeme := l.sliceSince(start)
	if kw, ok := token.LookupKeyword(lexeme); ok {
		tok := l.emit(token.KeywordTok, start, lexeme, startLine, startCol)
		tok.Keyword = kw
		return tok, nil
	}
	tok := l.emit(token.Identifier, start, lexeme, startLine, startCol)
	tok.Name = lexeme
	return tok, nil
}

func (l *Lexer) scanOperatorOrError(ch rune, start, startLine, startCol int) (token.Token, error) {
	if ch > 0x7F {
		return token.Token{}, l.newError(UnexpectedCharacter, start, "unexpected character %q", ch)
	}
	candidates := token.Candidates(byte(ch))
	for _, cand := range candidates {
		if l.matchesAhead(cand.Lexeme()) {
			for range []rune(cand.Lexeme()) {
				if _, err := l.advance(); err != nil {
					return token.Token{}, l.malformedUTF8(err)
				}
			}
			tok := l.emit(token.OperatorTok, start, cand.Lexeme(), startLine, startCol)
			tok.Operator = cand.Op()
			return tok, nil
		}
	}
	if len(candidates) == 0 {
		return token.Token{}, l.newError(UnexpectedCharacter, start, "unexpected character %q", ch)
	}
	return token.Token{}, l.newError(UnexpectedToken, start, "no operator matches %q", ch)
}

// scanRegex consumes a regex literal body once the caller has confirmed via
// ScanWithRegexContext that '/' may start one here. It tracks bracket-class
// depth so a '/' inside "[...]" does not end the body early, and backslash
// escapes so "\/" does not either; a line terminator or EOF before the
// closing '/' is malformed input, same as an unterminated string.
func (l *Lexer) scanRegex(start, startLine, startCol int) (token.Token, error) {
	l.advance() // opening '/'
	inClass := false
	for {
		if l.cur.Eof() {
			return token.Token{}, l.newError(UnexpectedEOF, start, "unterminated regular expression literal")
		}
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if charset.IsLineTerminator(ch) {
			return token.Token{}, l.newError(UnexpectedEOF, start, "unterminated regular expression literal")
		}
		if ch == '\\' {
			l.advance()
			if l.cur.Eof() {
				return token.Token{}, l.newError(UnexpectedEOF, start, "unterminated regular expression literal")
			}
			l.advance()
			continue
		}
		if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			l.advance()
			break
		}
		l.advance()
	}
	for !l.cur.Eof() {
		ch, err := l.cur.Peek()
		if err != nil {
			return token.Token{}, l.malformedUTF8(err)
		}
		if !charset.IsIdentifierContinue(ch) {
			break
		}
		l.advance()
	}
	return l.emit(token.RegexLiteral, start, l.sliceSince(start), startLine, startCol), nil
}

func (l *Lexer) matchesAhead(lexeme string) bool {
	for i, want := range []rune(lexeme) {
		ch, err := l.cur.PeekN(i)
		if err != nil || ch != want {
			return false
		}
	}
	return true
}
