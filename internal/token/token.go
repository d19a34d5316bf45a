/*
File    : internal/token/token.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Package token defines the token vocabulary produced by internal/lexer:
the Kind enumeration, the Token record itself, and the literal payload
types (numbers, strings, escapes) a Token carries for the kinds that need
one.
*/
package token

import "fmt"

// Kind identifies which of the mutually exclusive token categories a Token
// belongs to. It is string-typed for the same reason go-mix's TokenType is:
// cheap equality, self-describing zero value, trivial to print.
type Kind string

const (
	Identifier  Kind = "Identifier"
	KeywordTok  Kind = "Keyword"
	OperatorTok Kind = "Operator"

	NumericLiteral   Kind = "NumericLiteral"
	StringLiteralTok Kind = "StringLiteral"

	TemplateStart   Kind = "TemplateStart"
	TemplateMiddle  Kind = "TemplateMiddle"
	TemplateEnd     Kind = "TemplateEnd"
	DollarCurlyOpen Kind = "DollarCurlyOpen"

	RegexLiteral Kind = "RegexLiteral"

	CommentLine  Kind = "CommentLine"
	CommentBlock Kind = "CommentBlock"

	Whitespace Kind = "Whitespace"
	Newline    Kind = "Newline"

	Eof   Kind = "EOF"
	Error Kind = "Error"
)

// Token is an immutable record of one lexical unit. Go has no tagged union,
// so kind-specific data lives in payload fields that are only meaningful for
// their matching Kind: Keyword for Kind == KeywordTok, Operator for
// Kind == OperatorTok, Number for Kind == NumericLiteral, Str for
// Kind == StringLiteralTok/TemplateMiddle, Name for Kind == Identifier,
// Message for Kind == Error. TemplateStart and TemplateEnd are bare markers
// with no payload; a template's text segments are StringLiteralTok tokens.
type Token struct {
	Kind   Kind
	Lexeme string // exact substring of the input, losslessly reproducible
	Start  int    // byte offset, inclusive
	End    int    // byte offset, exclusive
	Line   int    // 1-based line of the first byte
	Column int    // 1-based column of the first byte

	Name     string
	Keyword  Keyword
	Operator Operator
	Number   *NumberLiteral
	Str      *StringLiteral
	Message  string
}

// String renders a Token for debugging and REPL display, not for
// reconstructing source text (use Lexeme for that).
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Name)
	case KeywordTok:
		return fmt.Sprintf("Keyword(%s)", t.Keyword)
	case OperatorTok:
		return fmt.Sprintf("Operator(%s)", t.Operator)
	case NumericLiteral:
		return fmt.Sprintf("Numeric(%s)", t.Lexeme)
	case StringLiteralTok, TemplateMiddle:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Str.Value)
	case TemplateStart, TemplateEnd:
		return string(t.Kind)
	case Error:
		return fmt.Sprintf("Error(%s)", t.Message)
	default:
		return string(t.Kind)
	}
}

// Len reports the byte length of the token, satisfying invariant 3 of the
// lexer's testable properties (end - start == byte_length(lexeme) > 0).
func (t Token) Len() int { return t.End - t.Start }
