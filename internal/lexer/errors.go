/*
File    : internal/lexer/errors.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import "fmt"

// ErrorKind enumerates the closed set of ways a scan can fail.
type ErrorKind string

const (
	InvalidDigit            ErrorKind = "InvalidDigit"
	UnexpectedCharacter     ErrorKind = "UnexpectedCharacter"
	UnterminatedString      ErrorKind = "UnterminatedString"
	UnterminatedTemplate    ErrorKind = "UnterminatedTemplate"
	UnterminatedComment     ErrorKind = "UnterminatedComment"
	InvalidEscapeSequence   ErrorKind = "InvalidEscapeSequence"
	InvalidBigInt           ErrorKind = "InvalidBigInt"
	LegacyOctalInStrictMode ErrorKind = "LegacyOctalInStrictMode"
	UnexpectedNumber        ErrorKind = "UnexpectedNumber"
	UnexpectedToken         ErrorKind = "UnexpectedToken"
	UnexpectedEOF           ErrorKind = "UnexpectedEOF"
)

// Error is the structured diagnostic returned by a failed scan. It carries
// the byte span of the offending region rather than just a point, so a
// caller can underline the whole malformed construct.
type Error struct {
	Kind    ErrorKind
	Message string
	Source  string
	Start   int
	End     int
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Source, e.Line, e.Column, e.Kind, e.Message)
}

func (l *Lexer) newError(kind ErrorKind, start int, message string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(message, args...),
		Source:  l.name,
		Start:   start,
		End:     l.cur.Pos(),
		Line:    l.line,
		Column:  l.column,
	}
}
