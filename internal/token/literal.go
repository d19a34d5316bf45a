/*
File    : internal/token/literal.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package token

import "math/big"

// NumericBase identifies the radix a NumericLiteral was written in.
type NumericBase int

const (
	Decimal NumericBase = iota
	Hex
	Octal
	Binary
)

func (b NumericBase) String() string {
	switch b {
	case Decimal:
		return "Decimal"
	case Hex:
		return "Hex"
	case Octal:
		return "Octal"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// NumberLiteral is the decoded payload of a Token with Kind == NumericLiteral.
type NumberLiteral struct {
	Raw         string   // exact source text, including separators and suffix
	Value       float64  // IEEE-754 value; meaningless when IsBigInt
	BigIntValue *big.Int // non-nil only when IsBigInt
	Base        NumericBase
	LegacyOctal bool // bare "0" + octal digits, no "o"/"O" prefix
	IsBigInt    bool
	HasExponent bool
}

// EscapeKind identifies which escape family produced an EscapeInfo.
type EscapeKind int

const (
	SimpleEscape EscapeKind = iota
	HexEscape
	UnicodeEscape
	OctalEscape
)

func (k EscapeKind) String() string {
	switch k {
	case SimpleEscape:
		return "Simple"
	case HexEscape:
		return "Hex"
	case UnicodeEscape:
		return "Unicode"
	case OctalEscape:
		return "Octal"
	default:
		return "Unknown"
	}
}

// EscapeInfo records one decoded escape sequence found while scanning a
// string or template literal's raw interior.
type EscapeInfo struct {
	Kind           EscapeKind
	RawSpan        string // the escape's exact source text, backslash included
	PositionInRaw  int    // byte offset of the backslash within StringLiteral.Raw
	ResolvedChar   rune
}

// StringLiteral is the decoded payload of a Token with Kind in
// {StringLiteral, TemplateMiddle}. TemplateStart and TemplateEnd tokens
// carry no payload.
type StringLiteral struct {
	Raw     string // interior source text, escapes verbatim, delimiters excluded
	Value   string // logically decoded string
	Escapes []EscapeInfo
}
