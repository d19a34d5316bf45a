/*
File    : internal/lexer/lexer_test.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/akashmaji946/ecmalex/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := NewFromString("<test>", src, DefaultOptions())
	toks, err := l.ScanAll()
	require.NoError(t, err)
	return toks
}

func TestScanAll_EmptyInputYieldsOnlyEOF(t *testing.T) {
	toks := scanAll(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.Eof, toks[0].Kind)
}

func TestScanAll_LosslessConcatenation(t *testing.T) {
	inputs := []string{
		"var x = 1;\n",
		"const f = (a, b) => a + b;\r\n",
		"// a comment\nlet y = `a${1+2}b`;",
		"/* block\ncomment */ 0x1Fn",
		"#!/usr/bin/env node\nconsole.log(1)\n",
	}
	for _, src := range inputs {
		toks := scanAll(t, src)
		var rebuilt strings.Builder
		for _, tok := range toks {
			rebuilt.WriteString(tok.Lexeme)
		}
		assert.Equal(t, src, rebuilt.String(), "lossless concat failed for %q", src)
	}
}

func TestScanAll_AdjacentTokensAreContiguous(t *testing.T) {
	toks := scanAll(t, "let x = 42 + y;\n")
	for i := 0; i < len(toks)-1; i++ {
		assert.Equal(t, toks[i].End, toks[i+1].Start, "gap between token %d and %d", i, i+1)
	}
}

func TestScanAll_EveryTokenHasPositiveLength(t *testing.T) {
	toks := scanAll(t, "a.b(1, 2)")
	for _, tok := range toks {
		if tok.Kind == token.Eof {
			continue
		}
		assert.Greater(t, tok.End, tok.Start, "%v has non-positive length", tok)
		assert.Equal(t, len(tok.Lexeme), tok.Len())
	}
}

func TestDotFollowedByNonDigitIsOperator(t *testing.T) {
	toks := scanAll(t, ".")
	require.Len(t, toks, 2)
	assert.Equal(t, token.OperatorTok, toks[0].Kind)
	assert.Equal(t, token.Dot, toks[0].Operator)
}

func TestBareZeroIsDecimalNumericLiteral(t *testing.T) {
	toks := scanAll(t, "0")
	require.Len(t, toks, 2)
	require.Equal(t, token.NumericLiteral, toks[0].Kind)
	assert.Equal(t, token.Decimal, toks[0].Number.Base)
	assert.Equal(t, 0.0, toks[0].Number.Value)
}

func TestCRLFIsSingleTwoByteNewlineToken(t *testing.T) {
	toks := scanAll(t, "\r\n")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Newline, toks[0].Kind)
	assert.Equal(t, "\r\n", toks[0].Lexeme)
	assert.Equal(t, 2, toks[0].Len())
}

func TestHashbangOnlyAtOffsetZero(t *testing.T) {
	toks := scanAll(t, "#!/usr/bin/env node\n")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.CommentLine, toks[0].Kind)
	assert.Equal(t, "#!/usr/bin/env node", toks[0].Lexeme)
	assert.Equal(t, token.Newline, toks[1].Kind)
}

func TestHashNotAtStartIsOperator(t *testing.T) {
	toks := scanAll(t, "x#")
	require.Len(t, toks, 3)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, token.OperatorTok, toks[1].Kind)
	assert.Equal(t, token.Hash, toks[1].Operator)
}

func TestLineAndBlockComments(t *testing.T) {
	toks := scanAll(t, "// line\n/* block */")
	require.Len(t, toks, 4)
	assert.Equal(t, token.CommentLine, toks[0].Kind)
	assert.Equal(t, token.Newline, toks[1].Kind)
	assert.Equal(t, token.CommentBlock, toks[2].Kind)
	assert.Equal(t, token.Eof, toks[3].Kind)
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := NewFromString("<test>", "/* never closes", DefaultOptions())
	_, err := l.ScanAll()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnterminatedComment, lexErr.Kind)
}

func TestMaximalMunchUnsignedRightShiftAssign(t *testing.T) {
	toks := scanAll(t, ">>>=")
	require.Len(t, toks, 2)
	assert.Equal(t, token.OperatorTok, toks[0].Kind)
	assert.Equal(t, token.UnsignedRightShiftAssign, toks[0].Operator)
	assert.Equal(t, ">>>=", toks[0].Lexeme)
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := scanAll(t, "instanceof instanceofx")
	require.Len(t, toks, 4)
	assert.Equal(t, token.KeywordTok, toks[0].Kind)
	assert.Equal(t, token.Instanceof, toks[0].Keyword)
	assert.Equal(t, token.Identifier, toks[2].Kind)
	assert.Equal(t, "instanceofx", toks[2].Name)
}

// Idempotence: re-scanning a self-contained token's lexeme alone yields a
// single token of the same kind (spec.md §8 invariant 6).
func TestIdempotentRescan(t *testing.T) {
	cases := []struct {
		lexeme string
		kind   token.Kind
	}{
		{"foo", token.Identifier},
		{"instanceof", token.KeywordTok},
		{"+=", token.OperatorTok},
		{"0x1A", token.NumericLiteral},
		{`"hi"`, token.StringLiteralTok},
	}
	for _, c := range cases {
		toks := scanAll(t, c.lexeme)
		require.Len(t, toks, 2, c.lexeme) // token + EOF
		assert.Equal(t, c.kind, toks[0].Kind, c.lexeme)
	}
}

func TestPreserveTriviaFalseDropsWhitespaceAndComments(t *testing.T) {
	l := NewFromString("<test>", "a  // c\n b", Options{PreserveTrivia: false})
	toks, err := l.ScanAll()
	require.NoError(t, err)
	for _, tok := range toks {
		assert.NotEqual(t, token.Whitespace, tok.Kind)
		assert.NotEqual(t, token.CommentLine, tok.Kind)
	}
	// Newlines are always kept even with trivia dropped.
	var sawNewline bool
	for _, tok := range toks {
		if tok.Kind == token.Newline {
			sawNewline = true
		}
	}
	assert.True(t, sawNewline)
}

func TestRegexLiteralRequiresContext(t *testing.T) {
	l := NewFromString("<test>", "/abc/gi", DefaultOptions())
	tok, err := l.Scan()
	require.NoError(t, err)
	assert.Equal(t, token.OperatorTok, tok.Kind)
	assert.Equal(t, token.Slash, tok.Operator)
}

func TestRegexLiteralWithContextHint(t *testing.T) {
	l := NewFromString("<test>", "/abc\\/d[/]/gi", DefaultOptions())
	tok, err := l.ScanWithRegexContext(true)
	require.NoError(t, err)
	assert.Equal(t, token.RegexLiteral, tok.Kind)
	assert.Equal(t, "/abc\\/d[/]/gi", tok.Lexeme)
}
