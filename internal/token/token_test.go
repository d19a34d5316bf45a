/*
File    : internal/token/token_test.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenLen(t *testing.T) {
	tok := Token{Start: 4, End: 10}
	assert.Equal(t, 6, tok.Len())
}

func TestTokenStringVariants(t *testing.T) {
	id := Token{Kind: Identifier, Name: "foo"}
	assert.Equal(t, "Identifier(foo)", id.String())

	kw := Token{Kind: KeywordTok, Keyword: If}
	assert.Equal(t, "Keyword(if)", kw.String())

	op := Token{Kind: OperatorTok, Operator: Plus}
	assert.Equal(t, "Operator(+)", op.String())

	str := Token{Kind: StringLiteralTok, Str: &StringLiteral{Value: "hi"}}
	assert.Equal(t, `StringLiteral("hi")`, str.String())

	errTok := Token{Kind: Error, Message: "boom"}
	assert.Equal(t, "Error(boom)", errTok.String())

	ws := Token{Kind: Whitespace}
	assert.Equal(t, "Whitespace", ws.String())
}
