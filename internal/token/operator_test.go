/*
File    : internal/token/operator_test.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidatesMaximalMunchOrdering(t *testing.T) {
	cands := Candidates('>')
	assert.NotEmpty(t, cands)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, len(cands[i-1].Lexeme()), len(cands[i].Lexeme()),
			"candidates for '>' must be sorted longest-lexeme first")
	}
	assert.Equal(t, ">>>=", cands[0].Lexeme())
	assert.Equal(t, UnsignedRightShiftAssign, cands[0].Op())
}

func TestCandidatesUnknownStarter(t *testing.T) {
	assert.Nil(t, Candidates('@'))
}

func TestCandidatesSingleCharOperators(t *testing.T) {
	cands := Candidates('(')
	assert.Len(t, cands, 1)
	assert.Equal(t, "(", cands[0].Lexeme())
	assert.Equal(t, LParen, cands[0].Op())
}
