/*
File    : internal/token/keyword_test.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		word string
		want Keyword
	}{
		{"if", If},
		{"instanceof", Instanceof},
		{"let", Let},
		{"await", Await},
		{"true", True},
		{"get", Get},
	}
	for _, c := range cases {
		kw, ok := LookupKeyword(c.word)
		assert.True(t, ok, c.word)
		assert.Equal(t, c.want, kw)
	}
}

func TestLookupKeywordRejectsIdentifierLookingLikeKeyword(t *testing.T) {
	_, ok := LookupKeyword("instanceofx")
	assert.False(t, ok)

	_, ok = LookupKeyword("myVariable")
	assert.False(t, ok)
}
