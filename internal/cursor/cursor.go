/*
File    : internal/cursor/cursor.go
Author  : ecmalex contributors
Contact : https://github.com/akashmaji946/ecmalex

Package cursor implements a UTF-8 aware byte cursor over an immutable
source buffer. It is the lowest layer of the scanner: every sub-lexer
reads the source exclusively through a Cursor.
*/
package cursor

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Peek/PeekN/Advance once the cursor has consumed the
// entire input.
const EOF rune = -1

// Cursor walks an immutable byte slice, decoding one UTF-8 code point at a
// time. It supports single-step rewind (Undo) and arbitrary-depth read-ahead
// (PeekN) without mutating the underlying buffer.
type Cursor struct {
	src []byte

	offset int // byte offset of the next undecoded byte
	// lastWidth is the byte width of the rune most recently consumed by
	// Advance. It is what makes Undo correct for multi-byte runes; a cursor
	// that merely decremented offset by one (as the reference implementation
	// does) would split a multi-byte rune in half on rewind.
	lastWidth int
}

// New creates a Cursor over src. The caller retains ownership of src; the
// Cursor never mutates it.
func New(src []byte) *Cursor {
	return &Cursor{src: src}
}

// Pos returns the current byte offset into the original input.
func (c *Cursor) Pos() int { return c.offset }

// Len returns the total length in bytes of the underlying input.
func (c *Cursor) Len() int { return len(c.src) }

// Eof reports whether the cursor has no more bytes to decode.
func (c *Cursor) Eof() bool { return c.offset >= len(c.src) }

// SourceSlice returns the raw bytes of the underlying input in [start, end).
// Callers use it to recover a token's exact lexeme from the byte offsets
// recorded while scanning.
func (c *Cursor) SourceSlice(start, end int) []byte { return c.src[start:end] }

// Peek returns the code point at the current offset without advancing. It
// returns (EOF, nil) at end of input.
func (c *Cursor) Peek() (rune, error) {
	return c.peekAt(c.offset)
}

// PeekN returns the code point n code points ahead of the current offset
// (n == 0 behaves like Peek). It does not advance the cursor.
func (c *Cursor) PeekN(n int) (rune, error) {
	off := c.offset
	for i := 0; i < n; i++ {
		_, w, err := c.decodeAt(off)
		if err != nil {
			return EOF, err
		}
		if w == 0 {
			return EOF, nil
		}
		off += w
	}
	ch, _, err := c.decodeAt(off)
	return ch, err
}

// Advance decodes the code point at the current offset, moves the cursor
// past it, and returns the decoded rune. It returns (EOF, nil) at end of
// input.
func (c *Cursor) Advance() (rune, error) {
	ch, w, err := c.decodeAt(c.offset)
	if err != nil {
		return EOF, err
	}
	if w == 0 {
		c.lastWidth = 0
		return EOF, nil
	}
	c.offset += w
	c.lastWidth = w
	return ch, nil
}

// Undo rewinds the cursor by the width of the most recently decoded rune.
// Its precondition is that the immediately preceding cursor operation was a
// successful Advance. Calling it twice in a row, before any Advance, or after
// an Advance that hit end of input panics, since there is no well-defined
// rune width to undo. Peek and PeekN leave the recorded width untouched.
func (c *Cursor) Undo() {
	if c.lastWidth == 0 {
		panic("cursor: Undo called without a preceding Advance")
	}
	c.offset -= c.lastWidth
	c.lastWidth = 0
}

func (c *Cursor) peekAt(off int) (rune, error) {
	ch, _, err := c.decodeAt(off)
	return ch, err
}

// decodeAt decodes the rune starting at byte offset off, returning its
// width in bytes. A width of 0 means EOF. A non-nil error means malformed
// UTF-8 was found at off.
func (c *Cursor) decodeAt(off int) (rune, int, error) {
	if off >= len(c.src) {
		return EOF, 0, nil
	}
	ch, w := utf8.DecodeRune(c.src[off:])
	if ch == utf8.RuneError && w <= 1 {
		return 0, 0, &MalformedUTF8Error{Offset: off}
	}
	return ch, w, nil
}

// MalformedUTF8Error reports a byte sequence at Offset that could not be
// decoded as UTF-8.
type MalformedUTF8Error struct {
	Offset int
}

func (e *MalformedUTF8Error) Error() string {
	return fmt.Sprintf("cursor: invalid UTF-8 sequence at byte offset %d", e.Offset)
}
