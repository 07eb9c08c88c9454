package scanner

import "unicode/utf8"

// ByteCursor is a Cursor over an in-memory buffer. It plays the role
// the byte-position-tracking Lexer used to play (position/line/column
// bookkeeping over a []byte), generalized here to the commit-vs-
// lookahead split the Cursor contract requires: ch/readPosition
// become a committed position plus a separate speculative lookahead
// that only folds into the committed position on MarkEnd.
type ByteCursor struct {
	src []byte

	pos int // committed position: where the next token starts
	col int // column at pos

	look    int // speculative lookahead position, look >= pos
	lookCol int // column at look

	tokenStart int
	tokenEnd   int
}

// NewByteCursor returns a cursor reading from src starting at column 0.
func NewByteCursor(src []byte) *ByteCursor {
	return &ByteCursor{src: src}
}

// beginToken resets the lookahead to the committed position;
// NextToken, SkipRune and CloseOpenList call it before they read.
func (c *ByteCursor) beginToken() {
	c.look, c.lookCol = c.pos, c.col
	c.tokenStart, c.tokenEnd = c.pos, c.pos
}

func (c *ByteCursor) Peek() rune {
	if c.look >= len(c.src) {
		return 0
	}
	r, size := utf8.DecodeRune(c.src[c.look:])
	if r == utf8.RuneError && size <= 1 {
		return rune(c.src[c.look])
	}
	return r
}

func (c *ByteCursor) Advance(asWhitespace bool) {
	if c.look >= len(c.src) {
		return
	}
	r, size := utf8.DecodeRune(c.src[c.look:])
	if size == 0 {
		size = 1
	}
	if asWhitespace && c.look == c.tokenStart {
		// leading whitespace is left out of the token's text
		c.tokenStart += size
		if c.tokenEnd < c.tokenStart {
			c.tokenEnd = c.tokenStart
		}
	}
	c.look += size
	if r == '\n' {
		c.lookCol = 0
	} else {
		c.lookCol++
	}
}

func (c *ByteCursor) MarkEnd() {
	c.pos, c.col = c.look, c.lookCol
	c.tokenEnd = c.pos
}

func (c *ByteCursor) Column() int { return c.lookCol }

// Text returns the bytes covered by the most recently emitted token.
func (c *ByteCursor) Text() []byte { return c.src[c.tokenStart:c.tokenEnd] }

// AtEOF reports whether the committed position has reached the end of
// the buffer.
func (c *ByteCursor) AtEOF() bool { return c.pos >= len(c.src) }

// Pos returns the current committed byte offset.
func (c *ByteCursor) Pos() int { return c.pos }

// NextToken drives s with this cursor for exactly one token, resetting
// the lookahead first. It mirrors the single-method lexer interface
// the rest of the package is built around, adapted to the (kind, ok)
// shape Scan returns.
func (c *ByteCursor) NextToken(s *Scanner, valid ValidMask) (TokenKind, bool) {
	c.beginToken()
	return s.Scan(c, valid)
}

// SkipRune commits exactly one codepoint at the current position
// without consulting the Scanner. Real grammars have their own
// tokenizer for everything the external scanner declines; a host
// driving the scanner directly (as scanfmt does, lacking a real TLA+
// grammar) uses this to make the same kind of forward progress.
func (c *ByteCursor) SkipRune() {
	c.beginToken()
	if c.look < len(c.src) {
		c.Advance(false)
	}
	c.MarkEnd()
}

// CloseOpenList asks s to unconditionally close its innermost open
// junction list, the way onRightDelimiter and onTerminator do for the
// shapes the operator DFA recognizes. It exists for callers that
// recognize -- by whatever means, such as a keyword spelling the DFA
// has no alphabet for -- a token that always ends an open list
// (spec §4.3, and §9's design note on the original's
// handle_terminator_token). It skips and commits leading whitespace,
// which is left out of the (zero-width) result's span, leaving the recognized token
// itself uncommitted for the caller's own lexer to read next, exactly
// as the DFA-driven layout tokens do.
func (c *ByteCursor) CloseOpenList(s *Scanner, valid ValidMask) (TokenKind, bool) {
	c.beginToken()
	for isWhitespace(c.Peek()) {
		c.Advance(true)
	}
	c.MarkEnd()
	return s.onRightDelimiter(valid)
}
