package scanner

import (
	"bufio"
	"io"
)

// StreamCursor is a Cursor over an io.Reader. It plays the role the
// teacher's streamLexer played -- reading from a bufio.Reader instead
// of requiring the whole source up front -- generalized to runes and
// to the commit-vs-lookahead split Cursor requires. Since bufio.Reader
// only supports unreading a single rune, StreamCursor keeps its own
// small pending buffer of runes read but not yet committed; MarkEnd
// drops the committed prefix from it.
type StreamCursor struct {
	r *bufio.Reader

	pending []rune // runes read from r but not yet committed
	idx     int    // lookahead index into pending
	skip    int    // leading whitespace runes in pending, left out of tokenBuf
	col     int    // column at the committed position
	lookCol int    // column at the lookahead position
	eof     bool

	tokenBuf []rune // text committed for the token under construction
}

// NewStreamCursor returns a cursor reading from r.
func NewStreamCursor(r io.Reader) *StreamCursor {
	return &StreamCursor{r: bufio.NewReader(r)}
}

func (c *StreamCursor) fill() {
	if c.idx < len(c.pending) || c.eof {
		return
	}
	r, _, err := c.r.ReadRune()
	if err != nil {
		c.eof = true
		return
	}
	c.pending = append(c.pending, r)
}

func (c *StreamCursor) Peek() rune {
	c.fill()
	if c.idx >= len(c.pending) {
		return 0
	}
	return c.pending[c.idx]
}

func (c *StreamCursor) Advance(asWhitespace bool) {
	c.fill()
	if c.idx >= len(c.pending) {
		return
	}
	if asWhitespace && c.idx == c.skip && len(c.tokenBuf) == 0 {
		c.skip++
	}
	r := c.pending[c.idx]
	c.idx++
	if r == '\n' {
		c.lookCol = 0
	} else {
		c.lookCol++
	}
}

func (c *StreamCursor) MarkEnd() {
	c.tokenBuf = append(c.tokenBuf, c.pending[c.skip:c.idx]...)
	c.pending = c.pending[c.idx:]
	c.idx = 0
	c.skip = 0
	c.col = c.lookCol
}

func (c *StreamCursor) Column() int { return c.lookCol }

// beginToken resets the lookahead index and the committed-text buffer
// for a fresh token, mirroring ByteCursor.beginToken.
func (c *StreamCursor) beginToken() {
	c.idx = 0
	c.skip = 0
	c.lookCol = c.col
	c.tokenBuf = c.tokenBuf[:0]
}

// Text returns the runes committed for the current token via MarkEnd.
func (c *StreamCursor) Text() []rune { return c.tokenBuf }

// NextToken drives s with this cursor for exactly one token, resetting
// the lookahead first.
func (c *StreamCursor) NextToken(s *Scanner, valid ValidMask) (TokenKind, bool) {
	c.beginToken()
	return s.Scan(c, valid)
}

// CloseOpenList mirrors ByteCursor.CloseOpenList: it lets a caller that
// recognizes a token outside the operator DFA's alphabet (a keyword
// spelling, for instance) ask s to unconditionally close its innermost
// open junction list.
func (c *StreamCursor) CloseOpenList(s *Scanner, valid ValidMask) (TokenKind, bool) {
	c.beginToken()
	for isWhitespace(c.Peek()) {
		c.Advance(true)
	}
	c.MarkEnd()
	return s.onRightDelimiter(valid)
}
