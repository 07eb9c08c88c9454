package scanner

// Cursor abstracts the host-provided lookahead lexer the scanner
// consumes (spec §4.1, §6). It generalizes the same idea the
// byte-slice Cursor and the io.Reader-backed StreamCursor both
// implement, so Scan can drive either without caring which one it
// was given.
//
// Advance and MarkEnd follow the tree-sitter external-scanner
// contract: Advance moves a speculative lookahead position forward,
// and only a subsequent MarkEnd commits that lookahead as the real
// end of the token under construction. Codepoints advanced past the
// last MarkEnd are left for the next call to re-read. The junction
// engine's layout tokens (INDENT/NEWLINE/DEDENT) rely on this: they
// are always emitted zero-width, before the junct token that
// triggered them, which is left uncommitted for the grammar's own
// lexer to pick up on the next call (spec §4.3).
type Cursor interface {
	// Peek returns the codepoint at the current lookahead position,
	// or 0 at end of input.
	Peek() rune
	// Advance consumes the codepoint last returned by Peek and moves
	// the lookahead position past it. asWhitespace tags the codepoint
	// as whitespace: whitespace advanced past before any other
	// codepoint of the token is left out of the token's text.
	Advance(asWhitespace bool)
	// MarkEnd commits the current lookahead position as the end of
	// the token under construction.
	MarkEnd()
	// Column returns the 0-based column of the lookahead position on
	// its line (spec §3, "Column index").
	Column() int
}
