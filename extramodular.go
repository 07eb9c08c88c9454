package scanner

// ScanExtramodularText implements spec §4.4: it consumes arbitrary
// text found outside of a module envelope, stopping just before a
// "----[-]*[ ]*MODULE" run or at end of input, without including that
// run in the emitted token. It declines (returns false) if it
// consumed nothing, so the host never sees a zero-width
// EXTRAMODULAR_TEXT token.
func ScanExtramodularText(c Cursor) (TokenKind, bool) {
	for isWhitespace(c.Peek()) {
		c.Advance(true)
	}

	consumedAny := false
	for c.Peek() != 0 {
		if c.Peek() != '-' {
			c.Advance(false)
			consumedAny = true
			continue
		}

		c.MarkEnd()
		if matchModuleStart(c) {
			return TokExtramodularText, consumedAny
		}
		// matchModuleStart already advanced past whatever partially
		// matched before failing; the next iteration re-examines the
		// cursor from wherever that left off.
		consumedAny = true
	}

	c.MarkEnd()
	return TokExtramodularText, consumedAny
}

// matchModuleStart consumes "----[-]*[ ]*MODULE" from the current
// position if present. On failure it still leaves whatever prefix it
// matched consumed (uncommitted, since MarkEnd was called by the
// caller before this attempt) -- that's correct, those codepoints
// belong to the extramodular text either way.
func matchModuleStart(c Cursor) bool {
	if !matchLiteral(c, "----") {
		return false
	}
	for c.Peek() == '-' {
		c.Advance(false)
	}
	for c.Peek() == ' ' {
		c.Advance(false)
	}
	return matchLiteral(c, "MODULE")
}

// matchLiteral consumes lit codepoint by codepoint, stopping at the
// first mismatch (whatever matched before the mismatch stays
// consumed, per tree-sitter's is_next_token idiom).
func matchLiteral(c Cursor, lit string) bool {
	for _, want := range lit {
		if c.Peek() != want {
			return false
		}
		c.Advance(false)
	}
	return true
}
