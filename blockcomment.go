package scanner

// ScanBlockCommentText implements spec §4.5: it consumes characters
// inside a "(* ... *)" block comment until the next nested opener
// "(*", the closer "*)", or end of input, without consuming the
// delimiter itself. It declines if it consumed nothing, which happens
// exactly when the cursor is already sitting on a delimiter -- this
// keeps the driver from looping forever re-scanning the same opener.
func ScanBlockCommentText(c Cursor) (TokenKind, bool) {
	consumedAny := false
	for c.Peek() != 0 {
		switch c.Peek() {
		case '*':
			c.MarkEnd()
			if matchLiteral(c, "*)") {
				return TokBlockCommentText, consumedAny
			}
			consumedAny = true
		case '(':
			c.MarkEnd()
			if matchLiteral(c, "(*") {
				return TokBlockCommentText, consumedAny
			}
			consumedAny = true
		default:
			c.Advance(false)
			consumedAny = true
		}
	}
	c.MarkEnd()
	return TokBlockCommentText, consumedAny
}
