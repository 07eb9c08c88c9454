package scanner

// ValidMask mirrors the host's valid-symbol mask (spec §4.7, §9): the
// only channel by which the surrounding grammar tells the scanner
// which token kinds would be acceptable at the current position.
type ValidMask uint32

// NewValidMask builds a mask from the token kinds valid at this
// position.
func NewValidMask(kinds ...TokenKind) ValidMask {
	var m ValidMask
	for _, k := range kinds {
		m |= 1 << uint(k)
	}
	return m
}

// Has reports whether kind is set in the mask.
func (m ValidMask) Has(kind TokenKind) bool { return m&(1<<uint(kind)) != 0 }

// scannerOwnedTokens are the scanner-produced token kinds the
// error-recovery check looks at; the other operator kinds the DFA
// emits (GT_OP, DASH and the rest) are not consulted. When every one
// of these is simultaneously valid, the host is signaling error
// recovery (spec §7, §9): it has no better idea what comes next and
// is asking the scanner to unwind.
var scannerOwnedTokens = []TokenKind{
	TokExtramodularText, TokBlockCommentText, TokEqOp, TokAsciiDefEq,
	TokDoubleLine, TokIndent, TokNewline, TokDedent,
}

func (m ValidMask) isErrorRecovery() bool {
	for _, k := range scannerOwnedTokens {
		if !m.Has(k) {
			return false
		}
	}
	return true
}

// Scanner is the external scanner's entire per-parse-session state:
// the junction stack (spec §3, "Scanner state"). Create one with
// NewScanner per parse session; letting it be garbage collected plays
// the role of the host's "destroy" call (spec §6). Any number of
// scanners may be cloned from one another via Serialize/Deserialize
// to support speculative or incremental reparsing (spec §5).
type Scanner struct {
	stack JunctionStack
}

// NewScanner returns a Scanner with an empty junction stack.
func NewScanner() *Scanner { return &Scanner{} }

// Reset clears the scanner back to its initial, empty-stack state,
// letting one instance be reused across unrelated inputs.
func (s *Scanner) Reset() { s.stack.reset() }

// Depth reports the current junction-list nesting depth.
func (s *Scanner) Depth() int { return s.stack.Depth() }

// Scan implements the driver (spec §4.7): it inspects valid to decide
// which of the four scan strategies applies, and returns at most one
// token. It never panics or returns an error -- per §7, failures are
// expressed only as a declined (0, false) result.
func (s *Scanner) Scan(c Cursor, valid ValidMask) (TokenKind, bool) {
	switch {
	case valid.isErrorRecovery():
		return s.recoverOne()
	case valid.Has(TokExtramodularText):
		return ScanExtramodularText(c)
	case valid.Has(TokBlockCommentText):
		return ScanBlockCommentText(c)
	default:
		return Lex(c, s.callbacks(valid))
	}
}

// recoverOne implements the error-recovery branch of §7: pop one
// junction record per call, emitting DEDENT, until the stack is
// empty. The host is expected to keep calling scan at the same
// position (no input is consumed) until it declines.
func (s *Scanner) recoverOne() (TokenKind, bool) {
	if s.stack.Empty() {
		return 0, false
	}
	s.stack.pop()
	return TokDedent, true
}

func (s *Scanner) callbacks(valid ValidMask) Callbacks {
	return Callbacks{
		OnJunct: func(kind JunctionKind, column int) (TokenKind, bool) {
			return s.onJunct(valid, kind, column)
		},
		OnRightDelimiter: func(int) (TokenKind, bool) {
			return s.onRightDelimiter(valid)
		},
		OnTerminator: func(int) (TokenKind, bool) {
			return s.onTerminator()
		},
		OnOther: func(column int) (TokenKind, bool) {
			return s.onOther(column)
		},
	}
}
