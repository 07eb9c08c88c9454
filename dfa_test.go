package scanner

import "testing"

func lexAll(t *testing.T, src string) (TokenKind, string, bool) {
	t.Helper()
	c := NewByteCursor([]byte(src))
	c.beginToken()
	kind, ok := Lex(c, NoCallbacks)
	return kind, string(c.Text()), ok
}

func TestLexOperatorTieBreaks(t *testing.T) {
	tests := []struct {
		src  string
		kind TokenKind
		text string
	}{
		{"=", TokEqOp, "="},
		{"==", TokAsciiDefEq, "=="},
		{"====", TokDoubleLine, "===="},
		{"=====", TokDoubleLine, "====="},
		{"=>", TokAsciiImpliesOp, "=>"},
		{"=<", TokAsciiEqltOp, "=<"},
		{"=|", TokAsciiLdttOp, "=|"},
		{"-", TokDash, "-"},
		{"--", TokMinusMinusOp, "--"},
		{"----", TokSingleLine, "----"},
		{"-----", TokSingleLine, "-----"},
		{"->", TokRArrow, "->"},
		{"-|", TokAsciiLsttOp, "-|"},
		{"-+->", TokAsciiPlusArrowOp, "-+->"},
		{">", TokGtOp, ">"},
		{">=", TokAsciiGeqOp, ">="},
		{">>", TokRAngleBracket, ">>"},
		{">>_", TokRAngleBracketSub, ">>_"},
		{"〉", TokRAngleBracket, "〉"},
		{"〉_", TokRAngleBracketSub, "〉_"},
	}
	for _, tt := range tests {
		kind, text, ok := lexAll(t, tt.src)
		if !ok {
			t.Fatalf("Lex(%q): declined, want %v", tt.src, tt.kind)
		}
		if kind != tt.kind {
			t.Fatalf("Lex(%q) = %v, want %v", tt.src, kind, tt.kind)
		}
		if text != tt.text {
			t.Fatalf("Lex(%q) span = %q, want %q", tt.src, text, tt.text)
		}
	}
}

func TestLexNoAcceptStates(t *testing.T) {
	// Exactly three "=" or "-" has no accept state (spec §4.2).
	for _, src := range []string{"===", "---"} {
		if _, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q): expected decline, got acceptance", src)
		}
	}
}

func TestLexDeclinesOnUnrecognizedCodepoint(t *testing.T) {
	for _, src := range []string{"", "x", "1", " "} {
		if kind, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q): expected decline, got %v", src, kind)
		}
	}
}

func TestLexPlusArrowSuffixMismatchYieldsNoToken(t *testing.T) {
	// "-+" followed by anything other than "->" has no accept state.
	for _, src := range []string{"-+", "-+x", "-+-"} {
		if kind, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q): expected decline, got %v", src, kind)
		}
	}
}

func TestLexSkipsLeadingWhitespace(t *testing.T) {
	kind, text, ok := lexAll(t, "   \t>=")
	if !ok || kind != TokAsciiGeqOp || text != ">=" {
		t.Fatalf("Lex(whitespace-prefixed >=) = %v %q %v", kind, text, ok)
	}
}

func TestLexJunctDeclinesWithoutCallback(t *testing.T) {
	// Bare LAND/LOR shapes have no DFA-owned fallback token: without
	// a callback willing to claim them, Lex declines outright so the
	// grammar's own lexer can match "/\" or "\/" as an ordinary token.
	for _, src := range []string{"/\\", "\\/", "∧", "∨"} {
		if kind, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q) with NoCallbacks = %v, want decline", src, kind)
		}
	}
}

func TestLexRightDelimiterPunctuationDeclinesWithoutCallback(t *testing.T) {
	for _, src := range []string{")", "]", "}", "⟶"} {
		if kind, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q) with NoCallbacks = %v, want decline", src, kind)
		}
	}
}

func TestLexOnJunctCanClaimIndent(t *testing.T) {
	c := NewByteCursor([]byte("/\\ A"))
	c.beginToken()
	claimed := false
	cb := Callbacks{
		OnJunct: func(kind JunctionKind, col int) (TokenKind, bool) {
			claimed = true
			if kind != Conjunction || col != 0 {
				t.Fatalf("OnJunct(%v, %d), want Conjunction, 0", kind, col)
			}
			return TokIndent, true
		},
		OnRightDelimiter: decline1,
		OnTerminator:     decline1,
		OnOther:          decline1,
	}
	kind, ok := Lex(c, cb)
	if !claimed || !ok || kind != TokIndent {
		t.Fatalf("Lex with claiming OnJunct = %v %v, claimed=%v", kind, ok, claimed)
	}
	if len(c.Text()) != 0 {
		t.Fatalf("layout token span = %q, want empty (junct left uncommitted)", c.Text())
	}
}

func TestLexRightArrowTriesOtherThenRightDelimiter(t *testing.T) {
	var otherCalled, rightDelimCalled bool
	cb := Callbacks{
		OnJunct: declineJunct,
		OnOther: func(int) (TokenKind, bool) {
			otherCalled = true
			return 0, false
		},
		OnRightDelimiter: func(int) (TokenKind, bool) {
			rightDelimCalled = true
			return TokDedent, true
		},
		OnTerminator: decline1,
	}
	c := NewByteCursor([]byte("->"))
	c.beginToken()
	kind, ok := Lex(c, cb)
	if !otherCalled || !rightDelimCalled {
		t.Fatalf("expected both OnOther and OnRightDelimiter to run for \"->\"")
	}
	if !ok || kind != TokDedent {
		t.Fatalf("Lex(\"->\") with right-delimiter claim = %v %v", kind, ok)
	}
}

func TestLexRightArrowFallsThroughToOwnKindWhenBothDecline(t *testing.T) {
	kind, text, ok := lexAll(t, "->")
	if !ok || kind != TokRArrow || text != "->" {
		t.Fatalf("Lex(\"->\") with NoCallbacks = %v %q %v, want TokRArrow", kind, text, ok)
	}
}

func TestLexBareSlashesDeclineWithoutCallback(t *testing.T) {
	// "/" and "\" that fail to extend into "/\" or "\/" have no
	// DFA-owned token of their own, but they must still offer
	// themselves to OnOther before Lex declines.
	for _, src := range []string{"/", "/x", "\\", "\\x"} {
		if kind, _, ok := lexAll(t, src); ok {
			t.Fatalf("Lex(%q) with NoCallbacks = %v, want decline", src, kind)
		}
	}
}

func TestLexOnOtherClaimsBareSlash(t *testing.T) {
	for _, src := range []string{"/", "\\"} {
		var gotCol int
		called := false
		cb := Callbacks{
			OnJunct:          declineJunct,
			OnRightDelimiter: decline1,
			OnTerminator:     decline1,
			OnOther: func(col int) (TokenKind, bool) {
				called = true
				gotCol = col
				return TokDedent, true
			},
		}
		c := NewByteCursor([]byte(src))
		c.beginToken()
		kind, ok := Lex(c, cb)
		if !called {
			t.Fatalf("Lex(%q): OnOther was never called", src)
		}
		if !ok || kind != TokDedent {
			t.Fatalf("Lex(%q) with claiming OnOther = %v %v", src, kind, ok)
		}
		if gotCol != 0 {
			t.Fatalf("Lex(%q): OnOther column = %d, want 0", src, gotCol)
		}
	}
}
