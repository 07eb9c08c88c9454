package scanner

import "testing"

func scanExtramodular(src string) (TokenKind, string, bool, int) {
	c := NewByteCursor([]byte(src))
	c.beginToken()
	kind, ok := ScanExtramodularText(c)
	return kind, string(c.Text()), ok, c.Pos()
}

func TestScanExtramodularTextStopsAtModuleHeader(t *testing.T) {
	src := "some preamble\n---- MODULE Foo ----\nbody"
	kind, text, ok, pos := scanExtramodular(src)
	if !ok || kind != TokExtramodularText {
		t.Fatalf("ScanExtramodularText declined, want acceptance")
	}
	if text != "some preamble\n" {
		t.Fatalf("text = %q, want %q", text, "some preamble\n")
	}
	if src[pos:pos+4] != "----" {
		t.Fatalf("cursor left at %q, want positioned at the module header's dashes", src[pos:])
	}
}

func TestScanExtramodularTextAllowsExtraDashesAndSpaces(t *testing.T) {
	src := "x\n------   MODULE"
	_, text, ok, pos := scanExtramodular(src)
	if !ok || text != "x\n" {
		t.Fatalf("text = %q ok=%v, want \"x\\n\"", text, ok)
	}
	if pos != 2 {
		t.Fatalf("pos = %d, want 2 (just before the dashes)", pos)
	}
}

func TestScanExtramodularTextDeclinesWhenModuleHeaderAtStart(t *testing.T) {
	src := "---- MODULE Foo ----"
	kind, text, ok, pos := scanExtramodular(src)
	if ok {
		t.Fatalf("ScanExtramodularText(%q) = %v %q %v, want decline (zero characters consumed)", src, kind, text, ok)
	}
	if pos != 0 {
		t.Fatalf("pos = %d, want 0", pos)
	}
}

func TestScanExtramodularTextConsumesFalseModuleStart(t *testing.T) {
	// "----" not followed by "MODULE" is just more extramodular text.
	src := "abc ---- not a module def"
	_, text, ok, _ := scanExtramodular(src)
	if !ok || text != src {
		t.Fatalf("text = %q, want the entire input consumed", text)
	}
}

func TestScanExtramodularTextRunsToEOF(t *testing.T) {
	src := "no module header here at all"
	kind, text, ok, pos := scanExtramodular(src)
	if !ok || kind != TokExtramodularText || text != src {
		t.Fatalf("ScanExtramodularText(%q) = %v %q %v", src, kind, text, ok)
	}
	if pos != len(src) {
		t.Fatalf("pos = %d, want %d", pos, len(src))
	}
}

func TestMatchLiteralConsumesOnPartialFailure(t *testing.T) {
	c := NewByteCursor([]byte("MODUS"))
	c.beginToken()
	if matchLiteral(c, "MODULE") {
		t.Fatalf("matchLiteral(%q, MODULE) = true, want false", "MODUS")
	}
	if c.look != 4 {
		t.Fatalf("look = %d, want 4 (consumed \"MODU\" before the mismatch on 'S' vs 'L')", c.look)
	}
}
