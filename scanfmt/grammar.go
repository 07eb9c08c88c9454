package main

import (
	"bytes"

	tlascan "github.com/tlaplus-go/scanner"
)

// synthesizeValidMask stands in for the surrounding grammar (spec §6:
// "the valid-symbol mask is the only channel by which the grammar
// informs the scanner of context"). scanfmt has no real TLA+ grammar
// behind it, so it approximates one by peeking at the raw text ahead
// of the cursor. A real embedding replaces this entirely; it exists
// here only so trace and check have something driving Scan's mask.
func synthesizeValidMask(remaining []byte, seenModuleHeader bool, depth int) tlascan.ValidMask {
	if !seenModuleHeader {
		return tlascan.NewValidMask(tlascan.TokExtramodularText)
	}

	trimmed := bytes.TrimLeft(remaining, " \t")
	switch {
	case hasAnyPrefix(trimmed, "/\\", "\\/", "∧", "∨"):
		if depth == 0 {
			return tlascan.NewValidMask(tlascan.TokIndent)
		}
		return tlascan.NewValidMask(tlascan.TokIndent, tlascan.TokNewline, tlascan.TokDedent)
	case hasAnyPrefix(trimmed, ")", "]", "}", "->", "⟶", ">>", ">>_", "〉"):
		return tlascan.NewValidMask(tlascan.TokDedent)
	case startsWithUnitKeyword(trimmed):
		if depth > 0 {
			return tlascan.NewValidMask(tlascan.TokDedent)
		}
		return 0
	default:
		return 0
	}
}

func hasAnyPrefix(b []byte, prefixes ...string) bool {
	for _, p := range prefixes {
		// prefixes are always literal constants passed in by the
		// caller, never mutated, so the zero-copy conversion is safe.
		if bytes.HasPrefix(b, tlascan.StringToBytes(p)) {
			return true
		}
	}
	return false
}

func startsWithUnitKeyword(b []byte) bool {
	end := bytes.IndexAny(b, " \t\n(")
	if end < 0 {
		end = len(b)
	}
	return tlascan.IsUnitStartKeyword(b[:end]) || tlascan.IsRightDelimiterKeyword(b[:end])
}

// looksLikeModuleHeader reports whether trimmed begins a
// "----[-]*[ ]*MODULE" run, mirroring the regex the extramodular
// scanner itself uses to decide when to stop.
func looksLikeModuleHeader(b []byte) bool {
	i := 0
	for i < len(b) && b[i] == '-' {
		i++
	}
	if i < 4 {
		return false
	}
	for i < len(b) && b[i] == ' ' {
		i++
	}
	return bytes.HasPrefix(b[i:], tlascan.StringToBytes("MODULE"))
}
