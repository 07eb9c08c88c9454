package main

import (
	"testing"

	tlascan "github.com/tlaplus-go/scanner"
)

func TestTraceSourceEmitsDedentAtUnitKeywordBoundary(t *testing.T) {
	src := []byte("---- MODULE Foo ----\n/\\ A\nTHEOREM Foo == TRUE\n====\n")
	s := tlascan.NewScanner()
	tokens := traceSource(s, src)

	foundDedent := false
	for _, tok := range tokens {
		if tok.Kind == "DEDENT" {
			foundDedent = true
			if tok.Text != "" {
				t.Fatalf("DEDENT text = %q, want empty (zero-width layout token)", tok.Text)
			}
		}
	}
	if !foundDedent {
		t.Fatalf("expected a DEDENT token closing the junction list before THEOREM, got %+v", tokens)
	}
	if s.Depth() != 0 {
		t.Fatalf("final depth = %d, want 0", s.Depth())
	}
}
