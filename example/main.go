package main

import (
	"fmt"

	tlascan "github.com/tlaplus-go/scanner"
)

// A minimal, hand-driven walk through a small junction list, showing
// how a host supplies the valid-symbol mask and reacts to the layout
// tokens the scanner produces. There is no real TLA+ grammar here --
// see scanfmt for a closer approximation of one.
func main() {
	source := "/\\ x = 1\n/\\ y = 2\n"
	s := tlascan.NewScanner()
	c := tlascan.NewByteCursor([]byte(source))

	fmt.Println("scanning:", source)

	kind, ok := c.NextToken(s, tlascan.NewValidMask(tlascan.TokIndent))
	report("first junct", kind, ok, s.Depth())

	// The grammar's own lexer takes "/\ x = 1\n" from here (this
	// scanner declined to claim the "/\" itself, having emitted the
	// INDENT ahead of it); skip to the second junct by hand.
	rest := tlascan.NewByteCursor([]byte("/\\ y = 2\n"))
	kind, ok = rest.NextToken(s, tlascan.NewValidMask(tlascan.TokNewline))
	report("second junct", kind, ok, s.Depth())

	// At end of input with every token kind of the scanner's
	// error-recovery check valid, the scanner
	// recognizes error-recovery mode and unwinds what's left open.
	eof := tlascan.NewByteCursor(nil)
	for {
		kind, ok = eof.NextToken(s, tlascan.NewValidMask(
			tlascan.TokExtramodularText, tlascan.TokBlockCommentText,
			tlascan.TokEqOp, tlascan.TokAsciiDefEq, tlascan.TokDoubleLine,
			tlascan.TokIndent, tlascan.TokNewline, tlascan.TokDedent,
		))
		if !ok {
			break
		}
		report("recovery", kind, ok, s.Depth())
	}

	buf := s.Serialize()
	fmt.Printf("final serialized state: %v (depth %d)\n", buf, s.Depth())
}

func report(step string, kind tlascan.TokenKind, ok bool, depth int) {
	if !ok {
		fmt.Printf("%s: declined (depth %d)\n", step, depth)
		return
	}
	fmt.Printf("%s: %s (depth %d)\n", step, kind, depth)
}
