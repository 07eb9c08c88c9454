package main

import (
	"bytes"
	"fmt"
	"io"

	tlascan "github.com/tlaplus-go/scanner"
)

// TraceToken is one emitted token, in a shape convenient to marshal.
type TraceToken struct {
	Kind   string `json:"kind"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text,omitempty"`
}

// traceSource drives s over src end to end using synthesizeValidMask
// in place of a real grammar, recording every emitted token. It
// mirrors the driver shape of spec §4.7: on each iteration it tries
// Scan, and falls back to skipping raw codepoints (as the grammar's
// own lexer would) whenever the scanner declines.
func traceSource(s *tlascan.Scanner, src []byte) []TraceToken {
	c := tlascan.NewByteCursor(src)
	var tokens []TraceToken
	seenModuleHeader := false
	line, lineStart := 0, 0

	advanceLineTracking := func(from, to int) {
		for i := from; i < to && i < len(src); i++ {
			if src[i] == '\n' {
				line++
				lineStart = i + 1
			}
		}
	}

	for !c.AtEOF() {
		pos := c.Pos()
		// The scanner skips line breaks as well as spaces and tabs
		// before a token, so the mask is chosen from what follows them.
		ahead := bytes.TrimLeft(src[pos:], " \t\r\n")
		mask := synthesizeValidMask(ahead, seenModuleHeader, s.Depth())

		// A unit-start keyword isn't part of the operator DFA's
		// alphabet, so Scan can never recognize it; ask the scanner
		// directly to close whatever list is open, leaving the
		// keyword itself for the fallback below to consume.
		if s.Depth() > 0 && startsWithUnitKeyword(ahead) {
			if kind, ok := c.CloseOpenList(s, mask); ok {
				text := string(c.Text())
				startCol := pos - lineStart
				startLine := line
				advanceLineTracking(pos, c.Pos())
				tokens = append(tokens, TraceToken{
					Kind:   kind.String(),
					Line:   startLine,
					Column: startCol,
					Text:   text,
				})
				continue
			}
		}

		kind, ok := c.NextToken(s, mask)
		if !ok {
			trimmed := bytes.TrimLeft(src[pos:], " \t")
			if !seenModuleHeader && looksLikeModuleHeader(trimmed) {
				seenModuleHeader = true
				skipModuleHeader(c, src, pos)
			} else {
				c.SkipRune()
			}
			advanceLineTracking(pos, c.Pos())
			continue
		}

		text := string(c.Text())
		startCol := pos - lineStart
		startLine := line
		advanceLineTracking(pos, c.Pos())
		tokens = append(tokens, TraceToken{
			Kind:   kind.String(),
			Line:   startLine,
			Column: startCol,
			Text:   text,
		})
		if kind == tlascan.TokIndent || kind == tlascan.TokNewline {
			// The grammar's own lexer takes the junct bullet the layout
			// token was emitted for.
			if hasAnyPrefix(src[c.Pos():], "/\\", "\\/") {
				c.SkipRune()
			}
			c.SkipRune()
		}
	}
	return tokens
}

// skipModuleHeader consumes a whole "----[-]*[ ]*MODULE" run one
// codepoint at a time, the way a real grammar's dedicated MODULE
// token rule would match it atomically.
func skipModuleHeader(c *tlascan.ByteCursor, src []byte, pos int) {
	trimmed := bytes.TrimLeft(src[pos:], " \t")
	skip := len(src[pos:]) - len(trimmed)
	end := skip
	for end < len(src[pos:]) && src[pos+end] == '-' {
		end++
	}
	for end < len(src[pos:]) && src[pos+end] == ' ' {
		end++
	}
	end += len("MODULE")
	for c.Pos() < pos+end && !c.AtEOF() {
		c.SkipRune()
	}
}

func printTrace(w io.Writer, tokens []TraceToken, opts TraceOptions) {
	for _, tok := range tokens {
		switch opts.Style {
		case StyleCompact:
			fmt.Fprintf(w, "%s ", tok.Kind)
		default:
			if opts.ShowColumn {
				fmt.Fprintf(w, "%s@%d:%d %q\n", tok.Kind, tok.Line, tok.Column, tok.Text)
			} else {
				fmt.Fprintf(w, "%s %q\n", tok.Kind, tok.Text)
			}
		}
	}
	if opts.Style == StyleCompact {
		fmt.Fprintln(w)
	}
}
