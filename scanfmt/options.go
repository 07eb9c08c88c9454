package main

// TraceStyle selects how the trace command renders a token stream.
// Adapted from the library's own FormatOptions/Style split: the
// scanner has no formatting styles of its own, but its CLI does.
type TraceStyle int

const (
	// StyleDefault prints one "KIND@line:col \"text\"" line per token.
	StyleDefault TraceStyle = iota
	// StyleCompact prints only token kinds, space-separated.
	StyleCompact
	// StyleJSON is handled separately by the -json flag; kept out of
	// this enum so -style and -json compose independently.
)

// TraceOptions controls trace command output.
type TraceOptions struct {
	Style      TraceStyle
	ShowColumn bool
}

func parseTraceStyle(s string) TraceStyle {
	if s == "compact" {
		return StyleCompact
	}
	return StyleDefault
}
