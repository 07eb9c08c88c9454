package scanner

// TokenKind identifies one of the token kinds this scanner can emit
// to its host (spec §3, "Emitted token kinds"). The zero value,
// NoToken, is never returned by a successful Scan; it exists so a
// (TokenKind, bool) result pair reads naturally at call sites.
type TokenKind uint8

const (
	NoToken TokenKind = iota

	// TokExtramodularText covers characters outside of a module
	// envelope (spec §4.4).
	TokExtramodularText
	// TokBlockCommentText covers characters inside "(* ... *)" that
	// are neither a nested opener nor a closer (spec §4.5).
	TokBlockCommentText

	// TokIndent, TokNewline and TokDedent are the synthetic layout
	// tokens the junction-list engine emits (spec §4.3).
	TokIndent
	TokNewline
	TokDedent

	// TokDoubleLine and TokSingleLine are the module/section
	// terminator runs (spec §4.2, §4.6).
	TokDoubleLine
	TokSingleLine

	// The remaining kinds are the overloaded-prefix operators
	// recognized by the operator DFA (spec §4.2).
	TokGtOp
	TokAsciiGeqOp
	TokRAngleBracket
	TokRAngleBracketSub
	TokEqOp
	TokAsciiDefEq
	TokAsciiImpliesOp
	TokAsciiEqltOp
	TokAsciiLdttOp
	TokDash
	TokMinusMinusOp
	TokAsciiPlusArrowOp
	TokAsciiLsttOp
	TokRArrow

	tokenKindCount
)

var tokenKindNames = [tokenKindCount]string{
	NoToken:             "NONE",
	TokExtramodularText: "EXTRAMODULAR_TEXT",
	TokBlockCommentText: "BLOCK_COMMENT_TEXT",
	TokIndent:           "INDENT",
	TokNewline:          "NEWLINE",
	TokDedent:           "DEDENT",
	TokDoubleLine:       "DOUBLE_LINE",
	TokSingleLine:       "SINGLE_LINE",
	TokGtOp:             "GT_OP",
	TokAsciiGeqOp:       "ASCII_GEQ_OP",
	TokRAngleBracket:    "R_ANGLE_BRACKET",
	TokRAngleBracketSub: "R_ANGLE_BRACKET_SUB",
	TokEqOp:             "EQ_OP",
	TokAsciiDefEq:       "ASCII_DEF_EQ",
	TokAsciiImpliesOp:   "ASCII_IMPLIES_OP",
	TokAsciiEqltOp:      "ASCII_EQLT_OP",
	TokAsciiLdttOp:      "ASCII_LDTT_OP",
	TokDash:             "DASH",
	TokMinusMinusOp:     "MINUS_MINUS_OP",
	TokAsciiPlusArrowOp: "ASCII_PLUS_ARROW_OP",
	TokAsciiLsttOp:      "ASCII_LSTT_OP",
	TokRArrow:           "R_ARROW",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Category is the internal classification the junction-list engine
// dispatches on (spec §3, "Token category"). It never crosses the
// public Scan boundary; it only steers which decision function the
// operator DFA's result gets routed through (dfa.go).
type Category uint8

const (
	CategoryOther Category = iota
	CategoryLand
	CategoryLor
	CategoryRightDelimiter
	CategoryTerminator
)

func (c Category) String() string {
	switch c {
	case CategoryLand:
		return "LAND"
	case CategoryLor:
		return "LOR"
	case CategoryRightDelimiter:
		return "RIGHT_DELIMITER"
	case CategoryTerminator:
		return "TERMINATOR"
	default:
		return "OTHER"
	}
}

// JunctionKind distinguishes conjunction lists (started by "/\" or
// "∧") from disjunction lists (started by "\/" or "∨"); spec §3.
type JunctionKind uint8

const (
	Conjunction JunctionKind = iota
	Disjunction
)

func (k JunctionKind) String() string {
	if k == Disjunction {
		return "disjunction"
	}
	return "conjunction"
}
