package scanner

// lexState enumerates the operator DFA's states (spec §4.2): one
// state per node in the prefix tree of the overloaded-prefix operator
// alphabet ("=", "-", ">", "/", "\", "∧", "∨", the bracket/arrow
// delimiters).
type lexState uint8

const (
	stateStart lexState = iota
	stateForwardSlash
	stateBackwardSlash
	stateLand
	stateLor
	stateRightDelimiterPunct
	stateRightAngleBracket
	stateRightAngleBracketSub
	stateGt
	stateGeq
	stateEqOne
	stateEqTwo
	stateEqThree
	stateEqGeqFour
	stateLeq
	stateImplies
	stateLdtt
	stateDashOne
	stateDashTwo
	stateDashThree
	stateDashGeqFour
	stateRightArrow
	stateLstt
	statePlusArrowStep2
	statePlusArrowStep3
	statePlusArrow
)

// classify runs the operator DFA to completion from the cursor's
// current position, applying the longest-match rule (P4): once a
// shape is recognized it keeps trying to extend, and only the final,
// longest accepted shape is reported. It performs no MarkEnd calls of
// its own -- Lex decides, after seeing the tagged result, whether to
// commit the span (accepting kind) or leave it uncommitted (a
// junction-engine callback intervened and the token is zero-width).
//
// matched is false when the DFA didn't recognize the codepoint at all
// (Lex should decline outright) or when it recognized a shape with no
// accept state of its own, such as exactly three "=" (P4's tie-break
// list; spec §4.2).
func classify(c Cursor) (kind TokenKind, category Category, matched bool) {
	state := stateStart
	for {
		switch state {
		case stateStart:
			switch c.Peek() {
			case '/':
				c.Advance(false)
				state = stateForwardSlash
			case '\\':
				c.Advance(false)
				state = stateBackwardSlash
			case '∧':
				c.Advance(false)
				state = stateLand
			case '∨':
				c.Advance(false)
				state = stateLor
			case ')', ']', '}', '⟶':
				c.Advance(false)
				state = stateRightDelimiterPunct
			case '〉':
				c.Advance(false)
				state = stateRightAngleBracket
			case '>':
				c.Advance(false)
				state = stateGt
			case '=':
				c.Advance(false)
				state = stateEqOne
			case '-':
				c.Advance(false)
				state = stateDashOne
			default:
				return 0, CategoryOther, false
			}

		case stateForwardSlash:
			if c.Peek() == '\\' {
				c.Advance(false)
				state = stateLand
				continue
			}
			// bare "/" has no accept token of its own, but it's still a
			// recognized shape: give OnOther a look before declining.
			return NoToken, CategoryOther, true

		case stateBackwardSlash:
			if c.Peek() == '/' {
				c.Advance(false)
				state = stateLor
				continue
			}
			return NoToken, CategoryOther, true

		case stateLand:
			return 0, CategoryLand, true

		case stateLor:
			return 0, CategoryLor, true

		case stateRightDelimiterPunct:
			return 0, CategoryRightDelimiter, true

		case stateRightAngleBracket:
			if c.Peek() == '_' {
				c.Advance(false)
				state = stateRightAngleBracketSub
				continue
			}
			return TokRAngleBracket, CategoryRightDelimiter, true

		case stateRightAngleBracketSub:
			return TokRAngleBracketSub, CategoryRightDelimiter, true

		case stateGt:
			if c.Peek() == '>' {
				c.Advance(false)
				state = stateRightAngleBracket
				continue
			}
			if c.Peek() == '=' {
				c.Advance(false)
				state = stateGeq
				continue
			}
			return TokGtOp, CategoryOther, true

		case stateGeq:
			return TokAsciiGeqOp, CategoryOther, true

		case stateEqOne:
			switch c.Peek() {
			case '=':
				c.Advance(false)
				state = stateEqTwo
				continue
			case '<':
				c.Advance(false)
				state = stateLeq
				continue
			case '>':
				c.Advance(false)
				state = stateImplies
				continue
			case '|':
				c.Advance(false)
				state = stateLdtt
				continue
			}
			return TokEqOp, CategoryOther, true

		case stateEqTwo:
			if c.Peek() == '=' {
				c.Advance(false)
				state = stateEqThree
				continue
			}
			return TokAsciiDefEq, CategoryOther, true

		case stateEqThree:
			if c.Peek() == '=' {
				c.Advance(false)
				state = stateEqGeqFour
				continue
			}
			return 0, CategoryOther, false // exactly "===" has no accept state

		case stateEqGeqFour:
			if c.Peek() == '=' {
				c.Advance(false)
				continue // greedily consume further "="
			}
			return TokDoubleLine, CategoryTerminator, true

		case stateLeq:
			return TokAsciiEqltOp, CategoryOther, true

		case stateImplies:
			return TokAsciiImpliesOp, CategoryOther, true

		case stateLdtt:
			return TokAsciiLdttOp, CategoryOther, true

		case stateDashOne:
			switch c.Peek() {
			case '-':
				c.Advance(false)
				state = stateDashTwo
				continue
			case '>':
				c.Advance(false)
				state = stateRightArrow
				continue
			case '|':
				c.Advance(false)
				state = stateLstt
				continue
			case '+':
				c.Advance(false)
				state = statePlusArrowStep2
				continue
			}
			return TokDash, CategoryOther, true

		case stateDashTwo:
			if c.Peek() == '-' {
				c.Advance(false)
				state = stateDashThree
				continue
			}
			return TokMinusMinusOp, CategoryOther, true

		case stateDashThree:
			if c.Peek() == '-' {
				c.Advance(false)
				state = stateDashGeqFour
				continue
			}
			return 0, CategoryOther, false // exactly "---" has no accept state

		case stateDashGeqFour:
			if c.Peek() == '-' {
				c.Advance(false)
				continue // greedily consume further "-"
			}
			return TokSingleLine, CategoryTerminator, true

		case stateRightArrow:
			return TokRArrow, CategoryRightDelimiter, true

		case stateLstt:
			return TokAsciiLsttOp, CategoryOther, true

		case statePlusArrowStep2:
			if c.Peek() == '-' {
				c.Advance(false)
				state = statePlusArrowStep3
				continue
			}
			return 0, CategoryOther, false

		case statePlusArrowStep3:
			if c.Peek() == '>' {
				c.Advance(false)
				state = statePlusArrow
				continue
			}
			return 0, CategoryOther, false

		case statePlusArrow:
			return TokAsciiPlusArrowOp, CategoryOther, true
		}
	}
}

// Callbacks bundles the junction-list engine's four decision points
// (spec §4.3): the operator DFA's classification alone never decides
// whether a shape is a layout event, it only tells Lex which decision
// function to consult.
type Callbacks struct {
	OnJunct          func(kind JunctionKind, column int) (TokenKind, bool)
	OnRightDelimiter func(column int) (TokenKind, bool)
	OnTerminator     func(column int) (TokenKind, bool)
	OnOther          func(column int) (TokenKind, bool)
}

func declineJunct(JunctionKind, int) (TokenKind, bool) { return 0, false }
func decline1(int) (TokenKind, bool)                   { return 0, false }

// NoCallbacks always declines every decision point, running Lex as a
// plain longest-match operator lexer with no junction-list side
// effects. Useful for tests that only exercise the DFA.
var NoCallbacks = Callbacks{
	OnJunct:          declineJunct,
	OnRightDelimiter: decline1,
	OnTerminator:     decline1,
	OnOther:          decline1,
}

// Lex implements the operator DFA plus its category dispatch (spec
// §4.2, §4.3): it skips leading whitespace, classifies the shape at
// the cursor, and routes the result through the junction engine's
// decision functions before deciding whether to commit the span.
//
// DASH_ONE's shape is checked against OnOther before it is known
// whether the full match will be "-", "--", "-|", "-+->", or "->" --
// OnOther's decision only depends on the starting column, so running
// the DFA to completion first and dispatching on the final kind is
// equivalent to checking earlier, and lets classify stay a pure
// function. "->" additionally offers itself to OnRightDelimiter after
// OnOther declines, since "->" is classified RIGHT_DELIMITER wherever
// it closes a CASE arm regardless of also being a plain operator
// shape.
func Lex(c Cursor, cb Callbacks) (TokenKind, bool) {
	for isWhitespace(c.Peek()) {
		c.Advance(true)
	}
	c.MarkEnd() // a decline returns this empty span (spec §4.2)

	if c.Peek() == 0 {
		return 0, false
	}
	col := c.Column()

	kind, category, matched := classify(c)
	if !matched {
		return 0, false
	}

	switch category {
	case CategoryLand:
		return cb.OnJunct(Conjunction, col)
	case CategoryLor:
		return cb.OnJunct(Disjunction, col)
	case CategoryRightDelimiter:
		if kind == TokRArrow {
			// "->" is also a plain dash-prefixed operator shape; give
			// OnOther first refusal before treating it as a delimiter.
			if k, ok := cb.OnOther(col); ok {
				return k, true
			}
		}
		if k, ok := cb.OnRightDelimiter(col); ok {
			return k, true
		}
		if kind == NoToken {
			// plain bracket punctuation has no DFA-owned token of its
			// own; the grammar's regular lexer matches it instead.
			return 0, false
		}
	case CategoryTerminator:
		if k, ok := cb.OnTerminator(col); ok {
			return k, true
		}
	default: // CategoryOther
		if k, ok := cb.OnOther(col); ok {
			return k, true
		}
		if kind == NoToken {
			// bare "/" or "\" that failed to extend into "/\" or "\/"
			// has no DFA-owned token; the grammar's regular lexer
			// matches it instead.
			return 0, false
		}
	}

	c.MarkEnd()
	return kind, true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
