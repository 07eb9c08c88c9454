package scanner

// junctionRecord pairs a junction kind with the alignment column
// where its list began (spec §3, "Junction record").
type junctionRecord struct {
	kind   JunctionKind
	column int16
}

// maxJunctionDepth bounds the junction stack at 255 so depth fits a
// single byte on the wire (spec §3, §4.6).
const maxJunctionDepth = 255

// JunctionStack is the scanner's entire persisted state (spec §3,
// "Scanner state"): an ordered sequence of junction records,
// innermost on top, with strictly increasing alignment columns from
// bottom to top.
type JunctionStack struct {
	records []junctionRecord
}

// Depth reports the number of open junction lists.
func (s *JunctionStack) Depth() int { return len(s.records) }

// Empty reports whether no junction list is open.
func (s *JunctionStack) Empty() bool { return len(s.records) == 0 }

// Column returns the alignment column of the innermost open list, or
// -1 if the stack is empty (spec §4.3).
func (s *JunctionStack) Column() int {
	if s.Empty() {
		return -1
	}
	return int(s.records[len(s.records)-1].column)
}

// Kind returns the innermost open list's junction kind. Only valid
// when the stack is non-empty.
func (s *JunctionStack) Kind() JunctionKind {
	return s.records[len(s.records)-1].kind
}

func (s *JunctionStack) push(kind JunctionKind, column int) bool {
	if len(s.records) >= maxJunctionDepth {
		return false
	}
	s.records = append(s.records, junctionRecord{kind: kind, column: int16(column)})
	return true
}

func (s *JunctionStack) pop() {
	s.records = s.records[:len(s.records)-1]
}

func (s *JunctionStack) reset() {
	s.records = s.records[:0]
}

// onJunct implements the junction-list engine's table for a "/\" or
// "\/" shape (spec §4.3):
//
//	col_new > col_top and V[INDENT] -> push; emit INDENT
//	col_new > col_top and !V[INDENT] -> decline (an infix operator)
//	col_new == col_top, same kind -> emit NEWLINE
//	col_new == col_top, different kind -> pop; emit DEDENT
//	col_new < col_top -> pop; emit DEDENT
//
// The stack-empty case falls out of the col_top == -1 sentinel: the
// first junct of a file always satisfies col_new > col_top.
func (s *Scanner) onJunct(valid ValidMask, kind JunctionKind, column int) (TokenKind, bool) {
	top := s.stack.Column()
	switch {
	case column > top:
		if !valid.Has(TokIndent) {
			return 0, false
		}
		if !s.stack.push(kind, column) {
			return 0, false // spec §7: stack overflow declines the indent
		}
		return TokIndent, true
	case column == top:
		if s.stack.Kind() == kind {
			return TokNewline, true
		}
		s.stack.pop()
		return TokDedent, true
	default:
		s.stack.pop()
		return TokDedent, true
	}
}

// onRightDelimiter implements the table for a right-delimiter shape
// (closing bracket/brace/paren, "->", "⟶", ">>", "〉"): pop and emit
// DEDENT if a list is open and DEDENT is a valid symbol; otherwise
// decline (spec §4.3).
func (s *Scanner) onRightDelimiter(valid ValidMask) (TokenKind, bool) {
	if !s.stack.Empty() && valid.Has(TokDedent) {
		s.stack.pop()
		return TokDedent, true
	}
	return 0, false
}

// onTerminator implements the table for a module/section terminator
// run ("----", "===="): pop and emit DEDENT if a list is open,
// otherwise decline and let the DFA's own DOUBLE_LINE/SINGLE_LINE
// token stand (spec §4.3).
func (s *Scanner) onTerminator() (TokenKind, bool) {
	if !s.stack.Empty() {
		s.stack.pop()
		return TokDedent, true
	}
	return 0, false
}

// onOther implements the table for any other DFA-recognized operator
// shape (EQ_OP-family, DASH-family, GT_OP-family): an aligned or
// outdented token that isn't itself a junct closes the innermost list
// (the "IF /\ P /\ Q THEN R" case moved one level up, and also the
// case of a bare infix "=" or "-" appearing where a list item was
// expected); spec §4.3.
func (s *Scanner) onOther(column int) (TokenKind, bool) {
	if column <= s.stack.Column() {
		s.stack.pop()
		return TokDedent, true
	}
	return 0, false
}
