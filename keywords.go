package scanner

// UnitStartKeywords are the top-level unit keywords that
// unconditionally terminate an enclosing junction list (spec §3,
// "Unit"), completed from original_source/src/scanner.cc's
// SCANNER_TOKEN_TYPE_MAPPING beyond the representative subset the
// distilled spec gives. This table only matters to the CLI/demo
// layer (scanfmt), which needs to recognize unit-start keywords from
// a plain byte stream to synthesize a valid-symbol mask when driving
// the scanner outside of a real grammar; the scanner package itself
// never inspects keyword spellings.
var UnitStartKeywords = []string{
	"ASSUME", "ASSUMPTION", "AXIOM", "CONSTANT", "CONSTANTS",
	"COROLLARY", "LEMMA", "LOCAL", "PROPOSITION", "THEOREM",
	"VARIABLE", "VARIABLES",
}

// RightDelimiterKeywords are keywords classified RIGHT_DELIMITER
// alongside the closing-bracket punctuation the operator DFA already
// recognizes (spec §3).
var RightDelimiterKeywords = []string{"THEN", "ELSE", "IN"}

// IsUnitStartKeyword reports whether word is one of UnitStartKeywords.
func IsUnitStartKeyword(word []byte) bool { return matchesAny(word, UnitStartKeywords) }

// IsRightDelimiterKeyword reports whether word is one of
// RightDelimiterKeywords.
func IsRightDelimiterKeyword(word []byte) bool { return matchesAny(word, RightDelimiterKeywords) }

func matchesAny(word []byte, table []string) bool {
	s := BytesToString(word)
	for _, w := range table {
		if s == w {
			return true
		}
	}
	return false
}
