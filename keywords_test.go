package scanner

import "testing"

func TestIsUnitStartKeyword(t *testing.T) {
	for _, w := range []string{"THEOREM", "VARIABLES", "LOCAL", "ASSUME"} {
		if !IsUnitStartKeyword([]byte(w)) {
			t.Errorf("IsUnitStartKeyword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"theorem", "Foo", "THEN", ""} {
		if IsUnitStartKeyword([]byte(w)) {
			t.Errorf("IsUnitStartKeyword(%q) = true, want false", w)
		}
	}
}

func TestIsRightDelimiterKeyword(t *testing.T) {
	for _, w := range []string{"THEN", "ELSE", "IN"} {
		if !IsRightDelimiterKeyword([]byte(w)) {
			t.Errorf("IsRightDelimiterKeyword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"then", "INSTANCE", "VARIABLE"} {
		if IsRightDelimiterKeyword([]byte(w)) {
			t.Errorf("IsRightDelimiterKeyword(%q) = true, want false", w)
		}
	}
}
