package rules

import "testing"

func TestLevelOrdering(t *testing.T) {
	if !(LevelBasic < LevelMild && LevelMild < LevelMedium && LevelMedium < LevelSevere) {
		t.Fatalf("level order must be basic < mild < medium < severe")
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelBasic, LevelMild, LevelMedium, LevelSevere} {
		parsed, err := ParseLevel(level.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", level.String(), err)
		}
		if parsed != level {
			t.Fatalf("ParseLevel(%q) = %v, want %v", level.String(), parsed, level)
		}
	}

	if _, err := ParseLevel("extreme"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
