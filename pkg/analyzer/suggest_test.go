package analyzer

import "testing"

func TestSuggestionsOrder(t *testing.T) {
	tips := Analyze("aaa").Suggestions
	want := []string{
		"Lengthen the password to at least 16 characters",
		"Add uppercase letters",
		"Add digits",
		"Add symbols such as !, $ or %",
		"Avoid repeating the same character three or more times",
	}
	if len(tips) != len(want) {
		t.Fatalf("Should have %d suggestions, have %d: %v", len(want), len(tips), tips)
	}
	for i := range want {
		if tips[i] != want[i] {
			t.Errorf("Suggestion %d should be %q, have %q", i, want[i], tips[i])
		}
	}
}

func TestSuggestionsFallback(t *testing.T) {
	tips := Analyze("K9v!Qz2$Wm7&Xp4#").Suggestions
	if len(tips) != 1 {
		t.Fatalf("A clean password should get only the affirmative message, have %v", tips)
	}
	if tips[0] != "Good password. No obvious weaknesses detected" {
		t.Errorf("Unexpected fallback message %q", tips[0])
	}
}

func TestSuggestionsNeverEmpty(t *testing.T) {
	for _, in := range []string{"", "a", "password", "K9v!Qz2$Wm7&Xp4#"} {
		if len(Analyze(in).Suggestions) == 0 {
			t.Errorf("Suggestions for %q should not be empty", in)
		}
	}
}
