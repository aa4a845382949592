package analyzer

import (
	"reflect"
	"testing"
)

func TestAnalyzeDeterministic(t *testing.T) {
	inputs := []string{"", "password", "abc123", "Tr33s&Skies_2025!long", "ñandú 42"}
	for _, in := range inputs {
		first := Analyze(in)
		second := Analyze(in)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Analyze(%q) should be deterministic", in)
		}
	}
}

func TestAnalyzeCommonPassword(t *testing.T) {
	r := Analyze("password")
	if !r.ContainsCommonSubstring {
		t.Errorf("Should flag the common-password substring")
	}
	if r.Category != VeryWeak {
		t.Errorf("Should be Very Weak, have %s", r.Category)
	}
}

func TestAnalyzeEmptyString(t *testing.T) {
	r := Analyze("")
	if r.PasswordLength != 0 {
		t.Errorf("Length should be 0, have %d", r.PasswordLength)
	}
	if r.EntropyBitsRaw != 0 || r.EntropyBitsAdjusted != 0 {
		t.Errorf("Entropy should be 0, have raw=%f adjusted=%f", r.EntropyBitsRaw, r.EntropyBitsAdjusted)
	}
	if r.Category != VeryWeak {
		t.Errorf("Should be Very Weak, have %s", r.Category)
	}
	if len(r.Suggestions) == 0 {
		t.Errorf("Suggestions should never be empty")
	}
}

func TestAnalyzeSequential(t *testing.T) {
	if !Analyze("abc123").HasSequentialRun {
		t.Errorf("Should flag the sequential runs in abc123")
	}
}

func TestAnalyzeStrongAnchor(t *testing.T) {
	r := Analyze("Tr33s&Skies_2025!long")
	if r.Category != Strong && r.Category != Excellent {
		t.Errorf("Should be Strong or Excellent, have %s (adjusted %f bits)", r.Category, r.EntropyBitsAdjusted)
	}
}

func TestAnalyzeEmailAndDate(t *testing.T) {
	if !Analyze("pw-john.doe@example.com").LooksLikeEmail {
		t.Errorf("Should flag the embedded email address")
	}
	if !Analyze("pw2025-07-04").LooksLikeDate {
		t.Errorf("Should flag the embedded date")
	}
}

func TestAdjustedNeverExceedsRaw(t *testing.T) {
	inputs := []string{
		"", "a", "password", "abc123", "qwerty", "aaa",
		"Tr33s&Skies_2025!long", "john.doe@example.com", "2025-07-04",
		"K9v!Qz2$Wm7&Xp4#", "ñ ñ ñ",
	}
	for _, in := range inputs {
		r := Analyze(in)
		if r.EntropyBitsAdjusted > r.EntropyBitsRaw {
			t.Errorf("Adjusted entropy for %q should not exceed raw", in)
		}
		if r.EntropyBitsRaw < 0 || r.EntropyBitsAdjusted < 0 {
			t.Errorf("Entropy for %q should never be negative", in)
		}
	}
}

func TestRawEntropyMonotonicOnAppend(t *testing.T) {
	// Appending distinct, non-repeating, non-sequential characters from an
	// already-present class never lowers the raw estimate.
	base := "kqzmvhrtx"
	prev := 0.0
	for i := 1; i <= len(base); i++ {
		raw := Analyze(base[:i]).EntropyBitsRaw
		if raw < prev {
			t.Errorf("Raw entropy should not decrease when appending, %q went from %f to %f", base[:i], prev, raw)
		}
		prev = raw
	}
}

func TestCategoryBoundaries(t *testing.T) {
	cases := []struct {
		bits float64
		want Category
	}{
		{0, VeryWeak},
		{27.999, VeryWeak},
		{28, Weak},
		{35.999, Weak},
		{36, Moderate},
		{59.999, Moderate},
		{60, Strong},
		{79.999, Strong},
		{80, Excellent},
		{200, Excellent},
	}
	for _, c := range cases {
		if got := categoryFor(c.bits); got != c.want {
			t.Errorf("Category for %f bits should be %s, have %s", c.bits, c.want, got)
		}
	}
}

func TestOptionsRate(t *testing.T) {
	slow := New(Options{GuessesPerSecond: 1e3})
	fast := New(Options{GuessesPerSecond: 1e6})

	pw := "Tr33s&Skies_2025!long"
	if slow.Analyze(pw).CrackTimeSeconds <= fast.Analyze(pw).CrackTimeSeconds {
		t.Errorf("A slower attacker should need more time")
	}
}

func TestOptionsWordlist(t *testing.T) {
	custom := New(Options{Wordlist: NewWordlist([]string{"zebra"})})

	if !custom.Analyze("myZebra42!").ContainsCommonSubstring {
		t.Errorf("Custom wordlist entry should match")
	}
	if custom.Analyze("password").ContainsCommonSubstring {
		t.Errorf("Default entries should not leak into a custom wordlist")
	}
}
