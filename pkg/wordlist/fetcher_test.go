package wordlist

import "testing"

func TestMerge(t *testing.T) {
	entries := []string{
		"Password",
		"password",
		"  qwerty  ",
		"",
		"# comment line",
		"dragon",
		"dragon",
		"123456",
	}

	merged := Merge(entries)
	want := []string{"123456", "dragon", "password", "qwerty"}

	if len(merged) != len(want) {
		t.Fatalf("Should have %d unique entries, have %d: %v", len(want), len(merged), merged)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Errorf("Entry %d should be %q, have %q", i, want[i], merged[i])
		}
	}
}

func TestMergeEmpty(t *testing.T) {
	if got := Merge(nil); got != nil {
		t.Errorf("Should return nil for no entries, have %v", got)
	}
	if got := Merge([]string{"", "   ", "# x"}); got != nil {
		t.Errorf("Should drop blanks and comments, have %v", got)
	}
}
