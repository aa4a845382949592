package analyzer

import "testing"

func scanDefault(password string) features {
	return scan(password, DefaultWordlist())
}

func TestClassFlags(t *testing.T) {
	f := scanDefault("aB3! ")
	if !f.lower || !f.upper || !f.digit || !f.symbol || !f.space {
		t.Errorf("Should detect all five classes, got %+v", f)
	}

	f = scanDefault("zz")
	if f.upper || f.digit || f.symbol || f.space {
		t.Errorf("Should only detect lowercase, got %+v", f)
	}
}

func TestNonAsciiCountsAsSymbol(t *testing.T) {
	f := scanDefault("ñ")
	if f.lower || f.upper {
		t.Errorf("Non-ASCII letters should not count toward the letter classes")
	}
	if !f.symbol {
		t.Errorf("Non-ASCII runes should count as symbols")
	}
	if f.length != 1 {
		t.Errorf("Length should be counted in runes, have %d", f.length)
	}
}

func TestRepeatRun(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"aa", false},
		{"aaa", true},
		{"aabb", false},
		{"xyzzzy", true},
		{"", false},
	}
	for _, c := range cases {
		if got := scanDefault(c.in).repeatRun; got != c.want {
			t.Errorf("repeat run for %q should be %v", c.in, c.want)
		}
	}
}

func TestSequentialRun(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"abc", true},
		{"cba", true},
		{"789", true},
		{"ab", false},
		{"aceg", false},
		{"121", false},
		{"abba", false},
		// The first ascending run must survive the unrelated break before
		// the second run.
		{"abcxyz", true},
	}
	for _, c := range cases {
		if got := scanDefault(c.in).sequentialRun; got != c.want {
			t.Errorf("sequential run for %q should be %v", c.in, c.want)
		}
	}
}

func TestLooksLikeDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"x2025-07-04x", true},
		{"2025/07/04", true},
		{"2025 07 04", true},
		{"20250704", true},
		{"04-07-2025", true},
		{"4/7/1999", true},
		// Separator must be consistent or entirely absent.
		{"2025-0704", false},
		{"2025-07/04", false},
		{"1899-01-01", false},
		{"no digits here", false},
	}
	for _, c := range cases {
		if got := scanDefault(c.in).date; got != c.want {
			t.Errorf("date detection for %q should be %v", c.in, c.want)
		}
	}
}

func TestLooksLikeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"john.doe@example.com", true},
		{"xjohn.doe@example.comx", true},
		{"a@b.co", true},
		{"user+tag@mail-host.org", true},
		{"@example.com", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"no at sign", false},
	}
	for _, c := range cases {
		if got := scanDefault(c.in).email; got != c.want {
			t.Errorf("email detection for %q should be %v", c.in, c.want)
		}
	}
}

func TestCommonSubstring(t *testing.T) {
	if !scanDefault("MyPassword!").common {
		t.Errorf("Should match common entries case-insensitively by containment")
	}
	if scanDefault("Tr33s&Skies_2025!long").common {
		t.Errorf("Should not match anything in the default list")
	}
}

func TestCustomWordlist(t *testing.T) {
	words := NewWordlist([]string{" Zebra ", ""})
	if words.Len() != 1 {
		t.Errorf("Should normalize and drop blank entries, have %d", words.Len())
	}
	if !words.ContainsSubstring("myZEBRA1") {
		t.Errorf("Should match custom entry by containment")
	}
	if words.ContainsSubstring("password") {
		t.Errorf("Custom list should not match outside its entries")
	}
}
