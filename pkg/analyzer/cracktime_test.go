package analyzer

import (
	"math"
	"testing"
)

func TestCrackSecondsFloorsExponent(t *testing.T) {
	// Zero adjusted bits still means one guess, not a negative exponent.
	if got := crackSeconds(0, DefaultGuessesPerSecond); got != 1/DefaultGuessesPerSecond {
		t.Errorf("Should take one guess at zero bits, have %g seconds", got)
	}
}

func TestCrackSecondsHalvesSearchSpace(t *testing.T) {
	got := crackSeconds(41, 1)
	want := math.Pow(2, 40)
	if got != want {
		t.Errorf("Should expect 2^(bits-1) guesses, have %g want %g", got, want)
	}
}

func TestDisplayCrackTimeBuckets(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0.5, "< 1 second"},
		{30, "30 seconds"},
		{90, "1.5 minutes"},
		{7200, "2.0 hours"},
		{2 * 86400, "2.0 days"},
		{45 * 86400, "1.5 months"},
		{400 * 86400, "> 100 years"},
		{math.Inf(1), "> 100 years"},
	}
	for _, c := range cases {
		if got := displayCrackTime(c.seconds); got != c.want {
			t.Errorf("Display for %g seconds should be %q, have %q", c.seconds, c.want, got)
		}
	}
}
