package analyzer

import (
	"fmt"
	"math"
)

// DefaultGuessesPerSecond models a well-resourced offline attacker.
const DefaultGuessesPerSecond = 1e9

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// crackSeconds is the expected time to find the password: half the search
// space (2^(bits-1) guesses) at the given rate.
func crackSeconds(bits float64, rate float64) float64 {
	exp := bits - 1
	if exp < 0 {
		exp = 0
	}
	return math.Pow(2, exp) / rate
}

func displayCrackTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "< 1 second"
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	case seconds < secondsPerDay:
		return fmt.Sprintf("%.1f hours", seconds/secondsPerHour)
	case seconds < 30*secondsPerDay:
		return fmt.Sprintf("%.1f days", seconds/secondsPerDay)
	case seconds < secondsPerYear:
		return fmt.Sprintf("%.1f months", seconds/secondsPerMonth)
	default:
		return "> 100 years"
	}
}
