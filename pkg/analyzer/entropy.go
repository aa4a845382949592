package analyzer

import "math"

// Per-class pool contributions. The symbol weight covers the printable
// ASCII symbols; whitespace adds a single position.
const (
	poolLower      = 26
	poolUpper      = 26
	poolDigit      = 10
	poolSymbol     = 33
	poolWhitespace = 1

	// minPoolSize keeps log2 sane for single-class and empty passwords.
	minPoolSize = 10
)

func poolSize(f features) int {
	pool := 0
	if f.lower {
		pool += poolLower
	}
	if f.upper {
		pool += poolUpper
	}
	if f.digit {
		pool += poolDigit
	}
	if f.symbol {
		pool += poolSymbol
	}
	if f.space {
		pool += poolWhitespace
	}
	if pool < minPoolSize {
		pool = minPoolSize
	}
	return pool
}

// rawEntropy is length × log2(pool), the classic idealized estimate before
// any structural penalties.
func rawEntropy(f features) float64 {
	if f.length == 0 {
		return 0
	}
	return float64(f.length) * math.Log2(float64(poolSize(f)))
}
