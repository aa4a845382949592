package analyzer

// Additive bit penalties. Each applies independently when its flag holds;
// they stack, with only the final floor at zero.
const (
	penaltyCommonSubstring = 14
	penaltyEmailShape      = 10
	penaltyDateShape       = 8
	penaltySequentialRun   = 6
	penaltyRepeatRun       = 4

	// Passwords shorter than this lose one bit per missing character.
	shortLength = 12
)

func totalPenalty(f features) float64 {
	p := 0.0
	if f.common {
		p += penaltyCommonSubstring
	}
	if f.email {
		p += penaltyEmailShape
	}
	if f.date {
		p += penaltyDateShape
	}
	if f.sequentialRun {
		p += penaltySequentialRun
	}
	if f.repeatRun {
		p += penaltyRepeatRun
	}
	if f.length < shortLength {
		p += float64(shortLength - f.length)
	}
	return p
}

func adjustEntropy(raw float64, f features) float64 {
	adjusted := raw - totalPenalty(f)
	if adjusted < 0 {
		return 0
	}
	return adjusted
}

// categoryFor maps adjusted bits to a bucket. Intervals are half-open, so
// a value exactly on a boundary lands in the higher bucket.
func categoryFor(bits float64) Category {
	switch {
	case bits < 28:
		return VeryWeak
	case bits < 36:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 80:
		return Strong
	default:
		return Excellent
	}
}
