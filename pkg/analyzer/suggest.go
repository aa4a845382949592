package analyzer

// suggestions derives the improvement tips from the detected features,
// always in the same order. A password with no findings gets the
// affirmative fallback so the list is never empty.
func suggestions(f features) []string {
	var tips []string

	if f.length < 16 {
		tips = append(tips, "Lengthen the password to at least 16 characters")
	}
	if !f.lower {
		tips = append(tips, "Add lowercase letters")
	}
	if !f.upper {
		tips = append(tips, "Add uppercase letters")
	}
	if !f.digit {
		tips = append(tips, "Add digits")
	}
	if !f.symbol {
		tips = append(tips, "Add symbols such as !, $ or %")
	}
	if f.repeatRun {
		tips = append(tips, "Avoid repeating the same character three or more times")
	}
	if f.sequentialRun {
		tips = append(tips, "Avoid sequential runs like abc or 321")
	}
	if f.common {
		tips = append(tips, "Remove common passwords and dictionary words")
	}
	if f.email {
		tips = append(tips, "Avoid email addresses, they are easy to guess")
	}
	if f.date {
		tips = append(tips, "Avoid dates, they are easy to guess")
	}

	if len(tips) == 0 {
		tips = append(tips, "Good password. No obvious weaknesses detected")
	}

	return tips
}
