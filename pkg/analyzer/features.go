package analyzer

import "unicode"

type features struct {
	length int

	lower  bool
	upper  bool
	digit  bool
	symbol bool
	space  bool

	repeatRun     bool
	sequentialRun bool
	date          bool
	email         bool
	common        bool
}

// scan classifies every rune and detects the structural patterns in a
// single pass over the password. Classification is ASCII-only: a non-ASCII
// rune counts as whitespace if unicode.IsSpace says so and as a symbol
// otherwise, never toward the letter or digit pools. Length is counted in
// runes, not bytes.
func scan(password string, words *Wordlist) features {
	runes := []rune(password)
	f := features{length: len(runes)}

	repeat := 1
	asc, desc := 1, 1
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			f.lower = true
		case r >= 'A' && r <= 'Z':
			f.upper = true
		case r >= '0' && r <= '9':
			f.digit = true
		case unicode.IsSpace(r):
			f.space = true
		default:
			f.symbol = true
		}

		if i == 0 {
			continue
		}
		prev := runes[i-1]

		if r == prev {
			repeat++
		} else {
			repeat = 1
		}
		if repeat >= 3 {
			f.repeatRun = true
		}

		// Ascending and descending runs are tracked independently; a broken
		// run resets only its own counter's counterpart to 1, so "abcxyz"
		// still flags on the first run.
		switch r {
		case prev + 1:
			asc++
			desc = 1
		case prev - 1:
			desc++
			asc = 1
		default:
			asc, desc = 1, 1
		}
		if asc >= 3 || desc >= 3 {
			f.sequentialRun = true
		}
	}

	f.date = looksLikeDate(runes)
	f.email = looksLikeEmail(runes)
	f.common = words.ContainsSubstring(password)

	return f
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDateSep(r rune) bool {
	return r == '-' || r == '/' || r == ' '
}

// looksLikeDate reports whether any substring matches a lenient date:
// YYYY[-/ ]?MM[-/ ]?DD or DD[-/ ]?MM[-/ ]?YYYY, year 1900-2099, month and
// day one or two digits, separator consistent or entirely absent. The
// shapes are scanned by hand instead of regexp so the lenient matching does
// not depend on a particular engine's backtracking.
func looksLikeDate(runes []rune) bool {
	for i := range runes {
		if matchYearFirst(runes[i:]) || matchDayFirst(runes[i:]) {
			return true
		}
	}
	return false
}

func matchYearFirst(rs []rune) bool {
	if !matchYear(rs) {
		return false
	}

	rest := rs[4:]
	var sep rune
	if len(rest) > 0 && isDateSep(rest[0]) {
		sep = rest[0]
		rest = rest[1:]
	}

	for _, mn := range fieldLens(rest, 12) {
		tail := rest[mn:]
		if sep != 0 {
			if len(tail) == 0 || tail[0] != sep {
				continue
			}
			tail = tail[1:]
		}
		if len(fieldLens(tail, 31)) > 0 {
			return true
		}
	}
	return false
}

func matchDayFirst(rs []rune) bool {
	for _, dn := range fieldLens(rs, 31) {
		rest := rs[dn:]
		var sep rune
		if len(rest) > 0 && isDateSep(rest[0]) {
			sep = rest[0]
			rest = rest[1:]
		}

		for _, mn := range fieldLens(rest, 12) {
			tail := rest[mn:]
			if sep != 0 {
				if len(tail) == 0 || tail[0] != sep {
					continue
				}
				tail = tail[1:]
			}
			if matchYear(tail) {
				return true
			}
		}
	}
	return false
}

func matchYear(rs []rune) bool {
	if len(rs) < 4 {
		return false
	}
	if !(rs[0] == '1' && rs[1] == '9') && !(rs[0] == '2' && rs[1] == '0') {
		return false
	}
	return isDigitRune(rs[2]) && isDigitRune(rs[3])
}

// fieldLens returns the digit widths (two-digit form first) at the head of
// rs that form a month or day value in [1, max].
func fieldLens(rs []rune, max int) []int {
	var lens []int
	if len(rs) >= 2 && isDigitRune(rs[0]) && isDigitRune(rs[1]) {
		v := int(rs[0]-'0')*10 + int(rs[1]-'0')
		if v >= 1 && v <= max {
			lens = append(lens, 2)
		}
	}
	if len(rs) >= 1 && isDigitRune(rs[0]) {
		v := int(rs[0] - '0')
		if v >= 1 && v <= max {
			lens = append(lens, 1)
		}
	}
	return lens
}

func isLocalRune(r rune) bool {
	return isAlphaRune(r) || isDigitRune(r) ||
		r == '.' || r == '_' || r == '%' || r == '+' || r == '-'
}

func isDomainRune(r rune) bool {
	return isAlphaRune(r) || isDigitRune(r) || r == '.' || r == '-'
}

// looksLikeEmail reports whether any substring has the shape
// localpart@domain.tld, with a 2+ letter TLD.
func looksLikeEmail(runes []rune) bool {
	for i, r := range runes {
		if r != '@' {
			continue
		}
		if i == 0 || !isLocalRune(runes[i-1]) {
			continue
		}

		end := i + 1
		for end < len(runes) && isDomainRune(runes[end]) {
			end++
		}

		// A dot with at least one domain rune before it and two letters
		// after it closes the shape; trailing extra runes are fine since
		// this is a substring match.
		for d := i + 2; d+2 < end; d++ {
			if runes[d] == '.' && isAlphaRune(runes[d+1]) && isAlphaRune(runes[d+2]) {
				return true
			}
		}
	}
	return false
}
