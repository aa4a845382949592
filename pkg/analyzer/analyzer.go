// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package analyzer estimates password quality from character composition
// and structural patterns. The estimate is a deterministic, explainable
// heuristic: pool-size entropy reduced by additive penalties for risky
// shapes (repeats, sequences, dates, emails, common passwords). It is not
// a dictionary-based guessability model.
package analyzer

// Options configures an Analyzer. The zero value selects the built-in
// defaults for every field.
type Options struct {
	// GuessesPerSecond is the modeled attacker throughput used for the
	// crack-time estimate. Defaults to DefaultGuessesPerSecond.
	GuessesPerSecond float64
	// Wordlist is the common-password table checked by substring
	// containment. Defaults to the embedded list.
	Wordlist *Wordlist
}

// Analyzer holds the fixed tables for analysis. It is immutable after New
// and safe for concurrent use.
type Analyzer struct {
	rate  float64
	words *Wordlist
}

func New(opts Options) *Analyzer {
	rate := opts.GuessesPerSecond
	if rate <= 0 {
		rate = DefaultGuessesPerSecond
	}

	words := opts.Wordlist
	if words == nil {
		words = DefaultWordlist()
	}

	return &Analyzer{rate: rate, words: words}
}

var defaultAnalyzer = New(Options{})

// Analyze runs the default analyzer on password.
func Analyze(password string) Report {
	return defaultAnalyzer.Analyze(password)
}

// Analyze produces the quality report for password. It is total: every
// input, including the empty string and non-ASCII content, yields a valid
// report and never an error.
func (a *Analyzer) Analyze(password string) Report {
	f := scan(password, a.words)

	raw := rawEntropy(f)
	adjusted := adjustEntropy(raw, f)
	seconds := crackSeconds(adjusted, a.rate)

	return Report{
		PasswordLength:          f.length,
		HasLower:                f.lower,
		HasUpper:                f.upper,
		HasDigit:                f.digit,
		HasSymbol:               f.symbol,
		HasWhitespace:           f.space,
		HasRepeatRun:            f.repeatRun,
		HasSequentialRun:        f.sequentialRun,
		LooksLikeDate:           f.date,
		LooksLikeEmail:          f.email,
		ContainsCommonSubstring: f.common,
		EntropyBitsRaw:          raw,
		EntropyBitsAdjusted:     adjusted,
		Category:                categoryFor(adjusted),
		CrackTimeSeconds:        seconds,
		CrackTimeDisplay:        displayCrackTime(seconds),
		Suggestions:             suggestions(f),
	}
}
