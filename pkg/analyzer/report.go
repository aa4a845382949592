// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package analyzer

import "fmt"

// Category is the strength bucket assigned from the adjusted entropy bits.
type Category int

const (
	VeryWeak Category = iota
	Weak
	Moderate
	Strong
	Excellent
)

func (c Category) String() string {
	switch c {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case Excellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the category as its display name instead of a bare int.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

// Report is the full result of analyzing a single password. It is a pure
// value snapshot: the engine never retains or mutates it after returning.
type Report struct {
	PasswordLength int `json:"password_length"`

	HasLower      bool `json:"has_lower"`
	HasUpper      bool `json:"has_upper"`
	HasDigit      bool `json:"has_digit"`
	HasSymbol     bool `json:"has_symbol"`
	HasWhitespace bool `json:"has_whitespace"`

	HasRepeatRun            bool `json:"has_repeat_run"`
	HasSequentialRun        bool `json:"has_sequential_run"`
	LooksLikeDate           bool `json:"looks_like_date"`
	LooksLikeEmail          bool `json:"looks_like_email"`
	ContainsCommonSubstring bool `json:"contains_common_substring"`

	EntropyBitsRaw      float64  `json:"entropy_bits_raw"`
	EntropyBitsAdjusted float64  `json:"entropy_bits_adjusted"`
	Category            Category `json:"category"`
	CrackTimeSeconds    float64  `json:"crack_time_seconds"`
	CrackTimeDisplay    string   `json:"crack_time_estimate"`
	Suggestions         []string `json:"suggestions"`
}
