package cli

import (
	"encoding/json"
	"fmt"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/rs/zerolog/log"
	"pwd-audit/pkg/analyzer"
)

// renderReport prints the report grouped as length, classes, patterns,
// entropy, category, crack time and suggestions. The password itself is
// only needed for the optional zxcvbn comparison.
func renderReport(r analyzer.Report, password string) error {
	if jsonOut {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		log.Info().Msgf("Length: %d characters", r.PasswordLength)
		log.Info().Msgf("Classes: lower=%t upper=%t digit=%t symbol=%t whitespace=%t",
			r.HasLower, r.HasUpper, r.HasDigit, r.HasSymbol, r.HasWhitespace)
		log.Info().Msgf("Patterns: repeat=%t sequence=%t date=%t email=%t common=%t",
			r.HasRepeatRun, r.HasSequentialRun, r.LooksLikeDate, r.LooksLikeEmail, r.ContainsCommonSubstring)
		log.Info().Msgf("Entropy: %.1f bits raw, %.1f bits adjusted", r.EntropyBitsRaw, r.EntropyBitsAdjusted)
		log.Info().Msgf("Category: %s", r.Category)
		log.Info().Msgf("Estimated crack time: %s", r.CrackTimeDisplay)
		for _, tip := range r.Suggestions {
			log.Info().Msgf("Tip: %s", tip)
		}
	}

	if compare {
		reference := zxcvbn.PasswordStrength(password, nil)
		log.Info().Msgf("zxcvbn reference: score %d/4, crack time %s", reference.Score, reference.CrackTimeDisplay)
	}

	return nil
}
