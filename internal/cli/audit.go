package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"pwd-audit/internal/util"
	"pwd-audit/pkg/analyzer"
	"pwd-audit/pkg/audit"
)

var (
	auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Audit a file of candidate passwords, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return auditCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	auditCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Password input file, one candidate per line (required)")
	auditCmd.MarkFlagRequired("in-file")
	auditCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the audit. If omitted, defaults to the number of logical processors of the machine.")
	auditCmd.Flags().IntVar(&top, "top", 10, "How many of the weakest entries to report.")
	auditCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Common-password wordlist file. Defaults to the embedded list.")
	auditCmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Attacker guesses per second for the crack-time estimate.")

	rootCmd.AddCommand(auditCmd)
}

func auditCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	auditor, err := audit.NewAuditor(engine, threads, top)
	if err != nil {
		return err
	}
	defer auditor.Close()

	summary, err := auditor.ProcessFile(inputFile)
	if err != nil {
		return err
	}

	log.Info().Msgf("Audited %d passwords", summary.Total)
	for cat := analyzer.VeryWeak; cat <= analyzer.Excellent; cat++ {
		log.Info().Msgf("%s: %d", cat, summary.ByCategory[cat])
	}

	// Passwords themselves only show up at debug level.
	for _, sample := range summary.Weakest {
		log.Info().Msgf("Weak entry at line %d: %s, %d characters, %.1f bits",
			sample.Line, sample.Category, sample.Length, sample.EntropyBitsAdjusted)
		log.Debug().Msgf("Line %d password: %s", sample.Line, sample.Password)
	}

	return nil
}
