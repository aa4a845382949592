package cli

import (
	"errors"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"pwd-audit/internal/util"
	"pwd-audit/pkg/analyzer"
)

var (
	analyzeCmd = &cobra.Command{
		Use:   "analyze [PASSWORD]",
		Short: "Analyze a single password and print its quality report",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				// Dummy string
				return analyzeCommand("")
			} else {
				return analyzeCommand(args[0])
			}
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. Prompts for passwords with masked input.")
	analyzeCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the report as indented JSON instead of log lines.")
	analyzeCmd.Flags().BoolVar(&compare, "compare", false, "Also print the zxcvbn reference score next to the report.")
	analyzeCmd.Flags().StringVarP(&wordlistFile, "wordlist", "w", "", "Common-password wordlist file. Defaults to the embedded list.")
	analyzeCmd.Flags().Float64VarP(&rate, "rate", "r", 0, "Attacker guesses per second for the crack-time estimate.")

	rootCmd.AddCommand(analyzeCmd)
}

// buildEngine assembles the analyzer from the shared wordlist and rate
// flags. Used by the analyze, audit and serve commands.
func buildEngine() (*analyzer.Analyzer, error) {
	opts := analyzer.Options{GuessesPerSecond: rate}
	if wordlistFile != "" {
		words, err := analyzer.LoadWordlistFile(wordlistFile)
		if err != nil {
			return nil, err
		}
		log.Debug().Msgf("loaded %d wordlist entries from %s", words.Len(), wordlistFile)
		opts.Wordlist = words
	}

	return analyzer.New(opts), nil
}

func analyzeCommand(password string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	if !interactive {
		return renderReport(engine.Analyze(password), password)
	}

	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return errors.New("please enter a valid password")
			}
			return nil
		},
	}

	log.Info().Msgf("Running interactive session. ^C to exit")
	if err = runInteractiveSession(prompt, engine); err != nil {
		if err.Error() == "^C" || err.Error() == "^D" {
			log.Info().Msgf("Goodbye")
		} else {
			log.Error().Err(err).Msgf("Error during interactive session")
		}
		// No return to avoid the default cobra error message
		return nil
	}

	return nil
}

func runInteractiveSession(prompt promptui.Prompt, engine *analyzer.Analyzer) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if err = renderReport(engine.Analyze(result), result); err != nil {
			log.Error().Err(err).Msg("Error rendering report")
		}
	}
}
