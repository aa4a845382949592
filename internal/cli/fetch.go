package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"path/filepath"
	"pwd-audit/internal/util"
	"pwd-audit/pkg/wordlist"
)

var (
	fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and merge common-password wordlists into a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	fetchCmd.Flags().StringVarP(&outFile, "out-file", "o", "./wordlist.txt", "Output file path. Can be absolute or relative.")
	fetchCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")
	fetchCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of threads to use for the fetch. If omitted, defaults to the number of logical processors of the machine.")

	rootCmd.AddCommand(fetchCmd)
}

func fetchCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("could not get absolute path of file")
	}

	if !overwrite {
		_, err := os.Stat(abs)
		if err == nil {
			log.Fatal().Msgf("file %s exists and overwrite flag is not set", abs)
		}
	}

	file, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing wordlist file")
		}
	}(file)

	f := wordlist.NewFetcher(file, threads, nil)
	if err = f.Fetch(); err != nil {
		return err
	}

	log.Info().Msgf("use the file with: pwdaudit analyze -w %s [PASSWORD]", abs)
	return nil
}
