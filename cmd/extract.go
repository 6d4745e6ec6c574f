package cmd

import (
	"os"

	"github.com/inzpektor/soroban-proof-data/extractor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func runExtract(cmd *cobra.Command, args []string) error {
	reporter := extractor.NewReporter(os.Stdout)

	err := extractor.Run(resolveProofsDir(), reporter)
	if err != nil {
		var missing *extractor.MissingInputsError
		if errors.As(err, &missing) {
			reporter.MissingInputs(missing)
		} else {
			reporter.Failure(err)
		}
		return err
	}
	return nil
}
