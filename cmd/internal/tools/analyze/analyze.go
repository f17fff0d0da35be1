package analyze

import (
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/cardcodes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var Verbose bool

var AnalyzeRun = func(cmd *cobra.Command, args []string) {
	if err := analyze(os.Stdout, args[0], Verbose); err != nil {
		fmt.Println(err)
	}
}

// analyze reports on the code set in filepath, nothing is reported when it fails validation.
func analyze(w io.Writer, filepath string, verbose bool) error {
	def, err := tools.LoadCodeDefinition(filepath)
	if err != nil {
		return err
	}

	if err = def.Validate(); err != nil {
		return fmt.Errorf("codes failed validation: %w", err)
	}

	tools.Report(w, def, verbose)
	return nil
}
